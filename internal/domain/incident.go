package domain

// IncidentStatus values the API documents. The write paths accept any
// non-empty text, so these are reference values, not an enforced enum.
const (
	IncidentStatusOpen               = "open"
	IncidentStatusUnderInvestigation = "under investigation"
	IncidentStatusClosed             = "closed"
)

// IncidentSeverity values the API documents, lowest to highest urgency.
// Like statuses, membership is not enforced on write paths.
const (
	IncidentSeverityLow      = "low"
	IncidentSeverityMedium   = "medium"
	IncidentSeverityHigh     = "high"
	IncidentSeverityCritical = "critical"
)

// Incident is a security event under management. ID is assigned once by the
// allocator and never reused; Title and Severity are immutable after
// creation; Status is replaced wholesale by the update operation.
type Incident struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Status   string `json:"status"`
	Severity string `json:"severity"`
}

// SeedIncidents returns the fixed dataset the store holds at process start.
// The allocator is seeded so the first created incident gets id 4.
func SeedIncidents() []Incident {
	return []Incident{
		{ID: 1, Title: "Phishing Email Campaign Detected", Status: IncidentStatusOpen, Severity: IncidentSeverityHigh},
		{ID: 2, Title: "Malware Detected on Endpoint", Status: IncidentStatusClosed, Severity: IncidentSeverityMedium},
		{ID: 3, Title: "Suspicious Login from Foreign IP", Status: IncidentStatusUnderInvestigation, Severity: IncidentSeverityLow},
	}
}
