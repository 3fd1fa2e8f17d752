package incidents

import "errors"

// Repository errors.
var (
	ErrIncidentNotFound = errors.New("incident not found")
)

// Validation errors.
var (
	ErrTitleRequired    = errors.New("title must be non-empty text")
	ErrSeverityRequired = errors.New("severity must be non-empty text")
	ErrStatusRequired   = errors.New("status must be non-empty text")
)
