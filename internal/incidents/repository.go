package incidents

import (
	"context"

	"github.com/InfoSecLos/soar-incident-mock-api-simulator/internal/domain"
)

// Repository defines the interface for incident data operations.
type Repository interface {
	// List returns the incidents matching filter, windowed per filter's
	// pagination, plus the total match count before windowing.
	List(ctx context.Context, filter Filter) ([]domain.Incident, int, error)
	Get(ctx context.Context, id int) (*domain.Incident, error)
	// Create assigns a fresh id to incident and appends it to the collection.
	Create(ctx context.Context, incident *domain.Incident) error
	UpdateStatus(ctx context.Context, id int, status string) (*domain.Incident, error)
	// Delete removes the incident and returns the removed record.
	Delete(ctx context.Context, id int) (*domain.Incident, error)
	Count(ctx context.Context) (int, error)
}

// Filter represents filter and pagination criteria for listing incidents.
// Status and Severity match case-insensitively; empty means no constraint.
// Page/PerPage describe a half-open window [(Page-1)*PerPage, Page*PerPage)
// over the filtered sequence.
type Filter struct {
	Status   string
	Severity string
	Page     int
	PerPage  int
}
