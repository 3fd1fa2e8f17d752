// Package memory provides the in-memory incident repository implementation.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/InfoSecLos/soar-incident-mock-api-simulator/internal/domain"
	"github.com/InfoSecLos/soar-incident-mock-api-simulator/internal/incidents"
	"github.com/InfoSecLos/soar-incident-mock-api-simulator/internal/pkg/idgen"
	"golang.org/x/text/cases"
)

// Repository holds the incident collection in process memory. A single
// RWMutex covers every scan and mutation so concurrent list/create/delete
// calls never observe a partially mutated collection. Insertion order is
// preserved; delete removes exactly one element without reordering the rest.
type Repository struct {
	mu        sync.RWMutex
	incidents []domain.Incident
	ids       *idgen.Generator
}

// NewRepository creates a repository preloaded with seed. The id allocator
// is seeded with the highest id in the dataset, so ids of deleted incidents
// are never reissued.
func NewRepository(seed []domain.Incident) *Repository {
	maxID := 0
	for _, inc := range seed {
		if inc.ID > maxID {
			maxID = inc.ID
		}
	}

	store := make([]domain.Incident, len(seed))
	copy(store, seed)

	return &Repository{
		incidents: store,
		ids:       idgen.New(maxID),
	}
}

// List returns the window of filtered incidents described by filter, in
// insertion order, plus the total number of matches before windowing.
// Status and severity filters are case-folded exact matches combined with
// logical AND. An out-of-range page yields an empty window, never an error.
func (r *Repository) List(_ context.Context, filter incidents.Filter) ([]domain.Incident, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]domain.Incident, 0, len(r.incidents))
	for _, inc := range r.incidents {
		if filter.Status != "" && !foldEqual(inc.Status, filter.Status) {
			continue
		}
		if filter.Severity != "" && !foldEqual(inc.Severity, filter.Severity) {
			continue
		}
		matched = append(matched, inc)
	}

	total := len(matched)

	start := (filter.Page - 1) * filter.PerPage
	if start < 0 || start >= total {
		return []domain.Incident{}, total, nil
	}
	end := start + filter.PerPage
	if end > total {
		end = total
	}

	return matched[start:end], total, nil
}

// Get returns the incident with the given id.
func (r *Repository) Get(_ context.Context, id int) (*domain.Incident, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, inc := range r.incidents {
		if inc.ID == id {
			found := inc
			return &found, nil
		}
	}

	return nil, notFound(id)
}

// Create assigns a fresh id to incident and appends it to the collection.
// Required fields are checked here as a backstop; the transport layer
// rejects missing fields before the store is reached.
func (r *Repository) Create(_ context.Context, incident *domain.Incident) error {
	if incident.Title == "" {
		return incidents.ErrTitleRequired
	}
	if incident.Severity == "" {
		return incidents.ErrSeverityRequired
	}
	if incident.Status == "" {
		return incidents.ErrStatusRequired
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	incident.ID = r.ids.Next()
	r.incidents = append(r.incidents, *incident)

	return nil
}

// UpdateStatus replaces the status of the incident with the given id,
// leaving title, severity and id untouched, and returns the updated record.
func (r *Repository) UpdateStatus(_ context.Context, id int, status string) (*domain.Incident, error) {
	if status == "" {
		return nil, incidents.ErrStatusRequired
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.incidents {
		if r.incidents[i].ID == id {
			r.incidents[i].Status = status
			updated := r.incidents[i]
			return &updated, nil
		}
	}

	return nil, notFound(id)
}

// Delete removes the incident with the given id and returns the removed
// record. The id is never reissued.
func (r *Repository) Delete(_ context.Context, id int) (*domain.Incident, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.incidents {
		if r.incidents[i].ID == id {
			removed := r.incidents[i]
			r.incidents = append(r.incidents[:i], r.incidents[i+1:]...)
			return &removed, nil
		}
	}

	return nil, notFound(id)
}

// Count returns the number of incidents currently in the collection.
func (r *Repository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.incidents), nil
}

func notFound(id int) error {
	return fmt.Errorf("%w: id %d", incidents.ErrIncidentNotFound, id)
}

// foldEqual reports whether a and b are equal under Unicode case folding.
// A fresh caser per call: cases.Caser is not safe for concurrent use.
func foldEqual(a, b string) bool {
	folder := cases.Fold()
	return folder.String(a) == folder.String(b)
}
