// Package incidents provides HTTP handlers and business logic for managing
// the in-memory incident collection.
package incidents

import (
	"context"

	"github.com/InfoSecLos/soar-incident-mock-api-simulator/internal/domain"
)

// Pagination constants.
const (
	DefaultPerPage = 10
	MaxPerPage     = 100
)

// Service implements the incident query and mutation contract on top of a
// Repository.
type Service struct {
	repo Repository
}

// NewService creates a new incidents service.
func NewService(repo Repository) *Service {
	if n, err := repo.Count(context.Background()); err == nil {
		setIncidentCount(n)
	}
	return &Service{repo: repo}
}

// ListInput carries the list query. The transport supplies Page=1 and
// PerPage=DefaultPerPage when the client omits them.
type ListInput struct {
	Status   string
	Severity string
	Page     int
	PerPage  int
}

// ListResult is one page of incidents plus pagination metadata.
type ListResult struct {
	Incidents  []domain.Incident `json:"incidents"`
	Total      int               `json:"total"`
	Page       int               `json:"page"`
	PerPage    int               `json:"per_page"`
	TotalPages int               `json:"total_pages"`
}

// List filters the collection by status and severity (case-folded, combined
// with AND) and returns the requested page window. PerPage is capped at
// MaxPerPage and falls back to DefaultPerPage when below 1; the requested
// page number is echoed unchanged, and an out-of-range page (including
// page <= 0) yields an empty window. Total counts matches before windowing
// and TotalPages is the ceiling of Total over the effective PerPage.
func (s *Service) List(ctx context.Context, in ListInput) (*ListResult, error) {
	perPage := in.PerPage
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}

	items, total, err := s.repo.List(ctx, Filter{
		Status:   in.Status,
		Severity: in.Severity,
		Page:     in.Page,
		PerPage:  perPage,
	})
	if err != nil {
		return nil, err
	}

	totalPages := 0
	if total > 0 {
		totalPages = (total + perPage - 1) / perPage
	}

	return &ListResult{
		Incidents:  items,
		Total:      total,
		Page:       in.Page,
		PerPage:    perPage,
		TotalPages: totalPages,
	}, nil
}

// Get returns the incident with the given id.
func (s *Service) Get(ctx context.Context, id int) (*domain.Incident, error) {
	return s.repo.Get(ctx, id)
}

// CreateInput carries the fields for a new incident. Status is optional and
// defaults to "open"; Title and Severity are required.
type CreateInput struct {
	Title    string
	Status   string
	Severity string
}

// Create allocates a fresh id and appends a new incident to the collection.
// Status and severity values are accepted as free text; only non-emptiness
// is enforced.
func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Incident, error) {
	if in.Title == "" {
		return nil, ErrTitleRequired
	}
	if in.Severity == "" {
		return nil, ErrSeverityRequired
	}

	status := in.Status
	if status == "" {
		status = domain.IncidentStatusOpen
	}

	incident := &domain.Incident{
		Title:    in.Title,
		Status:   status,
		Severity: in.Severity,
	}

	if err := s.repo.Create(ctx, incident); err != nil {
		return nil, err
	}

	recordOperation("create")
	s.refreshCountMetric(ctx)

	return incident, nil
}

// UpdateStatus replaces the status of an incident. There are no transition
// restrictions and no terminal state.
func (s *Service) UpdateStatus(ctx context.Context, id int, status string) (*domain.Incident, error) {
	if status == "" {
		return nil, ErrStatusRequired
	}

	incident, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}

	recordOperation("update_status")

	return incident, nil
}

// Delete permanently removes an incident and returns the removed record.
func (s *Service) Delete(ctx context.Context, id int) (*domain.Incident, error) {
	incident, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	recordOperation("delete")
	s.refreshCountMetric(ctx)

	return incident, nil
}

// Count returns the current collection size. Used by the health endpoint.
func (s *Service) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}

func (s *Service) refreshCountMetric(ctx context.Context) {
	if n, err := s.repo.Count(ctx); err == nil {
		setIncidentCount(n)
	}
}
