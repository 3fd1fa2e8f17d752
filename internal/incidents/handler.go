package incidents

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/InfoSecLos/soar-incident-mock-api-simulator/internal/pkg/httputil"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

// Handler handles HTTP requests for the incidents module.
type Handler struct {
	service   *Service
	validator *validator.Validate
}

// NewHandler creates a new incidents handler.
func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: validator.New(),
	}
}

// RegisterRoutes registers all HTTP routes for the incidents module.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/incidents", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Get("/{id}", h.Get)
		r.Patch("/{id}", h.UpdateStatus)
		r.Delete("/{id}", h.Delete)
	})
}

// CreateIncidentRequest represents the request body for creating an incident.
// Status is optional and defaults to "open". Status and severity are free
// text: the documented value sets are not enforced, only non-emptiness.
type CreateIncidentRequest struct {
	Title    string `json:"title" validate:"required,min=1"`
	Status   string `json:"status"`
	Severity string `json:"severity" validate:"required,min=1"`
}

// UpdateIncidentRequest represents the request body for replacing an
// incident's status.
type UpdateIncidentRequest struct {
	Status string `json:"status" validate:"required,min=1"`
}

// List handles GET /incidents requests.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	in := ListInput{
		Status:   r.URL.Query().Get("status"),
		Severity: r.URL.Query().Get("severity"),
		Page:     1,
		PerPage:  DefaultPerPage,
	}

	if p := r.URL.Query().Get("page"); p != "" {
		parsed, err := strconv.Atoi(p)
		if err != nil {
			httputil.ValidationError(w, errors.New("page must be an integer"))
			return
		}
		in.Page = parsed
	}

	if pp := r.URL.Query().Get("per_page"); pp != "" {
		parsed, err := strconv.Atoi(pp)
		if err != nil {
			httputil.ValidationError(w, errors.New("per_page must be an integer"))
			return
		}
		in.PerPage = parsed
	}

	result, err := h.service.List(r.Context(), in)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	httputil.JSON(w, http.StatusOK, result)
}

// Get handles GET /incidents/{id} requests.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.incidentID(w, r)
	if !ok {
		return
	}

	incident, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	httputil.JSON(w, http.StatusOK, incident)
}

// Create handles POST /incidents requests.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateIncidentRequest
	if ok := decodeBody(w, r, &req); !ok {
		return
	}

	if err := h.validator.Struct(req); err != nil {
		httputil.ValidationError(w, err)
		return
	}

	incident, err := h.service.Create(r.Context(), CreateInput{
		Title:    req.Title,
		Status:   req.Status,
		Severity: req.Severity,
	})
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	httputil.JSON(w, http.StatusCreated, incident)
}

// UpdateStatus handles PATCH /incidents/{id} requests.
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := h.incidentID(w, r)
	if !ok {
		return
	}

	var req UpdateIncidentRequest
	if ok := decodeBody(w, r, &req); !ok {
		return
	}

	if err := h.validator.Struct(req); err != nil {
		httputil.ValidationError(w, err)
		return
	}

	incident, err := h.service.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	httputil.JSON(w, http.StatusOK, incident)
}

// Delete handles DELETE /incidents/{id} requests. The removed record is
// returned in the response body.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.incidentID(w, r)
	if !ok {
		return
	}

	incident, err := h.service.Delete(r.Context(), id)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	httputil.JSON(w, http.StatusOK, incident)
}

// incidentID parses the {id} path parameter. Non-integer ids are rejected
// as validation failures.
func (h *Handler) incidentID(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		httputil.ValidationError(w, fmt.Errorf("id must be an integer, got %q", raw))
		return 0, false
	}
	return id, true
}

// decodeBody decodes a JSON request body. Type mismatches are surfaced as
// validation failures naming the field; malformed JSON is a plain 400.
func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			httputil.ValidationError(w, fmt.Errorf("field %s must be of type %s", typeErr.Field, typeErr.Type))
			return false
		}
		httputil.Error(w, http.StatusBadRequest, "invalid json")
		return false
	}
	return true
}

func (h *Handler) handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrTitleRequired),
		errors.Is(err, ErrSeverityRequired),
		errors.Is(err, ErrStatusRequired):
		httputil.ValidationError(w, err)
	default:
		httputil.HandleError(r.Context(), w, err, []httputil.ErrorMapping{
			{Error: ErrIncidentNotFound, Status: http.StatusNotFound},
		})
	}
}
