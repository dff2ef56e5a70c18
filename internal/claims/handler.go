package claims

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/wrenchline/tread/pkg/handlers"
	"github.com/wrenchline/tread/pkg/pagination"
	"github.com/wrenchline/tread/pkg/routes"
)

// Handler provides HTTP endpoints for claim operations.
type Handler struct {
	sys        System
	logger     *slog.Logger
	pagination pagination.Config
}

// SearchRequest combines pagination and filter criteria for the search endpoint.
type SearchRequest struct {
	pagination.PageRequest
	Filters
}

// NewHandler creates a Handler with the given system, logger, and pagination config.
func NewHandler(
	sys System,
	logger *slog.Logger,
	pagination pagination.Config,
) *Handler {
	return &Handler{
		sys:        sys,
		logger:     logger.With("handler", "claims"),
		pagination: pagination,
	}
}

// Routes returns the route group definition for claim endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/claims",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List},
			{Method: "GET", Pattern: "/summary", Handler: h.StatusSummary},
			{Method: "GET", Pattern: "/{id}", Handler: h.Find},
			{Method: "POST", Pattern: "", Handler: h.Create},
			{Method: "POST", Pattern: "/batch", Handler: h.CreateBatch},
			{Method: "POST", Pattern: "/search", Handler: h.Search},
		},
	}
}

// List returns a paginated list of claims with optional query parameter filters.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page := pagination.PageRequestFromQuery(r.URL.Query(), h.pagination)
	filters := FiltersFromQuery(r.URL.Query())

	result, err := h.sys.List(r.Context(), page, filters)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, h.logger, http.StatusOK, result)
}

// StatusSummary returns per-status claim counts for claims matching the query
// parameter filters.
func (h *Handler) StatusSummary(w http.ResponseWriter, r *http.Request) {
	filters := FiltersFromQuery(r.URL.Query())

	summary, err := h.sys.StatusSummary(r.Context(), filters)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, h.logger, http.StatusOK, summary)
}

// Find returns a single claim by its UUID path parameter.
func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrInvalidID)
		return
	}

	c, err := h.sys.Find(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, h.logger, http.StatusOK, c)
}

// Search accepts a JSON body with pagination and filter criteria and returns matching claims.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	req.PageRequest.Normalize(h.pagination)

	result, err := h.sys.List(r.Context(), req.PageRequest, req.Filters)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, h.logger, http.StatusOK, result)
}

// Create inserts a single claim by decoding a raw ClaimRecord JSON body.
// Returns 201 with the stored claim, including its derived status.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var record ClaimRecord
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	cmd, err := record.Normalize()
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	c, err := h.sys.Create(r.Context(), cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, h.logger, http.StatusCreated, c)
}

// CreateBatch ingests an array of raw claim records and returns a per-record
// result set. Invalid records are reported inline rather than failing the batch.
func (h *Handler) CreateBatch(w http.ResponseWriter, r *http.Request) {
	var records []ClaimRecord
	if err := json.NewDecoder(r.Body).Decode(&records); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	results, err := h.sys.CreateBatch(r.Context(), records)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, h.logger, http.StatusOK, results)
}
