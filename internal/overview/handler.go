package overview

import (
	"log/slog"
	"net/http"

	"github.com/wrenchline/tread/pkg/handlers"
	"github.com/wrenchline/tread/pkg/routes"
)

// Handler provides the HTTP endpoint for the dashboard overview.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a Handler over the given overview system.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "overview"),
	}
}

// Routes returns the route group definition for overview endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/overview",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.Get},
		},
	}
}

// Get returns the combined dashboard payload.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.sys.Build(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, h.logger, http.StatusOK, result)
}
