package api

import (
	"net/http"

	"github.com/wrenchline/tread/internal/config"
	"github.com/wrenchline/tread/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	domain *Domain,
	cfg *config.Config,
) {
	routes.Register(
		mux,
		domain.Claims.Handler().Routes(),
		domain.Agreements.Handler().Routes(),
		domain.Dealers.Handler().Routes(),
		domain.Attachments.Handler(cfg.API.MaxUploadSizeBytes()).Routes(),
		domain.Overview.Handler().Routes(),
	)
}
