// Package api assembles the API module with all domain systems and route registration.
package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/wrenchline/tread/internal/config"
	"github.com/wrenchline/tread/internal/infrastructure"
	"github.com/wrenchline/tread/pkg/middleware"
	"github.com/wrenchline/tread/pkg/module"
)

// NewModule creates the API module with all domain handlers and middleware.
func NewModule(
	ctx context.Context,
	cfg *config.Config,
	infra *infrastructure.Infrastructure,
) (*module.Module, error) {
	runtime := NewRuntime(cfg, infra)
	domain := NewDomain(runtime)

	mux := http.NewServeMux()
	registerRoutes(mux, domain, cfg)

	auth, err := middleware.Auth(ctx, &cfg.API.Auth, runtime.Logger)
	if err != nil {
		return nil, fmt.Errorf("auth middleware init failed: %w", err)
	}

	m := module.New(cfg.API.BasePath, mux)
	m.Use(middleware.CORS(&cfg.API.CORS))
	m.Use(auth)
	m.Use(middleware.Logger(runtime.Logger))

	return m, nil
}
