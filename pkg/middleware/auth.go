package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/coreos/go-oidc/v3/oidc"
)

// Auth returns middleware that verifies bearer tokens against the configured
// OIDC issuer. Token issuance and user management belong to the hosted auth
// provider; this middleware only validates what it issued. When the config is
// disabled, requests pass through unverified.
func Auth(ctx context.Context, cfg *AuthConfig, logger *slog.Logger) (func(http.Handler) http.Handler, error) {
	if !cfg.Enabled {
		return func(next http.Handler) http.Handler { return next }, nil
	}

	provider, err := oidc.NewProvider(ctx, cfg.Issuer)
	if err != nil {
		return nil, fmt.Errorf("discover oidc issuer %s: %w", cfg.Issuer, err)
	}

	oidcCfg := &oidc.Config{ClientID: cfg.Audience}
	if cfg.Audience == "" {
		oidcCfg = &oidc.Config{SkipClientIDCheck: true}
	}
	verifier := provider.Verifier(oidcCfg)

	log := logger.With("middleware", "auth")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := bearerToken(r)
			if !ok {
				unauthorized(w, "missing bearer token")
				return
			}

			if _, err := verifier.Verify(r.Context(), raw); err != nil {
				log.Warn("token verification failed", "error", err)
				unauthorized(w, "invalid token")
				return
			}

			next.ServeHTTP(w, r)
		})
	}, nil
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return "", false
	}
	return strings.TrimSpace(token), true
}

func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
