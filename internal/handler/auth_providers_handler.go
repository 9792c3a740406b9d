package handler

import (
	"net/http"
)

// ProvidersConfig describes how admins sign in. Derived from AUTH_PROVIDER
// and AUTH_REQUIRED at startup.
type ProvidersConfig struct {
	// Provider is "firebase" or "local"
	Provider string
	// AuthRequired is false only in development, where every admin route is open
	AuthRequired bool
}

// ProvidersHandler handles GET /api/auth/providers
type ProvidersHandler struct {
	cfg ProvidersConfig
}

// NewProvidersHandler creates a ProvidersHandler with the given configuration.
func NewProvidersHandler(cfg ProvidersConfig) *ProvidersHandler {
	return &ProvidersHandler{cfg: cfg}
}

// providersResponse is the JSON response shape for GET /api/auth/providers.
type providersResponse struct {
	Providers    []string `json:"providers"`
	AuthRequired bool     `json:"auth_required"`
}

// Providers handles GET /api/auth/providers.
// Only email and password sign-in exists; the list names the backend that checks it.
func (h *ProvidersHandler) Providers(w http.ResponseWriter, r *http.Request) {
	providers := []string{}
	if h.cfg.Provider != "" {
		providers = append(providers, h.cfg.Provider)
	}
	writeJSON(w, http.StatusOK, providersResponse{Providers: providers, AuthRequired: h.cfg.AuthRequired})
}
