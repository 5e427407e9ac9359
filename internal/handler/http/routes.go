package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Route prefixes. Configured reset aliases serve the same router as
// PasswordRoutePrefix.
const (
	UsersRoutePrefix    = "/api/users"
	PasswordRoutePrefix = "/api/password"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withSecurityHeaders)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   h.allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders:   []string{traceIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Route(UsersRoutePrefix, func(r chi.Router) {
		// routes without authorization
		r.Post("/register", h.register)
		r.Post("/login", h.login)

		// routes with authorization
		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Get("/me", h.me)
			r.Patch("/updatePassword", h.updatePassword)
		})
	})

	passwordRouter := h.passwordRoutes()
	for _, prefix := range h.passwordPrefixes() {
		router.Mount(prefix, passwordRouter)
	}

	router.Get("/api/version", h.getServerVersion)
	router.Get("/healthz", h.health)
	router.Method(http.MethodGet, "/metrics", h.metrics)

	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.notFound)

	return router
}

// passwordRoutes is defined once and mounted under every password prefix.
func (h *Handler) passwordRoutes() chi.Router {
	r := chi.NewRouter()
	r.Post("/forgotPassword", h.forgotPassword)
	r.Post("/resetPassword/{token}", h.resetPassword)
	r.Patch("/resetPassword/{token}", h.resetPassword)

	r.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Patch("/updatePassword", h.updatePassword)
	})

	return r
}

// passwordPrefixes returns the canonical prefix followed by the configured
// aliases, normalized and without duplicates.
func (h *Handler) passwordPrefixes() []string {
	seen := map[string]bool{PasswordRoutePrefix: true, UsersRoutePrefix: true}
	prefixes := []string{PasswordRoutePrefix}

	for _, alias := range h.resetRouteAliases {
		alias = "/" + strings.Trim(strings.TrimSpace(alias), "/")
		if alias == "/" || seen[alias] {
			continue
		}
		seen[alias] = true
		prefixes = append(prefixes, alias)
	}

	return prefixes
}
