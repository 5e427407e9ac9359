package http

import (
	"net/http"

	"github.com/MKhiriev/campus-auth/internal/logger"
	"github.com/MKhiriev/campus-auth/internal/utils"
)

// auth is an HTTP middleware that enforces bearer-token authentication.
//
// It extracts the token from the "Authorization" header, verifies it via
// [service.AuthService.ParseToken] and, on success, stores the subject in the
// request context with [utils.WithUserID] before delegating to next.
//
// Requests are rejected with 401 when the header is absent, is not of the
// form "Bearer <token>", or carries a token that fails verification.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			h.writeError(w, r, opAuth, ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			h.writeError(w, r, opAuth, err)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			h.writeError(w, r, opAuth, err)
			return
		}

		// downstream log lines carry the subject
		l := logger.FromContext(ctx).With().Str("user_id", token.UserID).Logger()
		ctx = utils.WithUserID(l.WithContext(ctx), token.UserID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
