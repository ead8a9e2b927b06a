package http

import (
	"net/http"
	"strings"

	"github.com/aussiebroadwan/userdeck/internal/service"
	"github.com/aussiebroadwan/userdeck/pkg/httpx"
	"github.com/aussiebroadwan/userdeck/pkg/slogx"
)

// AuthnMiddleware validates the bearer token and attaches the identity it
// carries to the request context. Every failure mode (missing header, bad
// signature, expired, malformed, unknown role) produces the same 401 body;
// the sub-reason only goes to the logs.
func AuthnMiddleware(tokens *service.TokenService) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			authz := r.Header.Get("Authorization")
			if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
				writeBearerError(w)
				return
			}
			raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))

			identity, err := tokens.Validate(raw)
			if err != nil {
				log.Warn("token validation failed", "err", err)
				writeBearerError(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(contextWithIdentity(ctx, identity)))
		})
	}
}

// RequireAdmin rejects authenticated non-admin callers with 403. It must sit
// inside AuthnMiddleware in the chain.
func RequireAdmin() httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := IdentityFrom(r.Context())
			if !ok {
				writeBearerError(w)
				return
			}
			if !identity.IsAdmin {
				httpx.ErrForbidden.WriteError(w)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RFC 6750 challenge plus the single collapsed 401 body.
func writeBearerError(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token"`)
	httpx.ErrInvalidToken.WriteError(w)
}
