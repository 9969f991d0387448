package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/fluxion-io/fluxion/modules/core/services"
	"github.com/fluxion-io/fluxion/pkg/composables"
	"github.com/fluxion-io/fluxion/pkg/httpapi"
)

// Authenticate resolves the Authorization bearer API key into an actor in the
// request context. Requests without a valid key never reach resource handlers.
func Authenticate(authService *services.AuthService) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			apiKey, ok := bearerToken(r)
			if !ok {
				_ = httpapi.WriteError(w, http.StatusUnauthorized, "UNAUTHORIZED", "missing bearer API key", nil)
				return
			}
			u, _, err := authService.AuthenticateAPIKey(r.Context(), apiKey)
			if err != nil {
				switch {
				case errors.Is(err, services.ErrInvalidAPIKey):
					_ = httpapi.WriteError(w, http.StatusUnauthorized, "UNAUTHORIZED", "invalid API key", nil)
				case errors.Is(err, services.ErrTenantSuspended):
					_ = httpapi.WriteError(w, http.StatusForbidden, "TENANT_SUSPENDED", "tenant is suspended", nil)
				default:
					logger := composables.UseLogger(r.Context())
					logger.WithError(err).Error("authentication failed")
					_ = httpapi.WriteError(w, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "internal server error", nil)
				}
				return
			}
			next.ServeHTTP(w, r.WithContext(composables.WithActor(r.Context(), u)))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
