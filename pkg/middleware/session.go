package middleware

import (
	"net/http"

	"staymarket/pkg/auth"
	"staymarket/pkg/logger"
)

// SessionResolver asks the identity provider for the caller's session and
// attaches it to the request context. Anonymous callers pass through; the
// handlers decide which operations require identity.
func SessionResolver(provider auth.Provider, log *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if provider == nil {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, err := provider.CurrentSession(r.Context())
			if err != nil {
				log.Debug("No session resolved for request",
					"request_id", requestIDFromContext(r.Context()),
					"path", r.URL.Path,
				)
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithSession(r.Context(), session)))
		})
	}
}
