package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/warikango/warikan/pkg/response"
)

// APIKey returns middleware that requires the X-API-Key header to match
// key. With an empty key the check is disabled and every request passes
// through, so deployments without a key configured stay open.
func APIKey(key string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if key == "" {
				next.ServeHTTP(w, r)
				return
			}

			got := r.Header.Get("X-API-Key")
			if got == "" {
				response.Unauthorized(w, "Missing API key")
				return
			}
			if subtle.ConstantTimeCompare([]byte(got), []byte(key)) != 1 {
				response.Unauthorized(w, "Invalid API key")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
