package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warikango/warikan/pkg/middleware"
)

func okHandler(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	})
}

func TestAPIKey(t *testing.T) {
	t.Run("disabled when no key configured", func(t *testing.T) {
		var called bool
		mw := middleware.APIKey("")(okHandler(&called))

		req := httptest.NewRequest(http.MethodPost, "/bills/split", nil)
		w := httptest.NewRecorder()
		mw.ServeHTTP(w, req)

		assert.True(t, called)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("rejects missing key", func(t *testing.T) {
		var called bool
		mw := middleware.APIKey("secret")(okHandler(&called))

		req := httptest.NewRequest(http.MethodPost, "/bills/split", nil)
		w := httptest.NewRecorder()
		mw.ServeHTTP(w, req)

		assert.False(t, called)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects wrong key", func(t *testing.T) {
		var called bool
		mw := middleware.APIKey("secret")(okHandler(&called))

		req := httptest.NewRequest(http.MethodPost, "/bills/split", nil)
		req.Header.Set("X-API-Key", "wrong")
		w := httptest.NewRecorder()
		mw.ServeHTTP(w, req)

		assert.False(t, called)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("accepts matching key", func(t *testing.T) {
		var called bool
		mw := middleware.APIKey("secret")(okHandler(&called))

		req := httptest.NewRequest(http.MethodPost, "/bills/split", nil)
		req.Header.Set("X-API-Key", "secret")
		w := httptest.NewRecorder()
		mw.ServeHTTP(w, req)

		assert.True(t, called)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
