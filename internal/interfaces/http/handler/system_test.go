package handler_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storefront/backend/internal/interfaces/http/handler"
	"github.com/storefront/backend/tests/testutil"
)

func TestSystemHandler_Health(t *testing.T) {
	t.Run("wired application is healthy", func(t *testing.T) {
		app := testutil.NewApp(t)
		w := app.Do(t, http.MethodGet, "/health", nil, "")
		testutil.AssertStatus(t, w, http.StatusOK)

		got := testutil.DecodeData[handler.HealthResponse](t, w)
		assert.Equal(t, "healthy", got.Status)
		assert.Equal(t, "storefront", got.Name)
		assert.Equal(t, map[string]string{"database": "ok"}, got.Checks)
	})

	t.Run("a failing check reports unavailable", func(t *testing.T) {
		h := handler.NewSystemHandler("storefront", "1.0.0", map[string]handler.HealthCheck{
			"database": func(context.Context) error { return nil },
			"redis":    func(context.Context) error { return errors.New("connection refused") },
		})
		engine := gin.New()
		engine.GET("/health", h.Health)

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		require.Equal(t, http.StatusServiceUnavailable, w.Code)
		env := testutil.DecodeEnvelope(t, w)
		assert.False(t, env.Success)
		assert.Contains(t, string(env.Data), `"redis":"error"`)
		assert.Contains(t, string(env.Data), `"database":"ok"`)
		assert.Contains(t, string(env.Data), `"status":"unhealthy"`)
	})
}
