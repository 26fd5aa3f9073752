package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func swaggerRouter(cfg SwaggerConfig) *gin.Engine {
	router := gin.New()
	router.GET("/swagger/*any", SwaggerProtection(cfg), okHandler)
	return router
}

func requestFrom(router *gin.Engine, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil)
	req.RemoteAddr = remoteAddr
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSwaggerProtection(t *testing.T) {
	t.Run("disabled returns 404", func(t *testing.T) {
		w := requestFrom(swaggerRouter(SwaggerConfig{Enabled: false}), "127.0.0.1:1234")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "NOT_FOUND", decodeError(t, w).Code)
	})

	t.Run("enabled without whitelist allows all", func(t *testing.T) {
		w := requestFrom(swaggerRouter(SwaggerConfig{Enabled: true}), "203.0.113.9:1234")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("whitelist by ip and cidr", func(t *testing.T) {
		router := swaggerRouter(SwaggerConfig{
			Enabled:    true,
			AllowedIPs: []string{"127.0.0.1", "10.0.0.0/8", "not-an-ip"},
		})

		assert.Equal(t, http.StatusOK, requestFrom(router, "127.0.0.1:1234").Code)
		assert.Equal(t, http.StatusOK, requestFrom(router, "10.20.30.40:1234").Code)

		w := requestFrom(router, "192.168.1.1:1234")
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "FORBIDDEN", decodeError(t, w).Code)
	})
}
