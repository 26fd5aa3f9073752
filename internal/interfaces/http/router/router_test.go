package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/storefront/backend/internal/interfaces/http/handler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestNewRouter(t *testing.T) {
	r := NewRouter(gin.New())
	assert.Equal(t, "v1", r.apiVersion)
	assert.Empty(t, r.registrars)

	r = NewRouter(gin.New(), WithAPIVersion("v2"))
	assert.Equal(t, "v2", r.apiVersion)
}

func TestRouterSetup(t *testing.T) {
	engine := gin.New()
	var hits []string
	mark := func(name string) gin.HandlerFunc {
		return func(c *gin.Context) {
			hits = append(hits, name)
			c.Next()
		}
	}

	group := NewDomainGroup("ping", "/ping").Use(mark("group"))
	group.GET("", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	api := NewRouter(engine, WithMiddleware(mark("api"))).Register(group).Setup()
	assert.Equal(t, "/api/v1", api.BasePath())

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", w.Body.String())
	assert.Equal(t, []string{"api", "group"}, hits)
}

func TestDomainGroup(t *testing.T) {
	ok := func(c *gin.Context) { c.Status(http.StatusOK) }

	group := NewDomainGroup("things", "/things")
	group.GET("", ok).POST("", ok).PUT("/:id", ok).PATCH("/:id", ok).DELETE("/:id", ok)
	sub := group.Group("parts", "/:id/parts")
	sub.GET("", ok)

	assert.Equal(t, "things", group.Name())
	assert.Equal(t, "/things", group.Prefix())
	assert.Equal(t, "/:id/parts", sub.Prefix())

	engine := gin.New()
	NewRouter(engine).Register(group).Setup()

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/api/v1/things"},
		{http.MethodPost, "/api/v1/things"},
		{http.MethodPut, "/api/v1/things/1"},
		{http.MethodPatch, "/api/v1/things/1"},
		{http.MethodDelete, "/api/v1/things/1"},
		{http.MethodGet, "/api/v1/things/1/parts"},
	} {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, nil))
		assert.Equal(t, http.StatusOK, w.Code, "%s %s", tc.method, tc.path)
	}
}

// guard stops the chain with status
func guard(status int) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.AbortWithStatus(status)
	}
}

func storefrontEngine(g Guards) *gin.Engine {
	engine := gin.New()
	h := Handlers{
		Auth:      &handler.AuthHandler{},
		Category:  &handler.CategoryHandler{},
		Product:   &handler.ProductHandler{},
		Review:    &handler.ReviewHandler{},
		Promotion: &handler.PromotionHandler{},
		Cart:      &handler.CartHandler{},
		Order:     &handler.OrderHandler{},
		Customer:  &handler.CustomerHandler{},
		Tag:       &handler.TagHandler{},
	}
	NewRouter(engine).Register(Storefront(h, g)...).Setup()
	return engine
}

func TestStorefront_RouteTable(t *testing.T) {
	engine := storefrontEngine(Guards{Authenticated: guard(401), Staff: guard(403)})

	registered := map[string]bool{}
	for _, r := range engine.Routes() {
		registered[r.Method+" "+r.Path] = true
	}

	for _, route := range []string{
		"POST /api/v1/auth/register",
		"POST /api/v1/auth/login",
		"POST /api/v1/auth/refresh",
		"POST /api/v1/auth/logout",
		"GET /api/v1/products",
		"PATCH /api/v1/products/:id",
		"POST /api/v1/products/:id/image",
		"POST /api/v1/products/:id/promotions/:promotion_id",
		"DELETE /api/v1/products/:id/promotions/:promotion_id",
		"GET /api/v1/products/:id/reviews/:review_id",
		"DELETE /api/v1/categories/:id",
		"PATCH /api/v1/promotions/:id",
		"POST /api/v1/carts",
		"PATCH /api/v1/carts/:cart_id/items/:item_id",
		"POST /api/v1/orders",
		"PATCH /api/v1/orders/:id",
		"PUT /api/v1/customers/me",
		"DELETE /api/v1/customers/me/addresses/:id",
		"GET /api/v1/customers/:id",
		"GET /api/v1/tags/:kind/:object_id",
		"DELETE /api/v1/tags/:kind/:object_id/:tag_id",
	} {
		assert.True(t, registered[route], "missing route %s", route)
	}
}

func TestStorefront_Guards(t *testing.T) {
	// Authenticated passes through so the staff guard decides
	engine := storefrontEngine(Guards{
		Authenticated: func(c *gin.Context) { c.Next() },
		Staff:         guard(http.StatusForbidden),
	})

	staffOnly := []struct{ method, path string }{
		{http.MethodPost, "/api/v1/products"},
		{http.MethodDelete, "/api/v1/products/1"},
		{http.MethodPost, "/api/v1/categories"},
		{http.MethodPatch, "/api/v1/promotions/1"},
		{http.MethodPatch, "/api/v1/orders/1"},
		{http.MethodGet, "/api/v1/customers"},
		{http.MethodPost, "/api/v1/tags"},
		{http.MethodPost, "/api/v1/tags/product/1"},
	}
	for _, tc := range staffOnly {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, nil))
		assert.Equal(t, http.StatusForbidden, w.Code, "%s %s", tc.method, tc.path)
	}
}

func TestStorefront_AuthenticatedGroups(t *testing.T) {
	engine := storefrontEngine(Guards{Authenticated: guard(http.StatusUnauthorized), Staff: guard(http.StatusForbidden)})

	for _, path := range []string{"/api/v1/orders", "/api/v1/customers/me", "/api/v1/customers/me/addresses"} {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}
