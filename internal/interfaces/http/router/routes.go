package router

import (
	"github.com/gin-gonic/gin"
	"github.com/storefront/backend/internal/interfaces/http/handler"
)

// Handlers are the resource handlers mounted by Storefront
type Handlers struct {
	Auth      *handler.AuthHandler
	Category  *handler.CategoryHandler
	Product   *handler.ProductHandler
	Review    *handler.ReviewHandler
	Promotion *handler.PromotionHandler
	Cart      *handler.CartHandler
	Order     *handler.OrderHandler
	Customer  *handler.CustomerHandler
	Tag       *handler.TagHandler
}

// Guards are the access-control middleware applied per route
type Guards struct {
	// Authenticated requires a valid access token
	Authenticated gin.HandlerFunc
	// Staff requires the is_staff claim and must follow Authenticated
	Staff gin.HandlerFunc
}

// Storefront returns the route groups of the storefront API. Catalog reads,
// reviews and carts are public; catalog writes and tagging need staff;
// orders and customer profiles need a logged-in user.
func Storefront(h Handlers, g Guards) []RouteRegistrar {
	staff := []gin.HandlerFunc{g.Authenticated, g.Staff}
	withStaff := func(fn gin.HandlerFunc) []gin.HandlerFunc {
		return append(append([]gin.HandlerFunc{}, staff...), fn)
	}

	auth := NewDomainGroup("auth", "/auth")
	auth.POST("/register", h.Auth.Register)
	auth.POST("/login", h.Auth.Login)
	auth.POST("/refresh", h.Auth.Refresh)
	auth.POST("/logout", g.Authenticated, h.Auth.Logout)
	auth.GET("/me", g.Authenticated, h.Auth.Me)

	categories := NewDomainGroup("categories", "/categories")
	categories.GET("", h.Category.List)
	categories.POST("", withStaff(h.Category.Create)...)
	categories.GET("/:id", h.Category.Get)
	categories.PATCH("/:id", withStaff(h.Category.Update)...)
	categories.DELETE("/:id", withStaff(h.Category.Delete)...)

	products := NewDomainGroup("products", "/products")
	products.GET("", h.Product.List)
	products.POST("", withStaff(h.Product.Create)...)
	products.POST("/import", withStaff(h.Product.Import)...)
	products.GET("/:id", h.Product.Get)
	products.PATCH("/:id", withStaff(h.Product.Update)...)
	products.DELETE("/:id", withStaff(h.Product.Delete)...)
	products.POST("/:id/image", withStaff(h.Product.RequestImageUpload)...)
	products.POST("/:id/promotions/:promotion_id", withStaff(h.Product.AttachPromotion)...)
	products.DELETE("/:id/promotions/:promotion_id", withStaff(h.Product.DetachPromotion)...)

	reviews := products.Group("reviews", "/:id/reviews")
	reviews.GET("", h.Review.List)
	reviews.POST("", h.Review.Create)
	reviews.GET("/:review_id", h.Review.Get)
	reviews.PATCH("/:review_id", h.Review.Update)
	reviews.DELETE("/:review_id", h.Review.Delete)

	promotions := NewDomainGroup("promotions", "/promotions")
	promotions.GET("", h.Promotion.List)
	promotions.POST("", withStaff(h.Promotion.Create)...)
	promotions.GET("/:id", h.Promotion.Get)
	promotions.PATCH("/:id", withStaff(h.Promotion.Update)...)
	promotions.DELETE("/:id", withStaff(h.Promotion.Delete)...)

	carts := NewDomainGroup("carts", "/carts")
	carts.POST("", h.Cart.Create)
	carts.GET("/:cart_id", h.Cart.Get)
	carts.DELETE("/:cart_id", h.Cart.Delete)
	items := carts.Group("cart-items", "/:cart_id/items")
	items.GET("", h.Cart.ListItems)
	items.POST("", h.Cart.AddItem)
	items.GET("/:item_id", h.Cart.GetItem)
	items.PATCH("/:item_id", h.Cart.UpdateItem)
	items.DELETE("/:item_id", h.Cart.RemoveItem)

	orders := NewDomainGroup("orders", "/orders").Use(g.Authenticated)
	orders.GET("", h.Order.List)
	orders.POST("", h.Order.Place)
	orders.GET("/:id", h.Order.Get)
	orders.PATCH("/:id", g.Staff, h.Order.UpdatePaymentStatus)
	orders.DELETE("/:id", g.Staff, h.Order.Delete)

	customers := NewDomainGroup("customers", "/customers").Use(g.Authenticated)
	customers.GET("/me", h.Customer.Me)
	customers.PUT("/me", h.Customer.UpdateMe)
	customers.GET("/me/addresses", h.Customer.ListAddresses)
	customers.POST("/me/addresses", h.Customer.AddAddress)
	customers.DELETE("/me/addresses/:id", h.Customer.RemoveAddress)
	customers.GET("", g.Staff, h.Customer.List)
	customers.GET("/:id", g.Staff, h.Customer.Get)
	customers.PATCH("/:id", g.Staff, h.Customer.Update)

	tags := NewDomainGroup("tags", "/tags")
	tags.GET("", h.Tag.List)
	tags.POST("", withStaff(h.Tag.Create)...)
	tags.GET("/:kind/:object_id", h.Tag.ListFor)
	tags.POST("/:kind/:object_id", withStaff(h.Tag.Attach)...)
	tags.DELETE("/:kind/:object_id/:tag_id", withStaff(h.Tag.Detach)...)

	return []RouteRegistrar{auth, categories, products, promotions, carts, orders, customers, tags}
}
