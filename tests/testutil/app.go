package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	cartapp "github.com/storefront/backend/internal/application/cart"
	catalogapp "github.com/storefront/backend/internal/application/catalog"
	identityapp "github.com/storefront/backend/internal/application/identity"
	orderapp "github.com/storefront/backend/internal/application/order"
	taggingapp "github.com/storefront/backend/internal/application/tagging"
	"github.com/storefront/backend/internal/domain/tagging"
	"github.com/storefront/backend/internal/infrastructure/auth"
	"github.com/storefront/backend/internal/infrastructure/cache"
	"github.com/storefront/backend/internal/infrastructure/config"
	"github.com/storefront/backend/internal/infrastructure/event"
	"github.com/storefront/backend/internal/infrastructure/logger"
	"github.com/storefront/backend/internal/infrastructure/persistence"
	"github.com/storefront/backend/internal/infrastructure/storage"
	"github.com/storefront/backend/internal/interfaces/http/handler"
	"github.com/storefront/backend/internal/interfaces/http/middleware"
	"github.com/storefront/backend/internal/interfaces/http/router"
)

// MaxTestBodyBytes is the request body limit of App
const MaxTestBodyBytes = 64 << 10

// TestJWTConfig is the token configuration used by App
func TestJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:                 "test-secret-key-with-at-least-32-characters",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: time.Hour,
		Issuer:                 "storefront-test",
		MaxRefreshCount:        3,
	}
}

// App is the storefront API wired against an in-memory SQLite database.
// Everything behind the router is real: repositories, services, the event
// bus and the JWT guards.
type App struct {
	Engine      *gin.Engine
	DB          *gorm.DB
	JWT         *auth.JWTService
	Bus         *event.InMemoryEventBus
	Idempotency *cache.InMemoryIdempotencyStore
	Blacklist   *auth.InMemoryTokenBlacklist

	Products *catalogapp.ProductService
	Carts    *cartapp.CartService
	Tags     *taggingapp.TagService
}

// NewApp builds the full application with a 30 day cart TTL
func NewApp(t *testing.T) *App {
	t.Helper()
	return NewAppWithCartTTL(t, 30*24*time.Hour)
}

// NewAppWithCartTTL builds the application with a custom cart TTL
func NewAppWithCartTTL(t *testing.T, cartTTL time.Duration) *App {
	t.Helper()
	return NewAppOn(t, NewTestDB(t), cartTTL)
}

// NewAppOn builds the application on an already migrated database, such as
// a PostgreSQL container in the integration suite
func NewAppOn(t *testing.T, db *gorm.DB, cartTTL time.Duration) *App {
	t.Helper()

	log := zap.NewNop()

	bus := event.NewInMemoryEventBus(log)
	require.NoError(t, bus.Start(context.Background()))

	idem := cache.NewInMemoryIdempotencyStore(time.Minute)
	t.Cleanup(func() { idem.Close() })
	blacklist := auth.NewInMemoryTokenBlacklist()
	jwtService := auth.NewJWTService(TestJWTConfig())

	categoryRepo := persistence.NewGormCategoryRepository(db)
	productRepo := persistence.NewGormProductRepository(db)
	promotionRepo := persistence.NewGormPromotionRepository(db)
	reviewRepo := persistence.NewGormReviewRepository(db)
	cartRepo := persistence.NewGormCartRepository(db)
	orderRepo := persistence.NewGormOrderRepository(db)
	customerRepo := persistence.NewGormCustomerRepository(db)
	addressRepo := persistence.NewGormAddressRepository(db)
	userRepo := persistence.NewGormUserRepository(db)
	tagRepo := persistence.NewGormTagRepository(db)
	itemRepo := persistence.NewGormTaggedItemRepository(db)
	tx := persistence.NewGormTransactor(db)

	categories := catalogapp.NewCategoryService(categoryRepo, productRepo, bus, log)
	products := catalogapp.NewProductService(productRepo, categoryRepo, promotionRepo, orderRepo, bus,
		catalogapp.WithImageStorage(storage.NewStubImageStorage(""), time.Minute),
		catalogapp.WithProductLogger(log),
	)
	promotions := catalogapp.NewPromotionService(promotionRepo, bus, log)
	reviews := catalogapp.NewReviewService(reviewRepo, productRepo)
	carts := cartapp.NewCartService(cartRepo, productRepo, cartTTL, cartapp.WithCartLogger(log))
	checkout := orderapp.NewCheckoutService(tx, bus, log,
		orderapp.WithIdempotency(idem, time.Hour),
		orderapp.WithCartTTL(cartTTL),
	)
	orders := orderapp.NewOrderService(orderRepo, customerRepo, bus, nil, log)
	authService := identityapp.NewAuthService(tx.Accounts(), userRepo, jwtService, blacklist, bus, log)
	customers := identityapp.NewCustomerService(customerRepo, addressRepo, log)

	targets := taggingapp.NewTargetResolver().
		Register(tagging.EntityKindProduct, products.Exists).
		Register(tagging.EntityKindCategory, categoryRepo.ExistsByID).
		Register(tagging.EntityKindPromotion, taggingapp.FromFinder(promotionRepo.FindByID)).
		Register(tagging.EntityKindCustomer, customerRepo.ExistsByID).
		Register(tagging.EntityKindOrder, orderRepo.ExistsByID)
	tags := taggingapp.NewTagService(tagRepo, itemRepo, targets, log)
	bus.Subscribe(taggingapp.NewPurgeOnDeleteHandler(tags))
	bus.Subscribe(orderapp.NewOrderPlacedNotifier(log))

	middleware.SetupValidator()
	engine := gin.New()
	engine.Use(
		middleware.RequestID(),
		logger.Recovery(log),
		logger.GinMiddleware(log),
		middleware.Secure(),
		middleware.BodyLimit(MaxTestBodyBytes),
	)

	r := router.NewRouter(engine)
	r.Register(router.Storefront(router.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Category:  handler.NewCategoryHandler(categories),
		Product:   handler.NewProductHandler(products),
		Review:    handler.NewReviewHandler(reviews),
		Promotion: handler.NewPromotionHandler(promotions),
		Cart:      handler.NewCartHandler(carts),
		Order:     handler.NewOrderHandler(checkout, orders),
		Customer:  handler.NewCustomerHandler(customers),
		Tag:       handler.NewTagHandler(tags),
	}, router.Guards{
		Authenticated: middleware.JWTAuth(jwtService, blacklist, log),
		Staff:         middleware.RequireStaff(log),
	})...)
	r.Setup()

	system := handler.NewSystemHandler("storefront", "test", map[string]handler.HealthCheck{
		"database": func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	})
	engine.GET("/health", system.Health)

	return &App{
		Engine:      engine,
		DB:          db,
		JWT:         jwtService,
		Bus:         bus,
		Idempotency: idem,
		Blacklist:   blacklist,
		Products:    products,
		Carts:       carts,
		Tags:        tags,
	}
}

// StaffToken issues an access token for a staff account that has no user row
func (a *App) StaffToken(t *testing.T) string {
	t.Helper()
	pair, err := a.JWT.GenerateTokenPair(auth.Subject{UserID: uuid.New(), Username: "admin", IsStaff: true})
	require.NoError(t, err)
	return pair.AccessToken
}

// Customer is a registered account and its access token
type Customer struct {
	UserID uuid.UUID
	Token  string
}

// RegisterCustomer signs up a user through the API and logs in
func (a *App) RegisterCustomer(t *testing.T, username string) Customer {
	t.Helper()

	w := a.Do(t, http.MethodPost, "/api/v1/auth/register", map[string]any{
		"username": username,
		"password": "correct-horse-battery",
		"email":    username + "@example.com",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	user := DecodeData[identityapp.UserResponse](t, w)

	w = a.Do(t, http.MethodPost, "/api/v1/auth/login", map[string]any{
		"username": username,
		"password": "correct-horse-battery",
	}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	tokens := DecodeData[identityapp.TokenResponse](t, w)

	return Customer{UserID: user.ID, Token: tokens.AccessToken}
}
