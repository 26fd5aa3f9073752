package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/storefront/backend/docs"
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
	"github.com/storefront/backend/internal/infrastructure/scheduler"
	"github.com/storefront/backend/internal/infrastructure/storage"
	"github.com/storefront/backend/internal/infrastructure/telemetry"
	"github.com/storefront/backend/internal/interfaces/http/handler"
	"github.com/storefront/backend/internal/interfaces/http/middleware"
	"github.com/storefront/backend/internal/interfaces/http/router"
)

//	@title			Storefront API
//	@version		1.0
//	@description	Online store backend: catalog, carts, checkout, customers and tagging.

//	@contact.name	Storefront Maintainers
//	@contact.url	https://github.com/storefront/backend

//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html

//	@host		localhost:8080
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer token authentication. Format: "Bearer {token}"

const (
	shutdownTimeout = 30 * time.Second
	slowQuery       = 200 * time.Millisecond
	// presigned download links for product images
	imageURLTTL = 15 * time.Minute
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting storefront",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// Telemetry first so the database callbacks see the global providers
	tracerProvider, err := telemetry.NewTracerProvider(ctx, telemetry.ConfigFrom(cfg.Telemetry), log)
	if err != nil {
		log.Fatal("Failed to initialize tracing", zap.Error(err))
	}
	meterProvider, err := telemetry.NewMeterProvider(ctx, telemetry.MetricsConfig{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		ExportInterval:    cfg.Telemetry.MetricsInterval,
		ServiceName:       cfg.Telemetry.ServiceName,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize metrics", zap.Error(err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := meterProvider.Shutdown(shutdownCtx); err != nil {
			log.Error("Error shutting down meter provider", zap.Error(err))
		}
		if err := tracerProvider.Shutdown(shutdownCtx); err != nil {
			log.Error("Error shutting down tracer provider", zap.Error(err))
		}
	}()

	gormLog := logger.NewGormLogger(log, logger.GormLevel(cfg.Log.Level), slowQuery)
	db, err := persistence.NewDatabase(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	if cfg.Telemetry.DBTraceEnabled {
		tracingCfg := telemetry.DefaultDBTracingConfig()
		tracingCfg.Enabled = true
		tracingCfg.LogFullSQL = !cfg.IsProduction()
		if err := telemetry.RegisterDBTracing(db.DB, tracingCfg, log); err != nil {
			log.Warn("Database tracing disabled", zap.Error(err))
		}
	}
	dbMetrics, err := telemetry.RegisterDBMetrics(db.DB, meterProvider, telemetry.DBMetricsConfig{
		Enabled:            meterProvider.IsEnabled(),
		SlowQueryThreshold: slowQuery,
	}, log)
	if err != nil {
		log.Warn("Database metrics disabled", zap.Error(err))
	}
	if dbMetrics != nil {
		dbMetrics.StartPoolStatsCollection(ctx)
		defer dbMetrics.Stop()
	}

	// Redis backs idempotency keys and the token blacklist; development
	// falls back to in-memory stores
	caches := cache.NewFactory(cfg.Redis,
		cache.WithLogger(log),
		cache.WithInMemoryFallback(!cfg.IsProduction()),
	)
	if err := caches.Connect(ctx); err != nil {
		log.Fatal("Failed to connect to redis", zap.Error(err))
	}
	defer func() {
		if err := caches.Close(); err != nil {
			log.Error("Error closing cache", zap.Error(err))
		}
	}()

	var images catalogapp.ImageStorage
	if cfg.Storage.Enabled {
		s3, err := storage.NewS3ImageStorage(&cfg.Storage,
			storage.WithLogger(log),
			storage.WithPresignExpiration(cfg.Storage.PresignExpiration),
		)
		if err != nil {
			log.Fatal("Failed to initialize object storage", zap.Error(err))
		}
		if err := s3.EnsureBucket(ctx); err != nil {
			log.Fatal("Failed to prepare image bucket", zap.Error(err), zap.String("bucket", s3.Bucket()))
		}
		images = s3
	} else {
		images = storage.NewStubImageStorage("http://localhost:" + cfg.App.Port + "/media")
		log.Info("Object storage disabled, using stub image URLs")
	}

	// Repositories
	categoryRepo := persistence.NewGormCategoryRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)
	promotionRepo := persistence.NewGormPromotionRepository(db.DB)
	reviewRepo := persistence.NewGormReviewRepository(db.DB)
	cartRepo := persistence.NewGormCartRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	customerRepo := persistence.NewGormCustomerRepository(db.DB)
	addressRepo := persistence.NewGormAddressRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)
	tagRepo := persistence.NewGormTagRepository(db.DB)
	taggedItemRepo := persistence.NewGormTaggedItemRepository(db.DB)
	transactor := persistence.NewGormTransactor(db.DB)

	eventBus := event.NewInMemoryEventBus(log)
	idempotency := caches.IdempotencyStore()
	blacklist := caches.TokenBlacklist()
	jwtService := auth.NewJWTService(cfg.JWT)

	// Application services
	categoryService := catalogapp.NewCategoryService(categoryRepo, productRepo, eventBus, log)
	productService := catalogapp.NewProductService(productRepo, categoryRepo, promotionRepo, orderRepo, eventBus,
		catalogapp.WithImageStorage(images, imageURLTTL),
		catalogapp.WithProductLogger(log),
	)
	promotionService := catalogapp.NewPromotionService(promotionRepo, eventBus, log)
	reviewService := catalogapp.NewReviewService(reviewRepo, productRepo)

	businessMetrics, err := telemetry.NewBusinessMetrics(telemetry.BusinessMetricsConfig{
		Meter:  meterProvider.Meter("storefront"),
		Logger: log,
		Stock:  productService,
	})
	if err != nil {
		log.Fatal("Failed to register business metrics", zap.Error(err))
	}
	if meterProvider.IsEnabled() {
		businessMetrics.StartPeriodicCollection(ctx, cfg.Telemetry.MetricsInterval)
		defer businessMetrics.Stop()
	}

	cartService := cartapp.NewCartService(cartRepo, productRepo, cfg.Cart.TTL,
		cartapp.WithCartLogger(log),
		cartapp.WithCartMetrics(businessMetrics),
	)
	checkoutService := orderapp.NewCheckoutService(transactor, eventBus, log,
		orderapp.WithIdempotency(idempotency, 24*time.Hour),
		orderapp.WithCheckoutMetrics(businessMetrics),
		orderapp.WithCartTTL(cfg.Cart.TTL),
	)
	orderService := orderapp.NewOrderService(orderRepo, customerRepo, eventBus, businessMetrics, log)
	authService := identityapp.NewAuthService(transactor.Accounts(), userRepo, jwtService, blacklist, eventBus, log)
	customerService := identityapp.NewCustomerService(customerRepo, addressRepo, log)

	targets := taggingapp.NewTargetResolver().
		Register(tagging.EntityKindProduct, productService.Exists).
		Register(tagging.EntityKindCategory, categoryRepo.ExistsByID).
		Register(tagging.EntityKindPromotion, taggingapp.FromFinder(promotionRepo.FindByID)).
		Register(tagging.EntityKindCustomer, customerRepo.ExistsByID).
		Register(tagging.EntityKindOrder, orderRepo.ExistsByID)
	tagService := taggingapp.NewTagService(tagRepo, taggedItemRepo, targets, log)

	// Event handlers. Tag purging is keyed by event id so a redelivered
	// delete does not run twice.
	purgeHandler := event.NewIdempotentHandler("tag_purge", taggingapp.NewPurgeOnDeleteHandler(tagService), idempotency, log)
	placedHandler := orderapp.NewOrderPlacedNotifier(log)
	auditHandler := event.NewAuditLogHandler(event.NewEventSerializer(), log)
	eventBus.Subscribe(purgeHandler)
	eventBus.Subscribe(placedHandler)
	eventBus.Subscribe(auditHandler)
	log.Info("Event handlers registered",
		zap.Strings("tag_purge_events", purgeHandler.EventTypes()),
		zap.Strings("order_placed_events", placedHandler.EventTypes()),
		zap.Strings("audit_events", auditHandler.EventTypes()),
	)

	if err := eventBus.Start(ctx); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}
	defer func() {
		if err := eventBus.Stop(context.Background()); err != nil {
			log.Error("Error stopping event bus", zap.Error(err))
		}
	}()

	if cfg.Maintenance.Enabled {
		jobs, err := scheduler.New(scheduler.Config{
			Workers:       cfg.Maintenance.Workers,
			QueueSize:     16,
			JobTimeout:    cfg.Maintenance.JobTimeout,
			RetryAttempts: cfg.Maintenance.RetryAttempts,
			RetryDelay:    cfg.Maintenance.RetryDelay,
		}, scheduler.NewTasks().
			Register(scheduler.JobPurgeExpiredCarts, scheduler.PurgeExpiredCarts(cartService, log)), log)
		if err != nil {
			log.Fatal("Invalid maintenance configuration", zap.Error(err))
		}
		if err := jobs.Start(ctx); err != nil {
			log.Fatal("Failed to start job scheduler", zap.Error(err))
		}
		purgeTrigger := scheduler.NewDailyTrigger(scheduler.DailyTriggerConfig{
			Hour:   cfg.Maintenance.CartPurgeHour,
			Minute: cfg.Maintenance.CartPurgeMinute,
		}, jobs, log, scheduler.JobPurgeExpiredCarts)
		if err := purgeTrigger.Start(ctx); err != nil {
			log.Fatal("Failed to start cart purge trigger", zap.Error(err))
		}
		defer func() {
			stopCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := purgeTrigger.Stop(stopCtx); err != nil {
				log.Error("Error stopping cart purge trigger", zap.Error(err))
			}
			if err := jobs.Stop(stopCtx); err != nil {
				log.Error("Error stopping job scheduler", zap.Error(err))
			}
		}()
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Order matters: the request id must exist before logging and tracing,
	// and tracing must wrap everything that records span attributes
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Tracing(middleware.TracingConfig{
		ServiceName: cfg.Telemetry.ServiceName,
		Enabled:     tracerProvider.IsEnabled(),
	}))
	engine.Use(middleware.SpanAttributes())
	engine.Use(middleware.HTTPMetrics(middleware.HTTPMetricsConfig{MeterProvider: meterProvider, Logger: log}))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))
	if cfg.HTTP.RateLimitEnabled {
		engine.Use(middleware.RateLimit(middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	checks := map[string]handler.HealthCheck{"database": db.Ping}
	if caches.UsesRedis() {
		checks["redis"] = caches.Ping
	}
	systemHandler := handler.NewSystemHandler(cfg.App.Name, telemetry.ServiceVersion, checks)
	engine.GET("/health", systemHandler.Health)

	engine.GET("/swagger/*any",
		middleware.SwaggerProtection(middleware.SwaggerConfig{
			Enabled:    cfg.Swagger.Enabled,
			AllowedIPs: cfg.Swagger.AllowedIPs,
		}),
		ginSwagger.WrapHandler(swaggerFiles.Handler),
	)

	r := router.NewRouter(engine)
	r.Register(router.Storefront(router.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Category:  handler.NewCategoryHandler(categoryService),
		Product:   handler.NewProductHandler(productService),
		Review:    handler.NewReviewHandler(reviewService),
		Promotion: handler.NewPromotionHandler(promotionService),
		Cart:      handler.NewCartHandler(cartService),
		Order:     handler.NewOrderHandler(checkoutService, orderService),
		Customer:  handler.NewCustomerHandler(customerService),
		Tag:       handler.NewTagHandler(tagService),
	}, router.Guards{
		Authenticated: middleware.JWTAuth(jwtService, blacklist, log),
		Staff:         middleware.RequireStaff(log),
	})...)
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}
	stop()

	log.Info("Server exited gracefully")
}
