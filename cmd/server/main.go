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
	appledger "github.com/ledger/backend/internal/application/ledger"
	"github.com/ledger/backend/internal/domain/shared"
	"github.com/ledger/backend/internal/infrastructure/auth"
	"github.com/ledger/backend/internal/infrastructure/cache"
	"github.com/ledger/backend/internal/infrastructure/config"
	"github.com/ledger/backend/internal/infrastructure/event"
	"github.com/ledger/backend/internal/infrastructure/logger"
	"github.com/ledger/backend/internal/infrastructure/migration"
	"github.com/ledger/backend/internal/infrastructure/persistence"
	"github.com/ledger/backend/internal/infrastructure/telemetry"
	"github.com/ledger/backend/internal/interfaces/http/handler"
	"github.com/ledger/backend/internal/interfaces/http/middleware"
	"github.com/ledger/backend/internal/interfaces/http/router"
	"github.com/ledger/backend/migrations"
	"go.uber.org/zap"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting ledger backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("version", version),
	)

	// Tracing must be installed before the database so otelgorm picks up the global provider
	tracerProvider, err := telemetry.NewTracerProvider(context.Background(), telemetry.Config{
		Enabled:           cfg.Telemetry.Enabled,
		CollectorEndpoint: cfg.Telemetry.CollectorEndpoint,
		SamplingRatio:     cfg.Telemetry.SamplingRatio,
		ServiceName:       cfg.Telemetry.ServiceName,
		ServiceVersion:    version,
		Insecure:          cfg.Telemetry.Insecure,
	}, log)
	if err != nil {
		log.Fatal("Failed to initialize tracer provider", zap.Error(err))
	}

	// Initialize database connection with zap-backed GORM logger
	db, err := persistence.NewDatabase(&cfg.Database,
		persistence.WithZapLogger(log, logger.MapGormLogLevel(cfg.Log.Level), cfg.Database.SlowThreshold))
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	log.Info("Database connected", zap.String("driver", db.Driver()))

	if err := migrateSchema(db, log); err != nil {
		log.Fatal("Failed to migrate database schema", zap.Error(err))
	}

	dbSystem := "postgresql"
	if db.Driver() == config.DriverSQLite {
		dbSystem = "sqlite"
	}
	if err := telemetry.RegisterDBTracing(db.DB, telemetry.DBTracingConfig{
		Enabled:         cfg.Telemetry.Enabled && cfg.Telemetry.DBTraceEnabled,
		LogFullSQL:      cfg.Telemetry.DBLogFullSQL && !cfg.App.IsProduction(),
		SlowQueryThresh: cfg.Database.SlowThreshold,
		DBSystem:        dbSystem,
	}, log); err != nil {
		log.Fatal("Failed to register database tracing", zap.Error(err))
	}

	// Initialize repositories
	transactionRepo := persistence.NewGormTransactionRepository(db.DB)
	categoryRepo := persistence.NewGormCategoryRepository(db.DB)
	activityRepo := persistence.NewGormActivityRepository(db.DB)

	// Event bus: mutations publish, the activity log consumes
	eventBus := event.NewInMemoryEventBus(log, event.WithAsyncQueue(1024))
	activityLogHandler := appledger.NewActivityLogHandler(activityRepo, log)
	eventBus.Subscribe(activityLogHandler, activityLogHandler.EventTypes()...)
	log.Info("Event handlers registered",
		zap.Strings("activity_log_events", activityLogHandler.EventTypes()),
	)
	if err := eventBus.Start(context.Background()); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}

	// Idempotency store: Redis when enabled, in-memory otherwise
	idempotencyStore, err := cache.NewIdempotencyStoreFactory(cfg.Redis,
		cache.WithLogger(log),
		cache.WithInMemoryFallback(!cfg.App.IsProduction()),
	).CreateStore(context.Background())
	if err != nil {
		log.Fatal("Failed to create idempotency store", zap.Error(err))
	}

	// Initialize application services
	location := cfg.Ledger.Location()
	clock := shared.NewSystemClock(location)
	normalizer := appledger.NewFilterNormalizer(location)

	queryService := appledger.NewQueryService(transactionRepo)
	summaryService := appledger.NewSummaryService(transactionRepo, clock)
	mutationService := appledger.NewMutationService(transactionRepo, categoryRepo, clock, eventBus, log)
	categoryService := appledger.NewCategoryService(categoryRepo, clock)
	activityService := appledger.NewActivityService(activityRepo)

	jwtService := auth.NewJWTService(cfg.JWT)

	// Set Gin mode based on environment
	if cfg.App.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
		log.Fatal("Invalid trusted proxies", zap.Error(err))
	}

	// Global middleware; order matters: request id first so every later log line carries it
	engine.Use(middleware.RequestID())
	engine.Use(middleware.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.TracingWithConfig(middleware.TracingConfig{
		ServiceName: cfg.Telemetry.ServiceName,
		Enabled:     cfg.Telemetry.Enabled,
	}))
	securityConfig := middleware.DefaultSecurityConfig()
	securityConfig.HSTSEnabled = cfg.App.IsProduction()
	engine.Use(middleware.SecureWithConfig(securityConfig))
	engine.Use(middleware.CORSWithConfig(corsConfig(cfg.HTTP)))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	var rateLimiter *middleware.RateLimiter
	if cfg.HTTP.RateLimitEnabled {
		rateLimiter = middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		engine.Use(middleware.RateLimit(rateLimiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	// Probes stay outside the authenticated API
	healthHandler := handler.NewHealthHandler(db)
	engine.GET("/health", healthHandler.Health)
	engine.GET("/ready", healthHandler.Ready)

	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	r.Use(middleware.JWTAuthMiddleware(jwtService, log), middleware.SpanEnricher())
	router.Mount(r, router.LedgerGroups(router.Handlers{
		Transactions: handler.NewTransactionHandler(normalizer, queryService, mutationService),
		Summary:      handler.NewSummaryHandler(normalizer, summaryService),
		Categories:   handler.NewCategoryHandler(categoryService),
		Activity:     handler.NewActivityHandler(activityService),
	}, middleware.Idempotency(idempotencyStore, cfg.Ledger.IdempotencyTTL)))
	r.Setup()

	// Create HTTP server with config
	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	// Drain queued events before the database goes away
	if err := eventBus.Stop(ctx); err != nil {
		log.Error("Error stopping event bus", zap.Error(err))
	}
	if rateLimiter != nil {
		rateLimiter.Stop()
	}
	if err := idempotencyStore.Close(); err != nil {
		log.Error("Error closing idempotency store", zap.Error(err))
	}
	if err := db.Close(); err != nil {
		log.Error("Error closing database", zap.Error(err))
	}
	if err := tracerProvider.Shutdown(ctx); err != nil {
		log.Error("Error shutting down tracer provider", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// migrateSchema runs the embedded SQL migrations on PostgreSQL. SQLite is
// used for local runs and gets the schema from the GORM models.
func migrateSchema(db *persistence.Database, log *zap.Logger) error {
	if db.Driver() == config.DriverSQLite {
		return db.AutoMigrate()
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	migrator, err := migration.NewFromFS(sqlDB, migrations.FS, log)
	if err != nil {
		return err
	}
	// Closing the migrator would close the shared *sql.DB
	return migrator.Up()
}

func corsConfig(httpCfg config.HTTPConfig) middleware.CORSConfig {
	cors := middleware.DefaultCORSConfig()
	if len(httpCfg.CORSAllowOrigins) > 0 {
		cors.AllowOrigins = httpCfg.CORSAllowOrigins
	}
	if len(httpCfg.CORSAllowMethods) > 0 {
		cors.AllowMethods = httpCfg.CORSAllowMethods
	}
	if len(httpCfg.CORSAllowHeaders) > 0 {
		cors.AllowHeaders = httpCfg.CORSAllowHeaders
	}
	return cors
}
