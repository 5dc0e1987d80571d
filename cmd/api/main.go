package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fortune/internal/analytics"
	"fortune/internal/assistant"
	"fortune/internal/config"
	"fortune/internal/dashboard"
	"fortune/internal/database"
	"fortune/internal/handlers"
	"fortune/internal/history"
	"fortune/internal/kvstore"
	"fortune/internal/logger"
	"fortune/internal/middleware"
	"fortune/internal/scheduler"
	"fortune/internal/server"
	"fortune/internal/services"
	"fortune/internal/validator"
	"fortune/internal/valuation"
	"fortune/internal/watchlist"

	"gorm.io/gorm"
)

// @title           Fortune API
// @version         1.0
// @description     Portfolio valuation, risk and realized P&L for relationship managers.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey PipelineKey
// @in header
// @name X-API-Key

const shutdownTimeout = 10 * time.Second

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	dbConfig, err := database.NewConfig(appConfig)
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer dbManager.Close()

	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Services
	db := dbManager.DB()
	assetService := services.NewAssetService(db)
	clientService := services.NewClientService(db)
	portfolioService := services.NewPortfolioService(db)
	marketService := services.NewMarketService(db)
	auditService := services.NewAuditService(db)
	transactionService := services.NewTransactionService(db)
	summaryService := services.NewSummaryService(db, marketService, transactionService)

	seeded, err := assetService.SeedDefaults()
	if err != nil {
		return fmt.Errorf("failed to seed asset catalog: %w", err)
	}
	if seeded > 0 {
		log.Infof("Seeded %d catalog assets", seeded)
	}

	// Local state
	store, closeStore, err := openStateStore(ctx, appConfig, db)
	if err != nil {
		return err
	}
	defer closeStore()
	trades := history.New(store, appConfig.HistoryCap)
	watched := watchlist.New(store)

	model, err := loadRiskModel(appConfig)
	if err != nil {
		return err
	}

	ctrl := dashboard.New(dashboard.NewLocalBackend(portfolioService, marketService),
		valuation.NewNoiseFeed(), model, trades)

	var llm assistant.LLM
	if appConfig.GeminiAPIKey != "" {
		llm, err = assistant.NewGeminiLLM(ctx, appConfig.GeminiAPIKey, appConfig.GeminiModel)
		if err != nil {
			return fmt.Errorf("failed to create Gemini client: %w", err)
		}
	} else {
		log.Warn("GEMINI_API_KEY not set; the assistant answers from portfolio data only")
	}

	// Scheduler
	sched := scheduler.New()
	if err := sched.AddJob(appConfig.WatchlistTick, scheduler.JobFunc{
		JobName: "watchlist-tick",
		Fn:      watched.Tick,
	}); err != nil {
		return fmt.Errorf("invalid WATCHLIST_TICK schedule %q: %w", appConfig.WatchlistTick, err)
	}
	sched.Start()
	defer sched.Stop()

	// Router
	validator.Register()
	router := server.NewRouter(server.Handlers{
		Asset:     handlers.NewAssetHandler(assetService),
		Client:    handlers.NewClientHandler(clientService, auditService),
		Portfolio: handlers.NewPortfolioHandler(portfolioService, ctrl, auditService),
		Dashboard: handlers.NewDashboardHandler(ctrl),
		Market:    handlers.NewMarketHandler(marketService, assetService, ctrl, auditService),
		Watchlist: handlers.NewWatchlistHandler(watched),
		History:   handlers.NewHistoryHandler(ctrl),
		Chat:      handlers.NewChatHandler(assistant.NewService(llm, ctrl)),
		Ledger:    handlers.NewTransactionHandler(transactionService),
		Summary:   handlers.NewSummaryHandler(summaryService),
	}, server.Options{
		PipelineAPIKey: appConfig.PipelineAPIKey,
		RateLimiter:    middleware.NewRateLimiter(appConfig.RateLimitRPS, appConfig.RateLimitBurst),
		Swagger:        appConfig.Env != "production",
	})

	srv := &http.Server{
		Addr:              ":" + appConfig.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("Starting Fortune API server on port %s", appConfig.Port)
		log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// openStateStore returns the key-value store behind the trade history and the
// watchlist.
func openStateStore(ctx context.Context, cfg *config.Config, db *gorm.DB) (kvstore.Store, func(), error) {
	switch cfg.StateStore {
	case "redis":
		store, err := kvstore.NewRedisStore(ctx, kvstore.RedisOptions{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		return store, func() { _ = store.Close() }, nil
	case "sql":
		return kvstore.NewSQLStore(db), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unsupported STATE_STORE %q (use sql or redis)", cfg.StateStore)
	}
}

func loadRiskModel(cfg *config.Config) (analytics.RiskModel, error) {
	model := analytics.DefaultRiskModel()
	if cfg.RiskModelFile != "" {
		var err error
		model, err = analytics.LoadRiskModel(cfg.RiskModelFile)
		if err != nil {
			return model, fmt.Errorf("failed to load risk model: %w", err)
		}
	}
	if cfg.VaRDailyVolatility > 0 {
		model.VaRFactor = cfg.VaRDailyVolatility
	}
	return model, model.Validate()
}
