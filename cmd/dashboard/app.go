package main

import (
	"context"
	"fmt"
	"net/http"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"fortune/internal/analytics"
	"fortune/internal/client"
	"fortune/internal/config"
	"fortune/internal/dashboard"
	"fortune/internal/history"
	"fortune/internal/kvstore"
	"fortune/internal/models"
	"fortune/internal/valuation"
)

// localStatePath holds the trade log when STATE_STORE is not redis.
const localStatePath = "fortune-dashboard.db"

// app is the controller wired against the remote API.
type app struct {
	ctrl  *dashboard.Controller
	close func()
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	model := analytics.DefaultRiskModel()
	if cfg.RiskModelFile != "" {
		if model, err = analytics.LoadRiskModel(cfg.RiskModelFile); err != nil {
			closeStore()
			return nil, err
		}
	}
	if cfg.VaRDailyVolatility > 0 {
		model.VaRFactor = cfg.VaRDailyVolatility
	}

	backend := client.New(cfg.APIBaseURL, &http.Client{Timeout: cfg.RequestTimeout})
	ctrl := dashboard.New(backend, valuation.NewNoiseFeed(), model, history.New(store, cfg.HistoryCap))
	return &app{ctrl: ctrl, close: closeStore}, nil
}

func openStore(ctx context.Context, cfg *config.Config) (kvstore.Store, func(), error) {
	if cfg.StateStore == "redis" {
		store, err := kvstore.NewRedisStore(ctx, kvstore.RedisOptions{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		return store, func() { _ = store.Close() }, nil
	}

	db, err := gorm.Open(sqlite.Open(localStatePath), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %s: %w", localStatePath, err)
	}
	if err := db.AutoMigrate(&models.KVEntry{}); err != nil {
		return nil, nil, fmt.Errorf("failed to migrate %s: %w", localStatePath, err)
	}
	closeDB := func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	return kvstore.NewSQLStore(db), closeDB, nil
}
