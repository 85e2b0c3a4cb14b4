package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/nopkhun/restaurant-scheduling-sub000/internal/api"
	"github.com/nopkhun/restaurant-scheduling-sub000/internal/core/ports"
	"github.com/nopkhun/restaurant-scheduling-sub000/internal/core/service"
	"github.com/nopkhun/restaurant-scheduling-sub000/internal/infrastructure/config"
	mongodb "github.com/nopkhun/restaurant-scheduling-sub000/internal/infrastructure/db/mongo"
	redisdb "github.com/nopkhun/restaurant-scheduling-sub000/internal/infrastructure/db/redis"
	"github.com/nopkhun/restaurant-scheduling-sub000/internal/infrastructure/geoip"
	"github.com/nopkhun/restaurant-scheduling-sub000/internal/infrastructure/queue"
	"github.com/nopkhun/restaurant-scheduling-sub000/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logg := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// --- Infrastructure ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		logg.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() { _ = mongoClient.Disconnect(context.Background()) }()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		logg.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	// --- IP locator chain: HTTP client → redis cache → metrics ---
	var locator ports.IPLocator
	if cfg.GeoIP.Enabled {
		client := geoip.NewClient(cfg.GeoIP.BaseURL, cfg.GeoIP.Timeout)
		locator = geoip.NewInstrumented(redisdb.NewGeoCache(rdb, client, cfg.GeoIP.CacheTTL, logg))
	} else {
		locator = geoip.Disabled{}
	}

	// --- Engine services ---
	verifier := service.NewLocationVerifier(service.VerifierConfig{
		AccuracyThresholdM:   cfg.Engine.AccuracyThresholdM,
		DefaultRadiusM:       cfg.Engine.DefaultRadiusM,
		IPMismatchThresholdM: cfg.Engine.IPMismatchThresholdM,
	}, locator, logg)

	antispoof := service.NewAntiSpoofingService(verifier, service.AggregatorConfig{
		RiskThreshold:  cfg.Engine.RiskThreshold,
		MovementWindow: cfg.Engine.MovementWindow,
	}, logg)

	// --- Audit pipeline ---
	auditRepo := mongodb.NewAuditRepository(db)
	dispatcher := queue.NewAuditDispatcher(0, auditRepo, logg)
	dispatcher.Start(ctx)

	// --- HTTP ---
	e := api.NewRouter(api.RouterDeps{
		Verifier:   verifier,
		AntiSpoof:  antispoof,
		Branches:   mongodb.NewBranchRepository(db),
		AuditRepo:  auditRepo,
		Dispatcher: dispatcher,
		Mongo:      db,
		Redis:      rdb,
		Logger:     logg,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil {
			logg.Info().Err(err).Msg("http server stopped")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logg.Error().Err(err).Msg("server shutdown error")
	}
	logg.Info().Msg("server stopped")
}
