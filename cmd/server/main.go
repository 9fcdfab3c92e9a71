package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"skywatch/milmon/internal/api"
	"skywatch/milmon/internal/common"
	"skywatch/milmon/internal/config"
	"skywatch/milmon/internal/db"
	"skywatch/milmon/internal/db/repositories"
	"skywatch/milmon/internal/jobs"
	"skywatch/milmon/internal/logging"
	"skywatch/milmon/internal/metrics"
	"skywatch/milmon/internal/providers"
	"skywatch/milmon/internal/routes"
	"skywatch/milmon/internal/services"
)

func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg, err := config.Load(os.Getenv("MILMON_CONFIG"))
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// Initialize structured logging
	if err := logging.Init(cfg.AppEnv); err != nil {
		log.Fatalf("❌ Failed to initialize logger: %v", err)
	}
	defer logging.Close()

	logging.Info("milmon starting up",
		"environment", cfg.AppEnv,
		"feed", cfg.Feed.BaseURL,
		"poll_interval_s", cfg.Feed.PollIntervalSeconds,
		"staleness_window_s", cfg.Tracking.StalenessWindowSeconds,
	)

	metricsReg := metrics.NewMetricsRegistry()

	// Alert-history database: GORM for CRUD plus an sqlx handle for
	// the raw aggregate queries.
	gormDB, err := db.InitORM(cfg.Database)
	if err != nil {
		logging.Error("Failed to open alert database", "error", err.Error())
		log.Fatalf("❌ Failed to open alert database: %v", err)
	}

	var sqlxDB *sqlx.DB
	if cfg.Database.Driver == "postgres" {
		if err := db.InitPostgres(cfg.Database.DSN); err != nil {
			logging.Error("Failed to connect to Postgres (sqlx)", "error", err.Error())
			log.Fatalf("❌ Failed to connect to Postgres (sqlx): %v", err)
		}
		sqlxDB = db.DB
	} else {
		sqlxDB, err = db.WrapSQLX(gormDB, cfg.Database.Driver)
		if err != nil {
			log.Fatalf("❌ Failed to wrap database pool: %v", err)
		}
	}

	// Core engine
	classifier := services.NewClassifier(cfg.OffensiveSet())
	inventory := services.NewInventoryService(cfg.StalenessWindow(), classifier)
	filters := services.NewFilterService()
	alertTracker := services.NewAlertTracker()
	publisher := common.NewSnapshotPublisher()
	alertRepo := repositories.NewAlertRepo(gormDB, sqlxDB)

	var alertStream *common.AlertStreamService
	if cfg.Redis.Enabled {
		client := common.NewRedisClient(cfg.Redis)
		alertStream = common.NewAlertStreamService(client, cfg.Redis.Stream)
		logging.Info("Redis alert stream enabled", "stream", cfg.Redis.Stream)
	}

	source := providers.NewADSBProvider(cfg.Feed.BaseURL)
	refreshJob := jobs.InitializeJobs(
		cfg, source, inventory, filters, alertTracker,
		publisher, alertRepo, alertStream, metricsReg,
	)

	deps := &api.Dependencies{
		Config:    cfg,
		Metrics:   metricsReg,
		Inventory: inventory,
		Filters:   filters,
		Publisher: publisher,
		AlertRepo: alertRepo,
		Refresh:   refreshJob,
	}

	upSince := time.Now()
	router := routes.RegisterRoutes(deps, sqlxDB, upSince)

	// Metrics endpoint sits outside the Chi router
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", router)
	logging.Info("Prometheus metrics endpoint registered at /metrics")

	server := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: mux,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return refreshJob.RunScheduled(gctx)
	})

	g.Go(func() error {
		logging.Info("Server starting", "addr", cfg.ListenAddr, "environment", cfg.AppEnv)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logging.Fatal("Server exited with error", "error", err.Error())
	}
	logging.Info("Shutdown complete")
}
