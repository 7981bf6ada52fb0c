package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/erp-civi/erp-backend/config"
	authservice "github.com/erp-civi/erp-backend/internal/auth/service"
	"github.com/erp-civi/erp-backend/internal/bootstrap"
	billingrepo "github.com/erp-civi/erp-backend/internal/billing/repository"
	"github.com/erp-civi/erp-backend/internal/clients"
	cronjob "github.com/erp-civi/erp-backend/internal/dashboard/cron"
	dashboardservice "github.com/erp-civi/erp-backend/internal/dashboard/service"
	invoicerepo "github.com/erp-civi/erp-backend/internal/invoices/repository"
	projectrepo "github.com/erp-civi/erp-backend/internal/projects/repository"
	"github.com/erp-civi/erp-backend/internal/seed"
	"github.com/erp-civi/erp-backend/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config load failed", "error", err)
		os.Exit(1)
	}

	logLevel := slog.LevelInfo
	if cfg.App.Environment != "production" {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})))

	bootstrap.SetGinMode(cfg.App.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rdb, err := bootstrap.OpenRedis(ctx, bootstrap.RedisOptions{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		slog.Error("redis connect failed", "error", err)
		os.Exit(1)
	}
	defer rdb.Close()

	store := storage.NewStore(rdb, cfg.Storage.Namespace)
	session := authservice.NewSession(ctx, store)

	if cfg.App.SeedOnStart {
		seed.Initialize(ctx, store)
	}

	dashSvc := dashboardservice.New(
		projectrepo.New(store),
		billingrepo.New(store),
		invoicerepo.New(store),
		clients.NewRepo(store),
	)
	scheduler := cronjob.NewScheduler(dashSvc, store)
	scheduler.Start()
	defer scheduler.Stop()

	router := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:    "erp-backend",
		Version:        cfg.App.Version,
		Redis:          rdb,
		Store:          store,
		Session:        session,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		RateLimitRPS:   cfg.Server.RateLimitRPS,
		RateLimitBurst: cfg.Server.RateLimitBurst,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		slog.Info("server listening", "port", cfg.Server.Port, "env", cfg.App.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown failed", "error", err)
	}
}
