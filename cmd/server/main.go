package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/maxviazov/user-listing-service/internal/config"
	"github.com/maxviazov/user-listing-service/internal/handler"
	"github.com/maxviazov/user-listing-service/internal/logger"
	"github.com/maxviazov/user-listing-service/internal/repository"
	"github.com/maxviazov/user-listing-service/internal/repository/mysql"
	"github.com/maxviazov/user-listing-service/internal/repository/postgres"
	"github.com/maxviazov/user-listing-service/internal/service"
	"github.com/rs/zerolog"
)

func main() {
	configPath := flag.String("config", envOr("CONFIG_PATH", "config.yaml"), "path to the YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("❌ Config loading failed: %v", err)
	}

	if cfg.Logger.ServiceName == "" {
		cfg.Logger.ServiceName = cfg.App.Name
	}
	if cfg.Logger.ServiceVersion == "" {
		cfg.Logger.ServiceVersion = cfg.App.Version
	}
	appLogger, err := logger.New(&cfg.Logger)
	if err != nil {
		log.Fatalf("❌ Logger initialization failed: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	users, pinger, closeStore, err := openStore(ctx, cfg, &appLogger)
	if err != nil {
		appLogger.Fatal().Err(err).Str("driver", cfg.Store.Driver).Msg("❌ User store connection failed")
	}
	defer closeStore()

	userSvc := service.NewUserService(users, appLogger,
		service.WithQueryTimeout(time.Duration(cfg.Store.QueryTimeout)*time.Second))

	if cfg.App.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := handler.NewRouter(appLogger, pinger, userSvc)

	srv := &http.Server{
		Addr:         ":" + strconv.Itoa(cfg.App.Port),
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.App.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.App.WriteTimeout) * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		appLogger.Info().Str("addr", srv.Addr).Str("driver", cfg.Store.Driver).Msg("🚀 Service started")
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error().Err(err).Msg("http server failed")
		}
		return
	case <-ctx.Done():
	}

	appLogger.Info().Msg("shutdown signal received")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.App.ShutdownTimeout)*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error().Err(err).Msg("graceful shutdown failed")
		return
	}
	appLogger.Info().Msg("👋 Service stopped")
}

// openStore connects the configured driver and returns its user repository, readiness probe and closer.
func openStore(ctx context.Context, cfg *config.Config, l *zerolog.Logger) (repository.UserRepository, repository.Pinger, func(), error) {
	switch cfg.Store.Driver {
	case "postgres":
		pg, err := repository.NewPostgres(ctx, cfg.Store.Postgres, l)
		if err != nil {
			return nil, nil, nil, err
		}
		return postgres.NewUserRepository(pg.Pool()), postgres.NewPinger(pg.Pool()), pg.Close, nil
	case "mysql":
		my, err := repository.NewMySQL(ctx, cfg.Store.MySQL, l)
		if err != nil {
			return nil, nil, nil, err
		}
		return mysql.NewUserRepository(my.DB()), mysql.NewPinger(my.DB()), my.Close, nil
	default:
		return nil, nil, nil, fmt.Errorf("unsupported store driver %q", cfg.Store.Driver)
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
