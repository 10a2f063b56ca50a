package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"aura-server/internal/config"
	"aura-server/internal/infrastructure/logger"
	"aura-server/internal/infrastructure/observability"
	"aura-server/internal/interfaces/httpserver"

	_ "net/http/pprof"
)

// @title Aura ML Platform API
// @version 1.0
// @description Multi-tenant account and conversation ownership API.
// @contact.name Aura Platform Team
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
type Application struct {
	cfg        *config.Config
	httpServer *httpserver.HTTPServer
	log        zerolog.Logger
}

func NewApplication(cfg *config.Config, httpServer *httpserver.HTTPServer, log zerolog.Logger) *Application {
	return &Application{
		cfg:        cfg,
		httpServer: httpServer,
		log:        log,
	}
}

func (a *Application) Start(ctx context.Context) error {
	return a.httpServer.Run(ctx)
}

func main() {
	loadEnvFiles()

	app, err := BuildApplication()
	if err != nil {
		logger.GetLogger().Fatal().Err(err).Msg("build application")
	}
	cfg, log := app.cfg, app.log

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := observability.Setup(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("initialize observability")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownTelemetry(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("shutdown telemetry")
		}
	}()

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return app.Start(egCtx)
	})

	if cfg.PprofPort > 0 {
		pprofServer := &http.Server{
			Addr:    fmt.Sprintf("localhost:%d", cfg.PprofPort),
			Handler: http.DefaultServeMux,
		}
		eg.Go(func() error {
			log.Info().Str("addr", pprofServer.Addr).Msg("pprof server listening")
			if err := pprofServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
		eg.Go(func() error {
			<-egCtx.Done()
			return pprofServer.Close()
		})
	}

	if err := eg.Wait(); err != nil {
		log.Fatal().Err(err).Msg("application stopped with error")
	}

	log.Info().Msg("application exited cleanly")
}

func loadEnvFiles() {
	paths := []string{".env", "../.env"}
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Overload(path); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to load %s: %v\n", path, err)
			}
		}
	}
}
