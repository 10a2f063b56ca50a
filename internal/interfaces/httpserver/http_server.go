// Package httpserver assembles the gin engine, middleware chain and routes.
package httpserver

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	auradocs "aura-server/docs/swagger"
	"aura-server/internal/config"
	"aura-server/internal/domain/account"
	"aura-server/internal/domain/conversation"
	"aura-server/internal/infrastructure/auth"
	"aura-server/internal/interfaces/httpserver/handlers/authhandler"
	"aura-server/internal/interfaces/httpserver/handlers/conversationhandler"
	"aura-server/internal/interfaces/httpserver/middlewares"
	"aura-server/internal/interfaces/httpserver/routes"
)

// HTTPServer is the HTTP server for the Aura ML Platform API.
type HTTPServer struct {
	cfg    *config.Config
	engine *gin.Engine
	log    zerolog.Logger
}

// New creates a new HTTP server.
func New(
	cfg *config.Config,
	log zerolog.Logger,
	accounts *account.AccountService,
	conversations *conversation.ConversationService,
	tokens *auth.TokenService,
) *HTTPServer {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	auradocs.SwaggerInfo.BasePath = "/"

	engine := gin.New()
	engine.Use(gin.Recovery())

	// Apply middlewares in order
	engine.Use(middlewares.RequestID())
	engine.Use(middlewares.TracingMiddleware(cfg.ServiceName))
	engine.Use(middlewares.MetricsMiddleware())
	engine.Use(middlewares.CORSMiddleware(cfg.CORSOrigins))
	engine.Use(middlewares.LoggingMiddleware(log))

	// Public routes (no auth)
	registerCoreRoutes(engine, cfg)

	authGate := middlewares.AuthMiddleware(tokens, accounts, log)
	routeProvider := routes.NewProvider(
		authhandler.NewAuthHandler(accounts, log),
		conversationhandler.NewConversationHandler(conversations),
		authGate,
	)
	routeProvider.Register(engine)

	return &HTTPServer{
		cfg:    cfg,
		engine: engine,
		log:    log,
	}
}

// Engine exposes the underlying gin engine.
func (s *HTTPServer) Engine() *gin.Engine {
	return s.engine
}

// Run starts the HTTP server and blocks until the context is cancelled.
func (s *HTTPServer) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:    s.cfg.Addr(),
		Handler: s.engine,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", s.cfg.Addr()).Msg("HTTP server listening")
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Error().Err(err).Msg("HTTP server error")
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		s.log.Info().Msg("context cancelled, shutting down HTTP server")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}

	return nil
}

func registerCoreRoutes(engine *gin.Engine, cfg *config.Config) {
	engine.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Welcome to Aura ML Platform API",
			"version": config.Version,
			"docs":    "/api/swagger/index.html",
			"health":  "/health",
		})
	})

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": cfg.ServiceName,
			"version": config.Version,
		})
	})

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	engine.GET("/readyz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	// Prometheus metrics endpoint
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger documentation
	if cfg.EnableSwagger {
		engine.GET("/api/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}
