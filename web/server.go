package web

import (
	"context"
	"net/http"
	"time"

	"credential-assistant/authz"
	"credential-assistant/config"
	"credential-assistant/database"
	"credential-assistant/web/handlers"
	"credential-assistant/web/middleware"
	"credential-assistant/web/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Server struct {
	router      *gin.Engine
	chatService *services.ChatService
	authzSvc    *authz.Service
	store       *database.PostgresStore
	limiter     *middleware.SessionRateLimiter
	logger      *zap.Logger
	config      *config.Config
}

func NewServer(chatService *services.ChatService, authzSvc *authz.Service, store *database.PostgresStore, logger *zap.Logger, cfg *config.Config) *Server {
	// Set Gin mode based on environment
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(func(c *gin.Context) {
		// Add logger to context
		c.Set("logger", logger)
		c.Next()
	})

	limiter := middleware.NewSessionRateLimiter(middleware.RateLimiterConfig{
		MessagesPerMinute: cfg.RateLimitMessagesPerMin,
		BurstSize:         cfg.RateLimitBurstSize,
		CleanupInterval:   time.Hour,
	}, logger)

	server := &Server{
		router:      router,
		chatService: chatService,
		authzSvc:    authzSvc,
		store:       store,
		limiter:     limiter,
		logger:      logger,
		config:      cfg,
	}

	server.setupRoutes()
	return server
}

func (s *Server) setupRoutes() {
	s.router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	chatHandler := handlers.NewChatHandler(s.chatService, s.store, s.logger)
	authzHandler := handlers.NewAuthorizationHandler(s.authzSvc, s.store, s.logger)

	api := s.router.Group("/api")
	api.Use(middleware.SessionMiddleware(s.store))

	api.POST("/chat", middleware.RateLimitMiddleware(s.limiter), chatHandler.SendMessage)
	api.GET("/chat/history", chatHandler.History)
	api.POST("/chat/reset", chatHandler.Reset)
	api.GET("/sessions", chatHandler.Sessions)

	api.POST("/authorizations", authzHandler.Create)
	api.GET("/authorizations", authzHandler.List)
	api.GET("/authorizations/status", authzHandler.Status)
	api.POST("/authorizations/:id/approve", authzHandler.Approve)
	api.POST("/authorizations/:id/reject", authzHandler.Reject)
	api.GET("/activity", authzHandler.Activity)
}

func (s *Server) Start(ctx context.Context, addr string) error {
	s.logger.Info("Starting web server", zap.String("address", addr))

	srv := &http.Server{
		Addr:    addr,
		Handler: s.router,
	}

	// Start server in a goroutine
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Error("Web server failed to start", zap.Error(err))
		}
	}()

	// Wait for context cancellation
	<-ctx.Done()

	s.logger.Info("Shutting down web server")
	s.limiter.Stop()
	return srv.Shutdown(context.Background())
}
