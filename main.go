package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"credential-assistant/authz"
	"credential-assistant/config"
	"credential-assistant/database"
	"credential-assistant/engine"
	"credential-assistant/knowledge"
	"credential-assistant/web"
	"credential-assistant/web/services"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	// Load .env if present; real env vars still win via viper.AutomaticEnv.
	_ = godotenv.Load()

	// Initialize logger with default level to load config
	tempLogger, err := config.InitLogger("info")
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	// Load config (which includes log level setting)
	cfg := config.Load(tempLogger)

	// Re-initialize logger with configured level
	logger, err := config.InitLogger(cfg.LogLevel)
	if err != nil {
		fmt.Printf("Failed to re-initialize logger with configured level: %v\n", err)
		os.Exit(1)
	}
	defer config.Cleanup()

	store, err := database.NewPostgresStore(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer store.Close()

	// --- Ensure Schema Exists ---
	if err := store.EnsureSchema(ctx); err != nil {
		logger.Fatal("Failed to ensure database schema", zap.Error(err))
	}

	// The knowledge base is built once and shared read-only by all sessions.
	base := knowledge.NewBase(knowledge.Platform(), engine.Tokenize)
	matcher := engine.New(base, logger)
	logger.Info("Knowledge base loaded", zap.Int("entries", base.Len()))

	chatService := services.NewChatService(matcher, store, logger, cfg.TypingDelayMinMS, cfg.TypingDelayMaxMS)
	authzService := authz.NewService(store, logger)

	// Create context that listens for interrupt signals
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Initialize cleanup service and start background cleanup routine
	cleanupService := web.NewCleanupService(store, chatService, logger)
	go web.StartSessionCleanup(ctx, cfg, cleanupService, logger)

	// Initialize web server
	webServer := web.NewServer(chatService, authzService, store, logger, cfg)

	// Start web server
	port := fmt.Sprintf(":%d", cfg.WebPort)
	logger.Info("Starting credential assistant web server", zap.String("port", port))
	if err := webServer.Start(ctx, port); err != nil {
		logger.Error("Web server error", zap.Error(err))
		os.Exit(1)
	}
}
