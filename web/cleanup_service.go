package web

import (
	"context"
	"fmt"
	"time"

	"credential-assistant/config"
	"credential-assistant/database"
	"credential-assistant/web/services"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CleanupService deactivates sessions that have been idle past the retention
// age and drops them from the in-memory registry.
type CleanupService struct {
	store       *database.PostgresStore
	chatService *services.ChatService
	logger      *zap.Logger
}

// NewCleanupService creates a new cleanup service instance
func NewCleanupService(store *database.PostgresStore, chatService *services.ChatService, logger *zap.Logger) *CleanupService {
	return &CleanupService{
		store:       store,
		chatService: chatService,
		logger:      logger,
	}
}

// CleanupStaleSessions finds and deactivates sessions older than maxAge.
// Returns the number of sessions deactivated and any error encountered.
func (cs *CleanupService) CleanupStaleSessions(ctx context.Context, maxAge time.Duration) (int, error) {
	cutoffTime := time.Now().Add(-maxAge)

	cs.logger.Info("Starting stale session cleanup",
		zap.Time("cutoff_time", cutoffTime),
		zap.Duration("max_age", maxAge))

	staleSessions, err := cs.store.GetStaleSessions(ctx, cutoffTime)
	if err != nil {
		return 0, fmt.Errorf("failed to get stale sessions: %w", err)
	}

	if len(staleSessions) == 0 {
		cs.logger.Debug("No stale sessions found")
		return 0, nil
	}

	cs.logger.Info("Found stale sessions to clean up",
		zap.Int("count", len(staleSessions)))

	deactivated := 0
	for _, sessionID := range staleSessions {
		if err := cs.DeactivateSession(ctx, sessionID); err != nil {
			cs.logger.Error("Failed to deactivate stale session",
				zap.Error(err),
				zap.String("session_id", sessionID.String()))
			// Continue with other sessions even if one fails
			continue
		}
		deactivated++
	}

	cs.logger.Info("Stale session cleanup completed",
		zap.Int("sessions_deactivated", deactivated),
		zap.Int("sessions_failed", len(staleSessions)-deactivated))

	return deactivated, nil
}

// DeactivateSession marks a session inactive in the store and evicts its live
// state.
func (cs *CleanupService) DeactivateSession(ctx context.Context, sessionID uuid.UUID) error {
	if err := cs.store.DeactivateSession(ctx, sessionID); err != nil {
		return err
	}
	cs.chatService.Forget(sessionID)
	return nil
}

// StartSessionCleanup runs the retention sweep on a ticker until the context
// is cancelled.
func StartSessionCleanup(ctx context.Context, cfg *config.Config, cleanupService *CleanupService, logger *zap.Logger) {
	if !cfg.CleanupEnabled {
		logger.Info("Session cleanup disabled")
		return
	}

	logger.Info("Starting session cleanup routine",
		zap.Duration("interval", cfg.CleanupInterval),
		zap.Duration("retention_age", cfg.SessionRetentionAge))

	ticker := time.NewTicker(cfg.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if _, err := cleanupService.CleanupStaleSessions(ctx, cfg.SessionRetentionAge); err != nil {
				logger.Error("Session cleanup failed", zap.Error(err))
			}
		case <-ctx.Done():
			return
		}
	}
}
