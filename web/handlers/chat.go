package handlers

import (
	"net/http"
	"time"

	"credential-assistant/chat"
	"credential-assistant/database"
	apperrors "credential-assistant/errors"
	"credential-assistant/web/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ChatHandler struct {
	chatService *services.ChatService
	store       *database.PostgresStore
	logger      *zap.Logger
}

type ChatRequest struct {
	Message string `json:"message" form:"message"`
}

type messagePayload struct {
	ID        string    `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

type chatResponse struct {
	User      messagePayload `json:"user"`
	Assistant messagePayload `json:"assistant"`
	HTML      string         `json:"html"`
	Source    string         `json:"source"`
	Topic     string         `json:"topic,omitempty"`
}

func NewChatHandler(chatService *services.ChatService, store *database.PostgresStore, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
		store:       store,
		logger:      logger,
	}
}

// SendMessage handles one chat exchange for the caller's session.
func (h *ChatHandler) SendMessage(c *gin.Context) {
	sessionID := c.MustGet("sessionID").(uuid.UUID)

	var req ChatRequest
	if err := c.ShouldBind(&req); err != nil {
		respondWithClientError(c, http.StatusBadRequest, "Invalid request")
		return
	}

	userMsg, reply, err := h.chatService.Send(c.Request.Context(), sessionID, req.Message)
	if err != nil {
		switch {
		case apperrors.IsInvalidInput(err):
			respondWithClientError(c, http.StatusBadRequest, "Message cannot be empty")
		case apperrors.IsSessionBusy(err):
			// A response is already in flight; the widget disables input, so
			// this only happens to impatient clients.
			respondWithClientError(c, http.StatusConflict, "A response is still being generated")
		default:
			respondWithError(c, http.StatusInternalServerError, err, "Could not process message", h.logger,
				zap.String("session_id", sessionID.String()))
		}
		return
	}

	c.JSON(http.StatusOK, chatResponse{
		User:      toPayload(userMsg),
		Assistant: toPayload(reply.Message),
		HTML:      reply.HTML,
		Source:    reply.Source,
		Topic:     reply.Topic,
	})
}

// History returns the session's ordered message log.
func (h *ChatHandler) History(c *gin.Context) {
	sessionID := c.MustGet("sessionID").(uuid.UUID)

	messages, err := h.chatService.History(c.Request.Context(), sessionID)
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, err, "Could not load history", h.logger,
			zap.String("session_id", sessionID.String()))
		return
	}

	payload := make([]messagePayload, 0, len(messages))
	for _, msg := range messages {
		payload = append(payload, toPayload(msg))
	}
	c.JSON(http.StatusOK, gin.H{"messages": payload})
}

// Reset truncates the session back to the welcome message.
func (h *ChatHandler) Reset(c *gin.Context) {
	sessionID := c.MustGet("sessionID").(uuid.UUID)

	if err := h.chatService.Reset(c.Request.Context(), sessionID); err != nil {
		respondWithError(c, http.StatusInternalServerError, err, "Could not reset chat", h.logger,
			zap.String("session_id", sessionID.String()))
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "reset"})
}

// Sessions lists active sessions, newest activity first.
func (h *ChatHandler) Sessions(c *gin.Context) {
	sessions, err := h.store.GetSessions(c.Request.Context())
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, err, "Could not list sessions", h.logger)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessions": sessions})
}

func toPayload(msg chat.Message) messagePayload {
	return messagePayload{
		ID:        msg.ID,
		Role:      string(msg.Role),
		Content:   msg.Content,
		Timestamp: msg.CreatedAt,
	}
}
