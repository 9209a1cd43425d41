package services

import (
	"context"
	"math/rand"
	"strings"
	"sync"
	"time"

	"credential-assistant/chat"
	"credential-assistant/database"
	"credential-assistant/engine"
	apperrors "credential-assistant/errors"
	"credential-assistant/web/format"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ChatReply is the assistant side of one exchange, ready for the JSON
// payload.
type ChatReply struct {
	Message chat.Message
	HTML    string
	Source  string
	Topic   string
}

// ChatService owns the live conversation sessions. Each chat.Session is
// single-writer by design, so the service serializes access per session; the
// engine itself is stateless and shared.
type ChatService struct {
	engine *engine.Engine
	store  *database.PostgresStore
	logger *zap.Logger

	typingDelayMin time.Duration
	typingDelayMax time.Duration

	mu       sync.Mutex
	sessions map[uuid.UUID]*sessionEntry
}

type sessionEntry struct {
	mu      sync.Mutex
	session *chat.Session
}

func NewChatService(eng *engine.Engine, store *database.PostgresStore, logger *zap.Logger, typingDelayMinMS, typingDelayMaxMS int) *ChatService {
	return &ChatService{
		engine:         eng,
		store:          store,
		logger:         logger,
		typingDelayMin: time.Duration(typingDelayMinMS) * time.Millisecond,
		typingDelayMax: time.Duration(typingDelayMaxMS) * time.Millisecond,
		sessions:       make(map[uuid.UUID]*sessionEntry),
	}
}

// Send runs one full exchange: submit the utterance, compute the reply,
// persist both sides and record the audit entry. Returns ErrSessionBusy while
// a response is already in flight and ErrInvalidInput for blank content.
func (cs *ChatService) Send(ctx context.Context, sessionID uuid.UUID, content string) (chat.Message, ChatReply, error) {
	if strings.TrimSpace(content) == "" {
		return chat.Message{}, ChatReply{}, apperrors.WrapError(apperrors.ErrInvalidInput, "message cannot be empty")
	}

	entry, err := cs.entryFor(ctx, sessionID)
	if err != nil {
		return chat.Message{}, ChatReply{}, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	userMsg, accepted := entry.session.Submit(content)
	if !accepted {
		return chat.Message{}, ChatReply{}, apperrors.ErrSessionBusy
	}

	// Presentation-only thinking pause. Once a submission is accepted the
	// response always arrives, so this sleep is deliberately not tied to ctx.
	cs.typingPause()

	var engineReply engine.Reply
	assistantMsg, _ := entry.session.Resolve(func(utterance string, history []string) string {
		engineReply = cs.engine.Respond(utterance, history)
		return engineReply.Text
	})

	cs.persistExchange(ctx, sessionID, userMsg, assistantMsg, engineReply)

	reply := ChatReply{
		Message: assistantMsg,
		HTML:    format.RenderAnswer(assistantMsg.Content),
		Source:  engineReply.Source,
		Topic:   engineReply.Topic,
	}
	return userMsg, reply, nil
}

// Reset truncates a session back to the welcome message, in memory and in the
// store.
func (cs *ChatService) Reset(ctx context.Context, sessionID uuid.UUID) error {
	entry, err := cs.entryFor(ctx, sessionID)
	if err != nil {
		return err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	entry.session.Reset()

	if err := cs.store.DeleteMessagesBySession(ctx, sessionID); err != nil {
		return apperrors.WrapError(err, "could not clear session messages")
	}
	welcome := entry.session.Messages()[0]
	if err := cs.store.CreateMessage(ctx, messageRecord(sessionID, welcome, engine.Reply{})); err != nil {
		return apperrors.WrapError(err, "could not reseed welcome message")
	}

	if err := cs.store.AppendActivity(ctx, database.ActivityRecord{
		Action: "chat.reset",
		Actor:  sessionID.String(),
	}); err != nil {
		cs.logger.Warn("Failed to record reset activity", zap.Error(err))
	}
	return nil
}

// History returns the ordered message log for a session.
func (cs *ChatService) History(ctx context.Context, sessionID uuid.UUID) ([]chat.Message, error) {
	entry, err := cs.entryFor(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	return append([]chat.Message(nil), entry.session.Messages()...), nil
}

// Forget drops a session from the in-memory registry. Used by cleanup when a
// session is deactivated.
func (cs *ChatService) Forget(sessionID uuid.UUID) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	delete(cs.sessions, sessionID)
}

// entryFor returns the live session, hydrating it from the store on first
// touch. Brand new sessions get their welcome message persisted immediately.
func (cs *ChatService) entryFor(ctx context.Context, sessionID uuid.UUID) (*sessionEntry, error) {
	cs.mu.Lock()
	entry, ok := cs.sessions[sessionID]
	if !ok {
		entry = &sessionEntry{session: chat.NewSession(sessionID)}
		cs.sessions[sessionID] = entry
	}
	cs.mu.Unlock()

	if ok {
		return entry, nil
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	records, err := cs.store.GetMessagesBySession(ctx, sessionID)
	if err != nil {
		return nil, apperrors.WrapError(err, "could not load session messages")
	}
	if len(records) == 0 {
		welcome := entry.session.Messages()[0]
		if err := cs.store.CreateMessage(ctx, messageRecord(sessionID, welcome, engine.Reply{})); err != nil {
			cs.logger.Warn("Failed to persist welcome message", zap.Error(err))
		}
		return entry, nil
	}

	history := make([]chat.Message, 0, len(records))
	for _, rec := range records {
		history = append(history, chat.Message{
			ID:        rec.ID.String(),
			Role:      chat.Role(rec.Role),
			Content:   rec.Content,
			CreatedAt: rec.CreatedAt,
		})
	}
	entry.session.Hydrate(history)
	return entry, nil
}

func (cs *ChatService) persistExchange(ctx context.Context, sessionID uuid.UUID, userMsg, assistantMsg chat.Message, reply engine.Reply) {
	if err := cs.store.CreateMessage(ctx, messageRecord(sessionID, userMsg, engine.Reply{})); err != nil {
		cs.logger.Error("Failed to save user message",
			zap.Error(err),
			zap.String("session_id", sessionID.String()))
	}
	if err := cs.store.CreateMessage(ctx, messageRecord(sessionID, assistantMsg, reply)); err != nil {
		cs.logger.Error("Failed to save assistant message",
			zap.Error(err),
			zap.String("session_id", sessionID.String()))
	}
	if err := cs.store.TouchSession(ctx, sessionID); err != nil {
		cs.logger.Warn("Failed to touch session", zap.Error(err))
	}

	metadata := map[string]string{"source": reply.Source}
	if reply.Topic != "" {
		metadata["topic"] = reply.Topic
	}
	if err := cs.store.AppendActivity(ctx, database.ActivityRecord{
		Action:   "chat.message",
		Actor:    sessionID.String(),
		Metadata: metadata,
	}); err != nil {
		cs.logger.Warn("Failed to record chat activity", zap.Error(err))
	}
}

func (cs *ChatService) typingPause() {
	if cs.typingDelayMax <= 0 {
		return
	}
	delay := cs.typingDelayMin
	if spread := cs.typingDelayMax - cs.typingDelayMin; spread > 0 {
		delay += time.Duration(rand.Int63n(int64(spread)))
	}
	time.Sleep(delay)
}

func messageRecord(sessionID uuid.UUID, msg chat.Message, reply engine.Reply) database.MessageRecord {
	rec := database.MessageRecord{
		ID:        uuid.MustParse(msg.ID),
		SessionID: sessionID,
		Role:      string(msg.Role),
		Content:   msg.Content,
		Source:    reply.Source,
		CreatedAt: msg.CreatedAt,
	}
	if reply.Topic != "" {
		rec.Topics = []string{reply.Topic}
	}
	return rec
}
