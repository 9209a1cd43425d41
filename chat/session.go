package chat

import (
	"strings"
	"time"

	"credential-assistant/utils"

	"github.com/google/uuid"
)

// Role tags a message author.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// HistorySize bounds the ring of recent user utterances used for context.
const HistorySize = 5

// WelcomeMessage seeds every new or reset session.
const WelcomeMessage = "Hello! I'm your AI assistant for the Academic Credentials Platform - securing verifiable degrees on blockchain. Ask about signing up, issuing credentials, verification, SBTs, or troubleshooting. What's on your mind?"

// Message is a single chat utterance. Immutable after creation.
type Message struct {
	ID        string
	Role      Role
	Content   string
	CreatedAt time.Time
}

// Session holds one conversation: an append-only message log seeded with the
// welcome message, a bounded FIFO ring of recent user utterance contents, and
// a pending gate ensuring a single in-flight response. A Session is owned by
// one interaction stream and does no internal locking; callers that share a
// Session across goroutines must serialize access.
type Session struct {
	ID       uuid.UUID
	messages []Message
	recent   []string
	context  []string
	current  string
	pending  bool
}

func NewSession(id uuid.UUID) *Session {
	s := &Session{ID: id}
	s.seed()
	return s
}

func (s *Session) seed() {
	s.messages = []Message{{
		ID:        utils.GenerateMessageID(),
		Role:      RoleAssistant,
		Content:   WelcomeMessage,
		CreatedAt: time.Now(),
	}}
}

// Submit accepts a user utterance and enters the pending state. It is a
// silent no-op while a response is in flight or when the content is blank.
// The context snapshot for the eventual response is taken before the
// utterance joins the ring, so the current message contributes its keywords
// exactly once.
func (s *Session) Submit(content string) (Message, bool) {
	if s.pending || strings.TrimSpace(content) == "" {
		return Message{}, false
	}

	s.context = append([]string(nil), s.recent...)
	s.current = content

	msg := Message{
		ID:        utils.GenerateMessageID(),
		Role:      RoleUser,
		Content:   content,
		CreatedAt: time.Now(),
	}
	s.messages = append(s.messages, msg)

	s.recent = append(s.recent, content)
	if len(s.recent) > HistorySize {
		s.recent = s.recent[len(s.recent)-HistorySize:]
	}

	s.pending = true
	return msg, true
}

// Resolve computes the reply for the in-flight submission, appends it as an
// assistant message and returns the session to idle. It is a no-op when no
// submission is pending. The respond function receives the utterance and the
// history as it stood before the utterance was submitted.
func (s *Session) Resolve(respond func(utterance string, history []string) string) (Message, bool) {
	if !s.pending {
		return Message{}, false
	}

	msg := Message{
		ID:        utils.GenerateMessageID(),
		Role:      RoleAssistant,
		Content:   respond(s.current, s.context),
		CreatedAt: time.Now(),
	}
	s.messages = append(s.messages, msg)

	s.pending = false
	s.current = ""
	s.context = nil
	return msg, true
}

// Reset truncates the log back to a fresh welcome message and empties the
// history ring. Valid from any state, including pending.
func (s *Session) Reset() {
	s.seed()
	s.recent = nil
	s.context = nil
	s.current = ""
	s.pending = false
}

// Hydrate replaces the session contents from a persisted message log,
// reseeding when the log is empty. The ring is rebuilt from the trailing user
// messages.
func (s *Session) Hydrate(history []Message) {
	if len(history) == 0 {
		s.Reset()
		return
	}
	s.messages = append([]Message(nil), history...)
	s.recent = nil
	for _, msg := range history {
		if msg.Role != RoleUser {
			continue
		}
		s.recent = append(s.recent, msg.Content)
	}
	if len(s.recent) > HistorySize {
		s.recent = s.recent[len(s.recent)-HistorySize:]
	}
	s.context = nil
	s.current = ""
	s.pending = false
}

// Messages returns the ordered log. Callers must not mutate.
func (s *Session) Messages() []Message {
	return s.messages
}

// Recent returns the history ring, most recent last. Callers must not mutate.
func (s *Session) Recent() []string {
	return s.recent
}

// Pending reports whether a response is in flight.
func (s *Session) Pending() bool {
	return s.pending
}
