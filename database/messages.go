package database

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// MessageRecord is a persisted chat message. Source and Topics describe how
// the assistant produced the reply (match/fallback/deflection) and which
// knowledge topics it touched; both are empty for user messages.
type MessageRecord struct {
	ID        uuid.UUID
	SessionID uuid.UUID
	Role      string
	Content   string
	Source    string
	Topics    []string
	CreatedAt time.Time
}

func (s *PostgresStore) CreateMessage(ctx context.Context, msg MessageRecord) error {
	if msg.Topics == nil {
		msg.Topics = []string{}
	}
	query := `
		INSERT INTO messages (id, session_id, role, content, source, topics, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := s.DB.ExecContext(ctx, query,
		msg.ID, msg.SessionID, msg.Role, msg.Content, msg.Source, pq.Array(msg.Topics), msg.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}
	return nil
}

func (s *PostgresStore) GetMessagesBySession(ctx context.Context, sessionID uuid.UUID) ([]MessageRecord, error) {
	query := `
		SELECT id, session_id, role, content, source, topics, created_at
		FROM messages
		WHERE session_id = $1
		ORDER BY created_at ASC
	`
	rows, err := s.DB.QueryContext(ctx, query, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []MessageRecord
	for rows.Next() {
		var msg MessageRecord
		if err := rows.Scan(&msg.ID, &msg.SessionID, &msg.Role, &msg.Content,
			&msg.Source, pq.Array(&msg.Topics), &msg.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}
	return messages, rows.Err()
}

// DeleteMessagesBySession clears a session's log, used by reset before the
// welcome message is re-seeded.
func (s *PostgresStore) DeleteMessagesBySession(ctx context.Context, sessionID uuid.UUID) error {
	_, err := s.DB.ExecContext(ctx, `DELETE FROM messages WHERE session_id = $1`, sessionID)
	if err != nil {
		return fmt.Errorf("failed to delete session messages: %w", err)
	}
	return nil
}
