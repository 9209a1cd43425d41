package database

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ActivityRecord is a single audit trail entry.
type ActivityRecord struct {
	ID        uuid.UUID
	Action    string
	Actor     string
	Metadata  map[string]string
	CreatedAt time.Time
}

// AppendActivity writes an audit record. Metadata is stored as JSONB.
func (s *PostgresStore) AppendActivity(ctx context.Context, rec ActivityRecord) error {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}
	if rec.Metadata == nil {
		rec.Metadata = map[string]string{}
	}
	metadata, err := json.Marshal(rec.Metadata)
	if err != nil {
		return fmt.Errorf("failed to marshal activity metadata: %w", err)
	}

	query := `
		INSERT INTO activity_log (id, action, actor, metadata, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	if _, err := s.DB.ExecContext(ctx, query, rec.ID, rec.Action, rec.Actor, metadata, rec.CreatedAt); err != nil {
		return fmt.Errorf("failed to append activity: %w", err)
	}
	return nil
}

// GetActivity returns the most recent audit records, newest first.
func (s *PostgresStore) GetActivity(ctx context.Context, limit int) ([]ActivityRecord, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `
		SELECT id, action, actor, metadata, created_at
		FROM activity_log
		ORDER BY created_at DESC
		LIMIT $1
	`
	rows, err := s.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []ActivityRecord
	for rows.Next() {
		var rec ActivityRecord
		var metadata []byte
		if err := rows.Scan(&rec.ID, &rec.Action, &rec.Actor, &metadata, &rec.CreatedAt); err != nil {
			return nil, err
		}
		if len(metadata) > 0 {
			if err := json.Unmarshal(metadata, &rec.Metadata); err != nil {
				return nil, fmt.Errorf("failed to unmarshal activity metadata: %w", err)
			}
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
