package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
)

type PostgresStore struct {
	DB *sql.DB
}

func NewPostgresStore(connStr string) (*PostgresStore, error) {
	db, err := sql.Open("pgx", connStr)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}
	log.Println("Successfully connected to the database")
	return &PostgresStore{DB: db}, nil
}

// Session is a persisted chat session row.
type Session struct {
	ID         uuid.UUID
	CreatedAt  time.Time
	LastActive time.Time
	Title      string
	IsActive   bool
}

// EnsureSchema creates the required tables if they do not already exist.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS sessions (
            id UUID PRIMARY KEY,
            created_at TIMESTAMPTZ DEFAULT NOW(),
            last_active TIMESTAMPTZ DEFAULT NOW(),
            title TEXT DEFAULT '',
            is_active BOOLEAN DEFAULT TRUE
        )`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_last_active ON sessions(last_active DESC)`,
		`CREATE TABLE IF NOT EXISTS messages (
            id UUID PRIMARY KEY,
            session_id UUID REFERENCES sessions(id) ON DELETE CASCADE,
            role TEXT NOT NULL,
            content TEXT NOT NULL,
            source TEXT DEFAULT '',
            topics TEXT[] DEFAULT '{}'::TEXT[],
            created_at TIMESTAMPTZ DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_messages_session_created_at ON messages(session_id, created_at)`,
		`CREATE TABLE IF NOT EXISTS activity_log (
            id UUID PRIMARY KEY,
            action TEXT NOT NULL,
            actor TEXT NOT NULL,
            metadata JSONB DEFAULT '{}'::jsonb,
            created_at TIMESTAMPTZ DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_activity_log_created_at ON activity_log(created_at DESC)`,
		`CREATE TABLE IF NOT EXISTS authorization_requests (
            id UUID PRIMARY KEY,
            institution_name TEXT NOT NULL,
            website TEXT DEFAULT '',
            wallet_address TEXT NOT NULL,
            status TEXT NOT NULL DEFAULT 'pending',
            created_at TIMESTAMPTZ DEFAULT NOW(),
            decided_at TIMESTAMPTZ
        )`,
		`CREATE INDEX IF NOT EXISTS idx_authorization_requests_wallet ON authorization_requests(wallet_address, status)`,
	}

	for _, stmt := range stmts {
		if _, err := s.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to execute schema statement: %w", err)
		}
	}

	return nil
}

func (s *PostgresStore) CreateSession(ctx context.Context) (uuid.UUID, error) {
	sessionID := uuid.New()
	now := time.Now()
	initialTitle := fmt.Sprintf("Chat from %s", now.Format("January 2, 2006"))

	query := `
        INSERT INTO sessions (id, created_at, last_active, title, is_active)
        VALUES ($1, $2, $3, $4, $5)
    `
	_, err := s.DB.ExecContext(ctx, query, sessionID, now, now, initialTitle, true)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create session: %w", err)
	}
	return sessionID, nil
}

func (s *PostgresStore) GetSessionByID(ctx context.Context, sessionID uuid.UUID) (Session, error) {
	query := `
		SELECT id, created_at, last_active, title, is_active
		FROM sessions
		WHERE id = $1
	`
	var sess Session
	err := s.DB.QueryRowContext(ctx, query, sessionID).
		Scan(&sess.ID, &sess.CreatedAt, &sess.LastActive, &sess.Title, &sess.IsActive)
	if err != nil {
		return Session{}, err
	}
	return sess, nil
}

func (s *PostgresStore) GetSessions(ctx context.Context) ([]Session, error) {
	query := `
		SELECT id, created_at, last_active, title, is_active
		FROM sessions
		WHERE is_active = true
		ORDER BY last_active DESC
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var sess Session
		if err := rows.Scan(&sess.ID, &sess.CreatedAt, &sess.LastActive, &sess.Title, &sess.IsActive); err != nil {
			return nil, err
		}
		sessions = append(sessions, sess)
	}
	return sessions, rows.Err()
}

// TouchSession bumps last_active for retention purposes.
func (s *PostgresStore) TouchSession(ctx context.Context, sessionID uuid.UUID) error {
	_, err := s.DB.ExecContext(ctx,
		`UPDATE sessions SET last_active = NOW() WHERE id = $1`, sessionID)
	if err != nil {
		return fmt.Errorf("failed to touch session: %w", err)
	}
	return nil
}

func (s *PostgresStore) DeactivateSession(ctx context.Context, sessionID uuid.UUID) error {
	_, err := s.DB.ExecContext(ctx,
		`UPDATE sessions SET is_active = false WHERE id = $1`, sessionID)
	if err != nil {
		return fmt.Errorf("failed to deactivate session: %w", err)
	}
	return nil
}

// GetStaleSessions returns ids of active sessions whose last activity
// precedes the cutoff.
func (s *PostgresStore) GetStaleSessions(ctx context.Context, cutoff time.Time) ([]uuid.UUID, error) {
	rows, err := s.DB.QueryContext(ctx,
		`SELECT id FROM sessions WHERE is_active = true AND last_active < $1`, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (s *PostgresStore) Close() error {
	return s.DB.Close()
}
