package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Authorization request lifecycle states.
const (
	AuthorizationPending  = "pending"
	AuthorizationApproved = "approved"
	AuthorizationRejected = "rejected"
)

// AuthorizationRequest mirrors the institution authorization queue: a request
// stays pending until an admin approves or rejects it.
type AuthorizationRequest struct {
	ID              uuid.UUID
	InstitutionName string
	Website         string
	WalletAddress   string
	Status          string
	CreatedAt       time.Time
	DecidedAt       *time.Time
}

func (s *PostgresStore) CreateAuthorizationRequest(ctx context.Context, req AuthorizationRequest) (uuid.UUID, error) {
	if req.ID == uuid.Nil {
		req.ID = uuid.New()
	}
	query := `
		INSERT INTO authorization_requests (id, institution_name, website, wallet_address, status, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
	`
	_, err := s.DB.ExecContext(ctx, query,
		req.ID, req.InstitutionName, req.Website, req.WalletAddress, AuthorizationPending)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create authorization request: %w", err)
	}
	return req.ID, nil
}

// GetAuthorizationRequests lists requests, optionally filtered by status
// (empty status means all), newest first.
func (s *PostgresStore) GetAuthorizationRequests(ctx context.Context, status string) ([]AuthorizationRequest, error) {
	query := `
		SELECT id, institution_name, website, wallet_address, status, created_at, decided_at
		FROM authorization_requests
		WHERE ($1 = '' OR status = $1)
		ORDER BY created_at DESC
	`
	rows, err := s.DB.QueryContext(ctx, query, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []AuthorizationRequest
	for rows.Next() {
		var req AuthorizationRequest
		var decidedAt sql.NullTime
		if err := rows.Scan(&req.ID, &req.InstitutionName, &req.Website,
			&req.WalletAddress, &req.Status, &req.CreatedAt, &decidedAt); err != nil {
			return nil, err
		}
		if decidedAt.Valid {
			req.DecidedAt = &decidedAt.Time
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

func (s *PostgresStore) GetAuthorizationRequestByID(ctx context.Context, id uuid.UUID) (AuthorizationRequest, error) {
	query := `
		SELECT id, institution_name, website, wallet_address, status, created_at, decided_at
		FROM authorization_requests
		WHERE id = $1
	`
	var req AuthorizationRequest
	var decidedAt sql.NullTime
	err := s.DB.QueryRowContext(ctx, query, id).Scan(&req.ID, &req.InstitutionName,
		&req.Website, &req.WalletAddress, &req.Status, &req.CreatedAt, &decidedAt)
	if err != nil {
		return AuthorizationRequest{}, err
	}
	if decidedAt.Valid {
		req.DecidedAt = &decidedAt.Time
	}
	return req, nil
}

// UpdateAuthorizationStatus moves a pending request to approved or rejected.
// Decisions are final: a decided request cannot be re-decided.
func (s *PostgresStore) UpdateAuthorizationStatus(ctx context.Context, id uuid.UUID, status string) error {
	result, err := s.DB.ExecContext(ctx, `
		UPDATE authorization_requests
		SET status = $2, decided_at = NOW()
		WHERE id = $1 AND status = $3
	`, id, status, AuthorizationPending)
	if err != nil {
		return fmt.Errorf("failed to update authorization status: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// HasApprovedAuthorization reports whether the wallet belongs to an approved
// institution.
func (s *PostgresStore) HasApprovedAuthorization(ctx context.Context, walletAddress string) (bool, error) {
	var exists bool
	err := s.DB.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM authorization_requests
			WHERE wallet_address = $1 AND status = $2
		)
	`, walletAddress, AuthorizationApproved).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check authorization: %w", err)
	}
	return exists, nil
}

// GetLatestPendingAuthorization returns the most recent pending request for a
// wallet, if any.
func (s *PostgresStore) GetLatestPendingAuthorization(ctx context.Context, walletAddress string) (AuthorizationRequest, error) {
	query := `
		SELECT id, institution_name, website, wallet_address, status, created_at, decided_at
		FROM authorization_requests
		WHERE wallet_address = $1 AND status = $2
		ORDER BY created_at DESC
		LIMIT 1
	`
	var req AuthorizationRequest
	var decidedAt sql.NullTime
	err := s.DB.QueryRowContext(ctx, query, walletAddress, AuthorizationPending).
		Scan(&req.ID, &req.InstitutionName, &req.Website, &req.WalletAddress,
			&req.Status, &req.CreatedAt, &decidedAt)
	if err != nil {
		return AuthorizationRequest{}, err
	}
	if decidedAt.Valid {
		req.DecidedAt = &decidedAt.Time
	}
	return req, nil
}
