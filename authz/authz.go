// Package authz implements the credential-authorization collaborator: the
// institution request queue and the approved-issuer check. It is consumed by
// the surrounding workflow, never by the matching engine.
package authz

import (
	"context"
	"database/sql"
	"errors"

	"credential-assistant/database"
	apperrors "credential-assistant/errors"
	"credential-assistant/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service struct {
	store  *database.PostgresStore
	logger *zap.Logger
}

func NewService(store *database.PostgresStore, logger *zap.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// Request files a pending authorization request for an institution wallet.
func (s *Service) Request(ctx context.Context, institutionName, website, walletAddress string) (database.AuthorizationRequest, error) {
	if institutionName == "" {
		return database.AuthorizationRequest{}, apperrors.WrapError(apperrors.ErrInvalidInput, "institution name is required")
	}
	if !utils.IsWalletAddress(walletAddress) {
		return database.AuthorizationRequest{}, apperrors.WrapError(apperrors.ErrInvalidInput, "invalid wallet address")
	}

	req := database.AuthorizationRequest{
		InstitutionName: institutionName,
		Website:         website,
		WalletAddress:   utils.NormalizeWalletAddress(walletAddress),
	}
	id, err := s.store.CreateAuthorizationRequest(ctx, req)
	if err != nil {
		return database.AuthorizationRequest{}, apperrors.WrapError(err, "could not file authorization request")
	}

	s.logger.Info("Authorization request filed",
		zap.String("request_id", id.String()),
		zap.String("institution", institutionName))

	created, err := s.store.GetAuthorizationRequestByID(ctx, id)
	if err != nil {
		return database.AuthorizationRequest{}, apperrors.WrapError(err, "could not load filed request")
	}
	return created, nil
}

// Authorize approves the latest pending request for a wallet address.
func (s *Service) Authorize(ctx context.Context, walletAddress string) error {
	if !utils.IsWalletAddress(walletAddress) {
		return apperrors.WrapError(apperrors.ErrInvalidInput, "invalid wallet address")
	}

	pending, err := s.store.GetLatestPendingAuthorization(ctx, utils.NormalizeWalletAddress(walletAddress))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperrors.WrapError(apperrors.ErrNotFound, "no pending request for wallet")
		}
		return apperrors.WrapError(err, "could not load pending request")
	}
	return s.Decide(ctx, pending.ID, true)
}

// Decide approves or rejects a specific pending request.
func (s *Service) Decide(ctx context.Context, requestID uuid.UUID, approve bool) error {
	status := database.AuthorizationRejected
	if approve {
		status = database.AuthorizationApproved
	}

	if err := s.store.UpdateAuthorizationStatus(ctx, requestID, status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperrors.WrapError(apperrors.ErrNotFound, "request not pending")
		}
		return apperrors.WrapError(err, "could not update request")
	}

	s.logger.Info("Authorization request decided",
		zap.String("request_id", requestID.String()),
		zap.String("status", status))
	return nil
}

// IsAuthorized reports whether the wallet belongs to an approved institution.
// Malformed addresses are simply not authorized, not an error.
func (s *Service) IsAuthorized(ctx context.Context, walletAddress string) (bool, error) {
	if !utils.IsWalletAddress(walletAddress) {
		return false, nil
	}
	return s.store.HasApprovedAuthorization(ctx, utils.NormalizeWalletAddress(walletAddress))
}

// List returns authorization requests, optionally filtered by status.
func (s *Service) List(ctx context.Context, status string) ([]database.AuthorizationRequest, error) {
	switch status {
	case "", database.AuthorizationPending, database.AuthorizationApproved, database.AuthorizationRejected:
	default:
		return nil, apperrors.WrapError(apperrors.ErrInvalidInput, "unknown status filter")
	}
	return s.store.GetAuthorizationRequests(ctx, status)
}
