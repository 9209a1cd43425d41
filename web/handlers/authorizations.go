package handlers

import (
	"net/http"

	"credential-assistant/authz"
	"credential-assistant/database"
	apperrors "credential-assistant/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthorizationHandler struct {
	service *authz.Service
	store   *database.PostgresStore
	logger  *zap.Logger
}

type AuthorizationRequestBody struct {
	InstitutionName string `json:"institution_name" form:"institution_name"`
	Website         string `json:"website" form:"website"`
	WalletAddress   string `json:"wallet_address" form:"wallet_address"`
}

func NewAuthorizationHandler(service *authz.Service, store *database.PostgresStore, logger *zap.Logger) *AuthorizationHandler {
	return &AuthorizationHandler{
		service: service,
		store:   store,
		logger:  logger,
	}
}

// Create files a new institution authorization request.
func (h *AuthorizationHandler) Create(c *gin.Context) {
	var body AuthorizationRequestBody
	if err := c.ShouldBind(&body); err != nil {
		respondWithClientError(c, http.StatusBadRequest, "Invalid request")
		return
	}

	req, err := h.service.Request(c.Request.Context(), body.InstitutionName, body.Website, body.WalletAddress)
	if err != nil {
		if apperrors.IsInvalidInput(err) {
			respondWithClientError(c, http.StatusBadRequest, "Institution name and a valid wallet address are required")
			return
		}
		respondWithError(c, http.StatusInternalServerError, err, "Could not file authorization request", h.logger)
		return
	}

	h.recordActivity(c, "authorization.requested", req.WalletAddress, map[string]string{
		"request_id":  req.ID.String(),
		"institution": req.InstitutionName,
	})
	c.JSON(http.StatusCreated, req)
}

// List returns authorization requests, optionally filtered by ?status=.
func (h *AuthorizationHandler) List(c *gin.Context) {
	requests, err := h.service.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		if apperrors.IsInvalidInput(err) {
			respondWithClientError(c, http.StatusBadRequest, "Unknown status filter")
			return
		}
		respondWithError(c, http.StatusInternalServerError, err, "Could not list authorization requests", h.logger)
		return
	}
	c.JSON(http.StatusOK, gin.H{"requests": requests})
}

// Approve moves a pending request to approved.
func (h *AuthorizationHandler) Approve(c *gin.Context) {
	h.decide(c, true)
}

// Reject moves a pending request to rejected.
func (h *AuthorizationHandler) Reject(c *gin.Context) {
	h.decide(c, false)
}

func (h *AuthorizationHandler) decide(c *gin.Context, approve bool) {
	requestID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondWithClientError(c, http.StatusBadRequest, "Invalid request ID")
		return
	}

	if err := h.service.Decide(c.Request.Context(), requestID, approve); err != nil {
		if apperrors.IsNotFound(err) {
			respondWithClientError(c, http.StatusNotFound, "No pending request with that ID")
			return
		}
		respondWithError(c, http.StatusInternalServerError, err, "Could not update authorization request", h.logger,
			zap.String("request_id", requestID.String()))
		return
	}

	action := "authorization.rejected"
	if approve {
		action = "authorization.approved"
	}
	h.recordActivity(c, action, "admin", map[string]string{"request_id": requestID.String()})
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Status reports whether a wallet belongs to an approved institution.
func (h *AuthorizationHandler) Status(c *gin.Context) {
	wallet := c.Query("wallet")
	authorized, err := h.service.IsAuthorized(c.Request.Context(), wallet)
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, err, "Could not check authorization", h.logger)
		return
	}
	c.JSON(http.StatusOK, gin.H{"wallet": wallet, "authorized": authorized})
}

// Activity returns the most recent audit records.
func (h *AuthorizationHandler) Activity(c *gin.Context) {
	records, err := h.store.GetActivity(c.Request.Context(), 50)
	if err != nil {
		respondWithError(c, http.StatusInternalServerError, err, "Could not load activity", h.logger)
		return
	}
	c.JSON(http.StatusOK, gin.H{"activity": records})
}

func (h *AuthorizationHandler) recordActivity(c *gin.Context, action, actor string, metadata map[string]string) {
	if err := h.store.AppendActivity(c.Request.Context(), database.ActivityRecord{
		Action:   action,
		Actor:    actor,
		Metadata: metadata,
	}); err != nil {
		h.logger.Warn("Failed to record activity", zap.Error(err), zap.String("action", action))
	}
}
