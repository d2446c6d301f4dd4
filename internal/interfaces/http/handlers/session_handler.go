package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"cardwallet.backend/internal/domain/entities"
	domainerrors "cardwallet.backend/internal/domain/errors"
	"cardwallet.backend/internal/domain/repositories"
	"cardwallet.backend/internal/interfaces/http/middleware"
	"cardwallet.backend/internal/interfaces/http/response"
	"cardwallet.backend/pkg/redis"
	"cardwallet.backend/pkg/utils"
)

// SessionHandler bootstraps and tears down customer sessions. Customers have
// no local credentials; support issues a one-time access code which the
// customer exchanges for a session. Admin sessions are provisioned out of
// band.
type SessionHandler struct {
	sessions     *redis.SessionStore
	resets       *redis.ResetStore
	customerRepo repositories.CustomerRepository
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessions *redis.SessionStore, resets *redis.ResetStore, customerRepo repositories.CustomerRepository) *SessionHandler {
	return &SessionHandler{sessions: sessions, resets: resets, customerRepo: customerRepo}
}

// IssueAccessCode issues a one-time access code for a customer
// POST /api/v1/admin/customers/:id/access-codes
func (h *SessionHandler) IssueAccessCode(c *gin.Context) {
	customerID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid_payload", "invalid customer id"))
		return
	}

	if _, err := h.customerRepo.GetByID(c.Request.Context(), customerID); err != nil {
		response.Error(c, domainerrors.NotFound(domainerrors.CodeCustomerNotFound, "customer not found"))
		return
	}

	code, err := h.resets.IssueToken(c.Request.Context(), entities.EntityTypeCustomer, customerID)
	if err != nil {
		response.Error(c, domainerrors.InternalError(err))
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"accessCode": code})
}

// CreateSession exchanges an access code for a session id
// POST /api/v1/sessions
func (h *SessionHandler) CreateSession(c *gin.Context) {
	var input struct {
		CustomerID int64  `json:"customerId" binding:"required"`
		AccessCode string `json:"accessCode" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest("invalid_payload", err.Error()))
		return
	}

	ok, err := h.resets.VerifyToken(c.Request.Context(), entities.EntityTypeCustomer, input.CustomerID, input.AccessCode)
	if err != nil || !ok {
		response.Error(c, domainerrors.Unauthorized("Invalid or expired access code"))
		return
	}

	customer, err := h.customerRepo.GetByID(c.Request.Context(), input.CustomerID)
	if err != nil {
		response.Error(c, domainerrors.NotFound(domainerrors.CodeCustomerNotFound, "customer not found"))
		return
	}

	sessionID := utils.GenerateSessionID()
	if err := h.sessions.CreateSession(c.Request.Context(), sessionID, &redis.SessionData{
		EntityID:   customer.ID,
		EntityType: entities.EntityTypeCustomer,
		ClientID:   customer.ClientID,
	}); err != nil {
		response.Error(c, domainerrors.InternalError(err))
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"sessionId": sessionID})
}

// DeleteSession logs the caller out
// DELETE /api/v1/sessions
func (h *SessionHandler) DeleteSession(c *gin.Context) {
	authHeader := c.GetHeader(middleware.AuthorizationHeader)
	sessionID := strings.TrimPrefix(authHeader, middleware.BearerPrefix)

	if err := h.sessions.DeleteSession(c.Request.Context(), sessionID); err != nil {
		response.Error(c, domainerrors.InternalError(err))
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "logged out"})
}
