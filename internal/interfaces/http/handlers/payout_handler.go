package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"cardwallet.backend/internal/domain/entities"
	domainerrors "cardwallet.backend/internal/domain/errors"
	"cardwallet.backend/internal/interfaces/http/middleware"
	"cardwallet.backend/internal/interfaces/http/response"
	"cardwallet.backend/internal/usecases"
)

type payoutService interface {
	CreatePayout(ctx context.Context, p usecases.CreatePayoutParams) (*entities.PayoutTxn, error)
	ViewPayout(ctx context.Context, txnID string) ([]*entities.PayoutTxn, error)
}

// PayoutHandler handles payout endpoints
type PayoutHandler struct {
	payoutUsecase payoutService
}

// NewPayoutHandler creates a new payout handler
func NewPayoutHandler(payoutUsecase *usecases.PayoutUsecase) *PayoutHandler {
	return &PayoutHandler{payoutUsecase: payoutUsecase}
}

// CreatePayout starts a payout settlement
// POST /api/v1/payouts
func (h *PayoutHandler) CreatePayout(c *gin.Context) {
	var input entities.CreatePayoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest("invalid_payload", err.Error()))
		return
	}

	amount, err := decimal.NewFromString(input.Amount)
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid_payload", "invalid amount"))
		return
	}

	entityID, ok := middleware.GetEntityID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}
	entityType, _ := middleware.GetEntityType(c)

	txn, err := h.payoutUsecase.CreatePayout(c.Request.Context(), usecases.CreatePayoutParams{
		CustomerID:  input.CustomerID,
		StoreID:     input.StoreID,
		Amount:      amount,
		EntityID:    entityID,
		EntityType:  entityType,
		Description: input.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"payout": txn})
}

// GetPayout returns the full journal sequence for a payout
// GET /api/v1/payouts/:id
func (h *PayoutHandler) GetPayout(c *gin.Context) {
	rows, err := h.payoutUsecase.ViewPayout(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"payout": rows})
}
