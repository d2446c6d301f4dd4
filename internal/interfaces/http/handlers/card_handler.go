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

type cardService interface {
	ActivateCard(ctx context.Context, customerID int64, proxy string) (*entities.CustomerCardProxy, error)
	CardStatus(ctx context.Context, customerID int64) (string, error)
	CardBalance(ctx context.Context, customerID int64) (decimal.Decimal, error)
	ChangeCardStatus(ctx context.Context, customerID int64, status string) (*entities.CustomerCardProxy, error)
	TransferFunds(ctx context.Context, customerID int64, fromProxy, toProxy string, amount decimal.Decimal, comment string) error
}

// CardHandler handles card endpoints for the authenticated customer
type CardHandler struct {
	cardUsecase cardService
}

// NewCardHandler creates a new card handler
func NewCardHandler(cardUsecase *usecases.CardUsecase) *CardHandler {
	return &CardHandler{cardUsecase: cardUsecase}
}

// ActivateCard claims an available pool proxy for the customer
// POST /api/v1/cards/activate
func (h *CardHandler) ActivateCard(c *gin.Context) {
	var input entities.ActivateCardInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest("invalid_payload", err.Error()))
		return
	}

	customerID, ok := middleware.GetEntityID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	binding, err := h.cardUsecase.ActivateCard(c.Request.Context(), customerID, input.Proxy)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"card": binding})
}

// GetCardStatus returns the processor-side status of the active card
// GET /api/v1/cards/status
func (h *CardHandler) GetCardStatus(c *gin.Context) {
	customerID, ok := middleware.GetEntityID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	status, err := h.cardUsecase.CardStatus(c.Request.Context(), customerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"status": status})
}

// GetCardBalance returns the open-to-buy balance of the active card
// GET /api/v1/cards/balance
func (h *CardHandler) GetCardBalance(c *gin.Context) {
	customerID, ok := middleware.GetEntityID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	balance, err := h.cardUsecase.CardBalance(c.Request.Context(), customerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"balance": balance})
}

// ChangeCardStatus transitions the active card's status
// PUT /api/v1/cards/status
func (h *CardHandler) ChangeCardStatus(c *gin.Context) {
	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest("invalid_payload", err.Error()))
		return
	}

	customerID, ok := middleware.GetEntityID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	binding, err := h.cardUsecase.ChangeCardStatus(c.Request.Context(), customerID, input.Status)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"card": binding})
}

// TransferFunds moves value between two of the customer's cards
// POST /api/v1/cards/transfer
func (h *CardHandler) TransferFunds(c *gin.Context) {
	var input struct {
		FromProxy string `json:"fromProxy" binding:"required"`
		ToProxy   string `json:"toProxy" binding:"required"`
		Amount    string `json:"amount" binding:"required"`
		Comment   string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest("invalid_payload", err.Error()))
		return
	}

	amount, err := decimal.NewFromString(input.Amount)
	if err != nil || !amount.IsPositive() {
		response.Error(c, domainerrors.BadRequest("invalid_payload", "amount must be a positive number"))
		return
	}

	customerID, ok := middleware.GetEntityID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	if err := h.cardUsecase.TransferFunds(c.Request.Context(), customerID, input.FromProxy, input.ToProxy, amount, input.Comment); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "transfer completed"})
}
