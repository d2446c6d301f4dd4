package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"cardwallet.backend/internal/domain/entities"
	domainerrors "cardwallet.backend/internal/domain/errors"
	"cardwallet.backend/internal/interfaces/http/middleware"
	"cardwallet.backend/internal/interfaces/http/response"
	"cardwallet.backend/internal/usecases"
)

type etransferService interface {
	CreateRecipient(ctx context.Context, customerID int64, in *entities.CreateRecipientInput) (*entities.EtransferRecipient, error)
	UpdateRecipient(ctx context.Context, customerID, recipientID int64, in *entities.CreateRecipientInput) (*entities.EtransferRecipient, error)
	DeactivateRecipient(ctx context.Context, customerID, recipientID int64) (*entities.EtransferRecipient, error)
	SendEtransfer(ctx context.Context, customerID, recipientID int64, amount decimal.Decimal) (*entities.Etransfer, error)
	ViewRecipient(ctx context.Context, customerID, recipientID int64) (*entities.EtransferRecipient, error)
	ViewRecipients(ctx context.Context, customerID int64, activeOnly bool) ([]*entities.EtransferRecipient, error)
	ViewEtransfers(ctx context.Context, customerID int64, start, end time.Time) ([]*entities.Etransfer, error)
}

// EtransferHandler handles e-transfer endpoints for the authenticated
// customer.
type EtransferHandler struct {
	etransferUsecase etransferService
}

// NewEtransferHandler creates a new etransfer handler
func NewEtransferHandler(etransferUsecase *usecases.EtransferUsecase) *EtransferHandler {
	return &EtransferHandler{etransferUsecase: etransferUsecase}
}

// CreateRecipient registers an e-transfer recipient
// POST /api/v1/etransfers/recipients
func (h *EtransferHandler) CreateRecipient(c *gin.Context) {
	var input entities.CreateRecipientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest("invalid_payload", err.Error()))
		return
	}

	customerID, ok := middleware.GetEntityID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	rec, err := h.etransferUsecase.CreateRecipient(c.Request.Context(), customerID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"recipient": rec})
}

// UpdateRecipient edits an e-transfer recipient
// PUT /api/v1/etransfers/recipients/:id
func (h *EtransferHandler) UpdateRecipient(c *gin.Context) {
	recipientID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid_payload", "invalid recipient id"))
		return
	}

	var input entities.CreateRecipientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest("invalid_payload", err.Error()))
		return
	}

	customerID, ok := middleware.GetEntityID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	rec, err := h.etransferUsecase.UpdateRecipient(c.Request.Context(), customerID, recipientID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"recipient": rec})
}

// DeactivateRecipient retires an e-transfer recipient
// DELETE /api/v1/etransfers/recipients/:id
func (h *EtransferHandler) DeactivateRecipient(c *gin.Context) {
	recipientID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid_payload", "invalid recipient id"))
		return
	}

	customerID, ok := middleware.GetEntityID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	rec, err := h.etransferUsecase.DeactivateRecipient(c.Request.Context(), customerID, recipientID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"recipient": rec})
}

// ListRecipients lists the customer's recipients
// GET /api/v1/etransfers/recipients
func (h *EtransferHandler) ListRecipients(c *gin.Context) {
	customerID, ok := middleware.GetEntityID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	activeOnly := c.Query("active") == "true"

	recs, err := h.etransferUsecase.ViewRecipients(c.Request.Context(), customerID, activeOnly)
	if err != nil {
		response.Error(c, err)
		return
	}
	if recs == nil {
		recs = []*entities.EtransferRecipient{}
	}

	response.Success(c, http.StatusOK, gin.H{"recipients": recs})
}

// SendEtransfer submits an e-transfer to a registered recipient
// POST /api/v1/etransfers
func (h *EtransferHandler) SendEtransfer(c *gin.Context) {
	var input entities.SendEtransferInput
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

	et, err := h.etransferUsecase.SendEtransfer(c.Request.Context(), customerID, input.RecipientID, amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"etransfer": et})
}

// ListEtransfers lists the customer's settled transfers in a date window
// GET /api/v1/etransfers?start=2026-01-01&end=2026-02-01
func (h *EtransferHandler) ListEtransfers(c *gin.Context) {
	customerID, ok := middleware.GetEntityID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	start, end, err := parseDateWindow(c.Query("start"), c.Query("end"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid_payload", "dates must be YYYY-MM-DD"))
		return
	}

	transfers, err := h.etransferUsecase.ViewEtransfers(c.Request.Context(), customerID, start, end)
	if err != nil {
		response.Error(c, err)
		return
	}
	if transfers == nil {
		transfers = []*entities.Etransfer{}
	}

	response.Success(c, http.StatusOK, gin.H{"etransfers": transfers})
}
