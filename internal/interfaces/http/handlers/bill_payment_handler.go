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

type billPaymentService interface {
	SearchPayees(ctx context.Context, token string) ([]*entities.PayeeSearchResult, error)
	AddPayee(ctx context.Context, customerID int64, in *entities.CreatePayeeInput) (*entities.BillPayee, error)
	UpdatePayeeAccount(ctx context.Context, customerID, payeeID int64, accountNumber string) (*entities.BillPayee, error)
	DeactivatePayee(ctx context.Context, customerID, payeeID int64) (*entities.BillPayee, error)
	CreateBillPayment(ctx context.Context, customerID, payeeID int64, amount decimal.Decimal) (*entities.BillPayment, error)
	ViewPayees(ctx context.Context, customerID int64, activeOnly bool) ([]*entities.BillPayee, error)
	ViewBillPayments(ctx context.Context, customerID int64, start, end time.Time) ([]*entities.BillPayment, error)
}

// BillPaymentHandler handles bill payment endpoints for the authenticated
// customer.
type BillPaymentHandler struct {
	billPaymentUsecase billPaymentService
}

// NewBillPaymentHandler creates a new bill payment handler
func NewBillPaymentHandler(billPaymentUsecase *usecases.BillPaymentUsecase) *BillPaymentHandler {
	return &BillPaymentHandler{billPaymentUsecase: billPaymentUsecase}
}

// SearchPayees queries the remote biller directory
// GET /api/v1/bill-payments/payees/search?q=hydro
func (h *BillPaymentHandler) SearchPayees(c *gin.Context) {
	results, err := h.billPaymentUsecase.SearchPayees(c.Request.Context(), c.Query("q"))
	if err != nil {
		response.Error(c, err)
		return
	}
	if results == nil {
		results = []*entities.PayeeSearchResult{}
	}

	response.Success(c, http.StatusOK, gin.H{"payees": results})
}

// AddPayee registers a biller for the customer
// POST /api/v1/bill-payments/payees
func (h *BillPaymentHandler) AddPayee(c *gin.Context) {
	var input entities.CreatePayeeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest("invalid_payload", err.Error()))
		return
	}

	customerID, ok := middleware.GetEntityID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	payee, err := h.billPaymentUsecase.AddPayee(c.Request.Context(), customerID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"payee": payee})
}

// UpdatePayeeAccount changes the account number registered with a payee
// PUT /api/v1/bill-payments/payees/:id
func (h *BillPaymentHandler) UpdatePayeeAccount(c *gin.Context) {
	payeeID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid_payload", "invalid payee id"))
		return
	}

	var input struct {
		AccountNumber string `json:"accountNumber" binding:"required"`
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

	payee, err := h.billPaymentUsecase.UpdatePayeeAccount(c.Request.Context(), customerID, payeeID, input.AccountNumber)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"payee": payee})
}

// DeactivatePayee retires a payee
// DELETE /api/v1/bill-payments/payees/:id
func (h *BillPaymentHandler) DeactivatePayee(c *gin.Context) {
	payeeID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid_payload", "invalid payee id"))
		return
	}

	customerID, ok := middleware.GetEntityID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	payee, err := h.billPaymentUsecase.DeactivatePayee(c.Request.Context(), customerID, payeeID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"payee": payee})
}

// ListPayees lists the customer's payees
// GET /api/v1/bill-payments/payees
func (h *BillPaymentHandler) ListPayees(c *gin.Context) {
	customerID, ok := middleware.GetEntityID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	activeOnly := c.Query("active") == "true"

	payees, err := h.billPaymentUsecase.ViewPayees(c.Request.Context(), customerID, activeOnly)
	if err != nil {
		response.Error(c, err)
		return
	}
	if payees == nil {
		payees = []*entities.BillPayee{}
	}

	response.Success(c, http.StatusOK, gin.H{"payees": payees})
}

// CreateBillPayment pays a bill through a registered payee
// POST /api/v1/bill-payments
func (h *BillPaymentHandler) CreateBillPayment(c *gin.Context) {
	var input entities.CreateBillPaymentInput
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

	payment, err := h.billPaymentUsecase.CreateBillPayment(c.Request.Context(), customerID, input.PayeeID, amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"billPayment": payment})
}

// ListBillPayments lists the customer's bill payments in a date window
// GET /api/v1/bill-payments?start=2026-01-01&end=2026-02-01
func (h *BillPaymentHandler) ListBillPayments(c *gin.Context) {
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

	payments, err := h.billPaymentUsecase.ViewBillPayments(c.Request.Context(), customerID, start, end)
	if err != nil {
		response.Error(c, err)
		return
	}
	if payments == nil {
		payments = []*entities.BillPayment{}
	}

	response.Success(c, http.StatusOK, gin.H{"billPayments": payments})
}
