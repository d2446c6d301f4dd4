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

type walletService interface {
	AddWallet(ctx context.Context, in *entities.AddWalletInput) (*entities.Wallet, error)
	DeactivateWallet(ctx context.Context, clientID, walletID int64) (*entities.Wallet, error)
	FundWallet(ctx context.Context, clientID, storeID, walletID int64, adjustment decimal.Decimal, entityID int64, entityType string) (*entities.Wallet, error)
	ViewWallet(ctx context.Context, clientID, walletID int64) (*entities.Wallet, error)
	ViewStoreWallets(ctx context.Context, storeID int64, activeOnly bool) ([]*entities.Wallet, error)
	StoreBalance(ctx context.Context, storeID int64) (decimal.Decimal, error)
	ViewActivity(ctx context.Context, walletID, storeID int64, start, end time.Time) ([]*entities.WalletAdjustment, error)
}

// WalletHandler handles store wallet endpoints
type WalletHandler struct {
	walletUsecase walletService
}

// NewWalletHandler creates a new wallet handler
func NewWalletHandler(walletUsecase *usecases.WalletUsecase) *WalletHandler {
	return &WalletHandler{walletUsecase: walletUsecase}
}

// AddWallet creates a store wallet
// POST /api/v1/wallets
func (h *WalletHandler) AddWallet(c *gin.Context) {
	var input entities.AddWalletInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest("invalid_payload", err.Error()))
		return
	}

	wallet, err := h.walletUsecase.AddWallet(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"wallet": wallet})
}

// FundWallet applies a signed manual balance adjustment
// POST /api/v1/wallets/fund
func (h *WalletHandler) FundWallet(c *gin.Context) {
	var input entities.FundWalletInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest("invalid_payload", err.Error()))
		return
	}

	adjustment, err := decimal.NewFromString(input.Adjustment)
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid_payload", "invalid adjustment"))
		return
	}

	entityID, ok := middleware.GetEntityID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}
	entityType, _ := middleware.GetEntityType(c)

	wallet, err := h.walletUsecase.FundWallet(c.Request.Context(),
		input.ClientID, input.StoreID, input.WalletID, adjustment, entityID, entityType)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"wallet": wallet})
}

// GetWallet returns a single wallet
// GET /api/v1/wallets/:id
func (h *WalletHandler) GetWallet(c *gin.Context) {
	walletID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid_payload", "invalid wallet id"))
		return
	}

	clientID, ok := middleware.GetClientID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	wallet, err := h.walletUsecase.ViewWallet(c.Request.Context(), clientID, walletID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"wallet": wallet})
}

// DeactivateWallet retires a wallet
// DELETE /api/v1/wallets/:id
func (h *WalletHandler) DeactivateWallet(c *gin.Context) {
	walletID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid_payload", "invalid wallet id"))
		return
	}

	clientID, ok := middleware.GetClientID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	wallet, err := h.walletUsecase.DeactivateWallet(c.Request.Context(), clientID, walletID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"wallet": wallet})
}

// ListStoreWallets lists a store's wallets
// GET /api/v1/stores/:id/wallets
func (h *WalletHandler) ListStoreWallets(c *gin.Context) {
	storeID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid_payload", "invalid store id"))
		return
	}

	activeOnly := c.Query("active") == "true"

	wallets, err := h.walletUsecase.ViewStoreWallets(c.Request.Context(), storeID, activeOnly)
	if err != nil {
		response.Error(c, err)
		return
	}
	if wallets == nil {
		wallets = []*entities.Wallet{}
	}

	response.Success(c, http.StatusOK, gin.H{"wallets": wallets})
}

// GetStoreBalance returns the pooled balance across a store's active wallets
// GET /api/v1/stores/:id/balance
func (h *WalletHandler) GetStoreBalance(c *gin.Context) {
	storeID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid_payload", "invalid store id"))
		return
	}

	balance, err := h.walletUsecase.StoreBalance(c.Request.Context(), storeID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"balance": balance})
}

// GetWalletActivity returns the audit trail for a wallet in a date window
// GET /api/v1/wallets/:id/activity?start=2026-01-01&end=2026-02-01
func (h *WalletHandler) GetWalletActivity(c *gin.Context) {
	walletID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid_payload", "invalid wallet id"))
		return
	}

	storeID, ok := middleware.GetStoreID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	start, end, err := parseDateWindow(c.Query("start"), c.Query("end"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid_payload", "dates must be YYYY-MM-DD"))
		return
	}

	activity, err := h.walletUsecase.ViewActivity(c.Request.Context(), walletID, storeID, start, end)
	if err != nil {
		response.Error(c, err)
		return
	}
	if activity == nil {
		activity = []*entities.WalletAdjustment{}
	}

	response.Success(c, http.StatusOK, gin.H{"activity": activity})
}

// parseDateWindow parses optional YYYY-MM-DD bounds; zero times mean "use the
// default window".
func parseDateWindow(startStr, endStr string) (time.Time, time.Time, error) {
	var start, end time.Time
	var err error
	if startStr != "" {
		if start, err = time.Parse("2006-01-02", startStr); err != nil {
			return start, end, err
		}
	}
	if endStr != "" {
		if end, err = time.Parse("2006-01-02", endStr); err != nil {
			return start, end, err
		}
	}
	return start, end, nil
}
