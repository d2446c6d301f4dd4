package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"cardwallet.backend/internal/domain/entities"
	domainerrors "cardwallet.backend/internal/domain/errors"
	"cardwallet.backend/internal/interfaces/http/response"
	"cardwallet.backend/internal/usecases"
)

type cardPoolService interface {
	LoadProxies(ctx context.Context, clientID int64, proxies []string) ([]*entities.ClientCardProxy, error)
	ViewPool(ctx context.Context, clientID int64) ([]*entities.ClientCardProxy, error)
}

// CardPoolHandler handles the admin-facing proxy pool endpoints
type CardPoolHandler struct {
	cardUsecase cardPoolService
}

// NewCardPoolHandler creates a new card pool handler
func NewCardPoolHandler(cardUsecase *usecases.CardUsecase) *CardPoolHandler {
	return &CardPoolHandler{cardUsecase: cardUsecase}
}

// LoadProxies registers a batch of unassigned proxies for a client
// POST /api/v1/admin/clients/:id/card-proxies
func (h *CardPoolHandler) LoadProxies(c *gin.Context) {
	clientID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid_payload", "invalid client id"))
		return
	}

	var input struct {
		Proxies []string `json:"proxies" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest("invalid_payload", err.Error()))
		return
	}

	loaded, err := h.cardUsecase.LoadProxies(c.Request.Context(), clientID, input.Proxies)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"proxies": loaded})
}

// ViewPool lists a client's proxy pool
// GET /api/v1/admin/clients/:id/card-proxies
func (h *CardPoolHandler) ViewPool(c *gin.Context) {
	clientID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid_payload", "invalid client id"))
		return
	}

	pool, err := h.cardUsecase.ViewPool(c.Request.Context(), clientID)
	if err != nil {
		response.Error(c, err)
		return
	}
	if pool == nil {
		pool = []*entities.ClientCardProxy{}
	}

	response.Success(c, http.StatusOK, gin.H{"proxies": pool})
}
