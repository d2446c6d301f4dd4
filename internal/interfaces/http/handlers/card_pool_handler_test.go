package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"cardwallet.backend/internal/domain/entities"
	domainerrors "cardwallet.backend/internal/domain/errors"
)

type cardPoolServiceStub struct {
	loadFn func(context.Context, int64, []string) ([]*entities.ClientCardProxy, error)
	viewFn func(context.Context, int64) ([]*entities.ClientCardProxy, error)
}

func (s cardPoolServiceStub) LoadProxies(ctx context.Context, clientID int64, proxies []string) ([]*entities.ClientCardProxy, error) {
	return s.loadFn(ctx, clientID, proxies)
}

func (s cardPoolServiceStub) ViewPool(ctx context.Context, clientID int64) ([]*entities.ClientCardProxy, error) {
	return s.viewFn(ctx, clientID)
}

func cardPoolRouter(h *CardPoolHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/admin/clients/:id/card-proxies", h.LoadProxies)
	r.GET("/admin/clients/:id/card-proxies", h.ViewPool)
	return r
}

func TestCardPoolHandler_LoadProxies(t *testing.T) {
	h := &CardPoolHandler{cardUsecase: cardPoolServiceStub{
		loadFn: func(_ context.Context, clientID int64, proxies []string) ([]*entities.ClientCardProxy, error) {
			require.Equal(t, int64(1), clientID)
			require.Equal(t, []string{"PX-100", "PX-200"}, proxies)
			out := make([]*entities.ClientCardProxy, len(proxies))
			for i, p := range proxies {
				out[i] = &entities.ClientCardProxy{ClientID: clientID, Proxy: p, Status: entities.ProxyStatusAvailable}
			}
			return out, nil
		},
	}}
	r := cardPoolRouter(h)

	body := `{"proxies":["PX-100","PX-200"]}`
	req := httptest.NewRequest(http.MethodPost, "/admin/clients/1/card-proxies", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	require.Contains(t, w.Body.String(), "PX-200")
}

func TestCardPoolHandler_LoadProxies_EmptyBatch(t *testing.T) {
	h := &CardPoolHandler{cardUsecase: cardPoolServiceStub{}}
	r := cardPoolRouter(h)

	body := `{"proxies":[]}`
	req := httptest.NewRequest(http.MethodPost, "/admin/clients/1/card-proxies", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCardPoolHandler_LoadProxies_SaveFailure(t *testing.T) {
	h := &CardPoolHandler{cardUsecase: cardPoolServiceStub{
		loadFn: func(context.Context, int64, []string) ([]*entities.ClientCardProxy, error) {
			return nil, domainerrors.InternalError(domainerrors.ErrWriteFailed)
		},
	}}
	r := cardPoolRouter(h)

	body := `{"proxies":["PX-100"]}`
	req := httptest.NewRequest(http.MethodPost, "/admin/clients/1/card-proxies", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestCardPoolHandler_ViewPool_Empty(t *testing.T) {
	h := &CardPoolHandler{cardUsecase: cardPoolServiceStub{
		viewFn: func(context.Context, int64) ([]*entities.ClientCardProxy, error) {
			return nil, nil
		},
	}}
	r := cardPoolRouter(h)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/clients/1/card-proxies", nil))

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"proxies":[]}`, w.Body.String())
}
