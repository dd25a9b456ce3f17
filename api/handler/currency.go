package handler

import (
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/shoplist/backend/api/transport"
	"github.com/shoplist/backend/domain"
	"github.com/shoplist/backend/pkg/httpcontext"
	"github.com/shoplist/backend/store"
)

type CurrencyHandler struct {
	baseHandler
	store *store.Store
}

func NewCurrencyHandler(s *store.Store, adapter *httpcontext.Adapter, logger *zap.Logger) *CurrencyHandler {
	return &CurrencyHandler{
		baseHandler: newBaseHandler(adapter, logger),
		store:       s,
	}
}

// @Summary Currency table and current selection
// @Tags currencies
// @Router /api/v1/currencies [get]
func (h *CurrencyHandler) GetCurrencies(ctx *fasthttp.RequestCtx) {
	h.respondSuccess(ctx, http.StatusOK, transport.CurrencyView{
		Selected:   h.store.SelectedCurrency(),
		Currencies: domain.Currencies(),
	})
}

// @Summary Select display currency
// @Tags currencies
// @Router /api/v1/currencies/selected [put]
func (h *CurrencyHandler) SetCurrency(ctx *fasthttp.RequestCtx) {
	var req transport.CurrencyRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondError(ctx, domain.ErrInvalidPayload)
		return
	}

	// unknown codes are ignored by the store; the response carries whatever
	// selection is in effect afterwards
	h.store.SetCurrency(req.Code)
	h.respondSuccess(ctx, http.StatusOK, transport.CurrencyView{
		Selected:   h.store.SelectedCurrency(),
		Currencies: domain.Currencies(),
	})
}
