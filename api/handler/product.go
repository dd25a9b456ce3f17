package handler

import (
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/shoplist/backend/api/transport"
	"github.com/shoplist/backend/domain"
	"github.com/shoplist/backend/pkg/httpcontext"
	appLogger "github.com/shoplist/backend/pkg/logger"
	"github.com/shoplist/backend/store"
)

type ProductHandler struct {
	baseHandler
	store *store.Store
}

func NewProductHandler(s *store.Store, adapter *httpcontext.Adapter, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{
		baseHandler: newBaseHandler(adapter, logger),
		store:       s,
	}
}

// @Summary Add product to a list
// @Tags products
// @Router /api/v1/lists/{id}/products [post]
func (h *ProductHandler) AddProduct(ctx *fasthttp.RequestCtx) {
	var req transport.ProductCreateRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondError(ctx, domain.ErrInvalidPayload)
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	listID := pathParam(ctx, "id")
	product, ok := h.store.AddProduct(listID, domain.ProductInput{
		Name:     req.Name,
		Quantity: req.Quantity,
		Price:    req.Price,
	})
	if !ok {
		h.respondError(ctx, domain.ErrListNotFound)
		return
	}

	appLogger.WithRequestID(stdCtx, h.logger).Info("product added",
		zap.String("list_id", listID),
		zap.String("product_id", product.ID),
	)
	h.respondSuccess(ctx, http.StatusCreated, product)
}

// @Summary Partially update a product
// @Tags products
// @Router /api/v1/lists/{id}/products/{productId} [patch]
func (h *ProductHandler) UpdateProduct(ctx *fasthttp.RequestCtx) {
	var req transport.ProductUpdateRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondError(ctx, domain.ErrInvalidPayload)
		return
	}

	h.store.UpdateProduct(pathParam(ctx, "id"), pathParam(ctx, "productId"), domain.ProductPatch{
		Name:      req.Name,
		Quantity:  req.Quantity,
		Price:     req.Price,
		Purchased: req.Purchased,
	})
	// a missing list or product is a silent no-op, matching the store
	h.respondSuccess(ctx, http.StatusOK, nil)
}

// @Summary Delete a product
// @Tags products
// @Router /api/v1/lists/{id}/products/{productId} [delete]
func (h *ProductHandler) DeleteProduct(ctx *fasthttp.RequestCtx) {
	h.store.DeleteProduct(pathParam(ctx, "id"), pathParam(ctx, "productId"))
	h.respondSuccess(ctx, http.StatusNoContent, nil)
}
