package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/shoplist/backend/api/transport"
	"github.com/shoplist/backend/domain"
	"github.com/shoplist/backend/pkg/httpcontext"
	appLogger "github.com/shoplist/backend/pkg/logger"
	"github.com/shoplist/backend/store"
)

type ListHandler struct {
	baseHandler
	store *store.Store
}

func NewListHandler(s *store.Store, adapter *httpcontext.Adapter, logger *zap.Logger) *ListHandler {
	return &ListHandler{
		baseHandler: newBaseHandler(adapter, logger),
		store:       s,
	}
}

// @Summary List all shopping lists
// @Tags lists
// @Router /api/v1/lists [get]
func (h *ListHandler) GetLists(ctx *fasthttp.RequestCtx) {
	lists := h.store.Lists()
	views := make([]transport.ListView, 0, len(lists))
	for _, l := range lists {
		views = append(views, h.listView(l))
	}
	h.respondSuccess(ctx, http.StatusOK, views)
}

// @Summary Get one shopping list
// @Tags lists
// @Router /api/v1/lists/{id} [get]
func (h *ListHandler) GetList(ctx *fasthttp.RequestCtx) {
	list, ok := h.store.List(pathParam(ctx, "id"))
	if !ok {
		h.respondError(ctx, domain.ErrListNotFound)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, h.listView(list))
}

// @Summary Create shopping list
// @Tags lists
// @Router /api/v1/lists [post]
func (h *ListHandler) CreateList(ctx *fasthttp.RequestCtx) {
	name, ok := h.parseListName(ctx)
	if !ok {
		return
	}

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	id := h.store.CreateList(name)
	appLogger.WithRequestID(stdCtx, h.logger).Info("list created",
		zap.String("list_id", id),
	)

	list, _ := h.store.List(id)
	h.respondSuccess(ctx, http.StatusCreated, h.listView(list))
}

// @Summary Rename shopping list
// @Tags lists
// @Router /api/v1/lists/{id} [put]
func (h *ListHandler) RenameList(ctx *fasthttp.RequestCtx) {
	name, ok := h.parseListName(ctx)
	if !ok {
		return
	}
	id := pathParam(ctx, "id")

	h.store.UpdateListName(id, name)

	if list, found := h.store.List(id); found {
		h.respondSuccess(ctx, http.StatusOK, h.listView(list))
		return
	}
	// renaming an unknown list is a no-op, not a fault
	h.respondSuccess(ctx, http.StatusOK, nil)
}

// @Summary Delete shopping list
// @Tags lists
// @Router /api/v1/lists/{id} [delete]
func (h *ListHandler) DeleteList(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	id := pathParam(ctx, "id")
	h.store.DeleteList(id)
	appLogger.WithRequestID(stdCtx, h.logger).Info("list deleted",
		zap.String("list_id", id),
	)
	h.respondSuccess(ctx, http.StatusNoContent, nil)
}

// @Summary Get the currently selected list
// @Tags lists
// @Router /api/v1/current-list [get]
func (h *ListHandler) GetCurrentList(ctx *fasthttp.RequestCtx) {
	list, ok := h.store.GetCurrentList()
	if !ok {
		h.respondError(ctx, domain.ErrNoCurrentList)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, h.listView(list))
}

// @Summary Select the current list
// @Tags lists
// @Router /api/v1/current-list [put]
func (h *ListHandler) SetCurrentList(ctx *fasthttp.RequestCtx) {
	var req transport.CurrentListRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondError(ctx, domain.ErrInvalidPayload)
		return
	}

	id := ""
	if req.ID != nil {
		id = *req.ID
	}
	h.store.SetCurrentList(id)
	h.respondSuccess(ctx, http.StatusOK, nil)
}

// @Summary Unpurchased total of a list
// @Tags lists
// @Router /api/v1/lists/{id}/total [get]
func (h *ListHandler) GetListTotal(ctx *fasthttp.RequestCtx) {
	id := pathParam(ctx, "id")
	total := h.store.ListTotal(id)
	h.respondSuccess(ctx, http.StatusOK, transport.TotalView{
		ListID:    id,
		Total:     total,
		Formatted: h.store.FormatCurrency(total),
	})
}

// @Summary Shareable text summary of a list
// @Tags lists
// @Router /api/v1/lists/{id}/share [get]
func (h *ListHandler) ShareList(ctx *fasthttp.RequestCtx) {
	id := pathParam(ctx, "id")
	text, ok := h.store.ShareText(id)
	if !ok {
		h.respondError(ctx, domain.ErrListNotFound)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, transport.ShareView{ListID: id, Text: text})
}

func (h *ListHandler) parseListName(ctx *fasthttp.RequestCtx) (string, bool) {
	var req transport.ListRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondError(ctx, domain.ErrInvalidPayload)
		return "", false
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		h.respondJSON(ctx, http.StatusBadRequest, transport.NewError(string(domain.ErrCodeInvalid), "list name must not be blank", nil))
		return "", false
	}
	return name, true
}

func (h *ListHandler) listView(list domain.ShoppingList) transport.ListView {
	return transport.NewListView(list, h.store.FormatCurrency(list.UnpurchasedTotal()))
}
