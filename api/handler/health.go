package handler

import (
	"net/http"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/shoplist/backend/api/transport"
	"github.com/shoplist/backend/internal/infrastructure/monitor"
	"github.com/shoplist/backend/pkg/httpcontext"
)

type HealthHandler struct {
	baseHandler
	monitor *monitor.Monitor
}

func NewHealthHandler(mon *monitor.Monitor, adapter *httpcontext.Adapter, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		baseHandler: newBaseHandler(adapter, logger),
		monitor:     mon,
	}
}

// @Summary Health check
// @Tags health
// @Router /health [get]
func (h *HealthHandler) Check(ctx *fasthttp.RequestCtx) {
	status := h.monitor.GetStatus()
	payload := map[string]interface{}{
		"timestamp": time.Now().UTC(),
		"backing":   status.Backing,
		"store": map[string]interface{}{
			"lists":    status.Lists,
			"products": status.Products,
		},
	}

	if status.Backing {
		h.respondSuccess(ctx, http.StatusOK, payload)
		return
	}
	// the in-memory store keeps serving; only durability is at risk
	h.respondJSON(ctx, http.StatusServiceUnavailable, transport.NewError("DEGRADED", "durable backing unavailable", payload))
}
