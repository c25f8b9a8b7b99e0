package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tonotes/utils"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	store Pinger
	// cache is nil when no Redis is configured.
	cache       Pinger
	cpuInterval time.Duration
	logger      *zap.Logger
}

func NewHealthHandler(store, cache Pinger, cpuInterval time.Duration, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{store: store, cache: cache, cpuInterval: cpuInterval, logger: logger}
}

type HealthResponse struct {
	Status   string             `json:"status"`
	Store    string             `json:"store"`
	Cache    string             `json:"cache"`
	CPUUsage float64            `json:"cpu_usage"`
	Mongo    utils.MongoMetrics `json:"mongo"`
}

// Check reports 503 when the note store is unreachable. A failing cache only
// degrades the status.
func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	resp := HealthResponse{Status: "ok", Store: "up", Cache: "disabled", Mongo: utils.GetMongoMetrics()}
	status := http.StatusOK

	if err := h.store.Ping(ctx); err != nil {
		h.logger.Error("store ping failed", zap.Error(err))
		resp.Status, resp.Store = "unavailable", "down"
		status = http.StatusServiceUnavailable
	}

	if h.cache != nil {
		resp.Cache = "up"
		if err := h.cache.Ping(ctx); err != nil {
			h.logger.Warn("cache ping failed", zap.Error(err))
			resp.Cache = "down"
			if status == http.StatusOK {
				resp.Status = "degraded"
			}
		}
	}

	if usage, err := utils.GetCPUUsage(ctx, h.cpuInterval); err == nil {
		resp.CPUUsage = usage
	}

	c.JSON(status, &utils.Response{
		Status: status,
		Error:  status != http.StatusOK,
		Data:   resp,
	})
}
