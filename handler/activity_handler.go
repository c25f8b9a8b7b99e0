package handler

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tonotes/dto"
	"tonotes/middleware"
	"tonotes/usecase"
	"tonotes/utils"
)

// ActivityHandler accepts view and edit events. Both routes answer with an
// ack before the event is stored.
type ActivityHandler struct {
	activity *usecase.ActivityService
	logger   *zap.Logger
}

func NewActivityHandler(activity *usecase.ActivityService, logger *zap.Logger) *ActivityHandler {
	return &ActivityHandler{activity: activity, logger: logger}
}

func (h *ActivityHandler) TrackView(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}

	// The body is optional; a malformed one counts as an empty view.
	var req dto.TrackViewRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Debug("ignoring malformed view payload", zap.Error(err))
		req = dto.TrackViewRequest{}
	}

	h.activity.TrackView(userID, c.Param("id"), req.ScrollPosition, req.TimeSpent)
	utils.Ack(c, "View tracked")
}

func (h *ActivityHandler) TrackEdit(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}

	h.activity.TrackEdit(userID, c.Param("id"))
	utils.Ack(c, "Edit tracked")
}
