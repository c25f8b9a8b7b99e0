package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"tonotes/dto"
	"tonotes/middleware"
	"tonotes/model"
	"tonotes/usecase"
	"tonotes/utils"
)

type OverrideHandler struct {
	overrides *usecase.OverrideService
	clock     utils.Clock
}

func NewOverrideHandler(overrides *usecase.OverrideService, clock utils.Clock) *OverrideHandler {
	return &OverrideHandler{overrides: overrides, clock: clock}
}

type overrideFunc func(ctx context.Context, userID, noteID string) (*model.Note, error)

func (h *OverrideHandler) run(c *gin.Context, op overrideFunc) {
	userID, ok := middleware.UserID(c)
	if !ok {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}

	note, err := op(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.Success(c, dto.NewOverrideResponse(note, h.clock.Now()))
}

func (h *OverrideHandler) Snooze(c *gin.Context) {
	var req dto.SnoozeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, utils.ValidationMessage(err))
		return
	}

	h.run(c, func(ctx context.Context, userID, noteID string) (*model.Note, error) {
		return h.overrides.Snooze(ctx, userID, noteID, req.Duration)
	})
}

func (h *OverrideHandler) Unsnooze(c *gin.Context) {
	h.run(c, h.overrides.Unsnooze)
}

func (h *OverrideHandler) Dismiss(c *gin.Context) {
	h.run(c, h.overrides.Dismiss)
}

func (h *OverrideHandler) Restore(c *gin.Context) {
	h.run(c, h.overrides.Restore)
}

func (h *OverrideHandler) ToggleFocusPin(c *gin.Context) {
	h.run(c, h.overrides.ToggleFocusPin)
}
