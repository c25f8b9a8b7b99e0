package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tonotes/dto"
	"tonotes/middleware"
	"tonotes/usecase"
	"tonotes/utils"
)

type FocusHandler struct {
	ranking *usecase.RankingService
	clock   utils.Clock
	logger  *zap.Logger
}

func NewFocusHandler(ranking *usecase.RankingService, clock utils.Clock, logger *zap.Logger) *FocusHandler {
	return &FocusHandler{ranking: ranking, clock: clock, logger: logger}
}

// request resolves the owner and time zone shared by every focus route.
func (h *FocusHandler) request(c *gin.Context) (string, *time.Location, bool) {
	userID, ok := middleware.UserID(c)
	if !ok {
		utils.Unauthorized(c, "Missing or invalid token")
		return "", nil, false
	}

	loc, err := utils.RequestLocation(c)
	if err != nil {
		utils.RespondError(c, err)
		return "", nil, false
	}
	return userID, loc, true
}

func (h *FocusHandler) fail(c *gin.Context, surface string, err error) {
	if utils.KindOf(err) == utils.KindStoreFailure {
		h.logger.Error("ranking failed",
			zap.String("surface", surface),
			zap.String("request_id", c.GetString(middleware.RequestIDKey)),
			zap.Error(err))
		middleware.TrackError("store")
	}
	utils.RespondError(c, err)
}

func (h *FocusHandler) GetDailyFocus(c *gin.Context) {
	userID, loc, ok := h.request(c)
	if !ok {
		return
	}

	result, err := h.ranking.DailyFocus(c.Request.Context(), userID, loc)
	if err != nil {
		h.fail(c, "focus", err)
		return
	}
	utils.Success(c, dto.NewDailyFocusResponse(result, h.clock.Now()))
}

func (h *FocusHandler) GetRelatedNotes(c *gin.Context) {
	userID, loc, ok := h.request(c)
	if !ok {
		return
	}

	ref, result, err := h.ranking.Related(c.Request.Context(), userID, c.Param("id"), loc)
	if err != nil {
		h.fail(c, "related", err)
		return
	}
	utils.Success(c, dto.NewRelatedNotesResponse(ref, result, h.clock.Now()))
}

func (h *FocusHandler) GetResume(c *gin.Context) {
	userID, loc, ok := h.request(c)
	if !ok {
		return
	}

	result, err := h.ranking.Resume(c.Request.Context(), userID, loc)
	if err != nil {
		h.fail(c, "resume", err)
		return
	}
	utils.Success(c, dto.NewResumeResponse(result, h.clock.Now()))
}

func (h *FocusHandler) GetSmartPriority(c *gin.Context) {
	userID, loc, ok := h.request(c)
	if !ok {
		return
	}

	result, err := h.ranking.SmartPriority(c.Request.Context(), userID, loc)
	if err != nil {
		h.fail(c, "priority", err)
		return
	}
	utils.Success(c, dto.NewSmartPriorityResponse(result, h.clock.Now()))
}

func (h *FocusHandler) GetSmartViews(c *gin.Context) {
	userID, loc, ok := h.request(c)
	if !ok {
		return
	}

	tag := c.Query("tag")
	views, err := h.ranking.SmartViews(c.Request.Context(), userID, tag, loc)
	if err != nil {
		h.fail(c, "views", err)
		return
	}
	utils.Success(c, dto.NewSmartViewsResponse(tag, views))
}
