package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/IbrahimAwiby/youtube-clone/internal/middleware"
	"github.com/IbrahimAwiby/youtube-clone/internal/service"
)

type WatchHandler struct {
	watch     *service.WatchService
	recommend *service.RecommendService
}

func NewWatchHandler(watch *service.WatchService, recommend *service.RecommendService) *WatchHandler {
	return &WatchHandler{watch: watch, recommend: recommend}
}

// Get handles GET /api/video/:categoryId/:videoId
func (h *WatchHandler) Get(c fiber.Ctx) error {
	category, videoID, errResp := h.params(c)
	if errResp != nil {
		return errResp
	}

	page, err := h.watch.Watch(c.Context(), category, videoID)
	if err != nil {
		if errors.Is(err, service.ErrVideoNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "Video not found")
		}
		return upstreamError(c, err, "Failed to load video data.")
	}
	return c.JSON(page)
}

// Related handles GET /api/video/:categoryId/:videoId/related?search=
func (h *WatchHandler) Related(c fiber.Ctx) error {
	category, videoID, errResp := h.params(c)
	if errResp != nil {
		return errResp
	}
	query, msg := middleware.ValidateSearchQuery(fiber.Query[string](c, "search"))
	if msg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_QUERY", msg)
	}

	rel, err := h.recommend.Related(c.Context(), category, videoID, query)
	if err != nil {
		return upstreamError(c, err, "Failed to load recommended videos.")
	}
	return c.JSON(rel)
}

func (h *WatchHandler) params(c fiber.Ctx) (category, videoID string, errResp error) {
	category, msg := middleware.ValidateCategoryID(c.Params("categoryId"))
	if msg != "" {
		return "", "", middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_CATEGORY", msg)
	}
	videoID, msg = middleware.ValidateVideoID(c.Params("videoId"))
	if msg != "" {
		return "", "", middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_VIDEO_ID", msg)
	}
	return category, videoID, nil
}
