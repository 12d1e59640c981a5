package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/IbrahimAwiby/youtube-clone/internal/middleware"
	"github.com/IbrahimAwiby/youtube-clone/internal/service"
	"github.com/IbrahimAwiby/youtube-clone/internal/youtube"
)

type FeedHandler struct {
	svc *service.FeedService
}

func NewFeedHandler(svc *service.FeedService) *FeedHandler {
	return &FeedHandler{svc: svc}
}

// Browse handles GET /api/feed?category=&search=&page=
func (h *FeedHandler) Browse(c fiber.Ctx) error {
	category, msg := middleware.ValidateCategoryID(fiber.Query[string](c, "category"))
	if msg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_CATEGORY", msg)
	}
	query, msg := middleware.ValidateSearchQuery(fiber.Query[string](c, "search"))
	if msg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_QUERY", msg)
	}
	page := fiber.Query[int](c, "page", 1)

	mode := "category"
	if query != "" {
		mode = "search"
	}
	Metrics.BrowseTotal.WithLabelValues(mode).Inc()

	feed, err := h.svc.Browse(c.Context(), service.BrowseRequest{
		CategoryID: category,
		Query:      query,
		Page:       page,
	})
	if err != nil {
		return upstreamError(c, err, "Failed to load videos. Please check your connection.")
	}
	return c.JSON(feed)
}

// upstreamError maps YouTube API failures onto the uniform error envelope.
// The message is the user-facing wording for the failure class.
func upstreamError(c fiber.Ctx, err error, transportFallback string) error {
	status := fiber.StatusBadGateway
	code := "UPSTREAM_ERROR"
	switch {
	case errors.Is(err, youtube.ErrQuotaExceeded):
		status = fiber.StatusServiceUnavailable
		code = "QUOTA_EXCEEDED"
	case errors.Is(err, youtube.ErrBadRequest):
		code = "UPSTREAM_BAD_REQUEST"
	}
	middleware.Logger.Error().Err(err).Str("code", code).Msg("upstream fetch failed")
	return middleware.ErrorResponse(c, status, code, youtube.UserMessage(err, transportFallback))
}
