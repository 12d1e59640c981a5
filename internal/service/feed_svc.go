package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/IbrahimAwiby/youtube-clone/internal/middleware"
	"github.com/IbrahimAwiby/youtube-clone/internal/model"
	"github.com/IbrahimAwiby/youtube-clone/pkg/pagination"
)

const (
	// feedFetchSize is the raw result ceiling per browse; the upstream caps
	// list endpoints at 50.
	feedFetchSize = 50
	feedPageSize  = 12
)

// FeedService builds the browse surface: trending by category or keyword
// search, paginated.
type FeedService struct {
	source VideoSource
	cache  *CacheService
	now    func() time.Time
}

func NewFeedService(source VideoSource, cache *CacheService) *FeedService {
	return &FeedService{source: source, cache: cache, now: time.Now}
}

// BrowseRequest selects one page of one feed. A non-empty Query switches the
// feed into search mode and the category is ignored.
type BrowseRequest struct {
	CategoryID string
	Query      string
	Page       int
}

// Browse returns one page of the requested feed. An empty upstream result is
// a valid page with no items, not an error.
func (s *FeedService) Browse(ctx context.Context, req BrowseRequest) (*model.FeedPage, error) {
	key := FeedKey(req.CategoryID, req.Query, req.Page)
	if cached, err := s.cache.Get(ctx, key); err == nil && cached != nil {
		var page model.FeedPage
		if err := json.Unmarshal(cached, &page); err == nil {
			return &page, nil
		}
	}

	items, err := s.fetch(ctx, req)
	if err != nil {
		return nil, err
	}

	page := buildFeedPage(items, req)
	if err := s.cache.Set(ctx, key, page, FeedCacheTTL); err != nil {
		middleware.Logger.Warn().Err(err).Str("key", key).Msg("feed cache write failed")
	}
	return page, nil
}

func (s *FeedService) fetch(ctx context.Context, req BrowseRequest) ([]model.VideoSummary, error) {
	now := s.now()

	if req.Query == "" {
		videos, err := s.source.Trending(ctx, req.CategoryID, feedFetchSize)
		if err != nil {
			return nil, err
		}
		items := make([]model.VideoSummary, 0, len(videos))
		for _, v := range videos {
			items = append(items, summaryFromVideo(v, req.CategoryID, now))
		}
		return items, nil
	}

	hits, err := s.source.Search(ctx, req.Query, feedFetchSize)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(hits))
	for _, h := range hits {
		if h.ID.VideoID != "" {
			ids = append(ids, h.ID.VideoID)
		}
	}

	// One batch call reattaches the statistics search hits lack. Hits whose
	// ids drop out of the join are omitted.
	videos, err := s.source.VideosByID(ctx, ids)
	if err != nil {
		return nil, err
	}
	items := make([]model.VideoSummary, 0, len(videos))
	for _, v := range videos {
		items = append(items, summaryFromVideo(v, req.CategoryID, now))
	}
	return items, nil
}

func buildFeedPage(items []model.VideoSummary, req BrowseRequest) *model.FeedPage {
	total := len(items)
	totalPages := pagination.TotalPages(total, feedPageSize)
	current := pagination.Clamp(req.Page, totalPages)

	start := (current - 1) * feedPageSize
	end := start + feedPageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	buttons := pagination.Window(current, totalPages)
	pageButtons := make([]model.PageButton, len(buttons))
	for i, b := range buttons {
		pageButtons[i] = model.PageButton{Page: b.Page, Ellipsis: b.Ellipsis}
	}

	return &model.FeedPage{
		Items:      items[start:end],
		Query:      req.Query,
		CategoryID: req.CategoryID,
		Pagination: model.Pagination{
			CurrentPage: current,
			TotalPages:  totalPages,
			TotalItems:  total,
			HasPrev:     current > 1,
			HasNext:     current < totalPages,
			Buttons:     pageButtons,
		},
	}
}
