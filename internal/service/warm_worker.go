package service

import (
	"context"
	"time"

	"github.com/IbrahimAwiby/youtube-clone/internal/middleware"
)

// sidebarCategories are the category ids the sidebar offers, home first.
var sidebarCategories = []string{"0", "20", "2", "17", "24", "28", "10", "22", "25"}

// WarmWorker keeps the first page of each sidebar category primed in cache
// so the common feeds never pay an upstream round trip.
type WarmWorker struct {
	feed     *FeedService
	cache    *CacheService
	interval time.Duration
}

// NewWarmWorker creates a cache warmer. It is a no-op when caching is
// disabled, since there is nothing to prime.
func NewWarmWorker(feed *FeedService, cache *CacheService) *WarmWorker {
	return &WarmWorker{
		feed:     feed,
		cache:    cache,
		interval: FeedCacheTTL - 30*time.Second,
	}
}

// Start runs the warm loop until ctx is cancelled. Call in a goroutine.
func (w *WarmWorker) Start(ctx context.Context) {
	if w.cache == nil || w.cache.Client() == nil {
		middleware.Logger.Info().Msg("warm-worker: caching disabled, not starting")
		return
	}

	middleware.Logger.Info().Dur("interval", w.interval).Msg("warm-worker: starting")

	// Prime once at startup so the first visitors hit a warm cache too.
	w.warm(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.warm(ctx)
		case <-ctx.Done():
			middleware.Logger.Info().Msg("warm-worker: stopping (context cancelled)")
			return
		}
	}
}

// warm re-fetches page one of every sidebar category. Browse writes through
// to the cache on its own, but the entry has to be dropped first or the
// fetch would be answered from the stale copy.
func (w *WarmWorker) warm(ctx context.Context) {
	warmed := 0
	for _, categoryID := range sidebarCategories {
		if ctx.Err() != nil {
			return
		}
		key := FeedKey(categoryID, "", 1)
		if err := w.cache.Invalidate(ctx, key); err != nil {
			middleware.Logger.Warn().Err(err).Str("key", key).Msg("warm-worker: invalidate failed")
		}
		if _, err := w.feed.Browse(ctx, BrowseRequest{CategoryID: categoryID, Page: 1}); err != nil {
			middleware.Logger.Warn().Err(err).Str("category", categoryID).Msg("warm-worker: fetch failed")
			continue
		}
		warmed++
	}
	if warmed > 0 {
		middleware.Logger.Debug().Int("categories", warmed).Msg("warm-worker: cycle complete")
	}
}
