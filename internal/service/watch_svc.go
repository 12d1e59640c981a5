package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IbrahimAwiby/youtube-clone/internal/middleware"
	"github.com/IbrahimAwiby/youtube-clone/internal/model"
)

// ErrVideoNotFound marks a well-formed lookup for a video that does not
// exist. It is terminal: retrying the same id cannot succeed.
var ErrVideoNotFound = errors.New("video not found")

const watchCommentLimit = 20

// WatchService assembles the detail page: the video, its channel, and the
// first page of comments.
type WatchService struct {
	source VideoSource
	cache  *CacheService
	now    func() time.Time
}

func NewWatchService(source VideoSource, cache *CacheService) *WatchService {
	return &WatchService{source: source, cache: cache, now: time.Now}
}

// Watch returns the full detail payload. The video lookup is load-bearing;
// channel and comment failures degrade to a placeholder channel and an empty
// comment list so the page still renders.
func (s *WatchService) Watch(ctx context.Context, categoryID, videoID string) (*model.WatchPage, error) {
	key := VideoKey(videoID)
	if cached, err := s.cache.Get(ctx, key); err == nil && cached != nil {
		var page model.WatchPage
		if err := json.Unmarshal(cached, &page); err == nil {
			return &page, nil
		}
	}

	videos, err := s.source.VideosByID(ctx, []string{videoID})
	if err != nil {
		return nil, err
	}
	if len(videos) == 0 {
		return nil, ErrVideoNotFound
	}

	now := s.now()
	detail := detailFromVideo(videos[0], categoryID, now)

	page := &model.WatchPage{
		Video:    detail,
		Channel:  s.channel(ctx, detail.ChannelID),
		Comments: s.comments(ctx, videoID, now),
	}

	if err := s.cache.Set(ctx, key, page, VideoCacheTTL); err != nil {
		middleware.Logger.Warn().Err(err).Str("key", key).Msg("video cache write failed")
	}
	return page, nil
}

func (s *WatchService) channel(ctx context.Context, channelID string) model.ChannelSummary {
	if channelID == "" {
		return channelFromResource(nil)
	}

	key := ChannelKey(channelID)
	if cached, err := s.cache.Get(ctx, key); err == nil && cached != nil {
		var ch model.ChannelSummary
		if err := json.Unmarshal(cached, &ch); err == nil {
			return ch
		}
	}

	resource, err := s.source.ChannelByID(ctx, channelID)
	if err != nil {
		middleware.Logger.Warn().Err(err).Str("channel_id", channelID).Msg("channel fetch failed")
		return channelFromResource(nil)
	}
	ch := channelFromResource(resource)
	if resource != nil {
		if err := s.cache.Set(ctx, key, ch, ChannelCacheTTL); err != nil {
			middleware.Logger.Warn().Err(err).Str("key", key).Msg("channel cache write failed")
		}
	}
	return ch
}

func (s *WatchService) comments(ctx context.Context, videoID string, now time.Time) []model.Comment {
	threads, err := s.source.CommentThreads(ctx, videoID, watchCommentLimit)
	if err != nil {
		middleware.Logger.Warn().Err(err).Str("video_id", videoID).Msg("comment fetch failed")
		return []model.Comment{}
	}
	return commentsFromThreads(threads, now)
}
