package service

import (
	"context"
	"time"

	"github.com/IbrahimAwiby/youtube-clone/internal/model"
)

const (
	relatedSearchSize   = 30
	relatedCategorySize = 15
)

// RecommendService fills the "up next" rail beside a playing video.
type RecommendService struct {
	source VideoSource
	now    func() time.Time
}

func NewRecommendService(source VideoSource) *RecommendService {
	return &RecommendService{source: source, now: time.Now}
}

// Related returns videos to show next to videoID. With a query it mirrors
// the search feed; otherwise it pulls the video's category trending list.
// The current video never recommends itself.
func (s *RecommendService) Related(ctx context.Context, categoryID, videoID, query string) (*model.RelatedVideos, error) {
	now := s.now()

	if query != "" {
		hits, err := s.source.Search(ctx, query, relatedSearchSize)
		if err != nil {
			return nil, err
		}
		// Filter before the join so the excluded id does not spend a slot.
		ids := make([]string, 0, len(hits))
		for _, h := range hits {
			if h.ID.VideoID != "" && h.ID.VideoID != videoID {
				ids = append(ids, h.ID.VideoID)
			}
		}
		videos, err := s.source.VideosByID(ctx, ids)
		if err != nil {
			return nil, err
		}
		items := make([]model.VideoSummary, 0, len(videos))
		for _, v := range videos {
			items = append(items, summaryFromVideo(v, categoryID, now))
		}
		return &model.RelatedVideos{Items: items, Query: query}, nil
	}

	videos, err := s.source.Trending(ctx, categoryID, relatedCategorySize)
	if err != nil {
		return nil, err
	}
	items := make([]model.VideoSummary, 0, len(videos))
	for _, v := range videos {
		if v.ID == videoID {
			continue
		}
		items = append(items, summaryFromVideo(v, categoryID, now))
	}
	return &model.RelatedVideos{Items: items}, nil
}
