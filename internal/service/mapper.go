package service

import (
	"context"
	"time"

	"github.com/IbrahimAwiby/youtube-clone/internal/model"
	"github.com/IbrahimAwiby/youtube-clone/internal/youtube"
	"github.com/IbrahimAwiby/youtube-clone/pkg/format"
)

// placeholderAvatar stands in when the upstream omits a channel or commenter
// image.
const placeholderAvatar = "/assets/user_profile.jpg"

// VideoSource is the slice of the upstream client the browse services
// consume. The concrete implementation is *youtube.Client.
type VideoSource interface {
	Trending(ctx context.Context, categoryID string, maxResults int) ([]youtube.Video, error)
	Search(ctx context.Context, query string, maxResults int) ([]youtube.SearchHit, error)
	VideosByID(ctx context.Context, ids []string) ([]youtube.Video, error)
	ChannelByID(ctx context.Context, channelID string) (*youtube.Channel, error)
	CommentThreads(ctx context.Context, videoID string, maxResults int) ([]youtube.CommentThread, error)
}

// bestThumbnail prefers the largest variant the upstream returned.
func bestThumbnail(t youtube.Thumbnails) string {
	switch {
	case t.High.URL != "":
		return t.High.URL
	case t.Medium.URL != "":
		return t.Medium.URL
	default:
		return t.Default.URL
	}
}

// summaryFromVideo maps a full video resource onto the feed card shape.
// categoryID is the browse context; the resource's own category wins when
// the upstream provides one.
func summaryFromVideo(v youtube.Video, categoryID string, now time.Time) model.VideoSummary {
	cat := v.Snippet.CategoryID
	if cat == "" {
		cat = categoryID
	}
	views := format.ParseCount(v.Statistics.ViewCount)
	return model.VideoSummary{
		ID:           v.ID,
		Title:        v.Snippet.Title,
		ChannelID:    v.Snippet.ChannelID,
		ChannelTitle: v.Snippet.ChannelTitle,
		Thumbnail:    bestThumbnail(v.Snippet.Thumbnails),
		CategoryID:   cat,
		ViewCount:    views,
		Views:        format.ViewCount(views),
		PublishedAt:  v.Snippet.PublishedAt,
		PublishedAgo: format.PublishedAgo(v.Snippet.PublishedAt, now),
	}
}

func detailFromVideo(v youtube.Video, categoryID string, now time.Time) model.VideoDetail {
	likes := format.ParseCount(v.Statistics.LikeCount)
	return model.VideoDetail{
		VideoSummary: summaryFromVideo(v, categoryID, now),
		Description:  v.Snippet.Description,
		LikeCount:    likes,
		Likes:        format.ViewCount(likes),
		CommentCount: format.ParseCount(v.Statistics.CommentCount),
		EmbedURL:     "https://www.youtube.com/embed/" + v.ID + "?autoplay=1",
	}
}

func channelFromResource(ch *youtube.Channel) model.ChannelSummary {
	if ch == nil {
		return model.ChannelSummary{Avatar: placeholderAvatar}
	}
	subs := format.ParseCount(ch.Statistics.SubscriberCount)
	avatar := bestThumbnail(ch.Snippet.Thumbnails)
	if avatar == "" {
		avatar = placeholderAvatar
	}
	return model.ChannelSummary{
		ID:              ch.ID,
		Title:           ch.Snippet.Title,
		Avatar:          avatar,
		SubscriberCount: subs,
		Subscribers:     format.ViewCount(subs),
	}
}

// commentsFromThreads keeps the upstream's return order.
func commentsFromThreads(threads []youtube.CommentThread, now time.Time) []model.Comment {
	comments := make([]model.Comment, 0, len(threads))
	for _, th := range threads {
		sn := th.Snippet.TopLevelComment.Snippet
		avatar := sn.AuthorProfileImageURL
		if avatar == "" {
			avatar = placeholderAvatar
		}
		comments = append(comments, model.Comment{
			ID:           th.ID,
			Author:       sn.AuthorDisplayName,
			AuthorAvatar: avatar,
			Text:         sn.TextDisplay,
			LikeCount:    sn.LikeCount,
			Likes:        format.ViewCount(sn.LikeCount),
			PublishedAt:  sn.PublishedAt,
			PublishedAgo: format.PublishedAgo(sn.PublishedAt, now),
		})
	}
	return comments
}
