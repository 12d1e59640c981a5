package model

import "time"

// VideoSummary is one card in the feed or recommendation rail. Display
// fields (Views, PublishedAgo) are derived at fetch time; the raw values
// stay alongside them for clients that format on their own.
type VideoSummary struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	ChannelID    string    `json:"channelId,omitempty"`
	ChannelTitle string    `json:"channelTitle"`
	Thumbnail    string    `json:"thumbnail"`
	CategoryID   string    `json:"categoryId"`
	ViewCount    int64     `json:"viewCount"`
	Views        string    `json:"views"`
	PublishedAt  time.Time `json:"publishedAt"`
	PublishedAgo string    `json:"publishedAgo"`
}

// VideoDetail is the watch-page video payload.
type VideoDetail struct {
	VideoSummary
	Description  string `json:"description"`
	LikeCount    int64  `json:"likeCount"`
	Likes        string `json:"likes"`
	CommentCount int64  `json:"commentCount"`
	EmbedURL     string `json:"embedUrl"`
}

// Pagination describes the client-side page window over a feed.
// Invariant: 1 <= CurrentPage <= TotalPages whenever TotalPages >= 1.
type Pagination struct {
	CurrentPage int          `json:"currentPage"`
	TotalPages  int          `json:"totalPages"`
	TotalItems  int          `json:"totalItems"`
	HasPrev     bool         `json:"hasPrev"`
	HasNext     bool         `json:"hasNext"`
	Buttons     []PageButton `json:"buttons"`
}

// PageButton mirrors pagination.Button for the JSON surface.
type PageButton struct {
	Page     int  `json:"page,omitempty"`
	Ellipsis bool `json:"ellipsis,omitempty"`
}

// FeedPage is the response for GET /api/feed.
type FeedPage struct {
	Items      []VideoSummary `json:"items"`
	Query      string         `json:"query,omitempty"`
	CategoryID string         `json:"categoryId,omitempty"`
	Pagination Pagination     `json:"pagination"`
}

// WatchPage bundles everything the detail view needs.
type WatchPage struct {
	Video    VideoDetail    `json:"video"`
	Channel  ChannelSummary `json:"channel"`
	Comments []Comment      `json:"comments"`
}

// RelatedVideos is the response for the recommendation rail.
type RelatedVideos struct {
	Items []VideoSummary `json:"items"`
	Query string         `json:"query,omitempty"`
}
