package youtube

import "time"

// Response schemas for the three Data API v3 endpoint families we consume.
// Every nested field the service reads is declared explicitly; anything the
// upstream may omit is left as a zero value and null-coalesced by callers.

// Thumbnail is a single image reference.
type Thumbnail struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// Thumbnails holds the standard size variants. Any of them may be absent.
type Thumbnails struct {
	Default Thumbnail `json:"default"`
	Medium  Thumbnail `json:"medium"`
	High    Thumbnail `json:"high"`
}

// VideoSnippet is the snippet part of a video resource.
type VideoSnippet struct {
	PublishedAt  time.Time  `json:"publishedAt"`
	ChannelID    string     `json:"channelId"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	Thumbnails   Thumbnails `json:"thumbnails"`
	ChannelTitle string     `json:"channelTitle"`
	CategoryID   string     `json:"categoryId"`
}

// VideoStatistics is the statistics part of a video resource. The upstream
// serializes counts as decimal strings.
type VideoStatistics struct {
	ViewCount    string `json:"viewCount"`
	LikeCount    string `json:"likeCount"`
	CommentCount string `json:"commentCount"`
}

// Video is one item of a /videos response.
type Video struct {
	ID         string          `json:"id"`
	Snippet    VideoSnippet    `json:"snippet"`
	Statistics VideoStatistics `json:"statistics"`
}

// SearchHit is one item of a /search response. Search results carry no
// statistics; ids must be joined through /videos to reattach them.
type SearchHit struct {
	ID struct {
		Kind    string `json:"kind"`
		VideoID string `json:"videoId"`
	} `json:"id"`
	Snippet VideoSnippet `json:"snippet"`
}

// ChannelSnippet is the snippet part of a channel resource.
type ChannelSnippet struct {
	Title      string     `json:"title"`
	Thumbnails Thumbnails `json:"thumbnails"`
}

// ChannelStatistics is the statistics part of a channel resource.
type ChannelStatistics struct {
	SubscriberCount string `json:"subscriberCount"`
}

// Channel is one item of a /channels response.
type Channel struct {
	ID         string            `json:"id"`
	Snippet    ChannelSnippet    `json:"snippet"`
	Statistics ChannelStatistics `json:"statistics"`
}

// CommentSnippet is the payload of a single comment. likeCount is the one
// count the upstream serializes as a number rather than a string.
type CommentSnippet struct {
	AuthorDisplayName     string    `json:"authorDisplayName"`
	AuthorProfileImageURL string    `json:"authorProfileImageUrl"`
	TextDisplay           string    `json:"textDisplay"`
	LikeCount             int64     `json:"likeCount"`
	PublishedAt           time.Time `json:"publishedAt"`
}

// CommentThread is one item of a /commentThreads response. Only the
// top-level comment is consumed; replies are out of scope.
type CommentThread struct {
	ID      string `json:"id"`
	Snippet struct {
		TopLevelComment struct {
			Snippet CommentSnippet `json:"snippet"`
		} `json:"topLevelComment"`
		TotalReplyCount int `json:"totalReplyCount"`
	} `json:"snippet"`
}

type videoListResponse struct {
	Items []Video   `json:"items"`
	Error *apiError `json:"error"`
}

type searchListResponse struct {
	Items []SearchHit `json:"items"`
	Error *apiError   `json:"error"`
}

type channelListResponse struct {
	Items []Channel `json:"items"`
	Error *apiError `json:"error"`
}

type commentThreadListResponse struct {
	Items []CommentThread `json:"items"`
	Error *apiError       `json:"error"`
}
