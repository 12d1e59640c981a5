package model

import "time"

// Comment is one top-level comment under a video. Order follows the
// upstream API's return order; the server never reorders.
type Comment struct {
	ID           string    `json:"id"`
	Author       string    `json:"author"`
	AuthorAvatar string    `json:"authorAvatar"`
	Text         string    `json:"text"`
	LikeCount    int64     `json:"likeCount"`
	Likes        string    `json:"likes"`
	PublishedAt  time.Time `json:"publishedAt"`
	PublishedAgo string    `json:"publishedAgo"`
}
