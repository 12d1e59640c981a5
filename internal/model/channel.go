package model

// ChannelSummary is the publisher block on the watch page. Avatar falls back
// to a placeholder when the upstream response omits it.
type ChannelSummary struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Avatar          string `json:"avatar"`
	SubscriberCount int64  `json:"subscriberCount"`
	Subscribers     string `json:"subscribers"`
}
