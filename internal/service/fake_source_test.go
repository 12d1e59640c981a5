package service

import (
	"context"

	"github.com/IbrahimAwiby/youtube-clone/internal/youtube"
)

// fakeSource scripts the upstream client for service tests and records what
// the services asked for.
type fakeSource struct {
	trending []youtube.Video
	hits     []youtube.SearchHit
	videos   []youtube.Video
	channel  *youtube.Channel
	threads  []youtube.CommentThread

	trendingErr error
	searchErr   error
	videosErr   error
	channelErr  error
	threadsErr  error

	gotCategory string
	gotQuery    string
	gotIDs      []string
	gotMax      int
}

func (f *fakeSource) Trending(_ context.Context, categoryID string, maxResults int) ([]youtube.Video, error) {
	f.gotCategory = categoryID
	f.gotMax = maxResults
	return f.trending, f.trendingErr
}

func (f *fakeSource) Search(_ context.Context, query string, maxResults int) ([]youtube.SearchHit, error) {
	f.gotQuery = query
	f.gotMax = maxResults
	return f.hits, f.searchErr
}

func (f *fakeSource) VideosByID(_ context.Context, ids []string) ([]youtube.Video, error) {
	f.gotIDs = ids
	return f.videos, f.videosErr
}

func (f *fakeSource) ChannelByID(_ context.Context, _ string) (*youtube.Channel, error) {
	return f.channel, f.channelErr
}

func (f *fakeSource) CommentThreads(_ context.Context, _ string, maxResults int) ([]youtube.CommentThread, error) {
	f.gotMax = maxResults
	return f.threads, f.threadsErr
}

func makeVideo(id, title, viewCount string) youtube.Video {
	v := youtube.Video{ID: id}
	v.Snippet.Title = title
	v.Snippet.ChannelID = "ch-" + id
	v.Snippet.ChannelTitle = "Channel " + id
	v.Snippet.CategoryID = "10"
	v.Statistics.ViewCount = viewCount
	return v
}

func makeHit(videoID string) youtube.SearchHit {
	var h youtube.SearchHit
	h.ID.Kind = "youtube#video"
	h.ID.VideoID = videoID
	return h
}
