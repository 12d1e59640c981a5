package youtube

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	c := New(Config{
		APIKey:     "test-key",
		BaseURL:    srv.URL,
		RegionCode: "US",
	})
	return c, srv
}

func TestTrending_ParsesItemsAndParams(t *testing.T) {
	var gotQuery map[string]string
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"chart":           r.URL.Query().Get("chart"),
			"regionCode":      r.URL.Query().Get("regionCode"),
			"videoCategoryId": r.URL.Query().Get("videoCategoryId"),
			"maxResults":      r.URL.Query().Get("maxResults"),
			"key":             r.URL.Query().Get("key"),
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"items":[{
			"id":"abc123",
			"snippet":{
				"publishedAt":"2025-06-01T00:00:00Z",
				"channelId":"UCxyz",
				"title":"A video",
				"channelTitle":"A channel",
				"categoryId":"10",
				"thumbnails":{"medium":{"url":"https://img/m.jpg","width":320,"height":180}}
			},
			"statistics":{"viewCount":"1234","likeCount":"56"}
		}]}`))
	})
	defer srv.Close()

	videos, err := c.Trending(context.Background(), "10", 50)
	if err != nil {
		t.Fatalf("Trending error: %v", err)
	}

	if gotQuery["chart"] != "mostPopular" {
		t.Errorf("chart = %q, want mostPopular", gotQuery["chart"])
	}
	if gotQuery["regionCode"] != "US" {
		t.Errorf("regionCode = %q, want US", gotQuery["regionCode"])
	}
	if gotQuery["videoCategoryId"] != "10" {
		t.Errorf("videoCategoryId = %q, want 10", gotQuery["videoCategoryId"])
	}
	if gotQuery["maxResults"] != "50" {
		t.Errorf("maxResults = %q, want 50", gotQuery["maxResults"])
	}
	if gotQuery["key"] != "test-key" {
		t.Errorf("key = %q, want test-key", gotQuery["key"])
	}

	if len(videos) != 1 {
		t.Fatalf("got %d videos, want 1", len(videos))
	}
	v := videos[0]
	if v.ID != "abc123" || v.Snippet.Title != "A video" || v.Snippet.ChannelID != "UCxyz" {
		t.Errorf("unexpected video: %+v", v)
	}
	if v.Statistics.ViewCount != "1234" {
		t.Errorf("viewCount = %q, want 1234", v.Statistics.ViewCount)
	}
	if v.Snippet.Thumbnails.Medium.URL != "https://img/m.jpg" {
		t.Errorf("thumbnail = %q", v.Snippet.Thumbnails.Medium.URL)
	}
}

func TestTrending_DefaultCategoryOmitsFilter(t *testing.T) {
	var sawFilter bool
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		sawFilter = r.URL.Query().Has("videoCategoryId")
		w.Write([]byte(`{"items":[]}`))
	})
	defer srv.Close()

	if _, err := c.Trending(context.Background(), "0", 50); err != nil {
		t.Fatalf("Trending error: %v", err)
	}
	if sawFilter {
		t.Error("category 0 should not send videoCategoryId")
	}
}

func TestVideosByID_CommaJoinsIntoOneRequest(t *testing.T) {
	var requests int
	var gotIDs string
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		requests++
		gotIDs = r.URL.Query().Get("id")
		w.Write([]byte(`{"items":[{"id":"a"},{"id":"b"},{"id":"c"}]}`))
	})
	defer srv.Close()

	videos, err := c.VideosByID(context.Background(), []string{"a", "b", "c"})
	if err != nil {
		t.Fatalf("VideosByID error: %v", err)
	}
	if requests != 1 {
		t.Errorf("made %d requests, want 1 (batch join)", requests)
	}
	if gotIDs != "a,b,c" {
		t.Errorf("id param = %q, want a,b,c", gotIDs)
	}
	if len(videos) != 3 {
		t.Errorf("got %d videos, want 3", len(videos))
	}
}

func TestVideosByID_EmptyInputSkipsRequest(t *testing.T) {
	var requests int
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		requests++
	})
	defer srv.Close()

	videos, err := c.VideosByID(context.Background(), nil)
	if err != nil || videos != nil {
		t.Fatalf("VideosByID(nil) = %v, %v; want nil, nil", videos, err)
	}
	if requests != 0 {
		t.Errorf("made %d requests, want 0", requests)
	}
}

func TestSearch_ParsesHitIDs(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("type") != "video" {
			t.Errorf("type = %q, want video", r.URL.Query().Get("type"))
		}
		w.Write([]byte(`{"items":[
			{"id":{"kind":"youtube#video","videoId":"vid1"},"snippet":{"title":"one"}},
			{"id":{"kind":"youtube#video","videoId":"vid2"},"snippet":{"title":"two"}}
		]}`))
	})
	defer srv.Close()

	hits, err := c.Search(context.Background(), "cats", 50)
	if err != nil {
		t.Fatalf("Search error: %v", err)
	}
	if len(hits) != 2 || hits[0].ID.VideoID != "vid1" || hits[1].ID.VideoID != "vid2" {
		t.Errorf("unexpected hits: %+v", hits)
	}
}

func TestChannelByID_EmptyResultIsNil(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items":[]}`))
	})
	defer srv.Close()

	ch, err := c.ChannelByID(context.Background(), "UCnope")
	if err != nil {
		t.Fatalf("ChannelByID error: %v", err)
	}
	if ch != nil {
		t.Errorf("got %+v, want nil for empty result", ch)
	}
}

func TestCommentThreads_PreservesOrder(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"items":[
			{"id":"c1","snippet":{"topLevelComment":{"snippet":{"authorDisplayName":"first","likeCount":3}}}},
			{"id":"c2","snippet":{"topLevelComment":{"snippet":{"authorDisplayName":"second","likeCount":1}}}}
		]}`))
	})
	defer srv.Close()

	threads, err := c.CommentThreads(context.Background(), "abc123", 20)
	if err != nil {
		t.Fatalf("CommentThreads error: %v", err)
	}
	if len(threads) != 2 {
		t.Fatalf("got %d threads, want 2", len(threads))
	}
	if threads[0].Snippet.TopLevelComment.Snippet.AuthorDisplayName != "first" {
		t.Error("comment order must follow the API return order")
	}
	if threads[0].Snippet.TopLevelComment.Snippet.LikeCount != 3 {
		t.Error("likeCount not parsed")
	}
}

func TestErrorEnvelopeClassification(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		wantIs error
	}{
		{"quota exhausted", 403, `{"error":{"code":403,"message":"quotaExceeded"}}`, ErrQuotaExceeded},
		{"bad request", 400, `{"error":{"code":400,"message":"invalid parameter"}}`, ErrBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})
			defer srv.Close()

			_, err := c.Trending(context.Background(), "0", 50)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, tt.wantIs) {
				t.Errorf("error %v does not match %v", err, tt.wantIs)
			}
		})
	}
}

func TestErrorEnvelopeOnHTTP200(t *testing.T) {
	// The upstream can report quota errors inside a 200 body.
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error":{"code":403,"message":"quotaExceeded"}}`))
	})
	defer srv.Close()

	_, err := c.Search(context.Background(), "cats", 50)
	if !errors.Is(err, ErrQuotaExceeded) {
		t.Errorf("error %v does not match ErrQuotaExceeded", err)
	}
}

func TestTransportFailureIsNotAPIError(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {})
	srv.Close() // connection refused from here on

	_, err := c.Trending(context.Background(), "0", 50)
	if err == nil {
		t.Fatal("expected transport error")
	}
	if errors.Is(err, ErrQuotaExceeded) || errors.Is(err, ErrBadRequest) {
		t.Errorf("transport error %v must not classify as an API error", err)
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"quota", &apiError{Code: 403, Message: "quotaExceeded"}, "YouTube API quota exceeded. Please try again later."},
		{"bad request", &apiError{Code: 400, Message: "bad"}, "Invalid request to YouTube API."},
		{"other api error", &apiError{Code: 500, Message: "backendError"}, "YouTube API error: backendError"},
		{"transport", errors.New("dial tcp: connection refused"), "Failed to fetch videos. Please try again later."},
		{"nil", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := UserMessage(tt.err, "Failed to fetch videos. Please try again later.")
			if got != tt.want {
				t.Errorf("UserMessage = %q, want %q", got, tt.want)
			}
		})
	}
}
