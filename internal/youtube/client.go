// Package youtube is the typed client for the Data API v3 endpoints the
// application consumes: trending lists, keyword search, id lookups, channels,
// and comment threads. All calls are read-only GETs keyed by an API key.
package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const (
	defaultBaseURL = "https://www.googleapis.com/youtube/v3"
	// Hung upstream requests would otherwise pin a feed in its loading
	// state forever.
	requestTimeout = 15 * time.Second
)

// Config carries the client settings from the application config.
type Config struct {
	APIKey     string
	BaseURL    string
	RegionCode string
	// QuotaPerSecond caps outbound calls; zero or negative disables the cap.
	QuotaPerSecond float64
}

// Client wraps the handful of YouTube API calls we rely on.
type Client struct {
	apiKey     string
	baseURL    string
	regionCode string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// New creates a client with sane defaults.
func New(cfg Config) *Client {
	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	region := cfg.RegionCode
	if region == "" {
		region = "US"
	}
	limit := rate.Inf
	burst := 1
	if cfg.QuotaPerSecond > 0 {
		limit = rate.Limit(cfg.QuotaPerSecond)
		burst = int(cfg.QuotaPerSecond) + 1
	}
	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    baseURL,
		regionCode: region,
		httpClient: &http.Client{Timeout: requestTimeout},
		limiter:    rate.NewLimiter(limit, burst),
	}
}

// Trending returns the most-popular list for a category. An empty or "0"
// category id means the unfiltered chart.
func (c *Client) Trending(ctx context.Context, categoryID string, maxResults int) ([]Video, error) {
	params := url.Values{}
	params.Set("part", "snippet,contentDetails,statistics")
	params.Set("chart", "mostPopular")
	params.Set("regionCode", c.regionCode)
	params.Set("maxResults", fmt.Sprint(maxResults))
	if categoryID != "" && categoryID != "0" {
		params.Set("videoCategoryId", categoryID)
	}

	var decoded videoListResponse
	if err := c.get(ctx, "/videos", params, &decoded, decoded.envelope); err != nil {
		return nil, err
	}
	return decoded.Items, nil
}

// Search returns raw keyword hits. The hits carry no statistics; join the
// ids through VideosByID to reattach them.
func (c *Client) Search(ctx context.Context, query string, maxResults int) ([]SearchHit, error) {
	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("type", "video")
	params.Set("q", query)
	params.Set("maxResults", fmt.Sprint(maxResults))

	var decoded searchListResponse
	if err := c.get(ctx, "/search", params, &decoded, decoded.envelope); err != nil {
		return nil, err
	}
	return decoded.Items, nil
}

// VideosByID looks up full video resources for a batch of ids. The ids are
// comma-joined into a single request, so a search join costs exactly one
// extra call regardless of result size.
func (c *Client) VideosByID(ctx context.Context, ids []string) ([]Video, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	params := url.Values{}
	params.Set("part", "snippet,statistics")
	params.Set("id", strings.Join(ids, ","))

	var decoded videoListResponse
	if err := c.get(ctx, "/videos", params, &decoded, decoded.envelope); err != nil {
		return nil, err
	}
	return decoded.Items, nil
}

// ChannelByID returns a channel resource, or nil when the upstream reports
// no such channel (a well-formed empty result, not an error).
func (c *Client) ChannelByID(ctx context.Context, channelID string) (*Channel, error) {
	params := url.Values{}
	params.Set("part", "snippet,statistics")
	params.Set("id", channelID)

	var decoded channelListResponse
	if err := c.get(ctx, "/channels", params, &decoded, decoded.envelope); err != nil {
		return nil, err
	}
	if len(decoded.Items) == 0 {
		return nil, nil
	}
	return &decoded.Items[0], nil
}

// CommentThreads returns the first page of top-level comments for a video,
// in the upstream's return order.
func (c *Client) CommentThreads(ctx context.Context, videoID string, maxResults int) ([]CommentThread, error) {
	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("videoId", videoID)
	params.Set("maxResults", fmt.Sprint(maxResults))

	var decoded commentThreadListResponse
	if err := c.get(ctx, "/commentThreads", params, &decoded, decoded.envelope); err != nil {
		return nil, err
	}
	return decoded.Items, nil
}

// get performs one API call and decodes the response into out. envelope
// reports the service-level error field after decoding, so a quota or
// bad-request response surfaces as a classified error even on HTTP 200.
func (c *Client) get(ctx context.Context, path string, params url.Values, out any, envelope func() *apiError) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	params.Set("key", c.apiKey)
	endpoint := c.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("youtube %s request: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return fmt.Errorf("youtube %s response: %w", path, err)
	}

	if err := json.Unmarshal(body, out); err != nil {
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("youtube %s request failed: %s", path, resp.Status)
		}
		return fmt.Errorf("youtube %s decode: %w", path, err)
	}

	if apiErr := envelope(); apiErr != nil {
		return apiErr
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("youtube %s request failed: %s", path, resp.Status)
	}
	return nil
}

func (r *videoListResponse) envelope() *apiError         { return r.Error }
func (r *searchListResponse) envelope() *apiError        { return r.Error }
func (r *channelListResponse) envelope() *apiError       { return r.Error }
func (r *commentThreadListResponse) envelope() *apiError { return r.Error }
