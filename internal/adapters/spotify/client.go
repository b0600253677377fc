// Package spotify implements the claim evaluator against the Spotify Web
// API. Each evaluation fetches the relevant slice of the user's listening
// history with the caller-supplied bearer token and answers whether the
// claimed track or artist appears in it.
package spotify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/okian/soundproof/internal/domain/claim"
	"github.com/okian/soundproof/pkg/metrics"
)

// DefaultBaseURL is the production Spotify Web API endpoint.
const DefaultBaseURL = "https://api.spotify.com"

const defaultTimeout = 10 * time.Second

// Client talks to the Spotify Web API. Safe for concurrent use.
type Client struct {
	baseURL string
	client  *http.Client
}

// Option applies a configuration option to the Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint (used by tests).
func WithBaseURL(u string) Option {
	return func(c *Client) {
		if u != "" {
			c.baseURL = u
		}
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.client.Timeout = d
		}
	}
}

// NewClient creates a Spotify API client with default configuration.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		client:  &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// item covers the fields we read from top-tracks and top-artists entries.
type item struct {
	Name string `json:"name"`
}

type topResponse struct {
	Items []item `json:"items"`
}

type playHistoryEntry struct {
	Track item `json:"track"`
}

type recentlyPlayedResponse struct {
	Items []playHistoryEntry `json:"items"`
}

type apiError struct {
	Error struct {
		Status  int    `json:"status"`
		Message string `json:"message"`
	} `json:"error"`
}

// CanClaimTopTracks reports whether track appears in the user's top tracks
// for the given time range, considering the first limit entries. The limit
// byte is passed through to the API untouched; Spotify enforces its own cap.
func (c *Client) CanClaimTopTracks(ctx context.Context, token, track string, rng claim.TimeRange, limit uint8) (bool, error) {
	q := url.Values{
		"time_range": {rng.String()},
		"limit":      {strconv.Itoa(int(limit))},
	}
	var resp topResponse
	if err := c.get(ctx, token, "/v1/me/top/tracks", q, &resp); err != nil {
		return false, err
	}
	return containsName(resp.Items, track), nil
}

// CanClaimTopArtist reports whether artist appears in the user's top
// artists for the given time range.
func (c *Client) CanClaimTopArtist(ctx context.Context, token, artist string, rng claim.TimeRange, limit uint8) (bool, error) {
	q := url.Values{
		"time_range": {rng.String()},
		"limit":      {strconv.Itoa(int(limit))},
	}
	var resp topResponse
	if err := c.get(ctx, token, "/v1/me/top/artists", q, &resp); err != nil {
		return false, err
	}
	return containsName(resp.Items, artist), nil
}

// CanClaimRecentlyPlayedTrack reports whether track was played after the
// given Unix-millisecond timestamp.
func (c *Client) CanClaimRecentlyPlayedTrack(ctx context.Context, token, track string, after uint64, limit uint8) (bool, error) {
	q := url.Values{
		"after": {strconv.FormatUint(after, 10)},
		"limit": {strconv.Itoa(int(limit))},
	}
	var resp recentlyPlayedResponse
	if err := c.get(ctx, token, "/v1/me/player/recently-played", q, &resp); err != nil {
		return false, err
	}
	for _, entry := range resp.Items {
		if entry.Track.Name == track {
			return true, nil
		}
	}
	return false, nil
}

// get performs an authenticated GET and decodes the JSON body into out.
func (c *Client) get(ctx context.Context, token, path string, query url.Values, out any) error {
	start := time.Now()
	err := c.doGet(ctx, token, path, query, out)
	metrics.RecordEvaluatorRequest(path, err == nil, time.Since(start))
	return err
}

func (c *Client) doGet(ctx context.Context, token, path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("spotify request failed: %w", err)
	}
	body, err := readResponseBody(resp)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr apiError
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Error.Message != "" {
			return fmt.Errorf("spotify api error (%d): %s", resp.StatusCode, apiErr.Error.Message)
		}
		return fmt.Errorf("spotify api error (%d)", resp.StatusCode)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// readResponseBody reads and closes the response body.
func readResponseBody(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()
	return io.ReadAll(resp.Body)
}

func containsName(items []item, name string) bool {
	for _, it := range items {
		if it.Name == name {
			return true
		}
	}
	return false
}
