package tetraio

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/kanau/tetracard/pkg/cache"
	"github.com/kanau/tetracard/pkg/errors"
	"github.com/kanau/tetracard/pkg/httputil"
	"github.com/kanau/tetracard/pkg/observability"
	"github.com/kanau/tetracard/pkg/stats"
)

// DefaultBaseURL is the public stats API root.
const DefaultBaseURL = "https://ch.tetr.io/api"

const (
	httpTimeout = 10 * time.Second

	// The API caps leaderboard pages at 25 rows.
	maxLeaderboardLimit = 25
)

// Client fetches statistics records. Construct with New; the zero value is
// not usable.
type Client struct {
	http    *http.Client
	baseURL string
	cache   cache.Cache
	keyer   cache.Keyer
	ttl     time.Duration
	agent   string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API root, mainly for tests and mirrors.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimSuffix(u, "/") }
}

// WithHTTPClient substitutes the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithCache stores decoded response payloads in store for ttl. Without this
// option every call hits the network.
func WithCache(store cache.Cache, ttl time.Duration) Option {
	return func(c *Client) {
		c.cache = store
		c.ttl = ttl
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(agent string) Option {
	return func(c *Client) { c.agent = agent }
}

// New creates a Client with the public API root and no caching.
func New(opts ...Option) *Client {
	c := &Client{
		http:    &http.Client{Timeout: httpTimeout},
		baseURL: DefaultBaseURL,
		cache:   cache.NewNullCache(),
		keyer:   cache.NewDefaultKeyer(),
		agent:   "tetracard",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// User fetches a player profile by username or ID.
func (c *Client) User(ctx context.Context, username string) (stats.User, error) {
	data, err := c.fetch(ctx, "users/"+strings.ToLower(username))
	if err != nil {
		if errors.Is(err, errors.ErrCodeNotFound) {
			return stats.User{}, errors.New(errors.ErrCodePlayerNotFound, "player %q not found", username)
		}
		return stats.User{}, err
	}

	var wrapper struct {
		User json.RawMessage `json:"user"`
	}
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return stats.User{}, errors.Wrap(errors.ErrCodeNetwork, err, "decode user response")
	}

	w := newWireUser()
	if err := json.Unmarshal(wrapper.User, &w); err != nil {
		return stats.User{}, errors.Wrap(errors.ErrCodeNetwork, err, "decode user record")
	}
	return w.toUser(), nil
}

// League fetches a player's ranked summary. Players without ranked history
// return (nil, nil); callers render a degraded user-only card.
func (c *Client) League(ctx context.Context, username string) (*stats.LeagueSummary, error) {
	data, err := c.fetch(ctx, "users/"+strings.ToLower(username)+"/summaries/league")
	if err != nil {
		if errors.Is(err, errors.ErrCodeNotFound) {
			return nil, errors.New(errors.ErrCodePlayerNotFound, "player %q not found", username)
		}
		return nil, err
	}

	w := newWireLeague()
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, errors.Wrap(errors.ErrCodeNetwork, err, "decode league summary")
	}
	if w.empty() {
		return nil, nil
	}
	return w.toLeague(), nil
}

// Leaderboard fetches the top rows for a mode. The limit is clamped to the
// API's 1-25 range; the returned slice may be shorter than requested.
func (c *Client) Leaderboard(ctx context.Context, mode stats.Mode, limit int) ([]stats.LeaderboardEntry, error) {
	if _, err := stats.ParseMode(string(mode)); err != nil {
		return nil, err
	}
	limit = min(max(limit, 1), maxLeaderboardLimit)

	data, err := c.fetch(ctx, fmt.Sprintf("users/by/%s?limit=%d", mode, limit))
	if err != nil {
		return nil, err
	}

	var wrapper struct {
		Entries []wireEntry `json:"entries"`
	}
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return nil, errors.Wrap(errors.ErrCodeNetwork, err, "decode leaderboard response")
	}

	entries := make([]stats.LeaderboardEntry, len(wrapper.Entries))
	for i, w := range wrapper.Entries {
		entries[i] = w.toEntry(i+1, mode)
	}
	return entries, nil
}

// ServerStats fetches the server-wide counters.
func (c *Client) ServerStats(ctx context.Context) (stats.ServerStats, error) {
	data, err := c.fetch(ctx, "general/stats")
	if err != nil {
		return stats.ServerStats{}, err
	}

	var s stats.ServerStats
	if err := json.Unmarshal(data, &s); err != nil {
		return stats.ServerStats{}, errors.Wrap(errors.ErrCodeNetwork, err, "decode server stats")
	}
	return s, nil
}

// fetch returns the decoded data payload for an endpoint, from cache when
// fresh. Cache write failures are ignored: a broken cache degrades to
// uncached operation, it never fails the request.
func (c *Client) fetch(ctx context.Context, endpoint string) ([]byte, error) {
	key := c.keyer.APIKey(endpoint)
	if data, ok, err := c.cache.Get(ctx, key); err == nil && ok {
		observability.Cache().OnHit(ctx, "api")
		return data, nil
	}
	observability.Cache().OnMiss(ctx, "api")

	var data []byte
	err := httputil.RetryWithBackoff(ctx, func() error {
		d, err := c.doRequest(ctx, endpoint)
		if err != nil {
			return err
		}
		data = d
		return nil
	})
	if err != nil {
		return nil, err
	}

	if c.cache.Set(ctx, key, data, c.ttl) == nil {
		observability.Cache().OnSet(ctx, "api", len(data))
	}
	return data, nil
}

func (c *Client) doRequest(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "build request for %s", endpoint)
	}
	req.Header.Set("User-Agent", c.agent)
	req.Header.Set("Accept", "application/json")

	observability.API().OnRequest(ctx, endpoint)
	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		observability.API().OnError(ctx, endpoint, err)
		if ctx.Err() != nil {
			return nil, errors.Wrap(errors.ErrCodeTimeout, err, "fetch %s", endpoint)
		}
		return nil, httputil.Retryable(errors.Wrap(errors.ErrCodeNetwork, err, "fetch %s", endpoint))
	}
	defer resp.Body.Close()
	observability.API().OnResponse(ctx, endpoint, resp.StatusCode, time.Since(start))

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, errors.Wrap(errors.ErrCodeNetwork, err, "decode response from %s", endpoint)
	}
	if !env.Success {
		msg := "request rejected"
		if env.Error != nil && env.Error.Msg != "" {
			msg = env.Error.Msg
		}
		return nil, errors.New(errors.ErrCodeNotFound, "%s", msg)
	}
	return env.Data, nil
}

func checkStatus(resp *http.Response) error {
	switch {
	case resp.StatusCode == http.StatusOK:
		return nil
	case resp.StatusCode == http.StatusNotFound:
		return errors.New(errors.ErrCodeNotFound, "resource not found")
	case resp.StatusCode == http.StatusTooManyRequests:
		retryAfter, _ := strconv.Atoi(resp.Header.Get("Retry-After"))
		return httputil.Retryable(&errors.RateLimitedError{RetryAfter: retryAfter})
	case resp.StatusCode >= 500:
		return httputil.Retryable(errors.New(errors.ErrCodeNetwork, "server error: status %d", resp.StatusCode))
	default:
		return errors.New(errors.ErrCodeNetwork, "unexpected status %d", resp.StatusCode)
	}
}
