// Package omdb provides a poster lookup adapter for the OMDb API
// (https://www.omdbapi.com/).
package omdb

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/cinematch/internal/core/domain"
	"github.com/custodia-labs/cinematch/internal/core/ports/driven"
	"github.com/custodia-labs/cinematch/internal/logger"
)

// Ensure Client implements the interface.
var _ driven.PosterLookup = (*Client)(nil)

// Default configuration values.
const (
	DefaultBaseURL          = "https://www.omdbapi.com/"
	DefaultTimeout          = 10 * time.Second
	DefaultRatePerSecond    = 5.0
	DefaultFailureThreshold = 3
	DefaultOpenTimeout      = 30 * time.Second

	// DetailURLFormat builds an IMDb title page from an IMDb ID.
	DetailURLFormat = "https://www.imdb.com/title/%s/"

	// notAvailable is OMDb's marker for a missing field.
	notAvailable = "N/A"
)

// Config holds configuration for the OMDb client.
type Config struct {
	// APIKey authenticates requests. Required.
	APIKey string

	// BaseURL is the API endpoint (default: https://www.omdbapi.com/).
	BaseURL string

	// Timeout bounds a single request (default: 10s).
	Timeout time.Duration

	// RatePerSecond throttles requests (default: 5).
	RatePerSecond float64

	// FailureThreshold is the number of consecutive transport failures that
	// opens the circuit (default: 3).
	FailureThreshold uint32

	// OpenTimeout is how long the circuit stays open (default: 30s).
	OpenTimeout time.Duration

	// HTTPClient overrides the HTTP client. Timeout is ignored when set.
	HTTPClient *http.Client
}

// Client looks up posters on OMDb.
type Client struct {
	client  *http.Client
	baseURL string
	apiKey  string
	limiter *rate.Limiter
	breaker *gobreaker.CircuitBreaker[*domain.PosterInfo]
}

// response is the subset of the OMDb title response used here.
type response struct {
	Title    string `json:"Title"`
	Poster   string `json:"Poster"`
	IMDbID   string `json:"imdbID"`
	Response string `json:"Response"`
	Error    string `json:"Error"`
}

// NewClient creates an OMDb client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("omdb: api key required: %w", domain.ErrInvalidInput)
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.RatePerSecond <= 0 {
		cfg.RatePerSecond = DefaultRatePerSecond
	}
	if cfg.FailureThreshold == 0 {
		cfg.FailureThreshold = DefaultFailureThreshold
	}
	if cfg.OpenTimeout <= 0 {
		cfg.OpenTimeout = DefaultOpenTimeout
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	settings := gobreaker.Settings{
		Name:        "omdb",
		MaxRequests: 1,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.FailureThreshold
		},
		// A title OMDb does not know is an answer, not an outage.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, domain.ErrNotFound) || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit %s: %s -> %s", name, from, to)
		},
	}

	return &Client{
		client:  httpClient,
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		limiter: rate.NewLimiter(rate.Limit(cfg.RatePerSecond), 1),
		breaker: gobreaker.NewCircuitBreaker[*domain.PosterInfo](settings),
	}, nil
}

// Name identifies the provider in logs.
func (c *Client) Name() string {
	return "omdb"
}

// LookupPoster fetches the poster and IMDb page for title.
// Returns domain.ErrNotFound when OMDb has no match, and an error wrapping
// domain.ErrLookupFailed for transport failures or an open circuit.
func (c *Client) LookupPoster(ctx context.Context, title string) (*domain.PosterInfo, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrLookupFailed, err)
	}

	info, err := c.breaker.Execute(func() (*domain.PosterInfo, error) {
		return c.fetch(ctx, title)
	})
	switch {
	case err == nil:
		return info, nil
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrLookupFailed):
		return nil, err
	default:
		// gobreaker.ErrOpenState, gobreaker.ErrTooManyRequests
		return nil, fmt.Errorf("%w: %w", domain.ErrLookupFailed, err)
	}
}

func (c *Client) fetch(ctx context.Context, title string) (*domain.PosterInfo, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: base url: %w", domain.ErrLookupFailed, err)
	}
	q := u.Query()
	q.Set("apikey", c.apiKey)
	q.Set("t", title)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %w", domain.ErrLookupFailed, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: send request: %w", domain.ErrLookupFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: omdb status %d: %s", domain.ErrLookupFailed, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var r response
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return nil, fmt.Errorf("%w: decode response: %w", domain.ErrLookupFailed, err)
	}

	if !strings.EqualFold(r.Response, "True") {
		if strings.Contains(strings.ToLower(r.Error), "not found") {
			return nil, fmt.Errorf("omdb %q: %w", title, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("%w: omdb: %s", domain.ErrLookupFailed, r.Error)
	}

	info := &domain.PosterInfo{}
	if r.Poster != "" && r.Poster != notAvailable {
		info.PosterURL = r.Poster
	}
	if r.IMDbID != "" && r.IMDbID != notAvailable {
		info.DetailURL = fmt.Sprintf(DetailURLFormat, r.IMDbID)
	}
	return info, nil
}

// State reports the circuit breaker state ("closed", "open", "half-open").
func (c *Client) State() string {
	return c.breaker.State().String()
}
