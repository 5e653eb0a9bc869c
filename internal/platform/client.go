// Package platform is a typed HTTP client over the chat platform's API,
// used exclusively to search audit log entries for event enrichment
// (spec.md §4.4, §6). It follows the adapter-over-*http.Client idiom this
// repository already uses for OAuth providers
// (pkg/auth/oauth_adapter_github.go in the original codebase this module
// was grown from): a small struct holding a timeout-bound *http.Client plus
// whatever auth/base-URL state the concrete API needs.
package platform

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Config configures a Client.
type Config struct {
	BaseURL      string
	AuthUsername string
	AuthPassword string
	Timeout      time.Duration

	MaxAttempts int
	Backoff     BackoffStrategy
}

// Client is a resilient HTTP client for the chat platform's audit log
// search endpoint. It is shared read-only across every event being
// normalized (spec.md §5).
type Client struct {
	http         *http.Client
	baseURL      string
	authUsername string
	authPassword string
	maxAttempts  int
	backoff      BackoffStrategy
	breaker      *Breaker
}

// New builds a Client from Config, defaulting retry and circuit-breaker
// tuning when unset.
func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	maxAttempts := cfg.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = 3
	}
	backoff := cfg.Backoff
	if backoff == nil {
		backoff = DefaultBackoffStrategy()
	}

	return &Client{
		http:         &http.Client{Timeout: timeout},
		baseURL:      cfg.BaseURL,
		authUsername: cfg.AuthUsername,
		authPassword: cfg.AuthPassword,
		maxAttempts:  maxAttempts,
		backoff:      backoff,
		breaker:      NewBreaker(5, 30*time.Second),
	}
}

// SearchAuditLog issues an HTTP search against the platform for the given
// guild and returns the first entry satisfying query.Match, or nil if none
// of the returned entries matched (spec.md §4.4).
//
// Any transport failure, non-success response, or decode failure is
// returned as an error: the caller (gateway.AuditLogSource) is responsible
// for classifying it as ProcessingError.FatalSourceError.
func (c *Client) SearchAuditLog(ctx context.Context, query SearchQuery) (*AuditLogEntry, error) {
	entries, err := c.searchWithRetry(ctx, query)
	if err != nil {
		return nil, err
	}
	for _, entry := range entries {
		if query.Match == nil || query.Match(entry) {
			e := entry
			return &e, nil
		}
	}
	return nil, nil
}

func (c *Client) searchWithRetry(ctx context.Context, query SearchQuery) ([]AuditLogEntry, error) {
	var lastErr error
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		entries, err := c.breaker.Execute(func() ([]AuditLogEntry, error) {
			return c.search(ctx, query)
		})
		if err == nil {
			return entries, nil
		}
		if errors.Is(err, ErrCircuitOpen) {
			return nil, err
		}
		lastErr = err

		if attempt == c.maxAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(c.backoff.NextInterval(attempt)):
		}
	}
	return nil, lastErr
}

func (c *Client) search(ctx context.Context, query SearchQuery) ([]AuditLogEntry, error) {
	endpoint, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("platform: parse base url: %w", err)
	}
	endpoint.Path = fmt.Sprintf("/guilds/%d/audit-logs", query.GuildID)
	q := endpoint.Query()
	if query.Limit > 0 {
		q.Set("limit", strconv.Itoa(query.Limit))
	}
	endpoint.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("platform: build audit log search request: %w", err)
	}
	if c.authUsername != "" {
		req.SetBasicAuth(c.authUsername, c.authPassword)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("platform: audit log search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("platform: audit log search returned status %d", resp.StatusCode)
	}

	var entries []AuditLogEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoContent, err)
	}
	return entries, nil
}
