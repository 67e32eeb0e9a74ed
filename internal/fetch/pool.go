// Package fetch provides the shared HTTP client pool for upstream sources.
// All pipeline traffic funnels through one Pool so the process-wide
// concurrency cap and the per-host pacing hold even when pipelines overlap.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// ErrFetchFailed wraps transport errors and non-2xx upstream statuses.
var ErrFetchFailed = errors.New("fetch failed")

const defaultUserAgent = "CanPoliAPI/1.0"

// Options configure a Pool. Zero fields fall back to defaults.
type Options struct {
	MaxConcurrency     int
	MinRequestInterval time.Duration
	Timeout            time.Duration
	UserAgent          string
}

// Pool is a rate-limited HTTP client for upstream fetches. Responses are
// returned as full bodies; upstream documents are small enough that
// streaming beyond the decoder boundary buys nothing.
type Pool struct {
	client    *http.Client
	userAgent string
	interval  time.Duration

	sem chan struct{}

	mu        sync.Mutex
	lastStart map[string]time.Time
}

// New builds a Pool from the given options.
func New(opts Options) *Pool {
	if opts.MaxConcurrency <= 0 {
		opts.MaxConcurrency = 4
	}
	if opts.MinRequestInterval <= 0 {
		opts.MinRequestInterval = 250 * time.Millisecond
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.UserAgent == "" {
		opts.UserAgent = defaultUserAgent
	}
	return &Pool{
		client:    &http.Client{Timeout: opts.Timeout},
		userAgent: opts.UserAgent,
		interval:  opts.MinRequestInterval,
		sem:       make(chan struct{}, opts.MaxConcurrency),
		lastStart: make(map[string]time.Time),
	}
}

// Get fetches the URL and returns the full response body.
func (p *Pool) Get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request for %s: %v", ErrFetchFailed, rawURL, err)
	}
	return p.do(req)
}

// PostForm sends URL-encoded form values and returns the full response body.
func (p *Pool) PostForm(ctx context.Context, rawURL string, form url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rawURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("%w: build request for %s: %v", ErrFetchFailed, rawURL, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return p.do(req)
}

func (p *Pool) do(req *http.Request) ([]byte, error) {
	select {
	case p.sem <- struct{}{}:
	case <-req.Context().Done():
		return nil, fmt.Errorf("%w: %v", ErrFetchFailed, req.Context().Err())
	}
	defer func() { <-p.sem }()

	if err := p.throttle(req.Context(), req.URL.Host); err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", p.userAgent)
	if req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", "*/*")
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %v", ErrFetchFailed, req.Method, req.URL, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body from %s: %v", ErrFetchFailed, req.URL, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s %s: unexpected status %d", ErrFetchFailed, req.Method, req.URL, resp.StatusCode)
	}
	return body, nil
}

// throttle enforces the minimum interval between request starts per host.
// The slot is claimed under the lock and the sleep happens outside it, so
// concurrent callers to one host line up at interval spacing while other
// hosts proceed unblocked.
func (p *Pool) throttle(ctx context.Context, host string) error {
	now := time.Now()
	p.mu.Lock()
	start := now
	if last, ok := p.lastStart[host]; ok {
		if next := last.Add(p.interval); next.After(now) {
			start = next
		}
	}
	p.lastStart[host] = start
	p.mu.Unlock()

	if wait := time.Until(start); wait > 0 {
		timer := time.NewTimer(wait)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return fmt.Errorf("%w: %v", ErrFetchFailed, ctx.Err())
		}
	}
	return nil
}
