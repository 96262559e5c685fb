// Package infra provides shared infrastructure components used by the
// client: the HTTP transport and request pacing.
package infra

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"
)

// --- HTTP ---

// HTTPOptions configures NewHTTPClient.
type HTTPOptions struct {
	Timeout   time.Duration // 0 keeps the transport default
	Client    *http.Client  // optional underlying client
	UserAgent string
}

// NewHTTPClient creates the resty client shared by all requests.
func NewHTTPClient(opts HTTPOptions) *resty.Client {
	var c *resty.Client
	if opts.Client != nil {
		c = resty.NewWithClient(opts.Client)
	} else {
		c = resty.New()
	}
	if opts.Timeout > 0 {
		c.SetTimeout(opts.Timeout)
	}
	if opts.UserAgent != "" {
		c.SetHeader("User-Agent", opts.UserAgent)
	}
	c.SetHeader("Accept", "application/json")
	return c
}

// DoGet performs a GET request and returns the body and status code. A
// non-2xx status is not an error here; callers map status codes themselves.
func DoGet(ctx context.Context, c *resty.Client, rawURL string, query url.Values, headers map[string]string) ([]byte, int, error) {
	req := c.R().
		SetContext(ctx).
		SetQueryParamsFromValues(query).
		SetHeaders(headers)

	resp, err := req.Get(rawURL)
	if err != nil {
		var uerr *url.Error
		if errors.As(err, &uerr) {
			uerr.URL = redact(uerr.URL)
		}
		return nil, 0, fmt.Errorf("GET %s: %w", redact(rawURL), err)
	}
	return resp.Body(), resp.StatusCode(), nil
}

// redact strips the query string so API keys never reach logs or errors.
func redact(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	u.RawQuery = ""
	return u.String()
}

// --- Rate limiter ---

// RateLimiter paces outgoing requests. A nil *RateLimiter never blocks.
type RateLimiter struct {
	limiter *rate.Limiter
}

// NewRateLimiter allows perSecond requests per second with the given burst.
// It returns nil when perSecond is not positive, which disables pacing.
func NewRateLimiter(perSecond float64, burst int) *RateLimiter {
	if perSecond <= 0 {
		return nil
	}
	if burst < 1 {
		burst = 1
	}
	return &RateLimiter{limiter: rate.NewLimiter(rate.Limit(perSecond), burst)}
}

// Wait blocks until a request may proceed or the context is cancelled.
func (rl *RateLimiter) Wait(ctx context.Context) error {
	if rl == nil {
		return nil
	}
	return rl.limiter.Wait(ctx)
}
