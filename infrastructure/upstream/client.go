// ABOUTME: JSON fetch transport for the upstream content API
// ABOUTME: Adds base URL resolution, outbound throttling, status checks and upstream error detection

package upstream

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"golang.org/x/time/rate"
	coreerrors "search-frontend-api/core/errors"
	"search-frontend-api/core/interfaces"
)

const (
	// apiName identifies the upstream in ExternalAPIError values
	apiName = "reddit"

	// maxBodyBytes caps how much of a response body is read
	maxBodyBytes = 8 << 20

	parseFailureMessage = "failed to parse page JSON data"
)

// Client implements interfaces.JSONFetcher on top of an interfaces.HTTPClient
type Client struct {
	http     interfaces.HTTPClient
	baseURL  string
	limiter  *rate.Limiter
	deadline time.Duration
}

// Option configures a Client
type Option func(*Client)

// WithDeadline bounds each FetchJSON call, throttling and retries included.
// A non-positive d leaves the caller's context as the only bound.
func WithDeadline(d time.Duration) Option {
	return func(c *Client) {
		c.deadline = d
	}
}

// NewClient creates an upstream client. limiter may be nil to disable throttling.
func NewClient(httpClient interfaces.HTTPClient, baseURL string, limiter *rate.Limiter, opts ...Option) *Client {
	c := &Client{
		http:    httpClient,
		baseURL: strings.TrimRight(baseURL, "/"),
		limiter: limiter,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewLimiter returns a limiter allowing perSecond requests with the given burst,
// or nil when perSecond is not positive.
func NewLimiter(perSecond float64, burst int) *rate.Limiter {
	if perSecond <= 0 {
		return nil
	}
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(perSecond), burst)
}

// FetchJSON fetches path from the upstream API and returns the raw JSON body
func (c *Client) FetchJSON(ctx context.Context, path string) ([]byte, error) {
	if c.deadline > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.deadline)
		defer cancel()
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, &coreerrors.ExternalAPIError{API: apiName, Message: "request throttled: " + err.Error(), Err: err}
		}
	}

	resp, err := c.http.Get(ctx, c.baseURL+path)
	if err != nil {
		return nil, &coreerrors.ExternalAPIError{API: apiName, Message: err.Error(), Err: err}
	}
	defer resp.Body().Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body(), maxBodyBytes))
	if err != nil {
		return nil, &coreerrors.ExternalAPIError{
			API:        apiName,
			StatusCode: resp.StatusCode(),
			Message:    "failed to read response: " + err.Error(),
			Err:        err,
		}
	}

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return nil, &coreerrors.ExternalAPIError{
			API:        apiName,
			StatusCode: resp.StatusCode(),
			Message:    errorMessage(body, resp.StatusCode()),
		}
	}

	if !gjson.ValidBytes(body) {
		return nil, &coreerrors.ExternalAPIError{
			API:        apiName,
			StatusCode: resp.StatusCode(),
			Message:    parseFailureMessage,
		}
	}

	// Upstream sometimes reports errors in a 200 body: {"error": 404, "message": "Not Found"}
	if code := gjson.GetBytes(body, "error"); code.Type == gjson.Number {
		return nil, &coreerrors.ExternalAPIError{
			API:        apiName,
			StatusCode: int(code.Int()),
			Message:    errorMessage(body, int(code.Int())),
		}
	}

	return body, nil
}

// errorMessage extracts a human readable message from an upstream error body
func errorMessage(body []byte, status int) string {
	if gjson.ValidBytes(body) {
		for _, field := range []string{"message", "reason"} {
			if msg := gjson.GetBytes(body, field); msg.Type == gjson.String && msg.Str != "" {
				return msg.Str
			}
		}
	}
	if text := http.StatusText(status); text != "" {
		return text
	}
	return parseFailureMessage
}
