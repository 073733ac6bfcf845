package http

import (
	"context"
	"fmt"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"io"
	"net/http"
	"net/url"
	"time"
)

// DefaultTimeout for a whole round trip, including reading the body.
const DefaultTimeout = 10 * time.Second

// Response a completed HTTP response, with the body fully read.
type Response struct {
	StatusCode int
	Body       []byte
}

// IsSuccess reports whether the status code is 2xx.
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Transport performs HTTP GET requests.
// Implementations must be safe for concurrent use.
type Transport interface {
	Get(ctx context.Context, rawURL string, query url.Values) (*Response, error)
}

// transport a Transport backed by a net/http client
type transport struct {
	client *http.Client
}

// NewTransport constructs a Transport logging each round trip to logger.
func NewTransport(timeout time.Duration, logger log.Logger) Transport {
	return &transport{
		client: &http.Client{
			Timeout: timeout,
			Transport: &loggingRoundTripper{
				next:   http.DefaultTransport,
				logger: logger,
			},
		},
	}
}

// NewTransportWithClient constructs a Transport using an existing client.
func NewTransportWithClient(client *http.Client) Transport {
	return &transport{client: client}
}

// Get sends a GET request for rawURL with query appended to any query rawURL already has.
func (t *transport) Get(ctx context.Context, rawURL string, query url.Values) (*Response, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parsing url: %w", err)
	}
	if len(query) > 0 {
		q := u.Query()
		for k, vs := range query {
			for _, v := range vs {
				q.Add(k, v)
			}
		}
		u.RawQuery = q.Encode()
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("building http request: %w", err)
	}
	request.Header.Set("Accept", "application/json")

	httpResponse, err := t.client.Do(request)
	if err != nil {
		return nil, fmt.Errorf("http get: %w", err)
	}
	defer httpResponse.Body.Close()

	body, err := io.ReadAll(httpResponse.Body)
	if err != nil {
		return nil, fmt.Errorf("reading body: %w", err)
	}

	return &Response{StatusCode: httpResponse.StatusCode, Body: body}, nil
}

// loggingRoundTripper decorates a http.RoundTripper with logging
type loggingRoundTripper struct {
	next   http.RoundTripper
	logger log.Logger
}

func (rt *loggingRoundTripper) RoundTrip(req *http.Request) (res *http.Response, err error) {
	defer func(begin time.Time) {
		if err != nil {
			level.Debug(rt.logger).Log("method", req.Method, "url", req.URL, "took", time.Since(begin), "err", err)
			return
		}
		level.Debug(rt.logger).Log("method", req.Method, "url", req.URL, "status", res.StatusCode, "took", time.Since(begin))
	}(time.Now())
	return rt.next.RoundTrip(req)
}
