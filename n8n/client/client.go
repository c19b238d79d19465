package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/viant/n8n-mcp/n8n"
)

const (
	apiPrefix        = "/api/v1"
	apiKeyHeader     = "X-N8N-API-KEY"
	defaultTimeout   = 30 * time.Second
	maxErrorBodySize = 64 * 1024
)

// Options configures a Client.
type Options struct {
	BaseURL    string
	APIKey     string
	Timeout    time.Duration
	MaxRetries int
	// RateLimit caps outgoing requests per second; zero disables it.
	RateLimit float64
	UserAgent string
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client. Its timeout is kept.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.http = httpClient
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		c.logger = logger.Named("n8n-client")
	}
}

// WithBackOff overrides the retry policy factory, mostly for tests.
func WithBackOff(newBackOff func() backoff.BackOff) Option {
	return func(c *Client) {
		c.newBackOff = newBackOff
	}
}

// Client talks to one n8n instance.
type Client struct {
	baseURL    string
	apiKey     string
	userAgent  string
	maxRetries int
	http       *http.Client
	limiter    *rate.Limiter
	logger     *zap.Logger
	newBackOff func() backoff.BackOff
}

var _ n8n.Backend = (*Client)(nil)

// New validates options and builds a Client.
func New(options Options, opts ...Option) (*Client, error) {
	baseURL, err := normalizeBaseURL(options.BaseURL)
	if err != nil {
		return nil, err
	}
	timeout := options.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	userAgent := options.UserAgent
	if userAgent == "" {
		userAgent = "n8n-mcp"
	}
	c := &Client{
		baseURL:    baseURL,
		apiKey:     options.APIKey,
		userAgent:  userAgent,
		maxRetries: options.MaxRetries,
		http:       &http.Client{Timeout: timeout},
		logger:     zap.NewNop(),
		newBackOff: func() backoff.BackOff {
			policy := backoff.NewExponentialBackOff()
			policy.InitialInterval = 200 * time.Millisecond
			policy.MaxInterval = 2 * time.Second
			return policy
		},
	}
	if options.RateLimit > 0 {
		burst := int(options.RateLimit)
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(options.RateLimit), burst)
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the normalised n8n base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// Close releases idle connections.
func (c *Client) Close() {
	c.http.CloseIdleConnections()
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimRight(strings.TrimSpace(raw), "/")
	if raw == "" {
		return "", fmt.Errorf("n8n URL is required")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid n8n URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("n8n URL must use http or https scheme, got %q", u.Scheme)
	}
	if u.Host == "" {
		return "", fmt.Errorf("n8n URL must include a host")
	}
	return strings.TrimSuffix(raw, apiPrefix), nil
}

// request describes one API call.
type request struct {
	method string
	path   string
	query  url.Values
	body   interface{}
	// secrets are scrubbed from error messages in addition to the API key.
	secrets []string
}

func (r *request) op() string {
	return r.method + " " + r.path
}

// do sends the request and decodes the response body into out (when not
// nil). GET requests are retried on transient failures.
func (c *Client) do(ctx context.Context, req *request, out interface{}) error {
	var payload []byte
	if req.body != nil {
		var err error
		if payload, err = json.Marshal(req.body); err != nil {
			return fmt.Errorf("%s: encode request: %w", req.op(), err)
		}
	}

	attempt := func() ([]byte, error) {
		data, err := c.send(ctx, req, payload)
		if err != nil && !isRetryable(err) {
			return nil, backoff.Permanent(err)
		}
		return data, err
	}

	var (
		data []byte
		err  error
	)
	if req.method == http.MethodGet && c.maxRetries > 0 {
		policy := backoff.WithContext(backoff.WithMaxRetries(c.newBackOff(), uint64(c.maxRetries)), ctx)
		data, err = backoff.RetryNotifyWithData(attempt, policy, func(err error, wait time.Duration) {
			c.logger.Debug("retrying n8n request",
				zap.String("op", req.op()),
				zap.Duration("wait", wait),
				zap.String("error", err.Error()),
			)
		})
	} else {
		data, err = c.send(ctx, req, payload)
	}
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return &n8n.ProtocolError{Op: req.op(), Err: errors.New("empty response body")}
	}
	if err = json.Unmarshal(data, out); err != nil {
		return &n8n.ProtocolError{Op: req.op(), Err: err}
	}
	return nil
}

// send performs a single HTTP round trip.
func (c *Client) send(ctx context.Context, req *request, payload []byte) ([]byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, &n8n.ConnectivityError{Op: req.op(), Err: err}
		}
	}
	endpoint := c.baseURL + apiPrefix + req.path
	if len(req.query) > 0 {
		endpoint += "?" + req.query.Encode()
	}
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("%s: create request: %w", req.op(), err)
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)
	if payload != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		httpReq.Header.Set(apiKeyHeader, c.apiKey)
	}

	start := time.Now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		c.logger.Debug("n8n request failed", zap.String("op", req.op()), zap.Duration("elapsed", time.Since(start)))
		return nil, &n8n.ConnectivityError{Op: req.op(), Err: errors.New(c.scrub(err.Error(), req.secrets))}
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()
	c.logger.Debug("n8n request",
		zap.String("op", req.op()),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		return nil, &n8n.RemoteError{
			StatusCode: resp.StatusCode,
			Message:    c.scrub(remoteMessage(data), req.secrets),
		}
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &n8n.ConnectivityError{Op: req.op(), Err: errors.New(c.scrub(err.Error(), req.secrets))}
	}
	return data, nil
}

func (c *Client) scrub(text string, secrets []string) string {
	return n8n.Scrub(text, append([]string{c.apiKey}, secrets...)...)
}

// remoteMessage extracts n8n's {"message": "..."} error text.
func remoteMessage(data []byte) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(data, &body); err == nil {
		if body.Message != "" {
			return body.Message
		}
		if body.Error != "" {
			return body.Error
		}
	}
	text := strings.TrimSpace(string(data))
	if len(text) > 512 {
		text = text[:512]
	}
	return text
}

func isRetryable(err error) bool {
	var remote *n8n.RemoteError
	if errors.As(err, &remote) {
		return remote.Retryable()
	}
	var connectivity *n8n.ConnectivityError
	return errors.As(err, &connectivity)
}

// notFound turns a 404 into a NotFoundError for resource/id.
func notFound(err error, resource, id string) error {
	var remote *n8n.RemoteError
	if errors.As(err, &remote) && remote.StatusCode == http.StatusNotFound {
		return &n8n.NotFoundError{Resource: resource, ID: id, Err: remote}
	}
	return err
}
