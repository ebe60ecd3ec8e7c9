package http

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/abdul-hamid-achik/httpie/packages/core/parser"
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const (
	// HeaderPoweredBy marks requests as sent by the Go implementation
	HeaderPoweredBy = "X-Powered-By"
	// PoweredByValue is the value of HeaderPoweredBy
	PoweredByValue = "Go"
	// HeaderUserAgent is the standard user agent header
	HeaderUserAgent = "User-Agent"
	// UserAgent identifies this tool
	UserAgent = "Go Httpie"

	contentTypeJSON = "application/json"
)

type Client struct {
	rc             *resty.Client
	timeout        time.Duration
	defaultHeaders map[string]string
	logger         *zap.SugaredLogger
}

type ClientOption func(*Client)

func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		defaultHeaders: make(map[string]string),
		logger:         zap.NewNop().Sugar(),
	}

	// Fixed headers first; callers may add to or override them.
	opts = append([]ClientOption{
		WithDefaultHeader(HeaderPoweredBy, PoweredByValue),
		WithDefaultHeader(HeaderUserAgent, UserAgent),
	}, opts...)

	for _, opt := range opts {
		opt(c)
	}

	rc := resty.New()
	rc.SetHeaders(c.defaultHeaders)
	rc.SetLogger(c.logger)
	// Zero keeps the transport's own behaviour.
	if c.timeout > 0 {
		rc.SetTimeout(c.timeout)
	}
	c.rc = rc

	return c
}

func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.timeout = d
	}
}

func WithDefaultHeader(key, value string) ClientOption {
	return func(c *Client) {
		c.defaultHeaders[key] = value
	}
}

// WithLogger routes client diagnostics to the given logger
func WithLogger(l *zap.SugaredLogger) ClientOption {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// Dispatch turns a parsed command into a request and sends it. Any HTTP
// response, whatever its status, is returned without error.
func (c *Client) Dispatch(ctx context.Context, cmd parser.Command) (*Response, error) {
	req, err := BuildRequest(cmd)
	if err != nil {
		return nil, err
	}
	return c.Do(ctx, req)
}

// BuildRequest maps a command onto a Request. POST pairs are folded into
// a JSON object, so a repeated key keeps its last value.
func BuildRequest(cmd parser.Command) (*Request, error) {
	switch cmd := cmd.(type) {
	case *parser.Get:
		return NewRequest(parser.MethodGet, cmd.URL), nil
	case *parser.Post:
		body, err := json.Marshal(cmd.Body())
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		return NewRequest(parser.MethodPost, cmd.URL).
			SetHeader("Content-Type", contentTypeJSON).
			SetBody(body), nil
	default:
		return nil, fmt.Errorf("unsupported command %T", cmd)
	}
}

func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	r := c.rc.R().SetContext(ctx)

	if len(req.Headers) > 0 {
		r.SetHeaders(req.Headers)
	}
	if req.Body != nil {
		r.SetBody(req.Body)
	}

	c.logger.Debugw("sending request", "method", req.Method, "url", req.URL, "bodyBytes", len(req.Body))

	start := time.Now()
	resp, err := r.Execute(req.Method, req.URL)
	if err != nil {
		return nil, &TransportError{Method: req.Method, URL: req.URL, Err: err}
	}

	out := newResponse(resp, time.Since(start))
	c.logger.Debugw("received response", "status", out.StatusCode, "durationMs", out.DurationMs())
	return out, nil
}

// TransportError reports a failure to obtain any HTTP response: DNS,
// connection, TLS or timeout errors.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
