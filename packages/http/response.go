package http

import (
	"mime"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

type Response struct {
	Proto      string
	StatusCode int
	Status     string
	Headers    http.Header
	Body       []byte
	Duration   time.Duration
}

func newResponse(resp *resty.Response, d time.Duration) *Response {
	r := &Response{
		Proto:      resp.Proto(),
		StatusCode: resp.StatusCode(),
		Status:     resp.Status(),
		Headers:    resp.Header(),
		Body:       resp.Body(),
		Duration:   d,
	}
	if r.Headers == nil {
		r.Headers = http.Header{}
	}
	return r
}

func (r *Response) BodyString() string {
	return string(r.Body)
}

func (r *Response) Header(key string) string {
	return r.Headers.Get(key)
}

// HeaderNames returns the canonical header names in sorted order
func (r *Response) HeaderNames() []string {
	names := make([]string, 0, len(r.Headers))
	for k := range r.Headers {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// StatusLine renders e.g. "HTTP/1.1 200 OK"
func (r *Response) StatusLine() string {
	status := r.Status
	if status == "" {
		status = http.StatusText(r.StatusCode)
	}
	// Some transports report only the reason phrase.
	if !strings.HasPrefix(status, strconv.Itoa(r.StatusCode)) {
		status = strconv.Itoa(r.StatusCode) + " " + status
	}
	return strings.TrimSpace(r.Proto + " " + status)
}

func (r *Response) ContentType() string {
	return r.Header("Content-Type")
}

// MediaType returns the content type without parameters, lower-cased.
// ok is false when no Content-Type header was sent.
func (r *Response) MediaType() (mediaType string, ok bool, err error) {
	ct := r.ContentType()
	if ct == "" {
		return "", false, nil
	}
	mediaType, _, err = mime.ParseMediaType(ct)
	if err != nil {
		return "", true, err
	}
	return mediaType, true, nil
}

func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

func (r *Response) DurationMs() int64 {
	return r.Duration.Milliseconds()
}
