package parser

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidURL is returned when a URL is malformed or not absolute.
	ErrInvalidURL = errors.New("invalid URL")
	// ErrInvalidKeyValue is returned when a body token is not key=value.
	ErrInvalidKeyValue = errors.New("invalid key=value pair")
	// ErrUsage is returned when the arguments do not name a known command.
	ErrUsage = errors.New("invalid usage")
)

const (
	MethodGet  = "GET"
	MethodPost = "POST"
)

// Command is the parsed user intent. It is either a *Get or a *Post.
type Command interface {
	Method() string
	Target() string
}

type Get struct {
	URL string
}

func (g *Get) Method() string { return MethodGet }
func (g *Get) Target() string { return g.URL }

type Post struct {
	URL   string
	Pairs []KeyValue
}

func (p *Post) Method() string { return MethodPost }
func (p *Post) Target() string { return p.URL }

// Body folds the pairs into a mapping. Later keys overwrite earlier ones.
func (p *Post) Body() map[string]string {
	body := make(map[string]string, len(p.Pairs))
	for _, kv := range p.Pairs {
		body[kv.Key] = kv.Value
	}
	return body
}

type KeyValue struct {
	Key   string
	Value string
}

func (kv KeyValue) String() string {
	return kv.Key + "=" + kv.Value
}

type ParseError struct {
	Arg     string
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%v: %q", e.Err, e.Arg)
	}
	return fmt.Sprintf("%v %q: %s", e.Err, e.Arg, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
