package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/abdul-hamid-achik/httpie/packages/http"
	"github.com/fatih/color"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"go.uber.org/zap"
)

const (
	mediaTypeJSON = "application/json"
	mediaTypeHTML = "text/html"
)

type ConsoleRenderer struct {
	writer      io.Writer
	noColor     bool
	pretty      bool
	highlighter *Highlighter
	logger      *zap.SugaredLogger
}

type ConsoleOption func(*ConsoleRenderer)

func NewConsoleRenderer(opts ...ConsoleOption) *ConsoleRenderer {
	r := &ConsoleRenderer{
		writer:  os.Stdout,
		noColor: color.NoColor,
		logger:  zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.highlighter == nil {
		r.highlighter = DefaultHighlighter()
	}
	return r
}

func WithWriter(w io.Writer) ConsoleOption {
	return func(r *ConsoleRenderer) {
		r.writer = w
	}
}

func WithNoColor(nc bool) ConsoleOption {
	return func(r *ConsoleRenderer) {
		r.noColor = nc
	}
}

// WithPretty re-indents valid JSON bodies before printing
func WithPretty(p bool) ConsoleOption {
	return func(r *ConsoleRenderer) {
		r.pretty = p
	}
}

func WithHighlighter(h *Highlighter) ConsoleOption {
	return func(r *ConsoleRenderer) {
		r.highlighter = h
	}
}

func WithLogger(l *zap.SugaredLogger) ConsoleOption {
	return func(r *ConsoleRenderer) {
		if l != nil {
			r.logger = l
		}
	}
}

// Render writes the status line, headers and body of resp.
func (r *ConsoleRenderer) Render(resp *http.Response) error {
	if err := r.renderStatus(resp); err != nil {
		return err
	}
	if err := r.renderHeaders(resp); err != nil {
		return err
	}
	return r.renderBody(resp)
}

func (r *ConsoleRenderer) renderStatus(resp *http.Response) error {
	blue := r.paint(color.FgBlue)
	_, err := fmt.Fprintf(r.writer, "%s\n\n", blue(resp.StatusLine()))
	return err
}

func (r *ConsoleRenderer) renderHeaders(resp *http.Response) error {
	green := r.paint(color.FgGreen)
	for _, name := range resp.HeaderNames() {
		for _, value := range resp.Headers[name] {
			if _, err := fmt.Fprintf(r.writer, "%s: %s\n", green(name), value); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintln(r.writer)
	return err
}

func (r *ConsoleRenderer) renderBody(resp *http.Response) error {
	body := resp.BodyString()

	syntax := r.syntaxFor(resp)
	if syntax == "" {
		return r.writeRaw(body)
	}

	if syntax == SyntaxJSON && r.pretty && gjson.Valid(body) {
		body = string(pretty.Pretty([]byte(body)))
	}

	lines, err := r.highlighter.Tokenize(body, syntax)
	if err != nil {
		r.logger.Warnw("highlighting unavailable, printing raw body", "syntax", syntax, "error", err)
		return r.writeRaw(body)
	}
	return r.highlighter.Write(r.writer, lines, !r.noColor)
}

// syntaxFor picks the highlighter syntax from the declared content type.
// An empty result means the body is printed as is.
func (r *ConsoleRenderer) syntaxFor(resp *http.Response) string {
	mediaType, found, err := resp.MediaType()
	if !found {
		return ""
	}
	if err != nil {
		r.logger.Warnw("unparseable content type", "contentType", resp.ContentType(), "error", err)
		return ""
	}

	switch mediaType {
	case mediaTypeJSON:
		return SyntaxJSON
	case mediaTypeHTML:
		return SyntaxHTML
	default:
		return ""
	}
}

func (r *ConsoleRenderer) writeRaw(body string) error {
	if body == "" {
		return nil
	}
	if _, err := io.WriteString(r.writer, body); err != nil {
		return err
	}
	if !strings.HasSuffix(body, "\n") {
		_, err := io.WriteString(r.writer, "\n")
		return err
	}
	return nil
}

func (r *ConsoleRenderer) paint(attr color.Attribute) func(a ...interface{}) string {
	c := color.New(attr)
	if r.noColor {
		c.DisableColor()
	} else {
		c.EnableColor()
	}
	return c.SprintFunc()
}

// FormatError prints err in the same style as the rest of the output
func (r *ConsoleRenderer) FormatError(err error) {
	if err == nil {
		return
	}
	red := r.paint(color.FgRed)
	fmt.Fprintf(r.writer, "%s %v\n", red("Error:"), err)
}
