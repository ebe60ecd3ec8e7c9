package output

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

const (
	// DefaultTheme is the dark theme used when none is requested
	DefaultTheme = "monokai"

	SyntaxJSON = "json"
	SyntaxHTML = "html"
)

var (
	ErrNoSyntax     = errors.New("no syntax definition")
	ErrUnknownTheme = errors.New("unknown theme")
)

// Highlighter maps source text to terminal-colored lines. It holds no
// per-call state and is safe to share.
type Highlighter struct {
	style *chroma.Style
}

var defaultHighlighter = sync.OnceValue(func() *Highlighter {
	return &Highlighter{style: styles.Get(DefaultTheme)}
})

// DefaultHighlighter returns the process-wide highlighter using DefaultTheme.
func DefaultHighlighter() *Highlighter {
	return defaultHighlighter()
}

func NewHighlighter(theme string) (*Highlighter, error) {
	style, ok := styles.Registry[theme]
	if !ok {
		return nil, fmt.Errorf("%w %q (available: %s)", ErrUnknownTheme, theme, strings.Join(Themes(), ", "))
	}
	return &Highlighter{style: style}, nil
}

// Themes lists the registered theme names in sorted order
func Themes() []string {
	names := make([]string, 0, len(styles.Registry))
	for name := range styles.Registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Tokenize splits text into highlighted lines using the syntax registered
// for the file extension ext. The whole text is lexed in one pass so that
// constructs spanning lines keep their state; every returned line ends
// with its newline, except possibly the last.
func (h *Highlighter) Tokenize(text, ext string) ([][]chroma.Token, error) {
	lexer := lexers.Match("body." + ext)
	if lexer == nil {
		return nil, fmt.Errorf("%w for %q", ErrNoSyntax, ext)
	}

	// Explicit options leave EnsureLF off so CRLF endings survive.
	it, err := chroma.Coalesce(lexer).Tokenise(&chroma.TokeniseOptions{State: "root"}, text)
	if err != nil {
		return nil, fmt.Errorf("tokenise %s: %w", ext, err)
	}

	var lines [][]chroma.Token
	for _, line := range chroma.SplitTokensIntoLines(it.Tokens()) {
		if lineText(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// Write emits each line with 24-bit color escapes, or as plain text when
// colored is false. Every line written ends with a newline.
func (h *Highlighter) Write(w io.Writer, lines [][]chroma.Token, colored bool) error {
	formatter := formatters.NoOp
	if colored {
		formatter = formatters.TTY16m
	}

	for _, line := range lines {
		if err := formatter.Format(w, h.style, chroma.Literator(line...)); err != nil {
			return err
		}
		if !strings.HasSuffix(lineText(line), "\n") {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
	}
	return nil
}

func lineText(line []chroma.Token) string {
	var sb strings.Builder
	for _, tok := range line {
		sb.WriteString(tok.Value)
	}
	return sb.String()
}
