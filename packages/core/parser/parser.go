package parser

import (
	neturl "net/url"
	"strings"
)

const (
	cmdGet  = "get"
	cmdPost = "post"
)

// Parse builds a Command from raw arguments of the form
// "get <url>" or "post <url> [key=value ...]".
func Parse(args []string) (Command, error) {
	if len(args) < 2 {
		return nil, &ParseError{Arg: strings.Join(args, " "), Message: "expected get <url> or post <url> [key=value ...]", Err: ErrUsage}
	}

	switch strings.ToLower(args[0]) {
	case cmdGet:
		if len(args) != 2 {
			return nil, &ParseError{Arg: strings.Join(args, " "), Message: "get takes exactly one URL", Err: ErrUsage}
		}
		return ParseGet(args[1])
	case cmdPost:
		return ParsePost(args[1], args[2:])
	default:
		return nil, &ParseError{Arg: args[0], Message: "unknown command", Err: ErrUsage}
	}
}

func ParseGet(rawURL string) (*Get, error) {
	u, err := ParseURL(rawURL)
	if err != nil {
		return nil, err
	}
	return &Get{URL: u}, nil
}

func ParsePost(rawURL string, tokens []string) (*Post, error) {
	u, err := ParseURL(rawURL)
	if err != nil {
		return nil, err
	}

	pairs := make([]KeyValue, 0, len(tokens))
	for _, tok := range tokens {
		kv, err := ParseKeyValue(tok)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, kv)
	}

	return &Post{URL: u, Pairs: pairs}, nil
}

// ParseURL checks that rawURL is an absolute URL and returns its
// normalized form.
func ParseURL(rawURL string) (string, error) {
	u, err := neturl.Parse(rawURL)
	if err != nil {
		return "", &ParseError{Arg: rawURL, Message: err.Error(), Err: ErrInvalidURL}
	}

	if u.Scheme == "" {
		return "", &ParseError{Arg: rawURL, Message: "missing scheme", Err: ErrInvalidURL}
	}

	if u.Host == "" {
		return "", &ParseError{Arg: rawURL, Message: "missing host", Err: ErrInvalidURL}
	}

	return u.String(), nil
}

// ParseKeyValue splits token at its first '='. The value may be empty
// and may contain further '=' characters; the key may not be empty.
func ParseKeyValue(token string) (KeyValue, error) {
	key, value, found := strings.Cut(token, "=")
	if !found {
		return KeyValue{}, &ParseError{Arg: token, Message: "missing '='", Err: ErrInvalidKeyValue}
	}
	if key == "" {
		return KeyValue{}, &ParseError{Arg: token, Message: "missing key", Err: ErrInvalidKeyValue}
	}
	return KeyValue{Key: key, Value: value}, nil
}
