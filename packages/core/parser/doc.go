// Package parser turns command-line arguments into a request command.
//
// It validates the pieces the user typed before anything touches the
// network:
//   - The target URL must be absolute (scheme and host)
//   - Each POST body token must have the form key=value
//
// Two command shapes are supported: Get and Post.
package parser
