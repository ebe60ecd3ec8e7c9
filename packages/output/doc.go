// Package output renders HTTP responses for a terminal.
//
// A rendered response has three blocks separated by blank lines:
//   - Status line, e.g. "HTTP/1.1 200 OK"
//   - Headers as "Name: Value", one per line
//   - Body, syntax-highlighted for JSON and HTML, verbatim otherwise
//
// Highlighting is done by chroma with a dark theme and 24-bit color
// escapes. A response whose content type cannot be parsed, or whose
// syntax cannot be found, is printed without highlighting.
package output
