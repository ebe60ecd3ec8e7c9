// Package cmd implements the httpie CLI commands using Cobra.
//
// Available commands:
//   - get: Send a GET request and print the response
//   - post: Send a JSON POST request built from key=value pairs
//   - version: Show version information
//
// Global flags control the timeout, colors, theme and JSON re-indenting.
package cmd
