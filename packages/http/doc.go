// Package http dispatches parsed commands over the network.
//
// It wraps a resty client with:
//   - Fixed default headers sent on every request
//   - JSON body encoding for POST commands
//   - A TransportError type separating network failures from HTTP statuses
//   - Response capture (protocol, status, headers, body)
package http
