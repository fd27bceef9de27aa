// Package http is the wallet's local control API.
//
// It exposes identifiers, connections and group ceremonies over a small JSON
// API served on the loopback address. Requests pass through trace-id, access
// logging and optional bearer-token middleware before they reach the service
// layer; service errors are mapped to status codes in one place.
package http
