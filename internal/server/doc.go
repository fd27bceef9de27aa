// Package server runs the wallet's local control API: it starts the HTTP
// listener, waits for a stop signal and shuts the listener down gracefully.
package server
