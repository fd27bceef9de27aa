// Package workers runs the wallet's background jobs: the pending operation
// poller and the periodic reconciliation with the remote agent.
package workers

// Worker is a background job the agent starts and stops with the wallet.
//
// Run must not block; implementations start their own goroutines. Stop
// waits for a running iteration to finish.
type Worker interface {
	Run()
	Stop()
}
