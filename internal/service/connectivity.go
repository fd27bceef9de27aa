package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/MKhiriev/go-keri-wallet/internal/adapter"
)

// Connectivity is the process-wide online flag. Services report network
// failures here instead of retrying; the agent installs the hook that marks
// the wallet offline and reconnects.
type Connectivity struct {
	online atomic.Bool

	mu     sync.Mutex
	onLost func(cause error)
}

func NewConnectivity() *Connectivity {
	return &Connectivity{}
}

func (c *Connectivity) IsOnline() bool {
	return c.online.Load()
}

// SetOnline records the current state and reports whether it changed.
func (c *Connectivity) SetOnline(online bool) bool {
	return c.online.Swap(online) != online
}

// OnConnectionLost installs the hook run when an online wallet observes a
// network failure.
func (c *Connectivity) OnConnectionLost(hook func(cause error)) {
	c.mu.Lock()
	c.onLost = hook
	c.mu.Unlock()
}

// ReportNetworkError marks the wallet offline. The hook runs once per
// online-to-offline transition.
func (c *Connectivity) ReportNetworkError(cause error) {
	if !c.online.CompareAndSwap(true, false) {
		return
	}

	c.mu.Lock()
	hook := c.onLost
	c.mu.Unlock()

	if hook != nil {
		hook(cause)
	}
}

// onlineOnly runs fn only while online and normalizes network failures to
// ErrKeriaConnectionBroken.
func onlineOnly[T any](ctx context.Context, c *Connectivity, fn func(context.Context) (T, error)) (T, error) {
	var zero T
	if !c.IsOnline() {
		return zero, ErrKeriaConnectionBroken
	}

	result, err := fn(ctx)
	if err != nil {
		return zero, c.normalize(err)
	}
	return result, nil
}

func onlineOnlyErr(ctx context.Context, c *Connectivity, fn func(context.Context) error) error {
	_, err := onlineOnly(ctx, c, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx)
	})
	return err
}

func (c *Connectivity) normalize(err error) error {
	if errors.Is(err, ErrKeriaConnectionBroken) {
		return err
	}
	if adapter.IsNetworkError(err) {
		c.ReportNetworkError(err)
		return fmt.Errorf("%w: %w", ErrKeriaConnectionBroken, err)
	}
	return err
}
