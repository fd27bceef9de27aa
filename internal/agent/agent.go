// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package agent owns the wallet's online state. It connects to the remote
// agent, reconnects after network failures and runs the reconciliation
// sweep every time the wallet comes back online.
package agent

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-keri-wallet/internal/adapter"
	"github.com/MKhiriev/go-keri-wallet/internal/bus"
	"github.com/MKhiriev/go-keri-wallet/internal/config"
	"github.com/MKhiriev/go-keri-wallet/internal/logger"
	"github.com/MKhiriev/go-keri-wallet/internal/service"
	"github.com/MKhiriev/go-keri-wallet/internal/workers"
	"github.com/MKhiriev/go-keri-wallet/models"
)

const defaultRetryInterval = time.Second

type sweepStep struct {
	name string
	run  func(ctx context.Context) error
}

type Agent struct {
	services *service.Services
	keria    adapter.KeriaAdapter
	events   *bus.Bus
	workers  workers.Worker

	retryInterval time.Duration
	connecting    atomic.Bool

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	offs   []func()

	logger *logger.Logger
}

func NewAgent(services *service.Services, keria adapter.KeriaAdapter, events *bus.Bus, bg workers.Worker, cfg config.WalletWorkers, logger *logger.Logger) *Agent {
	retry := cfg.ReconnectInterval
	if retry <= 0 {
		retry = defaultRetryInterval
	}
	if bg == nil {
		bg = workers.NewWorkers()
	}

	return &Agent{
		services:      services,
		keria:         keria,
		events:        events,
		workers:       bg,
		retryInterval: retry,
		logger:        logger,
	}
}

func (a *Agent) IsOnline() bool {
	return a.services.Connectivity.IsOnline()
}

// Start installs the connectivity hook, subscribes to new connections,
// connects in the background and starts the workers.
func (a *Agent) Start(ctx context.Context) {
	a.ctx, a.cancel = context.WithCancel(a.logger.WithContext(ctx))

	a.services.Connectivity.OnConnectionLost(a.onConnectionLost)
	a.offs = append(a.offs, a.events.On(models.EventConnectionStateChanged, a.onConnectionStateChanged))

	a.reconnect()
	a.workers.Run()
	a.logger.Info().Dur("retry_interval", a.retryInterval).Msg("agent started")
}

func (a *Agent) Stop() {
	a.workers.Stop()
	for _, off := range a.offs {
		off()
	}
	a.offs = nil
	a.services.Connectivity.OnConnectionLost(nil)

	if a.cancel != nil {
		a.cancel()
	}
	a.wg.Wait()
	a.logger.Info().Msg("agent stopped")
}

// Connect retries with a fixed interval until the remote agent accepts a
// connection, then marks the wallet online. It only returns an error when
// ctx is done or the sweep fails.
func (a *Agent) Connect(ctx context.Context, retryInterval time.Duration) error {
	for attempt := 1; ; attempt++ {
		err := a.keria.Connect(ctx)
		if err == nil {
			return a.MarkAgentStatus(ctx, true)
		}

		a.logger.Warn().Err(err).Int("attempt", attempt).Msg("keria connection failed")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(retryInterval):
		}
	}
}

// MarkAgentStatus records the online state. Going online runs the cloud
// migrations and then the reconciliation sweep; AgentStatusChanged is
// emitted once the wallet is settled in the new state.
func (a *Agent) MarkAgentStatus(ctx context.Context, online bool) error {
	if !a.services.Connectivity.SetOnline(online) {
		return nil
	}

	if !online {
		a.emitStatus(ctx, false)
		return nil
	}

	if err := a.sweep(ctx); err != nil {
		// a network failure during the sweep already reported offline
		if a.IsOnline() {
			a.emitStatus(ctx, true)
		}
		return err
	}

	a.emitStatus(ctx, true)
	return nil
}

func (a *Agent) sweep(ctx context.Context) error {
	s := a.services
	steps := []sweepStep{
		{"cloud migrations", s.Migrations.RunMigrations},
		{"remove connections pending deletion", s.Connections.RemoveConnectionsPendingDeletion},
		{"resolve pending connections", s.Connections.ResolvePendingConnections},
		{"remove identifiers pending deletion", s.Identifiers.RemoveIdentifiersPendingDeletion},
		{"process identifiers pending creation", s.Identifiers.ProcessIdentifiersPendingCreation},
		{"process identifiers pending update", s.Identifiers.ProcessIdentifiersPendingUpdate},
		{"remove credentials pending deletion", s.Credentials.RemoveCredentialsPendingDeletion},
		{"process groups pending creation", s.Multisig.ProcessGroupsPendingCreation},
	}

	for _, step := range steps {
		if err := step.run(ctx); err != nil {
			return fmt.Errorf("%s: %w", step.name, err)
		}
	}
	a.logger.Debug().Int("steps", len(steps)).Msg("reconciliation sweep done")
	return nil
}

func (a *Agent) emitStatus(ctx context.Context, online bool) {
	a.events.Emit(ctx, models.Event{
		Type:    models.EventAgentStatusChanged,
		Payload: models.AgentStatusPayload{Online: online},
	})
}

// onConnectionLost runs once per online-to-offline transition.
func (a *Agent) onConnectionLost(cause error) {
	a.logger.Warn().Err(cause).Msg("keria connection lost")
	a.emitStatus(a.ctx, false)
	a.reconnect()
}

// reconnect starts Connect in the background unless it already runs.
func (a *Agent) reconnect() {
	if !a.connecting.CompareAndSwap(false, true) {
		return
	}

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()

		for {
			if err := a.Connect(a.ctx, a.retryInterval); err != nil {
				a.logger.Err(err).Str("func", "*Agent.reconnect").Msg("agent did not settle online")
			}
			a.connecting.Store(false)

			// the connection may have dropped again while the sweep ran
			if a.ctx.Err() != nil || a.IsOnline() || !a.connecting.CompareAndSwap(false, true) {
				return
			}
		}
	}()
}

func (a *Agent) onConnectionStateChanged(_ context.Context, event models.Event) {
	payload, ok := event.Payload.(models.ConnectionStatePayload)
	if !ok || payload.Status != models.ConnectionStatusPending {
		return
	}

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		if err := a.services.Connections.OnConnectionAdded(a.ctx, payload); err != nil {
			a.logger.Err(err).Str("func", "*Agent.onConnectionStateChanged").
				Str("connection", payload.ConnectionID).Msg("resolve added connection")
		}
	}()
}
