package workers

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-keri-wallet/internal/config"
	"github.com/MKhiriev/go-keri-wallet/internal/logger"
	"github.com/MKhiriev/go-keri-wallet/internal/service"
)

type Workers struct {
	workers []Worker
}

func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

// NewWalletWorkers schedules the operation poller and the reconciliation
// sync. Both skip their ticks while the wallet is offline.
func NewWalletWorkers(services *service.Services, cfg config.WalletWorkers, logger *logger.Logger) (*Workers, error) {
	scheduler, err := NewScheduler(services.Connectivity.IsOnline, logger,
		Job{
			Name:  "operations",
			Every: cfg.OperationPollInterval,
			Run:   services.Operations.ProcessPendingOperations,
		},
		Job{
			Name:  "sync",
			Every: cfg.SyncInterval,
			Run: func(ctx context.Context) error {
				return errors.Join(
					services.Identifiers.SyncKeriaIdentifiers(ctx),
					services.Connections.SyncKeriaContacts(ctx),
				)
			},
		},
	)
	if err != nil {
		return nil, fmt.Errorf("create scheduler: %w", err)
	}
	return NewWorkers(scheduler), nil
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

// Stop stops the workers in reverse start order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}
