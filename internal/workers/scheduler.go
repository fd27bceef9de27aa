// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-keri-wallet/internal/logger"
	"github.com/MKhiriev/go-keri-wallet/internal/service"
	"github.com/go-co-op/gocron"
)

var ErrInvalidJob = errors.New("job needs a name, a positive interval and a run function")

// Job is one periodic task.
type Job struct {
	Name  string
	Every time.Duration
	Run   func(ctx context.Context) error
}

// Scheduler runs jobs on a gocron scheduler. A tick is skipped while online
// reports false, and a job never overlaps with its previous run.
type Scheduler struct {
	cron   *gocron.Scheduler
	online func() bool
	jobs   []Job

	ctx    context.Context
	cancel context.CancelFunc

	logger *logger.Logger
}

func NewScheduler(online func() bool, logger *logger.Logger, jobs ...Job) (*Scheduler, error) {
	for _, j := range jobs {
		if j.Name == "" || j.Every <= 0 || j.Run == nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidJob, j.Name)
		}
	}

	cron := gocron.NewScheduler(time.UTC)
	cron.SingletonModeAll()

	ctx, cancel := context.WithCancel(context.Background())
	s := &Scheduler{
		cron:   cron,
		online: online,
		jobs:   jobs,
		ctx:    logger.WithContext(ctx),
		cancel: cancel,
		logger: logger,
	}

	for _, j := range jobs {
		if _, err := cron.Every(j.Every).Tag(j.Name).Do(s.tick, j); err != nil {
			cancel()
			return nil, fmt.Errorf("schedule job %s: %w", j.Name, err)
		}
	}
	return s, nil
}

func (s *Scheduler) Run() {
	s.logger.Info().Int("jobs", len(s.jobs)).Msg("scheduler started")
	s.cron.StartAsync()
}

func (s *Scheduler) Stop() {
	s.cancel()
	s.cron.Stop()
	s.logger.Info().Msg("scheduler stopped")
}

func (s *Scheduler) tick(j Job) {
	if !s.online() {
		return
	}

	err := j.Run(s.ctx)
	switch {
	case err == nil:
	case errors.Is(err, service.ErrKeriaConnectionBroken), errors.Is(err, context.Canceled):
		s.logger.Debug().Str("job", j.Name).Err(err).Msg("job interrupted")
	default:
		s.logger.Err(err).Str("func", "*Scheduler.tick").Str("job", j.Name).Msg("job failed")
	}
}
