package jobs

import (
	"context"
	"time"

	"mailops-backend/internal/logger"

	"github.com/robfig/cron/v3"
)

// sweepTimeout bounds a single sweep so a slow database cannot pile up runs
const sweepTimeout = 30 * time.Second

// Scheduler runs background jobs on cron schedules with second precision
type Scheduler struct {
	cron    *cron.Cron
	sweeper *StaleReturnSweeper
	spec    string
}

// NewScheduler creates a scheduler for the stale return sweep. An empty spec disables it.
func NewScheduler(sweeper *StaleReturnSweeper, spec string) *Scheduler {
	return &Scheduler{
		cron:    cron.New(cron.WithSeconds()),
		sweeper: sweeper,
		spec:    spec,
	}
}

// Start registers the jobs and starts the cron loop
func (s *Scheduler) Start() error {
	if s.sweeper == nil || s.spec == "" {
		logger.New().Info("background jobs disabled")
		return nil
	}

	if _, err := s.cron.AddFunc(s.spec, s.runSweep); err != nil {
		return err
	}

	s.cron.Start()
	logger.New().WithField("schedule", s.spec).Info("background jobs started")
	return nil
}

// Stop halts the scheduler. The returned context is done once running jobs finish.
func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}

func (s *Scheduler) runSweep() {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	if _, err := s.sweeper.Sweep(ctx); err != nil {
		logger.WithContext(ctx).WithError(err).Error("stale return sweep failed")
	}
}
