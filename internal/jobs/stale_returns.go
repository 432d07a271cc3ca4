package jobs

import (
	"context"
	"time"

	"mailops-backend/internal/database/models"
	"mailops-backend/internal/logger"
	"mailops-backend/internal/metrics"
	"mailops-backend/internal/repository"

	"github.com/google/uuid"
)

// StaleReturnSweeper reports server returns that have waited for a team leader's
// decision longer than the configured threshold. It never changes a resource.
type StaleReturnSweeper struct {
	resources  repository.ResourceRepositoryInterface
	staleAfter time.Duration
	now        func() time.Time
}

// NewStaleReturnSweeper creates a new sweeper
func NewStaleReturnSweeper(resources repository.ResourceRepositoryInterface, staleAfter time.Duration) *StaleReturnSweeper {
	return &StaleReturnSweeper{
		resources:  resources,
		staleAfter: staleAfter,
		now:        time.Now,
	}
}

// WithClock replaces the clock used to compute the staleness cutoff
func (s *StaleReturnSweeper) WithClock(now func() time.Time) *StaleReturnSweeper {
	s.now = now
	return s
}

// Sweep counts stale pending returns per team, logs a warning for each team that has
// any and publishes the counts on the stale returns gauge
func (s *StaleReturnSweeper) Sweep(ctx context.Context) (map[uuid.UUID]int64, error) {
	cutoff := s.now().Add(-s.staleAfter)

	counts, err := s.resources.CountPendingOlderThan(ctx, models.ResourceKindServer, cutoff)
	if err != nil {
		return nil, err
	}

	// Teams that cleared their backlog drop out of the gauge
	metrics.StalePendingReturns.Reset()
	for teamID, count := range counts {
		metrics.StalePendingReturns.WithLabelValues(teamID.String()).Set(float64(count))
		logger.WithContext(ctx).WithFields(map[string]interface{}{
			"team_id":     teamID,
			"stale_count": count,
			"stale_after": s.staleAfter.String(),
		}).Warn("server returns waiting for approval")
	}

	return counts, nil
}
