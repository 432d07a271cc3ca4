package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestLifecycleTransitionsCountsPerLabel(t *testing.T) {
	counter := LifecycleTransitions.WithLabelValues("approve_return", "server", "ok")
	before := testutil.ToFloat64(counter)

	counter.Inc()

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestStalePendingReturnsGauge(t *testing.T) {
	StalePendingReturns.Reset()
	StalePendingReturns.WithLabelValues("team-a").Set(3)

	assert.Equal(t, 1, testutil.CollectAndCount(StalePendingReturns))
	assert.Equal(t, 3.0, testutil.ToFloat64(StalePendingReturns.WithLabelValues("team-a")))
}
