package repo

import (
	"context"

	"github.com/neurofleetx/fleetweb/pkg/core/model"
)

type MetricsConnQueryer interface {
	MetricsQueryer
}

type MetricsTxQueryer interface {
	MetricsQueryer
}

// MetricsQueryer exposes the recorded AI metrics and system health
// snapshots. The latest-row getters return a nil model (and a nil
// error) when nothing has been recorded yet, so the use cases layer
// can substitute its fixed defaults.
type MetricsQueryer interface {
	LatestAIMetrics(ctx context.Context) (*model.AIMetrics, error)
	LatestSystemHealth(ctx context.Context) (*model.SystemHealth, error)
	RecordAIMetrics(ctx context.Context, m *model.AIMetrics) error
	RecordSystemHealth(ctx context.Context, h *model.SystemHealth) error
}

type Metrics interface {
	Conn(Conn) MetricsConnQueryer
	Tx(Tx) MetricsTxQueryer
}
