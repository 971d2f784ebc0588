package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/TATR0/bot-service/internal/pkg/metrics"
)

const (
	requestIndexStatsName            = "request-index-stats"
	defaultRequestIndexStatsInterval = time.Minute
)

// SizedIndex индекс, который знает своё число записей
type SizedIndex interface {
	Len() int
}

// RequestIndexStats публикует размер индекса заявок в памяти
type RequestIndexStats struct {
	index    SizedIndex
	metrics  *metrics.Metrics
	interval time.Duration
	log      *slog.Logger
}

func NewRequestIndexStats(index SizedIndex, m *metrics.Metrics, interval time.Duration, log *slog.Logger) *RequestIndexStats {
	if interval <= 0 {
		interval = defaultRequestIndexStatsInterval
	}
	return &RequestIndexStats{
		index:    index,
		metrics:  m,
		interval: interval,
		log:      log,
	}
}

func (j *RequestIndexStats) Name() string {
	return requestIndexStatsName
}

func (j *RequestIndexStats) NextRun(now time.Time) time.Time {
	return now.Add(j.interval)
}

func (j *RequestIndexStats) Run(_ context.Context) error {
	size := j.index.Len()
	j.metrics.RequestIndexSize(size)
	j.log.Debug("request index size reported", "entries", size)
	return nil
}
