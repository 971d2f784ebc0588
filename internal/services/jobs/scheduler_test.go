package jobs

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/TATR0/bot-service/internal/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type countingJob struct {
	mu       sync.Mutex
	runs     int
	failures int // сколько первых запусков вернут ошибку
	done     chan struct{}
	stopAt   int
}

func (j *countingJob) Name() string                    { return "counting" }
func (j *countingJob) NextRun(now time.Time) time.Time { return now.Add(time.Millisecond) }

func (j *countingJob) Run(context.Context) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.runs++
	if j.runs == j.stopAt {
		close(j.done)
	}
	if j.runs <= j.failures {
		return errors.New("boom")
	}
	return nil
}

type fakeAlerter struct {
	mu       sync.Mutex
	messages []string
}

func (a *fakeAlerter) SendAlert(_ context.Context, message string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.messages = append(a.messages, message)
	return nil
}

func TestExecuteJobWithRetry_SucceedsAfterFailures(t *testing.T) {
	s := NewScheduler(testLogger(), nil).WithRetryDelays(time.Millisecond, time.Millisecond)
	job := &countingJob{failures: 2, done: make(chan struct{}), stopAt: -1}

	attempts, err := s.executeJobWithRetry(context.Background(), job)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if attempts != nil {
		t.Errorf("expected no attempt errors on success, got %v", attempts)
	}
	if job.runs != 3 {
		t.Errorf("expected 3 runs, got %d", job.runs)
	}
}

func TestExecuteJobWithRetry_AllFail(t *testing.T) {
	s := NewScheduler(testLogger(), nil).WithRetryDelays(time.Millisecond)
	job := &countingJob{failures: 100, done: make(chan struct{}), stopAt: -1}

	attempts, err := s.executeJobWithRetry(context.Background(), job)
	if err == nil {
		t.Fatal("expected error")
	}
	if len(attempts) != 2 {
		t.Errorf("expected 2 attempts, got %d", len(attempts))
	}
}

func TestScheduler_AlertsOnFinalFailureAndStops(t *testing.T) {
	alerter := &fakeAlerter{}
	s := NewScheduler(testLogger(), alerter).WithRetryDelays(time.Millisecond)
	job := &countingJob{failures: 100, done: make(chan struct{}), stopAt: 3}
	s.Register(job)

	ctx, cancel := context.WithCancel(context.Background())
	finished := make(chan error, 1)
	go func() { finished <- s.Start(ctx) }()

	select {
	case <-job.done:
	case <-time.After(2 * time.Second):
		t.Fatal("job did not run")
	}
	cancel()

	select {
	case err := <-finished:
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop")
	}

	alerter.mu.Lock()
	defer alerter.mu.Unlock()
	if len(alerter.messages) == 0 {
		t.Fatal("expected alert after retries exhausted")
	}
	if !strings.Contains(alerter.messages[0], "Джоба: counting") {
		t.Errorf("unexpected alert %q", alerter.messages[0])
	}
}

type fixedSizeIndex int

func (f fixedSizeIndex) Len() int { return int(f) }

func TestRequestIndexStats(t *testing.T) {
	reg := prometheus.NewRegistry()
	job := NewRequestIndexStats(fixedSizeIndex(3), metrics.New(reg), time.Minute, testLogger())
	now := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

	if job.Name() != "request-index-stats" {
		t.Errorf("unexpected name %s", job.Name())
	}
	if got := job.NextRun(now); !got.Equal(now.Add(time.Minute)) {
		t.Errorf("unexpected next run %v", got)
	}
	if err := job.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	families, err := reg.Gather()
	if err != nil {
		t.Fatal(err)
	}
	var got float64 = -1
	for _, mf := range families {
		if mf.GetName() == "autoservice_request_index_entries" {
			got = mf.GetMetric()[0].GetGauge().GetValue()
		}
	}
	if got != 3 {
		t.Fatalf("index gauge = %v, want 3", got)
	}
}

func TestRequestIndexStats_NilMetrics(t *testing.T) {
	job := NewRequestIndexStats(fixedSizeIndex(1), nil, 0, testLogger())
	if err := job.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := job.NextRun(time.Time{}); !got.Equal(time.Time{}.Add(time.Minute)) {
		t.Errorf("default interval not applied: %v", got)
	}
}
