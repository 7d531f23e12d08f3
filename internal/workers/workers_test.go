package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elibowlby/christmas-list-app/internal/config"
	"github.com/elibowlby/christmas-list-app/internal/logger"
)

// mockDigestService implements service.DigestService for unit tests.
type mockDigestService struct {
	calls    atomic.Int64
	summoned chan struct{}
	err      error
}

func (m *mockDigestService) SendDailySummary(_ context.Context) (string, error) {
	m.calls.Add(1)
	select {
	case m.summoned <- struct{}{}:
	default:
	}
	if m.err != nil {
		return "", m.err
	}
	return "Daily summaries sent.", nil
}

func (m *mockDigestService) SendRosterDigest(_ context.Context, _ string) (string, error) {
	return "", nil
}

func TestDailyDigestWorker_RunsOnTicker(t *testing.T) {
	digest := &mockDigestService{summoned: make(chan struct{}, 1)}
	w := NewDailyDigestWorker(digest, config.Workers{DailySummaryInterval: 5 * time.Millisecond}, logger.Nop())

	w.Start(context.Background())
	defer w.Stop()

	select {
	case <-digest.summoned:
	case <-time.After(time.Second):
		t.Fatal("digest service was never invoked")
	}
}

func TestDailyDigestWorker_StopHaltsRuns(t *testing.T) {
	digest := &mockDigestService{summoned: make(chan struct{}, 1)}
	w := NewDailyDigestWorker(digest, config.Workers{DailySummaryInterval: 5 * time.Millisecond}, logger.Nop())

	w.Start(context.Background())

	select {
	case <-digest.summoned:
	case <-time.After(time.Second):
		t.Fatal("digest service was never invoked")
	}

	w.Stop()
	callsAfterStop := digest.calls.Load()
	time.Sleep(30 * time.Millisecond)

	assert.Equal(t, callsAfterStop, digest.calls.Load())
}

func TestDailyDigestWorker_ZeroIntervalDisables(t *testing.T) {
	digest := &mockDigestService{summoned: make(chan struct{}, 1)}
	w := NewDailyDigestWorker(digest, config.Workers{}, logger.Nop())

	w.Start(context.Background())
	defer w.Stop()

	time.Sleep(30 * time.Millisecond)
	assert.Zero(t, digest.calls.Load())
}

func TestDailyDigestWorker_KeepsRunningAfterError(t *testing.T) {
	digest := &mockDigestService{summoned: make(chan struct{}, 1), err: errors.New("mail provider down")}
	w := NewDailyDigestWorker(digest, config.Workers{DailySummaryInterval: 5 * time.Millisecond}, logger.Nop())

	w.Start(context.Background())
	defer w.Stop()

	select {
	case <-digest.summoned:
	case <-time.After(time.Second):
		t.Fatal("digest service was never invoked")
	}
	select {
	case <-digest.summoned:
	case <-time.After(time.Second):
		t.Fatal("worker stopped after the first failing run")
	}

	require.GreaterOrEqual(t, digest.calls.Load(), int64(2))
}
