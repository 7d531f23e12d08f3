// SPDX-License-Identifier: Apache-2.0

// Package workers runs the in-process background jobs of the server.
// The only job today is the daily-digest ticker, which periodically asks the
// digest service to mail each member the items added since the last window.
package workers

import (
	"context"
	"sync"
	"time"

	"github.com/elibowlby/christmas-list-app/internal/config"
	"github.com/elibowlby/christmas-list-app/internal/logger"
	"github.com/elibowlby/christmas-list-app/internal/service"
)

// Worker is the lifecycle contract for a background job. Start is
// non-blocking; Stop cancels the job and waits for it to exit.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}

type dailyDigestWorker struct {
	digestService service.DigestService
	interval      time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewDailyDigestWorker creates a worker that calls SendDailySummary on a
// ticker. A zero or negative interval disables the worker entirely, leaving
// the digest triggerable only via its HTTP endpoint.
func NewDailyDigestWorker(digestService service.DigestService, cfg config.Workers, logger *logger.Logger) Worker {
	return &dailyDigestWorker{
		digestService: digestService,
		interval:      cfg.DailySummaryInterval,
		logger:        logger,
	}
}

// Start launches the background goroutine. It stops any previously running
// instance first. The goroutine exits when ctx is cancelled or Stop is called.
func (w *dailyDigestWorker) Start(ctx context.Context) {
	if w.interval <= 0 {
		w.logger.Info().Msg("daily digest worker disabled")
		return
	}

	w.Stop()

	w.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	w.logger.Info().Dur("interval", w.interval).Msg("daily digest worker started")

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(w.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				w.logger.Info().Msg("daily digest worker stopped")
				return
			case <-t.C:
				w.runOnce(jobCtx)
			}
		}
	}()
}

// Stop cancels the background goroutine and blocks until it has fully
// exited. Safe to call when the worker is not running.
func (w *dailyDigestWorker) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}

func (w *dailyDigestWorker) runOnce(ctx context.Context) {
	message, err := w.digestService.SendDailySummary(ctx)
	if err != nil {
		w.logger.Err(err).Str("func", "*dailyDigestWorker.runOnce").Msg("daily digest run failed")
		return
	}

	w.logger.Info().Str("result", message).Msg("daily digest run finished")
}

// Workers aggregates all background jobs of the server so main can start
// and stop them as a unit.
type Workers struct {
	DailyDigest Worker
}

func NewWorkers(services *service.Services, cfg config.Workers, logger *logger.Logger) *Workers {
	return &Workers{
		DailyDigest: NewDailyDigestWorker(services.DigestService, cfg, logger),
	}
}

// Start launches every job. Non-blocking.
func (w *Workers) Start(ctx context.Context) {
	w.DailyDigest.Start(ctx)
}

// Stop shuts every job down and waits for them to exit.
func (w *Workers) Stop() {
	w.DailyDigest.Stop()
}
