package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/fit-tracker/internal/logger"
)

type sessionRefreshJob struct {
	session SessionService
	logger  *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSessionRefreshJob creates a [RefreshJob] that calls session.Refresh on a
// ticker, keeping the access token fresh while the client runs. The job is
// idle until Start is called.
func NewSessionRefreshJob(session SessionService, logger *logger.Logger) RefreshJob {
	return &sessionRefreshJob{session: session, logger: logger}
}

// Start implements RefreshJob. It stops any previously running job, then
// launches a background goroutine that refreshes every interval. If interval
// is zero or negative it defaults to 10 minutes. The goroutine exits when ctx
// is cancelled, Stop is called, or the session becomes unrefreshable.
func (j *sessionRefreshJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 10 * time.Minute
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if err := j.session.Refresh(jobCtx); err != nil {
					if errors.Is(err, ErrAuthentication) {
						// The session is gone; nothing left to refresh.
						j.logger.Info().Str("func", "sessionRefreshJob").Msg("session expired, stopping background refresh")
						return
					}
					j.logger.Warn().Err(err).Str("func", "sessionRefreshJob").Msg("background refresh failed")
				}
			}
		}
	}()
}

// Stop implements RefreshJob. It cancels the background goroutine's context
// and blocks until the goroutine has fully exited. Safe to call when the job
// is not running (no-op in that case).
func (j *sessionRefreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
