// Package scheduler runs periodic maintenance for the server.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron"
)

const sweepTimeout = time.Minute

// sessionSweeper deletes expired sessions.
type sessionSweeper interface {
	CleanupExpiredSessions(ctx context.Context) (int64, error)
}

// Scheduler owns the gocron scheduler and its jobs.
type Scheduler struct {
	cron     *gocron.Scheduler
	sessions sessionSweeper
	log      *slog.Logger
}

// New creates a Scheduler. Nothing runs until Start.
func New(sessions sessionSweeper, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		cron:     gocron.NewScheduler(time.UTC),
		sessions: sessions,
		log:      logger.With("component", "scheduler"),
	}
}

// Start schedules the session sweep every interval and starts the scheduler
// in the background. A zero interval disables the sweep.
func (s *Scheduler) Start(interval time.Duration) error {
	if interval <= 0 {
		s.log.Info("session sweep disabled")
		return nil
	}

	if _, err := s.cron.Every(interval).SingletonMode().Do(s.SweepSessions); err != nil {
		return fmt.Errorf("scheduler: schedule session sweep: %w", err)
	}
	s.cron.StartAsync()

	s.log.Info("scheduler started", slog.Duration("session_sweep_interval", interval))
	return nil
}

// Stop waits for running jobs and stops the scheduler.
func (s *Scheduler) Stop() {
	if s.cron.IsRunning() {
		s.cron.Stop()
	}
}

// SweepSessions runs one sweep. Failures are logged; the next tick retries.
func (s *Scheduler) SweepSessions() {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	if _, err := s.sessions.CleanupExpiredSessions(ctx); err != nil {
		s.log.ErrorContext(ctx, "session sweep failed", slog.String("error", err.Error()))
	}
}
