// Package scheduler runs periodic jobs such as aggregate reconciliation.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler is a cron-like job scheduler.
type Scheduler struct {
	*cron.Cron
	log *slog.Logger
}

// cronLogger adapts slog to the cron logger interface.
type cronLogger struct {
	logger *slog.Logger
}

// Info logs routine messages about cron's operation.
func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(msg, keysAndValues...)
}

// Error logs an error condition.
func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, append(keysAndValues, "error", err)...)
}

// New returns a Scheduler that logs through logger. Jobs that are still
// running when their next tick fires are skipped.
func New(logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "cron")
	cl := cronLogger{logger}
	return &Scheduler{
		log: logger,
		Cron: cron.New(
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
	}
}

// Shutdown waits up to 30 seconds for running jobs to finish.
func (s *Scheduler) Shutdown() {
	ctx, cancel := context.WithTimeout(s.Cron.Stop(), 30*time.Second)
	defer cancel()
	<-ctx.Done()
}

// AddFunc adds a job to the Scheduler.
func (s *Scheduler) AddFunc(schedule string, fn func()) (int, error) {
	id, err := s.Cron.AddFunc(schedule, fn)
	return int(id), err
}

// AddJob schedules fn with a fresh context bounded by timeout on every run.
func (s *Scheduler) AddJob(schedule string, timeout time.Duration, fn func(ctx context.Context) error) (int, error) {
	return s.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := fn(ctx); err != nil {
			s.log.Error("scheduled job failed", "schedule", schedule, "error", err)
		}
	})
}

// Remove removes a job from the Scheduler.
func (s *Scheduler) Remove(id int) {
	s.Cron.Remove(cron.EntryID(id))
}
