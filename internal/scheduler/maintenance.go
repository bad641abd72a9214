// Package scheduler runs periodic maintenance on a cron schedule.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/mikestefanello/backlite"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/mrlokans/buzzwords/internal/config"
	"github.com/mrlokans/buzzwords/internal/tasks"
)

// Enqueuer accepts background tasks.
type Enqueuer interface {
	Enqueue(tasks ...backlite.Task) ([]string, error)
}

// MaintenanceScheduler enqueues the orphan bookmark sweep, and the audit
// retention cleanup when auditing is on, every time the schedule fires.
type MaintenanceScheduler struct {
	enqueuer Enqueuer
	schedule string
	audit    config.Audit
	logger   *zap.Logger

	cron       *cron.Cron
	entryID    cron.EntryID
	mu         sync.RWMutex
	isRunning  bool
	cancelFunc context.CancelFunc
}

func newParser() cron.Parser {
	return cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
}

// NewMaintenanceScheduler creates a new scheduler instance.
func NewMaintenanceScheduler(enqueuer Enqueuer, cfg config.Maintenance, auditCfg config.Audit, logger *zap.Logger) *MaintenanceScheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MaintenanceScheduler{
		enqueuer: enqueuer,
		schedule: cfg.Schedule,
		audit:    auditCfg,
		logger:   logger,
		cron:     cron.New(cron.WithParser(newParser())),
	}
}

// ValidateSchedule reports whether schedule is a five-field cron expression.
func ValidateSchedule(schedule string) error {
	if _, err := newParser().Parse(schedule); err != nil {
		return fmt.Errorf("invalid cron schedule %q: %w", schedule, err)
	}
	return nil
}

// Start registers the maintenance job and starts the cron loop. The
// scheduler stops itself when ctx is cancelled.
func (s *MaintenanceScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	if err := ValidateSchedule(s.schedule); err != nil {
		return err
	}

	entryID, err := s.cron.AddFunc(s.schedule, func() {
		s.RunNow()
	})
	if err != nil {
		return fmt.Errorf("failed to schedule maintenance job: %w", err)
	}
	s.entryID = entryID

	var cancelCtx context.Context
	cancelCtx, s.cancelFunc = context.WithCancel(ctx)

	s.cron.Start()
	s.isRunning = true

	s.logger.Info("maintenance scheduler started",
		zap.String("schedule", s.schedule),
		zap.Time("next_run", s.cron.Entry(entryID).Next))

	go func() {
		<-cancelCtx.Done()
		s.Stop()
	}()

	return nil
}

// Stop stops the cron loop and waits for a running job to finish.
func (s *MaintenanceScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	ctx := s.cron.Stop()
	<-ctx.Done()

	s.cron.Remove(s.entryID)
	if s.cancelFunc != nil {
		s.cancelFunc()
	}
	s.isRunning = false
	s.cancelFunc = nil

	s.logger.Info("maintenance scheduler stopped")
}

// RunNow enqueues the maintenance tasks immediately and returns their IDs.
func (s *MaintenanceScheduler) RunNow() []string {
	batch := []backlite.Task{tasks.SweepOrphanBookmarksTask{}}
	if s.audit.Enabled {
		batch = append(batch, tasks.CleanupAuditEventsTask{RetentionDays: s.audit.RetentionDays})
	}

	ids, err := s.enqueuer.Enqueue(batch...)
	if err != nil {
		s.logger.Error("failed to enqueue maintenance tasks", zap.Error(err))
		return nil
	}
	s.logger.Info("maintenance tasks enqueued", zap.Strings("task_ids", ids))
	return ids
}

// IsRunning returns whether the scheduler is active.
func (s *MaintenanceScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// NextRun returns when the job fires next, or nil when stopped.
func (s *MaintenanceScheduler) NextRun() *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isRunning {
		return nil
	}
	t := s.cron.Entry(s.entryID).Next
	return &t
}
