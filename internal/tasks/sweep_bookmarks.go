package tasks

import (
	"context"
	"fmt"
	"time"

	"github.com/mikestefanello/backlite"
	"go.uber.org/zap"
)

const QueueSweepOrphanBookmarks = "sweep_orphan_bookmarks"

// OrphanBookmarkSweeper finds and removes bookmarks whose word is gone.
type OrphanBookmarkSweeper interface {
	CountOrphans(ctx context.Context) (int64, error)
	DeleteOrphans(ctx context.Context) (int64, error)
}

// MaintenanceRecorder receives the outcome of maintenance runs.
type MaintenanceRecorder interface {
	LogMaintenance(action, description string, err error)
}

// SweepOrphanBookmarksTask removes bookmarks that reference deleted words.
// With DryRun set it only counts them.
type SweepOrphanBookmarksTask struct {
	DryRun bool `json:"dry_run"`
}

// Config returns the queue configuration for sweep tasks.
func (t SweepOrphanBookmarksTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        QueueSweepOrphanBookmarks,
		MaxAttempts: 3,
		Backoff:     time.Minute,
		Timeout:     2 * time.Minute,
		Retention: &backlite.Retention{
			Duration:   24 * time.Hour,
			OnlyFailed: false,
			Data:       &backlite.RetainData{OnlyFailed: true},
		},
	}
}

// SweepOrphanBookmarks counts or deletes orphan bookmarks and returns how
// many were affected.
func SweepOrphanBookmarks(ctx context.Context, sweeper OrphanBookmarkSweeper, dryRun bool) (int64, error) {
	if sweeper == nil {
		return 0, fmt.Errorf("orphan bookmark sweeper not configured")
	}
	if dryRun {
		n, err := sweeper.CountOrphans(ctx)
		if err != nil {
			return 0, fmt.Errorf("count orphan bookmarks: %w", err)
		}
		return n, nil
	}
	n, err := sweeper.DeleteOrphans(ctx)
	if err != nil {
		return 0, fmt.Errorf("sweep orphan bookmarks: %w", err)
	}
	return n, nil
}

// SweepOrphanBookmarksProcessor creates a processor function for SweepOrphanBookmarksTask.
func SweepOrphanBookmarksProcessor(sweeper OrphanBookmarkSweeper, recorder MaintenanceRecorder, logger *zap.Logger) backlite.QueueProcessor[SweepOrphanBookmarksTask] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(ctx context.Context, task SweepOrphanBookmarksTask) error {
		n, err := SweepOrphanBookmarks(ctx, sweeper, task.DryRun)
		if recorder != nil {
			recorder.LogMaintenance(QueueSweepOrphanBookmarks, sweepDescription(n, task.DryRun), err)
		}
		if err != nil {
			return err
		}

		logger.Info("orphan bookmark sweep finished",
			zap.Int64("bookmarks", n),
			zap.Bool("dry_run", task.DryRun))
		return nil
	}
}

// NewSweepOrphanBookmarksQueue creates a backlite queue for sweep tasks.
func NewSweepOrphanBookmarksQueue(sweeper OrphanBookmarkSweeper, recorder MaintenanceRecorder, logger *zap.Logger) backlite.Queue {
	return backlite.NewQueue(SweepOrphanBookmarksProcessor(sweeper, recorder, logger))
}

func sweepDescription(n int64, dryRun bool) string {
	if dryRun {
		return fmt.Sprintf("found %d orphan bookmarks", n)
	}
	return fmt.Sprintf("removed %d orphan bookmarks", n)
}
