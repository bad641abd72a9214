package tasks

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSweeper struct {
	orphans int64
	err     error
	deleted bool
	counted bool
}

func (f *fakeSweeper) CountOrphans(ctx context.Context) (int64, error) {
	f.counted = true
	return f.orphans, f.err
}

func (f *fakeSweeper) DeleteOrphans(ctx context.Context) (int64, error) {
	f.deleted = true
	return f.orphans, f.err
}

type recordedRun struct {
	action      string
	description string
	err         error
}

type fakeRecorder struct {
	runs []recordedRun
}

func (f *fakeRecorder) LogMaintenance(action, description string, err error) {
	f.runs = append(f.runs, recordedRun{action: action, description: description, err: err})
}

type fakeCleaner struct {
	retention time.Duration
	deleted   int64
}

func (f *fakeCleaner) DeleteOldEvents(ctx context.Context, retention time.Duration) (int64, error) {
	f.retention = retention
	return f.deleted, nil
}

func TestSweepOrphanBookmarks(t *testing.T) {
	t.Run("dry run only counts", func(t *testing.T) {
		sweeper := &fakeSweeper{orphans: 4}
		n, err := SweepOrphanBookmarks(context.Background(), sweeper, true)
		require.NoError(t, err)
		assert.Equal(t, int64(4), n)
		assert.True(t, sweeper.counted)
		assert.False(t, sweeper.deleted)
	})

	t.Run("deletes", func(t *testing.T) {
		sweeper := &fakeSweeper{orphans: 2}
		n, err := SweepOrphanBookmarks(context.Background(), sweeper, false)
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)
		assert.True(t, sweeper.deleted)
	})

	t.Run("nil sweeper", func(t *testing.T) {
		_, err := SweepOrphanBookmarks(context.Background(), nil, false)
		assert.Error(t, err)
	})
}

func TestSweepOrphanBookmarksProcessor(t *testing.T) {
	recorder := &fakeRecorder{}
	process := SweepOrphanBookmarksProcessor(&fakeSweeper{orphans: 3}, recorder, zap.NewNop())

	require.NoError(t, process(context.Background(), SweepOrphanBookmarksTask{}))
	require.Len(t, recorder.runs, 1)
	assert.Equal(t, QueueSweepOrphanBookmarks, recorder.runs[0].action)
	assert.Equal(t, "removed 3 orphan bookmarks", recorder.runs[0].description)
	assert.NoError(t, recorder.runs[0].err)

	failing := SweepOrphanBookmarksProcessor(&fakeSweeper{err: errors.New("boom")}, recorder, nil)
	assert.Error(t, failing(context.Background(), SweepOrphanBookmarksTask{DryRun: true}))
	require.Len(t, recorder.runs, 2)
	assert.Error(t, recorder.runs[1].err)
}

func TestSweepOrphanBookmarksTaskConfig(t *testing.T) {
	cfg := SweepOrphanBookmarksTask{}.Config()

	assert.Equal(t, QueueSweepOrphanBookmarks, cfg.Name)
	assert.Equal(t, 3, cfg.MaxAttempts)
	assert.Equal(t, 2*time.Minute, cfg.Timeout)
	assert.NotNil(t, cfg.Retention)
}

func TestCleanupAuditEventsProcessor(t *testing.T) {
	cleaner := &fakeCleaner{deleted: 7}
	process := CleanupAuditEventsProcessor(cleaner, zap.NewNop())

	require.NoError(t, process(context.Background(), CleanupAuditEventsTask{RetentionDays: 7}))
	assert.Equal(t, 7*24*time.Hour, cleaner.retention)

	require.NoError(t, process(context.Background(), CleanupAuditEventsTask{}))
	assert.Equal(t, 30*24*time.Hour, cleaner.retention)

	assert.Error(t, CleanupAuditEventsProcessor(nil, nil)(context.Background(), CleanupAuditEventsTask{}))
}
