package scheduler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/mikestefanello/backlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mrlokans/buzzwords/internal/config"
	"github.com/mrlokans/buzzwords/internal/tasks"
)

type fakeEnqueuer struct {
	mu      sync.Mutex
	batches [][]backlite.Task
	err     error
}

func (f *fakeEnqueuer) Enqueue(batch ...backlite.Task) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.batches = append(f.batches, batch)
	ids := make([]string, len(batch))
	for i := range batch {
		ids[i] = "task-" + string(rune('a'+i))
	}
	return ids, nil
}

func TestValidateSchedule(t *testing.T) {
	assert.NoError(t, ValidateSchedule("0 3 * * *"))
	assert.NoError(t, ValidateSchedule("*/5 * * * *"))
	assert.Error(t, ValidateSchedule("every day"))
	assert.Error(t, ValidateSchedule("0 0 3 * * *"))
}

func TestMaintenanceScheduler_RunNow(t *testing.T) {
	t.Run("with audit cleanup", func(t *testing.T) {
		enqueuer := &fakeEnqueuer{}
		s := NewMaintenanceScheduler(enqueuer,
			config.Maintenance{Enabled: true, Schedule: "0 3 * * *"},
			config.Audit{Enabled: true, RetentionDays: 14},
			zap.NewNop())

		ids := s.RunNow()
		assert.Len(t, ids, 2)
		require.Len(t, enqueuer.batches, 1)
		assert.Equal(t, []backlite.Task{
			tasks.SweepOrphanBookmarksTask{},
			tasks.CleanupAuditEventsTask{RetentionDays: 14},
		}, enqueuer.batches[0])
	})

	t.Run("without audit", func(t *testing.T) {
		enqueuer := &fakeEnqueuer{}
		s := NewMaintenanceScheduler(enqueuer, config.Maintenance{Schedule: "0 3 * * *"}, config.Audit{}, nil)

		s.RunNow()
		require.Len(t, enqueuer.batches, 1)
		assert.Equal(t, []backlite.Task{tasks.SweepOrphanBookmarksTask{}}, enqueuer.batches[0])
	})

	t.Run("enqueue failure", func(t *testing.T) {
		s := NewMaintenanceScheduler(&fakeEnqueuer{err: errors.New("db locked")},
			config.Maintenance{Schedule: "0 3 * * *"}, config.Audit{}, nil)
		assert.Nil(t, s.RunNow())
	})
}

func TestMaintenanceScheduler_StartStop(t *testing.T) {
	s := NewMaintenanceScheduler(&fakeEnqueuer{}, config.Maintenance{Schedule: "0 3 * * *"}, config.Audit{}, nil)

	assert.Nil(t, s.NextRun())
	require.NoError(t, s.Start(context.Background()))
	assert.True(t, s.IsRunning())

	next := s.NextRun()
	require.NotNil(t, next)
	assert.Equal(t, 3, next.Hour())
	assert.Equal(t, 0, next.Minute())

	// Starting twice is a no-op.
	require.NoError(t, s.Start(context.Background()))

	s.Stop()
	assert.False(t, s.IsRunning())
	assert.Nil(t, s.NextRun())
}

func TestMaintenanceScheduler_StopsOnContextCancel(t *testing.T) {
	s := NewMaintenanceScheduler(&fakeEnqueuer{}, config.Maintenance{Schedule: "0 3 * * *"}, config.Audit{}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, s.Start(ctx))
	cancel()

	assert.Eventually(t, func() bool { return !s.IsRunning() }, 2*time.Second, 10*time.Millisecond)
}

func TestMaintenanceScheduler_InvalidSchedule(t *testing.T) {
	s := NewMaintenanceScheduler(&fakeEnqueuer{}, config.Maintenance{Schedule: "nonsense"}, config.Audit{}, nil)
	assert.Error(t, s.Start(context.Background()))
	assert.False(t, s.IsRunning())
}
