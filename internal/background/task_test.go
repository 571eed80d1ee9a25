package background

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobdesk-utils/internal/config"
)

func TestInMemoryTaskStore_RoundTrip(t *testing.T) {
	store := NewInMemoryTaskStore()
	ctx := context.Background()

	result := &TaskResult{
		ProcessID: "p1",
		Type:      TaskTypeParse,
		Status:    TaskStatusAccepted,
		CreatedAt: time.Now(),
	}

	require.NoError(t, store.Store(ctx, result))

	got, err := store.Get(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, TaskStatusAccepted, got.Status)

	got.Status = TaskStatusSuccess
	require.NoError(t, store.Update(ctx, got))

	updated, err := store.Get(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, TaskStatusSuccess, updated.Status)

	require.NoError(t, store.Delete(ctx, "p1"))
	_, err = store.Get(ctx, "p1")
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestInMemoryTaskStore_Cleanup(t *testing.T) {
	store := NewInMemoryTaskStore()
	ctx := context.Background()

	old := &TaskResult{
		ProcessID: "old",
		Type:      TaskTypeParse,
		Status:    TaskStatusSuccess,
		CreatedAt: time.Now().Add(-48 * time.Hour),
	}
	fresh := &TaskResult{
		ProcessID: "fresh",
		Type:      TaskTypeParse,
		Status:    TaskStatusSuccess,
		CreatedAt: time.Now(),
	}

	require.NoError(t, store.Store(ctx, old))
	require.NoError(t, store.Store(ctx, fresh))

	require.NoError(t, store.Cleanup(ctx, 24*time.Hour))

	_, err := store.Get(ctx, "old")
	assert.ErrorIs(t, err, ErrTaskNotFound)
	_, err = store.Get(ctx, "fresh")
	assert.NoError(t, err)
}

func TestTaskManager_SubmitAndComplete(t *testing.T) {
	cfg := &config.Config{}
	cfg.Workers.PoolSize = 2
	cfg.Workers.QueueSize = 10
	cfg.BackgroundTasks.TaskTimeout = 5 * time.Second
	cfg.BackgroundTasks.CleanupInterval = time.Hour
	cfg.BackgroundTasks.MaxTaskAge = 24 * time.Hour

	tm := NewTaskManager(cfg, nil)
	ctx := context.Background()
	require.NoError(t, tm.Start(ctx))
	defer tm.Stop(context.Background())

	err := tm.Submit(ctx, "p1", TaskTypeParse, map[string]interface{}{"engine": "llm"}, func(ctx context.Context) (interface{}, error) {
		return map[string]string{"title": "Engineer"}, nil
	})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		result, err := tm.GetTaskResult(ctx, "p1")
		return err == nil && result.Status == TaskStatusSuccess
	}, 2*time.Second, 10*time.Millisecond)

	result, err := tm.GetTaskResult(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, TaskTypeParse, result.Type)
	assert.Equal(t, map[string]string{"title": "Engineer"}, result.Data)
	assert.NotNil(t, result.CompletedAt)
	assert.NotNil(t, result.ProcessingTime)
	assert.Equal(t, "llm", result.Metadata["engine"])
}

func TestTaskManager_FailedTask(t *testing.T) {
	cfg := &config.Config{}
	cfg.Workers.PoolSize = 1
	cfg.Workers.QueueSize = 10

	tm := NewTaskManager(cfg, nil)
	ctx := context.Background()
	require.NoError(t, tm.Start(ctx))
	defer tm.Stop(context.Background())

	err := tm.Submit(ctx, "p2", TaskTypeEvaluate, nil, func(ctx context.Context) (interface{}, error) {
		return nil, errors.New("model exploded")
	})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		result, err := tm.GetTaskResult(ctx, "p2")
		return err == nil && result.Status == TaskStatusFailure
	}, 2*time.Second, 10*time.Millisecond)

	result, err := tm.GetTaskResult(ctx, "p2")
	require.NoError(t, err)
	assert.Equal(t, "model exploded", result.Error)
	assert.Nil(t, result.Data)
}

func TestTaskManager_SubmitWhenStoppedFails(t *testing.T) {
	cfg := &config.Config{}
	tm := NewTaskManager(cfg, nil)
	ctx := context.Background()

	require.NoError(t, tm.Start(ctx))
	require.NoError(t, tm.Stop(ctx))

	err := tm.Submit(ctx, "p3", TaskTypeParse, nil, func(ctx context.Context) (interface{}, error) {
		return nil, nil
	})
	assert.Error(t, err)
}

func TestTaskManager_SubmitRacingStopDoesNotPanic(t *testing.T) {
	cfg := &config.Config{}
	cfg.Workers.PoolSize = 2
	cfg.Workers.QueueSize = 4

	tm := NewTaskManager(cfg, nil)
	ctx := context.Background()
	require.NoError(t, tm.Start(ctx))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_ = tm.Submit(ctx, fmt.Sprintf("race-%d", n), TaskTypeParse, nil, func(ctx context.Context) (interface{}, error) {
				return nil, nil
			})
		}(i)
	}

	stopCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, tm.Stop(stopCtx))
	wg.Wait()
}

func TestTaskManager_UnknownTask(t *testing.T) {
	cfg := &config.Config{}
	tm := NewTaskManager(cfg, nil)
	require.NoError(t, tm.Start(context.Background()))
	defer tm.Stop(context.Background())

	_, err := tm.GetTaskResult(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrTaskNotFound)
}
