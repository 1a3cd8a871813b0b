package deferred

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskRunsOnceAfterDelay(t *testing.T) {
	var runs atomic.Int32
	start := time.Now()
	task := New(20*time.Millisecond, func() (int, error) {
		runs.Add(1)
		return 7, nil
	})

	assert.False(t, task.Started())
	require.NoError(t, task.Start())
	assert.ErrorIs(t, task.Start(), ErrAlreadyStarted)
	assert.True(t, task.Started())

	got, err := task.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, got)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	assert.Equal(t, int32(1), runs.Load())
}

func TestTaskWaitContextDoesNotCancelEffect(t *testing.T) {
	applied := make(chan struct{})
	task := New(30*time.Millisecond, func() (struct{}, error) {
		close(applied)
		return struct{}{}, nil
	})
	require.NoError(t, task.Start())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
	defer cancel()
	_, err := task.Wait(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	select {
	case <-applied:
	case <-time.After(time.Second):
		t.Fatal("effect was not applied")
	}
	<-task.Done()
}

func TestTaskPropagatesError(t *testing.T) {
	boom := errors.New("boom")
	task := New(0, func() (string, error) { return "", boom })
	require.NoError(t, task.Start())
	_, err := task.Wait(context.Background())
	assert.ErrorIs(t, err, boom)
}
