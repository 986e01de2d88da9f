package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPeriodicTask(t *testing.T) {
	var counter int32

	task := func(ctx context.Context) {
		atomic.AddInt32(&counter, 1)
	}

	s := New(100*time.Millisecond, task)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s.Start(ctx, true)
	assert.True(t, s.IsRunning())

	// Wait for 3 executions
	time.Sleep(350 * time.Millisecond)

	s.Stop()
	assert.False(t, s.IsRunning())

	assert.GreaterOrEqual(t, atomic.LoadInt32(&counter), int32(3))

	// Verify the counter doesn't move after stop
	finalCount := atomic.LoadInt32(&counter)
	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, finalCount, atomic.LoadInt32(&counter))
}

func TestTriggerNow_RunsTaskOutsideInterval(t *testing.T) {
	var counter int32
	s := New(time.Hour, func(ctx context.Context) {
		atomic.AddInt32(&counter, 1)
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s.Start(ctx, false)
	defer s.Stop()

	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, int32(0), atomic.LoadInt32(&counter))

	s.TriggerNow()

	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&counter) == 1
	}, time.Second, 10*time.Millisecond)

	// A single trigger runs the task exactly once
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(1), atomic.LoadInt32(&counter))
}

func TestTriggerNow_NoopWhenStopped(t *testing.T) {
	var counter int32
	s := New(time.Hour, func(ctx context.Context) {
		atomic.AddInt32(&counter, 1)
	})

	s.TriggerNow() // not running, must not panic or queue

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s.Start(ctx, false)
	time.Sleep(50 * time.Millisecond)
	s.Stop()

	assert.Equal(t, int32(0), atomic.LoadInt32(&counter))
}

func TestPeriodicTask_StopBeforeStart(t *testing.T) {
	s := New(100*time.Millisecond, func(ctx context.Context) {})
	s.Stop() // Should not panic
	assert.False(t, s.IsRunning())
}

func TestPeriodicTask_DoubleStart(t *testing.T) {
	var counter int32
	s := New(100*time.Millisecond, func(ctx context.Context) {
		atomic.AddInt32(&counter, 1)
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	s.Start(ctx, true)
	s.Start(ctx, true) // Second start should be ignored

	time.Sleep(150 * time.Millisecond)
	s.Stop()

	assert.GreaterOrEqual(t, atomic.LoadInt32(&counter), int32(1))
}

func TestPeriodicTask_ContextCancellation(t *testing.T) {
	var counter int32
	s := New(100*time.Millisecond, func(ctx context.Context) {
		atomic.AddInt32(&counter, 1)
	})

	ctx, cancel := context.WithCancel(context.Background())

	s.Start(ctx, true)
	assert.True(t, s.IsRunning())

	time.Sleep(150 * time.Millisecond)
	assert.Greater(t, atomic.LoadInt32(&counter), int32(0))

	cancel()
	s.Stop()

	finalCount := atomic.LoadInt32(&counter)
	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, finalCount, atomic.LoadInt32(&counter))
	assert.False(t, s.IsRunning())
}

func TestPeriodicTask_ImmediateExecution(t *testing.T) {
	t.Run("With immediate execution", func(t *testing.T) {
		var counter int32
		s := New(100*time.Millisecond, func(ctx context.Context) {
			atomic.AddInt32(&counter, 1)
		})

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		s.Start(ctx, true)

		time.Sleep(10 * time.Millisecond)
		assert.Equal(t, int32(1), atomic.LoadInt32(&counter))

		s.Stop()
	})

	t.Run("Without immediate execution", func(t *testing.T) {
		var counter int32
		s := New(100*time.Millisecond, func(ctx context.Context) {
			atomic.AddInt32(&counter, 1)
		})

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		s.Start(ctx, false)

		time.Sleep(10 * time.Millisecond)
		assert.Equal(t, int32(0), atomic.LoadInt32(&counter))

		time.Sleep(100 * time.Millisecond)
		assert.Equal(t, int32(1), atomic.LoadInt32(&counter))

		s.Stop()
	})
}
