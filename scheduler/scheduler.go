package scheduler

import (
	"context"
	"sync"
	"time"
)

// Scheduler runs a background task at a fixed interval. On top of the
// ticker, TriggerNow forces an immediate extra run, which the refresh
// controller uses for its manual retry action.
type Scheduler struct {
	interval time.Duration
	task     func(context.Context)
	trigger  chan struct{}
	wg       sync.WaitGroup
	mu       sync.Mutex
	running  bool
	cancel   context.CancelFunc
}

// New creates a new Scheduler instance
func New(interval time.Duration, task func(context.Context)) *Scheduler {
	return &Scheduler{
		interval: interval,
		task:     task,
		trigger:  make(chan struct{}, 1),
	}
}

// Start begins executing the task at the configured interval. The returned
// goroutine stops when Stop is called or ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context, firstRunImmediately bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return
	}

	ctx, s.cancel = context.WithCancel(ctx)
	s.running = true

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		if firstRunImmediately {
			s.task(ctx)
		}

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.task(ctx)
			case <-s.trigger:
				s.task(ctx)
			case <-ctx.Done():
				return
			}
		}
	}()
}

// TriggerNow requests one immediate task run outside the regular interval.
// Coalesces if a trigger is already pending; no-op when not running.
func (s *Scheduler) TriggerNow() {
	s.mu.Lock()
	running := s.running
	s.mu.Unlock()

	if !running {
		return
	}

	select {
	case s.trigger <- struct{}{}:
	default:
	}
}

// Stop terminates the periodic task execution deterministically
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}

	if s.cancel != nil {
		s.cancel()
	}
	s.wg.Wait()
	s.running = false
}

// IsRunning returns true if the scheduler is currently running
func (s *Scheduler) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}
