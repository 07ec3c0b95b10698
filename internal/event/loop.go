// Package event provides the single-threaded game event loop and the typed
// hook chains that game features register against.
package event

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

const defaultQueueSize = 1024

// Loop serializes all game event handling onto one goroutine.
// Network readers and timers hand work to it via Post; handlers running on
// the loop may touch session state without locking.
type Loop struct {
	tasks    chan func()
	stopCh   chan struct{}
	stopOnce sync.Once
	doneCh   chan struct{}
}

// NewLoop creates a loop with the given task queue capacity.
func NewLoop(queueSize int) *Loop {
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}
	return &Loop{
		tasks:  make(chan func(), queueSize),
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
	}
}

// Start runs queued tasks until ctx is canceled or Stop is called.
func (l *Loop) Start(ctx context.Context) error {
	defer close(l.doneCh)

	slog.Info("event loop started", "queue", cap(l.tasks))

	for {
		select {
		case <-ctx.Done():
			slog.Info("event loop stopping")
			return ctx.Err()

		case <-l.stopCh:
			slog.Info("event loop stopped")
			return nil

		case fn := <-l.tasks:
			fn()
		}
	}
}

// Stop stops the loop. Pending tasks are discarded.
// Safe to call multiple times.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() { close(l.stopCh) })
}

// Post queues fn to run on the loop goroutine.
// Blocks while the queue is full; returns false once the loop has exited.
func (l *Loop) Post(fn func()) bool {
	select {
	case <-l.doneCh:
		return false
	default:
	}

	select {
	case l.tasks <- fn:
		return true
	case <-l.doneCh:
		return false
	}
}

// CallLater runs fn on the loop after delay.
// Fire-and-forget: no handle is returned and the call cannot be canceled.
// Even with zero delay fn never runs inside the caller's stack frame.
func (l *Loop) CallLater(delay time.Duration, fn func()) {
	time.AfterFunc(delay, func() {
		if !l.Post(fn) {
			slog.Debug("timer fired after event loop exit, dropped", "delay", delay)
		}
	})
}
