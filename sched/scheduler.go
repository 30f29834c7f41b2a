// Package sched implements the cooperative task scheduler that bridges the
// render thread and background work.
//
// Three independent queues, each behind its own lock:
//
//   - sync: callbacks drained on the render thread, once per frame tick
//   - async: fire-and-forget callbacks drained by a background loop
//   - delayed: callbacks drained on the render tick once their delay elapsed
//
// Queue swap-and-clear is the only critical section; callbacks never run
// under a lock, so a task may safely enqueue further tasks.
package sched

import (
	"sync"
	"time"

	"github.com/lattice-ui/lattice/internal/logging"
)

// Task is a queued callback.
type Task func()

// DelayID identifies a delayed task for cancellation. IDs are strictly
// increasing and never reused.
type DelayID uint64

// Config configures a Scheduler.
type Config struct {
	// Now is the time source. Injectable for tests; defaults to time.Now.
	Now func() time.Time

	// TickInterval is how long the background loop sleeps between drains
	// of the async queue. It trades dispatch latency for CPU usage and is
	// fixed for the scheduler's lifetime.
	TickInterval time.Duration
}

// DefaultConfig returns the production configuration.
func DefaultConfig() Config {
	return Config{
		Now:          time.Now,
		TickInterval: 500 * time.Millisecond,
	}
}

type delayedTask struct {
	id    DelayID
	start time.Time
	delay time.Duration
	fn    Task
}

// Scheduler owns the three task queues. One instance per application; the
// render loop calls PerformSyncTasks every frame and Start/Stop bracket the
// background loop.
type Scheduler struct {
	now          func() time.Time
	tickInterval time.Duration

	syncMu    sync.Mutex
	syncTasks []Task

	asyncMu    sync.Mutex
	asyncTasks []Task

	delayMu     sync.Mutex
	delayTasks  []delayedTask
	delayIndex  DelayID
	delayCancel map[DelayID]struct{}

	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
	started  bool
}

// New creates a scheduler. The background loop is not running until Start.
func New(cfg Config) *Scheduler {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = DefaultConfig().TickInterval
	}
	return &Scheduler{
		now:          cfg.Now,
		tickInterval: cfg.TickInterval,
		delayCancel:  make(map[DelayID]struct{}),
		stop:         make(chan struct{}),
		done:         make(chan struct{}),
	}
}

// Sync enqueues fn for execution on the render thread during the next
// PerformSyncTasks. Safe to call from any goroutine.
func (s *Scheduler) Sync(fn Task) {
	s.syncMu.Lock()
	s.syncTasks = append(s.syncTasks, fn)
	s.syncMu.Unlock()
}

// Async enqueues fn for execution on the background loop. Async tasks must
// not touch the view tree without their own synchronization; hand results
// back through Sync.
func (s *Scheduler) Async(fn Task) {
	s.asyncMu.Lock()
	s.asyncTasks = append(s.asyncTasks, fn)
	s.asyncMu.Unlock()
}

// Delay schedules fn to run on the render thread once the delay has
// elapsed, checked at each PerformSyncTasks. Returns an identifier for
// CancelDelay.
func (s *Scheduler) Delay(delay time.Duration, fn Task) DelayID {
	s.delayMu.Lock()
	defer s.delayMu.Unlock()
	s.delayIndex++
	s.delayTasks = append(s.delayTasks, delayedTask{
		id:    s.delayIndex,
		start: s.now(),
		delay: delay,
		fn:    fn,
	})
	return s.delayIndex
}

// CancelDelay marks a delayed task for one-shot cancellation: if the task
// has not run yet it is dropped the next time it is dequeued, and the mark
// is consumed. Cancelling an already-executed task has no effect. Best
// effort and non-blocking: a task already in progress cannot be aborted.
func (s *Scheduler) CancelDelay(id DelayID) {
	s.delayMu.Lock()
	s.delayCancel[id] = struct{}{}
	s.delayMu.Unlock()
}

// runIsolated executes one task, converting a panic into a log entry so a
// failing task never aborts the tick or drops sibling tasks.
func runIsolated(phase string, fn Task) {
	defer func() {
		if r := recover(); r != nil {
			logging.Logger().Error("task failed", "phase", phase, "error", r)
		}
	}()
	fn()
}

// PerformSyncTasks drains the sync queue, then walks the delayed queue:
// cancelled tasks are dropped, elapsed tasks run, pending tasks are
// re-enqueued for the next tick. Must be called from the render thread,
// once per frame.
func (s *Scheduler) PerformSyncTasks() {
	s.syncMu.Lock()
	tasks := s.syncTasks
	s.syncTasks = nil
	s.syncMu.Unlock()

	for _, fn := range tasks {
		runIsolated("sync", fn)
	}

	s.delayMu.Lock()
	delayed := s.delayTasks
	s.delayTasks = nil
	s.delayMu.Unlock()

	for _, d := range delayed {
		s.delayMu.Lock()
		if _, cancelled := s.delayCancel[d.id]; cancelled {
			delete(s.delayCancel, d.id)
			s.delayMu.Unlock()
			continue
		}
		s.delayMu.Unlock()

		if s.now().Sub(d.start) >= d.delay {
			runIsolated("delay", d.fn)
			continue
		}

		s.delayMu.Lock()
		s.delayTasks = append(s.delayTasks, d)
		s.delayMu.Unlock()
	}
}

// Start launches the background loop draining the async queue.
func (s *Scheduler) Start() {
	if s.started {
		return
	}
	s.started = true
	go s.taskLoop()
}

// taskLoop drains the async queue until Stop is called.
func (s *Scheduler) taskLoop() {
	defer close(s.done)
	ticker := time.NewTicker(s.tickInterval)
	defer ticker.Stop()

	for {
		s.drainAsync()
		select {
		case <-s.stop:
			// Final drain so tasks enqueued before Stop still run.
			s.drainAsync()
			return
		case <-ticker.C:
		}
	}
}

func (s *Scheduler) drainAsync() {
	s.asyncMu.Lock()
	tasks := s.asyncTasks
	s.asyncTasks = nil
	s.asyncMu.Unlock()

	for _, fn := range tasks {
		runIsolated("async", fn)
	}
}

// Stop signals the background loop to exit and blocks until it has.
// Safe to call more than once; a no-op if Start was never called.
func (s *Scheduler) Stop() {
	if !s.started {
		return
	}
	s.stopOnce.Do(func() {
		close(s.stop)
	})
	<-s.done
}
