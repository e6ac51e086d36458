package tick

import (
	"container/heap"
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/bnema/actionitems/internal/domain"
	"github.com/bnema/actionitems/internal/ports"
)

// Scheduler is a cooperative, single-threaded tick scheduler. Tasks run on
// whichever goroutine calls Advance (or Run), one tick at a time.
type Scheduler struct {
	mu     sync.Mutex
	now    domain.Ticks
	seq    uint64
	queue  taskQueue
	logger *slog.Logger
}

var _ ports.Scheduler = (*Scheduler)(nil)

func New(logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{logger: logger}
}

// After schedules task to run delay ticks from now. Delays below one tick run
// on the next tick.
func (s *Scheduler) After(delay domain.Ticks, fn ports.Task) ports.TaskHandle {
	return s.push(&task{once: fn}, delay)
}

// Every runs task first after start ticks and then every period ticks until
// its handle is cancelled.
func (s *Scheduler) Every(start, period domain.Ticks, fn ports.RepeatingTask) ports.TaskHandle {
	if period < 1 {
		period = 1
	}
	return s.push(&task{repeat: fn, period: period}, start)
}

func (s *Scheduler) push(t *task, delay domain.Ticks) *task {
	if delay < 1 {
		delay = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	t.seq = s.seq
	t.fireAt = s.now + delay
	heap.Push(&s.queue, t)

	return t
}

// Now returns the number of ticks processed so far.
func (s *Scheduler) Now() domain.Ticks {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.now
}

// Background excludes the task behind handle from Pending, so housekeeping
// jobs such as ledger sweeps do not prevent the scheduler from going idle.
// Handles from other schedulers are ignored.
func (s *Scheduler) Background(handle ports.TaskHandle) {
	if t, ok := handle.(*task); ok {
		t.background.Store(true)
	}
}

// Pending counts queued foreground tasks that have not been cancelled.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	pending := 0
	for _, t := range s.queue {
		if !t.Cancelled() && !t.background.Load() {
			pending++
		}
	}
	return pending
}

// Advance processes n ticks without waiting.
func (s *Scheduler) Advance(ctx context.Context, n int) {
	for i := 0; i < n; i++ {
		if ctx.Err() != nil {
			return
		}
		s.step(ctx)
	}
}

// AdvanceUntilIdle processes ticks until no task is pending or limit ticks
// have elapsed. It returns the number of ticks processed.
func (s *Scheduler) AdvanceUntilIdle(ctx context.Context, limit domain.Ticks) domain.Ticks {
	var elapsed domain.Ticks
	for elapsed < limit && s.Pending() > 0 && ctx.Err() == nil {
		s.step(ctx)
		elapsed++
	}
	return elapsed
}

// Run drives the scheduler in real time until ctx is done.
func (s *Scheduler) Run(ctx context.Context) error {
	ticker := time.NewTicker(domain.TickDuration)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.step(ctx)
		}
	}
}

// RunUntilIdle drives the scheduler in real time until nothing is pending.
func (s *Scheduler) RunUntilIdle(ctx context.Context) error {
	ticker := time.NewTicker(domain.TickDuration)
	defer ticker.Stop()

	for s.Pending() > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.step(ctx)
		}
	}
	return nil
}

func (s *Scheduler) step(ctx context.Context) {
	s.mu.Lock()
	s.now++
	now := s.now
	due := make([]*task, 0)
	for len(s.queue) > 0 && s.queue[0].fireAt <= now {
		t := heap.Pop(&s.queue).(*task)
		if t.Cancelled() {
			continue
		}
		due = append(due, t)
	}
	s.mu.Unlock()

	for _, t := range due {
		if t.Cancelled() {
			continue
		}
		s.execute(ctx, t)
		if t.repeat != nil && !t.Cancelled() {
			s.mu.Lock()
			s.seq++
			t.seq = s.seq
			t.fireAt = now + t.period
			heap.Push(&s.queue, t)
			s.mu.Unlock()
		}
	}
}

func (s *Scheduler) execute(ctx context.Context, t *task) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("scheduled task panicked", slog.Any("panic", r), slog.Int64("tick", int64(t.fireAt)))
		}
	}()

	if t.repeat != nil {
		t.repeat(ctx, t)
		return
	}
	t.once(ctx)
}
