package tick

import (
	"sync/atomic"

	"github.com/bnema/actionitems/internal/domain"
	"github.com/bnema/actionitems/internal/ports"
)

type task struct {
	fireAt    domain.Ticks
	seq       uint64
	period    domain.Ticks
	once      ports.Task
	repeat    ports.RepeatingTask
	cancelled atomic.Bool
	// background tasks do not keep the scheduler busy.
	background atomic.Bool
}

var _ ports.TaskHandle = (*task)(nil)

func (t *task) Cancel() {
	t.cancelled.Store(true)
}

func (t *task) Cancelled() bool {
	return t.cancelled.Load()
}

// taskQueue orders tasks by fire tick, then by scheduling order.
type taskQueue []*task

func (q taskQueue) Len() int { return len(q) }

func (q taskQueue) Less(i, j int) bool {
	if q[i].fireAt == q[j].fireAt {
		return q[i].seq < q[j].seq
	}
	return q[i].fireAt < q[j].fireAt
}

func (q taskQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *taskQueue) Push(x any) {
	*q = append(*q, x.(*task))
}

func (q *taskQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return item
}
