package system

import "github.com/younwookim/gravityshift/internal/domain/entity"

// Intent is a mutation deferred until the physics step has returned
type Intent interface {
	isIntent()
}

// KillIntent finalises a stomped enemy
type KillIntent struct {
	EnemyID entity.EntityID
}

func (KillIntent) isIntent() {}

// SnapIntent rests the player on a platform top
type SnapIntent struct {
	PlayerID entity.EntityID
	Y        float64
	ZeroVY   bool // clear residual downward velocity
}

func (SnapIntent) isIntent() {}

// CompleteLevelIntent marks the level as finished
type CompleteLevelIntent struct{}

func (CompleteLevelIntent) isIntent() {}

// Queue collects intents raised during a step and hands them out in FIFO order.
// Single-threaded: contact callbacks push, the frame loop drains.
type Queue struct {
	items []Intent
}

// NewQueue creates an empty queue
func NewQueue() *Queue {
	return &Queue{}
}

// Push appends an intent
func (q *Queue) Push(i Intent) {
	q.items = append(q.items, i)
}

// Drain returns all pending intents in enqueue order and empties the queue
func (q *Queue) Drain() []Intent {
	if len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Len returns the number of pending intents
func (q *Queue) Len() int {
	return len(q.items)
}
