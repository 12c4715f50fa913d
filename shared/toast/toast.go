package toast

import (
	"salondash/shared/timezone"
	"sync"
	"time"
)

type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindInfo    Kind = "info"
)

type Toast struct {
	Kind      Kind      `json:"kind"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// Queue is a bounded FIFO of user-facing notices. When full the oldest toast is dropped.
type Queue struct {
	mu       sync.Mutex
	capacity int
	items    []Toast
}

func NewQueue(capacity int) *Queue {
	if capacity <= 0 {
		capacity = 1
	}

	return &Queue{capacity: capacity}
}

func (q *Queue) Push(kind Kind, message string) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.items) == q.capacity {
		q.items = q.items[1:]
	}

	q.items = append(q.items, Toast{Kind: kind, Message: message, CreatedAt: timezone.Now()})
}

func (q *Queue) Success(message string) { q.Push(KindSuccess, message) }

func (q *Queue) Error(message string) { q.Push(KindError, message) }

func (q *Queue) Info(message string) { q.Push(KindInfo, message) }

// Drain returns every queued toast oldest first and empties the queue.
func (q *Queue) Drain() []Toast {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := q.items
	q.items = nil

	if out == nil {
		return []Toast{}
	}

	return out
}

func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return len(q.items)
}
