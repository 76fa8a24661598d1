package spellcheck

import "sync"

// queue serializes custom-dictionary mutations onto one worker
// goroutine. Enqueue order is execution order, so a RemoveWord
// scheduled after an AddWord for the same word always observes the
// add. Enqueueing after close is a no-op.
type queue struct {
	mu     sync.Mutex
	tasks  chan func()
	done   chan struct{}
	closed bool
}

func newQueue() *queue {
	q := &queue{
		tasks: make(chan func(), 128),
		done:  make(chan struct{}),
	}
	go q.run()
	return q
}

func (q *queue) run() {
	for fn := range q.tasks {
		fn()
	}
	close(q.done)
}

func (q *queue) enqueue(fn func()) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	q.tasks <- fn
}

// sync blocks until everything enqueued before it has run.
func (q *queue) sync() {
	ran := make(chan struct{})
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.tasks <- func() { close(ran) }
	q.mu.Unlock()
	<-ran
}

func (q *queue) close() {
	q.mu.Lock()
	if !q.closed {
		q.closed = true
		close(q.tasks)
	}
	q.mu.Unlock()
	<-q.done
}
