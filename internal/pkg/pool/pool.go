package pool

import (
	"errors"
	"sync"
	"sync/atomic"
)

var (
	ErrClosed    = errors.New("pool is closed")
	ErrQueueFull = errors.New("pool queue is full")
)

// Pool runs submitted jobs on a fixed set of goroutines.
type Pool struct {
	jobs    chan func()
	wg      sync.WaitGroup
	closed  atomic.Bool
	closeMu sync.RWMutex
}

func New(n int) *Pool {
	if n < 1 {
		n = 1
	}
	p := &Pool{
		jobs: make(chan func(), n*2),
	}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for f := range p.jobs {
		if f != nil {
			f()
		}
	}
}

// Submit queues f and reports false once the pool is closed.
func (p *Pool) Submit(f func()) bool {
	p.closeMu.RLock()
	defer p.closeMu.RUnlock()
	if p.closed.Load() {
		return false
	}
	p.jobs <- f
	return true
}

// TrySubmit queues f without waiting. It fails with ErrQueueFull when every
// worker is busy and the queue has no room.
func (p *Pool) TrySubmit(f func()) error {
	p.closeMu.RLock()
	defer p.closeMu.RUnlock()
	if p.closed.Load() {
		return ErrClosed
	}
	select {
	case p.jobs <- f:
		return nil
	default:
		return ErrQueueFull
	}
}

// Close stops accepting jobs. Queued jobs still run; use Wait to drain.
func (p *Pool) Close() {
	p.closeMu.Lock()
	defer p.closeMu.Unlock()
	if p.closed.Swap(true) {
		return
	}
	close(p.jobs)
}

func (p *Pool) Wait() {
	p.wg.Wait()
}
