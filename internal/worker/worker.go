package worker

import "sync"

// Task is a unit of background work.
type Task func()

// Pool runs submitted tasks on a fixed set of goroutines. Used to keep
// notification sends off the request path; delivery is best-effort,
// at-most-once.
type Pool interface {
	Submit(Task)
	Stop()
}

const queueSize = 64

// NewPool creates a pool with n workers over a bounded queue. n<=0
// defaults to 1. Submit blocks once the queue is full.
func NewPool(n int) Pool {
	if n <= 0 {
		n = 1
	}
	p := &pool{jobs: make(chan Task, queueSize)}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				if job != nil {
					job()
				}
			}
		}()
	}
	return p
}

type pool struct {
	jobs chan Task
	wg   sync.WaitGroup
}

func (p *pool) Submit(t Task) {
	p.jobs <- t
}

// Stop drains the queue and waits for in-flight tasks.
func (p *pool) Stop() {
	close(p.jobs)
	p.wg.Wait()
}
