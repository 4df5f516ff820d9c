package transport

import "sync/atomic"

// slot is a seat for a single worker. The running flag is the only field the worker
// touches; done is replaced by the accept loop on every reuse and closed by the worker
// once it finished, so receiving from it joins the worker.
type slot struct {
	running atomic.Bool
	done    chan struct{}
}

// Pool bounds the number of simultaneously running workers by a fixed table of slots.
// Acquire, Go and Wait must all be called from a single goroutine (the accept loop).
type Pool struct {
	slots []slot
}

func NewPool(capacity int) *Pool {
	return &Pool{
		slots: make([]slot, capacity),
	}
}

// Acquire returns the lowest free slot. If the slot was used before, it blocks until its
// previous worker has completely terminated. False is returned when all the slots are
// taken; nothing is waited for in this case.
func (p *Pool) Acquire() (id int, ok bool) {
	for i := range p.slots {
		s := &p.slots[i]
		if s.running.Load() {
			continue
		}

		if s.done != nil {
			<-s.done
		}

		s.running.Store(true)
		s.done = make(chan struct{})

		return i, true
	}

	return 0, false
}

// Go runs fn in a new goroutine occupying the acquired slot. The slot is released after
// fn returned.
func (p *Pool) Go(id int, fn func()) {
	s := &p.slots[id]
	done := s.done

	go func() {
		defer func() {
			s.running.Store(false)
			close(done)
		}()

		fn()
	}()
}

// Wait joins every slot that was ever used.
func (p *Pool) Wait() {
	for i := range p.slots {
		if done := p.slots[i].done; done != nil {
			<-done
		}
	}
}

// Running returns the number of currently occupied slots.
func (p *Pool) Running() (n int) {
	for i := range p.slots {
		if p.slots[i].running.Load() {
			n++
		}
	}

	return n
}

func (p *Pool) Cap() int {
	return len(p.slots)
}
