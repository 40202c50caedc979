package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// WorkerPool runs submitted work on a fixed set of goroutines. Each
// worker owns a queue and steals from the other queues when its own
// runs dry, which balances pages of very different rendering cost.
//
// WorkerPool is safe for concurrent use. A closed pool silently drops
// new work.
type WorkerPool struct {
	workers int
	queues  []chan func()
	done    chan struct{}
	wg      sync.WaitGroup
	running atomic.Bool
}

// NewWorkerPool starts a pool with the given number of workers;
// 0 or negative means GOMAXPROCS. Workers run until [WorkerPool.Close].
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	queueSize := max(4*workers, 8)

	p := &WorkerPool{
		workers: workers,
		queues:  make([]chan func(), workers),
		done:    make(chan struct{}),
	}
	for i := range p.queues {
		p.queues[i] = make(chan func(), queueSize)
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.worker(i)
	}
	return p
}

// Workers returns the number of worker goroutines.
func (p *WorkerPool) Workers() int { return p.workers }

func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()
	mine := p.queues[id]

	for {
		select {
		case <-p.done:
			drain(mine)
			return
		case work := <-mine:
			if work != nil {
				work()
			}
		default:
			if stolen := p.steal(id); stolen != nil {
				stolen()
				continue
			}
			// Nothing anywhere; block on the own queue.
			select {
			case <-p.done:
				drain(mine)
				return
			case work := <-mine:
				if work != nil {
					work()
				}
			}
		}
	}
}

func drain(queue chan func()) {
	for {
		select {
		case work := <-queue:
			if work != nil {
				work()
			}
		default:
			return
		}
	}
}

// steal takes one work item from another worker's queue, or returns nil
// when every queue is empty.
func (p *WorkerPool) steal(myID int) func() {
	for i := range p.queues {
		if i == myID {
			continue
		}
		select {
		case work := <-p.queues[i]:
			return work
		default:
		}
	}
	return nil
}

// Run distributes the work items round-robin across the workers and
// blocks until all of them have completed.
func (p *WorkerPool) Run(work []func()) {
	if len(work) == 0 || !p.running.Load() {
		return
	}

	var wg sync.WaitGroup
	wg.Add(len(work))
	for i, fn := range work {
		fn := fn
		wrapped := func() {
			defer wg.Done()
			fn()
		}
		select {
		case p.queues[i%p.workers] <- wrapped:
		case <-p.done:
			wg.Done()
		}
	}
	wg.Wait()
}

// Submit queues one work item on the shortest queue without waiting for
// it to run.
func (p *WorkerPool) Submit(fn func()) {
	if fn == nil || !p.running.Load() {
		return
	}

	shortest := 0
	for i := 1; i < p.workers; i++ {
		if len(p.queues[i]) < len(p.queues[shortest]) {
			shortest = i
		}
	}
	select {
	case p.queues[shortest] <- fn:
	case <-p.done:
	}
}

// Close stops the workers after draining their queues and waits for
// them to exit. Close is idempotent.
func (p *WorkerPool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.done)
	p.wg.Wait()
}
