// Package parallel provides the tile scheduler and worker pool that
// drive multi-threaded rendering.
//
// A frame is partitioned into 64x64 pixel tiles that are rendered
// independently; tiles write to disjoint regions of the shared pixel
// buffer, so no synchronization is needed beyond waiting for
// completion. Workers each own a queue and steal from the others when
// idle, which balances load between cheap exterior tiles and expensive
// interior ones.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// WorkerPool runs tile jobs across a fixed set of goroutines.
//
// Each worker primarily pulls from its own queue and steals from the
// others when empty. Safe for concurrent use.
type WorkerPool struct {
	workers    int
	workQueues []chan func()
	done       chan struct{}
	wg         sync.WaitGroup
	running    atomic.Bool
}

// NewWorkerPool creates a pool with the given number of workers.
// Non-positive counts select GOMAXPROCS. Workers start immediately.
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	// A few queued tiles per worker hides submission latency.
	queueSize := workers * 4
	if queueSize < 8 {
		queueSize = 8
	}

	p := &WorkerPool{
		workers:    workers,
		workQueues: make([]chan func(), workers),
		done:       make(chan struct{}),
	}
	for i := range p.workQueues {
		p.workQueues[i] = make(chan func(), queueSize)
	}

	p.running.Store(true)
	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.worker(i)
	}
	return p
}

func (p *WorkerPool) worker(id int) {
	defer p.wg.Done()

	myQueue := p.workQueues[id]
	for {
		select {
		case <-p.done:
			p.drain(myQueue)
			return
		case job := <-myQueue:
			if job != nil {
				job()
			}
		default:
			if stolen := p.steal(id); stolen != nil {
				stolen()
				continue
			}
			// Nothing to steal; block on the own queue.
			select {
			case <-p.done:
				p.drain(myQueue)
				return
			case job := <-myQueue:
				if job != nil {
					job()
				}
			}
		}
	}
}

// drain executes whatever is left in a queue during shutdown so that
// a Render blocked in ExecuteAll still completes.
func (p *WorkerPool) drain(queue chan func()) {
	for {
		select {
		case job := <-queue:
			if job != nil {
				job()
			}
		default:
			return
		}
	}
}

// steal takes one job from another worker's queue, or returns nil.
func (p *WorkerPool) steal(myID int) func() {
	for i := 0; i < p.workers; i++ {
		if i == myID {
			continue
		}
		select {
		case job := <-p.workQueues[i]:
			return job
		default:
		}
	}
	return nil
}

// ExecuteAll distributes jobs round-robin across the workers and
// blocks until every job has run. A closed pool is a no-op.
func (p *WorkerPool) ExecuteAll(jobs []func()) {
	if len(jobs) == 0 || !p.running.Load() {
		return
	}

	var completion sync.WaitGroup
	completion.Add(len(jobs))

	for i, fn := range jobs {
		job := fn
		wrapped := func() {
			defer completion.Done()
			job()
		}
		select {
		case p.workQueues[i%p.workers] <- wrapped:
		case <-p.done:
			completion.Done()
		}
	}

	completion.Wait()
}

// Close stops accepting work, finishes what is queued, and joins the
// workers. Safe to call multiple times.
func (p *WorkerPool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.done)
	p.wg.Wait()
}

// Workers returns the worker count.
func (p *WorkerPool) Workers() int {
	return p.workers
}

// IsRunning reports whether the pool is accepting work.
func (p *WorkerPool) IsRunning() bool {
	return p.running.Load()
}
