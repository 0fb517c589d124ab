package worker

import (
	"sync"

	"github.com/saeedpay/wallet-ledger/internal/logger"
	"github.com/saeedpay/wallet-ledger/internal/metrics"
)

// Pool is a bounded goroutine pool for background jobs (card validation).
// Submit blocks when the queue is full rather than dropping work.
type Pool struct {
	wg       sync.WaitGroup
	jobs     chan func()
	quit     chan struct{}
	stopOnce sync.Once
}

// NewPool starts n workers draining a shared queue.
func NewPool(n int) *Pool {
	p := &Pool{
		jobs: make(chan func(), 1024),
		quit: make(chan struct{}),
	}
	for i := 0; i < n; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for {
				select {
				case job := <-p.jobs:
					job()
					metrics.WorkerQueueDepth.Set(float64(len(p.jobs)))
				case <-p.quit:
					// Drain what was queued before the stop, then exit.
					for {
						select {
						case job := <-p.jobs:
							job()
						default:
							return
						}
					}
				}
			}
		}()
	}
	return p
}

// Submit enqueues a job. Jobs submitted after Stop are dropped with a log
// line instead of panicking; a Submit blocked on a full queue unblocks
// when the pool stops.
func (p *Pool) Submit(f func()) {
	select {
	case <-p.quit:
		logger.Log.Warnw("worker pool stopped, dropping job")
		return
	default:
	}

	select {
	case p.jobs <- f:
		metrics.WorkerQueueDepth.Set(float64(len(p.jobs)))
	case <-p.quit:
		logger.Log.Warnw("worker pool stopped, dropping job")
	}
}

// Stop signals the workers and waits for them to finish the queued jobs.
func (p *Pool) Stop() {
	p.stopOnce.Do(func() { close(p.quit) })
	p.wg.Wait()
}
