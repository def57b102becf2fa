// Package parallel provides the worker pool the analytics suite fans out
// on. Passes are independent reads over an immutable snapshot, so they can
// run in any order on any worker.
package parallel

import (
	"fmt"
	"math"
	"sync"

	"github.com/dd0wney/cluso-corrosim/pkg/logging"
)

// MaxWorkers bounds the worker count so the queue buffer size cannot
// overflow.
const MaxWorkers = math.MaxInt / 2

// ErrTooManyWorkers is returned when the requested worker count exceeds
// MaxWorkers.
var ErrTooManyWorkers = fmt.Errorf("worker count exceeds maximum")

// WorkerPool runs submitted tasks on a fixed set of goroutines.
type WorkerPool struct {
	workers int
	tasks   chan func()
	wg      sync.WaitGroup

	mu     sync.RWMutex // guards tasks against close during send
	closed bool
	once   sync.Once
}

// NewWorkerPool starts a pool with the given number of workers. Counts
// below one are raised to one.
func NewWorkerPool(workers int) (*WorkerPool, error) {
	if workers <= 0 {
		workers = 1
	}
	if workers > MaxWorkers {
		return nil, fmt.Errorf("%w: %d exceeds %d", ErrTooManyWorkers, workers, MaxWorkers)
	}

	pool := &WorkerPool{
		workers: workers,
		tasks:   make(chan func(), workers*2),
	}
	for i := 0; i < workers; i++ {
		pool.wg.Add(1)
		go pool.run()
	}
	return pool, nil
}

func (wp *WorkerPool) run() {
	defer wp.wg.Done()
	for task := range wp.tasks {
		wp.execute(task)
	}
}

// execute isolates one task so a panic ends the task, not the worker.
func (wp *WorkerPool) execute(task func()) {
	defer func() {
		if r := recover(); r != nil {
			logging.ErrorLog("task panic recovered",
				logging.Component("parallel"),
				logging.Any("panic", r))
		}
	}()
	task()
}

// Submit enqueues a task. It returns false once the pool is closed.
func (wp *WorkerPool) Submit(task func()) bool {
	wp.mu.RLock()
	defer wp.mu.RUnlock()

	if wp.closed {
		return false
	}
	wp.tasks <- task
	return true
}

// RunAll submits every task and blocks until all of them have completed.
// The pool stays open for further use. Tasks must not depend on each
// other's completion order.
func (wp *WorkerPool) RunAll(tasks []func()) {
	var done sync.WaitGroup
	for _, task := range tasks {
		task := task
		done.Add(1)
		if !wp.Submit(func() {
			defer done.Done()
			task()
		}) {
			done.Done()
		}
	}
	done.Wait()
}

// Close drains the queue and stops the workers. Safe to call more than
// once and from concurrent goroutines.
func (wp *WorkerPool) Close() {
	wp.once.Do(func() {
		wp.mu.Lock()
		wp.closed = true
		close(wp.tasks)
		wp.mu.Unlock()
	})
	wp.wg.Wait()
}
