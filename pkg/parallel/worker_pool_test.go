package parallel

import (
	"math"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestWorkerPool_SubmitAndClose(t *testing.T) {
	pool, err := NewWorkerPool(4)
	if err != nil {
		t.Fatalf("NewWorkerPool() error = %v", err)
	}

	var executed atomic.Bool
	if !pool.Submit(func() { executed.Store(true) }) {
		t.Error("Submit on an open pool should succeed")
	}

	pool.Close()

	if !executed.Load() {
		t.Error("Task was not executed")
	}
}

func TestWorkerPool_RunAllCompletesEveryTask(t *testing.T) {
	pool, err := NewWorkerPool(4)
	if err != nil {
		t.Fatalf("NewWorkerPool() error = %v", err)
	}
	defer pool.Close()

	numTasks := 20
	results := make([]int64, numTasks)
	tasks := make([]func(), numTasks)
	for i := 0; i < numTasks; i++ {
		i := i
		tasks[i] = func() { atomic.StoreInt64(&results[i], 1) }
	}

	// RunAll must block until every task ran, with the pool still usable.
	pool.RunAll(tasks)

	for i := range results {
		if atomic.LoadInt64(&results[i]) != 1 {
			t.Errorf("Task %d did not run", i)
		}
	}

	// The pool stays open for a second batch.
	var again atomic.Int64
	pool.RunAll([]func(){
		func() { again.Add(1) },
		func() { again.Add(1) },
	})
	if again.Load() != 2 {
		t.Errorf("Second batch ran %d tasks, want 2", again.Load())
	}
}

func TestWorkerPool_RunAllEmpty(t *testing.T) {
	pool, err := NewWorkerPool(2)
	if err != nil {
		t.Fatalf("NewWorkerPool() error = %v", err)
	}
	defer pool.Close()

	// Must return immediately, not deadlock.
	pool.RunAll(nil)
}

func TestWorkerPool_RunAllOnClosedPool(t *testing.T) {
	pool, err := NewWorkerPool(2)
	if err != nil {
		t.Fatalf("NewWorkerPool() error = %v", err)
	}
	pool.Close()

	// Submissions fail on a closed pool; RunAll must still return rather
	// than wait on tasks that never got queued.
	done := make(chan struct{})
	go func() {
		pool.RunAll([]func(){func() {}})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("RunAll deadlocked on a closed pool")
	}
}

func TestWorkerPool_ConcurrentSubmissions(t *testing.T) {
	pool, err := NewWorkerPool(8)
	if err != nil {
		t.Fatalf("NewWorkerPool() error = %v", err)
	}

	numTasks := 100
	var counter int64

	var wg sync.WaitGroup
	for i := 0; i < numTasks; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			pool.Submit(func() {
				atomic.AddInt64(&counter, 1)
			})
		}()
	}

	wg.Wait()
	pool.Close()

	if counter != int64(numTasks) {
		t.Errorf("Executed %d tasks, want %d", counter, numTasks)
	}
}

func TestWorkerPool_SubmitAfterClose(t *testing.T) {
	pool, err := NewWorkerPool(2)
	if err != nil {
		t.Fatalf("NewWorkerPool() error = %v", err)
	}
	pool.Close()

	if pool.Submit(func() { t.Error("This task should never execute") }) {
		t.Error("Submit after Close should return false")
	}
}

func TestWorkerPool_CloseIsIdempotent(t *testing.T) {
	pool, err := NewWorkerPool(2)
	if err != nil {
		t.Fatalf("NewWorkerPool() error = %v", err)
	}

	for i := 0; i < 10; i++ {
		pool.Submit(func() { time.Sleep(time.Millisecond) })
	}

	// Repeated and concurrent closes must not panic.
	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			pool.Close()
		}()
	}
	wg.Wait()
	pool.Close()
}

func TestWorkerPool_RecoversTaskPanics(t *testing.T) {
	pool, err := NewWorkerPool(2)
	if err != nil {
		t.Fatalf("NewWorkerPool() error = %v", err)
	}

	var counter int64
	tasks := []func(){
		func() { panic("intentional panic") },
		func() { atomic.AddInt64(&counter, 1) },
		func() { panic("another one") },
		func() { atomic.AddInt64(&counter, 1) },
	}
	pool.RunAll(tasks)
	pool.Close()

	if counter != 2 {
		t.Errorf("Non-panicking tasks executed = %d, want 2", counter)
	}
}

func TestWorkerPool_SizeBounds(t *testing.T) {
	if _, err := NewWorkerPool(math.MaxInt); err == nil {
		t.Error("Expected an error for an absurd worker count")
	}

	// Zero and negative counts fall back to a single worker.
	for _, workers := range []int{0, -5} {
		pool, err := NewWorkerPool(workers)
		if err != nil {
			t.Fatalf("NewWorkerPool(%d) error = %v", workers, err)
		}
		if pool.workers != 1 {
			t.Errorf("NewWorkerPool(%d) workers = %d, want 1", workers, pool.workers)
		}
		pool.Close()
	}

	pool, err := NewWorkerPool(64)
	if err != nil {
		t.Fatalf("NewWorkerPool(64) error = %v", err)
	}
	if pool.workers != 64 {
		t.Errorf("workers = %d, want 64", pool.workers)
	}
	if cap(pool.tasks) != 128 {
		t.Errorf("queue capacity = %d, want 128", cap(pool.tasks))
	}
	pool.Close()
}

func BenchmarkWorkerPoolRunAll(b *testing.B) {
	pool, err := NewWorkerPool(8)
	if err != nil {
		b.Fatalf("NewWorkerPool() error = %v", err)
	}
	defer pool.Close()

	tasks := make([]func(), 32)
	for i := range tasks {
		tasks[i] = func() {
			sum := 0
			for j := 0; j < 100; j++ {
				sum += j
			}
			_ = sum
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		pool.RunAll(tasks)
	}
}
