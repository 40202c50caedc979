package parallel

import (
	"errors"
	"runtime"
	"sync"
)

// Workers returns the default fan-out width, GOMAXPROCS.
func Workers() int {
	return runtime.GOMAXPROCS(0)
}

// sharedPool backs Map, MapErr and Each. It is started on first use
// with Workers() workers and lives for the rest of the process.
var sharedPool = sync.OnceValue(func() *WorkerPool {
	return NewWorkerPool(Workers())
})

// Map applies fn to every item concurrently and returns the results in
// input order. fn must be safe to call from multiple goroutines; when
// it renders, each call must target its own destination pixmap.
func Map[T, R any](items []T, fn func(T) R) []R {
	results := make([]R, len(items))
	Each(items, func(i int, item T) {
		results[i] = fn(item)
	})
	return results
}

// MapErr is Map for fallible work. It always processes every item; the
// returned error joins every per-item error, and results at failed
// indices are the zero value.
func MapErr[T, R any](items []T, fn func(T) (R, error)) ([]R, error) {
	results := make([]R, len(items))
	errs := make([]error, len(items))
	Each(items, func(i int, item T) {
		results[i], errs[i] = fn(item)
	})
	return results, errors.Join(errs...)
}

// Each calls fn(i, items[i]) for every item on the shared worker pool
// and blocks until all calls return. fn must not call back into Each,
// Map or MapErr; nested batches would occupy the pool's workers while
// waiting on them.
func Each[T any](items []T, fn func(int, T)) {
	switch len(items) {
	case 0:
		return
	case 1:
		fn(0, items[0])
		return
	}

	work := make([]func(), len(items))
	for i := range items {
		i := i
		work[i] = func() { fn(i, items[i]) }
	}
	sharedPool().Run(work)
}
