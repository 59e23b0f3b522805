// Package parallel provides the bounded worker pool the CLI uses to
// convert files concurrently. Each quantization pass is single-threaded
// by design; the pool only fans out across independent images.
package parallel

import (
	"runtime"
	"sync"
)

type (
	WorkerFunc func(func())
	WaitFunc   func(done bool)
	CancelFunc func()
)

type Pool struct {
	wg     sync.WaitGroup
	Do     WorkerFunc
	Wait   WaitFunc
	Cancel CancelFunc
}

// Start launches numWorkers goroutines consuming submitted jobs. With
// fewer than two workers the pool degenerates to synchronous calls and
// Wait/Cancel are no-ops. Zero or negative picks GOMAXPROCS.
func Start(numWorkers int) *Pool {
	if numWorkers < 1 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	pool := &Pool{
		Do:     func(job func()) { job() },
		Wait:   func(bool) {},
		Cancel: func() {},
	}
	if numWorkers < 2 {
		return pool
	}

	jobs := make(chan func(), numWorkers)
	for range numWorkers {
		pool.wg.Go(func() {
			for job := range jobs {
				job()
			}
		})
	}

	pool.Do = func(job func()) { jobs <- job }
	pool.Cancel = sync.OnceFunc(func() { close(jobs) })
	pool.Wait = func(done bool) {
		if done {
			pool.Cancel()
		}
		pool.wg.Wait()
	}
	return pool
}
