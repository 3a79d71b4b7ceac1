// Package worker runs independent analysis jobs on a bounded set of
// goroutines.
package worker

import (
	"context"
	"sync"
)

// Job is a unit of work to be executed
type Job interface {
	Execute(ctx context.Context) Result
}

// Result is what a Job returns
type Result interface {
	GetError() error
}

// Pool executes jobs concurrently on a fixed number of workers
type Pool struct {
	workers int
}

// NewPool creates a pool with the given number of workers. Values below
// one mean a single worker.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = 1
	}
	return &Pool{workers: workers}
}

// Workers returns the worker count
func (p *Pool) Workers() int {
	return p.workers
}

// Run executes every job and returns the results in job order. Jobs not
// yet started when ctx is cancelled are skipped and leave a nil result.
func (p *Pool) Run(ctx context.Context, jobs []Job) []Result {
	results := make([]Result, len(jobs))
	if len(jobs) == 0 {
		return results
	}

	workers := p.workers
	if workers > len(jobs) {
		workers = len(jobs)
	}
	if workers == 1 {
		for i, job := range jobs {
			if ctx.Err() != nil {
				break
			}
			results[i] = job.Execute(ctx)
		}
		return results
	}

	indices := make(chan int, workers*2)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indices {
				if ctx.Err() != nil {
					continue
				}
				// each index is owned by exactly one worker
				results[i] = jobs[i].Execute(ctx)
			}
		}()
	}

feed:
	for i := range jobs {
		select {
		case <-ctx.Done():
			break feed
		case indices <- i:
		}
	}
	close(indices)
	wg.Wait()
	return results
}

// Errors returns the non-nil errors among results
func Errors(results []Result) []error {
	var errs []error
	for _, r := range results {
		if r == nil {
			continue
		}
		if err := r.GetError(); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}
