package batch

import (
	"context"
	"sync"
)

// maxWorkers bounds how many jobs run concurrently. Adapted from
// internal/analysis/worker.go's Worker.run: same job-channel plus
// WaitGroup pool shape, with the playback-throttle/pause machinery
// dropped since batch processing has no foreground player to yield
// to.
const maxWorkers = 4

// Failure records a job that a Process function returned an error
// for.
type Failure struct {
	Job Job
	Err error
}

// Result summarizes a batch run.
type Result struct {
	Total     int
	Succeeded int
	Failures  []Failure
}

// Run processes every job through process, up to maxWorkers at a
// time, continuing past individual failures and reporting them in
// Result.Failures rather than aborting the whole batch. ctx is
// checked before each job is dispatched.
func Run(ctx context.Context, jobs []Job, process func(context.Context, Job) error) Result {
	jobCh := make(chan Job, len(jobs))
	for _, j := range jobs {
		jobCh <- j
	}
	close(jobCh)

	var (
		mu     sync.Mutex
		result = Result{Total: len(jobs)}
		wg     sync.WaitGroup
	)

	workers := maxWorkers
	if workers > len(jobs) {
		workers = len(jobs)
	}
	if workers < 1 {
		workers = 1
	}

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobCh {
				if err := ctx.Err(); err != nil {
					mu.Lock()
					result.Failures = append(result.Failures, Failure{Job: job, Err: err})
					mu.Unlock()
					continue
				}

				err := process(ctx, job)
				mu.Lock()
				if err != nil {
					result.Failures = append(result.Failures, Failure{Job: job, Err: err})
				} else {
					result.Succeeded++
				}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	return result
}
