package team

import (
	"sync"
)

// WorkerFunc processes a job of type T and returns a result of type U
type WorkerFunc[T any, U any] func(T) (U, error)

// ErrorFunc is notified about jobs whose worker returned an error. Those
// jobs produce no result and the pool moves on to the next one.
type ErrorFunc[T any] func(T, error)

// Team is a generic worker pool. With WorkerCount 1 the jobs are processed
// strictly in order, which is what a single user-triggered query needs; a
// larger count turns the same pipeline into a parallel fan-out.
type Team[T any, U any] struct {
	WorkerCount int
	Worker      WorkerFunc[T, U]
	OnError     ErrorFunc[T]
}

// Run feeds the jobs through the pool and returns the collected results.
func (t *Team[T, U]) Run(jobs []T) []U {
	jobChan := make(chan T, len(jobs))
	resultChan := make(chan U, len(jobs))
	var wg sync.WaitGroup

	for range t.WorkerCount {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobChan {
				res, err := t.Worker(job)
				if err != nil {
					if t.OnError != nil {
						t.OnError(job, err)
					}
					continue
				}
				resultChan <- res
			}
		}()
	}

	for _, job := range jobs {
		jobChan <- job
	}
	close(jobChan)

	go func() {
		wg.Wait()
		close(resultChan)
	}()

	var results []U
	for res := range resultChan {
		results = append(results, res)
	}
	return results
}
