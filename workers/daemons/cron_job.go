package daemons

import (
	"context"
	"sync"

	"github.com/zsmartex/stockapi/jobs"
)

type Worker interface {
	Start(ctx context.Context)
}

type CronJob struct {
	Jobs []jobs.Job
}

func NewCronJob(jobs ...jobs.Job) *CronJob {
	return &CronJob{Jobs: jobs}
}

// Start runs every job until ctx is done.
func (c *CronJob) Start(ctx context.Context) {
	var wg sync.WaitGroup

	for _, job := range c.Jobs {
		wg.Add(1)
		go func(job jobs.Job) {
			defer wg.Done()
			job.Process(ctx)
		}(job)
	}

	wg.Wait()
}
