package jobs

import "context"

type Job interface {
	Process(ctx context.Context)
}
