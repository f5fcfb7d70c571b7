package repository

import (
	"context"

	"calc-api/domain"
)

// JobRepository stores simulated file jobs. Get reports found=false for an
// unknown or expired job.
type JobRepository interface {
	Save(ctx context.Context, job domain.FileJob) error
	Get(ctx context.Context, id string) (job domain.FileJob, found bool, err error)
	Delete(ctx context.Context, id string) error
}
