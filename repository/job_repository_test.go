package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calc-api/domain"
)

func sampleJob(id string) domain.FileJob {
	return domain.FileJob{
		ID:         id,
		Operation:  domain.OpRotate,
		SourceName: "report.pdf",
		SourceSize: 1024,
		OutputName: "report_rotated.pdf",
		Status:     domain.JobProcessing,
		Progress:   40,
		CreatedAt:  time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func exerciseRepository(t *testing.T, repo JobRepository) {
	ctx := context.Background()

	_, found, err := repo.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, found)

	job := sampleJob("job-1")
	require.NoError(t, repo.Save(ctx, job))

	got, found, err := repo.Get(ctx, "job-1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, job, got)

	job.Progress = 100
	job.Status = domain.JobCompleted
	require.NoError(t, repo.Save(ctx, job))
	got, _, err = repo.Get(ctx, "job-1")
	require.NoError(t, err)
	assert.Equal(t, domain.JobCompleted, got.Status)

	require.NoError(t, repo.Delete(ctx, "job-1"))
	_, found, err = repo.Get(ctx, "job-1")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestJobRepositoryMemory(t *testing.T) {
	exerciseRepository(t, NewJobRepositoryMemory(time.Hour))
}

func TestJobRepositoryMemory_Expiry(t *testing.T) {
	repo := NewJobRepositoryMemory(time.Minute)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return now }

	require.NoError(t, repo.Save(context.Background(), sampleJob("old")))

	now = now.Add(2 * time.Minute)
	_, found, err := repo.Get(context.Background(), "old")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestJobRepositoryRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	repo := NewJobRepositoryRedisClient(client, time.Hour)
	t.Cleanup(func() { _ = repo.Close() })

	require.NoError(t, repo.Ping(context.Background()))
	exerciseRepository(t, repo)
}

func TestJobRepositoryRedis_TTL(t *testing.T) {
	mr := miniredis.RunT(t)
	repo := NewJobRepositoryRedis(mr.Addr(), time.Minute)
	t.Cleanup(func() { _ = repo.Close() })

	require.NoError(t, repo.Save(context.Background(), sampleJob("ttl")))
	assert.Equal(t, time.Minute, mr.TTL(jobKeyPrefix+"ttl"))

	mr.FastForward(2 * time.Minute)
	_, found, err := repo.Get(context.Background(), "ttl")
	require.NoError(t, err)
	assert.False(t, found)
}
