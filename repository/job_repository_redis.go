package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"calc-api/domain"
)

const jobKeyPrefix = "calc:job:"

// JobRepositoryRedis keeps jobs as JSON values with a TTL.
type JobRepositoryRedis struct {
	client *redis.Client
	ttl    time.Duration
}

func NewJobRepositoryRedis(addr string, ttl time.Duration) *JobRepositoryRedis {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return NewJobRepositoryRedisClient(rdb, ttl)
}

// NewJobRepositoryRedisClient wraps an existing client.
func NewJobRepositoryRedisClient(client *redis.Client, ttl time.Duration) *JobRepositoryRedis {
	return &JobRepositoryRedis{client: client, ttl: ttl}
}

// Ping checks the connection.
func (r *JobRepositoryRedis) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *JobRepositoryRedis) Close() error {
	return r.client.Close()
}

func (r *JobRepositoryRedis) Save(ctx context.Context, job domain.FileJob) error {
	payload, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("encode job %s: %w", job.ID, err)
	}
	if err := r.client.Set(ctx, jobKeyPrefix+job.ID, payload, r.ttl).Err(); err != nil {
		return fmt.Errorf("save job %s: %w", job.ID, err)
	}
	return nil
}

func (r *JobRepositoryRedis) Get(ctx context.Context, id string) (domain.FileJob, bool, error) {
	val, err := r.client.Get(ctx, jobKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.FileJob{}, false, nil
	}
	if err != nil {
		return domain.FileJob{}, false, fmt.Errorf("get job %s: %w", id, err)
	}

	var job domain.FileJob
	if err := json.Unmarshal(val, &job); err != nil {
		return domain.FileJob{}, false, fmt.Errorf("decode job %s: %w", id, err)
	}
	return job, true, nil
}

func (r *JobRepositoryRedis) Delete(ctx context.Context, id string) error {
	return r.client.Del(ctx, jobKeyPrefix+id).Err()
}
