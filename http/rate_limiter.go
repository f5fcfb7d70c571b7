package http

import (
	"math"
	"strconv"
	"sync"
	"time"
)

const (
	bucketCleanupThreshold = 1 * time.Hour
	cleanupInterval        = 30 * time.Minute
)

type clientBucket struct {
	tokens   float64
	lastSeen time.Time
}

// RateLimiter is a per-client token bucket. Each client may burst up to
// capacity requests; tokens come back continuously, a full bucket per refill.
type RateLimiter struct {
	mu          sync.Mutex
	capacity    float64
	refillDur   time.Duration
	perToken    time.Duration
	clients     map[string]*clientBucket
	now         func() time.Time
	stopCleanup chan struct{}
	stopOnce    sync.Once
}

func NewRateLimiter(capacity int, refillDur time.Duration) *RateLimiter {
	rl := &RateLimiter{
		capacity:    float64(capacity),
		refillDur:   refillDur,
		perToken:    refillDur / time.Duration(max(capacity, 1)),
		clients:     make(map[string]*clientBucket),
		now:         time.Now,
		stopCleanup: make(chan struct{}),
	}
	go rl.cleanupLoop()
	return rl
}

func (r *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.cleanup()
		case <-r.stopCleanup:
			return
		}
	}
}

// cleanup forgets clients idle long enough to have a full bucket again.
func (r *RateLimiter) cleanup() {
	r.mu.Lock()
	defer r.mu.Unlock()

	idle := max(bucketCleanupThreshold, r.refillDur)
	now := r.now()
	for ip, bucket := range r.clients {
		if now.Sub(bucket.lastSeen) > idle {
			delete(r.clients, ip)
		}
	}
}

// Stop ends the cleanup goroutine. It is safe to call more than once.
func (r *RateLimiter) Stop() {
	r.stopOnce.Do(func() { close(r.stopCleanup) })
}

func (r *RateLimiter) Allow(ip string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	bucket, exists := r.clients[ip]

	if !exists {
		r.clients[ip] = &clientBucket{
			tokens:   r.capacity - 1,
			lastSeen: now,
		}
		return r.capacity >= 1
	}

	elapsed := now.Sub(bucket.lastSeen)
	bucket.tokens = math.Min(r.capacity, bucket.tokens+r.capacity*elapsed.Seconds()/r.refillDur.Seconds())
	bucket.lastSeen = now

	if bucket.tokens < 1 {
		return false
	}

	bucket.tokens--
	return true
}

// retryAfter is the Retry-After header value: whole seconds until one token
// comes back.
func (r *RateLimiter) retryAfter() string {
	secs := int(math.Ceil(r.perToken.Seconds()))
	return strconv.Itoa(max(secs, 1))
}
