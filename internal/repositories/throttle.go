package repositories

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-admin-auth/internal/logger"
)

// ThrottleRedisRepository counts hits per key in fixed windows stored in Redis,
// so every replica shares the same budget.
type ThrottleRedisRepository struct {
	client *redis.Client
	limit  int
	window time.Duration
}

func NewThrottleRedisRepository(client *redis.Client, limit int, window time.Duration) *ThrottleRedisRepository {
	if limit < 1 {
		limit = 1
	}
	return &ThrottleRedisRepository{client: client, limit: limit, window: window}
}

// Allow registers one hit for key. When the window budget is spent it returns
// false and the time left until the window resets.
func (r *ThrottleRedisRepository) Allow(ctx context.Context, key string) (bool, time.Duration, error) {
	redisKey := fmt.Sprintf("throttle:%s", key)

	var (
		hits *redis.IntCmd
		ttl  *redis.DurationCmd
	)
	// The first hit of a window creates the counter with its expiry; INCR keeps the TTL.
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.SetNX(ctx, redisKey, 0, r.window)
		hits = pipe.Incr(ctx, redisKey)
		ttl = pipe.PTTL(ctx, redisKey)
		return nil
	})
	if err != nil {
		logger.Log.Errorw("failed to count throttle hit", "key", redisKey, "error", err)
		return false, 0, fmt.Errorf("count throttle hit: %w", err)
	}

	if hits.Val() > int64(r.limit) {
		retryAfter := ttl.Val()
		if retryAfter < 0 {
			retryAfter = r.window
		}
		return false, retryAfter, nil
	}
	return true, 0, nil
}

type visitor struct {
	hits     int
	resetAt  time.Time
	lastSeen time.Time
}

// ThrottleMemoryRepository counts hits per key in fixed windows held in process memory.
type ThrottleMemoryRepository struct {
	mu        sync.Mutex
	visitors  map[string]*visitor
	limit     int
	window    time.Duration
	lastSweep time.Time
	now       func() time.Time
}

func NewThrottleMemoryRepository(limit int, window time.Duration) *ThrottleMemoryRepository {
	if limit < 1 {
		limit = 1
	}
	return &ThrottleMemoryRepository{
		visitors: make(map[string]*visitor),
		limit:    limit,
		window:   window,
		now:      time.Now,
	}
}

// Allow registers one hit for key. At most limit hits are accepted per window;
// a window starts with the first hit after the previous one expired.
func (r *ThrottleMemoryRepository) Allow(ctx context.Context, key string) (bool, time.Duration, error) {
	now := r.now()

	r.mu.Lock()
	defer r.mu.Unlock()

	r.sweep(now)

	v, ok := r.visitors[key]
	if !ok {
		v = &visitor{}
		r.visitors[key] = v
	}
	if !now.Before(v.resetAt) {
		v.hits = 0
		v.resetAt = now.Add(r.window)
	}
	v.lastSeen = now
	v.hits++

	if v.hits > r.limit {
		return false, v.resetAt.Sub(now), nil
	}
	return true, 0, nil
}

// sweep drops counters idle for two windows; their window has long expired.
// Must be called with mu held.
func (r *ThrottleMemoryRepository) sweep(now time.Time) {
	if now.Sub(r.lastSweep) < r.window {
		return
	}
	r.lastSweep = now

	for key, v := range r.visitors {
		if now.Sub(v.lastSeen) > 2*r.window {
			delete(r.visitors, key)
		}
	}
}
