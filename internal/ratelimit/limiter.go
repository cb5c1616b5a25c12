package ratelimit

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"golang.org/x/time/rate"
)

// Config holds rate limiter configuration.
type Config struct {
	SubmitPerMin    int // per-IP quiz submissions per minute
	BurstMultiplier int
	CleanupInterval time.Duration
}

// DefaultConfig returns default rate limiting configuration.
func DefaultConfig() Config {
	return Config{
		SubmitPerMin:    10,
		BurstMultiplier: 2,
		CleanupInterval: 10 * time.Minute,
	}
}

// Result represents the outcome of a rate limit check.
type Result struct {
	Allowed    bool
	Limit      int
	Remaining  int
	RetryAfter time.Duration
}

// Limiter provides distributed rate limiting with Redis and an
// in-memory token-bucket fallback.
type Limiter struct {
	redisLimiter *redis_rate.Limiter
	redisClient  *RedisClient
	config       Config

	fallbackLimiters map[string]*rate.Limiter
	fallbackMutex    sync.Mutex
	stop             chan struct{}
}

// NewLimiter creates a rate limiter backed by Redis when available.
func NewLimiter(redisClient *RedisClient, config Config) *Limiter {
	l := &Limiter{
		redisClient:      redisClient,
		config:           config,
		fallbackLimiters: make(map[string]*rate.Limiter),
		stop:             make(chan struct{}),
	}

	if redisClient.IsEnabled() {
		l.redisLimiter = redis_rate.NewLimiter(redisClient.GetClient())
		slog.Info("Redis rate limiter initialized")
	} else {
		slog.Warn("Redis unavailable, using in-memory rate limiting only")
	}

	go l.cleanupFallbackLimiters()
	return l
}

// AllowSubmit checks whether an IP may submit another quiz response.
func (l *Limiter) AllowSubmit(ctx context.Context, ip string) (*Result, error) {
	key := fmt.Sprintf("ratelimit:submit:%s", ip)
	return l.allow(ctx, key, l.config.SubmitPerMin, time.Minute)
}

func (l *Limiter) allow(ctx context.Context, key string, limit int, period time.Duration) (*Result, error) {
	if l.redisClient.IsEnabled() && l.redisLimiter != nil {
		result, err := l.allowRedis(ctx, key, limit, period)
		if err != nil {
			slog.Warn("Redis rate limit check failed, using fallback", "key", key, "error", err)
			return l.allowFallback(key, limit, period), nil
		}
		return result, nil
	}
	return l.allowFallback(key, limit, period), nil
}

func (l *Limiter) allowRedis(ctx context.Context, key string, limit int, period time.Duration) (*Result, error) {
	res, err := l.redisLimiter.Allow(ctx, key, redis_rate.Limit{
		Rate:   limit,
		Burst:  limit,
		Period: period,
	})
	if err != nil {
		return nil, fmt.Errorf("redis rate limit check failed: %w", err)
	}

	return &Result{
		Allowed:    res.Allowed > 0,
		Limit:      res.Limit.Rate,
		Remaining:  res.Remaining,
		RetryAfter: res.RetryAfter,
	}, nil
}

func (l *Limiter) allowFallback(key string, limit int, period time.Duration) *Result {
	l.fallbackMutex.Lock()
	limiter, exists := l.fallbackLimiters[key]
	if !exists {
		rps := rate.Limit(float64(limit) / period.Seconds())
		burst := limit * l.config.BurstMultiplier
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rps, burst)
		l.fallbackLimiters[key] = limiter
	}
	l.fallbackMutex.Unlock()

	allowed := limiter.Allow()

	remaining := int(limiter.Tokens())
	if remaining < 0 {
		remaining = 0
	}

	result := &Result{
		Allowed:   allowed,
		Limit:     limit,
		Remaining: remaining,
	}
	if !allowed {
		result.RetryAfter = period
	}
	return result
}

// cleanupFallbackLimiters drops all fallback buckets periodically so the
// map does not grow unbounded across many client IPs.
func (l *Limiter) cleanupFallbackLimiters() {
	ticker := time.NewTicker(l.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			l.fallbackMutex.Lock()
			l.fallbackLimiters = make(map[string]*rate.Limiter)
			l.fallbackMutex.Unlock()
		case <-l.stop:
			return
		}
	}
}

// Close stops background cleanup.
func (l *Limiter) Close() {
	close(l.stop)
}
