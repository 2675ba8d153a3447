package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"candidate-service/internal/delivery/http/response"
	"candidate-service/pkg/audit"
	"candidate-service/pkg/logger"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
)

// RateLimitConfig holds configuration for rate limiting
type RateLimitConfig struct {
	// Requests per window
	Limit int
	// Time window duration
	Window time.Duration
	// Key extractor (default: client IP)
	KeyFunc func(*gin.Context) string
	// Key prefix for Redis
	KeyPrefix string
	// Receives rate_limit_triggered events; nil disables them
	Audit *audit.Logger
}

// DefaultRateLimitConfig returns the limits applied to mutating routes.
func DefaultRateLimitConfig(limit int, window time.Duration) RateLimitConfig {
	return RateLimitConfig{
		Limit:     limit,
		Window:    window,
		KeyPrefix: "rl:candidates:",
		KeyFunc: func(c *gin.Context) string {
			return c.ClientIP()
		},
	}
}

// Atomic increment with TTL on first hit.
// KEYS[1] = counter key, ARGV[1] = TTL in seconds
// Returns: [current_count, ttl_remaining]
var rateLimitScript = goredis.NewScript(`
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[1])
end
local ttl = redis.call('TTL', KEYS[1])
return {count, ttl}
`)

// rateLimitEntry tracks request count for a key (in-memory fallback)
type rateLimitEntry struct {
	mu      sync.Mutex
	count   int
	resetAt time.Time
	removed bool // set under mu once Sweep has dropped the entry from the map
}

// RateLimiter is a fixed-window limiter backed by Redis when a client is
// given, and by process memory otherwise or when Redis errors.
type RateLimiter struct {
	cfg    RateLimitConfig
	client *goredis.Client
	now    func() time.Time

	entries sync.Map // key -> *rateLimitEntry
}

func NewRateLimiter(cfg RateLimitConfig, client *goredis.Client) *RateLimiter {
	if cfg.KeyFunc == nil {
		cfg.KeyFunc = func(c *gin.Context) string { return c.ClientIP() }
	}
	return &RateLimiter{cfg: cfg, client: client, now: time.Now}
}

// Middleware enforces the limit. A non-positive limit disables it.
func (l *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if l.cfg.Limit <= 0 {
			c.Next()
			return
		}

		key := l.cfg.KeyPrefix + l.cfg.KeyFunc(c)
		count, resetAt := l.hit(c.Request.Context(), key)

		c.Header("X-RateLimit-Limit", strconv.Itoa(l.cfg.Limit))
		c.Header("X-RateLimit-Reset", resetAt.UTC().Format(time.RFC3339))

		if count > l.cfg.Limit {
			retryAfter := int(resetAt.Sub(l.now()).Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("X-RateLimit-Remaining", "0")
			c.Header("Retry-After", strconv.Itoa(retryAfter))

			logger.Log.WarnContext(c.Request.Context(), "rate limit exceeded",
				"request_id", response.RequestID(c), "client_ip", c.ClientIP(), "route", c.FullPath())
			l.cfg.Audit.Log(c.Request.Context(), audit.Event{
				Event:     audit.EventRateLimitTriggered,
				IP:        c.ClientIP(),
				RequestID: response.RequestID(c),
				Details:   map[string]any{"endpoint": c.FullPath(), "limit": l.cfg.Limit},
			})

			response.Error(c, http.StatusTooManyRequests, "Rate limit exceeded. Please try again later.", nil)
			c.Abort()
			return
		}

		c.Header("X-RateLimit-Remaining", strconv.Itoa(l.cfg.Limit-count))
		c.Next()
	}
}

func (l *RateLimiter) hit(ctx context.Context, key string) (int, time.Time) {
	if l.client != nil {
		count, resetAt, err := l.hitRedis(ctx, key)
		if err == nil {
			return count, resetAt
		}
		// fail open onto the local window
		logger.Log.WarnContext(ctx, "rate limit store unavailable", "error", err)
	}
	return l.hitMemory(key)
}

func (l *RateLimiter) hitRedis(ctx context.Context, key string) (int, time.Time, error) {
	ttlSeconds := int(l.cfg.Window.Seconds())
	if ttlSeconds < 1 {
		ttlSeconds = 1
	}

	result, err := rateLimitScript.Run(ctx, l.client, []string{key}, ttlSeconds).Int64Slice()
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("redis rate limit eval failed: %w", err)
	}
	if len(result) < 2 {
		return 0, time.Time{}, fmt.Errorf("unexpected redis result %v", result)
	}

	return int(result[0]), l.now().Add(time.Duration(result[1]) * time.Second), nil
}

func (l *RateLimiter) hitMemory(key string) (int, time.Time) {
	now := l.now()
	for {
		entryI, _ := l.entries.LoadOrStore(key, &rateLimitEntry{resetAt: now.Add(l.cfg.Window)})
		entry := entryI.(*rateLimitEntry)

		entry.mu.Lock()
		if entry.removed {
			// Swept between load and lock; retry against the replacement.
			entry.mu.Unlock()
			continue
		}
		if now.After(entry.resetAt) {
			entry.count = 0
			entry.resetAt = now.Add(l.cfg.Window)
		}
		entry.count++
		count, resetAt := entry.count, entry.resetAt
		entry.mu.Unlock()
		return count, resetAt
	}
}

// Sweep drops expired in-memory windows. Run it periodically.
func (l *RateLimiter) Sweep() {
	l.entries.Range(func(key, value any) bool {
		entry := value.(*rateLimitEntry)
		entry.mu.Lock()
		defer entry.mu.Unlock()
		if l.now().After(entry.resetAt) && l.entries.CompareAndDelete(key, entry) {
			entry.removed = true
		}
		return true
	})
}

// RunSweeper calls Sweep every interval until ctx is done.
func (l *RateLimiter) RunSweeper(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			l.Sweep()
		}
	}
}
