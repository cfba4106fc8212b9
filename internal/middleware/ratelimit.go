package middleware

import (
	"math"
	"strconv"
	"time"

	"renta_backend/internal/logger"
	"renta_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RateLimitConfig - параметры token bucket
type RateLimitConfig struct {
	Capacity       int
	RefillTokens   int
	RefillInterval time.Duration
	KeyPrefix      string
}

// Скрипт token bucket. Состояние ведра лежит в Redis-хеше,
// пополнение считается лениво по прошедшим интервалам. Атомарность
// дает сам Lua: конкурентные запросы не продублируют токены
var tokenBucketScript = redis.NewScript(`
	local key = KEYS[1]
	local now_ms = tonumber(ARGV[1])
	local capacity = tonumber(ARGV[2])
	local refill_tokens = tonumber(ARGV[3])
	local interval_ms = tonumber(ARGV[4])
	local ttl_seconds = tonumber(ARGV[5])

	local state = redis.call('HMGET', key, 'tokens', 'last_refill_ms')
	local tokens = tonumber(state[1])
	local last_refill = tonumber(state[2])

	if tokens == nil or last_refill == nil then
		tokens = capacity
		last_refill = now_ms
	end

	if interval_ms > 0 and refill_tokens > 0 then
		local elapsed = math.max(0, now_ms - last_refill)
		local intervals = math.floor(elapsed / interval_ms)
		if intervals > 0 then
			tokens = math.min(capacity, tokens + (intervals * refill_tokens))
			last_refill = last_refill + (intervals * interval_ms)
		end
	end

	local allowed = 0
	local retry_after_ms = 0
	if tokens > 0 then
		allowed = 1
		tokens = tokens - 1
	else
		local until_next = interval_ms - (now_ms - last_refill)
		if until_next < 0 then until_next = 0 end
		retry_after_ms = until_next
	end

	redis.call('HMSET', key, 'tokens', tokens, 'last_refill_ms', last_refill)
	redis.call('EXPIRE', key, ttl_seconds)

	return { allowed, tokens, retry_after_ms }
`)

// RateLimitMiddleware ограничивает частоту запросов по IP.
// При недоступном Redis пропускает запросы: лимитер не должен
// ронять API вместе с собой
func RateLimitMiddleware(rdb *redis.Client, cfg RateLimitConfig) gin.HandlerFunc {
	if rdb == nil {
		return func(c *gin.Context) { c.Next() }
	}

	prefix := cfg.KeyPrefix
	if prefix == "" {
		prefix = "ratelimit"
	}
	ttl := int64(2 * cfg.RefillInterval * time.Duration(cfg.Capacity) / time.Second)
	if ttl < 60 {
		ttl = 60
	}

	return func(c *gin.Context) {
		key := prefix + ":ip:" + c.ClientIP()

		args := []interface{}{
			time.Now().UnixMilli(),
			cfg.Capacity,
			cfg.RefillTokens,
			cfg.RefillInterval.Milliseconds(),
			ttl,
		}

		vals, err := tokenBucketScript.Run(c.Request.Context(), rdb, []string{key}, args...).Int64Slice()
		if err != nil || len(vals) != 3 {
			if err != nil {
				logger.WithError(err).Warn("rate limiter unavailable, request allowed", "key", key)
			}
			c.Next()
			return
		}

		allowed, remaining, retryMs := vals[0] == 1, vals[1], vals[2]

		c.Header("X-RateLimit-Limit", strconv.Itoa(cfg.Capacity))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

		if !allowed {
			secs := int(math.Ceil(float64(retryMs) / 1000.0))
			if secs < 1 {
				secs = 1
			}
			c.Header("Retry-After", strconv.Itoa(secs))
			apperrors.HandleError(c, apperrors.ErrTooManyRequests)
			c.Abort()
			return
		}

		c.Next()
	}
}
