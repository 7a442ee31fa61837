package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/oksasatya/go-job-board/pkg/response"
)

// KeyFunc builds a rate-limit key from the request.
type KeyFunc func(c *gin.Context) string

func routeOf(c *gin.Context) string {
	if fp := c.FullPath(); fp != "" {
		return fp
	}
	return c.Request.URL.Path
}

// KeyByIPAndPath limits each client per route.
func KeyByIPAndPath() KeyFunc {
	return func(c *gin.Context) string {
		return "rl:path:" + routeOf(c) + ":ip:" + ClientIP(c)
	}
}

// KeyByUserID limits authenticated callers per user, anonymous ones per IP.
func KeyByUserID() KeyFunc {
	return func(c *gin.Context) string {
		if uid, ok := UserID(c); ok {
			return "rl:user:" + uid
		}
		return "rl:user:anon:ip:" + ClientIP(c)
	}
}

// INCR and set the window on first hit, atomically.
var incrExpireScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return {current, redis.call("PTTL", KEYS[1])}
`)

// Limit describes a fixed-window rate limit.
type Limit struct {
	Max    int
	Window time.Duration
	Key    KeyFunc
	Allow  AllowFunc
}

// RateLimit enforces l with Redis. A nil client or an invalid limit disables
// it, and Redis errors fail open.
func RateLimit(rdb *redis.Client, l Limit) gin.HandlerFunc {
	if rdb == nil || l.Max <= 0 || l.Window <= 0 || l.Key == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		if l.Allow != nil && l.Allow(c) {
			c.Next()
			return
		}
		if strings.EqualFold(c.Request.Method, http.MethodOptions) {
			c.Next()
			return
		}

		res, err := incrExpireScript.Run(c.Request.Context(), rdb, []string{l.Key(c)}, l.Window.Milliseconds()).Slice()
		if err != nil || len(res) != 2 {
			c.Next()
			return
		}
		count := toInt(res[0])
		resetSec := (toInt(res[1]) + 999) / 1000

		remaining := l.Max - count
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.Itoa(l.Max))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", strconv.Itoa(resetSec))

		if count > l.Max {
			if resetSec > 0 {
				c.Header("Retry-After", strconv.Itoa(resetSec))
			}
			response.Error[any](c, http.StatusTooManyRequests, "rate limit exceeded", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

func toInt(v interface{}) int {
	switch x := v.(type) {
	case int64:
		return int(x)
	case int:
		return x
	case string:
		i, _ := strconv.Atoi(x)
		return i
	}
	return 0
}
