package middleware

import (
    "fmt"
    "net/http"
    "strconv"

    "github.com/labstack/echo/v4"
    "github.com/redis/go-redis/v9"

    "github.com/iliyamo/hotel-room-reservation/internal/config"
)

// RateLimit returns a fixed-window limiter keyed by client IP and route.
// The counter lives in Redis so the limit holds across replicas.  When the
// limiter is disabled or Redis is unavailable the middleware passes requests
// through untouched; a Redis error at request time also fails open.
func RateLimit(cfg config.RateLimitConfig, rdb *redis.Client) echo.MiddlewareFunc {
    if !cfg.Enabled || rdb == nil {
        return func(next echo.HandlerFunc) echo.HandlerFunc {
            return func(c echo.Context) error { return next(c) }
        }
    }
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            ctx := c.Request().Context()
            key := fmt.Sprintf("%s:%s:%s", cfg.Prefix, c.RealIP(), c.Path())

            n, err := rdb.Incr(ctx, key).Result()
            if err != nil {
                return next(c)
            }
            if n == 1 {
                _ = rdb.Expire(ctx, key, cfg.Window).Err()
            }
            if n > int64(cfg.Limit) {
                ttl, _ := rdb.TTL(ctx, key).Result()
                if ttl > 0 {
                    c.Response().Header().Set("Retry-After", strconv.Itoa(int(ttl.Seconds())+1))
                }
                return c.JSON(http.StatusTooManyRequests, echo.Map{"error": "rate limit exceeded"})
            }
            return next(c)
        }
    }
}
