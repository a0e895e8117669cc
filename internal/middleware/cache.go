package middleware

import (
    "bytes"
    "crypto/sha1"
    "encoding/hex"
    "net/http"

    "github.com/labstack/echo/v4"
    "github.com/redis/go-redis/v9"

    "github.com/iliyamo/hotel-room-reservation/internal/config"
)

// bodyRecorder tees the response body into a buffer while forwarding it to
// the client, so successful responses can be stored after the handler runs.
type bodyRecorder struct {
    http.ResponseWriter
    status int
    buf    bytes.Buffer
    limit  int
}

func (w *bodyRecorder) WriteHeader(code int) {
    w.status = code
    w.ResponseWriter.WriteHeader(code)
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
    if w.buf.Len()+len(b) <= w.limit {
        w.buf.Write(b)
    } else {
        // over the storable size; mark the capture unusable
        w.buf.Reset()
        w.limit = -1
    }
    return w.ResponseWriter.Write(b)
}

// CacheGET returns a middleware that serves 200 JSON responses to GET
// requests from Redis for the configured TTL.  The cache key covers the
// route and raw query string.  Only the public catalog routes should be
// wrapped with this: responses there are identical for every caller.
// Disabled or unreachable Redis degrades to a pass-through.
func CacheGET(cfg config.CacheConfig, rdb *redis.Client) echo.MiddlewareFunc {
    if !cfg.Enabled || rdb == nil {
        return func(next echo.HandlerFunc) echo.HandlerFunc {
            return func(c echo.Context) error { return next(c) }
        }
    }
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            if c.Request().Method != http.MethodGet {
                return next(c)
            }
            ctx := c.Request().Context()
            sum := sha1.Sum([]byte(c.Request().URL.Path + "?" + c.Request().URL.RawQuery))
            key := cfg.Prefix + ":" + hex.EncodeToString(sum[:])

            if body, err := rdb.Get(ctx, key).Bytes(); err == nil {
                return c.JSONBlob(http.StatusOK, body)
            }

            rec := &bodyRecorder{ResponseWriter: c.Response().Writer, limit: cfg.MaxBodyBytes}
            c.Response().Writer = rec
            if err := next(c); err != nil {
                return err
            }
            if rec.status == 0 || rec.status == http.StatusOK {
                if rec.limit > 0 && rec.buf.Len() > 0 {
                    _ = rdb.Set(ctx, key, rec.buf.Bytes(), cfg.TTL).Err()
                }
            }
            return nil
        }
    }
}
