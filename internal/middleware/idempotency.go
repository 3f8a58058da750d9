package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go-timeoff/internal/shared/apperror"
	"go-timeoff/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	IdempotencyHeader     = "Idempotency-Key"
	IdempotencyReplayed   = "Idempotent-Replayed"
	idempotencyLockTTL    = 30 * time.Second
	DefaultIdempotencyTTL = 24 * time.Hour
)

type storedResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

type bodyCapture struct {
	gin.ResponseWriter
	buf bytes.Buffer
}

func (w *bodyCapture) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *bodyCapture) WriteString(s string) (int, error) {
	w.buf.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// IdempotencyCacheKey scopes a key to the caller and the concrete path.
func IdempotencyCacheKey(path, scope, key string) string {
	return fmt.Sprintf("idemp:%s:%s:%s", path, scope, key)
}

// Idempotency replays the stored response for a repeated POST carrying the
// same Idempotency-Key. A request still in flight answers 409. Redis outages
// let the request through unprotected.
func Idempotency(rdb *redis.Client, ttl time.Duration, logger ...*zap.Logger) gin.HandlerFunc {
	l := zap.L().Named("middleware.idempotency")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("middleware.idempotency")
	}
	if ttl <= 0 {
		ttl = DefaultIdempotencyTTL
	}

	return func(c *gin.Context) {
		idempKey := c.GetHeader(IdempotencyHeader)
		if idempKey == "" || c.Request.Method != http.MethodPost || rdb == nil {
			c.Next()
			return
		}

		scope := c.GetString("user_id")
		if scope == "" {
			scope = "anon:" + c.ClientIP()
		}
		cacheKey := IdempotencyCacheKey(c.Request.URL.Path, scope, idempKey)
		lockKey := cacheKey + ":lock"
		ctx := c.Request.Context()

		val, err := rdb.Get(ctx, cacheKey).Bytes()
		switch {
		case err == nil:
			var stored storedResponse
			if json.Unmarshal(val, &stored) == nil {
				c.Header(IdempotencyReplayed, "true")
				c.Data(stored.Status, stored.ContentType, stored.Body)
				c.Abort()
				return
			}
		case !errors.Is(err, redis.Nil):
			l.Warn("idempotency lookup failed, continuing", zap.String("key", cacheKey), zap.Error(err))
			c.Next()
			return
		}

		isNew, err := rdb.SetNX(ctx, lockKey, "locked", idempotencyLockTTL).Result()
		if err != nil {
			l.Warn("idempotency lock failed, continuing", zap.String("key", cacheKey), zap.Error(err))
			c.Next()
			return
		}
		if !isNew {
			response.Error(c, http.StatusConflict, apperror.CodeProcessing, "A request with this Idempotency-Key is still being processed", nil)
			c.Abort()
			return
		}

		capture := &bodyCapture{ResponseWriter: c.Writer}
		c.Writer = capture

		c.Next()

		status := capture.Status()
		if status < http.StatusInternalServerError {
			data, err := json.Marshal(storedResponse{
				Status:      status,
				ContentType: capture.Header().Get("Content-Type"),
				Body:        capture.buf.Bytes(),
			})
			if err == nil {
				if err := rdb.Set(ctx, cacheKey, data, ttl).Err(); err != nil {
					l.Warn("idempotency store failed", zap.String("key", cacheKey), zap.Error(err))
				}
			}
		}
		if err := rdb.Del(ctx, lockKey).Err(); err != nil {
			l.Warn("idempotency unlock failed", zap.String("key", lockKey), zap.Error(err))
		}
	}
}
