package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-timeoff/internal/middleware"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIdempotencyRouter(t *testing.T, status int) (*gin.Engine, *miniredis.Miniredis, *int) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	calls := 0
	r := gin.New()
	r.POST("/api/v1/forms/:form_type", middleware.Idempotency(rdb, time.Hour), func(c *gin.Context) {
		calls++
		c.JSON(status, gin.H{"ok": true, "call": calls})
	})
	return r, mr, &calls
}

func postWithKey(r *gin.Engine, key string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/forms/day_off", nil)
	if key != "" {
		req.Header.Set(middleware.IdempotencyHeader, key)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestIdempotency(t *testing.T) {
	t.Run("Replays the first response", func(t *testing.T) {
		r, _, calls := newIdempotencyRouter(t, http.StatusCreated)

		first := postWithKey(r, "abc")
		second := postWithKey(r, "abc")

		assert.Equal(t, http.StatusCreated, first.Code)
		assert.Equal(t, http.StatusCreated, second.Code)
		assert.Equal(t, first.Body.String(), second.Body.String())
		assert.Equal(t, "true", second.Header().Get(middleware.IdempotencyReplayed))
		assert.Equal(t, 1, *calls)
	})

	t.Run("Different keys run separately", func(t *testing.T) {
		r, _, calls := newIdempotencyRouter(t, http.StatusAccepted)

		postWithKey(r, "one")
		postWithKey(r, "two")

		assert.Equal(t, 2, *calls)
	})

	t.Run("No key bypasses", func(t *testing.T) {
		r, _, calls := newIdempotencyRouter(t, http.StatusAccepted)

		postWithKey(r, "")
		postWithKey(r, "")

		assert.Equal(t, 2, *calls)
	})

	t.Run("Server errors are not stored", func(t *testing.T) {
		r, _, calls := newIdempotencyRouter(t, http.StatusInternalServerError)

		postWithKey(r, "abc")
		postWithKey(r, "abc")

		assert.Equal(t, 2, *calls)
	})

	t.Run("In-flight duplicate conflicts", func(t *testing.T) {
		r, mr, calls := newIdempotencyRouter(t, http.StatusCreated)
		lockKey := middleware.IdempotencyCacheKey("/api/v1/forms/day_off", "anon:192.0.2.1", "abc") + ":lock"
		require.NoError(t, mr.Set(lockKey, "locked"))

		w := postWithKey(r, "abc")

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, 0, *calls)
	})

	t.Run("Lock released after completion", func(t *testing.T) {
		r, mr, _ := newIdempotencyRouter(t, http.StatusCreated)

		postWithKey(r, "abc")

		lockKey := middleware.IdempotencyCacheKey("/api/v1/forms/day_off", "anon:192.0.2.1", "abc") + ":lock"
		assert.False(t, mr.Exists(lockKey))
		rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		defer rdb.Close()
		ttl, err := rdb.TTL(context.Background(), middleware.IdempotencyCacheKey("/api/v1/forms/day_off", "anon:192.0.2.1", "abc")).Result()
		require.NoError(t, err)
		assert.Greater(t, ttl, time.Duration(0))
	})
}
