package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/NovaMenteServices/clinic-manager/internal/cache"
	"github.com/NovaMenteServices/clinic-manager/internal/middleware"
)

// fakeCache guarda contadores em memória, sem expiração.
type fakeCache struct {
	counters map[string]int
	down     bool
}

func newFakeCache() *fakeCache {
	return &fakeCache{counters: make(map[string]int)}
}

func (f *fakeCache) Get(ctx context.Context, key string) (string, error) {
	return "", cache.ErrCacheMiss
}

func (f *fakeCache) GetInt(ctx context.Context, key string) (int, error) {
	if f.down {
		return 0, errors.New("connection refused")
	}
	v, ok := f.counters[key]
	if !ok {
		return 0, cache.ErrCacheMiss
	}
	return v, nil
}

func (f *fakeCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	if f.down {
		return errors.New("connection refused")
	}
	f.counters[key] = value.(int)
	return nil
}

func (f *fakeCache) Incr(ctx context.Context, key string) error {
	if f.down {
		return errors.New("connection refused")
	}
	f.counters[key]++
	return nil
}

func (f *fakeCache) Delete(ctx context.Context, key string) error {
	delete(f.counters, key)
	return nil
}

func loginRouter(client cache.Client, limit int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/login", middleware.LoginRateLimiter(client, limit, time.Minute), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func postLogin(r *gin.Engine) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.RemoteAddr = "10.0.0.1:5000"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLoginRateLimiterBlocksAfterLimit(t *testing.T) {
	r := loginRouter(newFakeCache(), 3)

	for i := 0; i < 3; i++ {
		w := postLogin(r)
		assert.Equal(t, http.StatusOK, w.Code, "tentativa %d deveria passar", i+1)
	}

	w := postLogin(r)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "too_many_requests")
}

func TestLoginRateLimiterFailsOpenWhenRedisDown(t *testing.T) {
	client := newFakeCache()
	client.down = true
	r := loginRouter(client, 1)

	for i := 0; i < 5; i++ {
		w := postLogin(r)
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestLoginRateLimiterSetsRemainingHeader(t *testing.T) {
	r := loginRouter(newFakeCache(), 5)

	w := postLogin(r)
	assert.Equal(t, "4", w.Header().Get("X-RateLimit-Remaining"))

	w = postLogin(r)
	assert.Equal(t, "3", w.Header().Get("X-RateLimit-Remaining"))
}
