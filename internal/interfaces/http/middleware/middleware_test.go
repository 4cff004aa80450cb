package middleware

import (
	"context"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stealthycommerce/stealthy/internal/infrastructure/ratelimit"
	"github.com/stealthycommerce/stealthy/internal/shared/logger"
	"github.com/stealthycommerce/stealthy/internal/shared/logger/loggertest"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newEngine(mw ...gin.HandlerFunc) *gin.Engine {
	engine := gin.New()
	engine.Use(mw...)
	engine.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(RequestIDKey))
	})
	engine.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})
	return engine
}

func serve(engine *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestRequestID_GeneratesAndEchoes(t *testing.T) {
	engine := newEngine(RequestID())

	w := serve(engine, httptest.NewRequest(http.MethodGet, "/ping", nil))

	id := w.Header().Get(RequestIDHeader)
	_, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, id, w.Body.String())
}

func TestRequestID_ReusesInbound(t *testing.T) {
	engine := newEngine(RequestID())

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "req-123")
	w := serve(engine, req)

	assert.Equal(t, "req-123", w.Header().Get(RequestIDHeader))
	assert.Equal(t, "req-123", w.Body.String())
}

func TestRecovery_AnswersInternalError(t *testing.T) {
	rec := loggertest.NewRecorder()
	engine := newEngine(RequestID(), Recovery(rec))

	w := serve(engine, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Internal server error occurred")
	require.Len(t, rec.EntriesAt("error"), 1)
	stack, ok := rec.EntriesAt("error")[0].Field("stack")
	require.True(t, ok)
	assert.NotEmpty(t, stack)
}

func TestCORS(t *testing.T) {
	engine := newEngine(CORS([]string{"https://shop.example.com"}))

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "https://shop.example.com")
	w := serve(engine, req)
	assert.Equal(t, "https://shop.example.com", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	w = serve(engine, req)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/ping", nil)
	req.Header.Set("Origin", "https://shop.example.com")
	w = serve(engine, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestCORS_Wildcard(t *testing.T) {
	engine := newEngine(CORS([]string{"*"}))

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := serve(engine, req)

	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}

type stubLimiter struct {
	result ratelimit.Result
	err    error
	keys   []string
}

func (s *stubLimiter) Allow(ctx context.Context, key string, limit ratelimit.Limit) (ratelimit.Result, error) {
	s.keys = append(s.keys, key)
	return s.result, s.err
}

func (s *stubLimiter) Reset(ctx context.Context, key string) error {
	return nil
}

func TestRateLimiter(t *testing.T) {
	limit := ratelimit.Limit{Requests: 10, Window: time.Minute}

	t.Run("allowed", func(t *testing.T) {
		stub := &stubLimiter{result: ratelimit.Result{Allowed: true, Remaining: 9}}
		engine := newEngine(NewRateLimiter(stub, limit, logger.NewNopLogger()).Limit())

		w := serve(engine, httptest.NewRequest(http.MethodGet, "/ping", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "9", w.Header().Get("X-RateLimit-Remaining"))
		require.Len(t, stub.keys, 1)
		assert.Contains(t, stub.keys[0], "ip:")
	})

	t.Run("rejected", func(t *testing.T) {
		stub := &stubLimiter{result: ratelimit.Result{Allowed: false, RetryAt: time.Now().Add(30 * time.Second)}}
		engine := newEngine(NewRateLimiter(stub, limit, logger.NewNopLogger()).Limit())

		w := serve(engine, httptest.NewRequest(http.MethodGet, "/ping", nil))

		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.NotEmpty(t, w.Header().Get("Retry-After"))
	})

	t.Run("backend failure lets requests through", func(t *testing.T) {
		stub := &stubLimiter{err: stderrors.New("redis: connection refused")}
		engine := newEngine(NewRateLimiter(stub, limit, logger.NewNopLogger()).Limit())

		w := serve(engine, httptest.NewRequest(http.MethodGet, "/ping", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestLogger_LevelsByStatus(t *testing.T) {
	rec := loggertest.NewRecorder()
	engine := newEngine(RequestID(), Logger(rec))

	serve(engine, httptest.NewRequest(http.MethodGet, "/missing", nil))

	warns := rec.EntriesAt("warn")
	require.Len(t, warns, 1)
	status, ok := warns[0].Field("status")
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, status)
	_, ok = warns[0].Field("request_id")
	assert.True(t, ok)
}

func TestLoggerWithConfig_SkipsQuietPaths(t *testing.T) {
	rec := loggertest.NewRecorder()
	engine := newEngine(LoggerWithConfig(rec, LoggerConfig{SkipPaths: []string{"/ping"}}))

	serve(engine, httptest.NewRequest(http.MethodGet, "/ping", nil))
	serve(engine, httptest.NewRequest(http.MethodGet, "/panic-free-missing", nil))

	assert.Empty(t, rec.EntriesAt("debug"))
	assert.Len(t, rec.EntriesAt("warn"), 1)
}
