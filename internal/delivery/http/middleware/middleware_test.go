package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	"candidate-service/internal/delivery/http/response"
	"candidate-service/pkg/apperror"
	"candidate-service/pkg/audit"
	"candidate-service/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(r *gin.Engine, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var body response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/ping", func(c *gin.Context) { response.Success(c, http.StatusOK, "pong", nil) })

	t.Run("generates an id", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/ping", nil)
		id := w.Header().Get(RequestIDHeader)
		_, err := uuid.Parse(id)
		require.NoError(t, err)
		assert.Equal(t, id, decode(t, w).RequestID)
	})

	t.Run("keeps a valid caller id", func(t *testing.T) {
		given := uuid.NewString()
		w := serve(r, http.MethodGet, "/ping", map[string]string{RequestIDHeader: given})
		assert.Equal(t, given, w.Header().Get(RequestIDHeader))
	})

	t.Run("replaces a malformed caller id", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/ping", map[string]string{RequestIDHeader: "<script>"})
		assert.NotEqual(t, "<script>", w.Header().Get(RequestIDHeader))
	})
}

func TestErrorHandler(t *testing.T) {
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/missing", func(c *gin.Context) { _ = c.Error(apperror.NotFound("Candidate with id 9 not found")) })
	r.GET("/boom", func(c *gin.Context) { _ = c.Error(errors.New("pq: password authentication failed")) })

	w := serve(r, http.MethodGet, "/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	body := decode(t, w)
	assert.False(t, body.Success)
	assert.Equal(t, "Candidate with id 9 not found", body.Message)

	w = serve(r, http.MethodGet, "/boom", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "password")
}

func TestCORSMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware([]string{"http://localhost:3000"}))
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := serve(r, http.MethodOptions, "/ok", map[string]string{"Origin": "http://localhost:3000"})
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))

	w = serve(r, http.MethodOptions, "/ok", map[string]string{"Origin": "https://evil.example"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = serve(r, http.MethodGet, "/ok", map[string]string{"Origin": "https://evil.example"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestSecurityHeaders(t *testing.T) {
	r := gin.New()
	r.Use(SecurityHeadersMiddleware())
	r.GET("/v1/skills", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/swagger/index.html", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := serve(r, http.MethodGet, "/v1/skills", nil)
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Contains(t, w.Header().Get("Content-Security-Policy"), "default-src 'none'")

	w = serve(r, http.MethodGet, "/swagger/index.html", nil)
	assert.Contains(t, w.Header().Get("Content-Security-Policy"), "'unsafe-inline'")
}

func TestRateLimiterInMemory(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(DefaultRateLimitConfig(2, time.Minute), nil)
	limiter.now = func() time.Time { return now }

	r := gin.New()
	r.POST("/v1/skills", limiter.Middleware(), func(c *gin.Context) { c.Status(http.StatusCreated) })

	for i := 0; i < 2; i++ {
		w := serve(r, http.MethodPost, "/v1/skills", nil)
		assert.Equal(t, http.StatusCreated, w.Code)
	}

	w := serve(r, http.MethodPost, "/v1/skills", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "60", w.Header().Get("Retry-After"))
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))

	now = now.Add(61 * time.Second)
	w = serve(r, http.MethodPost, "/v1/skills", nil)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "1", w.Header().Get("X-RateLimit-Remaining"))

	now = now.Add(2 * time.Minute)
	limiter.Sweep()
	_, found := limiter.entries.Load(limiter.cfg.KeyPrefix + "192.0.2.1")
	assert.False(t, found)
}

func TestRateLimiterSweepKeepsConcurrentHits(t *testing.T) {
	const hits = 200
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	limiter := NewRateLimiter(DefaultRateLimitConfig(hits, time.Minute), nil)
	limiter.now = func() time.Time { return start }

	key := "rate:198.51.100.7"
	limiter.hitMemory(key)
	// The seeded window is now long expired, so sweeps race the first new hit.
	later := start.Add(5 * time.Minute)
	limiter.now = func() time.Time { return later }

	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		counts []int
		done   = make(chan struct{})
	)
	go func() {
		for {
			select {
			case <-done:
				return
			default:
				limiter.Sweep()
			}
		}
	}()

	for i := 0; i < hits; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			count, _ := limiter.hitMemory(key)
			mu.Lock()
			counts = append(counts, count)
			mu.Unlock()
		}()
	}
	wg.Wait()
	close(done)

	value, ok := limiter.entries.Load(key)
	require.True(t, ok)
	entry := value.(*rateLimitEntry)
	entry.mu.Lock()
	assert.Equal(t, hits, entry.count)
	assert.Equal(t, later.Add(time.Minute), entry.resetAt)
	entry.mu.Unlock()

	sort.Ints(counts)
	for i, c := range counts {
		assert.Equal(t, i+1, c)
	}
}

func TestRateLimiterDisabled(t *testing.T) {
	r := gin.New()
	r.POST("/x", NewRateLimiter(DefaultRateLimitConfig(0, time.Minute), nil).Middleware(),
		func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, serve(r, http.MethodPost, "/x", nil).Code)
	}
}

func TestMetricsMiddleware(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	r := gin.New()
	r.Use(Metrics(m))
	r.GET("/v1/candidates/:id", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	serve(r, http.MethodGet, "/v1/candidates/1", nil)
	serve(r, http.MethodGet, "/v1/candidates/2", nil)
	serve(r, http.MethodGet, "/nowhere", nil)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("/v1/candidates/:id", "GET", "404")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("unmatched", "GET", "404")))
}

func TestRateLimiterAuditsRejections(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultRateLimitConfig(1, time.Minute)
	cfg.Audit = audit.NewWithSyncer("candidate-service", "test", zapcore.AddSync(&buf))
	limiter := NewRateLimiter(cfg, nil)

	r := gin.New()
	r.POST("/v1/skills", limiter.Middleware(), func(c *gin.Context) { c.Status(http.StatusCreated) })

	serve(r, http.MethodPost, "/v1/skills", nil)
	assert.Empty(t, buf.String())

	serve(r, http.MethodPost, "/v1/skills", nil)
	assert.Contains(t, buf.String(), `"event":"rate_limit_triggered"`)
	assert.Contains(t, buf.String(), `"ip":"192.0.2.1"`)
}
