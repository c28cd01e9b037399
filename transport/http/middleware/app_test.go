package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tavola/config"
	"tavola/infras/metrics"
	"tavola/infras/otel/mocks"
	"tavola/shared/cache"
	"tavola/shared/constant"
	"tavola/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-redis/redismock/v9"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
})

func limitedConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = 2
	cfg.App.RateLimiter.WindowSeconds = 60

	return cfg
}

func newRequest() *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/v1/bookings", nil)
	req.RemoteAddr = "192.0.2.1:52110"
	req.Header.Set(constant.RequestHeaderUserAgent, "test-agent")

	return req
}

func TestRateLimit(t *testing.T) {
	const key = "limiter:192.0.2.1:test-agent"

	t.Run("first request opens the window", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		mock.ExpectIncr(key).SetVal(1)
		mock.ExpectExpire(key, 60*time.Second).SetVal(true)

		mw := middleware.NewAppMiddleware(mocks.NewOtel(), limitedConfig(), cache.NewRedisCache(client, mocks.NewOtel()), metrics.New())

		rec := httptest.NewRecorder()
		mw.RateLimit()(okHandler).ServeHTTP(rec, newRequest())

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "2", rec.Header().Get(constant.RequestHeaderRateLimit))
		assert.Equal(t, "1", rec.Header().Get(constant.RequestHeaderRateLimitRemaining))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("over the limit", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		mock.ExpectIncr(key).SetVal(3)

		mw := middleware.NewAppMiddleware(mocks.NewOtel(), limitedConfig(), cache.NewRedisCache(client, mocks.NewOtel()), metrics.New())

		rec := httptest.NewRecorder()
		mw.RateLimit()(okHandler).ServeHTTP(rec, newRequest())

		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	})

	t.Run("reads are not counted", func(t *testing.T) {
		client, mock := redismock.NewClientMock()

		mw := middleware.NewAppMiddleware(mocks.NewOtel(), limitedConfig(), cache.NewRedisCache(client, mocks.NewOtel()), metrics.New())

		req := newRequest()
		req.Method = http.MethodGet

		rec := httptest.NewRecorder()
		mw.RateLimit()(okHandler).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Header().Get(constant.RequestHeaderRateLimit))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("address without port", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		mock.ExpectIncr(key).SetVal(2)

		mw := middleware.NewAppMiddleware(mocks.NewOtel(), limitedConfig(), cache.NewRedisCache(client, mocks.NewOtel()), metrics.New())

		req := newRequest()
		req.RemoteAddr = "192.0.2.1"

		rec := httptest.NewRecorder()
		mw.RateLimit()(okHandler).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, "0", rec.Header().Get(constant.RequestHeaderRateLimitRemaining))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("redis failure lets the request through", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		mock.ExpectIncr(key).SetErr(errors.New("connection refused"))

		mw := middleware.NewAppMiddleware(mocks.NewOtel(), limitedConfig(), cache.NewRedisCache(client, mocks.NewOtel()), metrics.New())

		rec := httptest.NewRecorder()
		mw.RateLimit()(okHandler).ServeHTTP(rec, newRequest())

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Header().Get(constant.RequestHeaderRateLimit))
	})

	t.Run("without redis everything passes", func(t *testing.T) {
		mw := middleware.NewAppMiddleware(mocks.NewOtel(), limitedConfig(), cache.NewRedisCache(nil, mocks.NewOtel()), metrics.New())

		rec := httptest.NewRecorder()
		mw.RateLimit()(okHandler).ServeHTTP(rec, newRequest())

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestMetrics(t *testing.T) {
	m := metrics.New()
	mw := middleware.NewAppMiddleware(mocks.NewOtel(), &config.Config{}, nil, m)

	router := chi.NewRouter()
	router.Use(mw.Tracing, mw.Metrics)
	router.Get("/v1/bookings/{id}", okHandler)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/bookings/BK1", nil))

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, 1, testutil.CollectAndCount(m.RequestDuration))

	count, err := testutil.GatherAndCount(m.Registry(), "tavola_http_request_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestCORS(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.CORS.Enable = true
	cfg.App.CORS.AllowedOrigins = []string{"https://ourhouse.example"}
	cfg.App.CORS.AllowedMethods = []string{http.MethodGet, http.MethodPost}

	mw := middleware.NewAppMiddleware(mocks.NewOtel(), cfg, nil, metrics.New())

	req := httptest.NewRequest(http.MethodGet, "/v1/slots", nil)
	req.Header.Set("Origin", "https://ourhouse.example")

	rec := httptest.NewRecorder()
	mw.CORS()(okHandler).ServeHTTP(rec, req)

	assert.Equal(t, "https://ourhouse.example", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestTracing(t *testing.T) {
	recorder := mocks.NewRecorder()
	mw := middleware.NewAppMiddleware(recorder, &config.Config{}, nil, metrics.New())

	router := chi.NewRouter()
	router.Use(mw.Tracing)
	router.Post("/v1/bookings", okHandler)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, newRequest())

	require.Equal(t, http.StatusNoContent, rec.Code)

	spans := recorder.Find("POST /v1/bookings")
	require.Len(t, spans, 1)
	assert.Equal(t, "192.0.2.1", spans[0].Attributes["http.source"])
	assert.Equal(t, "test-agent", spans[0].Attributes["http.user_agent"])
	assert.Equal(t, "/v1/bookings", spans[0].Attributes["http.route"])
	assert.Equal(t, http.StatusNoContent, spans[0].Attributes["http.status_code"])
}
