package middleware_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"salondash/config"
	"salondash/infras/otel/mocks"
	"salondash/shared/cache"
	cacheMocks "salondash/shared/cache/mocks"
	"salondash/shared/constant"
	"salondash/transport/http/middleware"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newLimiterConfig(enable bool) *config.Config {
	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = enable
	cfg.App.RateLimiter.MaxRequests = 2
	cfg.App.RateLimiter.WindowSeconds = 60

	return cfg
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func storedQuota(count int, resetAt time.Time) func(context.Context, string, any) error {
	return func(_ context.Context, _ string, value any) error {
		return json.Unmarshal([]byte(fmt.Sprintf(`{"count":%d,"reset_at":%d}`, count, resetAt.Unix())), value)
	}
}

func TestRateLimit(t *testing.T) {
	const clientKey = "limiter:10.0.0.1"

	tests := []struct {
		name          string
		enable        bool
		setupMock     func(c *cacheMocks.MockRedisCache)
		expectedCode  int
		expectedQuota string
		retryAfter    bool
	}{
		{
			name:         "disabled",
			enable:       false,
			setupMock:    func(_ *cacheMocks.MockRedisCache) {},
			expectedCode: http.StatusOK,
		},
		{
			name:   "first request in window",
			enable: true,
			setupMock: func(c *cacheMocks.MockRedisCache) {
				c.EXPECT().Get(gomock.Any(), clientKey, gomock.Any()).Return(cache.Nil)
				c.EXPECT().Save(gomock.Any(), clientKey, gomock.Any(), 60).Return(nil)
			},
			expectedCode:  http.StatusOK,
			expectedQuota: "1",
		},
		{
			name:   "over the limit",
			enable: true,
			setupMock: func(c *cacheMocks.MockRedisCache) {
				c.EXPECT().Get(gomock.Any(), clientKey, gomock.Any()).
					DoAndReturn(storedQuota(2, time.Now().Add(30*time.Second)))
			},
			expectedCode: http.StatusTooManyRequests,
			retryAfter:   true,
		},
		{
			name:   "elapsed window starts over",
			enable: true,
			setupMock: func(c *cacheMocks.MockRedisCache) {
				c.EXPECT().Get(gomock.Any(), clientKey, gomock.Any()).
					DoAndReturn(storedQuota(9, time.Now().Add(-time.Second)))
				c.EXPECT().Save(gomock.Any(), clientKey, gomock.Any(), 60).Return(nil)
			},
			expectedCode:  http.StatusOK,
			expectedQuota: "1",
		},
		{
			name:   "cache outage lets requests through",
			enable: true,
			setupMock: func(c *cacheMocks.MockRedisCache) {
				c.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(assert.AnError)
			},
			expectedCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			c := cacheMocks.NewMockRedisCache(ctrl)
			tt.setupMock(c)

			app := middleware.NewAppMiddleware(mocks.NewOtel(), newLimiterConfig(tt.enable), c)

			// RealIP has already rewritten RemoteAddr; forwarding headers are not trusted again.
			req := httptest.NewRequest(http.MethodGet, "/v1/bookings", nil)
			req.RemoteAddr = "10.0.0.1:52100"
			req.Header.Set(constant.RequestHeaderForwardedFor, "203.0.113.9")

			rec := httptest.NewRecorder()
			app.RateLimit()(okHandler()).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.Equal(t, tt.expectedQuota, rec.Header().Get(constant.RequestHeaderRateLimitRemaining))

			if tt.retryAfter {
				seconds, err := strconv.Atoi(rec.Header().Get("Retry-After"))
				require.NoError(t, err)
				assert.InDelta(t, 30, seconds, 2)
			} else {
				assert.Empty(t, rec.Header().Get("Retry-After"))
			}
		})
	}
}

func TestTracing_PassesThrough(t *testing.T) {
	app := middleware.NewAppMiddleware(mocks.NewOtel(), &config.Config{}, nil)

	handler := app.Tracing(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
}
