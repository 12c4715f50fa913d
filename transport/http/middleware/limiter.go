package middleware

import (
	"net"
	"net/http"
	"salondash/shared"
	"salondash/shared/cache"
	"salondash/shared/constant"
	"salondash/transport/http/response"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	cacheKeyRateLimit = "limiter"
	headerRetryAfter  = "Retry-After"
)

// quota is one client's fixed window. ResetAt does not move while the window is open.
type quota struct {
	Count   int   `json:"count"`
	ResetAt int64 `json:"reset_at"`
}

// RateLimit counts requests per client address in Redis. The address is the one chi's RealIP
// middleware left in RemoteAddr. When Redis is unavailable requests pass unmetered.
func (a *appMiddleware) RateLimit() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !a.config.App.RateLimiter.Enable {
				next.ServeHTTP(w, r)

				return
			}

			maxReqs := a.config.App.RateLimiter.MaxRequests
			window := int64(a.config.App.RateLimiter.WindowSeconds)
			cacheKey := shared.BuildCacheKey(cacheKeyRateLimit, clientAddr(r))
			now := time.Now().Unix()

			current := quota{}

			err := a.cache.Get(r.Context(), cacheKey, &current)
			if err != nil && !cache.IsMiss(err) {
				log.Warn().Err(err).Msg("rate limiter cache unavailable")
				next.ServeHTTP(w, r)

				return
			}

			if err != nil || current.ResetAt <= now {
				current = quota{ResetAt: now + window}
			}

			current.Count++
			ttl := max(current.ResetAt-now, 1)

			if current.Count > maxReqs {
				w.Header().Set(headerRetryAfter, strconv.FormatInt(ttl, 10))
				response.WithRequestLimitExceeded(w)

				return
			}

			if err := a.cache.Save(r.Context(), cacheKey, current, int(ttl)); err != nil {
				log.Warn().Err(err).Msg("failed to save rate limiter quota")
				next.ServeHTTP(w, r)

				return
			}

			w.Header().Set(constant.RequestHeaderRateLimit, strconv.Itoa(maxReqs))
			w.Header().Set(constant.RequestHeaderRateLimitRemaining, strconv.Itoa(max(0, maxReqs-current.Count)))
			w.Header().Set(constant.RequestHeaderRateLimitWindow, strconv.FormatInt(ttl, 10))

			next.ServeHTTP(w, r)
		})
	}
}

func clientAddr(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}

	return r.RemoteAddr
}
