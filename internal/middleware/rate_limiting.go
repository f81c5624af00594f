package middleware

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-redis/redis_rate/v9"

	"github.com/Surya-Kukkapalli/Spot-sub001/internal/telemetry/metrics"
	"github.com/Surya-Kukkapalli/Spot-sub001/pkg"
)

type RequestRateLimiter interface {
	Allow(ctx context.Context, key string, limit redis_rate.Limit) (*redis_rate.Result, error)
}

func RateLimit(
	rateLimiter RequestRateLimiter,
	routerName string,
	allowedPerMin int,
	metricsManager *metrics.Manager,
) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			res, err := rateLimiter.Allow(
				r.Context(),
				limiterKey(routerName, r),
				redis_rate.PerMinute(allowedPerMin),
			)
			if err != nil {
				http.Error(w, "rate limit internal error", http.StatusInternalServerError)
				return
			}

			if res.Allowed > 0 {
				next.ServeHTTP(w, r)
				return
			}

			metricsManager.CounterRateLimitedRequests.Inc()
			http.Error(
				w,
				fmt.Sprintf("retry after %f seconds", res.RetryAfter.Seconds()),
				http.StatusTooEarly,
			)
		})
	}
}

// limiterKey scopes the allowance to the caller, so one client spamming
// the endpoint cannot drain the budget of everyone else. Callers whose
// address cannot be read share the router-wide key.
func limiterKey(routerName string, r *http.Request) string {
	ipAddr, err := pkg.ReadUserIP(r)
	if err != nil {
		return routerName
	}
	return routerName + "::" + ipAddr
}
