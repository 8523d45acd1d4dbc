// Package metrics defines and registers the custom Prometheus metrics of the
// storyboard API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics are registered with the default Prometheus registry via promauto
// and exposed on GET /metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "storyboard"

// ── Panel metrics ─────────────────────────────────────────────────────────────

// PanelsCreatedTotal counts panels appended to a challenge.
var PanelsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "panels_created_total",
		Help:      "Total number of panels created.",
	},
)

// VotesCastTotal counts accepted votes.
var VotesCastTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "votes_cast_total",
		Help:      "Total number of votes recorded.",
	},
)

// VotesRejectedTotal counts votes that were not recorded.
// Label:
//   - reason: "duplicate", "panel_not_found", "user_not_found" or "error"
var VotesRejectedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "votes_rejected_total",
		Help:      "Total number of rejected votes, by reason.",
	},
	[]string{"reason"},
)

// ── Generation metrics ────────────────────────────────────────────────────────

// GenerationRequestsTotal counts calls into the generation service.
// Labels:
//   - kind: "image", "caption" or "theme"
//   - result: "ok", "cache_hit", "shared" or "error"
var GenerationRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "generation_requests_total",
		Help:      "Total number of generation requests, by kind and result.",
	},
	[]string{"kind", "result"},
)

// GenerationDuration measures upstream generator latency.
var GenerationDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "generation_duration_seconds",
		Help:      "Duration of calls to the upstream generator.",
		Buckets:   []float64{.25, .5, 1, 2.5, 5, 10, 20, 40, 60},
	},
	[]string{"kind"},
)

// ── HTTP metrics ──────────────────────────────────────────────────────────────

// HTTPRequestDuration measures request handling time by route template.
var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests, by method, route and status code.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"method", "route", "code"},
)

// Middleware records HTTPRequestDuration for every request. The route label
// is the registered path template, so ids do not explode cardinality.
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			code := c.Response().Status
			if err != nil {
				if he, ok := err.(*echo.HTTPError); ok {
					code = he.Code
				}
			}
			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			HTTPRequestDuration.
				WithLabelValues(c.Request().Method, route, strconv.Itoa(code)).
				Observe(time.Since(start).Seconds())
			return err
		}
	}
}
