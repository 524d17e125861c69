// Package metrics bundles the Prometheus collectors shared by the services
// and the helpers that wire them into echo.
package metrics

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels for proximity searches
const (
	OutcomeOK      = "ok"
	OutcomeInvalid = "invalid"
	OutcomeError   = "error"
)

// Candidate sources for proximity searches
const (
	SourceGeoIndex = "geo_index"
	SourceDatabase = "database"
)

// Collector holds the HTTP and proximity matching metrics
type Collector struct {
	gatherer prometheus.Gatherer

	HTTPRequests  *prometheus.CounterVec
	HTTPDurations *prometheus.HistogramVec

	Matches       *prometheus.CounterVec
	Candidates    *prometheus.CounterVec
	MatchDuration prometheus.Histogram
}

// NewCollector registers the metrics against reg, defaulting to the global
// Prometheus registry when nil. Registering twice on the same registry
// returns the existing collectors.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	requests, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of handled HTTP requests, labeled by method, route and status code.",
	}, []string{"method", "route", "code"}), "http_requests_total")
	if err != nil {
		return nil, err
	}

	durations, err := register(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency in seconds.",
		Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
	}, []string{"method", "route"}), "http_request_duration_seconds")
	if err != nil {
		return nil, err
	}

	matches, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "proximity_matches_total",
		Help: "Proximity searches, labeled by outcome and candidate source.",
	}, []string{"outcome", "source"}), "proximity_matches_total")
	if err != nil {
		return nil, err
	}

	candidates, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "proximity_candidates_total",
		Help: "Requests evaluated by the matcher, labeled by whether they were within radius.",
	}, []string{"result"}), "proximity_candidates_total")
	if err != nil {
		return nil, err
	}

	matchDuration, err := register(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "proximity_match_duration_seconds",
		Help:    "End to end latency of a proximity search in seconds.",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
	}), "proximity_match_duration_seconds")
	if err != nil {
		return nil, err
	}

	return &Collector{
		gatherer:      gatherer,
		HTTPRequests:  requests,
		HTTPDurations: durations,
		Matches:       matches,
		Candidates:    candidates,
		MatchDuration: matchDuration,
	}, nil
}

// ObserveMatch records one proximity search. evaluated is the number of
// candidates handed to the matcher and matched the number returned.
func (c *Collector) ObserveMatch(outcome, source string, evaluated, matched int, elapsed time.Duration) {
	if c == nil {
		return
	}
	c.Matches.WithLabelValues(outcome, source).Inc()
	if evaluated > 0 {
		c.Candidates.WithLabelValues("matched").Add(float64(matched))
		c.Candidates.WithLabelValues("rejected").Add(float64(evaluated - matched))
	}
	c.MatchDuration.Observe(elapsed.Seconds())
}

// EchoMiddleware records request counts and durations per route
func (c *Collector) EchoMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			start := time.Now()
			err := next(ctx)

			if c == nil {
				return err
			}

			status := ctx.Response().Status
			if err != nil {
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				} else if status < http.StatusBadRequest {
					status = http.StatusInternalServerError
				}
			}
			route := ctx.Path()
			if route == "" {
				route = "unknown"
			}
			method := ctx.Request().Method

			c.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
			c.HTTPDurations.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
			return err
		}
	}
}

// Handler exposes a ready-to-use /metrics handler
func (c *Collector) Handler() http.Handler {
	gatherer := c.gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

func register[T prometheus.Collector](reg prometheus.Registerer, collector T, name string) (T, error) {
	if err := reg.Register(collector); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
			var zero T
			return zero, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		var zero T
		return zero, err
	}
	return collector, nil
}
