// Wishrank - Wishlist-driven Jewelry Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wishrank

package middleware

import (
	"cmp"
	"net/http"
	"slices"
	"sync"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/tomtom215/wishrank/internal/logging"
)

// DefaultSlowThreshold is the latency above which a request is logged.
const DefaultSlowThreshold = time.Second

// RequestSample is one observed request.
type RequestSample struct {
	Route      string
	Method     string
	Duration   time.Duration
	StatusCode int
	Timestamp  time.Time
}

// EndpointStats contains aggregated latency for one route.
type EndpointStats struct {
	Route        string  `json:"route"`
	RequestCount int64   `json:"request_count"`
	AvgMS        float64 `json:"avg_ms"`
	P50MS        float64 `json:"p50_ms"`
	P95MS        float64 `json:"p95_ms"`
	P99MS        float64 `json:"p99_ms"`
	MaxMS        float64 `json:"max_ms"`
	ErrorCount   int64   `json:"error_count"`
}

// PerformanceMonitor keeps a sliding window of recent requests for the
// health endpoint and logs slow ones.
type PerformanceMonitor struct {
	mu         sync.RWMutex
	samples    []RequestSample
	next       int
	full       bool
	slowCutoff time.Duration
}

// NewPerformanceMonitor creates a monitor holding the last window requests.
func NewPerformanceMonitor(window int, slowCutoff time.Duration) *PerformanceMonitor {
	if window < 1 {
		window = 1000
	}
	if slowCutoff <= 0 {
		slowCutoff = DefaultSlowThreshold
	}
	return &PerformanceMonitor{
		samples:    make([]RequestSample, window),
		slowCutoff: slowCutoff,
	}
}

// Record adds a sample, overwriting the oldest once the window is full.
//
//nolint:gocritic // RequestSample is small and copied into the ring
func (pm *PerformanceMonitor) Record(s RequestSample) {
	pm.mu.Lock()
	pm.samples[pm.next] = s
	pm.next++
	if pm.next == len(pm.samples) {
		pm.next = 0
		pm.full = true
	}
	pm.mu.Unlock()
}

// window returns a copy of the recorded samples, oldest first.
func (pm *PerformanceMonitor) window() []RequestSample {
	pm.mu.RLock()
	defer pm.mu.RUnlock()

	if !pm.full {
		return slices.Clone(pm.samples[:pm.next])
	}
	out := make([]RequestSample, 0, len(pm.samples))
	out = append(out, pm.samples[pm.next:]...)
	return append(out, pm.samples[:pm.next]...)
}

// Stats aggregates the window per method and route, busiest first.
func (pm *PerformanceMonitor) Stats() []EndpointStats {
	byRoute := make(map[string][]RequestSample)
	for _, s := range pm.window() {
		key := s.Method + " " + s.Route
		byRoute[key] = append(byRoute[key], s)
	}

	stats := make([]EndpointStats, 0, len(byRoute))
	for route, samples := range byRoute {
		durations := make([]time.Duration, len(samples))
		var sum time.Duration
		var errs int64
		for i, s := range samples {
			durations[i] = s.Duration
			sum += s.Duration
			if s.StatusCode >= http.StatusInternalServerError {
				errs++
			}
		}
		slices.Sort(durations)

		stats = append(stats, EndpointStats{
			Route:        route,
			RequestCount: int64(len(samples)),
			AvgMS:        ms(sum / time.Duration(len(samples))),
			P50MS:        ms(percentile(durations, 0.50)),
			P95MS:        ms(percentile(durations, 0.95)),
			P99MS:        ms(percentile(durations, 0.99)),
			MaxMS:        ms(durations[len(durations)-1]),
			ErrorCount:   errs,
		})
	}

	slices.SortFunc(stats, func(a, b EndpointStats) int {
		if c := cmp.Compare(b.RequestCount, a.RequestCount); c != 0 {
			return c
		}
		return cmp.Compare(a.Route, b.Route)
	})
	return stats
}

// Middleware records every request and warns about slow ones.
func (pm *PerformanceMonitor) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		duration := time.Since(start)
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		route := RoutePattern(r)

		pm.Record(RequestSample{
			Route:      route,
			Method:     r.Method,
			Duration:   duration,
			StatusCode: status,
			Timestamp:  start,
		})

		if duration > pm.slowCutoff {
			logging.Ctx(r.Context()).Warn().
				Str("method", r.Method).
				Str("route", route).
				Dur("duration", duration).
				Dur("threshold", pm.slowCutoff).
				Msg("Slow request detected")
		}
	})
}

// percentile returns the nearest-rank value from a sorted slice.
func percentile(sorted []time.Duration, p float64) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	return sorted[int(float64(len(sorted)-1)*p)]
}

func ms(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
