// Wishrank - Wishlist-driven Jewelry Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wishrank

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
)

func TestPerformanceMonitor_Stats(t *testing.T) {
	pm := NewPerformanceMonitor(100, time.Second)

	for i := 1; i <= 10; i++ {
		pm.Record(RequestSample{Route: "/a", Method: "GET", Duration: time.Duration(i) * time.Millisecond, StatusCode: 200})
	}
	pm.Record(RequestSample{Route: "/b", Method: "POST", Duration: 5 * time.Millisecond, StatusCode: 500})

	stats := pm.Stats()
	if len(stats) != 2 {
		t.Fatalf("len(stats) = %d, want 2", len(stats))
	}

	a := stats[0]
	if a.Route != "GET /a" || a.RequestCount != 10 {
		t.Errorf("stats[0] = %+v, want GET /a with 10 requests", a)
	}
	if a.AvgMS != 5.5 {
		t.Errorf("AvgMS = %v, want 5.5", a.AvgMS)
	}
	if a.P50MS != 5 || a.P95MS != 9 || a.MaxMS != 10 {
		t.Errorf("percentiles = p50 %v p95 %v max %v, want 5/9/10", a.P50MS, a.P95MS, a.MaxMS)
	}

	if stats[1].ErrorCount != 1 {
		t.Errorf("POST /b ErrorCount = %d, want 1", stats[1].ErrorCount)
	}
}

func TestPerformanceMonitor_WindowWraps(t *testing.T) {
	pm := NewPerformanceMonitor(3, time.Second)

	for i := 0; i < 5; i++ {
		pm.Record(RequestSample{Route: "/r", Method: "GET", Duration: time.Duration(i) * time.Millisecond})
	}

	window := pm.window()
	if len(window) != 3 {
		t.Fatalf("len(window) = %d, want 3", len(window))
	}
	for i, want := range []time.Duration{2, 3, 4} {
		if window[i].Duration != want*time.Millisecond {
			t.Errorf("window[%d] = %v, want %v", i, window[i].Duration, want*time.Millisecond)
		}
	}
}

func TestPerformanceMonitor_Empty(t *testing.T) {
	pm := NewPerformanceMonitor(0, 0)
	if stats := pm.Stats(); len(stats) != 0 {
		t.Errorf("Stats() = %v, want empty", stats)
	}
	if pm.slowCutoff != DefaultSlowThreshold {
		t.Errorf("slowCutoff = %v, want %v", pm.slowCutoff, DefaultSlowThreshold)
	}
}

func TestPerformanceMonitor_Middleware(t *testing.T) {
	pm := NewPerformanceMonitor(10, time.Nanosecond)

	r := chi.NewRouter()
	r.Use(pm.Middleware)
	r.Get("/items/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	for _, path := range []string{"/items/1", "/items/2"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	window := pm.window()
	if len(window) != 2 {
		t.Fatalf("len(window) = %d, want 2", len(window))
	}
	if window[0].Route != "/items/{id}" || window[0].StatusCode != http.StatusTeapot {
		t.Errorf("sample = %+v, want route /items/{id} status 418", window[0])
	}
}
