// Wishrank - Wishlist-driven Jewelry Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wishrank

package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/wishrank/internal/catalog"
	"github.com/tomtom215/wishrank/internal/models"
	"github.com/tomtom215/wishrank/internal/recommend"
	"github.com/tomtom215/wishrank/internal/store"
)

// envelope mirrors models.APIResponse with Data left raw for decoding.
type envelope struct {
	Status   string           `json:"status"`
	Data     json.RawMessage  `json:"data"`
	Metadata models.Metadata  `json:"metadata"`
	Error    *models.APIError `json:"error"`
}

type testServer struct {
	handler http.Handler
	store   *store.Store
}

// newTestServer builds the full router over an in-memory store seeded with
// the reference catalog. Rate limiting is off unless mw says otherwise.
func newTestServer(t *testing.T, mw *ChiMiddlewareConfig) *testServer {
	t.Helper()

	st, err := store.Open(store.Config{InMemory: true})
	if err != nil {
		t.Fatalf("store.Open() error = %v", err)
	}
	t.Cleanup(func() { _ = st.Close() })

	if _, err := st.PutItems(context.Background(), catalog.Reference()); err != nil {
		t.Fatalf("PutItems() error = %v", err)
	}

	engine, err := recommend.NewEngine(nil, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	t.Cleanup(engine.Close)

	if mw == nil {
		mw = DefaultChiMiddlewareConfig()
		mw.CORSAllowedOrigins = []string{"*"}
		mw.RateLimitDisabled = true
	}

	h := NewHandler(st, engine, nil, HandlerOptions{Version: "test", MaxBodyBytes: 1 << 16})
	return &testServer{
		handler: NewRouter(h, NewChiMiddleware(mw)).SetupChi(),
		store:   st,
	}
}

func (ts *testServer) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	w := httptest.NewRecorder()
	ts.handler.ServeHTTP(w, req)
	return w
}

func (ts *testServer) wishlist(t *testing.T, user string, ids ...string) {
	t.Helper()
	for _, id := range ids {
		if _, err := ts.store.AddToWishlist(context.Background(), user, id); err != nil {
			t.Fatalf("AddToWishlist(%s, %s) error = %v", user, id, err)
		}
	}
}

func decode(t *testing.T, w *httptest.ResponseRecorder, data interface{}) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v (body %s)", err, w.Body.String())
	}
	if data != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, data); err != nil {
			t.Fatalf("decode data: %v (data %s)", err, env.Data)
		}
	}
	return env
}

func expectStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	if w.Code != want {
		t.Fatalf("status = %d, want %d (body %s)", w.Code, want, w.Body.String())
	}
}

func itemIDs(items []recommend.Item) []string {
	out := make([]string, len(items))
	for i := range items {
		out[i] = items[i].ID
	}
	return out
}

func TestHealthEndpoints(t *testing.T) {
	ts := newTestServer(t, nil)

	t.Run("live", func(t *testing.T) {
		w := ts.do(t, http.MethodGet, "/api/v1/health/live", "")
		expectStatus(t, w, http.StatusOK)
		var data map[string]string
		env := decode(t, w, &data)
		if env.Status != models.StatusSuccess || data["status"] != "alive" {
			t.Errorf("got %+v / %v", env, data)
		}
		if env.Metadata.RequestID == "" {
			t.Error("metadata should carry the request id")
		}
		if w.Header().Get("X-Content-Type-Options") != "nosniff" {
			t.Error("missing security headers")
		}
	})

	t.Run("ready", func(t *testing.T) {
		ts.wishlist(t, "alice", "1")
		w := ts.do(t, http.MethodGet, "/api/v1/health/ready", "")
		expectStatus(t, w, http.StatusOK)
		var health models.HealthStatus
		decode(t, w, &health)
		if !health.StoreOK || health.CatalogItems != 8 || health.WishlistUsers != 1 {
			t.Errorf("health = %+v", health)
		}
		if health.Version != "test" {
			t.Errorf("Version = %q, want test", health.Version)
		}
	})

	t.Run("engine", func(t *testing.T) {
		w := ts.do(t, http.MethodGet, "/api/v1/health/engine", "")
		expectStatus(t, w, http.StatusOK)
		var status struct {
			Config map[string]interface{} `json:"config"`
		}
		decode(t, w, &status)
		if status.Config == nil {
			t.Error("engine status should carry the config")
		}
	})

	t.Run("performance", func(t *testing.T) {
		ts.do(t, http.MethodGet, "/api/v1/catalog", "")
		w := ts.do(t, http.MethodGet, "/api/v1/health/performance", "")
		expectStatus(t, w, http.StatusOK)
		var stats []struct {
			Route        string `json:"route"`
			RequestCount int64  `json:"request_count"`
		}
		decode(t, w, &stats)
		found := false
		for _, s := range stats {
			if strings.HasPrefix(s.Route, "GET /api/v1/catalog") {
				found = true
			}
		}
		if !found {
			t.Errorf("performance stats %+v missing catalog route", stats)
		}
	})
}

func TestHealthReady_StoreClosed(t *testing.T) {
	ts := newTestServer(t, nil)
	_ = ts.store.Close()

	w := ts.do(t, http.MethodGet, "/api/v1/health/ready", "")
	expectStatus(t, w, http.StatusServiceUnavailable)
	var health models.HealthStatus
	env := decode(t, w, &health)
	if env.Error == nil || env.Error.Code != ErrCodeServiceUnavailable {
		t.Errorf("error = %+v", env.Error)
	}
	if health.Status != "degraded" || health.StoreOK {
		t.Errorf("health = %+v", health)
	}
}

func TestListCatalog(t *testing.T) {
	ts := newTestServer(t, nil)

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"everything", "", []string{"1", "2", "3", "4", "5", "6", "7", "8"}},
		{"category", "?category=Rings", []string{"1", "2", "6"}},
		{"category list", "?category=Rings,Necklaces", []string{"1", "2", "3", "6", "7"}},
		{"price bounds", "?category=Rings&max_price=2500", []string{"2", "6"}},
		{"open lower bound", "?max_price=1000", []string{"7", "8"}},
		{"trending", "?sort=trending", []string{"1", "3", "4", "5", "7", "8"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ts.do(t, http.MethodGet, "/api/v1/catalog"+tt.query, "")
			expectStatus(t, w, http.StatusOK)
			var items []recommend.Item
			env := decode(t, w, &items)
			if got := strings.Join(itemIDs(items), ","); got != strings.Join(tt.want, ",") {
				t.Errorf("ids = %s, want %s", got, strings.Join(tt.want, ","))
			}
			if env.Metadata.Count == nil || *env.Metadata.Count != len(tt.want) {
				t.Errorf("count = %v, want %d", env.Metadata.Count, len(tt.want))
			}
		})
	}
}

func TestListCatalog_BadQuery(t *testing.T) {
	ts := newTestServer(t, nil)

	for _, q := range []string{"?sort=cheapest", "?min_price=abc", "?min_price=10&max_price=5", "?max_diamond_cts=NaN"} {
		t.Run(q, func(t *testing.T) {
			w := ts.do(t, http.MethodGet, "/api/v1/catalog"+q, "")
			expectStatus(t, w, http.StatusBadRequest)
			if env := decode(t, w, nil); env.Error == nil || env.Error.Code != ErrCodeBadRequest {
				t.Errorf("error = %+v", env.Error)
			}
		})
	}
}

func TestGetItem(t *testing.T) {
	ts := newTestServer(t, nil)

	w := ts.do(t, http.MethodGet, "/api/v1/catalog/3", "")
	expectStatus(t, w, http.StatusOK)
	var item recommend.Item
	decode(t, w, &item)
	if item.ID != "3" || item.Category != "Necklaces" {
		t.Errorf("item = %+v", item)
	}

	w = ts.do(t, http.MethodGet, "/api/v1/catalog/404", "")
	expectStatus(t, w, http.StatusNotFound)
	if env := decode(t, w, nil); env.Error.Code != ErrCodeNotFound {
		t.Errorf("code = %s, want %s", env.Error.Code, ErrCodeNotFound)
	}
}

func TestETag(t *testing.T) {
	ts := newTestServer(t, nil)

	first := ts.do(t, http.MethodGet, "/api/v1/catalog/1", "")
	expectStatus(t, first, http.StatusOK)
	etag := first.Header().Get("ETag")
	if etag == "" {
		t.Fatal("missing ETag")
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog/1", nil)
	req.Header.Set("If-None-Match", etag)
	w := httptest.NewRecorder()
	ts.handler.ServeHTTP(w, req)
	expectStatus(t, w, http.StatusNotModified)
	if w.Body.Len() != 0 {
		t.Errorf("304 carried a body: %s", w.Body.String())
	}

	other := ts.do(t, http.MethodGet, "/api/v1/catalog/2", "")
	if other.Header().Get("ETag") == etag {
		t.Error("different items share an ETag")
	}
}

func TestPutItem(t *testing.T) {
	ts := newTestServer(t, nil)

	body := `{"id":"9","name":"Opal Ring","description":"An opal ring","price":640,
		"category":"Rings","type":"Cocktail Ring","material":"Yellow Gold","gender":"Women",
		"images":["https://example.com/opal.jpg"]}`

	w := ts.do(t, http.MethodPost, "/api/v1/catalog", body)
	expectStatus(t, w, http.StatusCreated)

	w = ts.do(t, http.MethodPost, "/api/v1/catalog", strings.Replace(body, "640", "700", 1))
	expectStatus(t, w, http.StatusOK)

	item, err := ts.store.Item(context.Background(), "9")
	if err != nil {
		t.Fatalf("Item() error = %v", err)
	}
	if item.Price != 700 {
		t.Errorf("Price = %v, want 700", item.Price)
	}
}

func TestPutItem_Invalid(t *testing.T) {
	ts := newTestServer(t, nil)

	tests := []struct {
		name string
		body string
		code string
	}{
		{"malformed json", `{"id":`, ErrCodeBadRequest},
		{"unknown field", `{"id":"9","colour":"red"}`, ErrCodeBadRequest},
		{"missing fields", `{"id":"9","name":"Ring"}`, ErrCodeValidation},
		{"negative price", `{"id":"9","name":"n","description":"d","price":-1,"category":"c","type":"t","material":"m","gender":"g","images":["x"]}`, ErrCodeValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ts.do(t, http.MethodPost, "/api/v1/catalog", tt.body)
			expectStatus(t, w, http.StatusBadRequest)
			if env := decode(t, w, nil); env.Error == nil || env.Error.Code != tt.code {
				t.Errorf("error = %+v, want code %s", env.Error, tt.code)
			}
		})
	}
}

func TestPutItem_TooLarge(t *testing.T) {
	ts := newTestServer(t, nil)

	body := `{"id":"9","name":"` + strings.Repeat("x", 1<<17) + `"}`
	w := ts.do(t, http.MethodPost, "/api/v1/catalog", body)
	expectStatus(t, w, http.StatusRequestEntityTooLarge)
}

func TestImportCatalog(t *testing.T) {
	ts := newTestServer(t, nil)

	csv := "id,name,description,price,category,type,material,gender,images\n" +
		"10,Pearl Studs,Classic studs,300,Earrings,Stud Earrings,White Gold,Women,a.jpg\n" +
		"1,Renamed Ring,Updated copy,2999,Rings,Engagement Ring,Platinum,Women,b.jpg\n" +
		"11,Broken,No price,abc,Rings,Band,Gold,Men,c.jpg\n"

	w := ts.do(t, http.MethodPost, "/api/v1/catalog/import", csv)
	expectStatus(t, w, http.StatusOK)

	var summary models.ImportSummary
	decode(t, w, &summary)
	if summary.Rows != 3 || summary.Imported != 2 || summary.Added != 1 || len(summary.Rejected) != 1 {
		t.Errorf("summary = %+v", summary)
	}

	item, err := ts.store.Item(context.Background(), "1")
	if err != nil || item.Name != "Renamed Ring" {
		t.Errorf("item 1 = %+v, %v", item, err)
	}
	if n, _ := ts.store.ItemCount(context.Background()); n != 9 {
		t.Errorf("ItemCount = %d, want 9", n)
	}
}

func TestImportCatalog_Empty(t *testing.T) {
	ts := newTestServer(t, nil)

	w := ts.do(t, http.MethodPost, "/api/v1/catalog/import", "")
	expectStatus(t, w, http.StatusBadRequest)
}

func TestCatalogTemplate(t *testing.T) {
	ts := newTestServer(t, nil)

	w := ts.do(t, http.MethodGet, "/api/v1/catalog/template", "")
	expectStatus(t, w, http.StatusOK)
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Errorf("Content-Type = %q", ct)
	}
	if w.Body.String() != catalog.Template() {
		t.Error("body does not match the template")
	}
}

func TestDeleteItem(t *testing.T) {
	ts := newTestServer(t, nil)
	ts.wishlist(t, "alice", "1", "4")

	w := ts.do(t, http.MethodDelete, "/api/v1/catalog/1", "")
	expectStatus(t, w, http.StatusOK)
	var res models.DeleteResult
	decode(t, w, &res)
	if !res.Deleted || res.ID != "1" {
		t.Errorf("result = %+v", res)
	}

	list, err := ts.store.Wishlist(context.Background(), "alice")
	if err != nil || strings.Join(list, ",") != "4" {
		t.Errorf("wishlist = %v, %v; want [4]", list, err)
	}

	w = ts.do(t, http.MethodDelete, "/api/v1/catalog/1", "")
	expectStatus(t, w, http.StatusNotFound)
}

func TestWishlistEndpoints(t *testing.T) {
	ts := newTestServer(t, nil)

	w := ts.do(t, http.MethodPut, "/api/v1/wishlists/alice/items/1", "")
	expectStatus(t, w, http.StatusOK)
	var change models.WishlistChange
	decode(t, w, &change)
	if !change.Changed || strings.Join(change.ItemIDs, ",") != "1" {
		t.Errorf("change = %+v", change)
	}

	w = ts.do(t, http.MethodPut, "/api/v1/wishlists/alice/items/1", "")
	expectStatus(t, w, http.StatusOK)
	decode(t, w, &change)
	if change.Changed {
		t.Error("second add should report changed=false")
	}

	ts.do(t, http.MethodPut, "/api/v1/wishlists/alice/items/4", "")
	ts.do(t, http.MethodPut, "/api/v1/wishlists/bob/items/2", "")

	w = ts.do(t, http.MethodGet, "/api/v1/wishlists/alice", "")
	expectStatus(t, w, http.StatusOK)
	var list models.Wishlist
	decode(t, w, &list)
	if strings.Join(list.ItemIDs, ",") != "1,4" || len(list.Items) != 2 || list.Items[1].ID != "4" {
		t.Errorf("wishlist = %+v", list)
	}

	w = ts.do(t, http.MethodGet, "/api/v1/wishlists", "")
	expectStatus(t, w, http.StatusOK)
	var summaries []models.WishlistSummary
	decode(t, w, &summaries)
	if len(summaries) != 2 || summaries[0] != (models.WishlistSummary{UserID: "alice", Items: 2}) {
		t.Errorf("summaries = %+v", summaries)
	}

	w = ts.do(t, http.MethodDelete, "/api/v1/wishlists/alice/items/1", "")
	expectStatus(t, w, http.StatusOK)
	decode(t, w, &change)
	if !change.Changed || strings.Join(change.ItemIDs, ",") != "4" {
		t.Errorf("change = %+v", change)
	}

	w = ts.do(t, http.MethodDelete, "/api/v1/wishlists/alice/items/1", "")
	expectStatus(t, w, http.StatusOK)
	decode(t, w, &change)
	if change.Changed {
		t.Error("removing an absent item should report changed=false")
	}
}

func TestWishlistEndpoints_Errors(t *testing.T) {
	ts := newTestServer(t, nil)

	tests := []struct {
		name   string
		method string
		path   string
		status int
	}{
		{"unknown item", http.MethodPut, "/api/v1/wishlists/alice/items/99", http.StatusNotFound},
		{"bad user id", http.MethodPut, "/api/v1/wishlists/a%20b/items/1", http.StatusBadRequest},
		{"bad item id", http.MethodDelete, "/api/v1/wishlists/alice/items/a%3Bb", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectStatus(t, ts.do(t, tt.method, tt.path, ""), tt.status)
		})
	}

	w := ts.do(t, http.MethodGet, "/api/v1/wishlists/nobody", "")
	expectStatus(t, w, http.StatusOK)
	var list models.Wishlist
	decode(t, w, &list)
	if len(list.ItemIDs) != 0 || len(list.Items) != 0 {
		t.Errorf("unknown user wishlist = %+v", list)
	}
}

func TestRecommendations(t *testing.T) {
	ts := newTestServer(t, nil)
	ts.wishlist(t, "alice", "1", "4")
	ts.wishlist(t, "bob", "1", "2", "6")

	for _, strategy := range []string{"content", "collaborative", "hybrid"} {
		t.Run(strategy, func(t *testing.T) {
			w := ts.do(t, http.MethodGet, "/api/v1/recommendations/"+strategy+"?user=alice", "")
			expectStatus(t, w, http.StatusOK)

			var list models.RecommendationList
			env := decode(t, w, &list)
			if list.Strategy != strategy || env.Metadata.Strategy != strategy {
				t.Errorf("strategy = %q / %q", list.Strategy, env.Metadata.Strategy)
			}
			if len(list.Items) == 0 {
				t.Fatal("no recommendations")
			}
			for _, it := range list.Items {
				if it.ID == "1" || it.ID == "4" {
					t.Errorf("recommended alice's own item %s", it.ID)
				}
			}
			if env.Metadata.Count == nil || *env.Metadata.Count != len(list.Items) {
				t.Errorf("count = %v, want %d", env.Metadata.Count, len(list.Items))
			}
		})
	}
}

func TestRecommendations_ColdStart(t *testing.T) {
	ts := newTestServer(t, nil)

	w := ts.do(t, http.MethodGet, "/api/v1/recommendations/hybrid", "")
	expectStatus(t, w, http.StatusOK)
	var list models.RecommendationList
	decode(t, w, &list)
	if len(list.Items) == 0 {
		t.Error("cold start should fall back to popular items")
	}
}

func TestRecommendations_Errors(t *testing.T) {
	ts := newTestServer(t, nil)

	w := ts.do(t, http.MethodGet, "/api/v1/recommendations/popular?user=alice", "")
	expectStatus(t, w, http.StatusBadRequest)
	if env := decode(t, w, nil); env.Error.Code != ErrCodeUnknownStrategy {
		t.Errorf("code = %s", env.Error.Code)
	}

	w = ts.do(t, http.MethodGet, "/api/v1/recommendations/content?user=%3Cscript%3E", "")
	expectStatus(t, w, http.StatusBadRequest)
}

func TestRecommendationProfile(t *testing.T) {
	ts := newTestServer(t, nil)
	ts.wishlist(t, "alice", "1", "4")
	ts.wishlist(t, "bob", "1")

	w := ts.do(t, http.MethodGet, "/api/v1/recommendations/profile/alice", "")
	expectStatus(t, w, http.StatusOK)

	var exp struct {
		UserID    string               `json:"user_id"`
		Scores    []json.RawMessage    `json:"scores"`
		Neighbors []recommend.Neighbor `json:"neighbors"`
	}
	decode(t, w, &exp)
	if exp.UserID != "alice" || len(exp.Scores) == 0 {
		t.Errorf("explanation = %+v", exp)
	}
	if len(exp.Neighbors) != 1 || exp.Neighbors[0].UserID != "bob" {
		t.Errorf("neighbors = %+v, want [bob]", exp.Neighbors)
	}
}

func TestBatchRecommendations(t *testing.T) {
	ts := newTestServer(t, nil)
	ts.wishlist(t, "alice", "1", "4")
	ts.wishlist(t, "bob", "2")

	w := ts.do(t, http.MethodPost, "/api/v1/recommendations/batch",
		`{"user_ids":["alice","bob","alice"],"strategy":"content"}`)
	expectStatus(t, w, http.StatusOK)

	var resp models.BatchRecommendationResponse
	decode(t, w, &resp)
	if resp.Strategy != "content" || len(resp.Results) != 2 {
		t.Fatalf("response = %+v", resp)
	}
	for _, it := range resp.Results["bob"] {
		if it.ID == "2" {
			t.Error("recommended bob's own item")
		}
	}

	w = ts.do(t, http.MethodPost, "/api/v1/recommendations/batch", `{"user_ids":["alice"]}`)
	expectStatus(t, w, http.StatusOK)
	decode(t, w, &resp)
	if resp.Strategy != "hybrid" {
		t.Errorf("default strategy = %q, want hybrid", resp.Strategy)
	}
}

func TestBatchRecommendations_Invalid(t *testing.T) {
	ts := newTestServer(t, nil)

	ids := make([]string, 0, 200)
	for i := 0; i < cap(ids); i++ {
		ids = append(ids, `"u`+strings.Repeat("x", i%5)+string(rune('a'+i%26))+`"`)
	}

	tests := []struct {
		name string
		body string
		code string
	}{
		{"empty list", `{"user_ids":[]}`, ErrCodeValidation},
		{"bad strategy", `{"user_ids":["a"],"strategy":"random"}`, ErrCodeValidation},
		{"bad user id", `{"user_ids":["a b"]}`, ErrCodeValidation},
		{"too many users", `{"user_ids":[` + strings.Join(ids, ",") + `]}`, ErrCodeBatchTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ts.do(t, http.MethodPost, "/api/v1/recommendations/batch", tt.body)
			expectStatus(t, w, http.StatusBadRequest)
			if env := decode(t, w, nil); env.Error == nil || env.Error.Code != tt.code {
				t.Errorf("error = %+v, want %s", env.Error, tt.code)
			}
		})
	}
}

func TestRouting(t *testing.T) {
	ts := newTestServer(t, nil)

	w := ts.do(t, http.MethodGet, "/api/v1/nope", "")
	expectStatus(t, w, http.StatusNotFound)
	if env := decode(t, w, nil); env.Error == nil || env.Error.Code != ErrCodeNotFound {
		t.Errorf("error = %+v", env.Error)
	}

	w = ts.do(t, http.MethodPatch, "/api/v1/catalog/1", "")
	expectStatus(t, w, http.StatusMethodNotAllowed)

	ts.do(t, http.MethodGet, "/api/v1/catalog/1", "")
	w = ts.do(t, http.MethodGet, "/metrics", "")
	expectStatus(t, w, http.StatusOK)
	if !strings.Contains(w.Body.String(), "api_requests_total") {
		t.Error("metrics output missing api_requests_total")
	}
}

func TestRequestIDPropagation(t *testing.T) {
	ts := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health/live", nil)
	req.Header.Set("X-Request-ID", "req-123")
	w := httptest.NewRecorder()
	ts.handler.ServeHTTP(w, req)

	if got := w.Header().Get("X-Request-ID"); got != "req-123" {
		t.Errorf("X-Request-ID = %q, want req-123", got)
	}
	if env := decode(t, w, nil); env.Metadata.RequestID != "req-123" {
		t.Errorf("metadata request_id = %q", env.Metadata.RequestID)
	}
}

func TestRateLimit(t *testing.T) {
	cfg := DefaultChiMiddlewareConfig()
	cfg.RateLimitRequests = 2
	cfg.RateLimitWindow = time.Minute
	ts := newTestServer(t, cfg)

	for i := 0; i < 2; i++ {
		expectStatus(t, ts.do(t, http.MethodGet, "/api/v1/catalog/1", ""), http.StatusOK)
	}

	w := ts.do(t, http.MethodGet, "/api/v1/catalog/1", "")
	expectStatus(t, w, http.StatusTooManyRequests)
	if env := decode(t, w, nil); env.Error == nil || env.Error.Code != ErrCodeRateLimited {
		t.Errorf("error = %+v", env.Error)
	}

	// Health probes have their own budget.
	expectStatus(t, ts.do(t, http.MethodGet, "/api/v1/health/live", ""), http.StatusOK)
}

func TestCORSPreflight(t *testing.T) {
	cfg := DefaultChiMiddlewareConfig()
	cfg.CORSAllowedOrigins = []string{"https://shop.example.com"}
	cfg.RateLimitDisabled = true
	ts := newTestServer(t, cfg)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/catalog", nil)
	req.Header.Set("Origin", "https://shop.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	ts.handler.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://shop.example.com" {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}
}

func TestRangeParam(t *testing.T) {
	q := map[string][]string{"min_price": {"100"}}
	rng, err := rangeParam(q, "price")
	if err != nil {
		t.Fatal(err)
	}
	if rng.Min != 100 || !(rng.Max > 1e300) {
		t.Errorf("range = %+v, want [100, +Inf]", rng)
	}

	if rng, err := rangeParam(q, "gold_weight"); rng != nil || err != nil {
		t.Errorf("absent range = %v, %v; want nil, nil", rng, err)
	}
}
