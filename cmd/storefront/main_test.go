package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/config"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/products/compare", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"productId":1,"name":"Phone A","price":49999,"rating":4.5,"reviewCount":120,"brand":"Acme","categoryName":"Phones","stock":3,"premiumEarlyAccess":true},
			{"productId":2,"name":"Phone B","price":52999,"rating":4.7,"reviewCount":80,"brand":"Zeta","categoryName":"Phones","stock":0,"premiumEarlyAccess":false}
		]`))
	})
	mux.HandleFunc("/api/products/1", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"productId":1,"name":"Phone A","price":49999,"averageRating":4.5,"reviewCount":120,"stockQuantity":3}`))
	})
	mux.HandleFunc("/api/user/cart/items", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "9", r.Header.Get("X-User-Id"))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"items":[],"total":0}`))
	})
	mux.HandleFunc("/api/user/profile", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":9,"name":"Asha","email":"asha@example.com","role":"CUSTOMER","premiumStatus":false}`))
	})
	mux.HandleFunc("/api/user/subscription/subscribe", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"request_id":"x","error":{"code":"ALREADY_SUBSCRIBED","message":"user already has an active premium subscription"}}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func testConfig(t *testing.T, baseURL string, loggedIn bool) *config.ClientConfig {
	cfg := &config.ClientConfig{
		BaseURL:    baseURL,
		Timeout:    5 * time.Second,
		RecentFile: filepath.Join(t.TempDir(), "recent.json"),
		LogLevel:   "error",
	}
	if loggedIn {
		cfg.Token, cfg.UserID = "tok", "9"
	}
	return cfg
}

func TestRun_Usage(t *testing.T) {
	var stdout, stderr bytes.Buffer
	cfg := testConfig(t, "http://localhost:1", false)

	assert.Equal(t, 2, run(context.Background(), nil, cfg, &stdout, &stderr))
	assert.Equal(t, 2, run(context.Background(), []string{"frobnicate"}, cfg, &stdout, &stderr))
	assert.Contains(t, stderr.String(), `unknown command "frobnicate"`)
	assert.Equal(t, 2, run(context.Background(), []string{"view"}, cfg, &stdout, &stderr))
}

func TestRun_Compare(t *testing.T) {
	srv := newServer(t)
	var stdout, stderr bytes.Buffer

	code := run(context.Background(), []string{"compare", "1", "2", "-add", "1"}, testConfig(t, srv.URL, true), &stdout, &stderr)

	require.Equal(t, 0, code)
	out := stdout.String()
	assert.Contains(t, out, "₹49,999 *")
	assert.Contains(t, out, "4.7/5 *")
	assert.Contains(t, out, "Out of stock")
	assert.Contains(t, stderr.String(), "! Added to cart! [View Cart]")
}

func TestRun_CompareMissingID(t *testing.T) {
	srv := newServer(t)
	var stdout, stderr bytes.Buffer

	code := run(context.Background(), []string{"compare", "1"}, testConfig(t, srv.URL, true), &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Contains(t, stderr.String(), "! Please select two products to compare")
	assert.Contains(t, stderr.String(), "-> /products")
	assert.Empty(t, stdout.String())
}

func TestRun_CompareAnonymousAddToCart(t *testing.T) {
	srv := newServer(t)
	var stdout, stderr bytes.Buffer

	run(context.Background(), []string{"compare", "1", "2", "-add", "2"}, testConfig(t, srv.URL, false), &stdout, &stderr)

	assert.Contains(t, stderr.String(), "! Please login to add items to cart [Login]")
}

func TestRun_ViewThenProfile(t *testing.T) {
	srv := newServer(t)
	cfg := testConfig(t, srv.URL, true)

	var stdout, stderr bytes.Buffer
	require.Equal(t, 0, run(context.Background(), []string{"view", "1"}, cfg, &stdout, &stderr))
	assert.Contains(t, stdout.String(), "Phone A")
	assert.Contains(t, stdout.String(), "3 in stock")

	stdout.Reset()
	require.Equal(t, 0, run(context.Background(), []string{"profile"}, cfg, &stdout, &stderr))
	assert.Contains(t, stdout.String(), "asha@example.com")
	assert.Contains(t, stdout.String(), "#1 Phone A")
}

func TestRun_ProfileRequiresLogin(t *testing.T) {
	srv := newServer(t)
	var stdout, stderr bytes.Buffer

	run(context.Background(), []string{"profile"}, testConfig(t, srv.URL, false), &stdout, &stderr)

	assert.Contains(t, stderr.String(), "-> /login?returnUrl=%2Fprofile")
}

func TestRun_SubscribeShowsServerMessage(t *testing.T) {
	srv := newServer(t)
	var stdout, stderr bytes.Buffer

	code := run(context.Background(), []string{"subscribe", "-plan", "YEARLY"}, testConfig(t, srv.URL, true), &stdout, &stderr)

	assert.Equal(t, 0, code)
	assert.Contains(t, stderr.String(), "! user already has an active premium subscription")
}

func TestReorder(t *testing.T) {
	assert.Equal(t, []string{"-add", "1", "3", "4"}, reorder([]string{"3", "4", "-add", "1"}))
	assert.Equal(t, []string{"-add=2", "3", "4"}, reorder([]string{"3", "-add=2", "4"}))
}
