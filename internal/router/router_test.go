// Package router tests verify the HTTP routing configuration, middleware
// chains, and the health endpoint.
package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"skillforge/internal/handlers"
	"skillforge/internal/token"
)

// testRouter builds a router whose handler groups carry no backing
// stores. Only routes that never reach a store are exercised here; the
// full paths are covered by the handler integration tests.
func testRouter() http.Handler {
	signer := token.NewSigner("router-test-secret")
	public := handlers.NewPublic(nil, nil, nil, nil)
	auth := handlers.NewAuth(nil, signer, nil, "https://skillforge.test")
	admin := handlers.NewAdmin(nil, nil, nil, nil, nil, nil)
	return New(signer, public, auth, admin, Options{Version: "test"})
}

func TestHealthEndpoint(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/health", nil)

	testRouter().ServeHTTP(w, r)

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status: got %d, want 200", resp.StatusCode)
	}

	ct := resp.Header.Get("Content-Type")
	if ct != "application/json" {
		t.Errorf("content-type: got %q, want %q", ct, "application/json")
	}

	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status field: got %q, want %q", body["status"], "ok")
	}
	if body["version"] != "test" {
		t.Errorf("version field: got %q, want %q", body["version"], "test")
	}
	if body["timestamp"] == "" {
		t.Error("timestamp field missing")
	}
}

func TestAdminRoutesRequireAuth(t *testing.T) {
	router := testRouter()

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/admin/draft"},
		{http.MethodPut, "/api/admin/draft"},
		{http.MethodPost, "/api/admin/draft/save"},
		{http.MethodGet, "/api/leads"},
		{http.MethodPost, "/api/admin/uploads"},
		{http.MethodGet, "/api/admin/users"},
		{http.MethodGet, "/api/auth/me"},
	}

	for _, tt := range routes {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(tt.method, tt.path, nil)
		router.ServeHTTP(w, r)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s %s: got %d, want 401", tt.method, tt.path, w.Code)
		}
	}
}

func TestSecureHeadersApplied(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/health", nil)

	testRouter().ServeHTTP(w, r)

	if got := w.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("X-Content-Type-Options: got %q", got)
	}
}
