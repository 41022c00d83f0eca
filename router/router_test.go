package router

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"

	"ecommerce-server/handlers"
	"ecommerce-server/middleware"
	"ecommerce-server/realtime"
)

// testRouter builds the route table over a handler with no store attached.
// Any request that reaches a persistence call would panic, which is exactly
// what the id-guard tests rely on: a malformed id must 404 first.
func testRouter(t *testing.T) http.Handler {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)

	sessions := middleware.NewSessionManager("test-secret")
	h := handlers.NewHandler(nil, "test", sessions, log, t.TempDir())
	hub := realtime.NewHub(nil, log)
	return SetupRoutes(h, hub)
}

func TestMalformedProductIDShortCircuits(t *testing.T) {
	r := testRouter(t)

	for _, tc := range []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/products/not-an-id"},
		{http.MethodGet, "/api/products/abc123"},
		{http.MethodGet, "/api/products/gggggggggggggggggggggggg"},
		{http.MethodPut, "/api/products/123"},
		{http.MethodDelete, "/api/products/xyz"},
	} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))

		if rec.Code != http.StatusNotFound {
			t.Fatalf("%s %s: expected 404 before any store access, got %d", tc.method, tc.path, rec.Code)
		}
	}
}

func TestUnmatchedRouteReturnsJSON404(t *testing.T) {
	r := testRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/no/such/route", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}

	var resp struct {
		Status  int    `json:"status"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("expected JSON 404 body, got %q: %v", rec.Body.String(), err)
	}
	if resp.Message != "The requested page was not found" {
		t.Fatalf("unexpected 404 message %q", resp.Message)
	}
}

func TestGatedViewsRedirectAnonymous(t *testing.T) {
	r := testRouter(t)

	for _, path := range []string{"/products", "/chat", "/profile", "/users", "/realTimeProducts"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

		if rec.Code != http.StatusFound {
			t.Fatalf("%s: expected 302 for anonymous request, got %d", path, rec.Code)
		}
		if loc := rec.Header().Get("Location"); loc != "/login" {
			t.Fatalf("%s: expected redirect to /login, got %q", path, loc)
		}
	}
}

func TestPublicViewsAreOpen(t *testing.T) {
	r := testRouter(t)

	for _, path := range []string{"/cookies", "/login", "/register"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", path, rec.Code)
		}
	}
}
