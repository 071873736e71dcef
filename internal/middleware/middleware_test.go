package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"golang.org/x/time/rate"

	"github.com/honestng/honest-backend/internal/middleware"
	"github.com/honestng/honest-backend/internal/utils"
)

// mockFetcher implements middleware.SessionFetcher without any database dependency.
type mockFetcher struct {
	session utils.SessionData
	err     error
}

func (m mockFetcher) FindSessionByID(id string) (utils.SessionData, error) {
	return m.session, m.err
}

// callWithCookie wraps a simple 200-OK inner handler in the provided middleware,
// optionally setting one cookie on the request, and returns the recorded response.
func callWithCookie(t *testing.T, mw func(http.Handler) http.Handler, cookieName, cookieValue string) *httptest.ResponseRecorder {
	t.Helper()

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	handler := mw(inner)
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	if cookieName != "" {
		req.AddCookie(&http.Cookie{Name: cookieName, Value: cookieValue})
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

// TestSessionMiddleware_MissingCookie verifies that a request with no session_id
// cookie receives a 401 response.
func TestSessionMiddleware_MissingCookie(t *testing.T) {
	mw := middleware.SessionMiddleware(mockFetcher{})

	rec := callWithCookie(t, mw, "", "")

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

// TestSessionMiddleware_ExpiredSession verifies that a valid cookie pointing
// at an expired session receives a 401 containing "Session expired".
func TestSessionMiddleware_ExpiredSession(t *testing.T) {
	fetcher := mockFetcher{
		session: utils.SessionData{
			UserID:    "some-user",
			ExpiresAt: time.Now().Add(-1 * time.Hour),
		},
	}
	mw := middleware.SessionMiddleware(fetcher)

	rec := callWithCookie(t, mw, "session_id", "expired-session-id")

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
	if body := rec.Body.String(); !strings.Contains(body, "Session expired") {
		t.Errorf("expected body to contain %q, got: %q", "Session expired", body)
	}
}

// TestSessionMiddleware_FetcherError verifies that a fetcher error (e.g. session
// not found) results in a 401 response.
func TestSessionMiddleware_FetcherError(t *testing.T) {
	fetcher := mockFetcher{err: errors.New("session not found")}
	mw := middleware.SessionMiddleware(fetcher)

	rec := callWithCookie(t, mw, "session_id", "nonexistent-session-id")

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

// TestSessionMiddleware_ValidSession verifies that a valid, non-expired session
// gets through and the userID lands in the request context.
func TestSessionMiddleware_ValidSession(t *testing.T) {
	const wantUserID = "test-user-123"

	fetcher := mockFetcher{
		session: utils.SessionData{
			UserID:    wantUserID,
			ExpiresAt: time.Now().Add(1 * time.Hour),
		},
	}

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, ok := utils.GetUserIDFromContext(r.Context())
		if !ok {
			http.Error(w, "userID not in context", http.StatusInternalServerError)
			return
		}
		if gotUserID != wantUserID {
			http.Error(w, "wrong userID in context: "+gotUserID, http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	handler := middleware.SessionMiddleware(fetcher)(inner)

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.AddCookie(&http.Cookie{Name: "session_id", Value: "valid-session-id"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d; body: %s", rec.Code, rec.Body.String())
	}
}

// TestVisitorMiddleware_MintsCookie verifies that a request without a
// visitor_id cookie gets one set, and the same id appears in the context.
func TestVisitorMiddleware_MintsCookie(t *testing.T) {
	var ctxVisitorID string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxVisitorID, _ = utils.GetVisitorIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	handler := middleware.VisitorMiddleware(inner)
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if ctxVisitorID == "" {
		t.Fatal("expected a visitor id in context")
	}

	var cookieValue string
	for _, c := range rec.Result().Cookies() {
		if c.Name == "visitor_id" {
			cookieValue = c.Value
		}
	}
	if cookieValue == "" {
		t.Fatal("expected a visitor_id cookie to be set")
	}
	if cookieValue != ctxVisitorID {
		t.Errorf("cookie value %q does not match context value %q", cookieValue, ctxVisitorID)
	}
}

// TestVisitorMiddleware_ReusesCookie verifies that an existing visitor_id
// cookie is passed through unchanged instead of minting a new one.
func TestVisitorMiddleware_ReusesCookie(t *testing.T) {
	const existing = "existing-visitor-id"

	var ctxVisitorID string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxVisitorID, _ = utils.GetVisitorIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	handler := middleware.VisitorMiddleware(inner)
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.AddCookie(&http.Cookie{Name: "visitor_id", Value: existing})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if ctxVisitorID != existing {
		t.Errorf("expected context visitor id %q, got %q", existing, ctxVisitorID)
	}
	for _, c := range rec.Result().Cookies() {
		if c.Name == "visitor_id" {
			t.Error("middleware should not re-set an existing visitor cookie")
		}
	}
}

// TestRateLimit verifies that requests beyond the burst from one client are
// rejected with 429 while a different client is unaffected.
func TestRateLimit(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := middleware.RateLimit(rate.Every(time.Hour), 2)(inner)

	send := func(addr string) int {
		req := httptest.NewRequest(http.MethodPost, "/test", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	if code := send("10.0.0.1:1234"); code != http.StatusOK {
		t.Errorf("first request: expected 200, got %d", code)
	}
	if code := send("10.0.0.1:1234"); code != http.StatusOK {
		t.Errorf("second request: expected 200, got %d", code)
	}
	if code := send("10.0.0.1:1234"); code != http.StatusTooManyRequests {
		t.Errorf("third request: expected 429, got %d", code)
	}
	if code := send("10.0.0.2:1234"); code != http.StatusOK {
		t.Errorf("other client: expected 200, got %d", code)
	}
}
