package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newLimitedHandler(opts RateLimitOptions) http.Handler {
	return RateLimit(opts)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
}

func serveFrom(h http.Handler, remoteAddr string, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.RemoteAddr = remoteAddr
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestRateLimitReturns429AfterBurst(t *testing.T) {
	t.Parallel()

	fixed := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	h := newLimitedHandler(RateLimitOptions{PerMinute: 3, Now: func() time.Time { return fixed }})

	for i := range 3 {
		if rr := serveFrom(h, "203.0.113.7:5000", "/"); rr.Code != http.StatusNoContent {
			t.Fatalf("request %d status = %d, want %d", i, rr.Code, http.StatusNoContent)
		}
	}
	rr := serveFrom(h, "203.0.113.7:5001", "/")
	if rr.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusTooManyRequests)
	}
	if got := rr.Header().Get("Retry-After"); got != "20" {
		t.Fatalf("Retry-After = %q, want %q", got, "20")
	}
}

func TestRateLimitKeysByClientAddress(t *testing.T) {
	t.Parallel()

	fixed := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	h := newLimitedHandler(RateLimitOptions{PerMinute: 1, Now: func() time.Time { return fixed }})

	if rr := serveFrom(h, "198.51.100.1:1000", "/"); rr.Code != http.StatusNoContent {
		t.Fatalf("first client status = %d", rr.Code)
	}
	if rr := serveFrom(h, "198.51.100.2:1000", "/"); rr.Code != http.StatusNoContent {
		t.Fatalf("second client status = %d, want its own budget", rr.Code)
	}
	if rr := serveFrom(h, "198.51.100.1:1001", "/"); rr.Code != http.StatusTooManyRequests {
		t.Fatalf("repeat client status = %d, want %d", rr.Code, http.StatusTooManyRequests)
	}
}

func TestRateLimitRefillsOverTime(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	h := newLimitedHandler(RateLimitOptions{PerMinute: 1, Now: func() time.Time { return now }})

	serveFrom(h, "192.0.2.1:1", "/")
	if rr := serveFrom(h, "192.0.2.1:1", "/"); rr.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusTooManyRequests)
	}
	now = now.Add(61 * time.Second)
	if rr := serveFrom(h, "192.0.2.1:1", "/"); rr.Code != http.StatusNoContent {
		t.Fatalf("status after refill = %d, want %d", rr.Code, http.StatusNoContent)
	}
}

func TestRateLimitExemptPathsBypass(t *testing.T) {
	t.Parallel()

	fixed := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	h := newLimitedHandler(RateLimitOptions{PerMinute: 1, Exempt: []string{"/healthz"}, Now: func() time.Time { return fixed }})

	for i := range 5 {
		if rr := serveFrom(h, "192.0.2.9:1", "/healthz"); rr.Code != http.StatusNoContent {
			t.Fatalf("exempt request %d status = %d", i, rr.Code)
		}
	}
}

func TestRateLimitDisabledWhenZero(t *testing.T) {
	t.Parallel()

	h := newLimitedHandler(RateLimitOptions{})
	for i := range 50 {
		if rr := serveFrom(h, "192.0.2.1:1", "/"); rr.Code != http.StatusNoContent {
			t.Fatalf("request %d status = %d", i, rr.Code)
		}
	}
}

func TestLimiterSetEvictsIdleClients(t *testing.T) {
	t.Parallel()

	set := newLimiterSet(10, 10)
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	set.allow("a", start)
	set.allow("b", start)
	set.allow("c", start.Add(clientIdleTTL+time.Second))
	if got := len(set.clients); got != 1 {
		t.Fatalf("tracked clients = %d, want 1", got)
	}
}
