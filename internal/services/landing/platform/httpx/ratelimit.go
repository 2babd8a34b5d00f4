package httpx

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	apperrors "github.com/flaskhub/landing/internal/services/landing/platform/errors"
	"golang.org/x/time/rate"
)

const clientIdleTTL = 10 * time.Minute

// RateLimitOptions configures per-client request limiting.
type RateLimitOptions struct {
	// PerMinute is the sustained request rate per client address. Zero or
	// less disables limiting.
	PerMinute int
	// Burst defaults to PerMinute.
	Burst int
	// Exempt lists exact paths that bypass the limiter.
	Exempt []string
	// Now is overridable for tests.
	Now func() time.Time
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type limiterSet struct {
	mu        sync.Mutex
	limit     rate.Limit
	burst     int
	clients   map[string]*clientLimiter
	lastSweep time.Time
}

// RateLimit rejects clients that exceed opts.PerMinute with 429 and a
// Retry-After header. Clients are keyed by remote address host.
func RateLimit(opts RateLimitOptions) Middleware {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		if opts.PerMinute <= 0 {
			return next
		}
		burst := opts.Burst
		if burst <= 0 {
			burst = opts.PerMinute
		}
		now := opts.Now
		if now == nil {
			now = time.Now
		}
		set := newLimiterSet(opts.PerMinute, burst)
		retryAfter := strconv.Itoa(int(math.Ceil(60.0 / float64(opts.PerMinute))))
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, path := range opts.Exempt {
				if r.URL.Path == path {
					next.ServeHTTP(w, r)
					return
				}
			}
			if !set.allow(clientKey(r), now()) {
				w.Header().Set("Retry-After", retryAfter)
				WriteError(w, apperrors.E(apperrors.KindRateLimited, "rate limited"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func newLimiterSet(perMinute int, burst int) *limiterSet {
	return &limiterSet{
		limit:   rate.Limit(float64(perMinute) / 60.0),
		burst:   burst,
		clients: make(map[string]*clientLimiter),
	}
}

func (s *limiterSet) allow(key string, at time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if at.Sub(s.lastSweep) > clientIdleTTL {
		for k, client := range s.clients {
			if at.Sub(client.lastSeen) > clientIdleTTL {
				delete(s.clients, k)
			}
		}
		s.lastSweep = at
	}
	client, ok := s.clients[key]
	if !ok {
		client = &clientLimiter{limiter: rate.NewLimiter(s.limit, s.burst)}
		s.clients[key] = client
	}
	client.lastSeen = at
	return client.limiter.AllowN(at, 1)
}

func clientKey(r *http.Request) string {
	addr := strings.TrimSpace(r.RemoteAddr)
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}
	if addr == "" {
		return "-"
	}
	return addr
}
