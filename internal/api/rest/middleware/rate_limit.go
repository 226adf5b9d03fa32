package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/davidmoltin/command-center/pkg/logger"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter manages rate limiting for requests
type RateLimiter struct {
	limiters map[string]*limiterEntry
	mu       sync.Mutex
	rate     rate.Limit
	burst    int
	now      func() time.Time
	logger   *logger.Logger
}

// NewRateLimiter creates a new rate limiter
// rps: requests per second
// burst: maximum burst size
func NewRateLimiter(rps float64, burst int, log *logger.Logger) *RateLimiter {
	return &RateLimiter{
		limiters: make(map[string]*limiterEntry),
		rate:     rate.Limit(rps),
		burst:    burst,
		now:      time.Now,
		logger:   log,
	}
}

// getLimiter returns a rate limiter for the given identifier
func (rl *RateLimiter) getLimiter(identifier string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	entry, exists := rl.limiters[identifier]
	if !exists {
		entry = &limiterEntry{limiter: rate.NewLimiter(rl.rate, rl.burst)}
		rl.limiters[identifier] = entry
	}
	entry.lastSeen = rl.now()

	return entry.limiter
}

// prune drops limiters not used since before cutoff and returns how many remain
func (rl *RateLimiter) prune(cutoff time.Time) int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	for id, entry := range rl.limiters {
		if entry.lastSeen.Before(cutoff) {
			delete(rl.limiters, id)
		}
	}
	return len(rl.limiters)
}

// Cleanup removes limiters idle for longer than interval until ctx is done
func (rl *RateLimiter) Cleanup(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.prune(rl.now().Add(-interval))
		case <-ctx.Done():
			return
		}
	}
}

// Middleware applies the limiter per client
func (rl *RateLimiter) Middleware() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identifier := getIdentifier(r)

			if !rl.getLimiter(identifier).Allow() {
				rl.logger.Warn("Rate limit exceeded", zap.String("identifier", identifier), zap.String("path", r.URL.Path))
				w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", rl.burst))
				w.Header().Set("X-RateLimit-Remaining", "0")
				w.Header().Set("Retry-After", "1")
				respondError(w, http.StatusTooManyRequests, "Rate limit exceeded")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// getIdentifier keys limits by session when the client names one, otherwise by IP
func getIdentifier(r *http.Request) string {
	if id := r.Header.Get("X-Session-ID"); id != "" {
		return "session:" + id
	}

	// RealIP middleware has already rewritten RemoteAddr when behind a proxy
	ip := r.RemoteAddr
	if host, _, err := net.SplitHostPort(ip); err == nil {
		ip = host
	}

	return "ip:" + ip
}

func respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Use proper JSON encoding to prevent injection attacks
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
