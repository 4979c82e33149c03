package handlers

import (
	"os"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// KeyRateLimiter enforces a token-bucket limit per API key.
type KeyRateLimiter struct {
	mu      sync.Mutex
	clients map[string]*client
	rps     rate.Limit
	burst   int
}

// client tracks the limiter and last activity for one key.
type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewKeyRateLimiter creates a limiter allowing rps requests per second with
// the given burst per key.
func NewKeyRateLimiter(rps float64, burst int) *KeyRateLimiter {
	rl := &KeyRateLimiter{
		clients: make(map[string]*client),
		rps:     rate.Limit(rps),
		burst:   burst,
	}
	go rl.cleanup()
	return rl
}

// NewKeyRateLimiterFromEnv reads RATE_LIMIT_RPS and RATE_LIMIT_BURST, with
// defaults generous enough for interactive dashboard refreshes.
func NewKeyRateLimiterFromEnv() *KeyRateLimiter {
	rps := 10.0
	if v, err := strconv.ParseFloat(os.Getenv("RATE_LIMIT_RPS"), 64); err == nil && v > 0 {
		rps = v
	}
	burst := 20
	if v, err := strconv.Atoi(os.Getenv("RATE_LIMIT_BURST")); err == nil && v > 0 {
		burst = v
	}
	return NewKeyRateLimiter(rps, burst)
}

// Allow reports whether a request for key may proceed now.
func (rl *KeyRateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	cl, exists := rl.clients[key]
	if !exists {
		cl = &client{limiter: rate.NewLimiter(rl.rps, rl.burst)}
		rl.clients[key] = cl
	}
	cl.lastSeen = time.Now()
	rl.mu.Unlock()

	return cl.limiter.Allow()
}

// cleanup drops keys idle for more than three minutes so the map cannot grow
// without bound.
func (rl *KeyRateLimiter) cleanup() {
	for {
		time.Sleep(time.Minute)
		rl.mu.Lock()
		for key, cl := range rl.clients {
			if time.Since(cl.lastSeen) > 3*time.Minute {
				delete(rl.clients, key)
			}
		}
		rl.mu.Unlock()
	}
}
