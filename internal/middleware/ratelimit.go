package middleware

import (
	"encoding/json"
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const clientTTL = 10 * time.Minute

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type clientLimiter struct {
	mu      sync.Mutex
	clients map[string]*client
	rps     rate.Limit
	burst   int
}

func newClientLimiter(rps float64, burst int) *clientLimiter {
	cl := &clientLimiter{
		clients: make(map[string]*client),
		rps:     rate.Limit(rps),
		burst:   burst,
	}
	go cl.evictLoop()
	return cl
}

func (cl *clientLimiter) allow(ip string) bool {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	c, ok := cl.clients[ip]
	if !ok {
		c = &client{limiter: rate.NewLimiter(cl.rps, cl.burst)}
		cl.clients[ip] = c
	}
	c.lastSeen = time.Now()
	return c.limiter.Allow()
}

func (cl *clientLimiter) evictLoop() {
	for {
		time.Sleep(clientTTL)
		cl.mu.Lock()
		for ip, c := range cl.clients {
			if time.Since(c.lastSeen) > clientTTL {
				delete(cl.clients, ip)
			}
		}
		cl.mu.Unlock()
	}
}

// RateLimit returns middleware applying a per-IP token bucket.
// rps is the sustained rate, burst the maximum burst size.
func RateLimit(rps float64, burst int) func(http.Handler) http.Handler {
	limiter := newClientLimiter(rps, burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}

			if !limiter.allow(ip) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				json.NewEncoder(w).Encode(map[string]string{"error": "too many requests"})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
