package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// idleWindow is how long a client's limiter survives without requests.
const idleWindow = 10 * time.Minute

// Throttle limits credential attempts per client host. Each host gets a
// rate.Limiter holding perMinute attempts that refill over a minute.
type Throttle struct {
	limit rate.Limit
	burst int
	now   func() time.Time

	mu      sync.Mutex
	clients map[string]*client

	stop chan struct{}
	once sync.Once
}

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewThrottle creates a throttle allowing perMinute attempts per host and
// starts the eviction loop. Call Stop on shutdown.
func NewThrottle(perMinute int, evictEvery time.Duration) *Throttle {
	t := newThrottle(perMinute, time.Now)
	go t.evictLoop(evictEvery)
	return t
}

func newThrottle(perMinute int, now func() time.Time) *Throttle {
	return &Throttle{
		limit:   rate.Every(time.Minute / time.Duration(perMinute)),
		burst:   perMinute,
		now:     now,
		clients: make(map[string]*client),
		stop:    make(chan struct{}),
	}
}

// Stop ends the eviction loop. It is safe to call more than once.
func (t *Throttle) Stop() {
	t.once.Do(func() { close(t.stop) })
}

// Middleware answers 429 with Retry-After once a host has used its attempts.
func (t *Throttle) Middleware() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if wait := t.reserve(clientHost(r)); wait > 0 {
				secs := math.Ceil(wait.Truncate(time.Millisecond).Seconds())
				w.Header().Set("Retry-After", strconv.Itoa(max(1, int(secs))))
				writeError(w, http.StatusTooManyRequests, "too many attempts")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// reserve takes one attempt for key. It returns zero when the attempt is
// allowed, otherwise how long until it would be; nothing is consumed then.
func (t *Throttle) reserve(key string) time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	c, ok := t.clients[key]
	if !ok {
		c = &client{limiter: rate.NewLimiter(t.limit, t.burst)}
		t.clients[key] = c
	}
	c.lastSeen = now

	res := c.limiter.ReserveN(now, 1)
	if !res.OK() {
		return time.Minute
	}
	if wait := res.DelayFrom(now); wait > 0 {
		res.CancelAt(now)
		return wait
	}
	return 0
}

func (t *Throttle) evict() {
	t.mu.Lock()
	defer t.mu.Unlock()

	cutoff := t.now().Add(-idleWindow)
	for key, c := range t.clients {
		if c.lastSeen.Before(cutoff) {
			delete(t.clients, key)
		}
	}
}

func (t *Throttle) evictLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-t.stop:
			return
		case <-ticker.C:
			t.evict()
		}
	}
}

// clientHost strips the port from RemoteAddr so all connections of one host
// share a limiter.
func clientHost(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
