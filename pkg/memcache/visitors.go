package memcache

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// VisitorStore keeps one token bucket per client key. Entries idle for longer
// than ttl are dropped by Sweep.
type VisitorStore interface {
	Limiter(key string) *rate.Limiter
	Sweep() int
	Len() int
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type Visitors struct {
	mu    sync.Mutex
	data  map[string]*visitor
	limit rate.Limit
	burst int
	ttl   time.Duration
	now   func() time.Time
}

// NewVisitors allows perMinute requests per key per minute with a burst of the
// same size.
func NewVisitors(perMinute int, ttl time.Duration) *Visitors {
	return &Visitors{
		data:  make(map[string]*visitor),
		limit: rate.Every(time.Minute / time.Duration(perMinute)),
		burst: perMinute,
		ttl:   ttl,
		now:   time.Now,
	}
}

func (s *Visitors) Limiter(key string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if v, ok := s.data[key]; ok {
		v.lastSeen = now
		return v.limiter
	}

	v := &visitor{limiter: rate.NewLimiter(s.limit, s.burst), lastSeen: now}
	s.data[key] = v
	return v.limiter
}

// Sweep removes idle visitors and reports how many were removed.
func (s *Visitors) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-s.ttl)
	removed := 0
	for key, v := range s.data {
		if v.lastSeen.Before(cutoff) {
			delete(s.data, key)
			removed++
		}
	}
	return removed
}

func (s *Visitors) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.data)
}
