package memcache

import (
	"testing"
	"time"
)

func TestVisitorsLimiterPerKey(t *testing.T) {
	store := NewVisitors(2, time.Minute)

	a := store.Limiter("10.0.0.1")
	if a != store.Limiter("10.0.0.1") {
		t.Fatal("same key should reuse its limiter")
	}
	if !a.Allow() || !a.Allow() {
		t.Fatal("burst of 2 should be allowed")
	}
	if a.Allow() {
		t.Fatal("third request inside the window should be denied")
	}

	if !store.Limiter("10.0.0.2").Allow() {
		t.Fatal("other keys have their own bucket")
	}
	if store.Len() != 2 {
		t.Fatalf("Len = %d, want 2", store.Len())
	}
}

func TestVisitorsSweep(t *testing.T) {
	store := NewVisitors(5, 10*time.Minute)
	clock := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return clock }

	store.Limiter("old")
	clock = clock.Add(9 * time.Minute)
	store.Limiter("fresh")
	clock = clock.Add(2 * time.Minute)

	if removed := store.Sweep(); removed != 1 {
		t.Fatalf("Sweep removed %d, want 1", removed)
	}
	if store.Len() != 1 {
		t.Fatalf("Len = %d, want 1", store.Len())
	}
}
