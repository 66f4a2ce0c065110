package index

import (
	"testing"
	"time"

	"github.com/dayweave/planner/internal/domain"
)

func plan(id string) *domain.DayPlan {
	return &domain.DayPlan{ID: id, Title: "plan " + id}
}

func TestPutGetDelete(t *testing.T) {
	idx := NewMemoryIndex()

	idx.Put(plan("p1"))
	got, ok := idx.Get("p1")
	if !ok || got.ID != "p1" {
		t.Fatalf("Get(p1) = %v, %v", got, ok)
	}

	if _, ok := idx.Get("missing"); ok {
		t.Error("Get(missing) reported ok")
	}

	idx.Delete("p1")
	if _, ok := idx.Get("p1"); ok {
		t.Error("Get after Delete reported ok")
	}
	if idx.Count() != 0 {
		t.Errorf("Count() = %d, want 0", idx.Count())
	}
}

func TestReplaceAll(t *testing.T) {
	idx := NewMemoryIndex()
	idx.Put(plan("old"))

	idx.ReplaceAll([]*domain.DayPlan{plan("a"), plan("b")})

	if idx.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", idx.Count())
	}
	if _, ok := idx.Get("old"); ok {
		t.Error("stale plan survived ReplaceAll")
	}
	if _, ok := idx.Get("a"); !ok {
		t.Error("synced plan missing")
	}
}

func TestEvictIdle(t *testing.T) {
	idx := NewMemoryIndex()
	idx.Put(plan("stale"))

	// Everything inserted so far is "before" a future cutoff.
	evicted := idx.EvictIdle(time.Now().Add(time.Minute))
	if len(evicted) != 1 || evicted[0] != "stale" {
		t.Fatalf("EvictIdle() = %v, want [stale]", evicted)
	}
	if idx.Count() != 0 {
		t.Errorf("Count() = %d, want 0", idx.Count())
	}

	// A fresh entry survives a past cutoff.
	idx.Put(plan("fresh"))
	if evicted := idx.EvictIdle(time.Now().Add(-time.Minute)); len(evicted) != 0 {
		t.Errorf("EvictIdle() = %v, want none", evicted)
	}
	if idx.Count() != 1 {
		t.Errorf("Count() = %d, want 1", idx.Count())
	}
}

func TestGetRefreshesSession(t *testing.T) {
	idx := NewMemoryIndex()
	idx.Put(plan("p1"))

	cutoff := time.Now()
	time.Sleep(2 * time.Millisecond)
	if _, ok := idx.Get("p1"); !ok {
		t.Fatal("Get(p1) failed")
	}

	// The Get above touched the session after the cutoff.
	if evicted := idx.EvictIdle(cutoff); len(evicted) != 0 {
		t.Errorf("EvictIdle() = %v, want none after touch", evicted)
	}
}
