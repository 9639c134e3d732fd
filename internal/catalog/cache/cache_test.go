package cache

import (
	"testing"
	"time"

	"staymarket/pkg/model"
)

func listings(ids ...string) []model.Listing {
	out := make([]model.Listing, 0, len(ids))
	for _, id := range ids {
		out = append(out, model.Listing{ID: id})
	}
	return out
}

func TestGetMissesOnEmptyCache(t *testing.T) {
	c := New(5 * time.Minute)

	if _, ok := c.Get("fp"); ok {
		t.Error("expected a miss on an empty cache")
	}
}

func TestCompleteThenGet(t *testing.T) {
	c := New(5 * time.Minute)

	seq := c.Begin("fp")
	if !c.Complete("fp", seq, listings("a", "b")) {
		t.Fatal("Complete rejected the only in-flight fetch")
	}

	got, ok := c.Get("fp")
	if !ok {
		t.Fatal("expected a hit after Complete")
	}
	if len(got) != 2 || got[0].ID != "a" {
		t.Errorf("got %v", got)
	}
}

func TestEquivalentFiltersShareAnEntry(t *testing.T) {
	c := New(5 * time.Minute)

	first := model.FilterSet{Location: " Lisbon ", Amenities: []string{"pool", "wifi"}}
	second := model.FilterSet{Location: "lisbon", Amenities: []string{"wifi", "pool"}}

	seq := c.Begin(first.Fingerprint())
	c.Complete(first.Fingerprint(), seq, listings("a"))

	if _, ok := c.Get(second.Fingerprint()); !ok {
		t.Error("a filter with the same constraints missed the cache")
	}
}

func TestStaleEntryIsAMiss(t *testing.T) {
	clock := time.Date(2026, time.January, 1, 12, 0, 0, 0, time.UTC)
	c := NewWithClock(5*time.Minute, func() time.Time { return clock })

	seq := c.Begin("fp")
	c.Complete("fp", seq, listings("a"))

	clock = clock.Add(5 * time.Minute)
	if _, ok := c.Get("fp"); !ok {
		t.Error("entry exactly at the freshness boundary was a miss")
	}

	clock = clock.Add(time.Nanosecond)
	if _, ok := c.Get("fp"); ok {
		t.Error("entry past the freshness window was served")
	}
	if c.Len() != 1 {
		t.Error("stale entry was evicted instead of kept for overwrite")
	}
}

func TestStaleEntryIsOverwritten(t *testing.T) {
	clock := time.Date(2026, time.January, 1, 12, 0, 0, 0, time.UTC)
	c := NewWithClock(5*time.Minute, func() time.Time { return clock })

	seq := c.Begin("fp")
	c.Complete("fp", seq, listings("old"))

	clock = clock.Add(10 * time.Minute)
	seq = c.Begin("fp")
	c.Complete("fp", seq, listings("new"))

	got, ok := c.Get("fp")
	if !ok || got[0].ID != "new" {
		t.Errorf("expected the refreshed entry, got %v (hit=%v)", got, ok)
	}
	if c.Len() != 1 {
		t.Errorf("expected a single entry, got %d", c.Len())
	}
}

func TestLateResponseIsDiscarded(t *testing.T) {
	c := New(5 * time.Minute)

	early := c.Begin("fp")
	late := c.Begin("fp")

	if c.Complete("fp", early, listings("early")) {
		t.Error("superseded fetch was allowed to write")
	}
	if !c.Complete("fp", late, listings("late")) {
		t.Fatal("latest fetch was rejected")
	}

	got, ok := c.Get("fp")
	if !ok || got[0].ID != "late" {
		t.Errorf("expected the late fetch's result, got %v (hit=%v)", got, ok)
	}
}

func TestSequenceGuardIsPerFingerprint(t *testing.T) {
	c := New(5 * time.Minute)

	seqA := c.Begin("a")
	c.Begin("b")

	if !c.Complete("a", seqA, listings("a")) {
		t.Error("a fetch for a different fingerprint superseded this one")
	}
}
