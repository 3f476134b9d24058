package memorystore

import (
	"context"
	"sort"
	"testing"
	"time"
)

func TestLoginsListActiveBeforeInclusive(t *testing.T) {
	l := NewLogins()
	ctx := context.Background()
	cutoff := time.Unix(1000, 0)

	_ = l.Touch(ctx, "before", cutoff.Add(-time.Second))
	_ = l.Touch(ctx, "at", cutoff)
	_ = l.Touch(ctx, "after", cutoff.Add(time.Second))

	got, err := l.ListActiveBefore(ctx, cutoff)
	if err != nil {
		t.Fatalf("ListActiveBefore failed: %v", err)
	}
	sort.Strings(got)
	if len(got) != 2 || got[0] != "at" || got[1] != "before" {
		t.Fatalf("expected [at before], got %v", got)
	}
}

func TestLoginsSeedMissingLeavesExisting(t *testing.T) {
	l := NewLogins()
	ctx := context.Background()
	existing := time.Unix(10, 0)
	seeded := time.Unix(99, 0)

	_ = l.Touch(ctx, "old", existing)
	if err := l.SeedMissing(ctx, []string{"old", "new"}, seeded); err != nil {
		t.Fatalf("SeedMissing failed: %v", err)
	}

	at, ok, _ := l.LastLogin(ctx, "old")
	if !ok || !at.Equal(existing) {
		t.Fatalf("expected old untouched at %v, got %v", existing, at)
	}
	at, ok, _ = l.LastLogin(ctx, "new")
	if !ok || !at.Equal(seeded) {
		t.Fatalf("expected new seeded at %v, got ok=%v at=%v", seeded, ok, at)
	}
}

func TestKVRoundTrip(t *testing.T) {
	kv := NewKV()
	ctx := context.Background()
	if err := kv.Set(ctx, "k", []byte("v"), 0); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	b, ok, err := kv.Get(ctx, "k")
	if err != nil || !ok || string(b) != "v" {
		t.Fatalf("expected v, got %q ok=%v err=%v", b, ok, err)
	}
	if err := kv.Del(ctx, "k"); err != nil {
		t.Fatalf("Del failed: %v", err)
	}
	if _, ok, _ := kv.Get(ctx, "k"); ok {
		t.Fatalf("expected key deleted")
	}
}
