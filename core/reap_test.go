package core

import (
	"context"
	"sort"
	"testing"
	"time"

	memorystore "github.com/louddog/userreaper/storage/memory"
)

func TestReapIsolatesPerUserFailures(t *testing.T) {
	dir := &fakeDirectory{roles: map[string][]string{
		"u1": {"subscriber"}, "u2": {"subscriber"}, "u3": {"subscriber"},
		"u4": {"subscriber"}, "u5": {"subscriber"},
	}}
	deleter := &recordingDeleter{failOn: map[string]bool{"u3": true}}
	logins := memorystore.NewLogins()
	settings := NewKVSettingsStore(memorystore.NewKV())

	svc := NewService(Config{}).
		WithLoginStore(logins).
		WithSettingsStore(settings).
		WithDirectory(dir).
		WithDeleter(deleter)

	ctx := context.Background()
	for _, id := range []string{"u1", "u2", "u3", "u4", "u5"} {
		mustTouch(t, logins, id, time.Unix(0, 0))
	}
	if err := settings.Save(ctx, Settings{Enabled: true, ThresholdDays: 7, EligibleRoles: []string{"subscriber"}}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	report, err := svc.Reap(ctx, time.Unix(1_000_000, 0))
	if err != nil {
		t.Fatalf("Reap failed: %v", err)
	}
	if report.RunID == "" {
		t.Fatalf("expected a run ID")
	}
	sort.Strings(deleter.deleted)
	want := []string{"u1", "u2", "u4", "u5"}
	if len(deleter.deleted) != 4 {
		t.Fatalf("expected 4 deletions, got %v", deleter.deleted)
	}
	for i, id := range want {
		if deleter.deleted[i] != id {
			t.Fatalf("expected deletions %v, got %v", want, deleter.deleted)
		}
	}
	if len(report.Failed) != 1 || report.Failed["u3"] == nil {
		t.Fatalf("expected u3 recorded as failed, got %v", report.Failed)
	}
}

func TestReapNoOpWhenDisabled(t *testing.T) {
	dir := &fakeDirectory{roles: map[string][]string{"u1": {"subscriber"}}}
	deleter := &recordingDeleter{}
	logins := memorystore.NewLogins()

	svc := NewService(Config{}).
		WithLoginStore(logins).
		WithSettingsStore(NewKVSettingsStore(memorystore.NewKV())).
		WithDirectory(dir).
		WithDeleter(deleter)

	mustTouch(t, logins, "u1", time.Unix(0, 0))

	// Nothing saved: defaults apply, and defaults are disabled.
	report, err := svc.Reap(context.Background(), time.Unix(1_000_000, 0))
	if err != nil {
		t.Fatalf("Reap failed: %v", err)
	}
	if !report.Skipped {
		t.Fatalf("expected run to be skipped")
	}
	if len(deleter.deleted) != 0 {
		t.Fatalf("expected no deletions, got %v", deleter.deleted)
	}
}

func TestReapPropagatesSettingsStoreFailure(t *testing.T) {
	svc := NewService(Config{}).
		WithLoginStore(memorystore.NewLogins()).
		WithSettingsStore(brokenSettingsStore{}).
		WithDirectory(&fakeDirectory{}).
		WithDeleter(&recordingDeleter{})

	if _, err := svc.Reap(context.Background(), time.Now()); err == nil {
		t.Fatalf("expected error when settings store is unavailable")
	}
}
