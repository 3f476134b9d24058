package core

import (
	"context"
	"reflect"
	"testing"

	memorystore "github.com/louddog/userreaper/storage/memory"
)

func TestKVSettingsStoreLoadBeforeSave(t *testing.T) {
	store := NewKVSettingsStore(memorystore.NewKV())
	_, ok, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if ok {
		t.Fatalf("expected found=false before first save")
	}
}

func TestKVSettingsStoreRoundTrip(t *testing.T) {
	store := NewKVSettingsStore(memorystore.NewKV())
	ctx := context.Background()
	want := Settings{Enabled: true, ThresholdDays: 14, EligibleRoles: []string{"subscriber"}}

	if err := store.Save(ctx, want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	got, ok, err := store.Load(ctx)
	if err != nil || !ok {
		t.Fatalf("Load failed: ok=%v err=%v", ok, err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}
