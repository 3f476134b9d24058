package core

import (
	"context"
	"encoding/json"
	"time"
)

// KVStore is a minimal key-value interface used to persist the settings blob when the
// host exposes generic option storage rather than a dedicated table.
// Implementations treat missing keys as (found=false, err=nil) and honor TTL on Set
// (the reaper always writes with TTL 0, i.e. no expiry).
type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}

const settingsKey = "reaper:settings"

// KVSettingsStore persists Settings as a JSON blob under a fixed key.
type KVSettingsStore struct {
	kv KVStore
}

func NewKVSettingsStore(kv KVStore) *KVSettingsStore {
	return &KVSettingsStore{kv: kv}
}

func (s *KVSettingsStore) Load(ctx context.Context) (Settings, bool, error) {
	b, ok, err := s.kv.Get(ctx, settingsKey)
	if err != nil || !ok {
		return Settings{}, false, err
	}
	var set Settings
	if err := json.Unmarshal(b, &set); err != nil {
		return Settings{}, false, err
	}
	return set, true, nil
}

func (s *KVSettingsStore) Save(ctx context.Context, set Settings) error {
	b, err := json.Marshal(set)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, settingsKey, b, 0)
}
