package memorystore

import (
	"context"
	"sync"
	"time"
)

type kvEntry struct {
	value     []byte
	expiresAt time.Time // zero means no expiry
}

// KV is an in-memory key-value store holding option blobs for tests and
// single-process installs. Expired entries are dropped lazily on read.
type KV struct {
	mu      sync.Mutex
	entries map[string]kvEntry
}

func NewKV() *KV {
	return &KV{entries: make(map[string]kvEntry)}
}

func (k *KV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	_ = ctx
	k.mu.Lock()
	defer k.mu.Unlock()
	e, ok := k.entries[key]
	switch {
	case !ok:
		return nil, false, nil
	case !e.expiresAt.IsZero() && time.Now().After(e.expiresAt):
		delete(k.entries, key)
		return nil, false, nil
	}
	return e.value, true, nil
}

func (k *KV) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	_ = ctx
	k.mu.Lock()
	defer k.mu.Unlock()
	e := kvEntry{value: append([]byte(nil), value...)}
	if ttl > 0 {
		e.expiresAt = time.Now().Add(ttl)
	}
	k.entries[key] = e
	return nil
}

func (k *KV) Del(ctx context.Context, key string) error {
	_ = ctx
	k.mu.Lock()
	defer k.mu.Unlock()
	delete(k.entries, key)
	return nil
}

// Logins is an in-memory last-login index. Like KV it is only safe for
// single-process deployments.
type Logins struct {
	mu sync.Mutex
	at map[string]time.Time
}

func NewLogins() *Logins {
	return &Logins{at: make(map[string]time.Time)}
}

func (l *Logins) Touch(ctx context.Context, userID string, at time.Time) error {
	_ = ctx
	l.mu.Lock()
	defer l.mu.Unlock()
	l.at[userID] = at
	return nil
}

func (l *Logins) LastLogin(ctx context.Context, userID string) (time.Time, bool, error) {
	_ = ctx
	l.mu.Lock()
	defer l.mu.Unlock()
	at, ok := l.at[userID]
	return at, ok, nil
}

func (l *Logins) ListActiveBefore(ctx context.Context, cutoff time.Time) ([]string, error) {
	_ = ctx
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []string
	for userID, at := range l.at {
		if !at.After(cutoff) {
			out = append(out, userID)
		}
	}
	return out, nil
}

func (l *Logins) SeedMissing(ctx context.Context, userIDs []string, at time.Time) error {
	_ = ctx
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, userID := range userIDs {
		if _, ok := l.at[userID]; !ok {
			l.at[userID] = at
		}
	}
	return nil
}

func (l *Logins) Clear(ctx context.Context) error {
	_ = ctx
	l.mu.Lock()
	defer l.mu.Unlock()
	l.at = make(map[string]time.Time)
	return nil
}
