package redisstore

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// KV is a Redis-backed key-value store with TTL support.
type KV struct {
	rdb *redis.Client
}

func NewKV(rdb *redis.Client) *KV {
	return &KV{rdb: rdb}
}

func (k *KV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := k.rdb.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

func (k *KV) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return k.rdb.Set(ctx, key, value, ttl).Err()
}

func (k *KV) Del(ctx context.Context, key string) error {
	return k.rdb.Del(ctx, key).Err()
}

const loginsKey = "reaper:lastlogin"

// Logins is a Redis-backed last-login index: one sorted set keyed by user ID with the
// login time (unix seconds) as score, so the cutoff query is a single ZRANGEBYSCORE.
type Logins struct {
	rdb *redis.Client
}

func NewLogins(rdb *redis.Client) *Logins {
	return &Logins{rdb: rdb}
}

func (l *Logins) Touch(ctx context.Context, userID string, at time.Time) error {
	return l.rdb.ZAdd(ctx, loginsKey, redis.Z{
		Score:  float64(at.Unix()),
		Member: userID,
	}).Err()
}

func (l *Logins) LastLogin(ctx context.Context, userID string) (time.Time, bool, error) {
	score, err := l.rdb.ZScore(ctx, loginsKey, userID).Result()
	if err == redis.Nil {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, err
	}
	return time.Unix(int64(score), 0), true, nil
}

func (l *Logins) ListActiveBefore(ctx context.Context, cutoff time.Time) ([]string, error) {
	// ZRANGEBYSCORE bounds are inclusive, matching the "ties count as inactive" rule.
	return l.rdb.ZRangeByScore(ctx, loginsKey, &redis.ZRangeBy{
		Min: "-inf",
		Max: strconv.FormatInt(cutoff.Unix(), 10),
	}).Result()
}

func (l *Logins) SeedMissing(ctx context.Context, userIDs []string, at time.Time) error {
	if len(userIDs) == 0 {
		return nil
	}
	members := make([]redis.Z, 0, len(userIDs))
	for _, userID := range userIDs {
		members = append(members, redis.Z{Score: float64(at.Unix()), Member: userID})
	}
	return l.rdb.ZAddNX(ctx, loginsKey, members...).Err()
}

func (l *Logins) Clear(ctx context.Context) error {
	return l.rdb.Del(ctx, loginsKey).Err()
}
