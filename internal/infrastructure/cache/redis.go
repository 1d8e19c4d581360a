package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

func OpenRedis(addr string, db int) (*redis.Client, error) {
	r := redis.NewClient(&redis.Options{Addr: addr, DB: db})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := r.Ping(ctx).Err(); err != nil {
		_ = r.Close()
		return nil, err
	}
	return r, nil
}

// VectorCache keeps computed embeddings keyed by model and text hash.
type VectorCache struct {
	rdb    *redis.Client
	prefix string
	ttl    time.Duration
}

// NewVectorCache; ttl <= 0 keeps entries until evicted.
func NewVectorCache(rdb *redis.Client, model string, ttl time.Duration) *VectorCache {
	return &VectorCache{rdb: rdb, prefix: "emb:" + model + ":", ttl: ttl}
}

func (c *VectorCache) key(text string) string {
	s := sha256.Sum256([]byte(text))
	return c.prefix + hex.EncodeToString(s[:])
}

// Get reports ok=false on a miss.
func (c *VectorCache) Get(ctx context.Context, text string) ([]float32, bool, error) {
	b, err := c.rdb.Get(ctx, c.key(text)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var vec []float32
	if err := json.Unmarshal(b, &vec); err != nil || len(vec) == 0 {
		// unreadable entry counts as a miss; it gets overwritten
		return nil, false, nil
	}
	return vec, true, nil
}

func (c *VectorCache) Set(ctx context.Context, text string, vec []float32) error {
	b, err := json.Marshal(vec)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, c.key(text), b, c.ttl).Err()
}
