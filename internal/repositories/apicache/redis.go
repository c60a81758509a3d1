package apicache

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"time"

	"github.com/KirkDiggler/dexboard/internal/errors"
	"github.com/KirkDiggler/dexboard/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/dexboard/internal/redis"
)

const (
	// Key pattern: dexboard:api:{request key}
	keyPrefix  = "dexboard:api:"
	defaultTTL = 7 * 24 * time.Hour
	scanBatch  = 100

	errKeyEmpty  = "cache key cannot be empty"
	errBodyEmpty = "cache body cannot be empty"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
	// TTL applies when PutInput.TTL is zero; defaults to seven days
	TTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	if c.TTL < 0 {
		return errors.InvalidArgument("ttl cannot be negative")
	}
	return nil
}

type entry struct {
	Body     []byte    `json:"body"`
	StoredAt time.Time `json:"stored_at"`
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
	ttl    time.Duration
}

// NewRedisRepository creates a new Redis backed response cache
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = defaultTTL
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
		ttl:    ttl,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.Key == "" {
		return nil, errors.InvalidArgument(errKeyEmpty)
	}

	raw, err := r.client.Get(ctx, keyPrefix+input.Key).Bytes()
	if err != nil {
		if stderrors.Is(err, redisclient.Nil) {
			return nil, errors.NotFoundf("no cached response for %s", input.Key).
				WithMeta("key", input.Key)
		}
		return nil, errors.Wrapf(err, "failed to read %s from cache", input.Key)
	}

	var e entry
	if err := json.Unmarshal(raw, &e); err != nil {
		return nil, errors.Wrapf(err, "failed to decode cached %s", input.Key)
	}

	return &GetOutput{Body: e.Body, StoredAt: e.StoredAt}, nil
}

func (r *redisRepository) Put(ctx context.Context, input PutInput) (*PutOutput, error) {
	if input.Key == "" {
		return nil, errors.InvalidArgument(errKeyEmpty)
	}
	if len(input.Body) == 0 {
		return nil, errors.InvalidArgument(errBodyEmpty)
	}

	ttl := input.TTL
	if ttl <= 0 {
		ttl = r.ttl
	}

	now := r.clock.Now()
	data, err := json.Marshal(entry{Body: input.Body, StoredAt: now})
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode cache entry")
	}

	if err := r.client.Set(ctx, keyPrefix+input.Key, data, ttl).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to store %s in cache", input.Key)
	}

	return &PutOutput{ExpiresAt: now.Add(ttl)}, nil
}

func (r *redisRepository) Purge(ctx context.Context, _ PurgeInput) (*PurgeOutput, error) {
	var (
		cursor  uint64
		deleted int
	)

	for {
		keys, next, err := r.client.Scan(ctx, cursor, keyPrefix+"*", scanBatch).Result()
		if err != nil {
			return nil, errors.Wrap(err, "failed to scan cache keys")
		}
		if len(keys) > 0 {
			n, err := r.client.Del(ctx, keys...).Result()
			if err != nil {
				return nil, errors.Wrap(err, "failed to delete cache keys")
			}
			deleted += int(n)
		}
		if next == 0 {
			break
		}
		cursor = next
	}

	return &PurgeOutput{Deleted: deleted}, nil
}
