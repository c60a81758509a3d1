package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client is the subset of go-redis the response cache uses. Any
// redis.UniversalClient satisfies it.
type Client interface {
	redis.Cmdable
	Close() error
}

var _ Client = (redis.UniversalClient)(nil)

// Nil is returned by Get for a missing key
const Nil = redis.Nil
