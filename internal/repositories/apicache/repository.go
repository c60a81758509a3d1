// Package apicache stores raw creature API responses in Redis so a re-run
// of the crawl does not hit the network for data it already has.
package apicache

//go:generate mockgen -destination=mock/mock_repository.go -package=apicachemock github.com/KirkDiggler/dexboard/internal/repositories/apicache Repository

import (
	"context"
	"time"
)

// Repository caches response bodies by request key
type Repository interface {
	// Get returns the cached body for input.Key
	// Returns errors.NotFound if the key was never stored or has expired
	// Returns errors.InvalidArgument for an empty key
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Put stores input.Body under input.Key for input.TTL (zero means the default TTL)
	// Returns errors.InvalidArgument for an empty key or body
	Put(ctx context.Context, input PutInput) (*PutOutput, error)

	// Purge deletes every cached entry
	Purge(ctx context.Context, input PurgeInput) (*PurgeOutput, error)
}

// GetInput defines the input for reading a cached response
type GetInput struct {
	Key string
}

// GetOutput defines the output for reading a cached response
type GetOutput struct {
	Body     []byte
	StoredAt time.Time
}

// PutInput defines the input for caching a response
type PutInput struct {
	Key  string
	Body []byte
	TTL  time.Duration
}

// PutOutput defines the output for caching a response
type PutOutput struct {
	ExpiresAt time.Time
}

// PurgeInput defines the input for clearing the cache
type PurgeInput struct{}

// PurgeOutput defines the output for clearing the cache
type PurgeOutput struct {
	Deleted int
}
