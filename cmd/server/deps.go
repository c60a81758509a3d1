package main

import (
	"context"
	"time"

	"github.com/KirkDiggler/dexboard/internal/clients/pokeapi"
	"github.com/KirkDiggler/dexboard/internal/config"
	"github.com/KirkDiggler/dexboard/internal/errors"
	"github.com/KirkDiggler/dexboard/internal/metrics"
	"github.com/KirkDiggler/dexboard/internal/orchestrators/dashboard"
	"github.com/KirkDiggler/dexboard/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/dexboard/internal/redis"
	"github.com/KirkDiggler/dexboard/internal/repositories/apicache"
	"github.com/KirkDiggler/dexboard/internal/repositories/records"
	"github.com/KirkDiggler/dexboard/internal/store"
)

// openRecords returns the snapshot repository for the configured format
func openRecords(cfg *config.Config) (records.Repository, error) {
	repoCfg := &records.Config{Path: cfg.Data.Path}

	if cfg.Data.Format == config.FormatSQLite {
		return records.NewSQLiteRepository(repoCfg)
	}
	return records.NewCSVRepository(repoCfg)
}

// newAPIClient builds the creature API client, backed by the Redis response
// cache when an address is configured. The returned func releases the cache
// connection.
func newAPIClient(cfg *config.Config) (pokeapi.Client, func(), error) {
	clientCfg := &pokeapi.Config{
		BaseURL:           cfg.API.BaseURL,
		HTTPTimeout:       cfg.API.HTTPTimeout,
		RequestsPerSecond: cfg.API.RequestsPerSecond,
	}
	cleanup := func() {}

	if cfg.Cache.RedisAddr != "" {
		rc, err := redisclient.NewClient(cfg.Cache.RedisAddr, &redisclient.Options{
			DialTimeout: 5 * time.Second,
			MaxRetries:  2,
		})
		if err != nil {
			return nil, nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to create redis client")
		}

		cache, err := apicache.NewRedisRepository(&apicache.Config{
			Client: rc,
			Clock:  clock.New(),
			TTL:    cfg.Cache.TTL,
		})
		if err != nil {
			_ = rc.Close()
			return nil, nil, err
		}

		clientCfg.Cache = cache
		clientCfg.CacheTTL = cfg.Cache.TTL
		cleanup = func() {
			_ = rc.Close() // nolint:errcheck // safe to ignore in cleanup
		}
	}

	client, err := pokeapi.New(clientCfg)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	return client, cleanup, nil
}

// newDashboard loads the snapshot into a store and wraps it in a dashboard.
// An unreadable snapshot still yields a dashboard; it renders the
// unavailable notice.
func newDashboard(ctx context.Context, cfg *config.Config) (dashboard.Service, *store.Store, error) {
	repo, err := openRecords(cfg)
	if err != nil {
		return nil, nil, err
	}

	snapshot := store.Load(ctx, repo)
	metrics.RecordLoad(snapshot.Len(), len(snapshot.Failures()))

	svc, err := dashboard.NewOrchestrator(&dashboard.Config{Records: snapshot})
	if err != nil {
		return nil, nil, err
	}

	return svc, snapshot, nil
}
