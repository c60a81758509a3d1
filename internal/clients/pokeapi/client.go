// Package pokeapi is the client for the public creature API
package pokeapi

//go:generate mockgen -destination=mock/mock_client.go -package=pokeapimock github.com/KirkDiggler/dexboard/internal/clients/pokeapi Client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/KirkDiggler/dexboard/internal/errors"
	"github.com/KirkDiggler/dexboard/internal/metrics"
	"github.com/KirkDiggler/dexboard/internal/repositories/apicache"
)

// Endpoints, also used as metric labels and cache key prefixes
const (
	EndpointPokemon        = "pokemon"
	EndpointSpecies        = "pokemon-species"
	EndpointEvolutionChain = "evolution-chain"
)

const (
	defaultBaseURL           = "https://pokeapi.co/api/v2/"
	defaultHTTPTimeout       = 30 * time.Second
	defaultRequestsPerSecond = 2
	maxBodyBytes             = 4 << 20
)

// Client defines the interface for creature API lookups
type Client interface {
	// GetPokemon fetches the battle and physical data for id
	// Returns errors.NotFound if the API has no such creature
	// Returns errors.Unavailable if the API cannot be reached or answers with a server error
	GetPokemon(ctx context.Context, id int) (*Pokemon, error)

	// GetSpecies fetches breeding and evolution metadata for id
	GetSpecies(ctx context.Context, id int) (*Species, error)

	// GetEvolutionChain fetches the chain graph with the given id
	GetEvolutionChain(ctx context.Context, id int) (*EvolutionChain, error)
}

// Config contains configuration options for the client
type Config struct {
	// BaseURL of the API (optional, defaults to https://pokeapi.co/api/v2/)
	BaseURL string
	// HTTPTimeout for each request (optional, defaults to 30 seconds)
	HTTPTimeout time.Duration
	// RequestsPerSecond caps network requests (optional, defaults to 2)
	RequestsPerSecond float64
	// HTTPClient overrides the default client (optional)
	HTTPClient *http.Client
	// Cache stores raw responses (optional)
	Cache apicache.Repository
	// CacheTTL for stored responses (optional, the cache default applies)
	CacheTTL time.Duration
}

// Validate validates the Config and sets defaults if not provided
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config is required")
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = defaultHTTPTimeout
	}
	if cfg.RequestsPerSecond == 0 {
		cfg.RequestsPerSecond = defaultRequestsPerSecond
	}

	vb := errors.NewValidationBuilder()
	if u, err := url.Parse(cfg.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		vb.Fieldf("base_url", "%q is not an absolute url", cfg.BaseURL)
	}
	if cfg.HTTPTimeout < 0 {
		vb.Field("http_timeout", "cannot be negative")
	}
	if cfg.RequestsPerSecond < 0 {
		vb.Field("requests_per_second", "cannot be negative")
	}
	return vb.Build()
}

type client struct {
	baseURL  string
	http     *http.Client
	limiter  *rate.Limiter
	cache    apicache.Repository
	cacheTTL time.Duration
}

// New creates a new API client with the given configuration
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.HTTPTimeout}
	}

	return &client{
		baseURL:  strings.TrimSuffix(cfg.BaseURL, "/") + "/",
		http:     httpClient,
		limiter:  rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1),
		cache:    cfg.Cache,
		cacheTTL: cfg.CacheTTL,
	}, nil
}

// Ensure client implements Client
var _ Client = (*client)(nil)

func (c *client) GetPokemon(ctx context.Context, id int) (*Pokemon, error) {
	var p Pokemon
	if err := c.getJSON(ctx, EndpointPokemon, id, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *client) GetSpecies(ctx context.Context, id int) (*Species, error) {
	var s Species
	if err := c.getJSON(ctx, EndpointSpecies, id, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *client) GetEvolutionChain(ctx context.Context, id int) (*EvolutionChain, error) {
	var chain EvolutionChain
	if err := c.getJSON(ctx, EndpointEvolutionChain, id, &chain); err != nil {
		return nil, err
	}
	return &chain, nil
}

// getJSON serves endpoint/id from the cache when possible, otherwise waits
// for the limiter, fetches it and caches the body.
func (c *client) getJSON(ctx context.Context, endpoint string, id int, out any) error {
	if id <= 0 {
		return errors.InvalidArgumentf("%s id must be positive, got %d", endpoint, id)
	}

	key := fmt.Sprintf("%s/%d", endpoint, id)

	if body, ok := c.cached(ctx, key); ok {
		if err := json.Unmarshal(body, out); err == nil {
			return nil
		}
		slog.WarnContext(ctx, "discarding undecodable cached response", "key", key)
	}

	body, err := c.fetch(ctx, endpoint, key)
	if err != nil {
		metrics.RecordFetch(endpoint, metrics.ResultError)
		return err
	}
	metrics.RecordFetch(endpoint, metrics.ResultOK)

	if err := json.Unmarshal(body, out); err != nil {
		return errors.WrapWithCodef(err, errors.CodeUnavailable, "malformed %s response", key)
	}

	if c.cache != nil {
		if _, err := c.cache.Put(ctx, apicache.PutInput{Key: key, Body: body, TTL: c.cacheTTL}); err != nil {
			slog.WarnContext(ctx, "failed to cache response", "key", key, "error", err)
		}
	}

	return nil
}

func (c *client) cached(ctx context.Context, key string) ([]byte, bool) {
	if c.cache == nil {
		return nil, false
	}

	out, err := c.cache.Get(ctx, apicache.GetInput{Key: key})
	if err != nil {
		if !errors.IsNotFound(err) {
			slog.WarnContext(ctx, "cache lookup failed", "key", key, "error", err)
		}
		metrics.RecordCache(metrics.CacheMiss)
		return nil, false
	}

	metrics.RecordCache(metrics.CacheHit)
	return out.Body, true
}

func (c *client) fetch(ctx context.Context, endpoint, key string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, errors.Wrapf(err, "rate limiter wait for %s", key)
	}

	reqURL := c.baseURL + key + "/"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build request for %s", key)
	}
	req.Header.Set("Accept", "application/json")

	slog.DebugContext(ctx, "fetching", "endpoint", endpoint, "url", reqURL)

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, errors.Wrapf(ctx.Err(), "request for %s aborted", key)
		}
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "request for %s failed", key)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, errors.NotFoundf("%s not found", key).WithMeta("url", reqURL)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, errors.Unavailablef("%s returned status %d", key, resp.StatusCode).
			WithMeta("url", reqURL).
			WithMeta("status", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to read %s response", key)
	}
	return body, nil
}
