// Package espn is a typed client for the family of ESPN sports-data
// APIs: scoreboards, teams, rosters, injuries, standings, odds and
// fantasy leagues across every sport the upstream exposes.
//
// A Client is pinned to one (sport, league) pair. Calls flow through
// three layers: the resolver maps the logical operation and filters to
// a concrete request descriptor, the cache manager answers from a live
// entry or coalesces a single upstream fetch, and the models package
// normalizes the raw payload into stable records.
package espn

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"

	"github.com/fenneh/espn-sports-api/cache"
	"github.com/fenneh/espn-sports-api/models"
	"github.com/fenneh/espn-sports-api/registry"
	"github.com/fenneh/espn-sports-api/resolver"
	"github.com/fenneh/espn-sports-api/transport"
)

// Filters is re-exported so callers don't import the resolver package
// for the common case.
type Filters = resolver.Filters

// Client provides access to one league's endpoints.
type Client struct {
	sctx      resolver.SportContext
	transport transport.Transport
	backend   cache.Backend
	cache     *cache.Manager
	ttl       time.Duration
	headers   http.Header
	clock     clockwork.Clock
	log       zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithTransport substitutes the HTTP capability, mainly for tests.
func WithTransport(t transport.Transport) Option {
	return func(c *Client) { c.transport = t }
}

// WithCache enables response caching on the given backend with the
// given TTL. A TTL of zero or less leaves caching disabled.
func WithCache(backend cache.Backend, ttl time.Duration) Option {
	return func(c *Client) {
		c.backend = backend
		c.ttl = ttl
	}
}

// WithSeasonType sets the default season type for scoreboard requests
// that carry no explicit date or seasontype filter.
func WithSeasonType(st resolver.SeasonType) Option {
	return func(c *Client) { c.sctx.SeasonType = st }
}

// WithHeader adds an opaque header (credentials included) sent on every
// request. The client never inspects the value.
func WithHeader(key, value string) Option {
	return func(c *Client) { c.headers.Set(key, value) }
}

// WithLogger attaches a structured logger.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// WithClock substitutes the wall clock used for cache expiry and the
// date convenience calls. Tests use a fake clock.
func WithClock(clock clockwork.Clock) Option {
	return func(c *Client) { c.clock = clock }
}

// New creates a client for a (sport, league) pair. The pair is resolved
// against the registry immediately so an unknown league fails at
// construction, not on first call. League may be empty for
// single-league sports ("football" implies nfl).
func New(sport, league string, opts ...Option) (*Client, error) {
	if _, err := registry.Resolve(sport, league); err != nil {
		return nil, err
	}
	c := &Client{
		sctx:    resolver.SportContext{Sport: sport, League: league},
		headers: http.Header{},
		clock:   clockwork.NewRealClock(),
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.transport == nil {
		c.transport = transport.New(transport.WithLogger(c.log))
	}
	// The manager is built last so it sees the final clock and logger
	// regardless of option order.
	if c.backend != nil && c.ttl > 0 {
		c.cache = cache.NewManager(c.backend, cache.WithClock(c.clock), cache.WithLogger(c.log))
	}
	return c, nil
}

// Do resolves and executes a logical operation, returning the raw
// payload. All typed accessors funnel through here.
func (c *Client) Do(ctx context.Context, op resolver.Operation, f Filters) (json.RawMessage, error) {
	desc, err := resolver.Build(c.sctx, op, f)
	if err != nil {
		return nil, err
	}

	fetch := func(ctx context.Context) ([]byte, error) {
		raw, err := c.transport.Get(ctx, desc.URL, desc.Query, c.headers)
		if err != nil {
			return nil, err
		}
		// Reject non-JSON bodies (error pages and the like) before they
		// can reach the cache: failures are never stored.
		if !gjson.ValidBytes(raw) {
			return nil, fmt.Errorf("%w: %s returned a non-JSON body", models.ErrMalformedResponse, op)
		}
		return raw, nil
	}

	if c.cache == nil || c.ttl <= 0 {
		return fetch(ctx)
	}
	return c.cache.GetOrCompute(ctx, desc.CacheKey(), c.ttl, fetch)
}

// ClearCache removes every entry from the active cache backend. It is
// a no-op when caching is disabled.
func (c *Client) ClearCache(ctx context.Context) error {
	if c.cache == nil {
		return nil
	}
	return c.cache.Clear(ctx)
}
