package auth

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/go-jose/go-jose/v4"
	"github.com/goccy/go-json"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	mobility_errors "github.com/dev-mohitbeniwal/mobility/errors"
	logger "github.com/dev-mohitbeniwal/mobility/logging"
	"github.com/dev-mohitbeniwal/mobility/metrics"
)

const maxCachedKeys = 64

// KeyCache holds the identity provider's signing keys. Reads are lock free
// for cached kids; a miss triggers at most one in-flight fetch that every
// concurrent caller shares.
type KeyCache struct {
	url          string
	client       *http.Client
	fetchTimeout time.Duration
	minRefresh   time.Duration

	keys    *expirable.LRU[string, interface{}]
	group   singleflight.Group
	breaker *gobreaker.CircuitBreaker[*jose.JSONWebKeySet]

	mu          sync.Mutex
	lastRefresh time.Time
}

var _ KeySource = &KeyCache{}

type KeyCacheOptions struct {
	TTL                time.Duration
	FetchTimeout       time.Duration
	MinRefreshInterval time.Duration
	Client             *http.Client
}

func NewKeyCache(url string, opts KeyCacheOptions) *KeyCache {
	if opts.TTL <= 0 {
		opts.TTL = time.Hour
	}
	if opts.FetchTimeout <= 0 {
		opts.FetchTimeout = 5 * time.Second
	}
	if opts.Client == nil {
		opts.Client = &http.Client{}
	}
	return &KeyCache{
		url:          url,
		client:       opts.Client,
		fetchTimeout: opts.FetchTimeout,
		minRefresh:   opts.MinRefreshInterval,
		keys:         expirable.NewLRU[string, interface{}](maxCachedKeys, nil, opts.TTL),
		breaker:      metrics.NewCircuitBreaker[*jose.JSONWebKeySet]("jwks", 30*time.Second),
	}
}

// Key returns the public key for kid. Unknown kids yield ErrUnknownSigningKey;
// fetch failures yield ErrKeySetUnavailable.
func (c *KeyCache) Key(ctx context.Context, kid string) (interface{}, error) {
	if key, ok := c.keys.Get(kid); ok {
		return key, nil
	}

	ch := c.group.DoChan("jwks", func() (interface{}, error) {
		return nil, c.refresh()
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	if key, ok := c.keys.Get(kid); ok {
		return key, nil
	}
	return nil, fmt.Errorf("%w: %s", mobility_errors.ErrUnknownSigningKey, kid)
}

func (c *KeyCache) refresh() error {
	c.mu.Lock()
	recent := !c.lastRefresh.IsZero() && time.Since(c.lastRefresh) < c.minRefresh
	c.mu.Unlock()
	if recent {
		return nil
	}

	// Detached from any caller so one impatient request cannot cancel the
	// fetch the others are waiting on.
	ctx, cancel := context.WithTimeout(context.Background(), c.fetchTimeout)
	defer cancel()

	set, err := c.breaker.Execute(func() (*jose.JSONWebKeySet, error) {
		return c.fetch(ctx)
	})
	if err != nil {
		metrics.KeySetFetches.WithLabelValues("error").Inc()
		logger.Error("Failed to fetch signing keys", zap.String("url", c.url), zap.Error(err))
		return fmt.Errorf("%w: %v", mobility_errors.ErrKeySetUnavailable, err)
	}

	added := 0
	for _, k := range set.Keys {
		if k.KeyID == "" || !k.IsPublic() || (k.Use != "" && k.Use != "sig") {
			continue
		}
		c.keys.Add(k.KeyID, k.Key)
		added++
	}

	c.mu.Lock()
	c.lastRefresh = time.Now()
	c.mu.Unlock()

	metrics.KeySetFetches.WithLabelValues("ok").Inc()
	logger.Info("Signing keys refreshed", zap.String("url", c.url), zap.Int("keys", added))
	return nil
}

func (c *KeyCache) fetch(ctx context.Context) (*jose.JSONWebKeySet, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("received non-OK HTTP status from JWKS endpoint: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, err
	}

	var set jose.JSONWebKeySet
	if err := json.Unmarshal(body, &set); err != nil {
		return nil, fmt.Errorf("failed to parse JWKS: %w", err)
	}
	return &set, nil
}
