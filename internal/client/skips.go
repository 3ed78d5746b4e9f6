// Package client implements the caller-side retrieval component that sits
// between the display layer and the locator. It owns the caching, retry, and
// staleness policy so consumers only ever see a simple data/loading/error
// snapshot.
package client

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sethvargo/go-retry"
	"golang.org/x/sync/singleflight"

	"github.com/remwaste/skip-catalog/internal/domain"
)

const (
	// freshFor is how long a cached result is served without re-invoking
	// the gateway for the same (postcode, area) key.
	freshFor = 5 * time.Minute

	// maxRetries is the number of additional attempts after the first
	// failed gateway call.
	maxRetries = 2

	retryBackoff = 250 * time.Millisecond
)

// Gateway is the locator-side dependency of the client.
// Implemented by service.LocatorService; tests inject a mock.
type Gateway interface {
	FetchByLocation(ctx context.Context, postcode, area string) ([]domain.Skip, error)
}

// Result is the snapshot handed to consumers. Data is never nil: while
// loading and on terminal error it is an empty slice.
type Result struct {
	Data    []domain.Skip
	Loading bool
	Err     error
}

type cacheEntry struct {
	skips     []domain.Skip
	fetchedAt time.Time
}

// SkipsClient retrieves offerings through a Gateway with a bounded-freshness
// cache per (postcode, area) key, bounded retries, and last-requested-key-wins
// semantics: whichever key was requested most recently is the one Current
// reflects, regardless of the order in which responses arrive.
type SkipsClient struct {
	gateway Gateway
	now     func() time.Time // injectable for freshness tests
	group   singleflight.Group

	mu        sync.Mutex
	cache     map[string]cacheEntry
	active    string // most recently requested key; "" until first Get
	activeRes Result
	inflight  map[string]int
}

// New constructs a SkipsClient over the given gateway.
func New(gateway Gateway) *SkipsClient {
	return &SkipsClient{
		gateway:  gateway,
		now:      time.Now,
		cache:    make(map[string]cacheEntry),
		inflight: make(map[string]int),
	}
}

func key(postcode, area string) string {
	return postcode + "|" + area
}

// Get retrieves the offerings for a location and blocks until the result
// settles. An empty postcode disables the client: no gateway call is made
// and an empty, non-loading, non-error Result is returned.
//
// Within the freshness window a repeated Get for the same key returns the
// cached value without re-invoking the gateway. Failures are retried up to
// maxRetries times before settling into ErrRetrievalFailed; an invalid
// request is never retried. Concurrent Gets for the same key share one
// gateway call.
func (c *SkipsClient) Get(ctx context.Context, postcode, area string) Result {
	if postcode == "" {
		return Result{Data: []domain.Skip{}}
	}

	k := key(postcode, area)

	c.mu.Lock()
	c.active = k
	if e, ok := c.cache[k]; ok && c.now().Sub(e.fetchedAt) < freshFor {
		res := Result{Data: e.skips}
		c.activeRes = res
		c.mu.Unlock()
		return res
	}
	c.inflight[k]++
	c.activeRes = Result{Data: []domain.Skip{}, Loading: true}
	c.mu.Unlock()

	v, err, _ := c.group.Do(k, func() (any, error) {
		return c.fetch(ctx, postcode, area)
	})

	res := Result{Data: []domain.Skip{}}
	if err != nil {
		res.Err = err
	} else {
		res.Data = v.([]domain.Skip)
	}

	c.settle(k, res)
	return res
}

// fetch runs the gateway call under the retry policy.
func (c *SkipsClient) fetch(ctx context.Context, postcode, area string) ([]domain.Skip, error) {
	var skips []domain.Skip

	backoff := retry.WithMaxRetries(maxRetries, retry.NewConstant(retryBackoff))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		var err error
		skips, err = c.gateway.FetchByLocation(ctx, postcode, area)
		if err == nil {
			return nil
		}
		if errors.Is(err, domain.ErrInvalidRequest) {
			// User-correctable; retrying cannot help.
			return err
		}
		return retry.RetryableError(err)
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRequest) {
			return nil, err
		}
		return nil, fmt.Errorf("client.SkipsClient: %w: %w", domain.ErrRetrievalFailed, err)
	}

	if skips == nil {
		skips = []domain.Skip{}
	}
	return skips, nil
}

// settle records a settled result. The cache entry for k is always updated
// on success, but the active view only changes when k is still the most
// recently requested key: a superseded request's result is kept for its own
// key and otherwise discarded.
func (c *SkipsClient) settle(k string, res Result) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.inflight[k] > 0 {
		c.inflight[k]--
		if c.inflight[k] == 0 {
			delete(c.inflight, k)
		}
	}
	if res.Err == nil {
		c.cache[k] = cacheEntry{skips: res.Data, fetchedAt: c.now()}
	}
	if c.active == k {
		c.activeRes = res
	}
}

// Current returns the snapshot for the most recently requested key.
// Before any Get it is an empty, idle Result.
func (c *SkipsClient) Current() Result {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.active == "" {
		return Result{Data: []domain.Skip{}}
	}
	return c.activeRes
}

// Invalidate drops the cached entry for a key so the next Get re-fetches.
// This backs the manual retry action offered on a terminal error.
func (c *SkipsClient) Invalidate(postcode, area string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.cache, key(postcode, area))
}
