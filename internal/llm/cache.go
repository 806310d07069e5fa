package llm

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Forgetter is implemented by providers that remember replies. Callers
// that reject a reply after the fact use it so a retry is not served the
// same reply again.
type Forgetter interface {
	Forget(req Request)
}

// CachingProvider is a decorator that memoizes successful responses for
// identical requests. Failures are never cached, so a retry after an
// error always reaches the provider.
type CachingProvider struct {
	inner Provider
	cache *lru.Cache[string, Response]
}

// WithCache wraps p with an LRU response cache holding up to size
// entries. A size of zero or less returns p unchanged.
func WithCache(p Provider, size int) (Provider, error) {
	if size <= 0 {
		return p, nil
	}
	c, err := lru.New[string, Response](size)
	if err != nil {
		return nil, fmt.Errorf("create response cache: %w", err)
	}
	return &CachingProvider{inner: p, cache: c}, nil
}

func (c *CachingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	key := c.key(req)
	if hit, ok := c.cache.Get(key); ok {
		resp := hit
		return &resp, nil
	}

	resp, err := c.inner.Generate(ctx, req)
	if err != nil {
		return nil, err
	}
	c.cache.Add(key, *resp)
	return resp, nil
}

func (c *CachingProvider) ModelID() string {
	return c.inner.ModelID()
}

// Forget drops the cached reply for req, if any.
func (c *CachingProvider) Forget(req Request) {
	c.cache.Remove(c.key(req))
}

// Len returns the number of cached responses.
func (c *CachingProvider) Len() int {
	return c.cache.Len()
}

func (c *CachingProvider) key(req Request) string {
	h := sha256.New()
	fmt.Fprintf(h, "%s\x00%s\x00%d\x00%g\x00", c.inner.ModelID(), req.System, req.MaxTokens, req.Temperature)
	for _, m := range req.Messages {
		fmt.Fprintf(h, "%s\x00%s\x00", m.Role, m.Content)
	}
	return hex.EncodeToString(h.Sum(nil))
}
