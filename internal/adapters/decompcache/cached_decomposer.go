package decompcache

import (
	"fmt"

	"github.com/AntonioJCosta/digitsplit/internal/core/domain/digits"
	"github.com/AntonioJCosta/digitsplit/internal/core/ports"
	lru "github.com/hashicorp/golang-lru/v2"
)

// CachedDecomposer wraps a DigitDecomposer and remembers the most recently
// decomposed numbers. Failed decompositions are not cached.
type CachedDecomposer struct {
	inner ports.DigitDecomposer
	cache *lru.Cache[int64, digits.Decomposition]
}

// NewCachedDecomposer decorates inner with an LRU cache holding up to size entries.
// A size of zero disables caching and returns inner unchanged.
func NewCachedDecomposer(inner ports.DigitDecomposer, size int) (ports.DigitDecomposer, error) {
	if inner == nil {
		return nil, fmt.Errorf("inner decomposer cannot be nil")
	}
	if size < 0 {
		return nil, fmt.Errorf("cache size must not be negative, got %d", size)
	}
	if size == 0 {
		return inner, nil
	}

	cache, err := lru.New[int64, digits.Decomposition](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create decomposition cache: %w", err)
	}
	return &CachedDecomposer{inner: inner, cache: cache}, nil
}

// Decompose implements the ports.DigitDecomposer interface.
func (c *CachedDecomposer) Decompose(number int64) (digits.Decomposition, error) {
	if d, ok := c.cache.Get(number); ok {
		return d, nil
	}
	d, err := c.inner.Decompose(number)
	if err != nil {
		return digits.Decomposition{}, err
	}
	c.cache.Add(number, d)
	return d, nil
}

// Len returns the number of cached decompositions.
func (c *CachedDecomposer) Len() int {
	return c.cache.Len()
}
