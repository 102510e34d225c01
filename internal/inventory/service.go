package inventory

import (
	"context"
	"errors"
	"fmt"
)

var ErrEvicted = errors.New("inventory entry evicted before read")

type Service struct {
	Cache    Cache
	Generate Generator
	Metrics  *LookupMetrics
}

func NewService(cache Cache, gen Generator) *Service {
	if gen == nil {
		gen = NewRandomGenerator(0)
	}
	return &Service{Cache: cache, Generate: gen}
}

// Quantity returns the stock level for productID, generating and caching
// one on first lookup. Any id is accepted; there is no not-found outcome.
//
// The miss path is check-then-set without a lock: concurrent first lookups
// for one id may each generate a value, and the last Set wins. The final
// read goes back to the cache, so callers only ever see stored values.
func (s *Service) Quantity(ctx context.Context, productID string) (int, error) {
	key := CacheKey(productID)

	_, found, err := s.Cache.Get(ctx, key)
	if err != nil {
		return 0, fmt.Errorf("cache get %s: %w", key, err)
	}
	s.Metrics.observe(found)

	if !found {
		if err := s.Cache.Set(ctx, key, s.Generate()); err != nil {
			return 0, fmt.Errorf("cache set %s: %w", key, err)
		}
	}

	qty, found, err := s.Cache.Get(ctx, key)
	if err != nil {
		return 0, fmt.Errorf("cache get %s: %w", key, err)
	}
	if !found {
		return 0, fmt.Errorf("%w: %s", ErrEvicted, key)
	}
	return qty, nil
}
