package catalog

import (
	"context"
)

// MemStore serves a catalog fixed at construction.
type MemStore struct {
	products []Product
	byID     map[string]int
}

func NewMemStore(products []Product) *MemStore {
	s := &MemStore{
		products: append([]Product(nil), products...),
		byID:     make(map[string]int, len(products)),
	}
	for i, p := range s.products {
		s.byID[p.ProductID] = i
	}
	return s
}

// NewStore returns the reference catalog: DefaultSize products from DefaultSeed.
func NewStore() *MemStore {
	return NewMemStore(Generate(DefaultSeed, DefaultSize))
}

func (s *MemStore) Ping(context.Context) error { return nil }

// List returns a copy in generation order.
func (s *MemStore) List(context.Context) ([]Product, error) {
	return append([]Product(nil), s.products...), nil
}

func (s *MemStore) Get(_ context.Context, id string) (Product, bool, error) {
	i, ok := s.byID[id]
	if !ok {
		return Product{}, false, nil
	}
	return s.products[i], true, nil
}
