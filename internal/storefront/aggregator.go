package storefront

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

const DefaultConcurrency = 4

// Backend is what the aggregator needs from the upstream services.
type Backend interface {
	GetProducts(ctx context.Context) ([]Product, error)
	GetInventory(ctx context.Context, productID string) (int, error)
}

type Aggregator struct {
	Backend Backend
	// Concurrency bounds in-flight inventory calls; <= 0 means DefaultConcurrency.
	Concurrency int
}

// Products lists the catalog and fills in each product's quantity.
// It is all or nothing: the first upstream error cancels the remaining
// calls and is returned without partial results.
func (a *Aggregator) Products(ctx context.Context) ([]Product, error) {
	products, err := a.Backend.GetProducts(ctx)
	if err != nil {
		return nil, err
	}

	limit := a.Concurrency
	if limit <= 0 {
		limit = DefaultConcurrency
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i := range products {
		g.Go(func() error {
			qty, err := a.Backend.GetInventory(gctx, products[i].ProductID)
			if err != nil {
				return fmt.Errorf("product %d: %w", i, err)
			}
			products[i].Quantity = qty
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return products, nil
}
