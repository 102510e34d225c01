package catalog

import "context"

type Product struct {
	ProductID   string `json:"ProductId"`
	ProductName string `json:"ProductName"`
}

type Store interface {
	Ping(ctx context.Context) error
	List(ctx context.Context) ([]Product, error)
	Get(ctx context.Context, id string) (Product, bool, error)
}
