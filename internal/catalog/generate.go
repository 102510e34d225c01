package catalog

import (
	"strconv"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
)

const (
	DefaultSize = 10
	DefaultSeed = 20240601
)

// idNamespace scopes generated product ids; ids are UUIDv5 of seed and
// position under it.
var idNamespace = uuid.MustParse("6f1c0b52-3a0e-4d8e-9b57-0c1d5a2f7e44")

// Generate builds n products from seed. The same seed always yields the
// same ids and names in the same order; ids are unique within a catalog.
func Generate(seed uint64, n int) []Product {
	if n < 0 {
		n = 0
	}

	f := gofakeit.New(seed)
	prefix := strconv.FormatUint(seed, 10) + "/"

	out := make([]Product, 0, n)
	for i := range n {
		out = append(out, Product{
			ProductID:   uuid.NewSHA1(idNamespace, []byte(prefix+strconv.Itoa(i))).String(),
			ProductName: f.ProductName(),
		})
	}
	return out
}
