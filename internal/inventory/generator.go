package inventory

import (
	"sync"

	"github.com/brianvoe/gofakeit/v7"
)

const (
	MinQuantity = 1
	MaxQuantity = 99
)

// Generator produces a fresh quantity in [MinQuantity, MaxQuantity].
type Generator func() int

// NewRandomGenerator returns a Generator safe for concurrent use.
// A zero seed picks a random one.
func NewRandomGenerator(seed uint64) Generator {
	var mu sync.Mutex
	f := gofakeit.New(seed)

	return func() int {
		mu.Lock()
		defer mu.Unlock()
		return f.IntRange(MinQuantity, MaxQuantity)
	}
}
