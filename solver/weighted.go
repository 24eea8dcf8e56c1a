package solver

import (
	"math/rand"

	"github.com/katalvlaran/collapse/cell"
)

// WeightedIterator draws items from a weighted multiset without
// replacement, each draw proportional to the remaining weights.
//
// The iterator is finite and not restartable; ordering is randomized per
// source. An empty pool yields nothing.
type WeightedIterator[V cell.Value] struct {
	items []weightedItem[V]
	total int
	rng   *rand.Rand
}

type weightedItem[V cell.Value] struct {
	value  V
	weight int
}

// NewWeightedIterator builds an iterator over the given weight map, drawing
// randomness from rng, or from the process-global source when rng is nil.
// Complexity: O(len(weights)).
func NewWeightedIterator[V cell.Value](weights map[V]int, rng *rand.Rand) *WeightedIterator[V] {
	items := make([]weightedItem[V], 0, len(weights))
	var total int
	for v, w := range weights {
		if w <= 0 {
			continue
		}
		items = append(items, weightedItem[V]{value: v, weight: w})
		total += w
	}

	return &WeightedIterator[V]{items: items, total: total, rng: rng}
}

// Next draws one item and removes it from the pool. ok=false once the pool
// is exhausted.
//
// Each draw samples r uniformly from [0, S) over the remaining total S and
// walks the pool accumulating weights until the running sum exceeds r.
// Complexity: O(k) per draw, k = remaining pool size.
func (it *WeightedIterator[V]) Next() (value V, ok bool) {
	if len(it.items) == 0 {
		var zero V
		return zero, false
	}

	// 1. Sample a point in the remaining weight mass.
	r := intn(it.rng, it.total)

	// 2. Walk entries until the cumulative weight exceeds the sample.
	chosen := len(it.items) - 1
	cumulative := 0
	for i, item := range it.items {
		cumulative += item.weight
		if cumulative > r {
			chosen = i
			break
		}
	}

	// 3. Swap-remove the drawn entry and shrink the mass.
	item := it.items[chosen]
	it.items[chosen] = it.items[len(it.items)-1]
	it.items = it.items[:len(it.items)-1]
	it.total -= item.weight

	return item.value, true
}

// intn draws a uniform integer from [0, n), from rng or the process-global
// source when rng is nil.
func intn(rng *rand.Rand, n int) int {
	if rng != nil {
		return rng.Intn(n)
	}

	return rand.Intn(n)
}
