package layout

import (
	"math/rand"
)

// Tile repeats items cyclically until the result holds exactly n entries.
// An empty input yields an empty result.
func Tile[T any](items []T, n int) []T {
	if len(items) == 0 || n <= 0 {
		return nil
	}
	out := make([]T, n)
	for i := range out {
		out[i] = items[i%len(items)]
	}
	return out
}

// Shuffle applies an in-place Fisher-Yates shuffle driven by rng.
func Shuffle[T any](items []T, rng *rand.Rand) {
	for i := len(items) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}

// Assign builds the slot assignment for a grid with totalSlots slots: items
// are tiled to fill the slots left after the page extras, the extras are
// appended and the combined list is shuffled. The multiset of entries is
// preserved by the shuffle; the order is not.
func Assign[T any](items []T, totalSlots int, extras []T, rng *rand.Rand) []T {
	fill := totalSlots - len(extras)
	combined := Tile(items, fill)
	combined = append(combined, extras...)
	Shuffle(combined, rng)
	return combined
}
