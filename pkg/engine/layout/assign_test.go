package layout

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTile(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3, 1, 2, 3, 1}, Tile([]int{1, 2, 3}, 7))
	assert.Equal(t, []int{1, 2}, Tile([]int{1, 2, 3}, 2))
	assert.Empty(t, Tile([]int{}, 5))
	assert.Empty(t, Tile([]int{1}, 0))
}

func TestShuffle_PreservesMultiset(t *testing.T) {
	items := []string{"a", "b", "b", "c", "d", "d", "d"}
	shuffled := append([]string(nil), items...)
	Shuffle(shuffled, rand.New(rand.NewSource(42)))

	sort.Strings(items)
	sort.Strings(shuffled)
	assert.Equal(t, items, shuffled)
}

func TestShuffle_Seeded(t *testing.T) {
	a := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	b := append([]int(nil), a...)
	Shuffle(a, rand.New(rand.NewSource(7)))
	Shuffle(b, rand.New(rand.NewSource(7)))
	assert.Equal(t, a, b)
}

func TestAssign_TwelveItemsFillTwentyFiveSlots(t *testing.T) {
	ids := make([]int, 12)
	for i := range ids {
		ids[i] = i
	}
	size := ComputeGridSize(len(ids), 5, 5)
	require.Equal(t, 25, size.Total())

	got := Assign(ids, size.Total(), nil, rand.New(rand.NewSource(1)))
	require.Len(t, got, 25)

	want := Tile(ids, 25)
	sort.Ints(want)
	sort.Ints(got)
	assert.Equal(t, want, got)
}

func TestAssign_ExtrasAlwaysPlaced(t *testing.T) {
	items := []string{"w1", "w2", "w3"}
	extras := []string{"up", "next", "prev"}
	for seed := int64(0); seed < 20; seed++ {
		got := Assign(items, 25, extras, rand.New(rand.NewSource(seed)))
		require.Len(t, got, 25)
		for _, e := range extras {
			assert.Contains(t, got, e)
		}
	}
}
