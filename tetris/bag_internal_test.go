package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type countingRandom struct {
	calls int
}

func (c *countingRandom) IntN(n int) int {
	c.calls++
	return 0
}

func TestPlaceNextRefillsShortQueue(t *testing.T) {
	rng := &countingRandom{}
	g := NewGame(WithRandom(rng))
	g.Start()

	g.bag.queue = g.bag.queue[:3]
	calls := rng.calls

	g.PlaceNext()

	assert.GreaterOrEqual(t, g.bag.Len(), 7)
	assert.Equal(t, 3+bagSize-1, g.bag.Len())
	assert.Equal(t, bagSize-1, rng.calls-calls, "exactly one refill")
}

func TestGridRowIndexStaysPermutation(t *testing.T) {
	g := NewGrid(4, 8)
	for _, y := range []int{7, 3, 3, 0, 5, 7, 1} {
		g.RemoveRow(y)
	}

	seen := make(map[int]bool)
	for _, slot := range g.rows {
		assert.False(t, seen[slot], "slot %d mapped twice", slot)
		seen[slot] = true
	}
	assert.Len(t, seen, 8)
}
