package tetris

import "math/rand/v2"

// RandomSource supplies the randomness used to shuffle the bag.
// *rand.Rand from math/rand/v2 satisfies it.
type RandomSource interface {
	IntN(n int) int
}

// NewRandom returns a RandomSource seeded with seed, or with a random seed
// when seed is 0.
func NewRandom(seed uint64) RandomSource {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Bag is the queue of upcoming piece types. Whenever fewer than seven
// entries remain a shuffled permutation of all seven types is appended, so
// every seven consecutive draws from a refill contain each type once.
type Bag struct {
	rng   RandomSource
	queue []PieceType
}

const bagSize = len(bagOrder)

func NewBag(rng RandomSource) *Bag {
	if rng == nil {
		rng = NewRandom(0)
	}
	return &Bag{
		rng:   rng,
		queue: make([]PieceType, 0, 2*bagSize),
	}
}

// Len returns the number of queued piece types.
func (b *Bag) Len() int {
	return len(b.queue)
}

// Refill appends one shuffled permutation of the seven types.
func (b *Bag) Refill() {
	types := bagOrder
	for i := len(types) - 1; i > 0; i-- {
		j := b.rng.IntN(i + 1)
		types[i], types[j] = types[j], types[i]
	}
	b.queue = append(b.queue, types[:]...)
}

// Next tops the queue up if needed and pops its head.
func (b *Bag) Next() PieceType {
	if len(b.queue) < bagSize {
		b.Refill()
	}

	t := b.queue[0]
	n := copy(b.queue, b.queue[1:])
	b.queue = b.queue[:n]
	return t
}

// Peek returns up to n upcoming types without consuming them.
func (b *Bag) Peek(n int) []PieceType {
	n = min(max(n, 0), len(b.queue))
	return append([]PieceType(nil), b.queue[:n]...)
}

// Reset empties the queue and refills it once.
func (b *Bag) Reset() {
	b.queue = b.queue[:0]
	b.Refill()
}
