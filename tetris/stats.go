package tetris

import "github.com/kamstrup/intmap"

// Stats accumulates counters over the lifetime of a Game. Unlike Session it
// survives top-outs and restarts.
type Stats struct {
	spawned   *intmap.Map[PieceType, int]
	Locks     int
	HardDrops int
	TopOuts   int
	Restarts  int
}

func newStats() *Stats {
	return &Stats{spawned: intmap.New[PieceType, int](bagSize)}
}

func (s *Stats) recordSpawn(t PieceType) {
	n, _ := s.spawned.Get(t)
	s.spawned.Put(t, n+1)
}

// Spawned returns how many pieces of type t have been spawned.
func (s *Stats) Spawned(t PieceType) int {
	n, _ := s.spawned.Get(t)
	return n
}

// TotalSpawned returns the number of spawned pieces of every type.
func (s *Stats) TotalSpawned() int {
	total := 0
	for _, t := range PieceTypes() {
		total += s.Spawned(t)
	}
	return total
}
