package tetris_test

import (
	"github.com/plus3/blockfall/tetris"
)

// identityRandom never swaps during a shuffle, so every bag comes out in the
// base order I L J O T S Z.
type identityRandom struct{}

func (identityRandom) IntN(n int) int { return n - 1 }

// scriptedRandom replays values modulo n and wraps around.
type scriptedRandom struct {
	values []int
	next   int
}

func (s *scriptedRandom) IntN(n int) int {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v % n
}

func newTestGame(opts ...tetris.Option) *tetris.Game {
	opts = append([]tetris.Option{tetris.WithRandom(identityRandom{})}, opts...)
	return tetris.NewGame(opts...)
}

// fillRow occupies every cell of row y except the listed columns.
func fillRow(g *tetris.Grid, y int, holes ...int) {
	for x := 0; x < g.Columns(); x++ {
		skip := false
		for _, h := range holes {
			if h == x {
				skip = true
			}
		}
		if !skip {
			g.Set(x, y, 1)
		}
	}
}

type eventLog struct {
	events []tetris.Event
}

func (l *eventLog) HandleEvent(e tetris.Event) {
	l.events = append(l.events, e)
}

func (l *eventLog) count(kind tetris.EventKind) int {
	n := 0
	for _, e := range l.events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}
