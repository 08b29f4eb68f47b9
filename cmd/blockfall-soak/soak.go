package main

import (
	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
)

// ChaosSystem applies a random command on most frames. Hard drops and
// restarts are rare so games run long enough to clear lines and level up.
type ChaosSystem struct {
	Game   *tetris.Game
	Random tetris.RandomSource
	Counts map[tetris.Command]int
}

// chaosWeights are relative frequencies out of the sum of all weights.
var chaosWeights = []struct {
	cmd    tetris.Command
	weight int
}{
	{tetris.CmdNone, 40},
	{tetris.CmdMoveLeft, 18},
	{tetris.CmdMoveRight, 18},
	{tetris.CmdSoftDrop, 10},
	{tetris.CmdRotateCW, 6},
	{tetris.CmdRotateCCW, 6},
	{tetris.CmdHardDrop, 2},
}

func pickCommand(rng tetris.RandomSource) tetris.Command {
	total := 0
	for _, w := range chaosWeights {
		total += w.weight
	}
	n := rng.IntN(total)
	for _, w := range chaosWeights {
		if n < w.weight {
			return w.cmd
		}
		n -= w.weight
	}
	return tetris.CmdNone
}

func (s *ChaosSystem) Execute(frame *loop.UpdateFrame) {
	cmd := pickCommand(s.Random)
	if cmd == tetris.CmdNone {
		return
	}
	s.Game.Apply(cmd)
	if s.Counts != nil {
		s.Counts[cmd]++
	}
}

type GravitySystem struct {
	Game *tetris.Game
}

func (s *GravitySystem) Execute(frame *loop.UpdateFrame) {
	s.Game.Tick(frame.Elapsed())
}

// Tally follows game events to keep totals that survive top-outs.
type Tally struct {
	Lines     int
	Clears    [5]int
	LevelUps  int
	BestScore int
	BestLevel int
	Games     int
}

func (t *Tally) HandleEvent(e tetris.Event) {
	switch e.Kind {
	case tetris.EventScore:
		t.Lines += e.Cleared
		if e.Cleared < len(t.Clears) {
			t.Clears[e.Cleared]++
		}
		t.BestScore = max(t.BestScore, e.Score.Score)
		t.BestLevel = max(t.BestLevel, e.Score.Level)
	case tetris.EventLevelUp:
		t.LevelUps++
	case tetris.EventTopOut:
		t.Games++
		t.BestScore = max(t.BestScore, e.Score.Score)
	}
}
