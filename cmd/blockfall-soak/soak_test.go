package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedValue int

func (v fixedValue) IntN(n int) int { return int(v) % n }

type fixedRandom struct{}

func (fixedRandom) IntN(n int) int { return n - 1 }

func TestPickCommand(t *testing.T) {
	tests := []struct {
		roll int
		want tetris.Command
	}{
		{0, tetris.CmdNone},
		{39, tetris.CmdNone},
		{40, tetris.CmdMoveLeft},
		{58, tetris.CmdMoveRight},
		{76, tetris.CmdSoftDrop},
		{86, tetris.CmdRotateCW},
		{92, tetris.CmdRotateCCW},
		{98, tetris.CmdHardDrop},
		{99, tetris.CmdHardDrop},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, pickCommand(fixedValue(tt.roll)), "roll %d", tt.roll)
	}
}

func TestTally(t *testing.T) {
	var tally Tally
	tally.HandleEvent(tetris.Event{Kind: tetris.EventScore, Cleared: 0})
	tally.HandleEvent(tetris.Event{Kind: tetris.EventScore, Cleared: 4, Score: tetris.Score{Score: 400, Lines: 4}})
	tally.HandleEvent(tetris.Event{Kind: tetris.EventLevelUp, Score: tetris.Score{Level: 1}})
	tally.HandleEvent(tetris.Event{Kind: tetris.EventTopOut, Score: tetris.Score{Score: 900}})

	assert.Equal(t, 4, tally.Lines)
	assert.Equal(t, [5]int{1, 0, 0, 0, 1}, tally.Clears)
	assert.Equal(t, 1, tally.LevelUps)
	assert.Equal(t, 1, tally.Games)
	assert.Equal(t, 900, tally.BestScore)
}

func TestStatsFinalize(t *testing.T) {
	s := Stats{Samples: []time.Duration{3 * time.Millisecond, time.Millisecond, 2 * time.Millisecond}}
	s.Finalize()

	assert.Equal(t, time.Millisecond, s.Min)
	assert.Equal(t, 3*time.Millisecond, s.Max)
	assert.Equal(t, 2*time.Millisecond, s.Avg)

	var empty Stats
	empty.Finalize()
	assert.Zero(t, empty.Avg)
}

func TestReportGenerate(t *testing.T) {
	tally := &Tally{}
	game := tetris.NewGame(tetris.WithRandom(fixedRandom{}), tetris.WithHandler(tally))
	chaos := &ChaosSystem{Game: game, Random: fixedValue(99), Counts: map[tetris.Command]int{}}

	scheduler := loop.NewScheduler(nil)
	scheduler.Register(chaos)
	scheduler.Register(&GravitySystem{Game: game})

	game.Start()
	for range 3 {
		scheduler.Once(0.016)
	}

	report := &Report{
		Duration:  time.Second,
		FrameStep: 16 * time.Millisecond,
		Seed:      1,
		Rules:     game.Rules(),

		TotalFrames: 3,
		Tally:       *tally,
		Game:        game.Stats(),
		Commands:    chaos.Counts,
		Scheduler:   scheduler.GetStats(),
	}
	report.UpdateTime.Finalize()

	var buf bytes.Buffer
	require.NoError(t, report.Generate(&buf))
	out := buf.String()

	assert.Contains(t, out, "**Arena:** 10x20")
	assert.Contains(t, out, "- ChaosSystem: 3 runs")
	assert.Contains(t, out, "- GravitySystem: 3 runs")
	assert.Contains(t, out, "**Locks:** 3 (3 hard drops)")
	assert.Contains(t, out, "- I: 1 (25.0%)")
	assert.Contains(t, out, "- S: 0 (0.0%)")
	assert.Contains(t, out, "- HardDrop: 3")
	assert.NotContains(t, out, "GC Pause")
}
