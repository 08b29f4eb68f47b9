package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/blockfall/loop"
	"github.com/plus3/blockfall/tetris"
)

type Report struct {
	// Configuration
	Duration  time.Duration
	FrameStep time.Duration
	Seed      uint64
	Rules     tetris.Rules

	// Results
	TotalFrames    int64
	TotalTime      time.Duration
	SimulatedTime  time.Duration
	UpdateTime     Stats
	Tally          Tally
	Game           *tetris.Stats
	Commands       map[tetris.Command]int
	Scheduler      *loop.SchedulerStats
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		s.Min = min(s.Min, sample)
		s.Max = max(s.Max, sample)
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

// SpawnRow is one line of the spawn histogram.
type SpawnRow struct {
	Piece   tetris.PieceType
	Count   int
	Percent float64
}

func (r *Report) Spawns() []SpawnRow {
	total := r.Game.TotalSpawned()
	rows := make([]SpawnRow, 0, 7)
	for _, t := range tetris.PieceTypes() {
		row := SpawnRow{Piece: t, Count: r.Game.Spawned(t)}
		if total > 0 {
			row.Percent = 100 * float64(row.Count) / float64(total)
		}
		rows = append(rows, row)
	}
	return rows
}

// CommandRow is one line of the command histogram.
type CommandRow struct {
	Command tetris.Command
	Count   int
}

func (r *Report) CommandCounts() []CommandRow {
	rows := make([]CommandRow, 0, len(r.Commands))
	for _, c := range tetris.Commands() {
		if n := r.Commands[c]; n > 0 {
			rows = append(rows, CommandRow{Command: c, Count: n})
		}
	}
	return rows
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Blockfall Soak Report

## Configuration
- **Run Duration:** {{.Duration}}
- **Frame Step:** {{.FrameStep}}
- **Seed:** {{.Seed}}
- **Arena:** {{.Rules.Columns}}x{{.Rules.Rows}}

## Performance Results
- **Total Frames:** {{.TotalFrames}}
- **Total Test Time:** {{.TotalTime}}
- **Simulated Time:** {{.SimulatedTime}}
- **Update Time (Frame):**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}

## Systems
{{range .Scheduler.Systems}}- {{.Name}}: {{.ExecutionCount}} runs, avg {{.AvgDuration}}, max {{.MaxDuration}}
{{end}}
## Games
- **Top Outs:** {{.Game.TopOuts}}
- **Restarts:** {{.Game.Restarts}}
- **Locks:** {{.Game.Locks}} ({{.Game.HardDrops}} hard drops)
- **Lines Cleared:** {{.Tally.Lines}}
- **Clears:** single {{index .Tally.Clears 1}}, double {{index .Tally.Clears 2}}, triple {{index .Tally.Clears 3}}, tetris {{index .Tally.Clears 4}}
- **Level Ups:** {{.Tally.LevelUps}}
- **Best Score:** {{.Tally.BestScore}} (level {{.Tally.BestLevel}})

## Spawns
{{range .Spawns}}- {{.Piece}}: {{.Count}} ({{printf "%.1f" .Percent}}%)
{{end}}
## Commands
{{range .CommandCounts}}- {{.Command}}: {{.Count}}
{{end}}
## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
{{end}}`

	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return fmt.Errorf("parse report template: %w", err)
	}

	return tmpl.Execute(w, r)
}
