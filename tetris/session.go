package tetris

import (
	"errors"
	"time"
)

// Rules holds the arena dimensions and the progression constants.
type Rules struct {
	Columns             int
	Rows                int
	InitialDropInterval time.Duration
	DropIntervalStep    time.Duration
	MinDropInterval     time.Duration
	LinesPerLevel       int
	LineScore           int
}

// DefaultRules returns the classic 10x20 arena with a one second initial
// drop interval shrinking by 100ms every ten lines down to 150ms.
func DefaultRules() Rules {
	return Rules{
		Columns:             10,
		Rows:                20,
		InitialDropInterval: time.Second,
		DropIntervalStep:    100 * time.Millisecond,
		MinDropInterval:     150 * time.Millisecond,
		LinesPerLevel:       10,
		LineScore:           100,
	}
}

func (r Rules) Validate() error {
	var errs []error
	if r.Columns <= 0 || r.Rows <= 0 {
		errs = append(errs, errors.New("arena dimensions must be positive"))
	}
	if r.InitialDropInterval <= 0 || r.MinDropInterval <= 0 {
		errs = append(errs, errors.New("drop intervals must be positive"))
	}
	if r.DropIntervalStep < 0 {
		errs = append(errs, errors.New("drop interval step must not be negative"))
	}
	if r.LinesPerLevel <= 0 {
		errs = append(errs, errors.New("lines per level must be positive"))
	}
	if r.LineScore < 0 {
		errs = append(errs, errors.New("line score must not be negative"))
	}
	return errors.Join(errs...)
}

// Session is the per-game progression state. It is reset wholesale on
// top-out and restart.
type Session struct {
	Score        int
	Lines        int
	Level        int
	DropInterval time.Duration
	DropCounter  time.Duration
}

// NewSession returns the initial session for r.
func NewSession(r Rules) Session {
	return Session{DropInterval: r.InitialDropInterval}
}

// Score is the display-facing part of a session.
type Score struct {
	Score int `json:"score"`
	Lines int `json:"lines"`
	Level int `json:"level"`
}

func (s Session) Display() Score {
	return Score{Score: s.Score, Lines: s.Lines, Level: s.Level}
}

// Sweep clears every full row of g from the bottom up and scores each one at
// the level current when it is removed. After a removal the same row index is
// examined again, since the rows above have moved into it. It returns the
// number of rows cleared.
func Sweep(g *Grid, s *Session, r Rules) int {
	cleared := 0
	for y := g.Rows() - 1; y >= 0; {
		if !g.RowFull(y) {
			y--
			continue
		}

		g.RemoveRow(y)
		cleared++

		s.Lines++
		s.Score += (s.Level + 1) * r.LineScore
		if s.Lines%r.LinesPerLevel == 0 {
			s.Level++
			s.DropInterval = max(r.MinDropInterval, s.DropInterval-r.DropIntervalStep)
		}
	}
	return cleared
}
