package tetris

import (
	"time"

	"github.com/rs/zerolog"
)

// State is the controller's lifecycle state.
type State int

const (
	// StateIdle is a game that has not been started.
	StateIdle State = iota
	StateRunning
	// StateTopOut follows a spawn that collided. The arena and session have
	// already been reset; the next operation returns the game to running.
	StateTopOut
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateTopOut:
		return "top-out"
	}
	return "unknown"
}

// Game owns the arena, the bag, the active piece and the session. It is not
// safe for concurrent use; every operation runs to completion on the
// caller's goroutine.
type Game struct {
	rules    Rules
	grid     *Grid
	bag      *Bag
	session  Session
	piece    *Piece
	pos      Position
	state    State
	stats    *Stats
	handlers []Handler
	log      zerolog.Logger
	rng      RandomSource
}

// Option configures a Game.
type Option func(*Game)

func WithRules(r Rules) Option {
	return func(g *Game) {
		g.rules = r
	}
}

// WithRandom sets the source used to shuffle the bag.
func WithRandom(rng RandomSource) Option {
	return func(g *Game) {
		g.rng = rng
	}
}

func WithHandler(h Handler) Option {
	return func(g *Game) {
		g.handlers = append(g.handlers, h)
	}
}

func WithLogger(log zerolog.Logger) Option {
	return func(g *Game) {
		g.log = log
	}
}

// NewGame returns an idle game. It panics if the rules are invalid.
func NewGame(opts ...Option) *Game {
	g := &Game{
		rules: DefaultRules(),
		log:   zerolog.Nop(),
		stats: newStats(),
	}
	for _, opt := range opts {
		opt(g)
	}

	if err := g.rules.Validate(); err != nil {
		panic("tetris: invalid rules: " + err.Error())
	}

	g.grid = NewGrid(g.rules.Columns, g.rules.Rows)
	g.bag = NewBag(g.rng)
	g.session = NewSession(g.rules)
	return g
}

// AddHandler registers h for subsequent events.
func (g *Game) AddHandler(h Handler) {
	g.handlers = append(g.handlers, h)
}

func (g *Game) emit(kind EventKind, cleared int) {
	g.emitScore(kind, g.session.Display(), cleared)
}

func (g *Game) emitScore(kind EventKind, score Score, cleared int) {
	e := Event{Kind: kind, Score: score, Cleared: cleared}
	for _, h := range g.handlers {
		h.HandleEvent(e)
	}
}

// Start begins the first game. It does nothing once the game is running.
func (g *Game) Start() {
	if g.state != StateIdle {
		return
	}
	g.Restart()
}

// Restart discards the arena, the session and the queue and spawns a fresh
// piece.
func (g *Game) Restart() {
	g.grid.Clear()
	g.session = NewSession(g.rules)
	g.bag.Reset()
	g.state = StateRunning
	g.stats.Restarts++

	g.PlaceNext()
	g.log.Info().Msg("game restarted")
	g.emit(EventRestart, 0)
}

// PlaceNext spawns the next queued piece centered on the top row. If the
// spawn collides the game tops out: arena, session and queue are reset and
// the state becomes StateTopOut.
func (g *Game) PlaceNext() {
	if g.state == StateIdle {
		g.state = StateRunning
	}

	t := g.bag.Next()
	g.piece = NewPiece(t)
	g.pos = Position{
		X: g.rules.Columns/2 - g.piece.Width()/2,
		Y: 0,
	}
	g.session.DropCounter = 0
	g.stats.recordSpawn(t)

	if Collides(g.grid, g.piece, g.pos) {
		g.topOut()
	}
}

func (g *Game) topOut() {
	final := g.session.Display()

	g.grid.Clear()
	g.session = NewSession(g.rules)
	g.bag.Reset()
	g.state = StateTopOut
	g.stats.TopOuts++

	g.log.Info().
		Int("score", final.Score).
		Int("lines", final.Lines).
		Int("level", final.Level).
		Msg("top out")
	g.emitScore(EventTopOut, final, 0)
}

// ready reports whether an operation may act on the active piece and moves
// a topped-out game back to running.
func (g *Game) ready() bool {
	switch g.state {
	case StateIdle:
		return false
	case StateTopOut:
		g.state = StateRunning
	}
	return g.piece != nil
}

// SoftDrop moves the piece down one row. If that collides the piece is
// locked where it is, the next piece spawned and full rows swept. The drop
// counter is always reset.
func (g *Game) SoftDrop() {
	if !g.ready() {
		return
	}

	g.pos.Y++
	if Collides(g.grid, g.piece, g.pos) {
		g.pos.Y--
		g.lock()
	}
	g.session.DropCounter = 0
}

// HardDrop moves the piece down until it rests and locks it.
func (g *Game) HardDrop() {
	if !g.ready() {
		return
	}

	for !Collides(g.grid, g.piece, g.pos) {
		g.pos.Y++
	}
	g.pos.Y--
	g.stats.HardDrops++
	g.SoftDrop()
}

func (g *Game) lock() {
	Merge(g.grid, g.piece, g.pos)
	g.stats.Locks++
	g.log.Debug().
		Stringer("piece", g.piece.Type).
		Int("x", g.pos.X).
		Int("y", g.pos.Y).
		Msg("piece locked")

	g.PlaceNext()

	level := g.session.Level
	cleared := Sweep(g.grid, &g.session, g.rules)
	if g.session.Level > level {
		g.log.Info().
			Int("level", g.session.Level).
			Dur("drop_interval", g.session.DropInterval).
			Msg("level up")
		g.emit(EventLevelUp, cleared)
	}
	g.emit(EventScore, cleared)
}

// Move shifts the piece horizontally by offset unless that collides.
func (g *Game) Move(offset int) {
	if !g.ready() {
		return
	}

	g.pos.X += offset
	if Collides(g.grid, g.piece, g.pos) {
		g.pos.X -= offset
	}
}

// Rotate turns the piece clockwise (dir > 0) or counter-clockwise (dir < 0)
// with a sideways kick search. It reports whether the rotation was kept.
func (g *Game) Rotate(dir int) bool {
	if !g.ready() {
		return false
	}
	return AttemptRotate(g.grid, g.piece, &g.pos, dir)
}

// Tick advances the drop counter by elapsed and drops the piece one row once
// the counter exceeds the drop interval.
func (g *Game) Tick(elapsed time.Duration) {
	if !g.ready() {
		return
	}

	g.session.DropCounter += elapsed
	if g.session.DropCounter > g.session.DropInterval {
		g.SoftDrop()
	}
}

func (g *Game) Rules() Rules {
	return g.rules
}

func (g *Game) State() State {
	return g.state
}

// Grid returns the arena. Callers must treat it as read-only.
func (g *Game) Grid() *Grid {
	return g.grid
}

// Piece returns a copy of the active piece, or nil before the game starts.
func (g *Game) Piece() *Piece {
	if g.piece == nil {
		return nil
	}
	return g.piece.Clone()
}

// Position returns the active piece's position.
func (g *Game) Position() Position {
	return g.pos
}

// GhostY returns the row the active piece would lock at on a hard drop.
func (g *Game) GhostY() int {
	if g.piece == nil {
		return g.pos.Y
	}

	probe := g.pos
	for !Collides(g.grid, g.piece, Position{X: probe.X, Y: probe.Y + 1}) {
		probe.Y++
	}
	return probe.Y
}

// Next returns up to n upcoming piece types.
func (g *Game) Next(n int) []PieceType {
	return g.bag.Peek(n)
}

// QueueLen returns the number of queued piece types.
func (g *Game) QueueLen() int {
	return g.bag.Len()
}

func (g *Game) Session() Session {
	return g.session
}

func (g *Game) Score() Score {
	return g.session.Display()
}

func (g *Game) Stats() *Stats {
	return g.stats
}
