package tetris

// EventKind classifies a game event.
type EventKind int

const (
	// EventScore follows every lock, whether or not rows were cleared.
	EventScore EventKind = iota
	EventLevelUp
	EventTopOut
	EventRestart
)

func (k EventKind) String() string {
	switch k {
	case EventScore:
		return "score"
	case EventLevelUp:
		return "level-up"
	case EventTopOut:
		return "top-out"
	case EventRestart:
		return "restart"
	}
	return "unknown"
}

// Event is delivered to handlers after the game state has changed. A top-out
// event carries the score of the game that just ended.
type Event struct {
	Kind    EventKind
	Score   Score
	Cleared int
}

// Handler receives game events. Handlers run synchronously on the game's
// thread and must not call back into the game.
type Handler interface {
	HandleEvent(Event)
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(Event)

func (f HandlerFunc) HandleEvent(e Event) {
	f(e)
}
