package fireworks

// EventType identifies a kind of show event.
type EventType uint8

const (
	EventLaunch        EventType = iota // a new shell left the bottom edge
	EventDetonate                       // a shell exploded into particles
	EventRetire                         // a spent firework was removed
	EventShapeCaptured                  // the sketch was captured; shape mode on
	EventShapeCleared                   // shape mode off (reset, or empty capture)
)

func (t EventType) String() string {
	switch t {
	case EventLaunch:
		return "launch"
	case EventDetonate:
		return "detonate"
	case EventRetire:
		return "retire"
	case EventShapeCaptured:
		return "shape-captured"
	case EventShapeCleared:
		return "shape-cleared"
	default:
		return "unknown"
	}
}

// ShowEvent carries data about something that happened during a step.
type ShowEvent struct {
	Type       EventType
	FireworkID uint64
	X, Y       float64
	Color      Color
	// Particles is the population size for EventDetonate and the emission
	// point count for EventShapeCaptured.
	Particles int
	// Shaped is true when a detonation used the captured sketch.
	Shaped bool
	// Step is the show step number the event was emitted on.
	Step uint64
}

// EventSink receives show events synchronously on the stepping goroutine.
type EventSink interface {
	EmitEvent(event ShowEvent)
}

// EventSinkFunc adapts a function to EventSink.
type EventSinkFunc func(ShowEvent)

// EmitEvent implements EventSink.
func (f EventSinkFunc) EmitEvent(e ShowEvent) { f(e) }

// MultiSink fans events out to every non-nil sink in order.
type MultiSink []EventSink

// EmitEvent implements EventSink.
func (m MultiSink) EmitEvent(e ShowEvent) {
	for _, s := range m {
		if s != nil {
			s.EmitEvent(e)
		}
	}
}
