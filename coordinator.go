package dragdrop

import "github.com/justyntemme/dragdrop/internal/debug"

// State is the coordinator's gesture phase.
type State uint8

const (
	Idle     State = iota // no active gesture
	Dragging              // a gesture is in flight
)

func (s State) String() string {
	if s == Dragging {
		return "dragging"
	}
	return "idle"
}

// Coordinator tracks the single active drag gesture for one drag-and-drop
// subsystem instance. Sources and targets sharing a Coordinator take part
// in the same gestures; independent Coordinators are fully isolated, so
// tests and multi-window hosts each own their own instance.
//
// The active source and element are populated together and cleared
// together; transitions happen only through beginDrag, completeDrop and
// cancelDrag. At most one gesture is active at a time. All mutation runs
// on the platform's single-threaded event dispatch, so no locking.
type Coordinator struct {
	state   State
	source  *Source
	element Element
}

// NewCoordinator returns a Coordinator in the Idle state.
func NewCoordinator() *Coordinator {
	return &Coordinator{}
}

// State reports the current gesture phase.
func (c *Coordinator) State() State {
	return c.state
}

// ActiveSource returns the source of the gesture in flight, or nil when Idle.
func (c *Coordinator) ActiveSource() *Source {
	return c.source
}

// ActiveElement returns the element being dragged, or nil when Idle.
func (c *Coordinator) ActiveElement() Element {
	return c.element
}

// beginDrag transitions Idle -> Dragging. A second beginDrag while a
// gesture is in flight replaces the active gesture without notifying the
// first source; the platform never delivers interleaved gestures, so this
// only happens under misuse.
func (c *Coordinator) beginDrag(src *Source, el Element) {
	if c.state == Dragging {
		debug.Log(debug.GESTURE, "beginDrag while dragging: replacing active gesture")
	}
	c.state = Dragging
	c.source = src
	c.element = el
	debug.Log(debug.GESTURE, "drag started, state=%s", c.state)
}

// completeDrop transitions Dragging -> Idle after a drop delivered its
// payload.
func (c *Coordinator) completeDrop() {
	debug.Log(debug.GESTURE, "drop completed, state=%s -> idle", c.state)
	c.reset()
}

// cancelDrag transitions Dragging -> Idle when the gesture ended without
// a drop.
func (c *Coordinator) cancelDrag() {
	debug.Log(debug.GESTURE, "drag cancelled, state=%s -> idle", c.state)
	c.reset()
}

func (c *Coordinator) reset() {
	c.state = Idle
	c.source = nil
	c.element = nil
}
