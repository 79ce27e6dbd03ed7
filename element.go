package dragdrop

// EventKind identifies one of the native drag interaction events the core
// reacts to. A platform binding (see giodrag) is responsible for delivering
// events of these kinds to subscribed reactions.
type EventKind uint8

const (
	KindStart EventKind = iota // drag gesture began on a source element
	KindEnter                  // pointer entered a target element mid-gesture
	KindLeave                  // pointer left a target element
	KindOver                   // pointer hovering a target; fires repeatedly
	KindDrop                   // payload released over a target
	KindEnd                    // gesture finished on the source, drop or not
)

func (k EventKind) String() string {
	switch k {
	case KindStart:
		return "start"
	case KindEnter:
		return "enter"
	case KindLeave:
		return "leave"
	case KindOver:
		return "over"
	case KindDrop:
		return "drop"
	case KindEnd:
		return "end"
	}
	return "unknown"
}

// Reaction handles one occurrence of a subscribed event. Reactions run
// synchronously on the platform's event dispatch; the core never buffers
// or reorders them.
type Reaction func(Event)

// Element is a platform-side handle to one UI element. The core only needs
// two capabilities from it: marking the element as a valid drag origin, and
// subscribing reactions to drag events. On returns a handle that removes
// the subscription when called.
type Element interface {
	SetDraggable(enabled bool)
	On(kind EventKind, fn Reaction) (remove func())
}

// Carrier is the transfer object riding along with a single gesture. It
// holds the in-flight payload and the effect negotiation fields. Types
// reports available payload types in insertion order.
type Carrier interface {
	SetAllowedEffects(token string)
	AllowedEffects() string
	SetDropEffect(effect Effect)
	DropEffect() Effect
	SetData(mime, value string)
	Data(mime string) string
	Types() []string
	SetDragImage(view Element, x, y int)
}

// Event is one delivered occurrence of a drag interaction event.
//
// Carrier returns nil for leave and over events; those carry nothing
// beyond the element they occurred on. SuppressDefault signals to the
// platform that this occurrence is handled and the default rejection
// behavior must not apply; the platform requires it on enter and on every
// over occurrence for a later drop to be deliverable.
type Event interface {
	Target() Element
	Carrier() Carrier
	SuppressDefault()
}
