package dragdrop

import (
	"fmt"

	"github.com/justyntemme/dragdrop/internal/debug"
)

// DropRecord describes one completed drop. It is handed first to the
// target's OnDrop, then to the originating source's OnDrop, with
// identical content.
//
// Data preserves the reference shorthand: a bare string when exactly one
// transfer type was available, otherwise a map[string]string keyed by
// type.
type DropRecord struct {
	From Element
	To   Element
	Data any
}

// TargetConfig configures NewTarget. Effect is required; everything else
// is optional.
type TargetConfig struct {
	// Effect is the single drop effect this target reports as its
	// intended operation.
	Effect Effect
	// Accepts is an opaque caller-supplied acceptance criterion. The
	// core stores it untouched; it is consulted only through whatever
	// the host's OnEnter callback does with it.
	Accepts any

	OnEnter func(Element) bool
	OnLeave func(Element)
	OnDrop  func(DropRecord)
}

// Target wraps one or more elements as drop zones. The callback fields
// may be rebound by the host after construction; everything else is fixed.
type Target struct {
	OnEnter func(Element) bool
	OnLeave func(Element)
	OnDrop  func(DropRecord)

	coord    *Coordinator
	elements []Element
	effect   Effect
	accepts  any
	removes  []func()
}

// NewTarget attaches the enter, leave, over and drop reactions to every
// element. Configuration is validated first: an error (wrapping
// ErrInvalidConfig) means nothing was attached.
func NewTarget(coord *Coordinator, cfg TargetConfig, elements ...Element) (*Target, error) {
	if coord == nil {
		return nil, fmt.Errorf("target needs a coordinator: %w", ErrInvalidConfig)
	}
	if len(elements) == 0 {
		return nil, fmt.Errorf("target needs at least one element: %w", ErrInvalidConfig)
	}
	switch cfg.Effect {
	case EffectMove, EffectCopy, EffectLink:
	default:
		return nil, fmt.Errorf("unknown drop effect %q: %w", string(cfg.Effect), ErrInvalidConfig)
	}

	t := &Target{
		OnEnter:  cfg.OnEnter,
		OnLeave:  cfg.OnLeave,
		OnDrop:   cfg.OnDrop,
		coord:    coord,
		elements: elements,
		effect:   cfg.Effect,
		accepts:  cfg.Accepts,
	}

	for _, el := range t.elements {
		t.removes = append(t.removes,
			el.On(KindEnter, t.handleEnter),
			el.On(KindLeave, t.handleLeave),
			el.On(KindOver, t.handleOver),
			el.On(KindDrop, t.handleDrop))
	}

	debug.Log(debug.TARGET, "target created: %d element(s), effect=%q", len(t.elements), t.effect)
	return t, nil
}

// Effect returns the drop effect this target reports.
func (t *Target) Effect() Effect {
	return t.effect
}

// Accepts returns the opaque acceptance criterion supplied at
// construction.
func (t *Target) Accepts() any {
	return t.accepts
}

// Detach removes every attached reaction.
func (t *Target) Detach() {
	for _, remove := range t.removes {
		remove()
	}
	t.removes = nil
}

// handleEnter reports the target's intended effect and signals interest.
// Signaling interest is mandatory for a later drop to be deliverable, so
// a target without an OnEnter callback accepts unconditionally; with one,
// only a true return accepts.
func (t *Target) handleEnter(ev Event) {
	ev.Carrier().SetDropEffect(t.effect)
	if t.OnEnter == nil {
		ev.SuppressDefault()
		return
	}
	if t.OnEnter(ev.Target()) {
		ev.SuppressDefault()
	}
}

func (t *Target) handleLeave(ev Event) {
	if t.OnLeave != nil {
		t.OnLeave(ev.Target())
	}
}

// handleOver suppresses the platform default on every occurrence. The
// event fires repeatedly while hovering and each one must be suppressed,
// not just the first.
func (t *Target) handleOver(ev Event) {
	ev.SuppressDefault()
}

// handleDrop reads the carrier's payload, notifies the target's and then
// the originating source's callbacks with the same record, and resets
// the coordinator.
func (t *Target) handleDrop(ev Event) {
	car := ev.Carrier()
	types := car.Types()

	var payload any
	if len(types) == 1 {
		payload = car.Data(types[0])
	} else {
		m := make(map[string]string, len(types))
		for _, typ := range types {
			m[typ] = car.Data(typ)
		}
		payload = m
	}

	rec := DropRecord{
		From: t.coord.ActiveElement(),
		To:   ev.Target(),
		Data: payload,
	}
	debug.Log(debug.TARGET, "drop: %d type(s)", len(types))

	if t.OnDrop != nil {
		t.OnDrop(rec)
	}
	if src := t.coord.ActiveSource(); src != nil && src.OnDrop != nil {
		src.OnDrop(rec)
	}

	t.coord.completeDrop()
}
