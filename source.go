package dragdrop

import (
	"fmt"

	"github.com/justyntemme/dragdrop/internal/debug"
)

// DataItem is one typed payload entry carried by a source. Type is the
// key the value is written under in the transfer carrier.
type DataItem struct {
	Type  string
	Value string
}

// Text returns the plain-text shorthand item: a bare string payload is
// carried under the "text" type.
func Text(value string) DataItem {
	return DataItem{Type: "text", Value: value}
}

// SourceConfig configures NewSource. Every field is optional; the zero
// value yields a source with no payload and the "none" effect token.
type SourceConfig struct {
	// Data is written into the carrier on drag start, in order.
	Data []DataItem
	// Effects are the operations a drop may perform; encoded once at
	// construction into the platform token.
	Effects []Effect
	// View, when set, is requested as the custom drag image at the
	// given offsets.
	View        Element
	ViewOffsetX int
	ViewOffsetY int

	OnStart  func(Element)
	OnCancel func(Element)
	OnDrop   func(DropRecord)
}

// Source wraps one or more elements as drag origins. The callback fields
// may be rebound by the host after construction; everything else is fixed.
type Source struct {
	OnStart  func(Element)
	OnCancel func(Element)
	OnDrop   func(DropRecord)

	coord        *Coordinator
	elements     []Element
	effectToken  string
	data         []DataItem
	view         Element
	viewX, viewY int
	removes      []func()
}

// NewSource marks every element as a valid drag origin and attaches the
// drag start and end reactions. Configuration is validated first: an
// error (wrapping ErrInvalidConfig) means nothing was marked and nothing
// was attached.
func NewSource(coord *Coordinator, cfg SourceConfig, elements ...Element) (*Source, error) {
	if coord == nil {
		return nil, fmt.Errorf("source needs a coordinator: %w", ErrInvalidConfig)
	}
	if len(elements) == 0 {
		return nil, fmt.Errorf("source needs at least one element: %w", ErrInvalidConfig)
	}

	token, err := EncodeEffects(cfg.Effects...)
	if err != nil {
		return nil, err
	}

	s := &Source{
		OnStart:     cfg.OnStart,
		OnCancel:    cfg.OnCancel,
		OnDrop:      cfg.OnDrop,
		coord:       coord,
		elements:    elements,
		effectToken: token,
		data:        cfg.Data,
		view:        cfg.View,
		viewX:       cfg.ViewOffsetX,
		viewY:       cfg.ViewOffsetY,
	}

	for _, el := range s.elements {
		el.SetDraggable(true)
		s.removes = append(s.removes,
			el.On(KindStart, s.handleStart),
			el.On(KindEnd, s.handleEnd))
	}

	debug.Log(debug.SOURCE, "source created: %d element(s), effects=%q, %d data item(s)",
		len(s.elements), s.effectToken, len(s.data))
	return s, nil
}

// EffectToken returns the canonical allowed-effects token.
func (s *Source) EffectToken() string {
	return s.effectToken
}

// Detach removes every attached reaction and clears the draggable mark.
// The source keeps no platform state afterward.
func (s *Source) Detach() {
	for _, remove := range s.removes {
		remove()
	}
	s.removes = nil
	for _, el := range s.elements {
		el.SetDraggable(false)
	}
}

// handleStart publishes the source's payload and effects into the
// carrier, registers the gesture with the coordinator, then notifies the
// host.
func (s *Source) handleStart(ev Event) {
	car := ev.Carrier()
	car.SetAllowedEffects(s.effectToken)
	if s.view != nil {
		car.SetDragImage(s.view, s.viewX, s.viewY)
	}
	for _, item := range s.data {
		car.SetData(item.Type, item.Value)
	}

	s.coord.beginDrag(s, ev.Target())

	if s.OnStart != nil {
		s.OnStart(ev.Target())
	}
}

// handleEnd fires for every finished gesture, dropped or not. A drop has
// already reset the coordinator by the time it arrives, so a coordinator
// still dragging means the gesture was abandoned. The active source must
// also be this source: an end event left over from a gesture that was
// superseded (see Coordinator.beginDrag) must not cancel the new one.
func (s *Source) handleEnd(ev Event) {
	if s.coord.State() != Dragging || s.coord.ActiveSource() != s {
		return
	}
	if s.OnCancel != nil {
		s.OnCancel(ev.Target())
	}
	s.coord.cancelDrag()
}
