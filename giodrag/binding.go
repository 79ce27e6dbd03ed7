// Package giodrag binds the dragdrop core to Gio. A Binding owns a set of
// Areas (the dragdrop.Element implementation) and translates Gio's
// gesture, pointer and transfer events into the core's event kinds, in
// protocol order: start, enter/leave/over while hovering, then exactly
// one of drop or end-without-drop.
package giodrag

import (
	"io"
	"strings"

	"gioui.org/f32"
	"gioui.org/gesture"
	"gioui.org/io/pointer"
	"gioui.org/io/transfer"
	"gioui.org/layout"

	"github.com/justyntemme/dragdrop"
	"github.com/justyntemme/dragdrop/internal/debug"
)

// Binding drives drag-and-drop for a set of Areas from Gio's input
// queue. Call Update once per frame, before laying out any Area.
type Binding struct {
	mime    string
	areas   []*Area
	carrier *Carrier // non-nil while a gesture is live
	origin  *Area    // area the live gesture started on
	hover   *Area    // area currently hovered by the gesture
}

// NewBinding returns a Binding transferring data under the given MIME
// type, e.g. "application/x-dragdrop". Areas of different Bindings never
// see each other's gestures.
func NewBinding(mime string) *Binding {
	return &Binding{mime: mime}
}

// NewArea registers and returns a new Area.
func (b *Binding) NewArea() *Area {
	a := &Area{
		binding:   b,
		reactions: make(map[dragdrop.EventKind][]*reaction),
	}
	b.areas = append(b.areas, a)
	return a
}

// Dragging reports whether a gesture is live on this binding.
func (b *Binding) Dragging() bool {
	return b.carrier != nil
}

// Carrier returns the live gesture's carrier, or nil.
func (b *Binding) Carrier() *Carrier {
	return b.carrier
}

// Update polls all pending input events and dispatches the synthesized
// drag events. Targets are polled before sources so a frame carrying
// both a drop and the gesture's release delivers drop first, then end.
func (b *Binding) Update(gtx layout.Context) {
	for _, a := range b.areas {
		b.updateTarget(gtx, a)
	}
	for _, a := range b.areas {
		b.updateSource(gtx, a)
	}
}

func (b *Binding) updateTarget(gtx layout.Context, a *Area) {
	for {
		ev, ok := gtx.Event(transfer.TargetFilter{Target: &a.dropTag, Type: b.mime})
		if !ok {
			break
		}
		switch e := ev.(type) {
		case transfer.InitiateEvent:
			// Sent to every potential target when a transfer begins;
			// hover decides which one matters.
			debug.Log(debug.BIND_EVENT, "transfer initiated")
		case transfer.DataEvent:
			if e.Type != b.mime {
				break
			}
			// Gio requires the offer to be consumed.
			rdr := e.Open()
			io.Copy(io.Discard, rdr)
			rdr.Close()
			if b.carrier == nil || !a.acceptsDrop {
				debug.Log(debug.BIND, "drop ignored: no live gesture or target did not accept")
				break
			}
			b.drop(a)
		}
	}

	// Synthesize enter/leave/over from pointer hover while a gesture is
	// live. Hover outside a gesture is not this binding's business.
	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target: &a.dropTag,
			Kinds:  pointer.Enter | pointer.Leave | pointer.Move,
		})
		if !ok {
			break
		}
		e, ok := ev.(pointer.Event)
		if !ok || b.carrier == nil {
			continue
		}
		switch e.Kind {
		case pointer.Enter:
			b.hover = a
			aev := &areaEvent{target: a, carrier: b.carrier}
			a.dispatch(dragdrop.KindEnter, aev)
			a.acceptsDrop = aev.accepted
			debug.Log(debug.BIND_EVENT, "enter, accepted=%v", aev.accepted)
		case pointer.Leave:
			if b.hover == a {
				b.hover = nil
			}
			a.acceptsDrop = false
			a.dispatch(dragdrop.KindLeave, &areaEvent{target: a})
		case pointer.Move:
			aev := &areaEvent{target: a}
			a.dispatch(dragdrop.KindOver, aev)
			if !aev.accepted {
				// Every hover occurrence must be re-accepted.
				a.acceptsDrop = false
			}
		}
	}
}

func (b *Binding) updateSource(gtx layout.Context, a *Area) {
	if !a.draggable {
		return
	}

	// Answer the platform's data requests from the live carrier.
	for {
		ev, ok := gtx.Event(transfer.SourceFilter{Target: a, Type: b.mime})
		if !ok {
			break
		}
		if e, ok := ev.(transfer.RequestEvent); ok && b.carrier != nil {
			gtx.Execute(transfer.OfferCmd{
				Tag:  a,
				Type: e.Type,
				Data: io.NopCloser(strings.NewReader(b.carrier.wire())),
			})
		}
	}

	for {
		e, ok := a.drag.Update(gtx.Metric, gtx.Source, gesture.Both)
		if !ok {
			break
		}
		switch e.Kind {
		case pointer.Press:
			a.clickPos = e.Position
			a.dragPos = f32.Point{}
			a.pid = e.PointerID
			a.started = false
		case pointer.Drag:
			if e.PointerID != a.pid {
				break
			}
			a.dragPos = e.Position.Sub(a.clickPos)
			if !a.started {
				a.started = true
				b.begin(a)
			}
		case pointer.Release, pointer.Cancel:
			a.started = false
			if b.origin == a {
				b.end()
			}
		}
	}
}

// begin opens a gesture: fresh carrier, start dispatched to the origin.
func (b *Binding) begin(a *Area) {
	if b.carrier != nil {
		debug.Log(debug.BIND, "drag began while a gesture is live; replacing it")
	}
	b.carrier = newCarrier()
	b.origin = a
	b.hover = nil
	a.dispatch(dragdrop.KindStart, &areaEvent{target: a, carrier: b.carrier})
}

// drop delivers the payload to the hovered target, then ends the gesture.
// The platform delivers the source's end event for every gesture, dropped
// or not, so end always follows.
func (b *Binding) drop(a *Area) {
	a.dispatch(dragdrop.KindDrop, &areaEvent{target: a, carrier: b.carrier})
	b.end()
}

// end closes the gesture: end dispatched to the origin, carrier discarded.
func (b *Binding) end() {
	if b.origin != nil {
		b.origin.dispatch(dragdrop.KindEnd, &areaEvent{target: b.origin})
	}
	b.carrier = nil
	b.origin = nil
	b.hover = nil
	for _, a := range b.areas {
		a.acceptsDrop = false
	}
}
