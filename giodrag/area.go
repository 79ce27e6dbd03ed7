package giodrag

import (
	"image"

	"gioui.org/f32"
	"gioui.org/gesture"
	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"

	"github.com/justyntemme/dragdrop"
)

type reaction struct {
	fn      dragdrop.Reaction
	removed bool
}

// Area is the Gio realization of dragdrop.Element: one widget region that
// can act as a drag origin, a drop zone, or both. Create Areas through
// Binding.NewArea and lay each one out every frame with Layout.
//
// The drag gesture has a built-in movement threshold before it activates,
// so plain clicks on a draggable Area never begin a gesture.
type Area struct {
	binding   *Binding
	draggable bool
	reactions map[dragdrop.EventKind][]*reaction
	shadow    layout.Widget

	drag    gesture.Drag
	dropTag struct{} // target-side filter tag, distinct from the source tag

	// Drag state for rendering the drag shadow
	pid         pointer.ID
	started     bool
	acceptsDrop bool
	clickPos    f32.Point // position where the gesture started
	dragPos     f32.Point // current drag position relative to start
}

var _ dragdrop.Element = (*Area)(nil)

// SetDraggable marks the area as a valid drag origin. Without it the drag
// gesture is never registered on the area's ops.
func (a *Area) SetDraggable(enabled bool) {
	a.draggable = enabled
}

// SetShadow sets the widget drawn for this area when a source requests
// it as the custom drag image. The origin renders it near the pointer
// during the gesture, so keep it lighter than the area's full content
// (a scaled thumbnail via ImageShadow, a short label).
func (a *Area) SetShadow(w layout.Widget) {
	a.shadow = w
}

// On subscribes fn to one event kind and returns a handle that removes
// the subscription.
func (a *Area) On(kind dragdrop.EventKind, fn dragdrop.Reaction) func() {
	r := &reaction{fn: fn}
	a.reactions[kind] = append(a.reactions[kind], r)
	return func() { r.removed = true }
}

func (a *Area) dispatch(kind dragdrop.EventKind, ev dragdrop.Event) {
	for _, r := range a.reactions[kind] {
		if !r.removed {
			r.fn(ev)
		}
	}
}

// Dragging reports whether a drag gesture is in progress on this area.
func (a *Area) Dragging() bool {
	return a.started
}

// Pos returns the current drag position relative to the gesture start.
func (a *Area) Pos() f32.Point {
	return a.dragPos
}

// Layout renders w and registers the area's hit region, gesture handler
// and event tags for the next frame. While this area originates a live
// gesture whose source requested a drag image, the image is drawn at the
// pointer. Binding.Update must already have run this frame.
func (a *Area) Layout(gtx layout.Context, w layout.Widget) layout.Dimensions {
	dims := a.layoutBase(gtx, w)
	a.layoutCarrierView(gtx)
	return dims
}

// LayoutWithShadow is Layout with a fallback drag shadow: while a
// gesture is in progress and the source requested no drag image, the
// shadow widget is rendered at the drag offset instead.
func (a *Area) LayoutWithShadow(gtx layout.Context, w, shadow layout.Widget) layout.Dimensions {
	dims := a.layoutBase(gtx, w)

	if !a.layoutCarrierView(gtx) && shadow != nil && a.started {
		rec := op.Record(gtx.Ops)
		op.Offset(a.dragPos.Round()).Add(gtx.Ops)
		shadow(gtx)
		op.Defer(gtx.Ops, rec.Stop())
	}

	return dims
}

func (a *Area) layoutBase(gtx layout.Context, w layout.Widget) layout.Dimensions {
	dims := w(gtx)

	defer clip.Rect{Max: dims.Size}.Push(gtx.Ops).Pop()
	if a.draggable {
		a.drag.Add(gtx.Ops)
		event.Op(gtx.Ops, a)
	}
	event.Op(gtx.Ops, &a.dropTag)

	return dims
}

// layoutCarrierView draws the drag image the live gesture's source
// requested, if any. The requested view must be an Area with a shadow
// widget; the offsets place the point of the view that sits under the
// pointer. Deferred so it draws above the rest of the frame.
func (a *Area) layoutCarrierView(gtx layout.Context) bool {
	if a.binding.carrier == nil || a.binding.origin != a {
		return false
	}
	view, x, y := a.binding.carrier.View()
	va, ok := view.(*Area)
	if !ok || va.shadow == nil {
		return false
	}

	rec := op.Record(gtx.Ops)
	op.Offset(a.dragPos.Round().Sub(image.Pt(x, y))).Add(gtx.Ops)
	va.shadow(gtx)
	op.Defer(gtx.Ops, rec.Stop())
	return true
}

// areaEvent is one delivered occurrence. accepted records whether a
// reaction suppressed the default, which gates drop delivery to the area.
type areaEvent struct {
	target   *Area
	carrier  *Carrier
	accepted bool
}

var _ dragdrop.Event = (*areaEvent)(nil)

func (e *areaEvent) Target() dragdrop.Element { return e.target }

func (e *areaEvent) Carrier() dragdrop.Carrier {
	if e.carrier == nil {
		return nil
	}
	return e.carrier
}

func (e *areaEvent) SuppressDefault() { e.accepted = true }
