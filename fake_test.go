package dragdrop

// Test doubles for the platform capability contracts. They mimic the
// single-threaded delivery model: fire invokes reactions synchronously in
// subscription order, skipping removed ones.

type fakeReaction struct {
	fn      Reaction
	removed bool
}

type fakeElement struct {
	name      string
	draggable bool
	reactions map[EventKind][]*fakeReaction
}

func newFakeElement(name string) *fakeElement {
	return &fakeElement{
		name:      name,
		reactions: make(map[EventKind][]*fakeReaction),
	}
}

func (e *fakeElement) SetDraggable(enabled bool) {
	e.draggable = enabled
}

func (e *fakeElement) On(kind EventKind, fn Reaction) func() {
	r := &fakeReaction{fn: fn}
	e.reactions[kind] = append(e.reactions[kind], r)
	return func() { r.removed = true }
}

func (e *fakeElement) fire(kind EventKind, ev Event) {
	for _, r := range e.reactions[kind] {
		if !r.removed {
			r.fn(ev)
		}
	}
}

func (e *fakeElement) reactionCount(kind EventKind) int {
	n := 0
	for _, r := range e.reactions[kind] {
		if !r.removed {
			n++
		}
	}
	return n
}

type fakeCarrier struct {
	allowed string
	drop    Effect
	values  map[string]string
	order   []string
	view    Element
	x, y    int
}

func newFakeCarrier() *fakeCarrier {
	return &fakeCarrier{values: make(map[string]string)}
}

func (c *fakeCarrier) SetAllowedEffects(token string) { c.allowed = token }
func (c *fakeCarrier) AllowedEffects() string         { return c.allowed }
func (c *fakeCarrier) SetDropEffect(effect Effect)    { c.drop = effect }
func (c *fakeCarrier) DropEffect() Effect             { return c.drop }

func (c *fakeCarrier) SetData(mime, value string) {
	if _, ok := c.values[mime]; !ok {
		c.order = append(c.order, mime)
	}
	c.values[mime] = value
}

func (c *fakeCarrier) Data(mime string) string { return c.values[mime] }

func (c *fakeCarrier) Types() []string { return c.order }

func (c *fakeCarrier) SetDragImage(view Element, x, y int) {
	c.view, c.x, c.y = view, x, y
}

type fakeEvent struct {
	target     Element
	carrier    Carrier
	suppressed int
}

func (e *fakeEvent) Target() Element  { return e.target }
func (e *fakeEvent) Carrier() Carrier { return e.carrier }
func (e *fakeEvent) SuppressDefault() { e.suppressed++ }

// fire dispatches one event occurrence to el and returns it so tests can
// inspect suppression.
func fire(el *fakeElement, kind EventKind, car Carrier) *fakeEvent {
	ev := &fakeEvent{target: el, carrier: car}
	el.fire(kind, ev)
	return ev
}
