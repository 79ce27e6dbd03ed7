package giodrag

import (
	"strings"

	"github.com/justyntemme/dragdrop"
)

// Carrier is the in-memory transfer carrier for one gesture. The Binding
// creates one at drag start and discards it when the gesture ends; the
// core writes the source's payload and effects into it and reads them
// back on drop.
type Carrier struct {
	allowed    string
	drop       dragdrop.Effect
	values     map[string]string
	order      []string
	view       dragdrop.Element
	offX, offY int
}

var _ dragdrop.Carrier = (*Carrier)(nil)

func newCarrier() *Carrier {
	return &Carrier{values: make(map[string]string)}
}

func (c *Carrier) SetAllowedEffects(token string) { c.allowed = token }

func (c *Carrier) AllowedEffects() string { return c.allowed }

func (c *Carrier) SetDropEffect(effect dragdrop.Effect) { c.drop = effect }

func (c *Carrier) DropEffect() dragdrop.Effect { return c.drop }

func (c *Carrier) SetData(mime, value string) {
	if _, ok := c.values[mime]; !ok {
		c.order = append(c.order, mime)
	}
	c.values[mime] = value
}

func (c *Carrier) Data(mime string) string { return c.values[mime] }

// Types returns the payload types in insertion order.
func (c *Carrier) Types() []string { return c.order }

func (c *Carrier) SetDragImage(view dragdrop.Element, x, y int) {
	c.view, c.offX, c.offY = view, x, y
}

// View returns the requested drag image element and offsets, if any.
func (c *Carrier) View() (view dragdrop.Element, x, y int) {
	return c.view, c.offX, c.offY
}

// wire flattens the payload for Gio's transfer offer. The drop side reads
// the carrier directly, so this only feeds Gio's in-window plumbing:
// tab-separated type/value pairs, one per line.
func (c *Carrier) wire() string {
	var b strings.Builder
	for _, typ := range c.order {
		b.WriteString(typ)
		b.WriteByte('\t')
		b.WriteString(c.values[typ])
		b.WriteByte('\n')
	}
	return b.String()
}
