package giodrag

import (
	"reflect"
	"testing"

	"github.com/justyntemme/dragdrop"
)

func TestCarrier_TypesInsertionOrder(t *testing.T) {
	c := newCarrier()
	c.SetData("text", "a")
	c.SetData("custom", "b")
	c.SetData("text", "updated") // re-set must not duplicate the type

	expected := []string{"text", "custom"}
	if !reflect.DeepEqual(c.Types(), expected) {
		t.Errorf("expected %v, got %v", expected, c.Types())
	}
	if c.Data("text") != "updated" {
		t.Errorf("expected updated value, got %q", c.Data("text"))
	}
}

func TestCarrier_EffectFields(t *testing.T) {
	c := newCarrier()
	c.SetAllowedEffects("copyMove")
	c.SetDropEffect(dragdrop.EffectCopy)

	if c.AllowedEffects() != "copyMove" {
		t.Errorf("expected \"copyMove\", got %q", c.AllowedEffects())
	}
	if c.DropEffect() != dragdrop.EffectCopy {
		t.Errorf("expected \"copy\", got %q", c.DropEffect())
	}
}

func TestCarrier_Wire(t *testing.T) {
	c := newCarrier()
	c.SetData("text", "hello")
	c.SetData("custom", "b")

	expected := "text\thello\ncustom\tb\n"
	if got := c.wire(); got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}

func TestCarrier_DragImage(t *testing.T) {
	b := NewBinding("application/x-test")
	view := b.NewArea()

	c := newCarrier()
	c.SetDragImage(view, 4, 8)

	el, x, y := c.View()
	if el != dragdrop.Element(view) || x != 4 || y != 8 {
		t.Error("drag image view or offsets not stored")
	}
}
