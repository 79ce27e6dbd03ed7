package dragdrop

import "testing"

func TestCoordinator_InitialState(t *testing.T) {
	c := NewCoordinator()
	if c.State() != Idle {
		t.Errorf("expected Idle, got %s", c.State())
	}
	if c.ActiveSource() != nil || c.ActiveElement() != nil {
		t.Error("expected empty coordinator")
	}
}

func TestCoordinator_BeginDrag(t *testing.T) {
	c := NewCoordinator()
	src := &Source{}
	el := newFakeElement("a")

	c.beginDrag(src, el)

	if c.State() != Dragging {
		t.Errorf("expected Dragging, got %s", c.State())
	}
	if c.ActiveSource() != src {
		t.Error("active source not set")
	}
	if c.ActiveElement() != Element(el) {
		t.Error("active element not set")
	}
}

func TestCoordinator_CompleteDrop(t *testing.T) {
	c := NewCoordinator()
	c.beginDrag(&Source{}, newFakeElement("a"))
	c.completeDrop()

	if c.State() != Idle {
		t.Errorf("expected Idle, got %s", c.State())
	}
	// Both fields clear together, never partially
	if c.ActiveSource() != nil || c.ActiveElement() != nil {
		t.Error("expected coordinator fields cleared")
	}
}

func TestCoordinator_CancelDrag(t *testing.T) {
	c := NewCoordinator()
	c.beginDrag(&Source{}, newFakeElement("a"))
	c.cancelDrag()

	if c.State() != Idle {
		t.Errorf("expected Idle, got %s", c.State())
	}
	if c.ActiveSource() != nil || c.ActiveElement() != nil {
		t.Error("expected coordinator fields cleared")
	}
}

func TestCoordinator_BeginDragReplaces(t *testing.T) {
	// Misuse case: a second gesture starting while one is active
	// replaces it wholesale.
	c := NewCoordinator()
	first := &Source{}
	second := &Source{}

	c.beginDrag(first, newFakeElement("a"))
	elB := newFakeElement("b")
	c.beginDrag(second, elB)

	if c.ActiveSource() != second {
		t.Error("expected second source active")
	}
	if c.ActiveElement() != Element(elB) {
		t.Error("expected second element active")
	}
}

func TestCoordinator_Isolation(t *testing.T) {
	// Independent coordinators never share gesture state.
	c1 := NewCoordinator()
	c2 := NewCoordinator()

	c1.beginDrag(&Source{}, newFakeElement("a"))

	if c2.State() != Idle {
		t.Error("expected second coordinator untouched")
	}
}
