package retained

import (
	"testing"

	"github.com/agiangrant/flexbind"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		input  string
		want   WidgetKind
		wantOK bool
	}{
		{"container", KindContainer, true},
		{"text", KindText, true},
		{"image", KindImage, true},
		{"slider", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseKind(tt.input)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseKind(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestNewWidgetDefaults(t *testing.T) {
	w := NewWidget(KindView)

	if w.Hidden() {
		t.Error("new widget should be visible")
	}
	if got := w.Opacity(); got != 1 {
		t.Errorf("Opacity() = %v, want 1", got)
	}
	if w.ContainerOnly() {
		t.Error("view should not be container-only")
	}
	if !NewWidget(KindContainer).ContainerOnly() {
		t.Error("container should be container-only")
	}
	if a, b := NewWidget(KindView), NewWidget(KindView); a.ID() == b.ID() {
		t.Error("widgets share an ID")
	}
}

func TestTreeOperations(t *testing.T) {
	root := NewWidget(KindContainer)
	a := NewWidget(KindView).SetName("a")
	b := NewWidget(KindView).SetName("b")
	root.Add(a, b)

	if got := len(root.Children()); got != 2 {
		t.Fatalf("len(Children()) = %d, want 2", got)
	}
	if a.Parent() != root {
		t.Error("AddChild did not set parent")
	}
	if root.Find("b") != b {
		t.Error("Find(b) did not return b")
	}
	if root.Find("missing") != nil {
		t.Error("Find(missing) should be nil")
	}

	a.RemoveFromParent()
	if a.Parent() != nil {
		t.Error("RemoveFromParent did not clear parent")
	}
	if got := root.Children(); len(got) != 1 || got[0] != b {
		t.Errorf("Children() = %v, want [b]", got)
	}
	if root.RemoveChild(a) {
		t.Error("RemoveChild of a non-child reported true")
	}
}

func TestChildrenReturnsCopy(t *testing.T) {
	root := NewWidget(KindContainer).Add(NewWidget(KindView))
	children := root.Children()
	children[0] = nil

	if root.Children()[0] == nil {
		t.Error("mutating Children() result changed the widget")
	}
}

func TestSetOpacityClamps(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-1, 0},
		{0.5, 0.5},
		{3, 1},
	}
	for _, tt := range tests {
		if got := NewWidget(KindView).SetOpacity(tt.in).Opacity(); got != tt.want {
			t.Errorf("SetOpacity(%v) -> %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDestroy(t *testing.T) {
	root := NewWidget(KindContainer)
	child := NewWidget(KindContainer)
	grandchild := NewWidget(KindText)
	root.Add(child.Add(grandchild))

	var discarded []flexbind.WidgetID
	record := func(id flexbind.WidgetID) { discarded = append(discarded, id) }
	child.OnDiscard(record)
	grandchild.OnDiscard(record)

	child.Destroy()

	if !child.Destroyed() || !grandchild.Destroyed() {
		t.Error("Destroy should destroy the whole subtree")
	}
	if root.Destroyed() {
		t.Error("Destroy should not reach the parent")
	}
	if len(root.Children()) != 0 {
		t.Error("destroyed widget still attached to parent")
	}
	if len(discarded) != 2 {
		t.Fatalf("discard hooks fired %d times, want 2", len(discarded))
	}
	if discarded[0] != grandchild.ID() || discarded[1] != child.ID() {
		t.Errorf("discard order = %v, want grandchild then child", discarded)
	}

	child.Destroy()
	if len(discarded) != 2 {
		t.Error("second Destroy fired hooks again")
	}

	child.OnDiscard(record)
	if len(discarded) != 3 || discarded[2] != child.ID() {
		t.Errorf("hook registered after Destroy: discarded = %v, want it to fire at once", discarded)
	}
	child.Destroy()
	if len(discarded) != 3 {
		t.Error("late hook fired twice")
	}
}

func TestRenderHandlers(t *testing.T) {
	var calls []string
	w := NewWidget(KindView).
		OnPreRender(func(*Widget) { calls = append(calls, "pre") }).
		OnPostRender(func(*Widget) { calls = append(calls, "post") })

	w.PreRender()
	w.PostRender()

	if len(calls) != 2 || calls[0] != "pre" || calls[1] != "post" {
		t.Errorf("calls = %v, want [pre post]", calls)
	}
}
