package flexbind

import (
	"sync/atomic"

	"github.com/agiangrant/flexbind/layout"
)

// Size and Rect are re-exports of the layout geometry types for consumer
// convenience.
type (
	Size = layout.Size
	Rect = layout.Rect
)

// Unbounded leaves both axes unconstrained. It is the default render bounds.
var Unbounded = Size{Width: layout.Undefined, Height: layout.Undefined}

// WidgetID is a stable identifier for a widget, used as the key of every
// per-widget store in the engine.
type WidgetID uint64

// Global widget ID counter
var nextWidgetID atomic.Uint64

// NewWidgetID returns a process-unique widget ID. Widget implementations
// call this once at construction.
func NewWidgetID() WidgetID {
	return WidgetID(nextWidgetID.Add(1))
}

// Widget is the capability surface the engine needs from a native widget.
// Ownership of widgets stays with the caller; the engine only keys state by ID.
// Implementations that do not also implement Discarder must call
// Engine.Release when the widget goes away, or its entries are kept.
type Widget interface {
	ID() WidgetID

	Hidden() bool
	Opacity() float64

	// SizeThatFits returns the size the widget wants within the given
	// constraints. Unconstrained axes are passed as +Inf.
	SizeThatFits(constraint Size) Size
	// IntrinsicContentSize is the widget's natural size with no constraints.
	IntrinsicContentSize() Size

	Frame() Rect
	SetFrame(Rect)

	Children() []Widget
	AddChild(Widget)

	// ContainerOnly reports whether the widget has no native content and is
	// sized purely by its laid-out children.
	ContainerOnly() bool
}

// PreRenderer is implemented by widgets that want a callback before the
// configure phase of each pass.
type PreRenderer interface {
	PreRender()
}

// PostRenderer is implemented by widgets that want a callback once frames
// have been applied.
type PostRenderer interface {
	PostRender()
}

// Discarder is implemented by widgets that announce their own destruction.
// The engine registers a hook on first association and drops every entry
// for the ID when it fires. The hook should also fire when the widget is
// garbage collected without being destroyed (see runtime.AddCleanup), and
// immediately when registered on an already destroyed widget.
type Discarder interface {
	OnDiscard(fn func(WidgetID))
}
