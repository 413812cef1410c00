// Package retained provides a retained-mode widget tree that implements
// flexbind.Widget.
//
// Widgets are thread-safe for concurrent property updates. Layout styling
// comes from utility classes (see package tw), which Bind turns into
// configuration callbacks on an engine.
package retained

import (
	"runtime"
	"slices"
	"sync"

	"github.com/agiangrant/flexbind"
)

// WidgetKind identifies the type of widget.
type WidgetKind string

const (
	KindContainer WidgetKind = "container" // Sized purely by its children
	KindView      WidgetKind = "view"      // Plain box with an optional preferred size
	KindText      WidgetKind = "text"
	KindButton    WidgetKind = "button"
	KindImage     WidgetKind = "image"
)

// ParseKind converts a kind name into a WidgetKind.
func ParseKind(s string) (WidgetKind, bool) {
	switch k := WidgetKind(s); k {
	case KindContainer, KindView, KindText, KindButton, KindImage:
		return k, true
	}
	return "", false
}

// Widget is a node of the retained tree. All accessors lock, so a widget
// may be updated from any goroutine while the engine reads it.
type Widget struct {
	mu sync.RWMutex

	id       flexbind.WidgetID
	kind     WidgetKind
	name     string
	classes  string
	parent   *Widget
	children []flexbind.Widget

	// Geometry written by the engine
	frame flexbind.Rect

	// Visual properties
	opacity float64
	visible bool

	// Content used for measurement
	text       string
	fontSize   float64
	lineHeight float64    // Multiplier of fontSize; 0 = default
	padding    [4]float64 // Content inset: top, right, bottom, left
	natural    flexbind.Size

	// Lifecycle
	destroyed  bool
	discard    *discardHooks
	preRender  []func(*Widget)
	postRender []func(*Widget)
}

// NewWidget returns a detached widget of the given kind. Discard hooks run
// on Destroy or, failing that, once the widget is garbage collected.
func NewWidget(kind WidgetKind) *Widget {
	id := flexbind.NewWidgetID()
	w := &Widget{
		id:       id,
		kind:     kind,
		opacity:  1.0,
		visible:  true,
		fontSize: 14,
		discard:  &discardHooks{id: id},
	}
	runtime.AddCleanup(w, (*discardHooks).fire, w.discard)
	return w
}

// discardHooks lives outside the Widget so the GC cleanup can run the
// hooks without referencing the collected widget.
type discardHooks struct {
	mu    sync.Mutex
	id    flexbind.WidgetID
	fired bool
	fns   []func(flexbind.WidgetID)
}

// add queues fn. It reports false once the hooks have fired.
func (h *discardHooks) add(fn func(flexbind.WidgetID)) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.fired {
		return false
	}
	h.fns = append(h.fns, fn)
	return true
}

// fire runs the queued hooks at most once.
func (h *discardHooks) fire() {
	h.mu.Lock()
	if h.fired {
		h.mu.Unlock()
		return
	}
	h.fired = true
	fns := h.fns
	h.fns = nil
	h.mu.Unlock()

	for _, fn := range fns {
		fn(h.id)
	}
}

// ID is unique for the life of the process.
func (w *Widget) ID() flexbind.WidgetID {
	return w.id
}

func (w *Widget) Kind() WidgetKind {
	return w.kind
}

// Name returns the widget's name, used to find it in a scene.
func (w *Widget) Name() string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.name
}

// SetName sets the widget's name.
func (w *Widget) SetName(name string) *Widget {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.name = name
	return w
}

// Classes returns the widget's utility classes.
func (w *Widget) Classes() string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.classes
}

// SetClasses sets the utility classes applied by Bind.
func (w *Widget) SetClasses(classes string) *Widget {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.classes = classes
	return w
}

// Tree

// Parent is nil for a detached or root widget.
func (w *Widget) Parent() *Widget {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.parent
}

// Children returns a snapshot; mutating it does not affect w.
func (w *Widget) Children() []flexbind.Widget {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]flexbind.Widget, len(w.children))
	copy(result, w.children)
	return result
}

// AddChild appends child and makes w its parent.
func (w *Widget) AddChild(child flexbind.Widget) {
	if rw, ok := child.(*Widget); ok {
		rw.mu.Lock()
		rw.parent = w
		rw.mu.Unlock()
	}

	w.mu.Lock()
	w.children = append(w.children, child)
	w.mu.Unlock()
}

// Add appends children and returns w for chaining.
func (w *Widget) Add(children ...*Widget) *Widget {
	for _, child := range children {
		w.AddChild(child)
	}
	return w
}

// RemoveChild detaches child if it is a direct child of w.
func (w *Widget) RemoveChild(child flexbind.Widget) bool {
	w.mu.Lock()
	removed := false
	for i, c := range w.children {
		if c == child {
			w.children = append(w.children[:i], w.children[i+1:]...)
			removed = true
			break
		}
	}
	w.mu.Unlock()

	if rw, ok := child.(*Widget); ok && removed {
		rw.mu.Lock()
		rw.parent = nil
		rw.mu.Unlock()
	}
	return removed
}

func (w *Widget) RemoveFromParent() {
	w.mu.RLock()
	parent := w.parent
	w.mu.RUnlock()

	if parent != nil {
		parent.RemoveChild(w)
	}
}

// Find returns the first widget in the subtree (w included) with the given
// name, or nil.
func (w *Widget) Find(name string) *Widget {
	if w.Name() == name {
		return w
	}
	for _, c := range w.Children() {
		if rw, ok := c.(*Widget); ok {
			if found := rw.Find(name); found != nil {
				return found
			}
		}
	}
	return nil
}

// Geometry

// Frame returns the frame last written by the engine, relative to the parent.
func (w *Widget) Frame() flexbind.Rect {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.frame
}

// SetFrame is called by the engine after layout.
func (w *Widget) SetFrame(r flexbind.Rect) {
	w.mu.Lock()
	w.frame = r
	w.mu.Unlock()
}

// Hidden reports whether the widget is invisible.
func (w *Widget) Hidden() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return !w.visible
}

// SetVisible shows or hides the widget.
func (w *Widget) SetVisible(visible bool) *Widget {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.visible = visible
	return w
}

// Opacity returns the widget's opacity in [0, 1].
func (w *Widget) Opacity() float64 {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.opacity
}

// SetOpacity sets the opacity, clamped to [0, 1].
func (w *Widget) SetOpacity(opacity float64) *Widget {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.opacity = min(max(opacity, 0), 1)
	return w
}

// ContainerOnly reports whether the widget is sized purely by its children.
func (w *Widget) ContainerOnly() bool {
	return w.kind == KindContainer
}

// Content

// Text returns the widget's text content.
func (w *Widget) Text() string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.text
}

// SetText sets the text content for text and button widgets.
func (w *Widget) SetText(text string) *Widget {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.text = text
	return w
}

// SetFontSize is in points.
func (w *Widget) SetFontSize(size float64) *Widget {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.fontSize = size
	return w
}

// SetLineHeight sets the line height as a multiple of the font size;
// 0 restores DefaultLineHeight.
func (w *Widget) SetLineHeight(multiplier float64) *Widget {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.lineHeight = multiplier
	return w
}

// SetPadding sets the content inset on all sides.
func (w *Widget) SetPadding(padding float64) *Widget {
	return w.SetPaddingAll(padding, padding, padding, padding)
}

// SetPaddingAll sets the content inset for each side.
func (w *Widget) SetPaddingAll(top, right, bottom, left float64) *Widget {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.padding = [4]float64{top, right, bottom, left}
	return w
}

// SetNaturalSize sets the natural size of an image, or the preferred size
// of a view.
func (w *Widget) SetNaturalSize(width, height float64) *Widget {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.natural = flexbind.Size{Width: width, Height: height}
	return w
}

// Lifecycle

// OnDiscard registers fn to run when the widget is destroyed or
// collected. On a widget that is already destroyed fn runs immediately.
func (w *Widget) OnDiscard(fn func(flexbind.WidgetID)) {
	if !w.discard.add(fn) {
		fn(w.id)
	}
}

// OnPreRender registers a handler run at the start of every render pass.
func (w *Widget) OnPreRender(fn func(*Widget)) *Widget {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.preRender = append(w.preRender, fn)
	return w
}

// OnPostRender registers a handler run once frames have been applied.
func (w *Widget) OnPostRender(fn func(*Widget)) *Widget {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.postRender = append(w.postRender, fn)
	return w
}

// PreRender runs the pre-render handlers.
func (w *Widget) PreRender() {
	w.mu.RLock()
	handlers := slices.Clone(w.preRender)
	w.mu.RUnlock()
	for _, fn := range handlers {
		fn(w)
	}
}

// PostRender runs the post-render handlers.
func (w *Widget) PostRender() {
	w.mu.RLock()
	handlers := slices.Clone(w.postRender)
	w.mu.RUnlock()
	for _, fn := range handlers {
		fn(w)
	}
}

// Destroyed reports whether Destroy has been called.
func (w *Widget) Destroyed() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.destroyed
}

// Destroy detaches the widget from its parent, destroys its subtree and
// fires the discard hooks. Calling it again does nothing.
func (w *Widget) Destroy() {
	w.mu.Lock()
	if w.destroyed {
		w.mu.Unlock()
		return
	}
	w.destroyed = true
	children := w.children
	w.children = nil
	w.preRender = nil
	w.postRender = nil
	w.mu.Unlock()

	w.RemoveFromParent()
	for _, c := range children {
		if rw, ok := c.(*Widget); ok {
			rw.mu.Lock()
			rw.parent = nil
			rw.mu.Unlock()
			rw.Destroy()
		}
	}
	w.discard.fire()
}
