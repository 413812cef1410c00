package flexbind

import (
	"github.com/agiangrant/flexbind/layout"
)

// association is the engine's side-table record for one widget.
type association struct {
	node *layout.Node

	// widget is bound only while a render pass is running, so the store
	// never keeps a widget alive between passes.
	widget Widget

	// Last frame written to the widget by the apply phase.
	applied    Rect
	hasApplied bool
}

// Node returns the layout node for w, creating it on first access.
// Repeated calls return the same node until SetNode replaces it.
func (e *Engine) Node(w Widget) *layout.Node {
	return e.entry(w).node
}

// Style returns the style record of w's node, creating the node if needed.
func (e *Engine) Style(w Widget) *layout.Style {
	return &e.entry(w).node.Style
}

// HasNode reports whether w currently has a layout node.
func (e *Engine) HasNode(w Widget) bool {
	return e.HasID(w.ID())
}

// HasID reports whether the widget with the given ID has a layout node.
func (e *Engine) HasID(id WidgetID) bool {
	_, ok := e.nodes.Load(id)
	return ok
}

// SetNode replaces w's layout node. The engine's measure callback for w is
// installed on n.
func (e *Engine) SetNode(w Widget, n *layout.Node) {
	if n == nil {
		e.Release(w)
		return
	}
	id := w.ID()
	n.SetMeasureFunc(e.measureFunc(id))
	if _, loaded := e.nodes.Swap(id, &association{node: n}); !loaded {
		e.associated(w)
	}
}

// Release drops every entry the engine holds for w.
func (e *Engine) Release(w Widget) {
	e.ReleaseID(w.ID())
}

// ReleaseID drops every entry the engine holds for id. It is safe to call
// more than once and is what Discarder hooks invoke.
func (e *Engine) ReleaseID(id WidgetID) {
	if _, ok := e.nodes.LoadAndDelete(id); ok {
		// The node's measure callback finds no entry from here on.
		e.metrics.setAssociations(e.count.Add(-1))
	}

	e.configMu.Lock()
	delete(e.configs, id)
	e.configMu.Unlock()
}

// Associations returns the number of widgets with a layout node.
func (e *Engine) Associations() int {
	return int(e.count.Load())
}

// entry returns w's association, creating it if absent.
func (e *Engine) entry(w Widget) *association {
	id := w.ID()
	if v, ok := e.nodes.Load(id); ok {
		return v.(*association)
	}

	n := layout.NewNode()
	n.SetMeasureFunc(e.measureFunc(id))
	v, loaded := e.nodes.LoadOrStore(id, &association{node: n})
	if !loaded {
		e.associated(w)
	}
	return v.(*association)
}

// lookup returns the association for id, or nil.
func (e *Engine) lookup(id WidgetID) *association {
	if v, ok := e.nodes.Load(id); ok {
		return v.(*association)
	}
	return nil
}

// associated does the bookkeeping for a newly stored entry.
func (e *Engine) associated(w Widget) {
	e.metrics.setAssociations(e.count.Add(1))
	if d, ok := w.(Discarder); ok {
		// The hook holds the engine and receives the ID; it never
		// captures the widget.
		d.OnDiscard(e.ReleaseID)
	}
}
