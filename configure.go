package flexbind

import "github.com/agiangrant/flexbind/layout"

// ConfigureFunc sets up a widget's style. It is run once by Configure and
// again at the start of every render pass, so it should be idempotent.
// The widget is passed in rather than captured, so storing the callback
// does not keep the widget alive.
type ConfigureFunc func(w Widget, style *layout.Style)

// Configure runs fn on w immediately, stores it for re-use on every later
// pass, and appends children to w once. Any previous callback for w is
// discarded. It returns w for chaining.
func (e *Engine) Configure(w Widget, fn ConfigureFunc, children ...Widget) Widget {
	if fn != nil {
		fn(w, e.Style(w))
	}

	e.configMu.Lock()
	if fn == nil {
		delete(e.configs, w.ID())
	} else {
		e.configs[w.ID()] = fn
	}
	e.configMu.Unlock()

	for _, child := range children {
		w.AddChild(child)
	}
	return w
}

// Configured reports whether w has a stored configuration callback.
func (e *Engine) Configured(w Widget) bool {
	return e.configFor(w.ID()) != nil
}

func (e *Engine) configFor(id WidgetID) ConfigureFunc {
	e.configMu.RLock()
	defer e.configMu.RUnlock()
	return e.configs[id]
}

// configureTree re-runs stored callbacks over the full subtree, pre-order.
func (e *Engine) configureTree(root Widget) {
	walk(root, func(w Widget) {
		fn := e.configFor(w.ID())
		if fn == nil {
			return
		}
		fn(w, e.Style(w))
	})
}
