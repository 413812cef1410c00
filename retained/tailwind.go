package retained

import (
	"math"

	"github.com/agiangrant/flexbind"
	"github.com/agiangrant/flexbind/layout"
	"github.com/agiangrant/flexbind/tw"
)

// Bind registers a configuration callback with e for root and every widget
// below it. Each callback resets the widget's style to layout.DefaultStyle
// and applies its utility classes at the width viewport reports, so class
// and viewport changes take effect on the next render pass.
//
// Widgets added after Bind need another call. A nil viewport resolves
// base classes only.
func Bind(e *flexbind.Engine, root *Widget, viewport func() float64) {
	BindWith(e, root, tw.NewResolver(tw.DefaultBreakpoints()), viewport)
}

// BindWith is Bind with a custom class resolver.
func BindWith(e *flexbind.Engine, root *Widget, r *tw.Resolver, viewport func() float64) {
	if viewport == nil {
		viewport = func() float64 { return math.NaN() }
	}

	configure := func(w flexbind.Widget, style *layout.Style) {
		classes := ""
		if rw, ok := w.(*Widget); ok {
			classes = rw.Classes()
		}
		*style = r.Style(classes, viewport())
	}

	var bind func(w *Widget)
	bind = func(w *Widget) {
		e.Configure(w, configure)
		for _, c := range w.Children() {
			if rw, ok := c.(*Widget); ok {
				bind(rw)
			}
		}
	}
	bind(root)
}
