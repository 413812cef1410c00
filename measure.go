package flexbind

import (
	"math"

	"github.com/agiangrant/flexbind/layout"
)

// measureFunc returns the callback installed on a widget's node. It closes
// over the engine and the ID only; the widget is found through the
// association bound for the current pass. Outside a pass, or once the
// widget is released, it reports (0, 0) without touching anything.
func (e *Engine) measureFunc(id WidgetID) layout.MeasureFunc {
	return func(availableWidth, availableHeight float64) Size {
		a := e.lookup(id)
		if a == nil || a.widget == nil {
			return Size{}
		}
		return e.measure(a.widget, &a.node.Style, availableWidth, availableHeight)
	}
}

// Measure runs the measurement algorithm for w against its current style.
// Either available axis may be layout.Undefined.
func (e *Engine) Measure(w Widget, availableWidth, availableHeight float64) Size {
	var style *layout.Style
	if a := e.lookup(w.ID()); a != nil {
		style = &a.node.Style
	}
	return e.measure(w, style, availableWidth, availableHeight)
}

func (e *Engine) measure(w Widget, style *layout.Style, availableWidth, availableHeight float64) Size {
	e.metrics.measured()
	eps := e.config.Epsilon

	// Hidden widgets contribute no size
	if w.Hidden() || math.Abs(w.Opacity()) < eps {
		return Size{}
	}

	// Stale geometry must not feed back into measurement
	w.SetFrame(Rect{})

	var measured Size
	if !w.ContainerOnly() {
		measured = w.SizeThatFits(Size{
			Width:  constraintValue(availableWidth),
			Height: constraintValue(availableHeight),
		})
		if measured.IsZero() {
			measured = w.IntrinsicContentSize()
		}
	}

	minW, maxW := layout.Undefined, layout.Undefined
	minH, maxH := layout.Undefined, layout.Undefined
	if style != nil {
		minW, maxW = pointOrUndefined(style.MinWidth), pointOrUndefined(style.MaxWidth)
		minH, maxH = pointOrUndefined(style.MinHeight), pointOrUndefined(style.MaxHeight)
	}

	return Size{
		Width:  clampMeasured(measured.Width, availableWidth, minW, maxW, eps),
		Height: clampMeasured(measured.Height, availableHeight, minH, maxH, eps),
	}
}

// clampMeasured resolves one axis of a measurement.
//
// A measured value above eps is clamped to [max(0, lo), min(avail, hi)],
// with undefined bounds treated as 0 and +Inf. Otherwise the axis keeps
// avail. An axis that is still undefined falls back to hi, then lo.
func clampMeasured(measured, avail, lo, hi, eps float64) float64 {
	v := avail
	if measured > eps {
		lower := 0.0
		if !layout.IsUndefined(lo) {
			lower = max(0, lo)
		}
		upper := math.Inf(1)
		if !layout.IsUndefined(avail) {
			upper = avail
		}
		if !layout.IsUndefined(hi) {
			upper = min(upper, hi)
		}

		// If lower > upper, lower wins
		v = max(lower, min(measured, upper))
		if math.IsInf(v, 0) {
			v = layout.Undefined
		}
	}

	if layout.IsUndefined(v) {
		switch {
		case !layout.IsUndefined(hi):
			v = hi
		case !layout.IsUndefined(lo):
			v = lo
		}
	}
	return v
}

// constraintValue converts an undefined constraint to +Inf for SizeThatFits.
func constraintValue(v float64) float64 {
	if layout.IsUndefined(v) {
		return math.Inf(1)
	}
	return v
}

// pointOrUndefined returns a finite point value, or Undefined for auto and
// percentages.
func pointOrUndefined(v layout.Value) float64 {
	if p, ok := v.PointValue(); ok {
		return p
	}
	return layout.Undefined
}
