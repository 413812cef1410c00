package flexbind

import (
	"math"
	"testing"

	"github.com/agiangrant/flexbind/layout"
)

func sameFloat(a, b float64) bool {
	if layout.IsUndefined(a) || layout.IsUndefined(b) {
		return layout.IsUndefined(a) && layout.IsUndefined(b)
	}
	return a == b
}

func TestMeasureHidden(t *testing.T) {
	u := layout.Undefined
	constraints := []Size{{Width: 100, Height: 100}, {Width: u, Height: u}, {Width: 0, Height: 5}}

	tests := []struct {
		name    string
		hidden  bool
		opacity float64
	}{
		{name: "hidden", hidden: true, opacity: 1},
		{name: "transparent", opacity: 0},
		{name: "below epsilon", opacity: 0.00005},
		{name: "negative below epsilon", opacity: -0.00005},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(t)
			w := newLeaf(40, 20)
			w.hidden = tt.hidden
			w.opacity = tt.opacity
			w.frame = Rect{X: 1, Y: 2, Width: 3, Height: 4}
			e.Style(w).MinWidth = layout.Points(10)

			for _, c := range constraints {
				if got := e.Measure(w, c.Width, c.Height); got != (Size{}) {
					t.Errorf("Measure(%v) = %v, want (0,0)", c, got)
				}
			}
			if w.fitsCalls != 0 {
				t.Errorf("SizeThatFits called %d times, want 0", w.fitsCalls)
			}
			if w.frame == (Rect{}) {
				t.Error("hidden measurement reset the frame")
			}
		})
	}
}

func TestMeasureResetsFrame(t *testing.T) {
	e := newTestEngine(t)
	w := newLeaf(40, 20)
	w.frame = Rect{X: 5, Y: 5, Width: 50, Height: 50}

	e.Measure(w, 100, 100)
	if w.frame != (Rect{}) {
		t.Errorf("frame = %v, want empty", w.frame)
	}
}

func TestMeasurePassesInfForUndefined(t *testing.T) {
	e := newTestEngine(t)
	w := newLeaf(40, 20)

	got := e.Measure(w, layout.Undefined, 80)
	if !math.IsInf(w.lastConstraint.Width, 1) {
		t.Errorf("SizeThatFits width constraint = %v, want +Inf", w.lastConstraint.Width)
	}
	if w.lastConstraint.Height != 80 {
		t.Errorf("SizeThatFits height constraint = %v, want 80", w.lastConstraint.Height)
	}
	if got != (Size{Width: 40, Height: 20}) {
		t.Errorf("Measure() = %v, want 40x20", got)
	}
}

func TestMeasureIntrinsicFallback(t *testing.T) {
	e := newTestEngine(t)
	w := newFake()
	w.intrinsic = Size{Width: 30, Height: 12}

	if got := e.Measure(w, 100, 100); got != (Size{Width: 30, Height: 12}) {
		t.Errorf("Measure() = %v, want 30x12", got)
	}
}

func TestMeasureContainerOnly(t *testing.T) {
	e := newTestEngine(t)
	w := newContainer()
	w.fits = Size{Width: 40, Height: 40}
	w.intrinsic = Size{Width: 40, Height: 40}

	got := e.Measure(w, 120, layout.Undefined)
	if w.fitsCalls != 0 {
		t.Errorf("SizeThatFits called %d times for a container", w.fitsCalls)
	}
	// No native size: the width keeps the available value, height stays undefined
	if got.Width != 120 || !layout.IsUndefined(got.Height) {
		t.Errorf("Measure() = %v, want (120, undefined)", got)
	}
}

func TestMeasureClamp(t *testing.T) {
	u := layout.Undefined

	tests := []struct {
		name     string
		measured float64
		avail    float64
		min, max layout.Value
		want     float64
	}{
		{name: "within bounds", measured: 50, avail: 200, min: layout.Points(10), max: layout.Points(100), want: 50},
		{name: "below min", measured: 5, avail: 200, min: layout.Points(10), max: layout.Points(100), want: 10},
		{name: "above max", measured: 150, avail: 200, min: layout.Points(10), max: layout.Points(100), want: 100},
		{name: "above available", measured: 150, avail: 120, min: layout.Points(10), max: layout.Points(200), want: 120},
		{name: "available below max", measured: 90, avail: 60, min: layout.Auto(), max: layout.Points(100), want: 60},
		{name: "unconstrained", measured: 75, avail: u, min: layout.Auto(), max: layout.Auto(), want: 75},
		{name: "negative min", measured: 75, avail: u, min: layout.Points(-10), max: layout.Auto(), want: 75},
		{name: "min beats max", measured: 50, avail: 200, min: layout.Points(80), max: layout.Points(60), want: 80},
		{name: "percent ignored", measured: 150, avail: u, min: layout.Auto(), max: layout.Percent(50), want: 150},
		{name: "zero keeps available", measured: 0, avail: 70, min: layout.Points(10), max: layout.Points(100), want: 70},
		{name: "below epsilon keeps available", measured: 0.00001, avail: 70, min: layout.Auto(), max: layout.Auto(), want: 70},
		{name: "undefined falls back to max", measured: 0, avail: u, min: layout.Points(10), max: layout.Points(100), want: 100},
		{name: "undefined falls back to min", measured: 0, avail: u, min: layout.Points(10), max: layout.Auto(), want: 10},
		{name: "undefined stays undefined", measured: 0, avail: u, min: layout.Auto(), max: layout.Auto(), want: u},
		{name: "infinite collapses", measured: math.Inf(1), avail: u, min: layout.Auto(), max: layout.Auto(), want: u},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(t)
			w := newFake()
			w.fits = Size{Width: tt.measured, Height: 1}
			w.intrinsic = Size{Width: tt.measured, Height: 1}
			style := e.Style(w)
			style.MinWidth = tt.min
			style.MaxWidth = tt.max

			got := e.Measure(w, tt.avail, layout.Undefined).Width
			if !sameFloat(got, tt.want) {
				t.Errorf("width = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMeasureAxesIndependent(t *testing.T) {
	e := newTestEngine(t)
	w := newLeaf(0, 30)
	e.Style(w).MaxHeight = layout.Points(20)

	got := e.Measure(w, 90, 100)
	if got.Width != 90 {
		t.Errorf("width = %v, want 90 (available)", got.Width)
	}
	if got.Height != 20 {
		t.Errorf("height = %v, want 20 (clamped)", got.Height)
	}
}

func TestMeasureFuncOutsidePass(t *testing.T) {
	e := newTestEngine(t)
	w := newLeaf(40, 20)
	fn := e.Node(w).MeasureFunc()

	if got := fn(100, 100); got != (Size{}) {
		t.Errorf("measure outside a pass = %v, want (0,0)", got)
	}

	e.Release(w)
	if got := fn(100, 100); got != (Size{}) {
		t.Errorf("measure after release = %v, want (0,0)", got)
	}
	if w.fitsCalls != 0 {
		t.Errorf("SizeThatFits called %d times, want 0", w.fitsCalls)
	}
}
