package commands

import (
	"fmt"
	"math"

	"github.com/fogleman/gg"

	"github.com/agiangrant/flexbind/retained"
)

// kindColors are the outline colors used per widget kind.
var kindColors = map[retained.WidgetKind][3]float64{
	retained.KindContainer: {0.55, 0.55, 0.55},
	retained.KindView:      {0.20, 0.45, 0.85},
	retained.KindText:      {0.10, 0.10, 0.10},
	retained.KindButton:    {0.15, 0.60, 0.30},
	retained.KindImage:     {0.80, 0.40, 0.10},
}

// writeSnapshot draws every widget's frame as an outlined box and saves
// the result as a PNG sized to the root frame.
func writeSnapshot(path string, root *retained.Widget) error {
	f := root.Frame()
	width := max(1, int(math.Ceil(f.X+f.Width)))
	height := max(1, int(math.Ceil(f.Y+f.Height)))

	dc := gg.NewContext(width, height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	drawWidget(dc, root, 0, 0)

	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// drawWidget draws w at the parent origin (ox, oy), then its children.
func drawWidget(dc *gg.Context, w *retained.Widget, ox, oy float64) {
	if w.Hidden() {
		return
	}
	f := w.Frame()
	x, y := ox+f.X, oy+f.Y

	c := kindColors[w.Kind()]
	dc.SetRGBA(c[0], c[1], c[2], w.Opacity())
	dc.SetLineWidth(1)
	dc.DrawRectangle(x+0.5, y+0.5, max(0, f.Width-1), max(0, f.Height-1))
	dc.Stroke()

	if text := w.Text(); text != "" {
		dc.DrawStringAnchored(text, x+f.Width/2, y+f.Height/2, 0.5, 0.5)
	}

	for _, child := range w.Children() {
		if rw, ok := child.(*retained.Widget); ok {
			drawWidget(dc, rw, x, y)
		}
	}
}
