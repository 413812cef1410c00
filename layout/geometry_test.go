package layout

import "testing"

func TestRectRound(t *testing.T) {
	tests := map[string]struct {
		r     Rect
		scale float64
		want  Rect
	}{
		"integral unchanged": {r: NewRect(1, 2, 3, 4), scale: 1, want: NewRect(1, 2, 3, 4)},
		"edges snap":         {r: NewRect(33.4, 0, 33.4, 10.6), scale: 1, want: NewRect(33, 0, 34, 11)},
		"half points":        {r: NewRect(0.3, 0.3, 10.1, 10.1), scale: 2, want: NewRect(0.5, 0.5, 10, 10)},
		"zero scale":         {r: NewRect(0.3, 0.3, 1.1, 1.1), scale: 0, want: NewRect(0.3, 0.3, 1.1, 1.1)},
		"negative scale":     {r: NewRect(0.3, 0.3, 1.1, 1.1), scale: -1, want: NewRect(0.3, 0.3, 1.1, 1.1)},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.r.Round(tt.scale); got != tt.want {
				t.Errorf("Round(%v) = %+v, want %+v", tt.scale, got, tt.want)
			}
		})
	}
}

func TestRectAdjacentStayFlush(t *testing.T) {
	a := NewRect(0, 0, 33.4, 10).Round(1)
	b := NewRect(33.4, 0, 33.4, 10).Round(1)
	if a.Right() != b.X {
		t.Errorf("a.Right() = %v, b.X = %v, want flush", a.Right(), b.X)
	}
}

func TestRectAccessors(t *testing.T) {
	r := NewRect(10, 20, 30, 40)
	if r.Right() != 40 {
		t.Errorf("Right() = %v, want 40", r.Right())
	}
	if r.Bottom() != 60 {
		t.Errorf("Bottom() = %v, want 60", r.Bottom())
	}
	if r.Size() != (Size{Width: 30, Height: 40}) {
		t.Errorf("Size() = %v, want 30x40", r.Size())
	}
	if r.IsEmpty() {
		t.Error("IsEmpty() = true for non-empty rect")
	}
	if !NewRect(0, 0, 0, 5).IsEmpty() {
		t.Error("IsEmpty() = false for zero-width rect")
	}
}

func TestEdges(t *testing.T) {
	tests := map[string]struct {
		e          Edges
		horizontal float64
		vertical   float64
	}{
		"all":   {e: EdgeAll(4), horizontal: 8, vertical: 8},
		"sides": {e: Edges{Top: 1, Right: 2, Bottom: 3, Left: 4}, horizontal: 6, vertical: 4},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.e.Horizontal(); got != tt.horizontal {
				t.Errorf("Horizontal() = %v, want %v", got, tt.horizontal)
			}
			if got := tt.e.Vertical(); got != tt.vertical {
				t.Errorf("Vertical() = %v, want %v", got, tt.vertical)
			}
		})
	}
}
