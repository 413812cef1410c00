package retained

import (
	"math"
	"testing"

	"github.com/agiangrant/flexbind"
)

var unbounded = flexbind.Size{Width: math.Inf(1), Height: math.Inf(1)}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func sizeApprox(a, b flexbind.Size) bool {
	return approx(a.Width, b.Width) && approx(a.Height, b.Height)
}

func TestSizeThatFits(t *testing.T) {
	tests := []struct {
		name       string
		widget     *Widget
		constraint flexbind.Size
		want       flexbind.Size
	}{
		{
			name:       "single line text",
			widget:     NewWidget(KindText).SetText("hello").SetFontSize(10),
			constraint: unbounded,
			want:       flexbind.Size{Width: 30, Height: 14},
		},
		{
			name:       "text wraps at word boundary",
			widget:     NewWidget(KindText).SetText("hello world").SetFontSize(10),
			constraint: flexbind.Size{Width: 40, Height: math.Inf(1)},
			want:       flexbind.Size{Width: 30, Height: 28},
		},
		{
			name:       "explicit newlines",
			widget:     NewWidget(KindText).SetText("a\nbb").SetFontSize(10),
			constraint: unbounded,
			want:       flexbind.Size{Width: 12, Height: 28},
		},
		{
			name:       "wide runes take two cells",
			widget:     NewWidget(KindText).SetText("日本").SetFontSize(10),
			constraint: unbounded,
			want:       flexbind.Size{Width: 24, Height: 14},
		},
		{
			name:       "long word is truncated",
			widget:     NewWidget(KindText).SetText("abcdefghij").SetFontSize(10),
			constraint: flexbind.Size{Width: 30, Height: math.Inf(1)},
			want:       flexbind.Size{Width: 30, Height: 14},
		},
		{
			name:       "text padding",
			widget:     NewWidget(KindText).SetText("hi").SetFontSize(10).SetPaddingAll(1, 2, 3, 4),
			constraint: unbounded,
			want:       flexbind.Size{Width: 18, Height: 18},
		},
		{
			name:       "custom line height",
			widget:     NewWidget(KindText).SetText("hi").SetFontSize(10).SetLineHeight(2),
			constraint: unbounded,
			want:       flexbind.Size{Width: 12, Height: 20},
		},
		{
			name:       "button default padding",
			widget:     NewWidget(KindButton).SetText("OK").SetFontSize(10),
			constraint: unbounded,
			want:       flexbind.Size{Width: 36, Height: 26},
		},
		{
			name:       "button does not wrap",
			widget:     NewWidget(KindButton).SetText("Save all").SetFontSize(10),
			constraint: flexbind.Size{Width: 40, Height: math.Inf(1)},
			want:       flexbind.Size{Width: 72, Height: 26},
		},
		{
			name:       "image scales down keeping aspect",
			widget:     NewWidget(KindImage).SetNaturalSize(200, 100),
			constraint: flexbind.Size{Width: 100, Height: math.Inf(1)},
			want:       flexbind.Size{Width: 100, Height: 50},
		},
		{
			name:       "image never scales up",
			widget:     NewWidget(KindImage).SetNaturalSize(200, 100),
			constraint: unbounded,
			want:       flexbind.Size{Width: 200, Height: 100},
		},
		{
			name:       "view returns natural size",
			widget:     NewWidget(KindView).SetNaturalSize(50, 20),
			constraint: flexbind.Size{Width: 10, Height: 10},
			want:       flexbind.Size{Width: 50, Height: 20},
		},
		{
			name:       "container has no content",
			widget:     NewWidget(KindContainer).SetNaturalSize(50, 20),
			constraint: unbounded,
			want:       flexbind.Size{},
		},
		{
			name:       "empty text",
			widget:     NewWidget(KindText),
			constraint: unbounded,
			want:       flexbind.Size{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.widget.SizeThatFits(tt.constraint); !sizeApprox(got, tt.want) {
				t.Errorf("SizeThatFits(%v) = %v, want %v", tt.constraint, got, tt.want)
			}
		})
	}
}

func TestIntrinsicContentSize(t *testing.T) {
	w := NewWidget(KindText).SetText("hello world").SetFontSize(10)

	if got, want := w.IntrinsicContentSize(), (flexbind.Size{Width: 66, Height: 14}); !sizeApprox(got, want) {
		t.Errorf("IntrinsicContentSize() = %v, want %v", got, want)
	}
}

func TestWrapLines(t *testing.T) {
	tests := []struct {
		name     string
		lines    []string
		maxCells int
		want     []string
	}{
		{"fits", []string{"a b c"}, 10, []string{"a b c"}},
		{"breaks greedily", []string{"aa bb cc"}, 5, []string{"aa bb", "cc"}},
		{"blank line kept", []string{"", "x"}, 5, []string{"", "x"}},
		{"collapses runs of spaces", []string{"a    b"}, 10, []string{"a b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrapLines(tt.lines, tt.maxCells)
			if len(got) != len(tt.want) {
				t.Fatalf("wrapLines() = %q, want %q", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("line %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}
