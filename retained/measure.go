package retained

import (
	"math"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/agiangrant/flexbind"
)

// Text metrics. Glyphs are measured in terminal-style cells (East Asian
// wide runes take two), each GlyphAdvance * fontSize points wide.
var (
	GlyphAdvance      = 0.6
	DefaultLineHeight = 1.4
)

// buttonPadding is the inset applied to buttons without explicit padding.
var buttonPadding = [4]float64{6, 12, 6, 12}

// SizeThatFits returns the size the widget wants within constraint.
// Unconstrained axes are +Inf.
func (w *Widget) SizeThatFits(constraint flexbind.Size) flexbind.Size {
	w.mu.RLock()
	kind := w.kind
	text := w.text
	fontSize := w.fontSize
	lineHeight := w.lineHeight
	padding := w.padding
	natural := w.natural
	w.mu.RUnlock()

	if lineHeight == 0 {
		lineHeight = DefaultLineHeight
	}

	switch kind {
	case KindText:
		return measureText(text, fontSize, lineHeight, padding, constraint.Width, true)
	case KindButton:
		if padding == ([4]float64{}) {
			padding = buttonPadding
		}
		return measureText(text, fontSize, lineHeight, padding, constraint.Width, false)
	case KindImage:
		return fitImage(natural, constraint)
	case KindView:
		return natural
	default: // KindContainer: no native content
		return flexbind.Size{}
	}
}

// IntrinsicContentSize is the widget's size with no constraints.
func (w *Widget) IntrinsicContentSize() flexbind.Size {
	return w.SizeThatFits(flexbind.Size{Width: math.Inf(1), Height: math.Inf(1)})
}

// measureText sizes text, wrapping at word boundaries when wrap is set
// and maxWidth leaves less room than the longest line needs.
func measureText(text string, fontSize, lineHeight float64, padding [4]float64, maxWidth float64, wrap bool) flexbind.Size {
	if text == "" || fontSize <= 0 {
		return flexbind.Size{}
	}

	cell := fontSize * GlyphAdvance
	padH := padding[1] + padding[3]
	padV := padding[0] + padding[2]

	lines := strings.Split(text, "\n")
	if wrap && !math.IsInf(maxWidth, 1) && maxWidth > padH {
		maxCells := int((maxWidth - padH) / cell)
		lines = wrapLines(lines, max(maxCells, 1))
	}

	widest := 0
	for _, line := range lines {
		widest = max(widest, runewidth.StringWidth(line))
	}

	return flexbind.Size{
		Width:  float64(widest)*cell + padH,
		Height: float64(len(lines))*fontSize*lineHeight + padV,
	}
}

// wrapLines greedily breaks each line at spaces so no line exceeds
// maxCells. A single word wider than maxCells is truncated onto its own
// line rather than split.
func wrapLines(lines []string, maxCells int) []string {
	var out []string
	for _, line := range lines {
		words := strings.Fields(line)
		if len(words) == 0 {
			out = append(out, "")
			continue
		}

		current := words[0]
		width := runewidth.StringWidth(current)
		for _, word := range words[1:] {
			ww := runewidth.StringWidth(word)
			if width+1+ww > maxCells {
				out = append(out, current)
				current, width = word, ww
				continue
			}
			current += " " + word
			width += 1 + ww
		}
		out = append(out, current)
	}

	for i, line := range out {
		if runewidth.StringWidth(line) > maxCells {
			out[i] = runewidth.Truncate(line, maxCells, "")
		}
	}
	return out
}

// fitImage scales the natural size down to fit constraint, keeping the
// aspect ratio. Images never scale up.
func fitImage(natural, constraint flexbind.Size) flexbind.Size {
	if natural.Width <= 0 || natural.Height <= 0 {
		return flexbind.Size{}
	}
	scale := 1.0
	if constraint.Width < natural.Width {
		scale = min(scale, constraint.Width/natural.Width)
	}
	if constraint.Height < natural.Height {
		scale = min(scale, constraint.Height/natural.Height)
	}
	scale = max(scale, 0)
	return flexbind.Size{Width: natural.Width * scale, Height: natural.Height * scale}
}
