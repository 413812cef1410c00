package tw

import "github.com/agiangrant/flexbind/layout"

// PartialStyle represents a partial layout style that can be merged.
// nil means "not set by any class".
type PartialStyle struct {
	// Sizing
	Width     *layout.Value
	Height    *layout.Value
	MinWidth  *layout.Value
	MinHeight *layout.Value
	MaxWidth  *layout.Value
	MaxHeight *layout.Value

	// Flexbox
	FlexDirection  *layout.FlexDirection
	JustifyContent *layout.Justify
	AlignItems     *layout.Align
	AlignSelf      *layout.Align
	FlexGrow       *float64
	FlexShrink     *float64
	FlexBasis      *layout.Value
	Gap            *float64

	// Spacing
	PaddingTop    *float64
	PaddingRight  *float64
	PaddingBottom *float64
	PaddingLeft   *float64
	MarginTop     *float64
	MarginRight   *float64
	MarginBottom  *float64
	MarginLeft    *float64
}

// Merge copies every property set in p over s.
func (s *PartialStyle) Merge(p PartialStyle) {
	mergePtr(&s.Width, p.Width)
	mergePtr(&s.Height, p.Height)
	mergePtr(&s.MinWidth, p.MinWidth)
	mergePtr(&s.MinHeight, p.MinHeight)
	mergePtr(&s.MaxWidth, p.MaxWidth)
	mergePtr(&s.MaxHeight, p.MaxHeight)

	mergePtr(&s.FlexDirection, p.FlexDirection)
	mergePtr(&s.JustifyContent, p.JustifyContent)
	mergePtr(&s.AlignItems, p.AlignItems)
	mergePtr(&s.AlignSelf, p.AlignSelf)
	mergePtr(&s.FlexGrow, p.FlexGrow)
	mergePtr(&s.FlexShrink, p.FlexShrink)
	mergePtr(&s.FlexBasis, p.FlexBasis)
	mergePtr(&s.Gap, p.Gap)

	mergePtr(&s.PaddingTop, p.PaddingTop)
	mergePtr(&s.PaddingRight, p.PaddingRight)
	mergePtr(&s.PaddingBottom, p.PaddingBottom)
	mergePtr(&s.PaddingLeft, p.PaddingLeft)
	mergePtr(&s.MarginTop, p.MarginTop)
	mergePtr(&s.MarginRight, p.MarginRight)
	mergePtr(&s.MarginBottom, p.MarginBottom)
	mergePtr(&s.MarginLeft, p.MarginLeft)
}

func mergePtr[T any](dst **T, src *T) {
	if src != nil {
		*dst = src
	}
}

// ApplyTo writes every set property into style.
func (s PartialStyle) ApplyTo(style *layout.Style) {
	setFrom(&style.Width, s.Width)
	setFrom(&style.Height, s.Height)
	setFrom(&style.MinWidth, s.MinWidth)
	setFrom(&style.MinHeight, s.MinHeight)
	setFrom(&style.MaxWidth, s.MaxWidth)
	setFrom(&style.MaxHeight, s.MaxHeight)

	setFrom(&style.FlexDirection, s.FlexDirection)
	setFrom(&style.JustifyContent, s.JustifyContent)
	setFrom(&style.AlignItems, s.AlignItems)
	if s.AlignSelf != nil {
		align := *s.AlignSelf
		style.AlignSelf = &align
	}
	setFrom(&style.FlexGrow, s.FlexGrow)
	setFrom(&style.FlexShrink, s.FlexShrink)
	setFrom(&style.FlexBasis, s.FlexBasis)
	setFrom(&style.Gap, s.Gap)

	setFrom(&style.Padding.Top, s.PaddingTop)
	setFrom(&style.Padding.Right, s.PaddingRight)
	setFrom(&style.Padding.Bottom, s.PaddingBottom)
	setFrom(&style.Padding.Left, s.PaddingLeft)
	setFrom(&style.Margin.Top, s.MarginTop)
	setFrom(&style.Margin.Right, s.MarginRight)
	setFrom(&style.Margin.Bottom, s.MarginBottom)
	setFrom(&style.Margin.Left, s.MarginLeft)
}

func setFrom[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

func ptr[T any](v T) *T {
	return &v
}
