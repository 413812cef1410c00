package tw

// BreakpointConfig is the minimum viewport width, in points, at which each
// responsive prefix starts to apply.
type BreakpointConfig struct {
	SM  float64 // ≥640 by default
	MD  float64 // ≥768 by default
	LG  float64 // ≥1024 by default
	XL  float64 // ≥1280 by default
	XXL float64 // ≥1536 by default (2xl)
}

// DefaultBreakpoints matches Tailwind's stock screens.
func DefaultBreakpoints() BreakpointConfig {
	return BreakpointConfig{
		SM:  640,
		MD:  768,
		LG:  1024,
		XL:  1280,
		XXL: 1536,
	}
}

// ActiveBreakpoint is the largest breakpoint whose threshold width reaches.
// An undefined (NaN) width never reaches any and yields BreakpointBase.
func (c BreakpointConfig) ActiveBreakpoint(width float64) Breakpoint {
	if width >= c.XXL {
		return Breakpoint2XL
	}
	if width >= c.XL {
		return BreakpointXL
	}
	if width >= c.LG {
		return BreakpointLG
	}
	if width >= c.MD {
		return BreakpointMD
	}
	if width >= c.SM {
		return BreakpointSM
	}
	return BreakpointBase // includes NaN
}

// ResolveForWidth folds the base style and every breakpoint up to the one
// active at width, smallest first. A later level only overrides the
// properties it sets.
func (cs *ComputedStyles) ResolveForWidth(width float64, config BreakpointConfig) PartialStyle {
	result := cs.Base

	active := config.ActiveBreakpoint(width)
	levels := []struct {
		bp    Breakpoint
		style *PartialStyle
	}{
		{BreakpointSM, &cs.SM},
		{BreakpointMD, &cs.MD},
		{BreakpointLG, &cs.LG},
		{BreakpointXL, &cs.XL},
		{Breakpoint2XL, &cs.XXL},
	}
	for _, level := range levels {
		if active >= level.bp {
			result.Merge(*level.style)
		}
	}

	return result
}
