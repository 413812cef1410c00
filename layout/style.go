package layout

// FlexDirection specifies the main axis for laying out children.
type FlexDirection uint8

const (
	Column FlexDirection = iota // Children laid out top-to-bottom
	Row                         // Children laid out left-to-right (right-to-left under RTL)
)

// Direction is the writing direction a layout pass runs in.
type Direction uint8

const (
	DirectionInherit Direction = iota // Use the solver's default (LTR)
	DirectionLTR
	DirectionRTL
)

// String returns the config spelling of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionLTR:
		return "ltr"
	case DirectionRTL:
		return "rtl"
	default:
		return "inherit"
	}
}

// ParseDirection converts "ltr", "rtl" or "inherit" into a Direction.
// Unknown spellings map to DirectionInherit.
func ParseDirection(s string) Direction {
	switch s {
	case "ltr", "LTR":
		return DirectionLTR
	case "rtl", "RTL":
		return DirectionRTL
	default:
		return DirectionInherit
	}
}

// Justify specifies how children are distributed along the main axis.
type Justify uint8

const (
	JustifyStart        Justify = iota // Pack at start
	JustifyEnd                         // Pack at end
	JustifyCenter                      // Center children
	JustifySpaceBetween                // Even space between, none at edges
	JustifySpaceAround                 // Even space around each child
	JustifySpaceEvenly                 // Equal space between and at edges
)

// Align specifies how children are positioned on the cross axis.
type Align uint8

const (
	AlignStart   Align = iota // Align to start of cross axis
	AlignEnd                  // Align to end of cross axis
	AlignCenter               // Center on cross axis
	AlignStretch              // Stretch to fill cross axis
)

// Style contains all layout properties for a node.
type Style struct {
	// Sizing
	Width     Value
	Height    Value
	MinWidth  Value
	MinHeight Value
	MaxWidth  Value
	MaxHeight Value

	// Flex container properties
	FlexDirection  FlexDirection
	JustifyContent Justify
	AlignItems     Align
	Gap            float64 // Space between children (main axis only)

	// Flex item properties
	FlexGrow   float64 // How much to grow relative to siblings
	FlexShrink float64 // How much to shrink relative to siblings (default 1)
	FlexBasis  Value   // Initial main size (auto = use Width/Height or content)
	AlignSelf  *Align  // Override parent's AlignItems (nil = inherit)

	// Spacing
	Padding Edges
	Margin  Edges
}

// DefaultStyle returns a Style with the defaults every new node starts from.
func DefaultStyle() Style {
	return Style{
		Width:         Auto(),
		Height:        Auto(),
		MinWidth:      Auto(), // No minimum
		MinHeight:     Auto(),
		MaxWidth:      Auto(), // No maximum
		MaxHeight:     Auto(),
		FlexDirection: Column,
		AlignItems:    AlignStretch,
		FlexShrink:    1.0,
		FlexBasis:     Auto(),
	}
}

// MinFor returns the minimum size value for the given axis.
func (s *Style) MinFor(horizontal bool) Value {
	if horizontal {
		return s.MinWidth
	}
	return s.MinHeight
}

// MaxFor returns the maximum size value for the given axis.
func (s *Style) MaxFor(horizontal bool) Value {
	if horizontal {
		return s.MaxWidth
	}
	return s.MaxHeight
}

// DimensionFor returns the size value for the given axis.
func (s *Style) DimensionFor(horizontal bool) Value {
	if horizontal {
		return s.Width
	}
	return s.Height
}
