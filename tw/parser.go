// Package tw parses Tailwind-style utility classes into flex layout styles.
//
// Only classes that affect layout are understood: direction, alignment,
// flex item factors, spacing and sizing. Anything else is ignored, the way
// a browser ignores an unknown CSS class.
package tw

import (
	"math"
	"strconv"
	"strings"

	"github.com/agiangrant/flexbind/layout"
)

// Breakpoint is a responsive prefix level; higher levels win.
type Breakpoint int

const (
	BreakpointBase Breakpoint = iota
	BreakpointSM              // ≥640pt
	BreakpointMD              // ≥768pt
	BreakpointLG              // ≥1024pt
	BreakpointXL              // ≥1280pt
	Breakpoint2XL             // ≥1536pt
)

// spacingUnit is the size of one step on the spacing scale (p-1 = 4pt).
const spacingUnit = 4.0

// ComputedStyles is a parsed class string, bucketed by prefix.
type ComputedStyles struct {
	// Unprefixed classes.
	Base PartialStyle

	// sm: through 2xl:, applied once the viewport reaches them.
	SM  PartialStyle
	MD  PartialStyle
	LG  PartialStyle
	XL  PartialStyle
	XXL PartialStyle
}

// ParsedClass is one class split into its prefixes and utility.
type ParsedClass struct {
	Breakpoint     Breakpoint
	Conditional    bool // hover:, focus:, dark: and friends; layout never depends on them
	BaseClass      string
	ArbitraryValue *ArbitraryValue // set for bracket syntax, w-[33%]
}

// ArbitraryValue is the bracketed part of a class such as w-[33%].
type ArbitraryValue struct {
	Property string // e.g., "w", "min-w", "gap"
	Value    string // e.g., "33%", "120px", "1.5rem"
}

// ParseClasses parses a whitespace-separated class string.
// Example: "flex-row gap-2 md:flex-col w-[33%]"
func ParseClasses(classStr string) ComputedStyles {
	var computed ComputedStyles

	for _, class := range strings.Fields(classStr) {
		parsed := parseClass(class)
		if parsed.Conditional {
			continue
		}

		var (
			partial PartialStyle
			ok      bool
		)
		if parsed.ArbitraryValue != nil {
			partial, ok = parseArbitraryValue(parsed.ArbitraryValue)
		} else {
			partial, ok = parseUtility(parsed.BaseClass)
		}
		if !ok {
			// not a layout class
			continue
		}

		target := getTargetProperties(&computed, parsed)
		target.Merge(partial)
	}

	return computed
}

// parseClass separates prefixes from the utility:
// "md:flex-row" → ParsedClass{Breakpoint: MD, BaseClass: "flex-row"}
// "w-[33%]" → ParsedClass{ArbitraryValue: {Property: "w", Value: "33%"}}
func parseClass(class string) ParsedClass {
	parts := strings.Split(class, ":")

	pc := ParsedClass{
		Breakpoint: BreakpointBase,
		BaseClass:  parts[len(parts)-1],
	}

	for _, variant := range parts[:len(parts)-1] {
		switch variant {
		case "sm":
			pc.Breakpoint = BreakpointSM
		case "md":
			pc.Breakpoint = BreakpointMD
		case "lg":
			pc.Breakpoint = BreakpointLG
		case "xl":
			pc.Breakpoint = BreakpointXL
		case "2xl":
			pc.Breakpoint = Breakpoint2XL
		default:
			pc.Conditional = true
		}
	}

	// property-[value]
	if strings.Contains(pc.BaseClass, "[") && strings.HasSuffix(pc.BaseClass, "]") {
		pc.ArbitraryValue = extractArbitraryValue(pc.BaseClass)
		pc.BaseClass = ""
	}

	return pc
}

// extractArbitraryValue splits bracket syntax into property and value:
// "w-[33%]" → ArbitraryValue{Property: "w", Value: "33%"}
func extractArbitraryValue(class string) *ArbitraryValue {
	bracketIdx := strings.Index(class, "[")
	if bracketIdx == -1 {
		return nil
	}

	return &ArbitraryValue{
		Property: strings.TrimSuffix(class[:bracketIdx], "-"),
		Value:    strings.TrimSuffix(class[bracketIdx+1:], "]"),
	}
}

// keywordClasses are the utilities that take no value.
var keywordClasses = map[string]PartialStyle{
	"flex-row": {FlexDirection: ptr(layout.Row)},
	"flex-col": {FlexDirection: ptr(layout.Column)},

	"justify-start":   {JustifyContent: ptr(layout.JustifyStart)},
	"justify-end":     {JustifyContent: ptr(layout.JustifyEnd)},
	"justify-center":  {JustifyContent: ptr(layout.JustifyCenter)},
	"justify-between": {JustifyContent: ptr(layout.JustifySpaceBetween)},
	"justify-around":  {JustifyContent: ptr(layout.JustifySpaceAround)},
	"justify-evenly":  {JustifyContent: ptr(layout.JustifySpaceEvenly)},

	"items-start":   {AlignItems: ptr(layout.AlignStart)},
	"items-end":     {AlignItems: ptr(layout.AlignEnd)},
	"items-center":  {AlignItems: ptr(layout.AlignCenter)},
	"items-stretch": {AlignItems: ptr(layout.AlignStretch)},

	"self-start":   {AlignSelf: ptr(layout.AlignStart)},
	"self-end":     {AlignSelf: ptr(layout.AlignEnd)},
	"self-center":  {AlignSelf: ptr(layout.AlignCenter)},
	"self-stretch": {AlignSelf: ptr(layout.AlignStretch)},

	"grow":   {FlexGrow: ptr(1.0)},
	"shrink": {FlexShrink: ptr(1.0)},

	"flex-1":    {FlexGrow: ptr(1.0), FlexShrink: ptr(1.0), FlexBasis: ptr(layout.Points(0))},
	"flex-auto": {FlexGrow: ptr(1.0), FlexShrink: ptr(1.0), FlexBasis: ptr(layout.Auto())},
	"flex-none": {FlexGrow: ptr(0.0), FlexShrink: ptr(0.0), FlexBasis: ptr(layout.Auto())},
}

// valueProperties are the utility prefixes that take a value, e.g. "min-w"
// in "min-w-12".
var valueProperties = []string{
	"min-w", "min-h", "max-w", "max-h",
	"basis", "gap", "grow", "shrink", "size",
	"px", "py", "pt", "pr", "pb", "pl", "p",
	"mx", "my", "mt", "mr", "mb", "ml", "m",
	"w", "h",
}

// parseUtility resolves a utility class on the spacing scale.
func parseUtility(class string) (PartialStyle, bool) {
	if partial, ok := keywordClasses[class]; ok {
		return partial, true
	}

	for _, prop := range valueProperties {
		value, found := strings.CutPrefix(class, prop+"-")
		if !found {
			continue
		}
		if prop == "grow" || prop == "shrink" {
			return parseFactor(prop, value)
		}
		v, ok := parseScale(value)
		if !ok {
			return PartialStyle{}, false
		}
		return applyProperty(prop, v)
	}
	return PartialStyle{}, false
}

// parseArbitraryValue turns a bracketed value into a style patch.
func parseArbitraryValue(arb *ArbitraryValue) (PartialStyle, bool) {
	if arb.Property == "grow" || arb.Property == "shrink" {
		return parseFactor(arb.Property, arb.Value)
	}
	v, ok := parseDimension(arb.Value)
	if !ok {
		return PartialStyle{}, false
	}
	return applyProperty(arb.Property, v)
}

// parseFactor handles grow-N and shrink-N.
func parseFactor(prop, value string) (PartialStyle, bool) {
	f, ok := parseAmount(value)
	if !ok {
		return PartialStyle{}, false
	}
	if prop == "grow" {
		return PartialStyle{FlexGrow: ptr(f)}, true
	}
	return PartialStyle{FlexShrink: ptr(f)}, true
}

// applyProperty stores v under the style field(s) prop names. Spacing
// properties only accept point values.
func applyProperty(prop string, v layout.Value) (PartialStyle, bool) {
	var partial PartialStyle

	switch prop {
	case "w":
		partial.Width = ptr(v)
	case "h":
		partial.Height = ptr(v)
	case "size":
		partial.Width = ptr(v)
		partial.Height = ptr(v)
	case "min-w":
		partial.MinWidth = ptr(v)
	case "min-h":
		partial.MinHeight = ptr(v)
	case "max-w":
		partial.MaxWidth = ptr(v)
	case "max-h":
		partial.MaxHeight = ptr(v)
	case "basis":
		partial.FlexBasis = ptr(v)
	default:
		pts, ok := v.PointValue()
		if !ok {
			return PartialStyle{}, false
		}
		if !applySpacing(prop, pts, &partial) {
			return PartialStyle{}, false
		}
	}
	return partial, true
}

func applySpacing(prop string, pts float64, partial *PartialStyle) bool {
	switch prop {
	case "gap":
		partial.Gap = ptr(pts)
	case "p":
		partial.PaddingTop, partial.PaddingRight = ptr(pts), ptr(pts)
		partial.PaddingBottom, partial.PaddingLeft = ptr(pts), ptr(pts)
	case "px":
		partial.PaddingLeft, partial.PaddingRight = ptr(pts), ptr(pts)
	case "py":
		partial.PaddingTop, partial.PaddingBottom = ptr(pts), ptr(pts)
	case "pt":
		partial.PaddingTop = ptr(pts)
	case "pr":
		partial.PaddingRight = ptr(pts)
	case "pb":
		partial.PaddingBottom = ptr(pts)
	case "pl":
		partial.PaddingLeft = ptr(pts)
	case "m":
		partial.MarginTop, partial.MarginRight = ptr(pts), ptr(pts)
		partial.MarginBottom, partial.MarginLeft = ptr(pts), ptr(pts)
	case "mx":
		partial.MarginLeft, partial.MarginRight = ptr(pts), ptr(pts)
	case "my":
		partial.MarginTop, partial.MarginBottom = ptr(pts), ptr(pts)
	case "mt":
		partial.MarginTop = ptr(pts)
	case "mr":
		partial.MarginRight = ptr(pts)
	case "mb":
		partial.MarginBottom = ptr(pts)
	case "ml":
		partial.MarginLeft = ptr(pts)
	default:
		return false
	}
	return true
}

// parseScale parses a spacing-scale value: "4" (16pt), "px" (1pt),
// "full", "auto" or a fraction like "1/3".
func parseScale(value string) (layout.Value, bool) {
	switch value {
	case "auto":
		return layout.Auto(), true
	case "full":
		return layout.Percent(100), true
	case "px":
		return layout.Points(1), true
	}

	if num, den, ok := strings.Cut(value, "/"); ok {
		n, ok1 := parseAmount(num)
		d, ok2 := parseAmount(den)
		if !ok1 || !ok2 || d == 0 {
			return layout.Value{}, false
		}
		return layout.Percent(n / d * 100), true
	}

	n, ok := parseAmount(value)
	if !ok {
		return layout.Value{}, false
	}
	return layout.Points(n * spacingUnit), true
}

// parseDimension accepts px, pt, % and rem (16pt) suffixes; a bare number is points.
func parseDimension(value string) (layout.Value, bool) {
	value = strings.TrimSpace(value)
	if value == "auto" {
		return layout.Auto(), true
	}

	numStr, multiplier, percent := value, 1.0, false
	switch {
	case strings.HasSuffix(value, "px"):
		numStr = strings.TrimSuffix(value, "px")
	case strings.HasSuffix(value, "pt"):
		numStr = strings.TrimSuffix(value, "pt")
	case strings.HasSuffix(value, "%"):
		numStr = strings.TrimSuffix(value, "%")
		percent = true
	case strings.HasSuffix(value, "rem"):
		numStr = strings.TrimSuffix(value, "rem")
		multiplier = 16.0
	}

	num, ok := parseAmount(numStr)
	if !ok {
		return layout.Value{}, false
	}
	if percent {
		return layout.Percent(num), true
	}
	return layout.Points(num * multiplier), true
}

// parseAmount parses a finite, non-negative number.
func parseAmount(s string) (float64, bool) {
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || !(n >= 0) || math.IsInf(n, 1) {
		return 0, false
	}
	return n, true
}

// getTargetProperties returns the breakpoint bucket a class applies to
func getTargetProperties(computed *ComputedStyles, parsed ParsedClass) *PartialStyle {
	switch parsed.Breakpoint {
	case BreakpointSM:
		return &computed.SM
	case BreakpointMD:
		return &computed.MD
	case BreakpointLG:
		return &computed.LG
	case BreakpointXL:
		return &computed.XL
	case Breakpoint2XL:
		return &computed.XXL
	default:
		return &computed.Base
	}
}
