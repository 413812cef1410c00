package tw

import (
	"sync"

	"github.com/agiangrant/flexbind/layout"
)

// Resolver turns class strings into layout styles for a viewport width.
// Parsed class strings are cached; a Resolver is safe for concurrent use.
type Resolver struct {
	Breakpoints BreakpointConfig

	cache sync.Map // string -> *ComputedStyles
}

// NewResolver returns a Resolver using the given breakpoints.
func NewResolver(config BreakpointConfig) *Resolver {
	return &Resolver{Breakpoints: config}
}

var defaultResolver = NewResolver(DefaultBreakpoints())

// Parse returns the computed styles for classes, parsing them at most once.
func (r *Resolver) Parse(classes string) *ComputedStyles {
	if cs, ok := r.cache.Load(classes); ok {
		return cs.(*ComputedStyles)
	}
	computed := ParseClasses(classes)
	cs, _ := r.cache.LoadOrStore(classes, &computed)
	return cs.(*ComputedStyles)
}

// Apply overlays the classes active at width onto style. Properties no
// class sets are left untouched.
func (r *Resolver) Apply(style *layout.Style, classes string, width float64) {
	resolved := r.Parse(classes).ResolveForWidth(width, r.Breakpoints)
	resolved.ApplyTo(style)
}

// Style returns layout.DefaultStyle with classes applied at width.
func (r *Resolver) Style(classes string, width float64) layout.Style {
	style := layout.DefaultStyle()
	r.Apply(&style, classes, width)
	return style
}

// Apply overlays classes onto style using the default breakpoints.
func Apply(style *layout.Style, classes string, width float64) {
	defaultResolver.Apply(style, classes, width)
}

// Style resolves classes at width using the default breakpoints.
func Style(classes string, width float64) layout.Style {
	return defaultResolver.Style(classes, width)
}
