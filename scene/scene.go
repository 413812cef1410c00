// Package scene loads declarative widget trees from TOML or YAML files.
//
// A scene describes a viewport and a root widget:
//
//	[viewport]
//	width = 800
//	height = 600
//
//	[root]
//	kind = "container"
//	classes = "flex-row gap-2 p-4"
//
//	[[root.children]]
//	kind = "text"
//	text = "Hello"
package scene

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/agiangrant/flexbind"
	"github.com/agiangrant/flexbind/retained"
	"github.com/agiangrant/flexbind/tw"
)

var (
	// ErrUnknownKind is returned when a node names a kind retained does not provide.
	ErrUnknownKind = errors.New("unknown widget kind")

	// ErrUnsupportedFormat is returned for files that are neither TOML nor YAML.
	ErrUnsupportedFormat = errors.New("unsupported scene format")
)

// Format is a scene file encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatOf picks the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
}

// Viewport is the space the scene is rendered into. Zero dimensions are
// unbounded.
type Viewport struct {
	Width  float64 `toml:"width" yaml:"width"`
	Height float64 `toml:"height" yaml:"height"`
}

// Node describes one widget.
type Node struct {
	Kind     string   `toml:"kind" yaml:"kind"`
	Name     string   `toml:"name,omitempty" yaml:"name,omitempty"`
	Classes  string   `toml:"classes,omitempty" yaml:"classes,omitempty"`
	Text     string   `toml:"text,omitempty" yaml:"text,omitempty"`
	FontSize float64  `toml:"font_size,omitempty" yaml:"font_size,omitempty"`
	Width    float64  `toml:"width,omitempty" yaml:"width,omitempty"` // natural size for views and images
	Height   float64  `toml:"height,omitempty" yaml:"height,omitempty"`
	Hidden   bool     `toml:"hidden,omitempty" yaml:"hidden,omitempty"`
	Opacity  *float64 `toml:"opacity,omitempty" yaml:"opacity,omitempty"`
	Children []Node   `toml:"children,omitempty" yaml:"children,omitempty"`
}

// Scene is a parsed scene file.
type Scene struct {
	Viewport Viewport `toml:"viewport" yaml:"viewport"`
	Root     Node     `toml:"root" yaml:"root"`
}

// Load reads and parses the scene at path, choosing the decoder by extension.
func Load(path string) (*Scene, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	s, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a scene in the given format.
func Parse(data []byte, format Format) (*Scene, error) {
	var s Scene
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &s); err != nil {
			return nil, err
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &s); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if s.Root.Kind == "" {
		s.Root.Kind = string(retained.KindContainer)
	}
	return &s, nil
}

// Bounds returns the render bounds for the viewport.
func (s *Scene) Bounds() flexbind.Size {
	bounds := flexbind.Unbounded
	if s.Viewport.Width > 0 {
		bounds.Width = s.Viewport.Width
	}
	if s.Viewport.Height > 0 {
		bounds.Height = s.Viewport.Height
	}
	return bounds
}

// Build creates the retained widget tree described by the scene.
func (s *Scene) Build() (*retained.Widget, error) {
	return build(s.Root, "root")
}

func build(n Node, path string) (*retained.Widget, error) {
	kind, ok := retained.ParseKind(n.Kind)
	if !ok {
		return nil, fmt.Errorf("%s: %w %q", path, ErrUnknownKind, n.Kind)
	}

	w := retained.NewWidget(kind).
		SetName(n.Name).
		SetClasses(n.Classes).
		SetText(n.Text).
		SetNaturalSize(n.Width, n.Height).
		SetVisible(!n.Hidden)
	if n.FontSize > 0 {
		w.SetFontSize(n.FontSize)
	}
	if n.Opacity != nil {
		w.SetOpacity(*n.Opacity)
	}

	for i, child := range n.Children {
		c, err := build(child, fmt.Sprintf("%s.children[%d]", path, i))
		if err != nil {
			return nil, err
		}
		w.AddChild(c)
	}
	return w, nil
}

// Mount builds the scene and binds every widget's classes to e, resolved
// against the viewport width with the default breakpoints.
func (s *Scene) Mount(e *flexbind.Engine) (*retained.Widget, error) {
	return s.MountWith(e, tw.NewResolver(tw.DefaultBreakpoints()))
}

// MountWith is Mount with a custom class resolver.
func (s *Scene) MountWith(e *flexbind.Engine, r *tw.Resolver) (*retained.Widget, error) {
	root, err := s.Build()
	if err != nil {
		return nil, err
	}
	retained.BindWith(e, root, r, func() float64 { return s.Bounds().Width })
	return root, nil
}
