package flexbind

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/agiangrant/flexbind/layout"
)

// fakeWidget is a minimal Widget with scripted sizing.
type fakeWidget struct {
	id        WidgetID
	hidden    bool
	opacity   float64
	fits      Size
	intrinsic Size
	container bool

	frame     Rect
	setFrames int
	children  []Widget

	fitsCalls      int
	lastConstraint Size

	discard []func(WidgetID)
	onPre   func()
	onPost  func()
}

func newFake() *fakeWidget {
	return &fakeWidget{id: NewWidgetID(), opacity: 1}
}

func newLeaf(w, h float64) *fakeWidget {
	f := newFake()
	f.fits = Size{Width: w, Height: h}
	return f
}

func newContainer(children ...Widget) *fakeWidget {
	f := newFake()
	f.container = true
	f.children = children
	return f
}

func (f *fakeWidget) ID() WidgetID { return f.id }
func (f *fakeWidget) Hidden() bool { return f.hidden }
func (f *fakeWidget) Opacity() float64 { return f.opacity }

func (f *fakeWidget) SizeThatFits(c Size) Size {
	f.fitsCalls++
	f.lastConstraint = c
	return f.fits
}

func (f *fakeWidget) IntrinsicContentSize() Size { return f.intrinsic }
func (f *fakeWidget) Frame() Rect { return f.frame }

func (f *fakeWidget) SetFrame(r Rect) {
	f.setFrames++
	f.frame = r
}

func (f *fakeWidget) Children() []Widget { return f.children }
func (f *fakeWidget) AddChild(c Widget) { f.children = append(f.children, c) }
func (f *fakeWidget) ContainerOnly() bool { return f.container }
func (f *fakeWidget) OnDiscard(fn func(WidgetID)) { f.discard = append(f.discard, fn) }

func (f *fakeWidget) PreRender() {
	if f.onPre != nil {
		f.onPre()
	}
}

func (f *fakeWidget) PostRender() {
	if f.onPost != nil {
		f.onPost()
	}
}

// destroy fires the discard hooks the way a real widget would.
func (f *fakeWidget) destroy() {
	for _, fn := range f.discard {
		fn(f.id)
	}
	f.discard = nil
}

// recordHandler is a slog.Handler that keeps every record.
type recordHandler struct {
	mu      sync.Mutex
	records []slog.Record
}

func (h *recordHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *recordHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	h.records = append(h.records, r)
	h.mu.Unlock()
	return nil
}

func (h *recordHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *recordHandler) WithGroup(string) slog.Handler { return h }

func (h *recordHandler) count(level slog.Level) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	n := 0
	for _, r := range h.records {
		if r.Level == level {
			n++
		}
	}
	return n
}

// stepClock advances by step every time it is read.
type stepClock struct {
	t    time.Time
	step time.Duration
}

func (c *stepClock) now() time.Time {
	t := c.t
	c.t = c.t.Add(c.step)
	return t
}

func newTestEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	opts = append([]Option{WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))}, opts...)
	e, err := NewEngine(DefaultEngineConfig(), opts...)
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	return e
}

func TestNewWidgetIDUnique(t *testing.T) {
	seen := make(map[WidgetID]bool)
	for i := 0; i < 1000; i++ {
		id := NewWidgetID()
		if seen[id] {
			t.Fatalf("NewWidgetID() returned duplicate %d", id)
		}
		seen[id] = true
	}
}

func TestUnboundedIsUndefined(t *testing.T) {
	if !layout.IsUndefined(Unbounded.Width) || !layout.IsUndefined(Unbounded.Height) {
		t.Errorf("Unbounded = %v, want both axes undefined", Unbounded)
	}
}
