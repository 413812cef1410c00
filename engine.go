package flexbind

import (
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/trace"

	"github.com/agiangrant/flexbind/layout"
)

// RenderHook is called once per widget during the pre- and post-render
// phases, after the widget's own PreRender/PostRender capability.
type RenderHook func(w Widget)

// Engine binds a widget tree to a layout solver.
//
// It owns the per-widget side tables (layout nodes and configuration
// callbacks) and runs render passes. All methods are safe for concurrent
// use; a render pass is a critical section per engine.
type Engine struct {
	config EngineConfig
	solver layout.Solver
	logger *slog.Logger
	tracer trace.Tracer
	now    func() time.Time

	metrics    *engineMetrics
	metricsReg prometheus.Registerer

	// Association store
	nodes sync.Map // map[WidgetID]*association
	count atomic.Int64

	// Configuration registry
	configMu sync.RWMutex
	configs  map[WidgetID]ConfigureFunc

	hooksMu   sync.RWMutex
	preHooks  []RenderHook
	postHooks []RenderHook

	renderMu sync.Mutex
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithMetrics registers the engine's Prometheus collectors with reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(e *Engine) {
		e.metricsReg = reg
	}
}

// WithTracerProvider sets the provider render-pass spans are created from.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(e *Engine) {
		if tp != nil {
			e.tracer = tp.Tracer(tracerName)
		}
	}
}

// WithClock replaces the clock used to time render passes.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// WithSolver replaces the layout solver. The default is layout.FlexSolver.
func WithSolver(s layout.Solver) Option {
	return func(e *Engine) {
		if s != nil {
			e.solver = s
		}
	}
}

// WithPreRenderHook adds a hook run for every widget in the pre-render phase.
func WithPreRenderHook(h RenderHook) Option {
	return func(e *Engine) {
		e.preHooks = append(e.preHooks, h)
	}
}

// WithPostRenderHook adds a hook run for every widget in the post-render phase.
func WithPostRenderHook(h RenderHook) Option {
	return func(e *Engine) {
		e.postHooks = append(e.postHooks, h)
	}
}

// NewEngine creates a new engine with the given configuration
func NewEngine(config EngineConfig, opts ...Option) (*Engine, error) {
	config = config.withDefaults()
	e := &Engine{
		config:  config,
		solver:  layout.FlexSolver{},
		now:     time.Now,
		tracer:  defaultTracer(),
		configs: make(map[WidgetID]ConfigureFunc),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = NewLogger(nil, config.Level())
	}
	if e.metricsReg != nil {
		m, err := newEngineMetrics(e.metricsReg)
		if err != nil {
			return nil, err
		}
		e.metrics = m
	}
	return e, nil
}

// Config returns the engine's configuration.
func (e *Engine) Config() EngineConfig {
	return e.config
}

// AddPreRenderHook registers a hook for subsequent passes.
func (e *Engine) AddPreRenderHook(h RenderHook) {
	e.hooksMu.Lock()
	e.preHooks = append(e.preHooks, h)
	e.hooksMu.Unlock()
}

// AddPostRenderHook registers a hook for subsequent passes.
func (e *Engine) AddPostRenderHook(h RenderHook) {
	e.hooksMu.Lock()
	e.postHooks = append(e.postHooks, h)
	e.hooksMu.Unlock()
}

// Shutdown drops every association and configuration entry.
func (e *Engine) Shutdown() {
	e.nodes.Range(func(key, _ any) bool {
		e.ReleaseID(key.(WidgetID))
		return true
	})
}

// ============================================================================
// Process-wide default engine
// ============================================================================

var (
	defaultOnce   sync.Once
	defaultEngine *Engine
)

// Default returns the process-wide engine used by the package-level
// functions. It is created lazily with DefaultEngineConfig.
func Default() *Engine {
	defaultOnce.Do(func() {
		// No options means no registration, so this cannot fail.
		defaultEngine, _ = NewEngine(DefaultEngineConfig())
	})
	return defaultEngine
}

// Render runs a pass on the default engine.
func Render(root Widget, bounds Size) PassStats {
	return Default().Render(root, bounds)
}

// Configure stores a configuration callback on the default engine.
func Configure(w Widget, fn ConfigureFunc, children ...Widget) Widget {
	return Default().Configure(w, fn, children...)
}

// Node returns w's layout node from the default engine.
func Node(w Widget) *layout.Node {
	return Default().Node(w)
}

// Style returns w's style record from the default engine.
func Style(w Widget) *layout.Style {
	return Default().Style(w)
}

// HasNode reports whether w has a node in the default engine.
func HasNode(w Widget) bool {
	return Default().HasNode(w)
}

// SetNode replaces w's node in the default engine.
func SetNode(w Widget, n *layout.Node) {
	Default().SetNode(w, n)
}

// Release drops w's entries from the default engine.
func Release(w Widget) {
	Default().Release(w)
}
