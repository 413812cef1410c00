package flexbind

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// PassStats describes one render pass.
type PassStats struct {
	Start   time.Time
	Elapsed time.Duration

	// Nodes is the number of layout nodes the solver saw, root included.
	Nodes int

	// OverBudget is set when Elapsed exceeded the frame budget.
	OverBudget bool

	// Skipped is set when the call found another pass in progress.
	Skipped bool
}

// Render runs one full pass over the subtree rooted at root:
// pre-render, configure, layout, post-render, then timing diagnostics.
//
// bounds is the space available to the root; use Unbounded to leave both
// axes unconstrained. If root has no layout node the layout phase does
// nothing. Render never fails: missing nodes, callbacks or capabilities
// are skipped.
//
// A call made while a pass is running on the same engine, including one
// made from a hook or callback of that pass, is skipped.
func (e *Engine) Render(root Widget, bounds Size) PassStats {
	if root == nil {
		return PassStats{}
	}
	if !e.renderMu.TryLock() {
		e.logger.Debug("render pass already in progress, skipping", "root", root.ID())
		return PassStats{Skipped: true}
	}
	defer e.renderMu.Unlock()

	ctx, span := e.tracer.Start(context.Background(), "flexbind.render",
		trace.WithAttributes(
			attribute.Int64("flexbind.root", int64(root.ID())),
			attribute.Float64("flexbind.bounds.width", bounds.Width),
			attribute.Float64("flexbind.bounds.height", bounds.Height),
		))
	defer span.End()

	stats := PassStats{Start: e.now()}

	e.phase(ctx, "prerender", func() { e.preRender(root) })
	e.phase(ctx, "configure", func() { e.configureTree(root) })
	e.phase(ctx, "layout", func() { stats.Nodes = e.layoutTree(root, bounds) })
	e.phase(ctx, "postrender", func() { e.postRender(root) })

	stats.Elapsed = e.now().Sub(stats.Start)
	if budget := e.config.FrameBudget(); stats.Elapsed > budget {
		stats.OverBudget = true
		e.logger.Warn("render pass exceeded frame budget",
			"elapsed", stats.Elapsed,
			"budget", budget,
			"nodes", stats.Nodes,
			"root", root.ID(),
		)
	}

	span.SetAttributes(
		attribute.Int("flexbind.nodes", stats.Nodes),
		attribute.Bool("flexbind.over_budget", stats.OverBudget),
	)
	e.metrics.observePass(stats)
	return stats
}

// phase runs fn inside a child span of the pass.
func (e *Engine) phase(ctx context.Context, name string, fn func()) {
	_, span := e.tracer.Start(ctx, name)
	defer span.End()
	fn()
}

// walk visits w and its full subtree depth-first, pre-order.
func walk(w Widget, fn func(Widget)) {
	fn(w)
	children := acquireWidgetSlice(w.Children())
	defer releaseWidgetSlice(children)
	for _, child := range children {
		walk(child, fn)
	}
}

func (e *Engine) preRender(root Widget) {
	hooks := e.hooks(&e.preHooks)
	walk(root, func(w Widget) {
		if p, ok := w.(PreRenderer); ok {
			p.PreRender()
		}
		for _, h := range hooks {
			h(w)
		}
	})
}

func (e *Engine) postRender(root Widget) {
	hooks := e.hooks(&e.postHooks)
	walk(root, func(w Widget) {
		if p, ok := w.(PostRenderer); ok {
			p.PostRender()
		}
		for _, h := range hooks {
			h(w)
		}
	})
}

// hooks snapshots a hook list.
func (e *Engine) hooks(list *[]RenderHook) []RenderHook {
	e.hooksMu.RLock()
	defer e.hooksMu.RUnlock()
	return append([]RenderHook(nil), (*list)...)
}

// layoutTree mirrors, solves and applies. It returns the node count.
func (e *Engine) layoutTree(root Widget, bounds Size) int {
	a := e.lookup(root.ID())
	if a == nil {
		e.logger.Debug("root has no layout node, skipping layout", "root", root.ID())
		return 0
	}

	p := &pass{}
	defer p.unbind()
	p.bind(a, root)
	e.sync(root, a, p)

	e.solver.Solve(a.node, bounds.Width, bounds.Height, e.config.LayoutDirection())
	e.apply(root, a)
	return len(p.bound)
}
