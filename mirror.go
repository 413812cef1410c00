package flexbind

import "github.com/agiangrant/flexbind/layout"

// pass tracks the associations bound to live widgets for one render pass.
type pass struct {
	bound []*association
}

func (p *pass) bind(a *association, w Widget) {
	if p == nil {
		return
	}
	a.widget = w
	p.bound = append(p.bound, a)
}

// unbind drops every widget reference taken during the pass.
func (p *pass) unbind() {
	for _, a := range p.bound {
		a.widget = nil
	}
	p.bound = nil
}

// Sync rebuilds the child lists of w's node and every participating
// descendant so they match the widget tree. It does nothing if w has no
// node.
//
// Only children that already have a node take part. A child without one
// is skipped along with its whole subtree, even if descendants below it
// have nodes: participation must be contiguous from the root.
//
// Sync shares the render lock: while a pass is running it does nothing,
// since the pass mirrors the tree itself.
func (e *Engine) Sync(w Widget) {
	a := e.lookup(w.ID())
	if a == nil {
		return
	}
	if !e.renderMu.TryLock() {
		return
	}
	defer e.renderMu.Unlock()
	e.sync(w, a, nil)
}

func (e *Engine) sync(w Widget, a *association, p *pass) {
	children := acquireWidgetSlice(w.Children())
	defer releaseWidgetSlice(children)

	// Children are replaced wholesale every pass
	nodes := make([]*layout.Node, 0, len(children))
	assocs := make([]*association, 0, len(children))
	participants := children[:0]
	for _, child := range children {
		ca := e.lookup(child.ID())
		if ca == nil {
			continue
		}
		nodes = append(nodes, ca.node)
		assocs = append(assocs, ca)
		participants = append(participants, child)
	}
	a.node.SetChildren(nodes)

	for i, child := range participants {
		p.bind(assocs[i], child)
		e.sync(child, assocs[i], p)
	}
}

// apply writes computed frames to widgets, parents before children.
func (e *Engine) apply(w Widget, a *association) {
	frame := a.node.Frame()
	if scale := e.config.PointScale; scale > 0 {
		frame = frame.Round(scale)
	}

	// Skip the write when nothing moved since the last pass
	if !a.hasApplied || a.applied != frame || w.Frame() != frame {
		w.SetFrame(frame)
		a.applied, a.hasApplied = frame, true
	}

	children := acquireWidgetSlice(w.Children())
	defer releaseWidgetSlice(children)
	for _, child := range children {
		if ca := e.lookup(child.ID()); ca != nil {
			e.apply(child, ca)
		}
	}
}
