package flexbind

import "sync"

// Traversals copy a widget's children before visiting them because hooks
// and configure callbacks may change the tree mid-walk. The copies come
// from a pool so a pass over a large tree does not allocate per widget.
//
//	children := acquireWidgetSlice(w.Children())
//	defer releaseWidgetSlice(children)

const maxPooledWidgets = 256

var childSnapshots = sync.Pool{
	New: func() any {
		s := make([]Widget, 0, 16)
		return &s
	},
}

// acquireWidgetSlice returns a pooled copy of src. Pair with releaseWidgetSlice.
func acquireWidgetSlice(src []Widget) []Widget {
	sp := childSnapshots.Get().(*[]Widget)
	return append((*sp)[:0], src...)
}

// releaseWidgetSlice hands s back to the pool; s must not be used afterwards.
func releaseWidgetSlice(s []Widget) {
	if s == nil {
		return
	}
	// Drop widget references so released widgets can be collected.
	clear(s)
	if cap(s) > maxPooledWidgets {
		return
	}
	s = s[:0]
	childSnapshots.Put(&s)
}
