package retained

// Builder helpers for common widget patterns.
// These provide a fluent API for constructing UI trees.

// Container creates a container sized purely by its children.
func Container(classes string, children ...*Widget) *Widget {
	return NewWidget(KindContainer).SetClasses(classes).Add(children...)
}

// Row creates a container that lays children out along the horizontal axis.
// Example: Row("gap-2 items-center", icon, label)
func Row(classes string, children ...*Widget) *Widget {
	return Container(joinClasses("flex-row", classes), children...)
}

// Column creates a container that lays children out top-to-bottom.
func Column(classes string, children ...*Widget) *Widget {
	return Container(joinClasses("flex-col", classes), children...)
}

// View creates a plain box with a preferred size.
func View(classes string, width, height float64) *Widget {
	return NewWidget(KindView).SetClasses(classes).SetNaturalSize(width, height)
}

// Text creates a text label that wraps to the width it is given.
func Text(content, classes string) *Widget {
	return NewWidget(KindText).SetClasses(classes).SetText(content)
}

// Button creates a single-line button with default padding.
func Button(label, classes string) *Widget {
	return NewWidget(KindButton).SetClasses(classes).SetText(label)
}

// Image creates an image placeholder with the given natural size.
func Image(classes string, width, height float64) *Widget {
	return NewWidget(KindImage).SetClasses(classes).SetNaturalSize(width, height)
}

// Spacer creates an empty container that absorbs free space. Its basis is
// zero so it only ever takes what the siblings leave.
func Spacer() *Widget {
	return Container("grow basis-0")
}

func joinClasses(base, extra string) string {
	if extra == "" {
		return base
	}
	return base + " " + extra
}
