package flow

import (
	"gioui.org/layout"
)

// A line is a maximal run of consecutive items sharing one row or
// column. Items are appended by the packing pass and never move to
// another line afterwards.
type line struct {
	items   []*Attributes
	spacing int
	// capacity is the line's fixed cross-axis extent: the container's
	// cross extent minus the section's cross insets.
	capacity int
	// used is the cross extent consumed so far, interior spacing
	// included.
	used int
	// margin is capacity minus used, frozen when the line closes.
	margin int
	closed bool
}

// thickness is the extent of the line along the scroll axis: the
// largest main-axis extent among its items. Lines stack by it.
func (ln *line) thickness(axis layout.Axis) int {
	t := 0
	for _, it := range ln.items {
		if m := mainExtent(axis, it.Size); m > t {
			t = m
		}
	}
	return t
}

func (ln *line) close() {
	ln.margin = ln.capacity - ln.used
	ln.closed = true
}

// alignOffset is the cross-axis displacement of the whole line. It is
// zero until the line has been closed.
func (ln *line) alignOffset(a Alignment) int {
	if !ln.closed {
		return 0
	}
	return a.offset(ln.margin)
}

// place assigns a frame to every item. mainPos is the line's position
// along the scroll axis, shared by all items; crossBase is the leading
// content edge of the section across it. The first item gets no leading
// spacing.
func (ln *line) place(axis layout.Axis, mainPos, crossBase int, a Alignment) {
	cross := crossBase + ln.alignOffset(a)
	for i, it := range ln.items {
		if i > 0 {
			cross += ln.spacing
		}
		it.Frame = AxisRect(axis, mainPos, cross, mainExtent(axis, it.Size), crossExtent(axis, it.Size))
		cross += crossExtent(axis, it.Size)
	}
}
