package flow

import (
	"gioui.org/layout"
)

// Alignment controls where a line's leftover cross-axis space goes. The
// six values form two families, one per scroll direction: Left, Center
// and Right align the horizontal lines of a vertically scrolling layout,
// Top, Middle and Bottom the vertical lines of a horizontally scrolling
// one. A value from the wrong family is not an error: the engine remaps
// it to its counterpart (Left↔Top, Center↔Middle, Right↔Bottom) and,
// with Debug set, logs the mismatch.
type Alignment uint8

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight

	AlignTop
	AlignMiddle
	AlignBottom
)

func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	case AlignTop:
		return "top"
	case AlignMiddle:
		return "middle"
	case AlignBottom:
		return "bottom"
	}
	return "unknown"
}

// family returns the scroll axis the value is meant for.
func (a Alignment) family() layout.Axis {
	if a <= AlignRight {
		return layout.Vertical
	}
	return layout.Horizontal
}

// normalize remaps a into the family matching the scroll axis. The
// second return reports whether a remap took place.
func (a Alignment) normalize(axis layout.Axis) (Alignment, bool) {
	if a > AlignBottom {
		a = AlignLeft
	}
	if a.family() == axis {
		return a, false
	}
	switch a {
	case AlignLeft:
		return AlignTop, true
	case AlignCenter:
		return AlignMiddle, true
	case AlignRight:
		return AlignBottom, true
	case AlignTop:
		return AlignLeft, true
	case AlignMiddle:
		return AlignCenter, true
	default:
		return AlignRight, true
	}
}

// offset returns the cross-axis displacement of a line whose leftover
// margin is the given amount: zero for a leading alignment, half the
// margin for a centered one, the full margin for a trailing one.
func (a Alignment) offset(margin int) int {
	switch a {
	case AlignCenter, AlignMiddle:
		return margin / 2
	case AlignRight, AlignBottom:
		return margin
	}
	return 0
}
