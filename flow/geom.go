package flow

import (
	"image"

	"gioui.org/layout"
)

// Insets is the space reserved around a section's item area, in pixels.
// Headers and footers are not inset; they span the full cross extent of
// the container.
type Insets struct {
	Top, Right, Bottom, Left int
}

// mainLeading is the inset between the header (or the section start) and
// the first line, measured along the scroll axis.
func (in Insets) mainLeading(axis layout.Axis) int {
	if axis == layout.Vertical {
		return in.Top
	}
	return in.Left
}

// mainTrailing is the inset between the last line and the footer (or the
// section end), measured along the scroll axis.
func (in Insets) mainTrailing(axis layout.Axis) int {
	if axis == layout.Vertical {
		return in.Bottom
	}
	return in.Right
}

// crossLeading is the inset before the first item of a line.
func (in Insets) crossLeading(axis layout.Axis) int {
	if axis == layout.Vertical {
		return in.Left
	}
	return in.Top
}

func (in Insets) crossTrailing(axis layout.Axis) int {
	if axis == layout.Vertical {
		return in.Right
	}
	return in.Bottom
}

// cross is the total inset across the scroll axis. Line capacity is the
// container's cross extent minus this.
func (in Insets) cross(axis layout.Axis) int {
	return in.crossLeading(axis) + in.crossTrailing(axis)
}

// The helpers below let the wrap and position passes be written once and
// specialized by the scroll axis alone. "main" is the extent along the
// scroll axis (the direction lines stack), "cross" the extent along a
// line. Axis.Convert is its own inverse, so one conversion maps both
// ways.

func mainExtent(axis layout.Axis, p image.Point) int {
	return axis.Convert(p).X
}

func crossExtent(axis layout.Axis, p image.Point) int {
	return axis.Convert(p).Y
}

func axisPt(axis layout.Axis, main, cross int) image.Point {
	return axis.Convert(image.Pt(main, cross))
}

// AxisRect builds a rectangle from main/cross coordinates for the given
// scroll axis. Hosts use it to express their viewport in the engine's
// coordinate space.
func AxisRect(axis layout.Axis, mainPos, crossPos, main, cross int) image.Rectangle {
	min := axisPt(axis, mainPos, crossPos)
	return image.Rectangle{Min: min, Max: min.Add(axisPt(axis, main, cross))}
}
