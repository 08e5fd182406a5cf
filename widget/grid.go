package widget

import (
	"image"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/oligo/flowgrid/flow"
)

// Element draws one cell, header or footer. The context carries exact
// constraints: the frame size the engine computed for the element.
type Element func(gtx layout.Context, attr flow.Attributes) layout.Dimensions

// Grid holds the persistent state for a scrollable flow layout: the
// engine, the scroll position and a scrollbar.
type Grid struct {
	widget.Scrollbar
	Engine *flow.Engine

	list     layout.List
	lastSize image.Point
	dirty    bool
}

func NewGrid(engine *flow.Engine) *Grid {
	return &Grid{Engine: engine}
}

// Invalidate schedules a Recompute on the next layout. Call it after
// the source data changed; bounds changes are picked up automatically.
func (g *Grid) Invalidate() {
	g.dirty = true
}

// GridStyle configures the presentation of a Grid with a scrollbar.
type GridStyle struct {
	state *Grid
	material.ScrollbarStyle
	material.AnchorStrategy
}

func NewGridStyle(th *material.Theme, state *Grid) GridStyle {
	return GridStyle{
		state:          state,
		ScrollbarStyle: material.Scrollbar(th, &state.Scrollbar),
	}
}

// Layout recomputes the engine when the viewport or data changed, draws
// the visible elements and the scrollbar. cell draws items; header and
// footer may be nil when the engine produces no such blocks.
func (gs GridStyle) Layout(gtx layout.Context, cell, header, footer Element) layout.Dimensions {
	state := gs.state
	axis := state.Engine.Axis

	originalConstraints := gtx.Constraints
	barWidth := gtx.Dp(gs.Width())

	if gs.AnchorStrategy == material.Occupy {
		// Reserve space for the scrollbar using the gtx constraints.
		max := axis.Convert(gtx.Constraints.Max)
		min := axis.Convert(gtx.Constraints.Min)
		max.Y -= barWidth
		if max.Y < 0 {
			max.Y = 0
		}
		min.Y -= barWidth
		if min.Y < 0 {
			min.Y = 0
		}
		gtx.Constraints.Max = axis.Convert(max)
		gtx.Constraints.Min = axis.Convert(min)
	}

	if state.dirty || gtx.Constraints.Max != state.lastSize {
		state.Engine.Recompute(gtx.Constraints.Max)
		state.lastSize = gtx.Constraints.Max
		state.dirty = false
	}

	content := state.Engine.ContentExtent()
	viewMain := axis.Convert(gtx.Constraints.Max).X
	viewCross := axis.Convert(gtx.Constraints.Max).Y

	// The whole layout is a single list element: the list contributes
	// scrolling and offset bookkeeping, the engine the geometry.
	state.list.Axis = axis
	listDims := state.list.Layout(gtx, 1, func(gtx layout.Context, _ int) layout.Dimensions {
		viewport := flow.AxisRect(axis, state.list.Position.Offset, 0, viewMain, viewCross)
		for _, attr := range state.Engine.AttributesIn(viewport) {
			w := cell
			switch attr.Kind {
			case flow.Header:
				w = header
			case flow.Footer:
				w = footer
			}
			if w == nil {
				continue
			}

			cgtx := gtx
			cgtx.Constraints = layout.Exact(attr.Frame.Size())
			trans := op.Offset(attr.Frame.Min).Push(gtx.Ops)
			cl := clip.Rect(image.Rectangle{Max: attr.Frame.Size()}).Push(gtx.Ops)
			w(cgtx, attr)
			cl.Pop()
			trans.Pop()
		}
		return layout.Dimensions{Size: content}
	})
	gtx.Constraints = originalConstraints

	// Draw the scrollbar.
	anchoring := layout.E
	if axis == layout.Horizontal {
		anchoring = layout.S
	}
	start, end := viewportFraction(state.list.Position.Offset, viewMain, axis.Convert(content).X)
	gtx.Constraints.Min = listDims.Size
	if gs.AnchorStrategy == material.Occupy {
		min := axis.Convert(gtx.Constraints.Min)
		min.Y += barWidth
		gtx.Constraints.Min = axis.Convert(min)
	}
	anchoring.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return gs.ScrollbarStyle.Layout(gtx, axis, start, end)
	})

	if delta := state.ScrollDistance(); delta != 0 {
		// The list holds a single element, so a full drag of the bar
		// maps to scrolling by exactly one element length.
		state.list.ScrollBy(delta)
	}

	if gs.AnchorStrategy == material.Occupy {
		// Increase the width to account for the space occupied by the scrollbar.
		cross := axis.Convert(listDims.Size)
		cross.Y += barWidth
		listDims.Size = axis.Convert(cross)
	}

	return listDims
}

// viewportFraction converts the scroll offset into the [0,1] range the
// scrollbar expects. Unlike a per-element list, the content extent is
// known exactly, so no estimation is involved.
func viewportFraction(offset, view, total int) (start, end float32) {
	if total <= 0 {
		return 0, 1
	}
	start = clamp1(float32(offset) / float32(total))
	end = clamp1(float32(offset+view) / float32(total))
	if end < start {
		start, end = end, start
	}
	return start, end
}

// clamp1 limits v to range [0..1].
func clamp1(v float32) float32 {
	if v >= 1 {
		return 1
	} else if v <= 0 {
		return 0
	} else {
		return v
	}
}
