package flow

import (
	"gioui.org/layout"
)

// A section is an ordered, independently configured group of items plus
// an optional header and footer. It packs items into lines during the
// wrap pass and assigns frames during the position pass.
type section struct {
	index       int
	insets      Insets
	lineSpacing int
	itemSpacing int
	alignment   Alignment
	// rowLimit caps the number of positioned lines; zero means
	// unlimited. Lines beyond the limit are packed but never placed
	// and never reach the caches.
	rowLimit int
	// capacity is the cross-axis space available to every line.
	capacity int

	header *Attributes
	footer *Attributes
	lines  []*line

	origin int
	extent int
}

// pack appends one item, starting a new line when the current one
// cannot take it. An item wider than the line capacity is clamped
// across the line, keeping its extent along the scroll axis, so wrap
// accounting stays consistent; it is never rejected.
func (s *section) pack(axis layout.Axis, attr *Attributes) {
	cross := crossExtent(axis, attr.Size)
	if cross > s.capacity {
		cross = max(s.capacity, 0)
		attr.Size = axisPt(axis, mainExtent(axis, attr.Size), cross)
	}

	cur := s.last()
	if cur == nil {
		cur = s.newLine()
	}
	next := cur.used + cross
	if len(cur.items) > 0 {
		next += cur.spacing
		if next > cur.capacity {
			cur.close()
			cur = s.newLine()
			next = cross
		}
	}
	cur.used = next
	cur.items = append(cur.items, attr)
}

// closeLast freezes the remaining margin of the still-open last line.
// Called once after the last item of the section has been packed.
func (s *section) closeLast() {
	if ln := s.last(); ln != nil && !ln.closed {
		ln.close()
	}
}

func (s *section) last() *line {
	if len(s.lines) == 0 {
		return nil
	}
	return s.lines[len(s.lines)-1]
}

func (s *section) newLine() *line {
	ln := &line{spacing: s.itemSpacing, capacity: s.capacity}
	s.lines = append(s.lines, ln)
	return ln
}

// visibleLines returns the lines the position pass will place, the row
// limit applied.
func (s *section) visibleLines() []*line {
	if s.rowLimit > 0 && len(s.lines) > s.rowLimit {
		return s.lines[:s.rowLimit]
	}
	return s.lines
}

// position assigns frames to the header, the visible lines and the
// footer. origin is the section's start along the scroll axis,
// containerCross the container's fixed cross extent. It returns the
// position where the next section starts.
//
// Within a section the order is: header, leading inset, lines separated
// by lineSpacing, trailing inset, footer. Headers and footers span the
// full cross extent; only lines are inset.
func (s *section) position(axis layout.Axis, origin, containerCross int) int {
	s.origin = origin
	cur := origin

	if s.header != nil {
		s.header.Frame = AxisRect(axis, cur, 0, mainExtent(axis, s.header.Size), containerCross)
		cur += mainExtent(axis, s.header.Size)
	}

	cur += s.insets.mainLeading(axis)
	lines := s.visibleLines()
	for i, ln := range lines {
		ln.place(axis, cur, s.insets.crossLeading(axis), s.alignment)
		cur += ln.thickness(axis)
		if i < len(lines)-1 {
			cur += s.lineSpacing
		}
	}
	cur += s.insets.mainTrailing(axis)

	if s.footer != nil {
		s.footer.Frame = AxisRect(axis, cur, 0, mainExtent(axis, s.footer.Size), containerCross)
		cur += mainExtent(axis, s.footer.Size)
	}

	s.extent = cur - origin
	return cur
}

// empty reports whether the section contributes nothing to the layout.
// Empty sections are omitted entirely.
func (s *section) empty() bool {
	return len(s.lines) == 0 && s.header == nil && s.footer == nil
}
