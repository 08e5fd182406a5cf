package flow

import (
	"image"
	"testing"

	"gioui.org/layout"
)

func packAll(s *section, axis layout.Axis, sizes ...image.Point) {
	for i, sz := range sizes {
		s.pack(axis, &Attributes{Kind: Cell, Section: s.index, Index: i, Size: sz})
	}
	s.closeLast()
}

func TestPackWrapsOnOverflow(t *testing.T) {
	s := &section{itemSpacing: 10, capacity: 400}
	sz := image.Pt(100, 50)
	packAll(s, layout.Vertical, sz, sz, sz, sz)

	// 100+10+100+10+100 = 320 fits, a fourth item would need 430.
	if len(s.lines) != 2 {
		t.Fatalf("lines: got %d, want 2", len(s.lines))
	}
	if n := len(s.lines[0].items); n != 3 {
		t.Errorf("first line items: got %d, want 3", n)
	}
	if n := len(s.lines[1].items); n != 1 {
		t.Errorf("second line items: got %d, want 1", n)
	}
	if s.lines[0].margin != 80 {
		t.Errorf("first line margin: got %d, want 80", s.lines[0].margin)
	}
}

func TestPackExactFitStays(t *testing.T) {
	s := &section{itemSpacing: 10, capacity: 320}
	sz := image.Pt(100, 50)
	packAll(s, layout.Vertical, sz, sz, sz)

	// consuming the capacity exactly is not an overflow.
	if len(s.lines) != 1 {
		t.Fatalf("lines: got %d, want 1", len(s.lines))
	}
	if s.lines[0].margin != 0 {
		t.Errorf("margin: got %d, want 0", s.lines[0].margin)
	}
}

func TestPackClampsOversizedItem(t *testing.T) {
	s := &section{capacity: 180}
	packAll(s, layout.Vertical, image.Pt(300, 40))

	it := s.lines[0].items[0]
	if it.Size != image.Pt(180, 40) {
		t.Errorf("clamped size: got %v, want (180, 40)", it.Size)
	}
}

func TestPositionWithHeaderFooterAndInsets(t *testing.T) {
	s := &section{
		itemSpacing: 10,
		lineSpacing: 10,
		insets:      Insets{Top: 8, Right: 10, Bottom: 12, Left: 10},
		capacity:    380,
		header:      &Attributes{Kind: Header, Size: image.Pt(400, 20)},
		footer:      &Attributes{Kind: Footer, Size: image.Pt(400, 16)},
	}
	sz := image.Pt(100, 50)
	packAll(s, layout.Vertical, sz, sz, sz, sz)

	end := s.position(layout.Vertical, 100, 400)

	// header at the leading edge, full cross extent, not inset.
	if want := image.Rect(0, 100, 400, 120); s.header.Frame != want {
		t.Errorf("header frame: got %v, want %v", s.header.Frame, want)
	}
	// first line starts after the header and the top inset, items
	// after the left inset.
	first := s.lines[0].items[0]
	if want := image.Rect(10, 128, 110, 178); first.Frame != want {
		t.Errorf("first item frame: got %v, want %v", first.Frame, want)
	}
	// second line after thickness + line spacing.
	second := s.lines[1].items[0]
	if want := image.Rect(10, 188, 110, 238); second.Frame != want {
		t.Errorf("second line frame: got %v, want %v", second.Frame, want)
	}
	// footer after the bottom inset.
	if want := image.Rect(0, 250, 400, 266); s.footer.Frame != want {
		t.Errorf("footer frame: got %v, want %v", s.footer.Frame, want)
	}
	if end != 266 {
		t.Errorf("section end: got %d, want 266", end)
	}
	if s.extent != 166 {
		t.Errorf("section extent: got %d, want 166", s.extent)
	}
}

func TestPositionAppliesRowLimit(t *testing.T) {
	s := &section{itemSpacing: 10, lineSpacing: 10, rowLimit: 1, capacity: 400}
	sz := image.Pt(100, 50)
	packAll(s, layout.Vertical, sz, sz, sz, sz, sz)

	end := s.position(layout.Vertical, 0, 400)

	// only the first line is placed; the dropped line adds no extent.
	if end != 50 {
		t.Errorf("section end: got %d, want 50", end)
	}
	if got := len(s.visibleLines()); got != 1 {
		t.Errorf("visible lines: got %d, want 1", got)
	}
	if dropped := s.lines[1].items[0]; dropped.Frame != (image.Rectangle{}) {
		t.Errorf("dropped item must stay unplaced, got frame %v", dropped.Frame)
	}
}

func TestSectionEmpty(t *testing.T) {
	s := &section{capacity: 400}
	if !s.empty() {
		t.Error("section without items, header or footer must be empty")
	}
	s.header = &Attributes{Kind: Header, Size: image.Pt(400, 20)}
	if s.empty() {
		t.Error("section with a header is not empty")
	}
}
