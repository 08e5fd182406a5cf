package flow

import (
	"image"
	"testing"

	"gioui.org/layout"
)

func TestLineThickness(t *testing.T) {
	ln := &line{}
	ln.items = []*Attributes{
		{Size: image.Pt(100, 50)},
		{Size: image.Pt(60, 80)},
		{Size: image.Pt(40, 30)},
	}

	if got := ln.thickness(layout.Vertical); got != 80 {
		t.Errorf("vertical thickness: got %d, want 80", got)
	}
	if got := ln.thickness(layout.Horizontal); got != 100 {
		t.Errorf("horizontal thickness: got %d, want 100", got)
	}
}

func TestLineAlignOffsetUnclosed(t *testing.T) {
	ln := &line{capacity: 400, used: 320}
	if got := ln.alignOffset(AlignRight); got != 0 {
		t.Errorf("open line must not shift: got %d", got)
	}

	ln.close()
	if ln.margin != 80 {
		t.Fatalf("margin after close: got %d, want 80", ln.margin)
	}
	if got := ln.alignOffset(AlignRight); got != 80 {
		t.Errorf("trailing offset: got %d, want 80", got)
	}
	if got := ln.alignOffset(AlignCenter); got != 40 {
		t.Errorf("centered offset: got %d, want 40", got)
	}
}

func TestLinePlace(t *testing.T) {
	a := &Attributes{Size: image.Pt(100, 50)}
	b := &Attributes{Size: image.Pt(100, 50)}
	ln := &line{spacing: 10, capacity: 400, items: []*Attributes{a, b}}
	ln.used = 210
	ln.close()

	ln.place(layout.Vertical, 30, 5, AlignLeft)

	if want := image.Rect(5, 30, 105, 80); a.Frame != want {
		t.Errorf("first item frame: got %v, want %v", a.Frame, want)
	}
	// the second item is offset by the first's extent plus spacing,
	// the first gets no leading spacing.
	if want := image.Rect(115, 30, 215, 80); b.Frame != want {
		t.Errorf("second item frame: got %v, want %v", b.Frame, want)
	}
}
