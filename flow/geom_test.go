package flow

import (
	"image"
	"testing"

	"gioui.org/layout"
)

func TestAxisRect(t *testing.T) {
	vert := AxisRect(layout.Vertical, 100, 10, 50, 200)
	if want := image.Rect(10, 100, 210, 150); vert != want {
		t.Errorf("vertical: got %v, want %v", vert, want)
	}
	horiz := AxisRect(layout.Horizontal, 100, 10, 50, 200)
	if want := image.Rect(100, 10, 150, 210); horiz != want {
		t.Errorf("horizontal: got %v, want %v", horiz, want)
	}
}

func TestInsetsCross(t *testing.T) {
	in := Insets{Top: 1, Right: 2, Bottom: 3, Left: 4}
	if got := in.cross(layout.Vertical); got != 6 {
		t.Errorf("vertical cross insets: got %d, want 6", got)
	}
	if got := in.cross(layout.Horizontal); got != 4 {
		t.Errorf("horizontal cross insets: got %d, want 4", got)
	}
}
