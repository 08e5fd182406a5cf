package widget

import (
	"testing"
)

func TestViewportFraction(t *testing.T) {
	testcases := []struct {
		offset, view, total int
		start, end          float32
	}{
		{0, 100, 400, 0, 0.25},
		{100, 100, 400, 0.25, 0.5},
		{300, 100, 400, 0.75, 1},
		{350, 100, 400, 0.875, 1}, // overscrolled past the end
		{0, 400, 400, 0, 1},
		{0, 500, 400, 0, 1}, // viewport larger than content
		{0, 100, 0, 0, 1},   // no content
	}

	for _, tc := range testcases {
		start, end := viewportFraction(tc.offset, tc.view, tc.total)
		if start != tc.start || end != tc.end {
			t.Errorf("viewportFraction(%d, %d, %d): got (%v, %v), want (%v, %v)",
				tc.offset, tc.view, tc.total, start, end, tc.start, tc.end)
		}
	}
}
