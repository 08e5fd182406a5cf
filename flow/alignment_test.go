package flow

import (
	"testing"

	"gioui.org/layout"
)

func TestAlignmentNormalize(t *testing.T) {
	cases := []struct {
		in       Alignment
		axis     layout.Axis
		want     Alignment
		remapped bool
	}{
		{AlignLeft, layout.Vertical, AlignLeft, false},
		{AlignCenter, layout.Vertical, AlignCenter, false},
		{AlignRight, layout.Vertical, AlignRight, false},
		{AlignTop, layout.Horizontal, AlignTop, false},
		{AlignMiddle, layout.Horizontal, AlignMiddle, false},
		{AlignBottom, layout.Horizontal, AlignBottom, false},

		{AlignLeft, layout.Horizontal, AlignTop, true},
		{AlignCenter, layout.Horizontal, AlignMiddle, true},
		{AlignRight, layout.Horizontal, AlignBottom, true},
		{AlignTop, layout.Vertical, AlignLeft, true},
		{AlignMiddle, layout.Vertical, AlignCenter, true},
		{AlignBottom, layout.Vertical, AlignRight, true},
	}

	for _, tc := range cases {
		got, remapped := tc.in.normalize(tc.axis)
		if got != tc.want || remapped != tc.remapped {
			t.Errorf("%s on %s: got (%s, %v), want (%s, %v)",
				tc.in, tc.axis, got, remapped, tc.want, tc.remapped)
		}
	}
}

func TestAlignmentOffset(t *testing.T) {
	cases := []struct {
		align  Alignment
		margin int
		want   int
	}{
		{AlignLeft, 80, 0},
		{AlignCenter, 80, 40},
		{AlignRight, 80, 80},
		{AlignTop, 80, 0},
		{AlignMiddle, 80, 40},
		{AlignBottom, 80, 80},
		{AlignCenter, 0, 0},
	}

	for _, tc := range cases {
		if got := tc.align.offset(tc.margin); got != tc.want {
			t.Errorf("%s with margin %d: got %d, want %d", tc.align, tc.margin, got, tc.want)
		}
	}
}
