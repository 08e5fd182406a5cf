package tile

import (
	"image"
	"testing"
)

func TestTileLoadPublishes(t *testing.T) {
	notified := false
	tl := &Tile{location: "https://host/c.png", loading: true, onLoad: func() { notified = true }}

	if !tl.Loading() {
		t.Fatal("tile must report loading before finish")
	}
	if tl.Op(image.Pt(4, 4)) != nil {
		t.Error("Op while loading must be nil")
	}

	tl.finish(encodeTestImage(t, image.Pt(6, 4)), nil)

	if tl.Loading() {
		t.Error("tile still reports loading after finish")
	}
	if !notified {
		t.Error("completion callback was not invoked")
	}
	if tl.Err() != nil {
		t.Errorf("unexpected load error: %v", tl.Err())
	}
	if got := tl.Size(); got != image.Pt(6, 4) {
		t.Errorf("size: got %v, want (6, 4)", got)
	}

	// aspect fit within a 3x3 box: 6x4 scales to 3x2.
	op := tl.Op(image.Pt(3, 3))
	if op == nil {
		t.Fatal("Op of a loaded tile must not be nil")
	}
	if got := op.Size(); got != image.Pt(3, 2) {
		t.Errorf("scaled op size: got %v, want (3, 2)", got)
	}
}

func TestFromBytes(t *testing.T) {
	tl := FromBytes(encodeTestImage(t, image.Pt(5, 7)))
	if tl.Err() != nil {
		t.Fatalf("unexpected error: %v", tl.Err())
	}
	if got := tl.Size(); got != image.Pt(5, 7) {
		t.Errorf("size: got %v, want (5, 7)", got)
	}
}
