// Package tile loads and scales images for grid cells. A Tile wraps a
// local or remote image, decodes it lazily and caches the last scaled
// version, so a scrolling grid does not re-decode on every frame. Only
// the formats registered with the standard image package are supported;
// register jpeg/png/gif decoders in the importing program.
package tile

import (
	"bytes"
	"image"
	"log"
	"os"
	"strings"
	"sync"

	"gioui.org/op/paint"
	"golang.org/x/image/draw"
)

// Tile is one image used as cell content. When displaying, the image is
// scaled to the requested size and the result cached.
type Tile struct {
	location string
	onLoad   func()

	// mu guards the decoded state below: the download goroutine
	// publishes it in finish while the frame loop reads it every frame.
	mu      sync.Mutex
	src     []byte
	srcSize image.Point
	// the name of the registered image format, like "jpeg" or "png".
	format  string
	loading bool
	loadErr error

	// the last scaled image. Touched by the frame loop only.
	cache *paint.ImageOp
}

// FromBytes builds a tile from an in-memory encoded image.
func FromBytes(src []byte) *Tile {
	t := &Tile{location: "memory"}
	t.finish(src, nil)
	return t
}

// FromLocation builds a tile from a filesystem path or a http(s) URL.
// Remote tiles load asynchronously; until the download finishes the
// tile is not ready and draws as a placeholder. onLoad, if non-nil,
// runs once the load completed (successfully or not) — wire a window's
// Invalidate here so the image appears as soon as it is ready.
func FromLocation(location string, onLoad func()) *Tile {
	t := &Tile{location: location, onLoad: onLoad}
	t.load()
	return t
}

func decodeConfig(src []byte) (image.Point, string, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(src))
	if err != nil {
		return image.Point{}, "", err
	}
	return image.Pt(cfg.Width, cfg.Height), format, nil
}

// Remote checks if the tile is loaded, or to be loaded, from network.
func (t *Tile) Remote() bool {
	return strings.HasPrefix(t.location, "http://") || strings.HasPrefix(t.location, "https://")
}

// load reads the tile source, from network asynchronously.
func (t *Tile) load() {
	if t.location == "memory" {
		return
	}

	if !t.Remote() {
		buf, err := os.ReadFile(t.location)
		t.finish(buf, err)
		return
	}

	t.loading = true
	go func() {
		buf, err := fetch(t.location)
		t.finish(buf, err)
	}()
}

// finish publishes the outcome of a load in one step and notifies the
// onLoad callback. Safe to call from the download goroutine.
func (t *Tile) finish(buf []byte, err error) {
	var size image.Point
	var format string
	if err == nil {
		size, format, err = decodeConfig(buf)
	}

	t.mu.Lock()
	t.src = buf
	t.srcSize = size
	t.format = format
	t.loadErr = err
	t.loading = false
	t.mu.Unlock()

	if t.onLoad != nil {
		t.onLoad()
	}
}

// Loading reports whether a remote tile is still downloading.
func (t *Tile) Loading() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.loading
}

func (t *Tile) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.loadErr
}

// Size returns the unscaled image size. It is zero while a remote tile
// is still loading.
func (t *Tile) Size() image.Point {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.srcSize
}

// ScaleTo decodes and scales the tile to exactly size, caching the
// result for repeated frames.
func (t *Tile) ScaleTo(size image.Point) (*paint.ImageOp, error) {
	t.mu.Lock()
	src := t.src
	srcSize := t.srcSize
	t.mu.Unlock()

	if size == (image.Point{}) {
		size = srcSize
	}
	if t.cache != nil && size == t.cache.Size() {
		return t.cache, nil
	}

	img, _, err := image.Decode(bytes.NewReader(src))
	if err != nil {
		return nil, err
	}

	dest := image.NewRGBA(image.Rectangle{Max: size})
	draw.ApproxBiLinear.Scale(dest, dest.Bounds(), img, img.Bounds(), draw.Src, nil)
	op := paint.NewImageOp(dest)
	t.cache = &op
	return t.cache, nil
}

// Op scales the tile preserving its aspect ratio so that it fits within
// size, and converts it to a Gio ImageOp. It returns nil while a remote
// tile is still loading and after a failed load.
func (t *Tile) Op(size image.Point) *paint.ImageOp {
	t.mu.Lock()
	srcSize := t.srcSize
	ready := !t.loading && t.loadErr == nil && srcSize != (image.Point{})
	t.mu.Unlock()
	if !ready {
		return nil
	}

	ratio := min(
		float32(size.X)/float32(srcSize.X),
		float32(size.Y)/float32(srcSize.Y),
	)
	scaled := image.Point{
		X: int(float32(srcSize.X) * ratio),
		Y: int(float32(srcSize.Y) * ratio),
	}
	op, err := t.ScaleTo(scaled)
	if err != nil {
		log.Printf("tile: scaling %s failed: %v", t.location, err)
		return nil
	}
	return op
}
