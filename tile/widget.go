package tile

import (
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
)

const defaultRadius = 6

// Img is a widget drawing a Tile scaled to cover its constraints. If
// Radius is non-zero the image is cropped with a rounded rectangle.
type Img struct {
	src    *Tile
	op     paint.ImageOp
	Radius unit.Dp
	Fit    widget.Fit
}

func NewImg(src *Tile) *Img {
	return &Img{
		src:    src,
		Radius: unit.Dp(defaultRadius),
		Fit:    widget.Cover,
	}
}

func (im *Img) Layout(gtx layout.Context) layout.Dimensions {
	size := gtx.Constraints.Max
	defer clip.UniformRRect(image.Rectangle{Max: size}, gtx.Dp(im.Radius)).Push(gtx.Ops).Pop()

	// The op is assigned only from a ready tile, never while the
	// download is in flight, so a finished load replaces the
	// placeholder on the next frame.
	if im.src == nil || im.src.Loading() {
		return im.layoutEmpty(gtx)
	}

	if im.op == (paint.ImageOp{}) {
		op := im.src.Op(size)
		if op == nil {
			return im.layoutEmpty(gtx)
		}
		im.op = *op
	}

	img := widget.Image{
		Src:      im.op,
		Scale:    1.0 / gtx.Metric.PxPerDp,
		Fit:      im.Fit,
		Position: layout.Center,
	}
	gtx.Constraints.Min = size
	gtx.Constraints.Max = size
	return img.Layout(gtx)
}

func (im *Img) layoutEmpty(gtx layout.Context) layout.Dimensions {
	src := image.NewUniform(color.NRGBA{R: 225, G: 225, B: 225, A: 255})
	img := widget.Image{Src: paint.NewImageOp(src), Fit: widget.Cover}
	img.Scale = 1.0 / gtx.Metric.PxPerDp
	gtx.Constraints.Min = gtx.Constraints.Max
	return img.Layout(gtx)
}
