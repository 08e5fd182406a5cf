package main

import (
	"fmt"
	"image"
	"strconv"

	"gioui.org/app"
	"gioui.org/layout"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"gioui.org/x/component"
	"golang.org/x/exp/shiny/materialdesign/icons"

	"github.com/oligo/flowgrid/flow"
	"github.com/oligo/flowgrid/tile"
	grid "github.com/oligo/flowgrid/widget"
)

const (
	sectionCovers = iota
	sectionAvatars
	sectionLive
)

var sectionTitles = []string{"Covers", "Avatars", "Live feed"}

// Gallery shows three sections of remote images in a flow grid and a
// small control bar to poke at the engine parameters.
type Gallery struct {
	window *app.Window
	theme  *material.Theme
	engine *flow.Engine
	grid   *grid.Grid
	feed   *feedClient

	covers  []*tile.Img
	avatars []*tile.Img
	live    []*tile.Img

	axisBtn   widget.Clickable
	alignBtn  widget.Clickable
	limitEdit component.TextField
	alignment flow.Alignment
	rowLimit  int
}

func NewGallery(w *app.Window, feedURL string) *Gallery {
	g := &Gallery{
		window:    w,
		alignment: flow.AlignLeft,
	}

	for i := 0; i < 24; i++ {
		loc := fmt.Sprintf("https://picsum.photos/seed/cover%d/400/300", i)
		g.covers = append(g.covers, tile.NewImg(tile.FromLocation(loc, w.Invalidate)))
	}
	for i := 0; i < 36; i++ {
		loc := fmt.Sprintf("https://picsum.photos/seed/face%d/200/200", i)
		g.avatars = append(g.avatars, tile.NewImg(tile.FromLocation(loc, w.Invalidate)))
	}

	if feedURL != "" {
		fc, err := dialFeed(feedURL, w.Invalidate)
		if err != nil {
			fmt.Printf("feed unavailable: %v\n", err)
		} else {
			g.feed = fc
		}
	}

	g.engine = flow.NewEngine(g)
	g.grid = grid.NewGrid(g.engine)
	g.limitEdit.SingleLine = true
	g.limitEdit.Alignment = text.Middle
	return g
}

// Sections and Items implement flow.Source.
func (g *Gallery) Sections() int {
	if g.feed == nil {
		return 2
	}
	return 3
}

func (g *Gallery) Items(section int) int {
	switch section {
	case sectionCovers:
		return len(g.covers)
	case sectionAvatars:
		return len(g.avatars)
	default:
		return len(g.live)
	}
}

func (g *Gallery) tileAt(attr flow.Attributes) *tile.Img {
	switch attr.Section {
	case sectionCovers:
		return g.covers[attr.Index]
	case sectionAvatars:
		return g.avatars[attr.Index]
	default:
		return g.live[attr.Index]
	}
}

func (g *Gallery) configure(gtx C) {
	dp := func(v unit.Dp) int { return gtx.Dp(v) }

	g.engine.Insets = flow.Insets{Top: dp(8), Right: dp(12), Bottom: dp(8), Left: dp(12)}
	g.engine.LineSpacing = dp(10)
	g.engine.ItemSpacing = dp(10)
	// Square reference size, so the title bar keeps its extent along
	// whichever axis the grid scrolls.
	g.engine.HeaderSize = image.Pt(dp(36), dp(36))
	g.engine.Alignment = g.alignment
	g.engine.RowLimit = g.rowLimit

	g.engine.Config = flow.Config{
		ItemSize: func(section, item int) (image.Point, bool) {
			switch section {
			case sectionCovers:
				w := dp(unit.Dp(120 + (item%5)*30))
				h := dp(unit.Dp(90 + (item%3)*40))
				return image.Pt(w, h), true
			case sectionAvatars:
				return image.Pt(dp(96), dp(96)), true
			default:
				return image.Pt(dp(120), dp(120)), true
			}
		},
	}
}

func (g *Gallery) Layout(gtx C, th *material.Theme) D {
	g.theme = th
	if g.feed != nil {
		for _, loc := range g.feed.drain() {
			g.live = append(g.live, tile.NewImg(tile.FromLocation(loc, g.window.Invalidate)))
			g.grid.Invalidate()
		}
	}

	g.configure(gtx)

	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(func(gtx C) D {
			return g.layoutControls(gtx, th)
		}),
		layout.Flexed(1, func(gtx C) D {
			gs := grid.NewGridStyle(th, g.grid)
			return gs.Layout(gtx, g.layoutCell, g.layoutHeader, nil)
		}),
	)
}

func (g *Gallery) layoutCell(gtx C, attr flow.Attributes) D {
	return g.tileAt(attr).Layout(gtx)
}

func (g *Gallery) layoutHeader(gtx C, attr flow.Attributes) D {
	surface := component.Surface(g.theme)
	surface.Fill = g.theme.Bg
	return surface.Layout(gtx, func(gtx C) D {
		inset := layout.Inset{Left: unit.Dp(12), Top: unit.Dp(8)}
		return inset.Layout(gtx, func(gtx C) D {
			title := fmt.Sprintf("%s (%d)", sectionTitles[attr.Section], g.Items(attr.Section))
			return material.H6(g.theme, title).Layout(gtx)
		})
	})
}

func (g *Gallery) layoutControls(gtx C, th *material.Theme) D {
	if g.axisBtn.Clicked(gtx) {
		if g.engine.Axis == layout.Vertical {
			g.engine.Axis = layout.Horizontal
		} else {
			g.engine.Axis = layout.Vertical
		}
		g.grid.Invalidate()
	}
	if g.alignBtn.Clicked(gtx) {
		g.alignment = nextAlignment(g.alignment)
		g.grid.Invalidate()
	}
	if limit, err := strconv.Atoi(g.limitEdit.Text()); err == nil && limit != g.rowLimit {
		g.rowLimit = limit
		g.grid.Invalidate()
	}

	inset := layout.UniformInset(unit.Dp(8))
	return inset.Layout(gtx, func(gtx C) D {
		return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle, Spacing: layout.SpaceBetween}.Layout(gtx,
			layout.Rigid(func(gtx C) D {
				btn := material.IconButton(th, &g.axisBtn, axisIcon, "toggle axis")
				btn.Size = unit.Dp(20)
				btn.Inset = layout.UniformInset(unit.Dp(6))
				return btn.Layout(gtx)
			}),
			layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
			layout.Rigid(func(gtx C) D {
				btn := material.Button(th, &g.alignBtn, "Align: "+g.alignment.String())
				return btn.Layout(gtx)
			}),
			layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
			layout.Flexed(1, func(gtx C) D {
				gtx.Constraints.Max.X = gtx.Dp(unit.Dp(160))
				return g.limitEdit.Layout(gtx, th, "Row limit")
			}),
		)
	})
}

func nextAlignment(a flow.Alignment) flow.Alignment {
	switch a {
	case flow.AlignLeft:
		return flow.AlignCenter
	case flow.AlignCenter:
		return flow.AlignRight
	default:
		return flow.AlignLeft
	}
}

var axisIcon, _ = widget.NewIcon(icons.ActionViewModule)
