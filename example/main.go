// A gallery demo for the flowgrid layout engine. Run it standalone, or
// start example/feed first and pass -feed nats://127.0.0.1:8501 to see
// items streaming into the last section.
package main

import (
	"flag"
	"log"
	"os"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"gioui.org/app"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
	"gioui.org/widget/material"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

type UI struct {
	window  *app.Window
	theme   *material.Theme
	gallery *Gallery
}

func (ui *UI) Loop() error {
	var ops op.Ops
	for {
		e := ui.window.NextEvent()

		switch e := e.(type) {
		case app.DestroyEvent:
			return e.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			ui.gallery.Layout(gtx, ui.theme)
			e.Frame(gtx.Ops)
		}
	}
}

func main() {
	feedURL := flag.String("feed", "", "NATS URL of a running feed backend (see example/feed)")
	flag.Parse()

	go func() {
		w := app.NewWindow(app.Title("flowgrid gallery"), app.Size(unit.Dp(900), unit.Dp(640)))
		th := material.NewTheme()

		ui := &UI{window: w, theme: th, gallery: NewGallery(w, *feedURL)}
		if err := ui.Loop(); err != nil {
			log.Println(err)
			os.Exit(1)
		}
		os.Exit(0)
	}()

	app.Main()
}
