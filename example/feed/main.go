// The feed backend for the flowgrid gallery demo. It embeds a NATS
// server, publishes a new tile location on "gallery.tiles" every few
// seconds and serves the tiles as generated avatar JPEGs over HTTP.
// A go-app shell answers every other route as a small status page.
//go:build !wasm

package main

import (
	"time"

	"github.com/maxence-charriere/go-app/v9/pkg/app"
)

func main() {
	Front()

	// No-op outside the browser; keeps the route table shared with a
	// wasm build of the status page.
	app.RunWhenOnBrowser()

	ah := &app.Handler{
		Name:               "flowgrid feed",
		Lang:               "en",
		Title:              "flowgrid feed",
		Description:        "Tile feed backend for the flowgrid gallery demo",
		LoadingLabel:       "Loading...",
		AutoUpdateInterval: 5 * time.Second,
	}

	Back(ah)
}

type status struct{ app.Compo }

// Render is what robots and plain curl requests get to see.
func (c *status) Render() app.UI {
	return app.Div().Text("The feed backend is running. Tiles are served under /tiles/.")
}

func Front() {
	app.RouteWithRegexp("/.*", &status{})
}

func Back(ah *app.Handler) {
	Create(ah)
}
