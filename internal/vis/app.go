// Package vis implements a Gio demo application for the viewport engine.
package vis

import (
	"fmt"
	"image/color"

	"gioui.org/app"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"

	"github.com/elektrokombinacija/surfview/internal/gesture"
	"github.com/elektrokombinacija/surfview/internal/view"
	"github.com/elektrokombinacija/surfview/internal/vis/draw"
)

// App is the demo application: one surface filling the window.
type App struct {
	ctrl    *view.Controller
	surface *Surface

	zoom      float64
	zoomStale bool
}

// NewApp creates the application with the given engine options.
func NewApp(cfg view.Config) *App {
	a := &App{zoom: 1}

	hostZoom := cfg.OnZoomChange
	cfg.OnZoomChange = func(z float64) {
		a.zoom = z
		a.zoomStale = true
		if hostZoom != nil {
			hostZoom(z)
		}
	}

	surface := NewSurface()
	ctrl := view.NewController(cfg, surface.Apply)
	surface.bind(ctrl, gesture.NewRecognizer(ctrl))

	a.ctrl = ctrl
	a.surface = surface
	return a
}

// Run starts the application event loop.
func (a *App) Run(w *app.Window) error {
	var ops op.Ops

	// Event filters for keyboard input
	tag := new(int)

	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err

		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)

			// Handle keyboard events
			for {
				ev, ok := gtx.Event(key.Filter{Focus: tag, Optional: key.ModShift})
				if !ok {
					break
				}
				if ke, ok := ev.(key.Event); ok && ke.State == key.Press {
					a.handleKeyEvent(ke)
				}
			}

			// Request focus for keyboard input
			event.Op(gtx.Ops, tag)

			a.layout(gtx)
			e.Frame(gtx.Ops)

			if a.zoomStale {
				a.zoomStale = false
				w.Option(app.Title(fmt.Sprintf("surfview %.0f%%", a.zoom*100)))
			}

			// Request continuous redraws while a transition runs
			if a.surface.Animating() {
				w.Invalidate()
			}
		}
	}
}

func (a *App) handleKeyEvent(e key.Event) {
	switch e.Name {
	case "+", "=":
		a.ctrl.ZoomIn(0.5)
	case "-":
		a.ctrl.ZoomOut(0.5)
	case "0", key.NameHome:
		a.ctrl.Reset()
	case "F":
		// Fit the highlighted zone of the test card
		x, y, w, h := draw.Zone(a.surface.size)
		a.ctrl.ZoomToZone(a.surface.Rect(), a.surface.Viewport(), x, y, w, h)
	}
}

func (a *App) layout(gtx layout.Context) layout.Dimensions {
	// Fill background
	paint.Fill(gtx.Ops, color.NRGBA{R: 30, G: 30, B: 35, A: 255})

	return a.surface.Layout(gtx)
}
