// Package draw renders the demo surface content.
package draw

import (
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"

	"github.com/lucasb-eyer/go-colorful"
)

// Tile grid of the test card.
const (
	CardCols = 16
	CardRows = 12
)

// Corner colors of the test card; tiles blend between them in HCL space.
var (
	cardTopLeft     = colorful.Color{R: 0.16, G: 0.35, B: 0.65}
	cardTopRight    = colorful.Color{R: 0.85, G: 0.42, B: 0.12}
	cardBottomLeft  = colorful.Color{R: 0.16, G: 0.60, B: 0.35}
	cardBottomRight = colorful.Color{R: 0.70, G: 0.15, B: 0.40}

	zoneOutline = color.NRGBA{R: 255, G: 220, B: 90, A: 255}
	tileBorder  = color.NRGBA{R: 20, G: 22, B: 26, A: 255}
)

// Zone returns the highlighted target rectangle of a card of the given size,
// in unscaled content coordinates. The fit-zone shortcut zooms onto it.
func Zone(size image.Point) (x, y, w, h float64) {
	fw := float64(size.X)
	fh := float64(size.Y)
	return fw * 0.55, fh * 0.15, fw * 0.3, fh * 0.3
}

// Card fills the given area with the test card: a grid of tiles whose colors
// blend between the four corner colors, plus the highlighted target zone.
func Card(gtx layout.Context, size image.Point) {
	paint.FillShape(gtx.Ops, tileBorder, clip.Rect(image.Rect(0, 0, size.X, size.Y)).Op())

	for row := 0; row < CardRows; row++ {
		for col := 0; col < CardCols; col++ {
			fx := float64(col) / float64(CardCols-1)
			fy := float64(row) / float64(CardRows-1)

			top := cardTopLeft.BlendHcl(cardTopRight, fx)
			bottom := cardBottomLeft.BlendHcl(cardBottomRight, fx)
			tile := top.BlendHcl(bottom, fy).Clamped()

			r, g, b := tile.RGB255()
			rect := tileRect(size, col, row)
			paint.FillShape(gtx.Ops, color.NRGBA{R: r, G: g, B: b, A: 255}, clip.Rect(rect).Op())
		}
	}

	zx, zy, zw, zh := Zone(size)
	outlineRect(gtx, image.Rect(int(zx), int(zy), int(zx+zw), int(zy+zh)), 3, zoneOutline)
}

// tileRect returns the pixel rect of a tile, inset by a 1px border.
func tileRect(size image.Point, col, row int) image.Rectangle {
	x0 := col * size.X / CardCols
	y0 := row * size.Y / CardRows
	x1 := (col + 1) * size.X / CardCols
	y1 := (row + 1) * size.Y / CardRows
	return image.Rect(x0+1, y0+1, x1-1, y1-1)
}

// outlineRect strokes a rectangle with four filled bars.
func outlineRect(gtx layout.Context, r image.Rectangle, width int, col color.NRGBA) {
	bars := []image.Rectangle{
		image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+width),
		image.Rect(r.Min.X, r.Max.Y-width, r.Max.X, r.Max.Y),
		image.Rect(r.Min.X, r.Min.Y, r.Min.X+width, r.Max.Y),
		image.Rect(r.Max.X-width, r.Min.Y, r.Max.X, r.Max.Y),
	}
	for _, bar := range bars {
		paint.FillShape(gtx.Ops, col, clip.Rect(bar).Op())
	}
}
