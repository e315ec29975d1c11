// Package view owns the authoritative viewport state (zoom, translation,
// cursor) and applies gesture results to it.
package view

import (
	"math"

	"github.com/elektrokombinacija/surfview/internal/geom"
)

// centerSnap is the distance in pixels under which a centering pan snaps the
// translation exactly to zero. Prevents jitter when the surface should sit
// centered but floating-point drift keeps it slightly off.
const centerSnap = 5

// Cursor is the pointer style hint derived from which pan axes are movable.
type Cursor int

const (
	CursorAuto Cursor = iota
	CursorMove
	CursorEWResize
	CursorNSResize
)

func (c Cursor) String() string {
	return [...]string{"auto", "move", "ew-resize", "ns-resize"}[c]
}

// Viewport is the host's usable window size in pixels.
type Viewport struct {
	Width, Height float64
}

// Config holds the per-session engine options.
type Config struct {
	MinZoom        float64 // Lowest zoom level (1.0 = unscaled)
	MaxZoom        float64 // Highest zoom level
	ScrollVelocity float64 // Zoom step per wheel event
	LeftBoundary   float64 // Screen-relative insets restricting the pannable zone
	RightBoundary  float64
	TopBoundary    float64
	BottomBoundary float64
	AnimDuration   float64 // Transition length in seconds

	// OnZoomChange, when set, is called once per committed zoom change.
	OnZoomChange func(zoom float64)
}

// DefaultConfig returns the stock engine options.
func DefaultConfig() Config {
	return Config{
		MinZoom:        1,
		MaxZoom:        5,
		ScrollVelocity: 0.1,
		AnimDuration:   0.25,
	}
}

// State is the committed viewport state.
type State struct {
	Zoom          float64 // Scale factor, MinZoom <= Zoom <= MaxZoom
	Pos           geom.Point
	Cursor        Cursor
	UseTransition bool // Whether the next visual update should animate
}

// InitialState returns the state a freshly created or reset controller holds.
func InitialState() State {
	return State{
		Zoom:          1,
		Cursor:        CursorAuto,
		UseTransition: true,
	}
}

// Transform describes the visual transform a collaborator should apply to the
// surface.
type Transform struct {
	Scale      float64
	TranslateX float64
	TranslateY float64
	Animate    bool
	Duration   float64 // Seconds, meaningful when Animate is set
}

// ApplyFunc receives every committed transform together with the cursor hint.
type ApplyFunc func(t Transform, cursor Cursor)

// Controller mediates all viewport state changes.
type Controller struct {
	cfg   Config
	state State
	apply ApplyFunc
}

// NewController creates a controller at the initial state. apply may be nil.
func NewController(cfg Config, apply ApplyFunc) *Controller {
	return &Controller{
		cfg:   cfg,
		state: InitialState(),
		apply: apply,
	}
}

// Config returns the session options.
func (c *Controller) Config() Config {
	return c.cfg
}

// State returns the committed viewport state.
func (c *Controller) State() State {
	return c.state
}

// Zoom returns the committed zoom level.
func (c *Controller) Zoom() float64 {
	return c.state.Zoom
}

// commit installs the new state, notifies the apply callback and, if the zoom
// changed, the zoom-change callback.
func (c *Controller) commit(s State) {
	prevZoom := c.state.Zoom
	c.state = s

	if c.apply != nil {
		c.apply(Transform{
			Scale:      s.Zoom,
			TranslateX: s.Pos.X,
			TranslateY: s.Pos.Y,
			Animate:    s.UseTransition,
			Duration:   c.cfg.AnimDuration,
		}, s.Cursor)
	}
	if c.cfg.OnZoomChange != nil && s.Zoom != prevZoom {
		c.cfg.OnZoomChange(s.Zoom)
	}
}

func (c *Controller) clampZoom(z float64) float64 {
	if z < c.cfg.MinZoom {
		return c.cfg.MinZoom
	}
	if z > c.cfg.MaxZoom {
		return c.cfg.MaxZoom
	}
	return z
}

// panAxis resolves one axis of a pan. When the surface overflows the
// boundary-constrained zone the shift is clamped against the zone edges; when
// it fits inside, only drifting back toward center is allowed.
func panAxis(pos, shift, minEdge, maxEdge, minLimit, maxLimit float64) (newPos float64, moved bool) {
	if maxEdge-minEdge > maxLimit-minLimit {
		clamped := geom.ClampShift(shift, minLimit, maxLimit, minEdge, maxEdge)
		return pos + clamped, true
	}

	if (pos > 0 && shift < 0) || (pos < 0 && shift > 0) {
		newPos = pos + shift
		if math.Abs(newPos) < centerSnap {
			newPos = 0
		}
		return newPos, true
	}
	return pos, false
}

// PanBy shifts the surface by (shiftX, shiftY), clamped per axis to the
// pannable zone. rect is the surface's current bounding rectangle, vp the
// host viewport. Continuous gesture: commits without transition.
func (c *Controller) PanBy(rect geom.Rect, vp Viewport, shiftX, shiftY float64) {
	s := c.state

	posX, movedX := panAxis(s.Pos.X, shiftX,
		rect.Left, rect.Right,
		c.cfg.LeftBoundary, vp.Width-c.cfg.RightBoundary)
	posY, movedY := panAxis(s.Pos.Y, shiftY,
		rect.Top, rect.Bottom,
		c.cfg.TopBoundary, vp.Height-c.cfg.BottomBoundary)

	s.Pos = geom.Point{X: posX, Y: posY}
	switch {
	case movedX && movedY:
		s.Cursor = CursorMove
	case movedX:
		s.Cursor = CursorEWResize
	case movedY:
		s.Cursor = CursorNSResize
	default:
		s.Cursor = CursorAuto
	}
	s.UseTransition = false
	c.commit(s)
}

// ZoomToPoint zooms to newZoom anchored at the focal point, clamping to the
// configured zoom range. animate selects whether the visual update should
// transition (discrete actions) or apply immediately (wheel, pinch).
func (c *Controller) ZoomToPoint(rect geom.Rect, focal geom.Point, newZoom float64, animate bool) {
	s := c.state
	z := c.clampZoom(newZoom)
	s.Pos = geom.ZoomPosition(rect, focal, z, s.Zoom, s.Pos)
	s.Zoom = z
	s.UseTransition = animate
	c.commit(s)
}

// ZoomToRest commits the given zoom with the surface returned to its rest
// position. Used when a wheel step lands exactly on the minimum zoom.
func (c *Controller) ZoomToRest(newZoom float64, animate bool) {
	s := c.state
	s.Zoom = c.clampZoom(newZoom)
	s.Pos = geom.Point{}
	s.UseTransition = animate
	c.commit(s)
}

// zoomBy adjusts the zoom by delta and rescales the translation
// proportionally, so repeated steps converge on the rest position as the zoom
// approaches 1.
func (c *Controller) zoomBy(delta float64) {
	s := c.state
	z := c.clampZoom(s.Zoom + delta)

	div := s.Zoom - 1
	if div == 0 {
		div = s.Zoom
	}
	s.Pos = geom.Point{
		X: s.Pos.X * (z - 1) / div,
		Y: s.Pos.Y * (z - 1) / div,
	}
	s.Zoom = z
	s.UseTransition = true
	c.commit(s)
}

// ZoomIn raises the zoom by delta, clamped to the configured maximum.
func (c *Controller) ZoomIn(delta float64) {
	c.zoomBy(delta)
}

// ZoomOut lowers the zoom by delta, clamped to the configured minimum.
func (c *Controller) ZoomOut(delta float64) {
	c.zoomBy(-delta)
}

// ZoomToZone zooms and pans so that a target rectangle, given in unscaled
// content coordinates, fills the boundary-constrained viewport. The zoom is
// capped at the configured maximum.
func (c *Controller) ZoomToZone(rect geom.Rect, vp Viewport, relX, relY, relWidth, relHeight float64) {
	if relWidth <= 0 || relHeight <= 0 {
		return
	}

	s := c.state
	availW := vp.Width - c.cfg.LeftBoundary - c.cfg.RightBoundary
	availH := vp.Height - c.cfg.TopBoundary - c.cfg.BottomBoundary

	z := math.Min(availW/relWidth, availH/relHeight)
	z = c.clampZoom(z)

	// Recover the surface's untransformed origin from the current rect,
	// translation and zoom; the scale is applied about the surface center.
	w0 := rect.Width() / s.Zoom
	h0 := rect.Height() / s.Zoom
	baseLeft := rect.Left - s.Pos.X - (1-s.Zoom)*w0/2
	baseTop := rect.Top - s.Pos.Y - (1-s.Zoom)*h0/2

	// Translation that puts the zone center at the center of the usable
	// viewport under the new zoom.
	zoneCX := relX + relWidth/2
	zoneCY := relY + relHeight/2
	s.Pos = geom.Point{
		X: c.cfg.LeftBoundary + availW/2 - baseLeft - w0/2 - z*(zoneCX-w0/2),
		Y: c.cfg.TopBoundary + availH/2 - baseTop - h0/2 - z*(zoneCY-h0/2),
	}
	s.Zoom = z
	s.UseTransition = true
	c.commit(s)
}

// ClearCursor restores the default cursor hint, leaving zoom and translation
// untouched. Called when a drag ends.
func (c *Controller) ClearCursor() {
	s := c.state
	s.Cursor = CursorAuto
	c.commit(s)
}

// Reset returns the viewport to its initial state.
func (c *Controller) Reset() {
	c.commit(InitialState())
}
