// Package gesture turns normalized pointer, touch and wheel events into view
// controller calls.
package gesture

import (
	"time"

	"github.com/elektrokombinacija/surfview/internal/geom"
	"github.com/elektrokombinacija/surfview/internal/view"
)

const (
	// doubleTapWindow bounds the gap between two taps that counts as a
	// double-tap, and the min gap between two fired double-taps.
	doubleTapWindow = 300 * time.Millisecond

	// pinchScale converts a pinch distance delta in pixels to a zoom delta.
	pinchScale = 100
)

// Session tracks the in-flight gesture. Cleared whenever the triggering
// sequence ends (pointer up/leave, touch end/cancel).
type Session struct {
	lastCursor *geom.Point
	lastTouch  *geom.Point

	// lastTouchDistance is the inter-contact distance from the previous
	// pinch sample. nil means no pinch baseline; a legitimate zero
	// distance stays distinguishable from "absent".
	lastTouchDistance *float64

	lastTouchTime     time.Time
	lastDoubleTapTime time.Time
}

// Recognizer classifies raw input sequences and drives the controller.
type Recognizer struct {
	ctrl    *view.Controller
	session Session
	now     func() time.Time
}

// NewRecognizer creates a recognizer bound to a controller.
func NewRecognizer(ctrl *view.Controller) *Recognizer {
	return &Recognizer{
		ctrl: ctrl,
		now:  time.Now,
	}
}

// Wheel applies one zoom step at the event position. A step that lands
// exactly on the minimum zoom returns the surface to its rest position.
func (r *Recognizer) Wheel(rect geom.Rect, pos geom.Point, deltaY float64) {
	cfg := r.ctrl.Config()

	z := r.ctrl.Zoom()
	if deltaY < 0 {
		z += cfg.ScrollVelocity
	} else {
		z -= cfg.ScrollVelocity
	}
	if z < cfg.MinZoom {
		z = cfg.MinZoom
	}
	if z > cfg.MaxZoom {
		z = cfg.MaxZoom
	}

	if z == cfg.MinZoom {
		r.ctrl.ZoomToRest(z, false)
		return
	}
	r.ctrl.ZoomToPoint(rect, pos, z, false)
}

// PointerDown starts a drag pan.
func (r *Recognizer) PointerDown(pos geom.Point) {
	p := pos
	r.session.lastCursor = &p
}

// PointerMove continues a drag pan. A move without a preceding down is a
// no-op.
func (r *Recognizer) PointerMove(rect geom.Rect, vp view.Viewport, pos geom.Point) {
	last := r.session.lastCursor
	if last == nil {
		return
	}
	r.ctrl.PanBy(rect, vp, pos.X-last.X, pos.Y-last.Y)
	p := pos
	r.session.lastCursor = &p
}

// PointerUp ends a drag pan.
func (r *Recognizer) PointerUp() {
	r.endDrag()
}

// PointerLeave ends a drag pan; the pointer left the surface without an up
// event.
func (r *Recognizer) PointerLeave() {
	r.endDrag()
}

func (r *Recognizer) endDrag() {
	if r.session.lastCursor == nil {
		return
	}
	r.session.lastCursor = nil
	r.ctrl.ClearCursor()
}

// DoubleClick toggles between zooming fully in on the click point and
// resetting the view.
func (r *Recognizer) DoubleClick(rect geom.Rect, pos geom.Point) {
	cfg := r.ctrl.Config()
	if r.ctrl.Zoom() == cfg.MinZoom {
		r.ctrl.ZoomToPoint(rect, pos, cfg.MaxZoom, true)
		return
	}
	r.ctrl.Reset()
}

// TouchStart begins a touch sequence. A single-contact start close enough to
// the previous tap fires a double-tap; at most one double-tap fires per
// window, so rapid triple taps do not re-trigger.
func (r *Recognizer) TouchStart(rect geom.Rect, contacts []geom.Point) {
	if len(contacts) != 1 {
		return
	}

	now := r.now()
	if now.Sub(r.session.lastTouchTime) < doubleTapWindow &&
		now.Sub(r.session.lastDoubleTapTime) > doubleTapWindow {
		r.session.lastDoubleTapTime = now
		r.DoubleClick(rect, contacts[0])
	}
	r.session.lastTouchTime = now

	p := contacts[0]
	r.session.lastTouch = &p
}

// TouchMove pans on one contact and pinch-zooms on two or more.
func (r *Recognizer) TouchMove(rect geom.Rect, vp view.Viewport, contacts []geom.Point) {
	switch {
	case len(contacts) == 1:
		r.singleTouchMove(rect, vp, contacts[0])
	case len(contacts) >= 2:
		r.pinchMove(rect, contacts[0], contacts[1])
	}
}

func (r *Recognizer) singleTouchMove(rect geom.Rect, vp view.Viewport, pos geom.Point) {
	// Leaving a pinch invalidates the distance baseline.
	r.session.lastTouchDistance = nil

	last := r.session.lastTouch
	if last == nil {
		p := pos
		r.session.lastTouch = &p
		return
	}
	r.ctrl.PanBy(rect, vp, pos.X-last.X, pos.Y-last.Y)
	p := pos
	r.session.lastTouch = &p
}

func (r *Recognizer) pinchMove(rect geom.Rect, p1, p2 geom.Point) {
	d := geom.PinchDistance(p1, p2)

	if last := r.session.lastTouchDistance; last != nil && *last != d {
		z := r.ctrl.Zoom() + (d-*last)/pinchScale
		mid := geom.Point{X: (p1.X + p2.X) / 2, Y: (p1.Y + p2.Y) / 2}
		r.ctrl.ZoomToPoint(rect, mid, z, false)
	}

	// Update baselines even when no zoom was applied, so the next delta
	// is measured against this frame.
	p := p1
	r.session.lastTouch = &p
	r.session.lastTouchDistance = &d
}

// TouchEnd ends a touch sequence.
func (r *Recognizer) TouchEnd() {
	r.session.lastTouch = nil
	r.session.lastTouchDistance = nil
}

// TouchCancel ends a touch sequence abandoned by the platform.
func (r *Recognizer) TouchCancel() {
	r.TouchEnd()
}
