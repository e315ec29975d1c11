package vis

import (
	"image"
	"time"

	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"

	"github.com/elektrokombinacija/surfview/internal/geom"
	"github.com/elektrokombinacija/surfview/internal/gesture"
	"github.com/elektrokombinacija/surfview/internal/view"
	"github.com/elektrokombinacija/surfview/internal/vis/draw"
)

// doubleClickWindow is the max gap between two primary presses that counts
// as a double-click.
const doubleClickWindow = 300 * time.Millisecond

type touchContact struct {
	id  pointer.ID
	pos f32.Point
}

// Surface is the widget showing the transformable demo content. It adapts
// Gio pointer events to the recognizer's normalized payloads and applies the
// committed transform, animated when requested.
type Surface struct {
	ctrl *view.Controller
	rec  *gesture.Recognizer
	anim *Animator

	size      image.Point
	cursor    view.Cursor
	touches   []touchContact
	lastClick time.Time
}

// NewSurface creates an unbound surface; bind attaches the controller and
// recognizer once they exist.
func NewSurface() *Surface {
	return &Surface{
		anim:   NewAnimator(),
		cursor: view.CursorAuto,
	}
}

func (s *Surface) bind(ctrl *view.Controller, rec *gesture.Recognizer) {
	s.ctrl = ctrl
	s.rec = rec
}

// Apply receives every committed transform from the controller.
func (s *Surface) Apply(t view.Transform, cursor view.Cursor) {
	s.cursor = cursor
	if t.Animate {
		s.anim.Start(t, time.Now())
		return
	}
	s.anim.Set(t)
}

// Animating reports whether a transition still needs frames.
func (s *Surface) Animating() bool {
	return s.anim.Active()
}

// Viewport returns the surface's usable size from the last layout.
func (s *Surface) Viewport() view.Viewport {
	return view.Viewport{
		Width:  float64(s.size.X),
		Height: float64(s.size.Y),
	}
}

// Rect returns the content's bounding rectangle under the committed
// transform. Queried fresh per event: the transform itself moves the rect.
func (s *Surface) Rect() geom.Rect {
	st := s.ctrl.State()
	w := float64(s.size.X)
	h := float64(s.size.Y)
	return geom.Rect{
		Left:   st.Pos.X + (1-st.Zoom)*w/2,
		Top:    st.Pos.Y + (1-st.Zoom)*h/2,
		Right:  st.Pos.X + (1-st.Zoom)*w/2 + st.Zoom*w,
		Bottom: st.Pos.Y + (1-st.Zoom)*h/2 + st.Zoom*h,
	}
}

// Layout handles input and renders the transformed content.
func (s *Surface) Layout(gtx layout.Context) layout.Dimensions {
	s.size = gtx.Constraints.Max
	bounds := image.Rect(0, 0, s.size.X, s.size.Y)
	defer clip.Rect(bounds).Push(gtx.Ops).Pop()

	s.handlePointerEvents(gtx)

	s.gioCursor().Add(gtx.Ops)

	tr, _ := s.anim.Frame(time.Now())
	center := f32.Pt(float32(s.size.X)/2, float32(s.size.Y)/2)
	m := f32.Affine2D{}.
		Scale(center, f32.Pt(float32(tr.Scale), float32(tr.Scale))).
		Offset(f32.Pt(float32(tr.TranslateX), float32(tr.TranslateY)))
	defer op.Affine(m).Push(gtx.Ops).Pop()

	draw.Card(gtx, s.size)

	return layout.Dimensions{Size: s.size}
}

func (s *Surface) handlePointerEvents(gtx layout.Context) {
	// Register for pointer events
	area := clip.Rect(image.Rect(0, 0, s.size.X, s.size.Y)).Push(gtx.Ops)
	event.Op(gtx.Ops, s)
	area.Pop()

	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target: s,
			Kinds: pointer.Press | pointer.Drag | pointer.Release |
				pointer.Cancel | pointer.Scroll | pointer.Leave,
		})
		if !ok {
			break
		}
		if pe, ok := ev.(pointer.Event); ok {
			s.handlePointerEvent(pe)
		}
	}
}

func (s *Surface) handlePointerEvent(ev pointer.Event) {
	if ev.Source == pointer.Touch {
		s.handleTouchEvent(ev)
		return
	}

	pos := geom.Point{X: float64(ev.Position.X), Y: float64(ev.Position.Y)}
	switch ev.Kind {
	case pointer.Press:
		if !ev.Buttons.Contain(pointer.ButtonPrimary) {
			return
		}
		now := time.Now()
		if now.Sub(s.lastClick) < doubleClickWindow {
			s.lastClick = now
			s.rec.DoubleClick(s.Rect(), pos)
			return
		}
		s.lastClick = now
		s.rec.PointerDown(pos)

	case pointer.Drag:
		s.rec.PointerMove(s.Rect(), s.Viewport(), pos)

	case pointer.Release:
		s.rec.PointerUp()

	case pointer.Cancel, pointer.Leave:
		s.rec.PointerLeave()

	case pointer.Scroll:
		s.rec.Wheel(s.Rect(), pos, float64(ev.Scroll.Y))
	}
}

// handleTouchEvent folds per-pointer touch events into contact lists.
func (s *Surface) handleTouchEvent(ev pointer.Event) {
	switch ev.Kind {
	case pointer.Press:
		s.setContact(ev.PointerID, ev.Position)
		s.rec.TouchStart(s.Rect(), s.contacts())

	case pointer.Drag:
		s.setContact(ev.PointerID, ev.Position)
		s.rec.TouchMove(s.Rect(), s.Viewport(), s.contacts())

	case pointer.Release:
		s.dropContact(ev.PointerID)
		if len(s.touches) == 0 {
			s.rec.TouchEnd()
		}

	case pointer.Cancel, pointer.Leave:
		s.dropContact(ev.PointerID)
		if len(s.touches) == 0 {
			s.rec.TouchCancel()
		}
	}
}

func (s *Surface) setContact(id pointer.ID, pos f32.Point) {
	for i := range s.touches {
		if s.touches[i].id == id {
			s.touches[i].pos = pos
			return
		}
	}
	s.touches = append(s.touches, touchContact{id: id, pos: pos})
}

func (s *Surface) dropContact(id pointer.ID) {
	for i := range s.touches {
		if s.touches[i].id == id {
			s.touches = append(s.touches[:i], s.touches[i+1:]...)
			return
		}
	}
}

func (s *Surface) contacts() []geom.Point {
	pts := make([]geom.Point, len(s.touches))
	for i, t := range s.touches {
		pts[i] = geom.Point{X: float64(t.pos.X), Y: float64(t.pos.Y)}
	}
	return pts
}

func (s *Surface) gioCursor() pointer.Cursor {
	switch s.cursor {
	case view.CursorMove:
		return pointer.CursorGrabbing
	case view.CursorEWResize:
		return pointer.CursorEastWestResize
	case view.CursorNSResize:
		return pointer.CursorNorthSouthResize
	default:
		return pointer.CursorDefault
	}
}
