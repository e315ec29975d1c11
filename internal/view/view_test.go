package view

import (
	"math"
	"testing"

	"github.com/elektrokombinacija/surfview/internal/geom"
)

const eps = 1e-9

func testRect(zoom float64, pos geom.Point) geom.Rect {
	// Surface with an untransformed 800x600 frame at the origin, scaled
	// about its center and translated by pos.
	return geom.Rect{
		Left:   pos.X + (1-zoom)*800/2,
		Top:    pos.Y + (1-zoom)*600/2,
		Right:  pos.X + (1-zoom)*800/2 + zoom*800,
		Bottom: pos.Y + (1-zoom)*600/2 + zoom*600,
	}
}

func TestZoomClampedToRange(t *testing.T) {
	c := NewController(DefaultConfig(), nil)
	rect := testRect(1, geom.Point{})

	tests := []struct {
		request float64
		want    float64
	}{
		{0.2, 1},
		{3, 3},
		{7, 5},
		{-10, 1},
	}

	for _, tt := range tests {
		c.ZoomToPoint(rect, geom.Point{X: 400, Y: 300}, tt.request, false)
		if c.Zoom() != tt.want {
			t.Errorf("ZoomToPoint(%v): zoom = %v, want %v", tt.request, c.Zoom(), tt.want)
		}
	}
}

func TestZoomInHitsMax(t *testing.T) {
	c := NewController(DefaultConfig(), nil)

	c.ZoomIn(4)
	if c.Zoom() != 5 {
		t.Errorf("ZoomIn(4) from 1: zoom = %v, want 5", c.Zoom())
	}
	if !c.State().UseTransition {
		t.Error("ZoomIn should commit with UseTransition")
	}
}

func TestZoomByRoundTrip(t *testing.T) {
	c := NewController(DefaultConfig(), nil)

	c.ZoomIn(0.5)
	c.ZoomOut(0.5)
	st := c.State()
	if st.Zoom != 1 {
		t.Errorf("zoom = %v, want 1", st.Zoom)
	}
	if math.Abs(st.Pos.X) > eps || math.Abs(st.Pos.Y) > eps {
		t.Errorf("pos = %v, want origin", st.Pos)
	}
}

func TestResetIdempotent(t *testing.T) {
	c := NewController(DefaultConfig(), nil)
	rect := testRect(1, geom.Point{})
	c.ZoomToPoint(rect, geom.Point{X: 100, Y: 100}, 3, false)
	c.PanBy(testRect(3, c.State().Pos), Viewport{Width: 800, Height: 600}, -40, 25)

	c.Reset()
	first := c.State()
	c.Reset()
	second := c.State()

	want := InitialState()
	if first != want {
		t.Errorf("after Reset: %+v, want %+v", first, want)
	}
	if second != first {
		t.Errorf("second Reset diverged: %+v", second)
	}
}

func TestPanClampedToBoundaries(t *testing.T) {
	cfg := DefaultConfig()
	c := NewController(cfg, nil)
	vp := Viewport{Width: 800, Height: 600}

	// Zoomed to 2: the 1600x1200 surface overflows the viewport on both
	// axes, so panning is clamped against the zone edges.
	rect := testRect(1, geom.Point{})
	c.ZoomToPoint(rect, rect.Center(), 2, false)

	for i := 0; i < 50; i++ {
		rect = testRect(2, c.State().Pos)
		c.PanBy(rect, vp, 37, 23)
	}
	rect = testRect(2, c.State().Pos)
	if rect.Left > eps {
		t.Errorf("left edge %v panned past the zone start", rect.Left)
	}

	for i := 0; i < 100; i++ {
		rect = testRect(2, c.State().Pos)
		c.PanBy(rect, vp, -37, -23)
	}
	rect = testRect(2, c.State().Pos)
	if rect.Right < vp.Width-eps {
		t.Errorf("right edge %v panned short of the zone end", rect.Right)
	}
	if rect.Bottom < vp.Height-eps {
		t.Errorf("bottom edge %v panned short of the zone end", rect.Bottom)
	}
}

func TestPanSnapsToCenter(t *testing.T) {
	c := NewController(DefaultConfig(), nil)
	vp := Viewport{Width: 1000, Height: 1000}

	// Surface smaller than the viewport, offset right: only drifting back
	// toward center is allowed.
	c.state.Pos = geom.Point{X: 20}
	rect := geom.Rect{Left: 120, Top: 100, Right: 920, Bottom: 700}

	c.PanBy(rect, vp, -12, 0)
	if got := c.State().Pos.X; got != 8 {
		t.Fatalf("pos.X = %v, want 8", got)
	}

	// Within the snap distance the translation lands exactly on zero.
	c.PanBy(rect, vp, -5, 0)
	if got := c.State().Pos.X; got != 0 {
		t.Errorf("pos.X = %v, want snap to 0", got)
	}

	// Moving further away from center is refused.
	c.PanBy(rect, vp, 15, 0)
	if got := c.State().Pos.X; got != 0 {
		t.Errorf("pos.X = %v, want 0 after refused outward pan", got)
	}
}

func TestPanCursorDerivation(t *testing.T) {
	vp := Viewport{Width: 800, Height: 600}

	tests := []struct {
		name string
		zoom float64
		rect geom.Rect
		want Cursor
	}{
		// Overflows both axes.
		{"both axes", 2, testRect(2, geom.Point{}), CursorMove},
		// Wider than the viewport, shorter than it.
		{"x only", 1, geom.Rect{Left: -100, Top: 100, Right: 900, Bottom: 500}, CursorEWResize},
		// Taller than the viewport, narrower than it.
		{"y only", 1, geom.Rect{Left: 100, Top: -100, Right: 700, Bottom: 700}, CursorNSResize},
		// Fits entirely, centered: nothing to move.
		{"neither", 1, geom.Rect{Left: 100, Top: 100, Right: 700, Bottom: 500}, CursorAuto},
	}

	for _, tt := range tests {
		c := NewController(DefaultConfig(), nil)
		c.state.Zoom = tt.zoom
		c.PanBy(tt.rect, vp, -10, -10)
		if got := c.State().Cursor; got != tt.want {
			t.Errorf("%s: cursor = %v, want %v", tt.name, got, tt.want)
		}
		if c.State().UseTransition {
			t.Errorf("%s: pan must not animate", tt.name)
		}
	}
}

func TestZoomToZoneFullContent(t *testing.T) {
	cfg := DefaultConfig()
	c := NewController(cfg, nil)
	vp := Viewport{Width: 800, Height: 600}
	rect := testRect(1, geom.Point{})

	// Zone covering the full unscaled content: zoom is the fit factor,
	// capped at MaxZoom.
	c.ZoomToZone(rect, vp, 0, 0, 800, 600)
	want := math.Min(math.Min(vp.Width/800, vp.Height/600), cfg.MaxZoom)
	if math.Abs(c.Zoom()-want) > eps {
		t.Errorf("zoom = %v, want %v", c.Zoom(), want)
	}
	if !c.State().UseTransition {
		t.Error("ZoomToZone should commit with UseTransition")
	}
}

func TestZoomToZoneCentersTarget(t *testing.T) {
	c := NewController(DefaultConfig(), nil)
	vp := Viewport{Width: 800, Height: 600}
	rect := testRect(1, geom.Point{})

	// A 200x150 zone in the top-left corner.
	c.ZoomToZone(rect, vp, 0, 0, 200, 150)
	st := c.State()
	if st.Zoom != 4 {
		t.Fatalf("zoom = %v, want 4", st.Zoom)
	}

	// The zone center (100,75) in content space must land on the viewport
	// center under the committed transform.
	scaled := testRect(st.Zoom, st.Pos)
	gotX := scaled.Left + st.Zoom*100
	gotY := scaled.Top + st.Zoom*75
	if math.Abs(gotX-400) > eps || math.Abs(gotY-300) > eps {
		t.Errorf("zone center at (%v,%v), want (400,300)", gotX, gotY)
	}
}

func TestZoomToZoneIgnoresDegenerateZone(t *testing.T) {
	c := NewController(DefaultConfig(), nil)
	before := c.State()
	c.ZoomToZone(testRect(1, geom.Point{}), Viewport{Width: 800, Height: 600}, 10, 10, 0, 0)
	if c.State() != before {
		t.Errorf("degenerate zone mutated state: %+v", c.State())
	}
}

func TestOnZoomChangeFiresOncePerChange(t *testing.T) {
	var calls []float64
	cfg := DefaultConfig()
	cfg.OnZoomChange = func(z float64) { calls = append(calls, z) }
	c := NewController(cfg, nil)
	rect := testRect(1, geom.Point{})
	vp := Viewport{Width: 800, Height: 600}

	c.ZoomToPoint(rect, rect.Center(), 2, false)
	c.ZoomToPoint(testRect(2, c.State().Pos), rect.Center(), 2, false) // no change
	c.PanBy(testRect(2, c.State().Pos), vp, 5, 5)                      // pan never changes zoom
	c.Reset()

	want := []float64{2, 1}
	if len(calls) != len(want) {
		t.Fatalf("calls = %v, want %v", calls, want)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Errorf("call %d = %v, want %v", i, calls[i], want[i])
		}
	}
}

func TestApplyReceivesTransform(t *testing.T) {
	var last Transform
	var lastCursor Cursor
	cfg := DefaultConfig()
	c := NewController(cfg, func(tr Transform, cur Cursor) {
		last = tr
		lastCursor = cur
	})
	rect := testRect(1, geom.Point{})

	c.ZoomToPoint(rect, geom.Point{X: 600, Y: 300}, 2, true)
	if last.Scale != 2 {
		t.Errorf("Scale = %v, want 2", last.Scale)
	}
	if !last.Animate || last.Duration != cfg.AnimDuration {
		t.Errorf("Animate/Duration = %v/%v, want true/%v", last.Animate, last.Duration, cfg.AnimDuration)
	}
	if lastCursor != CursorAuto {
		t.Errorf("cursor = %v, want auto", lastCursor)
	}
	if last.TranslateX >= 0 {
		t.Errorf("TranslateX = %v, want negative for a focal right of center", last.TranslateX)
	}
}

func TestCursorStrings(t *testing.T) {
	tests := []struct {
		c    Cursor
		want string
	}{
		{CursorAuto, "auto"},
		{CursorMove, "move"},
		{CursorEWResize, "ew-resize"},
		{CursorNSResize, "ns-resize"},
	}
	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.c, got, tt.want)
		}
	}
}
