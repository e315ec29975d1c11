package vis

import (
	"time"

	"github.com/elektrokombinacija/surfview/internal/view"
)

// Animator eases the displayed transform toward the last committed one.
type Animator struct {
	current  view.Transform
	from, to view.Transform
	start    time.Time
	duration time.Duration
	active   bool
}

// NewAnimator starts at the identity transform.
func NewAnimator() *Animator {
	return &Animator{
		current: view.Transform{Scale: 1},
	}
}

// Set jumps to the transform immediately, cancelling any running transition.
func (a *Animator) Set(t view.Transform) {
	a.current = t
	a.active = false
}

// Start begins a transition from the displayed transform to t.
func (a *Animator) Start(t view.Transform, now time.Time) {
	d := time.Duration(t.Duration * float64(time.Second))
	if d <= 0 {
		a.Set(t)
		return
	}
	a.from = a.current
	a.to = t
	a.start = now
	a.duration = d
	a.active = true
}

// Active reports whether a transition is in progress.
func (a *Animator) Active() bool {
	return a.active
}

// Frame advances the transition and returns the transform to display. The
// second result reports whether more frames are needed.
func (a *Animator) Frame(now time.Time) (view.Transform, bool) {
	if !a.active {
		return a.current, false
	}

	p := float64(now.Sub(a.start)) / float64(a.duration)
	if p >= 1 {
		a.current = a.to
		a.active = false
		return a.current, false
	}
	if p < 0 {
		p = 0
	}

	e := p * p * (3 - 2*p) // smoothstep
	a.current = view.Transform{
		Scale:      lerp(a.from.Scale, a.to.Scale, e),
		TranslateX: lerp(a.from.TranslateX, a.to.TranslateX, e),
		TranslateY: lerp(a.from.TranslateY, a.to.TranslateY, e),
	}
	return a.current, true
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
