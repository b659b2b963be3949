// Package transition animates the change from one page bitmap to the next
// using the presentation effects PDF viewers offer (split, blinds, box,
// wipe, dissolve, glitter, fly, push, cover, uncover, fade and replace).
//
// A Transition is poll based: it has no timers or goroutines. Each call to
// Image compares the clock against the start instant, and that call is
// also what moves the transition from running to finished. IsRunning and
// IsFinished report the phase as of the last Start or Image call.
//
// A Transition is not safe for concurrent use.
package transition

import (
	"image"
	"time"

	"github.com/charmbracelet/log"
	"github.com/jonboulle/clockwork"
	"github.com/matjam/pagefx/internal/frame"
	"github.com/matjam/pagefx/internal/types"
)

const DefaultDuration = time.Second

type Transition struct {
	style     Style
	duration  time.Duration
	direction int
	motion    Motion
	easing    types.EasingMode
	scaleMode types.ScalingMode
	seed      uint64
	clock     clockwork.Clock

	from  *image.RGBA
	to    *image.RGBA
	noise []float32
	start time.Time
	phase Phase
}

type Option func(*Transition)

// WithClock replaces the wall clock, mostly for tests.
func WithClock(clock clockwork.Clock) Option {
	return func(t *Transition) { t.clock = clock }
}

// WithSeed fixes the noise used by dissolve and glitter.
func WithSeed(seed uint64) Option {
	return func(t *Transition) { t.seed = seed }
}

// WithEasing shapes the progress before it is handed to the style.
func WithEasing(mode types.EasingMode) Option {
	return func(t *Transition) { t.easing = mode }
}

// WithScaleMode sets how an end frame of a different size is fitted onto
// the start frame.
func WithScaleMode(mode types.ScalingMode) Option {
	return func(t *Transition) { t.scaleMode = mode }
}

// New returns an idle transition with a one second duration, direction 0
// and inward motion.
func New(style Style, opts ...Option) *Transition {
	t := &Transition{
		style:     style,
		duration:  DefaultDuration,
		motion:    MotionInward,
		easing:    types.EasingLinear,
		scaleMode: types.ScalingModeStretch,
		clock:     clockwork.NewRealClock(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Transition) Style() Style { return t.style }

func (t *Transition) Duration() time.Duration { return t.duration }

// SetDuration changes the duration. A non-positive duration makes the
// transition finish on the first Image call after Start.
func (t *Transition) SetDuration(d time.Duration) { t.duration = d }

func (t *Transition) Direction() int { return t.direction }

func (t *Transition) SetDirection(dir int) { t.direction = dir }

func (t *Transition) Motion() Motion { return t.motion }

func (t *Transition) SetMotion(m Motion) { t.motion = m }

func (t *Transition) Easing() types.EasingMode { return t.easing }

func (t *Transition) SetEasing(mode types.EasingMode) { t.easing = mode }

func (t *Transition) IsRunning() bool { return t.phase == PhaseRunning }

func (t *Transition) IsFinished() bool { return t.phase == PhaseFinished }

// Phase returns the phase recorded by the last Start or Image call.
func (t *Transition) Phase() Phase { return t.phase }

// Start copies both frames and begins the transition. If either frame is
// nil or empty, Start does nothing.
func (t *Transition) Start(from, to image.Image) {
	if frame.IsEmpty(from) || frame.IsEmpty(to) {
		log.Debug("transition: start ignored, frame is empty", "style", t.style)
		return
	}

	t.from = frame.ToRGBA(from)
	t.to = frame.Conform(to, t.from.Rect.Size(), t.scaleMode)
	t.noise = nil
	if t.style.Randomized() {
		t.noise = NewNoise(len(t.from.Pix)/4, t.seed)
	}

	t.start = t.clock.Now()
	t.phase = PhaseRunning
	log.Debugf("transition: %v started, %v over %v", t.style, t.from.Rect.Size(), t.duration)
}

// Image returns the frame for the current instant and updates the phase.
// It returns nil while idle. Once finished it returns the end frame on
// every call. Callers must not modify the returned image.
func (t *Transition) Image() image.Image {
	switch t.phase {
	case PhaseIdle:
		return nil
	case PhaseFinished:
		return t.to
	}

	if t.style == StyleReplace {
		t.phase = PhaseFinished
		return t.to
	}

	p, phase := Progress(t.clock.Since(t.start), t.duration)
	t.phase = phase
	if phase == PhaseFinished {
		log.Debugf("transition: %v finished", t.style)
		return t.to
	}

	return Sample(t.style, t.from, t.to, types.ApplyEasing(t.easing, p), t.params())
}

// Reset returns the transition to idle. Configuration and frames are kept.
func (t *Transition) Reset() {
	t.start = time.Time{}
	t.phase = PhaseIdle
}

func (t *Transition) params() Params {
	return Params{
		Direction: t.direction,
		Motion:    t.motion,
		Noise:     t.noise,
	}
}
