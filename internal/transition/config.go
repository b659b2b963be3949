package transition

import (
	"fmt"
	"time"

	"github.com/matjam/pagefx/internal/types"
)

// Config is the full set of knobs for one transition, as read from the
// config file or a request.
type Config struct {
	Style     Style
	Duration  time.Duration
	Direction int
	Motion    Motion
	Easing    types.EasingMode
	ScaleMode types.ScalingMode
	Seed      uint64
}

// Validate rejects directions outside the known angles. Durations are not
// checked; non-positive ones finish immediately.
func (c Config) Validate() error {
	if c.Style < 0 || int(c.Style) >= len(styleNames) {
		return fmt.Errorf("invalid style %v", c.Style)
	}
	if !ValidDirection(c.Direction) {
		return fmt.Errorf("invalid direction %d (want -1, 0, 90, 180, 270 or 315)", c.Direction)
	}
	return nil
}

// Params returns the Sample parameters for this config with the given
// noise field.
func (c Config) Params(noise []float32) Params {
	return Params{Direction: c.Direction, Motion: c.Motion, Noise: noise}
}

// NewTransition builds an idle Transition from the config. opts are
// applied after the config values.
func (c Config) NewTransition(opts ...Option) *Transition {
	base := []Option{WithSeed(c.Seed)}
	if c.Easing != "" {
		base = append(base, WithEasing(c.Easing))
	}
	if c.ScaleMode != "" {
		base = append(base, WithScaleMode(c.ScaleMode))
	}

	t := New(c.Style, append(base, opts...)...)
	t.SetDuration(c.Duration)
	t.SetDirection(c.Direction)
	t.SetMotion(c.Motion)
	return t
}
