package render

import (
	"context"
	"errors"
	"fmt"
	"image"

	"github.com/charmbracelet/log"
	"github.com/matjam/pagefx/internal/frame"
	"github.com/matjam/pagefx/internal/transition"
	"github.com/matjam/pagefx/internal/types"
)

var ErrEmptyFrame = errors.New("frame is empty")

// RenderSequence samples the transition at steps+1 evenly spaced progress
// values, from the start frame to the end frame inclusive, and writes each
// to sink. It does not consult a clock.
func RenderSequence(ctx context.Context, cfg transition.Config, from, to image.Image, steps int, sink Sink) error {
	if steps < 1 {
		return fmt.Errorf("need at least one step, got %d", steps)
	}
	if frame.IsEmpty(from) || frame.IsEmpty(to) {
		return ErrEmptyFrame
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	scale := cfg.ScaleMode
	if scale == "" {
		scale = types.ScalingModeStretch
	}
	a := frame.ToRGBA(from)
	b := frame.Conform(to, a.Rect.Size(), scale)

	var noise []float32
	if cfg.Style.Randomized() {
		noise = transition.NewNoise(a.Rect.Dx()*a.Rect.Dy(), cfg.Seed)
	}
	params := cfg.Params(noise)

	log.Infof("rendering %v in %d steps (%vx%v)", cfg.Style, steps, a.Rect.Dx(), a.Rect.Dy())
	for i := 0; i <= steps; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		p := types.ApplyEasing(cfg.Easing, float64(i)/float64(steps))
		img := transition.Sample(cfg.Style, a, b, p, params)
		if err := sink.WriteFrame(i, img); err != nil {
			return err
		}
		log.Debugf("frame %d at progress %.3f", i, p)
	}
	return nil
}
