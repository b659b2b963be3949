package render

import (
	"context"
	"errors"
	"image"
	"time"

	"github.com/charmbracelet/log"
	"github.com/matjam/pagefx/internal/transition"
)

var ErrNotStarted = errors.New("transition did not start")

// Play starts tr and polls Image at fps until the transition finishes,
// writing every polled frame to sink. The final frame is always the end
// frame. It returns the number of frames written.
func Play(ctx context.Context, tr *transition.Transition, from, to image.Image, fps int, sink Sink) (int, error) {
	if fps <= 0 {
		fps = 30
	}
	frameTime := time.Second / time.Duration(fps)

	tr.Start(from, to)
	if !tr.IsRunning() {
		return 0, ErrNotStarted
	}

	n := 0
	for {
		img := tr.Image()
		if img == nil {
			return n, ErrNotStarted
		}
		if err := sink.WriteFrame(n, img); err != nil {
			return n, err
		}
		n++

		if tr.IsFinished() {
			log.Infof("played %v in %d frames", tr.Style(), n)
			return n, nil
		}

		select {
		case <-ctx.Done():
			return n, ctx.Err()
		case <-time.After(frameTime):
		}
	}
}
