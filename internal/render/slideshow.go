package render

import (
	"context"
	"fmt"
	"image"

	"github.com/charmbracelet/log"
	"github.com/matjam/pagefx/internal/deck"
	"github.com/matjam/pagefx/internal/frame"
	"github.com/matjam/pagefx/internal/transition"
)

// RenderSlideshow walks the deck from its current page to the end,
// rendering the transition into each following page as one continuous
// numbered stream. Every page is fitted to the size of the first one.
// The frame shared by two neighbouring transitions is written once. It
// returns the number of frames written.
func RenderSlideshow(ctx context.Context, cfg transition.Config, d *deck.Deck, steps int, sink Sink) (int, error) {
	if d.Len() < 2 {
		return 0, fmt.Errorf("slideshow needs at least two pages, got %d", d.Len())
	}

	cache := frame.NewCache(cfg.ScaleMode)
	first, _, err := d.Current()
	if err != nil {
		return 0, err
	}
	from, err := cache.Frame(cache.Add(first), image.Point{})
	if err != nil {
		return 0, err
	}
	size := from.Rect.Size()

	out := &chainSink{sink: sink}
	for {
		next, index, ok := d.Next()
		if !ok {
			break
		}
		to, err := cache.Frame(cache.Add(next), size)
		if err != nil {
			return out.n, err
		}

		log.Infof("page %d: %v", index, next)
		if err := RenderSequence(ctx, cfg, from, to, steps, out); err != nil {
			return out.n, err
		}
		out.skipFirst = true
		from = to

		if index == d.Len()-1 {
			break
		}
	}
	return out.n, nil
}

// chainSink renumbers frames from consecutive sequences into one stream,
// optionally dropping the first frame of each sequence.
type chainSink struct {
	sink      Sink
	n         int
	skipFirst bool
}

func (c *chainSink) WriteFrame(index int, img image.Image) error {
	if index == 0 && c.skipFirst {
		return nil
	}
	if err := c.sink.WriteFrame(c.n, img); err != nil {
		return err
	}
	c.n++
	return nil
}
