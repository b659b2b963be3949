package render

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/matjam/pagefx/internal/deck"
	"github.com/matjam/pagefx/internal/frame"
	"github.com/matjam/pagefx/internal/imgcmp"
	"github.com/matjam/pagefx/internal/transition"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red  = color.RGBA{R: 0xff, A: 0xff}
	blue = color.RGBA{B: 0xff, A: 0xff}
)

func TestRenderSequence(t *testing.T) {
	from, to := frame.Fill(10, 10, red), frame.Fill(10, 10, blue)
	sink := &MemorySink{}

	cfg := transition.Config{Style: transition.StyleWipe, Duration: time.Second}
	require.NoError(t, RenderSequence(context.Background(), cfg, from, to, 4, sink))

	require.Len(t, sink.Frames, 5)
	assert.True(t, imgcmp.Equal(sink.Frames[0], from, imgcmp.DefaultThreshold))
	assert.True(t, imgcmp.Equal(sink.Frames[4], to, imgcmp.DefaultThreshold))

	mid := sink.Frames[2].(*image.RGBA)
	assert.Equal(t, blue, mid.RGBAAt(0, 0))
	assert.Equal(t, red, mid.RGBAAt(9, 0))
}

func TestRenderSequenceScalesEndFrame(t *testing.T) {
	sink := &MemorySink{}
	cfg := transition.Config{Style: transition.StyleDissolve, Direction: transition.Undirected, Seed: 3}

	err := RenderSequence(context.Background(), cfg, frame.Fill(8, 8, red), frame.Fill(2, 2, blue), 2, sink)
	require.NoError(t, err)
	for _, f := range sink.Frames {
		assert.Equal(t, image.Pt(8, 8), f.Bounds().Size())
	}
}

func TestRenderSequenceErrors(t *testing.T) {
	from, to := frame.Fill(2, 2, red), frame.Fill(2, 2, blue)
	cfg := transition.Config{Style: transition.StyleFade}

	assert.Error(t, RenderSequence(context.Background(), cfg, from, to, 0, &MemorySink{}))
	assert.ErrorIs(t, RenderSequence(context.Background(), cfg, nil, to, 3, &MemorySink{}), ErrEmptyFrame)

	bad := transition.Config{Style: transition.StyleWipe, Direction: 12}
	assert.Error(t, RenderSequence(context.Background(), bad, from, to, 3, &MemorySink{}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, RenderSequence(ctx, cfg, from, to, 3, &MemorySink{}), context.Canceled)
}

func TestDirSink(t *testing.T) {
	sink, err := NewDirSink(t.TempDir()+"/out", "")
	require.NoError(t, err)

	cfg := transition.Config{Style: transition.StyleFade}
	require.NoError(t, RenderSequence(context.Background(), cfg, frame.Fill(2, 2, red), frame.Fill(2, 2, blue), 2, sink))

	for i := 0; i <= 2; i++ {
		_, err := os.Stat(sink.Path(i))
		assert.NoError(t, err)
	}

	last, err := frame.LoadFrame(sink.Path(2))
	require.NoError(t, err)
	assert.True(t, imgcmp.Equal(last, frame.Fill(2, 2, blue), imgcmp.DefaultThreshold))
}

func TestPlay(t *testing.T) {
	from, to := frame.Fill(10, 10, red), frame.Fill(10, 10, blue)
	tr := transition.New(transition.StyleFade)
	tr.SetDuration(50 * time.Millisecond)

	sink := &MemorySink{}
	n, err := Play(context.Background(), tr, from, to, 200, sink)
	require.NoError(t, err)
	assert.Equal(t, n, len(sink.Frames))
	assert.GreaterOrEqual(t, n, 2)
	assert.True(t, tr.IsFinished())
	assert.True(t, imgcmp.Equal(sink.Frames[n-1], to, imgcmp.DefaultThreshold))
}

func TestPlayReplaceIsOneFrame(t *testing.T) {
	tr := transition.New(transition.StyleReplace)
	sink := &MemorySink{}

	n, err := Play(context.Background(), tr, frame.Fill(2, 2, red), frame.Fill(2, 2, blue), 30, sink)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestPlayEmptyFrame(t *testing.T) {
	tr := transition.New(transition.StyleFade)
	_, err := Play(context.Background(), tr, nil, frame.Fill(2, 2, blue), 30, &MemorySink{})
	assert.ErrorIs(t, err, ErrNotStarted)
}

func TestPlayCancelled(t *testing.T) {
	tr := transition.New(transition.StyleFade)
	tr.SetDuration(time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	n, err := Play(ctx, tr, frame.Fill(2, 2, red), frame.Fill(2, 2, blue), 100, &MemorySink{})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.GreaterOrEqual(t, n, 1)
}

func TestRenderSlideshow(t *testing.T) {
	dir := t.TempDir()
	colors := []color.RGBA{
		{R: 255, A: 255},
		{G: 255, A: 255},
		{B: 255, A: 255},
	}
	pages := make([]string, len(colors))
	for i, c := range colors {
		pages[i] = writeTestPNG(t, dir, fmt.Sprintf("%02d.png", i), image.Pt(6+i*2, 4), c)
	}

	cfg := transition.Config{Style: transition.StyleWipe, Duration: time.Second}
	sink := &MemorySink{}
	n, err := RenderSlideshow(context.Background(), cfg, deck.New(pages, false), 4, sink)
	require.NoError(t, err)
	assert.Equal(t, 9, n, "two sequences of five frames sharing one")
	require.Len(t, sink.Frames, 9)

	for _, f := range sink.Frames {
		assert.Equal(t, image.Pt(6, 4), f.Bounds().Size())
	}
	for i, k := range []int{0, 4, 8} {
		assert.True(t, imgcmp.Equal(frame.Fill(6, 4, colors[i]), sink.Frames[k], imgcmp.DefaultThreshold), "frame %d", k)
	}
}

func TestRenderSlideshowLoopingDeckStops(t *testing.T) {
	dir := t.TempDir()
	a := writeTestPNG(t, dir, "a.png", image.Pt(4, 4), color.RGBA{R: 255, A: 255})
	b := writeTestPNG(t, dir, "b.png", image.Pt(4, 4), color.RGBA{B: 255, A: 255})

	sink := &MemorySink{}
	n, err := RenderSlideshow(context.Background(), transition.Config{Style: transition.StyleFade}, deck.New([]string{a, b}, true), 2, sink)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestRenderSlideshowErrors(t *testing.T) {
	cfg := transition.Config{Style: transition.StyleFade}

	_, err := RenderSlideshow(context.Background(), cfg, deck.New([]string{"one.png"}, false), 2, &MemorySink{})
	assert.Error(t, err)

	dir := t.TempDir()
	a := writeTestPNG(t, dir, "a.png", image.Pt(4, 4), color.White)
	_, err = RenderSlideshow(context.Background(), cfg, deck.New([]string{a, filepath.Join(dir, "gone.png")}, false), 2, &MemorySink{})
	assert.Error(t, err)
}

func writeTestPNG(t *testing.T, dir, name string, size image.Point, c color.Color) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, frame.Fill(size.X, size.Y, c)))
	require.NoError(t, f.Close())
	return path
}

func TestRenderSlideshowStretchesWithoutScaleMode(t *testing.T) {
	dir := t.TempDir()
	big := writeTestPNG(t, dir, "01.png", image.Pt(8, 8), red)
	small := writeTestPNG(t, dir, "02.png", image.Pt(2, 2), blue)

	sink := &MemorySink{}
	_, err := RenderSlideshow(context.Background(), transition.Config{Style: transition.StyleFade}, deck.New([]string{big, small}, false), 2, sink)
	require.NoError(t, err)

	last := sink.Frames[len(sink.Frames)-1]
	assert.Equal(t, image.Pt(8, 8), last.Bounds().Size())
	assert.True(t, imgcmp.Equal(frame.Fill(8, 8, blue), last, imgcmp.DefaultThreshold))
}
