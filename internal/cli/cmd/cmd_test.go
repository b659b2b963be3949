package cmd

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matjam/pagefx/internal/frame"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, c *cobra.Command, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	c.SetOut(&out)
	c.SetErr(&out)
	c.SetArgs(args)
	err := c.Execute()
	return out.String(), err
}

func writePNG(t *testing.T, dir, name string, c color.Color) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, frame.Fill(8, 6, c)))
	require.NoError(t, f.Close())
	return path
}

func withDefaults(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
	viper.SetDefault("style", "fade")
	viper.SetDefault("duration", 0.05)
	viper.SetDefault("direction", 0)
	viper.SetDefault("motion", "inward")
	viper.SetDefault("easing", "linear")
	viper.SetDefault("scale_mode", "stretched")
	viper.SetDefault("framerate_limit", 100)
	viper.SetDefault("seed", 1)
}

func TestPaperSizeCmd(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"210x297"}, "DIN A4 [210 × 297 mm]"},
		{[]string{"297x210"}, "DIN A4 [297 × 210 mm]"},
		{[]string{"612x792", "--unit", "pt"}, "Letter (ANSI A) [8.5 × 11 in]"},
		{[]string{"210x294"}, "210 × 294 mm"},
	}
	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			out, err := run(t, NewPaperSizeCmd(), tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want+"\n", out)
		})
	}

	_, err := run(t, NewPaperSizeCmd(), "210")
	assert.Error(t, err)
	_, err = run(t, NewPaperSizeCmd(), "210x297", "--unit", "cubits")
	assert.Error(t, err)
}

func TestStylesCmd(t *testing.T) {
	out, err := run(t, NewStylesCmd())
	require.NoError(t, err)

	for _, name := range []string{"replace", "split", "blinds", "box", "wipe", "dissolve",
		"glitter", "fly", "push", "cover", "uncover", "fade"} {
		assert.Contains(t, out, name)
	}
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 12)
	assert.Contains(t, out, "directions -1", "undirected styles list their direction too")
}

func TestDiffCmd(t *testing.T) {
	dir := t.TempDir()
	red := writePNG(t, dir, "red.png", color.RGBA{R: 255, A: 255})
	red2 := writePNG(t, dir, "red2.png", color.RGBA{R: 254, A: 255})
	blue := writePNG(t, dir, "blue.png", color.RGBA{B: 255, A: 255})

	_, err := run(t, NewDiffCmd(), red, red2)
	assert.NoError(t, err)

	_, err = run(t, NewDiffCmd(), red, blue)
	assert.Error(t, err)

	_, err = run(t, NewDiffCmd(), red, filepath.Join(dir, "missing.png"))
	assert.Error(t, err)
}

func TestRenderCmd(t *testing.T) {
	withDefaults(t)

	dir := t.TempDir()
	from := writePNG(t, dir, "from.png", color.RGBA{R: 255, A: 255})
	to := writePNG(t, dir, "to.png", color.RGBA{B: 255, A: 255})
	out := filepath.Join(dir, "out")

	_, err := run(t, NewRenderCmd(), from, to, "-o", out, "-n", "4", "--style", "wipe")
	require.NoError(t, err)

	files, err := filepath.Glob(filepath.Join(out, "wipe-*.png"))
	require.NoError(t, err)
	assert.Len(t, files, 5)

	first, err := frame.LoadFrame(filepath.Join(out, "wipe-0000.png"))
	require.NoError(t, err)
	assert.Equal(t, image.Pt(8, 6), first.Bounds().Size())
	r, _, _, _ := first.At(0, 0).RGBA()
	assert.Equal(t, uint32(0xffff), r)

	last, err := frame.LoadFrame(filepath.Join(out, "wipe-0004.png"))
	require.NoError(t, err)
	_, _, b, _ := last.At(7, 5).RGBA()
	assert.Equal(t, uint32(0xffff), b)
}

func TestRenderCmdRejectsBadFlags(t *testing.T) {
	withDefaults(t)

	dir := t.TempDir()
	from := writePNG(t, dir, "from.png", color.White)
	to := writePNG(t, dir, "to.png", color.Black)

	_, err := run(t, NewRenderCmd(), from, to, "--style", "sparkle")
	assert.Error(t, err)
	_, err = run(t, NewRenderCmd(), from, to, "--direction", "45")
	assert.Error(t, err)
}

func TestPlayCmd(t *testing.T) {
	withDefaults(t)

	dir := t.TempDir()
	from := writePNG(t, dir, "from.png", color.White)
	to := writePNG(t, dir, "to.png", color.Black)
	out := filepath.Join(dir, "play")

	_, err := run(t, NewPlayCmd(), from, to, "-o", out)
	require.NoError(t, err)

	files, err := filepath.Glob(filepath.Join(out, "fade-*.png"))
	require.NoError(t, err)
	require.NotEmpty(t, files)

	last, err := frame.LoadFrame(files[len(files)-1])
	require.NoError(t, err)
	r, g, b, _ := last.At(0, 0).RGBA()
	assert.Zero(t, r+g+b, "last played frame is the end frame")
}

func TestStartRequest(t *testing.T) {
	c := NewStartCmd()
	require.NoError(t, c.ParseFlags([]string{"--style", "box", "--duration", "0.5", "--motion", "outward"}))

	req, err := startRequest(c, "/tmp/a.png", "b.png")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/a.png", req.From)
	assert.True(t, filepath.IsAbs(req.To))
	assert.Equal(t, "box", req.Style)
	require.NotNil(t, req.Duration)
	assert.Equal(t, 0.5, *req.Duration)
	assert.Nil(t, req.Direction)
	assert.Equal(t, "outward", req.Motion)
}

func TestSlideshowCmd(t *testing.T) {
	withDefaults(t)

	dir := t.TempDir()
	pages := filepath.Join(dir, "pages")
	require.NoError(t, os.Mkdir(pages, 0755))
	writePNG(t, pages, "01.png", color.White)
	writePNG(t, pages, "02.png", color.Black)
	writePNG(t, pages, "03.png", color.White)
	out := filepath.Join(dir, "out")

	_, err := run(t, NewSlideshowCmd(), pages, "-o", out, "-n", "2")
	require.NoError(t, err)

	files, err := filepath.Glob(filepath.Join(out, "slide-*.png"))
	require.NoError(t, err)
	assert.Len(t, files, 5)
}

func TestOpenDeck(t *testing.T) {
	dir := t.TempDir()
	a := writePNG(t, dir, "a.png", color.White)
	b := writePNG(t, dir, "b.png", color.Black)

	d, err := openDeck([]string{dir}, false)
	require.NoError(t, err)
	assert.Equal(t, []string{a, b}, d.Pages())

	d, err = openDeck([]string{b, a}, true)
	require.NoError(t, err)
	assert.Equal(t, []string{b, a}, d.Pages())
}
