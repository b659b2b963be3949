package frame

import (
	"image"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/matjam/pagefx/internal/tile"
	"github.com/matjam/pagefx/internal/types"
)

// Cache loads frames from disk once and keeps every size they were
// requested at, keyed by tile. Pages are the indices returned by Add.
type Cache struct {
	sync.Mutex
	paths  []string
	mode   types.ScalingMode
	native map[int]*image.RGBA
	frames map[tile.Tile]*image.RGBA
}

// NewCache returns an empty cache. An empty mode means stretched.
func NewCache(mode types.ScalingMode) *Cache {
	if mode == "" {
		mode = types.ScalingModeStretch
	}
	return &Cache{
		mode:   mode,
		native: make(map[int]*image.RGBA),
		frames: make(map[tile.Tile]*image.RGBA),
	}
}

// Add registers path and returns its page index. Adding a path twice
// returns the existing index.
func (c *Cache) Add(path string) int {
	c.Lock()
	defer c.Unlock()

	for i, p := range c.paths {
		if p == path {
			return i
		}
	}
	c.paths = append(c.paths, path)
	return len(c.paths) - 1
}

func (c *Cache) Len() int {
	c.Lock()
	defer c.Unlock()
	return len(c.paths)
}

// Frame returns page scaled to size. A zero size returns the page at its
// native resolution.
func (c *Cache) Frame(page int, size image.Point) (*image.RGBA, error) {
	c.Lock()
	defer c.Unlock()

	src, err := c.load(page)
	if err != nil {
		return nil, err
	}

	srcSize := src.Bounds().Size()
	if size == (image.Point{}) || size == srcSize {
		return src, nil
	}

	key := tile.Tile{
		XRes: float64(size.X) / float64(srcSize.X),
		YRes: float64(size.Y) / float64(srcSize.Y),
		Rect: image.Rectangle{Max: size},
		Page: page,
	}
	if f, ok := c.frames[key]; ok {
		return f, nil
	}

	log.Debugf("scaling page %d for tile %v", page, key)
	f := ScaleImage(src, size.X, size.Y, c.mode)
	c.frames[key] = f
	return f, nil
}

// Purge drops every loaded frame but keeps the registered paths.
func (c *Cache) Purge() {
	c.Lock()
	defer c.Unlock()
	c.native = make(map[int]*image.RGBA)
	c.frames = make(map[tile.Tile]*image.RGBA)
}

func (c *Cache) load(page int) (*image.RGBA, error) {
	if f, ok := c.native[page]; ok {
		return f, nil
	}
	if page < 0 || page >= len(c.paths) {
		return nil, &PageError{Page: page, Count: len(c.paths)}
	}

	img, err := LoadFrame(c.paths[page])
	if err != nil {
		return nil, err
	}
	if IsEmpty(img) {
		return nil, &EmptyFrameError{Path: c.paths[page]}
	}
	log.Infof("loaded %v (%vx%v)", c.paths[page], img.Bounds().Dx(), img.Bounds().Dy())

	f := ToRGBA(img)
	c.native[page] = f
	return f, nil
}
