// Package tile identifies rasterized regions of a page so they can be cached.
package tile

import (
	"encoding/binary"
	"fmt"
	"image"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Tile is the key of one rendered raster: the page it belongs to, the
// resolution it was rendered at and the region it covers in pixels.
// Tiles are comparable with ==.
type Tile struct {
	XRes float64
	YRes float64
	Rect image.Rectangle
	Page int
}

// Less reports whether t sorts before o. Page is the most significant key,
// followed by resolution and then geometry.
func (t Tile) Less(o Tile) bool {
	if t.Page != o.Page {
		return t.Page < o.Page
	}
	if t.XRes != o.XRes {
		return t.XRes < o.XRes
	}
	if t.YRes != o.YRes {
		return t.YRes < o.YRes
	}
	if t.Rect.Min.X != o.Rect.Min.X {
		return t.Rect.Min.X < o.Rect.Min.X
	}
	if t.Rect.Min.Y != o.Rect.Min.Y {
		return t.Rect.Min.Y < o.Rect.Min.Y
	}
	if t.Rect.Dx() != o.Rect.Dx() {
		return t.Rect.Dx() < o.Rect.Dx()
	}
	return t.Rect.Dy() < o.Rect.Dy()
}

// Hash returns a 64 bit digest of all fields.
func (t Tile) Hash() uint64 {
	var buf [56]byte
	binary.LittleEndian.PutUint64(buf[0:], math.Float64bits(t.XRes))
	binary.LittleEndian.PutUint64(buf[8:], math.Float64bits(t.YRes))
	binary.LittleEndian.PutUint64(buf[16:], uint64(int64(t.Rect.Min.X)))
	binary.LittleEndian.PutUint64(buf[24:], uint64(int64(t.Rect.Min.Y)))
	binary.LittleEndian.PutUint64(buf[32:], uint64(int64(t.Rect.Dx())))
	binary.LittleEndian.PutUint64(buf[40:], uint64(int64(t.Rect.Dy())))
	binary.LittleEndian.PutUint64(buf[48:], uint64(int64(t.Page)))
	return xxhash.Sum64(buf[:])
}

// String formats the tile as p<page>,<xres>x<yres>,r<x>|<y>x<w>|<h>.
func (t Tile) String() string {
	return fmt.Sprintf("p%d,%gx%g,r%d|%dx%d|%d",
		t.Page, t.XRes, t.YRes,
		t.Rect.Min.X, t.Rect.Min.Y, t.Rect.Dx(), t.Rect.Dy())
}
