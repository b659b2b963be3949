package transition

import (
	"image"
	"math"

	"github.com/matjam/pagefx/internal/frame"
	"github.com/matjam/pagefx/internal/types"
)

// blindsCount is the number of strips the blinds style opens.
const blindsCount = 6

// Params carries the per-transition settings Sample needs besides the
// style and progress.
type Params struct {
	Direction int
	Motion    Motion
	// Noise holds one threshold in [0, 1) per pixel, row major. Dissolve
	// and glitter generate a fixed field when it is missing or too short.
	Noise []float32
}

// Sample renders style at progress p (0 shows from, 1 shows to) into a new
// frame. It never modifies from or to. to is stretched onto the size of
// from when they differ. Sample returns nil if either frame is nil.
func Sample(style Style, from, to *image.RGBA, p float64, params Params) *image.RGBA {
	if from == nil || to == nil {
		return nil
	}
	from = normalize(from)
	size := from.Rect.Size()
	if to.Rect.Size() != size {
		to = frame.Conform(to, size, types.ScalingModeStretch)
	}
	to = normalize(to)

	if style == StyleReplace || p >= 1 {
		return clone(to)
	}
	if p <= 0 {
		return clone(from)
	}

	out := image.NewRGBA(image.Rectangle{Max: size})
	w, h := float64(size.X), float64(size.Y)

	switch style {
	case StyleSplit:
		compose(out, from, to, mask(splitMask(w, h, p, params)))
	case StyleBlinds:
		compose(out, from, to, mask(blindsMask(w, h, p, params.Direction)))
	case StyleBox:
		compose(out, from, to, mask(boxMask(w, h, p, params.Motion)))
	case StyleWipe:
		compose(out, from, to, mask(wipeMask(w, h, p, params.Direction)))
	case StyleDissolve:
		noise := noiseFor(params.Noise, size)
		compose(out, from, to, mask(func(x, y int) bool {
			return float64(noise[y*size.X+x]) < p
		}))
	case StyleGlitter:
		compose(out, from, to, mask(glitterMask(w, h, p, params.Direction, noiseFor(params.Noise, size))))
	case StyleFly:
		if params.Direction == Undirected {
			if params.Motion == MotionOutward {
				compose(out, from, to, zoom(srcFrom, 1-p, size))
			} else {
				compose(out, from, to, zoom(srcTo, p, size))
			}
		} else if params.Motion == MotionOutward {
			compose(out, from, to, uncover(p, params.Direction, size))
		} else {
			compose(out, from, to, cover(p, params.Direction, size))
		}
	case StylePush:
		compose(out, from, to, push(p, params.Direction, size))
	case StyleCover:
		compose(out, from, to, cover(p, params.Direction, size))
	case StyleUncover:
		compose(out, from, to, uncover(p, params.Direction, size))
	case StyleFade:
		fade(out, from, to, p)
	default:
		copy(out.Pix, to.Pix)
	}
	return out
}

// source identifies the frame and pixel an output pixel is copied from.
type source int

const (
	srcFrom source = iota
	srcTo
)

// picker maps an output pixel to the frame and coordinates it shows.
type picker func(x, y int) (source, int, int)

func mask(showEnd func(x, y int) bool) picker {
	return func(x, y int) (source, int, int) {
		if showEnd(x, y) {
			return srcTo, x, y
		}
		return srcFrom, x, y
	}
}

func compose(out, from, to *image.RGBA, pick picker) {
	w, h := out.Rect.Dx(), out.Rect.Dy()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			s, sx, sy := pick(x, y)
			src := from
			if s == srcTo {
				src = to
			}
			i := y*out.Stride + x*4
			j := sy*src.Stride + sx*4
			copy(out.Pix[i:i+4], src.Pix[j:j+4])
		}
	}
}

func fade(out, from, to *image.RGBA, p float64) {
	for i := range out.Pix {
		v := float64(from.Pix[i])*(1-p) + float64(to.Pix[i])*p
		out.Pix[i] = uint8(math.Round(v))
	}
}

// center returns the pixel centre of index i.
func center(i int) float64 {
	return float64(i) + 0.5
}

func wipeMask(w, h, p float64, dir int) func(x, y int) bool {
	switch dir {
	case 90:
		return func(_, y int) bool { return center(y) > (1-p)*h }
	case 180:
		return func(x, _ int) bool { return center(x) > (1-p)*w }
	case 270:
		return func(_, y int) bool { return center(y) < p*h }
	default:
		return func(x, _ int) bool { return center(x) < p*w }
	}
}

func splitMask(w, h, p float64, params Params) func(x, y int) bool {
	// distance from the centre line, 0 on the line and 1 at the edges
	dist := func(_, y int) float64 { return math.Abs(center(y)-h/2) / (h / 2) }
	if params.Direction == 90 {
		dist = func(x, _ int) float64 { return math.Abs(center(x)-w/2) / (w / 2) }
	}
	if params.Motion == MotionOutward {
		return func(x, y int) bool { return dist(x, y) < p }
	}
	return func(x, y int) bool { return dist(x, y) > 1-p }
}

func blindsMask(w, h, p float64, dir int) func(x, y int) bool {
	strip := h / blindsCount
	coord := func(_, y int) float64 { return center(y) }
	if dir == 90 {
		strip = w / blindsCount
		coord = func(x, _ int) float64 { return center(x) }
	}
	return func(x, y int) bool {
		return math.Mod(coord(x, y), strip)/strip < p
	}
}

func boxMask(w, h, p float64, motion Motion) func(x, y int) bool {
	dist := func(x, y int) float64 {
		return math.Max(
			math.Abs(center(x)-w/2)/(w/2),
			math.Abs(center(y)-h/2)/(h/2),
		)
	}
	if motion == MotionOutward {
		return func(x, y int) bool { return dist(x, y) < p }
	}
	return func(x, y int) bool { return dist(x, y) > 1-p }
}

func glitterMask(w, h, p float64, dir int, noise []float32) func(x, y int) bool {
	stride := int(w)
	pos := func(x, _ int) float64 { return center(x) / w }
	switch dir {
	case 90:
		pos = func(_, y int) float64 { return 1 - center(y)/h }
	case 180:
		pos = func(x, _ int) float64 { return 1 - center(x)/w }
	case 270:
		pos = func(_, y int) float64 { return center(y) / h }
	case 315:
		pos = func(x, y int) float64 { return (center(x)/w + center(y)/h) / 2 }
	case Undirected:
		// no bias, the noise alone spans the whole duration
		return func(x, y int) bool { return float64(noise[y*stride+x]) < p }
	}
	return func(x, y int) bool {
		threshold := (pos(x, y) + float64(noise[y*stride+x])) / 2
		return threshold < p
	}
}

// unit returns the travel vector for a direction in image coordinates.
func unit(dir int) (int, int) {
	switch dir {
	case 90:
		return 0, -1
	case 180:
		return -1, 0
	case 270:
		return 0, 1
	case 315:
		return 1, 1
	default:
		return 1, 0
	}
}

func offset(frac float64, dir int, size image.Point) (int, int) {
	ux, uy := unit(dir)
	return int(math.Round(frac * float64(ux*size.X))), int(math.Round(frac * float64(uy*size.Y)))
}

func inside(x, y int, size image.Point) bool {
	return x >= 0 && y >= 0 && x < size.X && y < size.Y
}

// cover slides the end frame in over the start frame.
func cover(p float64, dir int, size image.Point) picker {
	dx, dy := offset(p-1, dir, size)
	return func(x, y int) (source, int, int) {
		if sx, sy := x-dx, y-dy; inside(sx, sy, size) {
			return srcTo, sx, sy
		}
		return srcFrom, x, y
	}
}

// uncover slides the start frame off the end frame.
func uncover(p float64, dir int, size image.Point) picker {
	dx, dy := offset(p, dir, size)
	return func(x, y int) (source, int, int) {
		if sx, sy := x-dx, y-dy; inside(sx, sy, size) {
			return srcFrom, sx, sy
		}
		return srcTo, x, y
	}
}

func push(p float64, dir int, size image.Point) picker {
	ex, ey := offset(p-1, dir, size)
	sx, sy := offset(p, dir, size)
	return func(x, y int) (source, int, int) {
		if tx, ty := x-ex, y-ey; inside(tx, ty, size) {
			return srcTo, tx, ty
		}
		if fx, fy := x-sx, y-sy; inside(fx, fy, size) {
			return srcFrom, fx, fy
		}
		return srcTo, x, y
	}
}

// zoom shows the over frame scaled by s around the centre, and the other
// frame everywhere else.
func zoom(over source, s float64, size image.Point) picker {
	under := srcFrom
	if over == srcFrom {
		under = srcTo
	}
	if s <= 0 {
		return func(x, y int) (source, int, int) { return under, x, y }
	}
	w, h := float64(size.X), float64(size.Y)
	x0, y0 := (w-w*s)/2, (h-h*s)/2
	return func(x, y int) (source, int, int) {
		fx := (center(x) - x0) / s
		fy := (center(y) - y0) / s
		if fx < 0 || fy < 0 || fx >= w || fy >= h {
			return under, x, y
		}
		return over, int(fx), int(fy)
	}
}

func noiseFor(noise []float32, size image.Point) []float32 {
	if len(noise) >= size.X*size.Y {
		return noise
	}
	return NewNoise(size.X*size.Y, fallbackSeed)
}

const fallbackSeed = 0x5eed

func normalize(img *image.RGBA) *image.RGBA {
	if img.Rect.Min == (image.Point{}) && img.Stride == 4*img.Rect.Dx() {
		return img
	}
	return frame.ToRGBA(img)
}

func clone(img *image.RGBA) *image.RGBA {
	out := image.NewRGBA(img.Rect)
	copy(out.Pix, img.Pix)
	return out
}
