// Package imgcmp compares bitmaps with a tolerance for small rendering
// differences.
package imgcmp

import (
	"image"

	"github.com/matjam/pagefx/internal/frame"
)

// DefaultThreshold is the mean per-pixel difference below which two images
// are considered equal.
const DefaultThreshold = 3

// Diff returns the sum of absolute red, green and blue differences divided
// by the number of pixels. ok is false when the images differ in size or
// either is nil. Alpha is ignored.
func Diff(a, b image.Image) (score float64, ok bool) {
	if a == nil || b == nil {
		return 0, false
	}
	if a.Bounds().Size() != b.Bounds().Size() {
		return 0, false
	}

	ra, rb := frame.ToRGBA(a), frame.ToRGBA(b)
	n := ra.Rect.Dx() * ra.Rect.Dy()
	if n == 0 {
		return 0, true
	}

	var sum int
	for i := 0; i < len(ra.Pix); i += 4 {
		sum += abs(int(ra.Pix[i]) - int(rb.Pix[i]))
		sum += abs(int(ra.Pix[i+1]) - int(rb.Pix[i+1]))
		sum += abs(int(ra.Pix[i+2]) - int(rb.Pix[i+2]))
	}
	return float64(sum) / float64(n), true
}

// Equal reports whether a and b have the same size and their Diff is below
// threshold.
func Equal(a, b image.Image, threshold float64) bool {
	score, ok := Diff(a, b)
	return ok && score < threshold
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
