package frame

import (
	"image"

	"github.com/matjam/pagefx/internal/types"
	"golang.org/x/image/draw"
)

// ScaleImage scales img onto a targetW x targetH canvas according to mode.
// Areas of the canvas the image does not cover are left transparent black.
func ScaleImage(img image.Image, targetW, targetH int, mode types.ScalingMode) *image.RGBA {
	var dstRect image.Rectangle
	srcW := img.Bounds().Dx()
	srcH := img.Bounds().Dy()

	switch mode {
	case types.ScalingModeStretch:
		dstRect = image.Rect(0, 0, targetW, targetH)
	case types.ScalingModeFitHorizontal:
		scale := float64(targetW) / float64(srcW)
		h := int(float64(srcH) * scale)
		y := (targetH - h) / 2
		dstRect = image.Rect(0, y, targetW, y+h)
	case types.ScalingModeFitVertical:
		scale := float64(targetH) / float64(srcH)
		w := int(float64(srcW) * scale)
		x := (targetW - w) / 2
		dstRect = image.Rect(x, 0, x+w, targetH)
	case types.ScalingModeCenter:
		fallthrough
	default:
		// keep original size, centered
		x := (targetW - srcW) / 2
		y := (targetH - srcH) / 2
		dstRect = image.Rect(x, y, x+srcW, y+srcH)
	}

	dst := image.NewRGBA(image.Rect(0, 0, targetW, targetH))
	if dstRect.Dx() == srcW && dstRect.Dy() == srcH {
		draw.Copy(dst, dstRect.Min, img, img.Bounds(), draw.Src, nil)
		return dst
	}
	draw.CatmullRom.Scale(dst, dstRect, img, img.Bounds(), draw.Over, nil)
	return dst
}

// Conform returns img as an origin-based RGBA frame with the given size,
// scaling it with mode when the sizes differ.
func Conform(img image.Image, size image.Point, mode types.ScalingMode) *image.RGBA {
	if img.Bounds().Size() == size {
		return ToRGBA(img)
	}
	return ScaleImage(img, size.X, size.Y, mode)
}
