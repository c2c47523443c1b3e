// Package raster is the pixel-addressable image layer the rest of the
// toolbox is built on. All coordinates are relative to the image's bounds
// origin, so a sub-image behaves the same as a freshly decoded one.
package raster

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Size returns the width and height of img.
func Size(img image.Image) (width, height int) {
	b := img.Bounds()
	return b.Dx(), b.Dy()
}

// At returns the non-premultiplied RGBA pixel at (x, y).
// *image.NRGBA is read directly; other image types go through the colour model.
func At(img image.Image, x, y int) color.NRGBA {
	b := img.Bounds()
	if n, ok := img.(*image.NRGBA); ok {
		return n.NRGBAAt(b.Min.X+x, b.Min.Y+y)
	}
	return color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
}

// New returns a blank, fully transparent image of the given size anchored at (0, 0).
func New(width, height int) *image.NRGBA {
	return imaging.New(width, height, color.Transparent)
}

// Snapshot copies img into a new *image.NRGBA anchored at (0, 0).
func Snapshot(img image.Image) *image.NRGBA {
	return imaging.Clone(img)
}

// Crop copies the rectangle r, given relative to img's origin, into a new image.
func Crop(img image.Image, r image.Rectangle) *image.NRGBA {
	return imaging.Crop(img, r.Add(img.Bounds().Min))
}
