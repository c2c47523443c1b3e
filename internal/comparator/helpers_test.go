package comparator

import (
	"image"
	"image/color"
)

// gradient returns an image whose pixel (x, y) is (x*16, y*16, x+y, 255).
func gradient(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 16), G: uint8(y * 16), B: uint8(x + y), A: 255})
		}
	}
	return img
}

func paint(img *image.NRGBA, b Block, c color.NRGBA) {
	for x := b.X; x < b.EdgeX(); x++ {
		for y := b.Y; y < b.EdgeY(); y++ {
			img.SetNRGBA(x, y, c)
		}
	}
}
