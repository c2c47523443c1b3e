// Package equalize spreads an image's intensities across the full 0-255 range
// using each channel's inclusive cumulative distribution.
package equalize

import (
	"fmt"
	"image"
	"math"
	"runtime"
	"sync"

	"github.com/sokinpui/image-toolbox/internal/histogram"
	"github.com/sokinpui/image-toolbox/internal/raster"
)

// RemapPixel returns floor(255 * CumulativeUpTo(c, value)), clamped to a byte.
// A channel other than Red, Green or Blue maps every value to 0.
func RemapPixel(value uint8, c histogram.Channel, h *histogram.Histogram) uint8 {
	v := math.Floor((histogram.Levels - 1) * h.CumulativeUpTo(c, value))
	return uint8(min(max(v, 0), histogram.Levels-1))
}

// Image builds the histogram of img and returns the equalized copy.
// img is left untouched.
func Image(img image.Image) (*image.NRGBA, error) {
	hist, err := histogram.Build(img)
	if err != nil {
		return nil, fmt.Errorf("equalize: %w", err)
	}
	return Transform(img, hist), nil
}

// Transform remaps the red, green and blue channels of img through hist and
// copies alpha unchanged. The result has img's dimensions, anchored at (0, 0).
func Transform(img image.Image, hist *histogram.Histogram) *image.NRGBA {
	var lut [3][histogram.Levels]uint8
	for _, ch := range histogram.Channels {
		for v := 0; v < histogram.Levels; v++ {
			lut[ch][v] = RemapPixel(uint8(v), ch, hist)
		}
	}

	width, height := raster.Size(img)
	out := raster.New(width, height)

	workers := max(1, min(runtime.GOMAXPROCS(0), height))
	band := (height + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < height; start += band {
		start := start
		end := min(start+band, height)
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := start; y < end; y++ {
				row := out.Pix[y*out.Stride:]
				for x := 0; x < width; x++ {
					p := raster.At(img, x, y)
					i := x * 4
					row[i+0] = lut[histogram.Red][p.R]
					row[i+1] = lut[histogram.Green][p.G]
					row[i+2] = lut[histogram.Blue][p.B]
					row[i+3] = p.A
				}
			}
		}()
	}
	wg.Wait()
	return out
}
