//go:build opencv

package comparator

import (
	"fmt"
	"image"

	"github.com/sokinpui/image-toolbox/internal/raster"
	"gocv.io/x/gocv"
)

// OpenCVMetric computes the same value as AbsoluteMetric with OpenCV's
// AbsDiff and Mean. Blocks are made opaque before conversion so OpenCV sees
// the non-premultiplied channel values. It requires OpenCV and the opencv build tag.
type OpenCVMetric struct{}

func newOpenCVMetric() (Metric, error) {
	return OpenCVMetric{}, nil
}

func (OpenCVMetric) BlockDistance(img image.Image, reference, candidate Block) (d float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			// gocv can panic on certain image types.
			err = fmt.Errorf("opencv: %v", r)
		}
	}()

	if reference.W != candidate.W || reference.H != candidate.H {
		return 0, fmt.Errorf("%w: %s vs %s", ErrLengthMismatch, reference, candidate)
	}
	if reference.Area() <= 0 {
		return 0, nil
	}

	matA, err := gocv.ImageToMatRGB(opaque(raster.Crop(img, reference.Rect())))
	if err != nil {
		return 0, fmt.Errorf("converting reference block to Mat: %w", err)
	}
	defer matA.Close()

	matB, err := gocv.ImageToMatRGB(opaque(raster.Crop(img, candidate.Rect())))
	if err != nil {
		return 0, fmt.Errorf("converting candidate block to Mat: %w", err)
	}
	defer matB.Close()

	diff := gocv.NewMat()
	defer diff.Close()
	gocv.AbsDiff(matB, matA, &diff)

	// Per-channel means of |b - a|; channel order does not matter for the average.
	mean := diff.Mean()
	return (mean.Val1 + mean.Val2 + mean.Val3) / 3, nil
}

// opaque sets every alpha of img to 255 in place.
func opaque(img *image.NRGBA) *image.NRGBA {
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 0xff
	}
	return img
}
