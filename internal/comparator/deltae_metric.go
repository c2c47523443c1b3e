package comparator

import (
	"fmt"
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/sokinpui/image-toolbox/internal/raster"
)

// DeltaEMetric is the mean CIEDE2000 colour difference between corresponding
// pixels of the two blocks.
type DeltaEMetric struct{}

func (DeltaEMetric) BlockDistance(img image.Image, reference, candidate Block) (float64, error) {
	if reference.W != candidate.W || reference.H != candidate.H {
		return 0, fmt.Errorf("%w: %s vs %s", ErrLengthMismatch, reference, candidate)
	}

	pixelCount := float64(reference.Area())
	if pixelCount <= 0 {
		return 0, nil
	}

	var totalDifference float64
	for dx := 0; dx < reference.W; dx++ {
		for dy := 0; dy < reference.H; dy++ {
			c1 := toColorful(raster.At(img, reference.X+dx, reference.Y+dy))
			c2 := toColorful(raster.At(img, candidate.X+dx, candidate.Y+dy))
			totalDifference += c1.DistanceCIEDE2000(c2)
		}
	}
	return totalDifference / pixelCount, nil
}

func toColorful(p color.NRGBA) colorful.Color {
	return colorful.Color{
		R: float64(p.R) / 255.0,
		G: float64(p.G) / 255.0,
		B: float64(p.B) / 255.0,
	}
}
