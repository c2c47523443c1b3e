package comparator

import (
	"image"

	"github.com/sokinpui/image-toolbox/internal/raster"
)

// ExtractChannels flattens the pixels of b into one sequence per colour
// channel, visiting x (outer) then y (inner) like Partition.
func ExtractChannels(img image.Image, b Block) (red, green, blue []uint8) {
	n := max(b.Area(), 0)
	red = make([]uint8, 0, n)
	green = make([]uint8, 0, n)
	blue = make([]uint8, 0, n)
	for x := b.X; x < b.EdgeX(); x++ {
		for y := b.Y; y < b.EdgeY(); y++ {
			p := raster.At(img, x, y)
			red = append(red, p.R)
			green = append(green, p.G)
			blue = append(blue, p.B)
		}
	}
	return red, green, blue
}
