package comparator

import (
	"errors"
	"fmt"
	"image"

	"github.com/sokinpui/image-toolbox/internal/raster"
)

// ErrInvalidTileSize is returned when a tile cannot fit at least once, with room
// to spare, along both image dimensions.
var ErrInvalidTileSize = errors.New("invalid tile size")

// Block is an axis-aligned window of an image: origin (X, Y) and extent W x H,
// relative to the image's bounds origin. It describes pixels, it does not hold them.
type Block struct {
	X, Y int
	W, H int
}

// NewBlock returns the block with origin (x, y) and extent w x h.
func NewBlock(x, y, w, h int) Block {
	return Block{X: x, Y: y, W: w, H: h}
}

// EdgeX is the exclusive right edge of the block.
func (b Block) EdgeX() int { return b.X + b.W }

// EdgeY is the exclusive bottom edge of the block.
func (b Block) EdgeY() int { return b.Y + b.H }

// Rect returns the block as an image.Rectangle relative to the image origin.
func (b Block) Rect() image.Rectangle {
	return image.Rect(b.X, b.Y, b.EdgeX(), b.EdgeY())
}

// Area is the number of pixels the block covers.
func (b Block) Area() int { return b.W * b.H }

func (b Block) String() string {
	return fmt.Sprintf("%dx%d@(%d,%d)", b.W, b.H, b.X, b.Y)
}

// Partition tiles img into tileSize x tileSize blocks. Origins advance by
// tileSize along x (outer) and y (inner); a trailing row or column that cannot
// hold a full tile is dropped.
func Partition(img image.Image, tileSize int) ([]Block, error) {
	width, height := raster.Size(img)
	if tileSize <= 0 || tileSize >= width || tileSize >= height {
		return nil, fmt.Errorf("%w: %d for %dx%d image", ErrInvalidTileSize, tileSize, width, height)
	}

	blocks := make([]Block, 0, (width/tileSize)*(height/tileSize))
	for x := 0; x+tileSize <= width; x += tileSize {
		for y := 0; y+tileSize <= height; y += tileSize {
			blocks = append(blocks, NewBlock(x, y, tileSize, tileSize))
		}
	}
	return blocks, nil
}
