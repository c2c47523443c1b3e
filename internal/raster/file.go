package raster

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"strings"

	"github.com/disintegration/imaging"
	"golang.org/x/image/bmp"
)

// decoders maps the accepted --type names to their decoder.
var decoders = map[string]func(io.Reader) (image.Image, error){
	"jpeg": jpeg.Decode,
	"jpg":  jpeg.Decode,
	"png":  png.Decode,
	"bmp":  bmp.Decode,
}

// Load decodes the image at path into an *image.NRGBA anchored at (0, 0).
// An empty imageType sniffs the format and applies any EXIF orientation;
// otherwise the named decoder is used as is.
func Load(path string, imageType string) (*image.NRGBA, error) {
	decode := func(r io.Reader) (image.Image, error) {
		return imaging.Decode(r, imaging.AutoOrientation(true))
	}
	if imageType != "" {
		d, ok := decoders[strings.ToLower(imageType)]
		if !ok {
			return nil, fmt.Errorf("unsupported image type specified: %s", imageType)
		}
		decode = d
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open file: %w", err)
	}
	defer f.Close()

	img, err := decode(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode %s: %w", path, err)
	}
	if n, ok := img.(*image.NRGBA); ok && n.Rect.Min == (image.Point{}) {
		return n, nil
	}
	return Snapshot(img), nil
}

// Save encodes img to path. The format is chosen from the file extension.
func Save(img image.Image, path string) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("could not save image %s: %w", path, err)
	}
	return nil
}
