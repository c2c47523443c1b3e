package toolbox

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/sokinpui/image-toolbox/internal/comparator"
	"github.com/sokinpui/image-toolbox/internal/raster"
)

// saveDissimilarBlocks writes each block of img as block_<x>_<y>.png under outputDir.
// A block that fails to save is logged and skipped; the first failure is returned.
func saveDissimilarBlocks(img image.Image, blocks []comparator.Block, outputDir string) error {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("error creating directory %s: %w", outputDir, err)
	}

	var firstErr error
	for _, b := range blocks {
		path := filepath.Join(outputDir, blockFileName(b))
		if err := raster.Save(raster.Crop(img, b.Rect()), path); err != nil {
			log.Error().Err(err).Str("block", b.String()).Msg("saving block")
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		log.Debug().Str("path", path).Msg("saved dissimilar block")
	}
	return firstErr
}

func blockFileName(b comparator.Block) string {
	return fmt.Sprintf("block_%d_%d.png", b.X, b.Y)
}
