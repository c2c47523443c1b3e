// Package toolbox wires the histogram, equalize and comparator packages into
// the two runs the command line offers.
package toolbox

import (
	"fmt"
	"io"
	"math"
	"runtime"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"
	"github.com/sokinpui/image-toolbox/internal/comparator"
	"github.com/sokinpui/image-toolbox/internal/equalize"
	"github.com/sokinpui/image-toolbox/internal/palette"
	"github.com/sokinpui/image-toolbox/internal/raster"
)

// Run is the main application logic. Human-readable output goes to out.
func Run(cfg *Config, out io.Writer) error {
	log.Info().Str("mode", cfg.Mode).Int("workers", cfg.Workers).Str("input", cfg.InputPath).Msg("starting")
	defer runtime.GOMAXPROCS(runtime.GOMAXPROCS(cfg.Workers))

	switch strings.ToLower(cfg.Mode) {
	case ModeEqualize:
		return runEqualize(cfg, out)
	case ModeCompare:
		return runCompare(cfg, out)
	default:
		return fmt.Errorf("unsupported mode: %s", cfg.Mode)
	}
}

func runEqualize(cfg *Config, out io.Writer) error {
	img, err := raster.Load(cfg.InputPath, cfg.ImageType)
	if err != nil {
		return fmt.Errorf("failed to load image: %w", err)
	}

	startTime := time.Now()
	equalized, err := equalize.Image(img)
	if err != nil {
		return err
	}
	duration := time.Since(startTime)

	if err := raster.Save(equalized, cfg.OutputPath); err != nil {
		return err
	}

	w, h := raster.Size(img)
	log.Info().Int("width", w).Int("height", h).Dur("duration", duration).Str("output", cfg.OutputPath).Msg("equalized image")
	fmt.Fprintf(out, "Equalized %dx%d image in %s -> %s\n", w, h, styled(palette.Orange, fmt.Sprintf("%.4fs", duration.Seconds())), cfg.OutputPath)
	return nil
}

func runCompare(cfg *Config, out io.Writer) error {
	metric, err := comparator.NewMetric(cfg.Metric)
	if err != nil {
		return err
	}

	img, err := raster.Load(cfg.InputPath, cfg.ImageType)
	if err != nil {
		return fmt.Errorf("failed to load image: %w", err)
	}

	blocks, err := comparator.Partition(img, cfg.TileSize)
	if err != nil {
		return err
	}
	if cfg.Reference >= len(blocks) {
		return fmt.Errorf("reference block %d out of range: image has %d blocks", cfg.Reference, len(blocks))
	}
	reference := blocks[cfg.Reference]
	fmt.Fprintf(out, "Divided image into %d blocks; reference is %s.\n", len(blocks), reference)

	cmp := comparator.New(metric, cfg.Workers)
	stop := startProgress(out, cmp.Processed, int64(len(blocks)))
	startTime := time.Now()
	distances, err := cmp.Distances(img, reference, blocks)
	duration := time.Since(startTime)
	stop()
	if err != nil {
		return err
	}

	dissimilar := comparator.Dissimilar(blocks, distances, cfg.Threshold)
	mean := meanOf(distances)
	event := log.Info().
		Int("tile_size", cfg.TileSize).
		Int("blocks", len(blocks)).
		Int("dissimilar", len(dissimilar)).
		Float64("mean_distance", mean).
		Dur("duration", duration)
	if comparator.IsSquaredError(metric) && mean > 0 {
		event = event.Float64("psnr", comparator.PSNR(mean, 255))
	}
	event.Msg("compared blocks")

	fmt.Fprintf(out, "Similar blocks: %s\n", styled(palette.Green, fmt.Sprint(len(blocks)-len(dissimilar))))
	fmt.Fprintf(out, "Dissimilar blocks: %s\n", styled(palette.Red, fmt.Sprint(len(dissimilar))))
	fmt.Fprintf(out, "Total processing time: %s\n", styled(palette.Orange, fmt.Sprintf("%.4fs", duration.Seconds())))

	if err := saveDissimilarBlocks(img, dissimilar, cfg.OutputPath); err != nil {
		return err
	}
	log.Info().Str("output", cfg.OutputPath).Msg("processing complete")
	return nil
}

func meanOf(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func styled(name palette.Name, s string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(palette.Default().Hex(name))).Render(s)
}
