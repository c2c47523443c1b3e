package toolbox

import (
	"fmt"
	"os"
	"strings"
)

const (
	ModeEqualize = "equalize"
	ModeCompare  = "compare"
)

// Config holds all the configuration parameters for a run,
// parsed from command-line flags.
type Config struct {
	Mode string
	// InputPath is the image to process.
	InputPath string
	// OutputPath is the equalized image file in equalize mode and the
	// directory receiving dissimilar blocks in compare mode.
	OutputPath string
	ImageType  string
	TileSize   int
	// Reference is the index, in partition order, of the block the others are compared with.
	Reference int
	Threshold float64
	Metric    string
	Workers   int
	LogLevel  string
}

// Validate checks if the configuration is usable.
func (cfg *Config) Validate() error {
	if cfg.InputPath == "" {
		return fmt.Errorf("--input/-i flag is required")
	}
	if _, err := os.Stat(cfg.InputPath); os.IsNotExist(err) {
		return fmt.Errorf("input file does not exist: %s", cfg.InputPath)
	}
	if cfg.Workers <= 0 {
		return fmt.Errorf("--workers must be a positive integer")
	}
	if cfg.ImageType != "" {
		switch strings.ToLower(cfg.ImageType) {
		case "jpeg", "jpg", "png", "bmp":
		default:
			return fmt.Errorf("unsupported image type: %s", cfg.ImageType)
		}
	}

	switch strings.ToLower(cfg.Mode) {
	case ModeEqualize:
		if cfg.OutputPath == "" {
			return fmt.Errorf("--output/-o is required in %s mode", ModeEqualize)
		}
	case ModeCompare:
		if cfg.TileSize <= 0 {
			return fmt.Errorf("--tile-size must be a positive integer")
		}
		if cfg.Reference < 0 {
			return fmt.Errorf("--reference must not be negative")
		}
		if cfg.Threshold < 0 {
			return fmt.Errorf("--threshold must not be negative")
		}
		switch strings.ToLower(cfg.Metric) {
		case "", "absolute", "squared", "deltae", "opencv":
		default:
			return fmt.Errorf("unsupported metric: %s. Supported metrics are absolute, squared, deltae, opencv", cfg.Metric)
		}
	default:
		return fmt.Errorf("unsupported mode: %s. Supported modes are %s, %s", cfg.Mode, ModeEqualize, ModeCompare)
	}
	return nil
}
