package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/rs/zerolog/log"
	"github.com/sokinpui/image-toolbox/internal/logger"
	"github.com/sokinpui/image-toolbox/internal/toolbox"
	"github.com/spf13/pflag"
)

func main() {
	cfg := parseFlags(os.Args[1:])

	logFile, err := logger.Init("imgtool.log", logger.ParseLevel(cfg.LogLevel))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	if err = cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("configuration error")
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(1)
	}

	if err = toolbox.Run(cfg, os.Stdout); err != nil {
		log.Error().Err(err).Msg("application error")
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

// parseFlags defines and parses command-line flags, returning them
// in a Config struct. Parse errors exit the process.
func parseFlags(args []string) *toolbox.Config {
	cfg := &toolbox.Config{}
	fs := pflag.NewFlagSet("imgtool", pflag.ExitOnError)

	fs.StringVar(&cfg.Mode, "mode", toolbox.ModeCompare, "Operation to run (equalize, compare).")
	fs.StringVarP(&cfg.InputPath, "input", "i", "", "Path to the input image.")
	fs.StringVarP(&cfg.OutputPath, "output", "o", "./output", "Equalized image path, or the directory receiving dissimilar blocks.")
	fs.IntVarP(&cfg.TileSize, "tile-size", "s", 50, "The height and width of the square blocks to divide the image into.")
	fs.IntVarP(&cfg.Reference, "reference", "r", 0, "Index of the reference block, in partition order.")
	fs.Float64VarP(&cfg.Threshold, "threshold", "t", 60.0, "Distance above which a block is dissimilar to the reference.")
	fs.StringVarP(&cfg.Metric, "metric", "m", "absolute", "Block distance metric (absolute, squared, deltae, opencv).")
	fs.IntVarP(&cfg.Workers, "workers", "c", runtime.NumCPU(), "Number of CPU cores to use for processing.")
	fs.StringVar(&cfg.ImageType, "type", "", "Type of the input image (e.g., jpeg, png, bmp). If not specified, it will be inferred.")
	fs.StringVar(&cfg.LogLevel, "log-level", "info", "Log level written to imgtool.log.")

	_ = fs.Parse(args)
	return cfg
}
