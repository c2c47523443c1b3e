package toolbox

import (
	"bytes"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/sokinpui/image-toolbox/internal/raster"
	"github.com/stretchr/testify/require"
)

func writeImage(t *testing.T, img image.Image) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.png")
	require.NoError(t, raster.Save(img, path))
	return path
}

func checkerInput(t *testing.T) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 8, 9))
	for y := 0; y < 9; y++ {
		for x := 0; x < 8; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
		}
	}
	for y := 2; y < 4; y++ {
		for x := 2; x < 4; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 250, G: 250, B: 250, A: 255})
		}
	}
	return writeImage(t, img)
}

func TestValidate(t *testing.T) {
	input := checkerInput(t)
	valid := func() Config {
		return Config{
			Mode:       ModeCompare,
			InputPath:  input,
			OutputPath: t.TempDir(),
			TileSize:   2,
			Threshold:  5,
			Workers:    2,
		}
	}

	cfg := valid()
	require.NoError(t, cfg.Validate())

	for name, mutate := range map[string]func(*Config){
		"missing input":   func(c *Config) { c.InputPath = "" },
		"absent input":    func(c *Config) { c.InputPath = filepath.Join(t.TempDir(), "none.png") },
		"no workers":      func(c *Config) { c.Workers = 0 },
		"bad type":        func(c *Config) { c.ImageType = "gif" },
		"bad mode":        func(c *Config) { c.Mode = "draw" },
		"zero tile":       func(c *Config) { c.TileSize = 0 },
		"neg reference":   func(c *Config) { c.Reference = -1 },
		"neg threshold":   func(c *Config) { c.Threshold = -0.5 },
		"bad metric":      func(c *Config) { c.Metric = "cuda" },
		"equalize no out": func(c *Config) { c.Mode = ModeEqualize; c.OutputPath = "" },
	} {
		cfg := valid()
		mutate(&cfg)
		require.Error(t, cfg.Validate(), name)
	}
}

func TestRunEqualize(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 3))
	for i := range img.Pix {
		img.Pix[i] = 10
	}
	outPath := filepath.Join(t.TempDir(), "equalized.png")
	cfg := &Config{Mode: ModeEqualize, InputPath: writeImage(t, img), OutputPath: outPath, Workers: 2}
	require.NoError(t, cfg.Validate())

	var out bytes.Buffer
	require.NoError(t, Run(cfg, &out))
	require.Contains(t, out.String(), "Equalized 3x3 image")

	got, err := raster.Load(outPath, "png")
	require.NoError(t, err)
	require.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 10}, got.NRGBAAt(1, 1))
}

func TestRunCompareWritesDissimilarBlocks(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "blocks")
	cfg := &Config{
		Mode:       ModeCompare,
		InputPath:  checkerInput(t),
		OutputPath: outDir,
		TileSize:   2,
		Threshold:  5,
		Metric:     "absolute",
		Workers:    3,
	}
	require.NoError(t, cfg.Validate())

	var out bytes.Buffer
	require.NoError(t, Run(cfg, &out))
	require.Contains(t, out.String(), "Divided image into 16 blocks")
	require.Contains(t, out.String(), "16/16 blocks processed")

	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "block_2_2.png", entries[0].Name())

	block, err := raster.Load(filepath.Join(outDir, "block_2_2.png"), "")
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 2, 2), block.Bounds())
	require.Equal(t, color.NRGBA{R: 250, G: 250, B: 250, A: 255}, block.NRGBAAt(0, 0))
}

func TestRunCompareErrors(t *testing.T) {
	input := checkerInput(t)

	cfg := &Config{Mode: ModeCompare, InputPath: input, OutputPath: t.TempDir(), TileSize: 8, Workers: 1}
	require.ErrorContains(t, Run(cfg, &bytes.Buffer{}), "invalid tile size")

	cfg = &Config{Mode: ModeCompare, InputPath: input, OutputPath: t.TempDir(), TileSize: 4, Reference: 4, Workers: 1}
	require.ErrorContains(t, Run(cfg, &bytes.Buffer{}), "out of range")

	cfg = &Config{Mode: ModeCompare, InputPath: input, OutputPath: t.TempDir(), TileSize: 4, Metric: "cuda", Workers: 1}
	require.ErrorContains(t, Run(cfg, &bytes.Buffer{}), "unknown metric")
}

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = prev })
	return &buf
}

func TestRunCompareLogsPSNROnlyForSquaredError(t *testing.T) {
	input := checkerInput(t)

	for metric, wantPSNR := range map[string]bool{
		"absolute": false,
		"deltae":   false,
		"squared":  true,
	} {
		logs := captureLog(t)
		cfg := &Config{
			Mode:       ModeCompare,
			InputPath:  input,
			OutputPath: t.TempDir(),
			TileSize:   2,
			Threshold:  5,
			Metric:     metric,
			Workers:    2,
		}
		require.NoError(t, Run(cfg, &bytes.Buffer{}), metric)
		require.Contains(t, logs.String(), `"mean_distance":`, metric)
		if wantPSNR {
			require.Contains(t, logs.String(), `"psnr":`, metric)
		} else {
			require.NotContains(t, logs.String(), `"psnr"`, metric)
		}
	}
}
