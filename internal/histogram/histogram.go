// Package histogram builds per-channel empirical intensity distributions.
package histogram

import (
	"errors"
	"fmt"
	"image"
	"runtime"
	"strings"

	"github.com/sokinpui/image-toolbox/internal/raster"
	"golang.org/x/sync/errgroup"
)

// Levels is the number of intensity values per channel.
const Levels = 256

// ErrInvalidImage is returned when a histogram is requested for an image with no pixels.
var ErrInvalidImage = errors.New("invalid image")

// Channel selects one of the three colour planes. Alpha is never histogrammed.
type Channel int

const (
	Red Channel = iota
	Green
	Blue
)

// Channels lists every colour channel in storage order.
var Channels = [...]Channel{Red, Green, Blue}

func (c Channel) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	default:
		return fmt.Sprintf("Channel(%d)", int(c))
	}
}

// Histogram holds the normalized distribution of each colour channel.
// Entry i of a channel is the fraction of pixels whose value on that channel is i.
// A Histogram is immutable once built.
type Histogram struct {
	dist [3][Levels]float64
	// cdf is the inclusive running sum of dist, accumulated from 0 upward.
	cdf [3][Levels]float64
}

type counts [3][Levels]int

// Build counts every pixel of img once and normalizes by the pixel count.
// Rows are split across GOMAXPROCS workers and the partial counts merged.
func Build(img image.Image) (*Histogram, error) {
	return build(img, runtime.GOMAXPROCS(0))
}

func build(img image.Image, workers int) (*Histogram, error) {
	width, height := raster.Size(img)
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d has no pixels", ErrInvalidImage, width, height)
	}

	workers = max(1, min(workers, height))
	partial := make([]counts, workers)
	band := (height + workers - 1) / workers

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		start := w * band
		end := min(start+band, height)
		if start >= end {
			continue
		}
		c := &partial[w]
		g.Go(func() error {
			for y := start; y < end; y++ {
				for x := 0; x < width; x++ {
					p := raster.At(img, x, y)
					c[Red][p.R]++
					c[Green][p.G]++
					c[Blue][p.B]++
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var total counts
	for _, c := range partial {
		for ch := range c {
			for i, n := range c[ch] {
				total[ch][i] += n
			}
		}
	}

	pixels := float64(width * height)
	h := &Histogram{}
	for ch := range total {
		var sum float64
		for i, n := range total[ch] {
			h.dist[ch][i] = float64(n) / pixels
			sum += h.dist[ch][i]
			h.cdf[ch][i] = sum
		}
	}
	return h, nil
}

// ProbabilityAt returns the red, green and blue probabilities of value.
func (h *Histogram) ProbabilityAt(value uint8) (r, g, b float64) {
	return h.dist[Red][value], h.dist[Green][value], h.dist[Blue][value]
}

// Valid reports whether c is Red, Green or Blue.
func (c Channel) Valid() bool {
	return c >= Red && c <= Blue
}

// ProbabilityOf returns the probability of value on a single channel.
// It is 0 for an invalid channel.
func (h *Histogram) ProbabilityOf(c Channel, value uint8) float64 {
	if !c.Valid() {
		return 0
	}
	return h.dist[c][value]
}

// CumulativeUpTo returns the sum of ProbabilityOf(c, i) for i in [0, value].
// The sum is accumulated in ascending order, so it is bit-identical to a naive loop.
// It is 0 for an invalid channel.
func (h *Histogram) CumulativeUpTo(c Channel, value uint8) float64 {
	if !c.Valid() {
		return 0
	}
	return h.cdf[c][value]
}

// String lists the non-zero entries of each channel.
func (h *Histogram) String() string {
	var sb strings.Builder
	for _, ch := range Channels {
		fmt.Fprintf(&sb, "\n----------------- %s -----------------\n", strings.ToUpper(ch.String()))
		for i, p := range h.dist[ch] {
			if p > 0 {
				fmt.Fprintf(&sb, "%d => %g\n", i, p)
			}
		}
	}
	return sb.String()
}
