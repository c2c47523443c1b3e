package comparator

import (
	"errors"
	"fmt"
	"image"
	"strings"
)

// ErrUnknownMetric is returned by NewMetric for names it does not recognise.
var ErrUnknownMetric = errors.New("unknown metric")

// Metric measures how far a candidate block is from a reference block of the same image.
type Metric interface {
	BlockDistance(img image.Image, reference, candidate Block) (float64, error)
}

// SquaredError is implemented by metrics whose distance is a mean squared
// error on the 0-255 scale, the only kind PSNR is defined for.
type SquaredError interface {
	SquaredError() bool
}

// IsSquaredError reports whether m yields a mean squared error.
func IsSquaredError(m Metric) bool {
	se, ok := m.(SquaredError)
	return ok && se.SquaredError()
}

// NewMetric returns the metric registered under name.
func NewMetric(name string) (Metric, error) {
	switch strings.ToLower(name) {
	case "", "absolute":
		return AbsoluteMetric{}, nil
	case "squared":
		return SquaredMetric{}, nil
	case "deltae":
		return DeltaEMetric{}, nil
	case "opencv":
		return newOpenCVMetric()
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownMetric, name)
	}
}

// AbsoluteMetric averages the per-channel mean absolute difference.
type AbsoluteMetric struct{}

func (AbsoluteMetric) BlockDistance(img image.Image, reference, candidate Block) (float64, error) {
	return channelAverage(img, reference, candidate, Distance)
}

// SquaredMetric averages the per-channel mean squared difference.
type SquaredMetric struct{}

func (SquaredMetric) SquaredError() bool { return true }

func (SquaredMetric) BlockDistance(img image.Image, reference, candidate Block) (float64, error) {
	return channelAverage(img, reference, candidate, SquaredDistance)
}

// channelAverage applies dist to each channel's samples and returns the unweighted mean.
// The candidate is the estimate and the reference the truth.
func channelAverage(img image.Image, reference, candidate Block, dist func(a, b []uint8) (float64, error)) (float64, error) {
	refR, refG, refB := ExtractChannels(img, reference)
	candR, candG, candB := ExtractChannels(img, candidate)

	r, err := dist(candR, refR)
	if err != nil {
		return 0, fmt.Errorf("red channel: %w", err)
	}
	g, err := dist(candG, refG)
	if err != nil {
		return 0, fmt.Errorf("green channel: %w", err)
	}
	b, err := dist(candB, refB)
	if err != nil {
		return 0, fmt.Errorf("blue channel: %w", err)
	}
	return (r + g + b) / 3, nil
}
