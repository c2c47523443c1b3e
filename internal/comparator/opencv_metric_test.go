//go:build opencv

package comparator

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpenCVMetricMatchesAbsolute(t *testing.T) {
	img := gradient(8, 8)
	ref, cand := NewBlock(0, 0, 4, 4), NewBlock(4, 4, 4, 4)

	want, err := AbsoluteMetric{}.BlockDistance(img, ref, cand)
	require.NoError(t, err)

	m, err := NewMetric("opencv")
	require.NoError(t, err)
	got, err := m.BlockDistance(img, ref, cand)
	require.NoError(t, err)
	require.InDelta(t, want, got, 1e-9)
}

func TestOpenCVMetricIgnoresAlpha(t *testing.T) {
	img := gradient(4, 2)
	ref, cand := NewBlock(0, 0, 2, 2), NewBlock(2, 0, 2, 2)
	paint(img, ref, color.NRGBA{R: 200, G: 100, B: 50, A: 255})
	paint(img, cand, color.NRGBA{R: 200, G: 100, B: 50, A: 40})

	got, err := OpenCVMetric{}.BlockDistance(img, ref, cand)
	require.NoError(t, err)
	require.InDelta(t, 0.0, got, 1e-9)
}
