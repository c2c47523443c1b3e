//go:build !opencv

package comparator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpenCVMetricUnavailableWithoutTag(t *testing.T) {
	m, err := NewMetric("opencv")
	require.ErrorContains(t, err, "-tags opencv")
	require.Nil(t, m)
}
