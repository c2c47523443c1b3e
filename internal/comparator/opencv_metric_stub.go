//go:build !opencv

package comparator

import "fmt"

func newOpenCVMetric() (Metric, error) {
	return nil, fmt.Errorf("opencv metric is not available: rebuild with -tags opencv")
}
