package comparator

import (
	"errors"
	"fmt"
	"math"
)

// ErrLengthMismatch is returned when two sample sequences differ in length.
var ErrLengthMismatch = errors.New("sample length mismatch")

// Distance is the mean absolute difference between a and b.
// Empty sequences are at distance 0.
func Distance(a, b []uint8) (float64, error) {
	return meanOf(a, b, func(d float64) float64 { return math.Abs(d) })
}

// SquaredDistance is the mean squared difference between a and b.
// Unlike Distance it is a true MSE, which is what PSNR expects.
func SquaredDistance(a, b []uint8) (float64, error) {
	return meanOf(a, b, func(d float64) float64 { return d * d })
}

func meanOf(a, b []uint8, f func(float64) float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(a), len(b))
	}
	if len(a) == 0 {
		return 0, nil
	}
	var sum float64
	for i := range a {
		sum += f(float64(a[i]) - float64(b[i]))
	}
	return sum / float64(len(a)), nil
}

// PSNR is -10 * log10(distance / peak^2). A zero distance gives +Inf.
// See http://homepages.inf.ed.ac.uk/rbf/CVonline/LOCAL_COPIES/VELDHUIZEN/node18.html
func PSNR(distance, peak float64) float64 {
	return -10 * math.Log10(distance/(peak*peak))
}
