// Package comparator tiles images into fixed-size blocks and classifies blocks
// as similar or dissimilar to a reference block.
package comparator

import (
	"fmt"
	"image"
	"runtime"
	"sync"
	"sync/atomic"
)

// Comparator measures block distances with a Metric, fanning batches out over
// worker goroutines. The zero value uses AbsoluteMetric and GOMAXPROCS workers.
// It is safe for concurrent use.
type Comparator struct {
	metric    Metric
	workers   int
	processed atomic.Int64
}

// New returns a Comparator. A nil metric means AbsoluteMetric and
// workers <= 0 means GOMAXPROCS.
func New(metric Metric, workers int) *Comparator {
	return &Comparator{metric: metric, workers: workers}
}

// Metric returns the metric distances are measured with.
func (c *Comparator) Metric() Metric {
	if c.metric == nil {
		return AbsoluteMetric{}
	}
	return c.metric
}

func (c *Comparator) workerCount() int {
	if c.workers <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return c.workers
}

// Processed reports how many block distances this Comparator has computed.
func (c *Comparator) Processed() int64 {
	return c.processed.Load()
}

// BlockDistance returns the metric's distance of candidate from reference.
func (c *Comparator) BlockDistance(img image.Image, reference, candidate Block) (float64, error) {
	d, err := c.Metric().BlockDistance(img, reference, candidate)
	c.processed.Add(1)
	return d, err
}

// Classify reports whether candidate is within threshold of reference.
func (c *Comparator) Classify(img image.Image, reference, candidate Block, threshold float64) (bool, error) {
	d, err := c.BlockDistance(img, reference, candidate)
	if err != nil {
		return false, err
	}
	return d <= threshold, nil
}

// Distances computes the distance of every candidate from reference in parallel.
// The result is in candidate order.
func (c *Comparator) Distances(img image.Image, reference Block, candidates []Block) ([]float64, error) {
	jobs := make(chan job, len(candidates))
	results := make([]result, len(candidates))

	var wg sync.WaitGroup
	for i := 0; i < min(c.workerCount(), len(candidates)); i++ {
		wg.Add(1)
		go worker(&wg, jobs, results, img, reference, c)
	}
	for i, b := range candidates {
		jobs <- job{index: i, block: b}
	}
	close(jobs)
	wg.Wait()

	distances := make([]float64, len(candidates))
	for i, r := range results {
		if r.err != nil {
			return nil, fmt.Errorf("candidate %s: %w", candidates[i], r.err)
		}
		distances[i] = r.distance
	}
	return distances, nil
}

// FindDissimilar returns the candidates farther than threshold from reference,
// in their original order.
func (c *Comparator) FindDissimilar(img image.Image, reference Block, candidates []Block, threshold float64) ([]Block, error) {
	distances, err := c.Distances(img, reference, candidates)
	if err != nil {
		return nil, err
	}
	return Dissimilar(candidates, distances, threshold), nil
}

// Dissimilar selects the blocks whose matching distance exceeds threshold.
// distances[i] belongs to blocks[i].
func Dissimilar(blocks []Block, distances []float64, threshold float64) []Block {
	dissimilar := []Block{}
	for i, d := range distances {
		if d > threshold {
			dissimilar = append(dissimilar, blocks[i])
		}
	}
	return dissimilar
}

// BlockDistance is the mean absolute difference of the two blocks, averaged
// over the red, green and blue channels.
func BlockDistance(img image.Image, reference, candidate Block) (float64, error) {
	return AbsoluteMetric{}.BlockDistance(img, reference, candidate)
}

// Classify reports whether BlockDistance(img, reference, candidate) <= threshold.
func Classify(img image.Image, reference, candidate Block, threshold float64) (bool, error) {
	return New(nil, 1).Classify(img, reference, candidate, threshold)
}

// FindDissimilar returns every candidate whose BlockDistance from reference
// exceeds threshold, preserving input order.
func FindDissimilar(img image.Image, reference Block, candidates []Block, threshold float64) ([]Block, error) {
	return New(nil, 0).FindDissimilar(img, reference, candidates, threshold)
}
