package comparator

import (
	"image"
	"sync"
)

type job struct {
	index int
	block Block
}

type result struct {
	distance float64
	err      error
}

// worker receives candidate blocks, measures them against reference and
// stores the outcome at the job's index. Indices are disjoint, so no locking is needed.
func worker(wg *sync.WaitGroup, jobs <-chan job, results []result, img image.Image, reference Block, c *Comparator) {
	defer wg.Done()
	for j := range jobs {
		d, err := c.BlockDistance(img, reference, j.block)
		results[j.index] = result{distance: d, err: err}
	}
}
