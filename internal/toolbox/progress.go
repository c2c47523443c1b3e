package toolbox

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
)

// startProgress redraws a spinner line on out every 100ms until the returned
// stop function is called. processed is polled for the running count.
func startProgress(out io.Writer, processed func() int64, total int64) (stop func()) {
	var wg sync.WaitGroup
	wg.Add(1)
	done := make(chan struct{})
	startTime := time.Now()

	go func() {
		defer wg.Done()
		s := spinner.New()
		s.Spinner = spinner.Dot
		s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()

		for {
			select {
			case <-done:
				fmt.Fprintf(out, "\r%s Comparison complete. %d/%d blocks processed.\n", "✓", processed(), total)
				return
			case <-ticker.C:
				s, _ = s.Update(spinner.TickMsg{})
				n := processed()
				elapsed := time.Since(startTime).Seconds()
				var bps float64
				if elapsed > 0 {
					bps = float64(n) / elapsed
				}
				fmt.Fprintf(out, "\r%s Comparing blocks %d/%d... (%.2f blocks/s)", s.View(), n, total, bps)
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			close(done)
			wg.Wait()
		})
	}
}
