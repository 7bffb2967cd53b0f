package watcher

import (
	"sync"
	"time"
)

// Debouncer collects changed paths and emits a batch after a quiet period.
// Repeated events for the same path within the window collapse into one.
type Debouncer struct {
	interval time.Duration
	pending  map[string]struct{}
	mu       sync.Mutex
	timer    *time.Timer
	output   chan []string
}

// NewDebouncer creates a debouncer with the specified quiet interval.
func NewDebouncer(interval time.Duration) *Debouncer {
	return &Debouncer{
		interval: interval,
		pending:  make(map[string]struct{}),
		output:   make(chan []string, 16),
	}
}

// Output returns the channel that receives batched paths.
func (d *Debouncer) Output() <-chan []string {
	return d.output
}

// Add records a changed path for the next batch and restarts the quiet timer.
func (d *Debouncer) Add(path string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.pending[path] = struct{}{}

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.interval, d.flush)
}

// flush sends the accumulated paths to the output channel and resets the
// buffer. The batch is built under the lock but sent outside it: the send
// can block on a slow consumer, and blocking with the lock held would stall
// Add and the event loop behind it.
func (d *Debouncer) flush() {
	d.mu.Lock()
	if len(d.pending) == 0 {
		d.mu.Unlock()
		return
	}

	batch := make([]string, 0, len(d.pending))
	for path := range d.pending {
		batch = append(batch, path)
	}
	d.pending = make(map[string]struct{})
	d.mu.Unlock()

	d.output <- batch
}
