package engine

import "sync"

// filterMemo is the single-slot cache of the most recent filter computation.
// It is valid only for the exact (glob, content) query pair it was stored
// under; any other combination is a full miss. Watcher invalidations and
// commits drop it wholesale because one file's content change can flip
// filter membership.
type filterMemo struct {
	mu      sync.RWMutex
	valid   bool
	glob    string
	content string
	result  []string
}

// Lookup returns the memoized result if it was stored for exactly this
// query pair.
func (fm *filterMemo) Lookup(glob, content string) ([]string, bool) {
	fm.mu.RLock()
	defer fm.mu.RUnlock()
	if fm.valid && fm.glob == glob && fm.content == content {
		return fm.result, true
	}
	return nil, false
}

// Store replaces the memo slot with a new result for the given query pair.
func (fm *filterMemo) Store(glob, content string, result []string) {
	fm.mu.Lock()
	defer fm.mu.Unlock()
	fm.valid = true
	fm.glob = glob
	fm.content = content
	fm.result = result
}

// Drop invalidates the slot.
func (fm *filterMemo) Drop() {
	fm.mu.Lock()
	defer fm.mu.Unlock()
	fm.valid = false
	fm.result = nil
}

// Valid reports whether the slot currently holds a result.
func (fm *filterMemo) Valid() bool {
	fm.mu.RLock()
	defer fm.mu.RUnlock()
	return fm.valid
}
