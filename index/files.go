package index

import (
	"sync"
)

// FileIndex holds the snapshot of eligible text-file paths under the root.
// The snapshot is built once by a scan and replaced wholesale on rescan;
// watcher events never add or remove members, they only invalidate content.
// Order is stable within one snapshot.
type FileIndex struct {
	mu      sync.RWMutex
	paths   []string
	members map[string]struct{}
}

// NewFileIndex creates an empty file index.
func NewFileIndex() *FileIndex {
	return &FileIndex{members: make(map[string]struct{})}
}

// Replace swaps in a new snapshot of paths. The caller must not modify the
// slice after handing it over.
func (fi *FileIndex) Replace(paths []string) {
	members := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		members[p] = struct{}{}
	}

	fi.mu.Lock()
	defer fi.mu.Unlock()
	fi.paths = paths
	fi.members = members
}

// Paths returns the current snapshot. Callers must treat it as read-only;
// a rescan replaces the slice rather than mutating it, so a held snapshot
// stays consistent.
func (fi *FileIndex) Paths() []string {
	fi.mu.RLock()
	defer fi.mu.RUnlock()
	return fi.paths
}

// Contains reports whether relPath is a member of the current snapshot.
// Members are always clean relative slash paths below the root, so this also
// rejects traversal paths like "../x" that were never scanned.
func (fi *FileIndex) Contains(relPath string) bool {
	fi.mu.RLock()
	defer fi.mu.RUnlock()
	_, ok := fi.members[relPath]
	return ok
}

// Len returns the number of files in the current snapshot.
func (fi *FileIndex) Len() int {
	fi.mu.RLock()
	defer fi.mu.RUnlock()
	return len(fi.paths)
}
