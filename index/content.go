package index

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// ContentCache maps relative file paths to their last-read text content.
// Get is read-through: a miss performs a synchronous disk read and stores the
// result. Entries are removed by Invalidate (watcher events, commits) or
// InvalidateAll (rescan). Absence of an entry means "unknown", not "empty".
type ContentCache struct {
	mu       sync.RWMutex
	rootDir  string
	contents map[string]string
}

// NewContentCache creates an empty content cache reading files below rootDir.
func NewContentCache(rootDir string) *ContentCache {
	return &ContentCache{
		rootDir:  rootDir,
		contents: make(map[string]string),
	}
}

// Get returns the cached content for relPath, reading the file on a miss.
// A read failure is returned to the caller and nothing is cached.
func (cc *ContentCache) Get(relPath string) (string, error) {
	cc.mu.RLock()
	content, ok := cc.contents[relPath]
	cc.mu.RUnlock()
	if ok {
		return content, nil
	}

	data, err := readFileWithRetry(cc.AbsPath(relPath))
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", relPath, err)
	}

	content = string(data)
	cc.mu.Lock()
	cc.contents[relPath] = content
	cc.mu.Unlock()
	return content, nil
}

// ReadFresh reads relPath from disk, replacing any cached entry. Commits go
// through it so a substitution always runs over the file's current content:
// a stale cache entry (missed watcher event, debounce window) must never be
// what gets written back.
func (cc *ContentCache) ReadFresh(relPath string) (string, error) {
	data, err := readFileWithRetry(cc.AbsPath(relPath))
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", relPath, err)
	}

	content := string(data)
	cc.mu.Lock()
	cc.contents[relPath] = content
	cc.mu.Unlock()
	return content, nil
}

// Peek returns the cached content without performing any I/O.
func (cc *ContentCache) Peek(relPath string) (string, bool) {
	cc.mu.RLock()
	defer cc.mu.RUnlock()
	content, ok := cc.contents[relPath]
	return content, ok
}

// AbsPath converts a relative slash path to the on-disk path it is read from.
func (cc *ContentCache) AbsPath(relPath string) string {
	return filepath.Join(cc.rootDir, filepath.FromSlash(relPath))
}

// Invalidate removes the entry for relPath if present. Idempotent.
func (cc *ContentCache) Invalidate(relPath string) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	delete(cc.contents, relPath)
}

// InvalidateAll drops every cached entry.
func (cc *ContentCache) InvalidateAll() {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.contents = make(map[string]string)
}

// Len returns the number of cached entries.
func (cc *ContentCache) Len() int {
	cc.mu.RLock()
	defer cc.mu.RUnlock()
	return len(cc.contents)
}

// SizeBytes returns the total size of all cached content.
func (cc *ContentCache) SizeBytes() int64 {
	cc.mu.RLock()
	defer cc.mu.RUnlock()

	var total int64
	for _, content := range cc.contents {
		total += int64(len(content))
	}
	return total
}

// readFileWithRetry attempts to read a file, retrying once after a short delay
// if the file is locked (common on Windows when editors are saving).
func readFileWithRetry(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		time.Sleep(50 * time.Millisecond)
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, err
		}
	}
	return data, nil
}
