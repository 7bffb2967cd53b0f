package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/tkovari/sweep-mcp/ignore"
	"github.com/tkovari/sweep-mcp/index"
)

// performScan walks the tree under rootDir and returns the relative slash
// paths of every eligible text file. Per-entry errors are swallowed; a
// single unreadable entry never aborts the walk. The text sniff does a read
// per candidate, so candidates fan out to a bounded worker pool.
func performScan(rootDir string, ignoreMatcher *ignore.Matcher, logger *slog.Logger) []string {
	const workerCount = 8

	type scanJob struct {
		absPath string
		relPath string
	}
	jobs := make(chan scanJob, 100)

	var mu sync.Mutex
	var paths []string

	var wg sync.WaitGroup
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				if !index.IsTextFile(job.absPath) {
					logger.Debug("skipped non-text file", "path", job.relPath)
					continue
				}
				mu.Lock()
				paths = append(paths, job.relPath)
				mu.Unlock()
			}
		}()
	}

	filepath.WalkDir(rootDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if path != rootDir && ignoreMatcher.ShouldIgnoreDir(path) {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if ignoreMatcher.ShouldIgnore(path) {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		if ignoreMatcher.IsFileTooLarge(info.Size()) {
			return nil
		}
		relPath, err := filepath.Rel(rootDir, path)
		if err != nil {
			return nil
		}
		jobs <- scanJob{absPath: path, relPath: filepath.ToSlash(relPath)}
		return nil
	})

	close(jobs)
	wg.Wait()

	// Workers finish in arbitrary order; sort so the snapshot order is
	// reproducible across scans of an unchanged tree.
	sort.Strings(paths)
	return paths
}
