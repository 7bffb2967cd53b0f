package main

import (
	"log/slog"
	"path/filepath"

	"github.com/tkovari/sweep-mcp/engine"
	"github.com/tkovari/sweep-mcp/ignore"
	"github.com/tkovari/sweep-mcp/watcher"
)

// handleWatcherEvents consumes debounced change batches and turns each path
// into a cache invalidation. The watcher thread never touches the caches
// directly; all mutation funnels through the engine here. Membership is not
// updated: new files appear only after a rescan.
func handleWatcherEvents(
	fileWatcher *watcher.Watcher,
	rootDir string,
	eng *engine.Engine,
	ignoreMatcher *ignore.Matcher,
	logger *slog.Logger,
) {
	for batch := range fileWatcher.Changes() {
		for _, absPath := range batch {
			if ignore.IsIgnoreFile(filepath.Base(absPath)) {
				ignoreMatcher.Reload()
				logger.Info("reloaded ignore rules", "trigger", filepath.Base(absPath))
				continue
			}

			relPath, err := filepath.Rel(rootDir, absPath)
			if err != nil {
				continue
			}
			eng.Invalidate(filepath.ToSlash(relPath))
			logger.Debug("invalidated cached content", "path", relPath)
		}
	}
}
