// Package engine ties the file index, content cache, regex cache and filter
// memo into the query/preview/commit surface consumed by the tool layer.
package engine

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"sync"

	"github.com/tkovari/sweep-mcp/index"
	"github.com/tkovari/sweep-mcp/subst"
)

// Engine owns the mutable query state and the caches behind it. One instance
// serves the whole process: the query thread and the watcher both reach the
// caches, so each cache carries its own lock and the engine never takes a
// global one.
type Engine struct {
	files   *index.FileIndex
	cache   *index.ContentCache
	regexes *RegexCache
	memo    *filterMemo
	logger  *slog.Logger
	workers int

	queryMu      sync.RWMutex
	globQuery    string
	contentQuery string
}

// New creates an engine over the given index and content cache.
func New(files *index.FileIndex, cache *index.ContentCache, logger *slog.Logger) *Engine {
	return &Engine{
		files:   files,
		cache:   cache,
		regexes: NewRegexCache(),
		memo:    &filterMemo{},
		logger:  logger,
		workers: runtime.NumCPU(),
	}
}

// SetQuery replaces the current (glob, content-regex) query pair. The memo is
// not dropped here: it stays keyed by the exact strings it was computed for,
// so an unchanged query restored later still hits.
func (e *Engine) SetQuery(globQuery, contentQuery string) {
	e.queryMu.Lock()
	defer e.queryMu.Unlock()
	e.globQuery = globQuery
	e.contentQuery = contentQuery
}

// Query returns the current query pair.
func (e *Engine) Query() (globQuery, contentQuery string) {
	e.queryMu.RLock()
	defer e.queryMu.RUnlock()
	return e.globQuery, e.contentQuery
}

// Preview computes the substitution for one file without touching disk,
// returning the replaced text and the positional diff against the current
// content. The path must be an index member; malformed patterns degrade to
// an identity substitution rather than erroring.
func (e *Engine) Preview(relPath, fromPattern, toTemplate string) (string, []subst.DiffLine, error) {
	if !e.files.Contains(relPath) {
		return "", nil, fmt.Errorf("file not in index: %s", relPath)
	}
	content, err := e.cache.Get(relPath)
	if err != nil {
		return "", nil, err
	}
	replaced := subst.Apply(content, fromPattern, toTemplate)
	return replaced, subst.Diff(content, replaced), nil
}

// CommitResult is the per-file outcome of a commit.
type CommitResult struct {
	Path string
	Err  error
}

// CommitOne applies the substitution to one file and writes it back in
// place, then invalidates the file's cache entry and the filter memo. The
// path must be an index member, and the substitution runs over the file's
// current on-disk content, never a cached copy: writing back a stale read
// would revert edits made outside this process.
func (e *Engine) CommitOne(relPath, fromPattern, toTemplate string) error {
	if !e.files.Contains(relPath) {
		return fmt.Errorf("file not in index: %s", relPath)
	}
	content, err := e.cache.ReadFresh(relPath)
	if err != nil {
		return err
	}

	replaced := subst.Apply(content, fromPattern, toTemplate)
	if err := os.WriteFile(e.cache.AbsPath(relPath), []byte(replaced), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", relPath, err)
	}

	e.cache.Invalidate(relPath)
	e.memo.Drop()
	e.logger.Debug("committed substitution", "path", relPath)
	return nil
}

// CommitAll applies the substitution to every path independently. One file's
// failure never aborts the rest; the caller gets one result per input path
// in input order.
func (e *Engine) CommitAll(relPaths []string, fromPattern, toTemplate string) []CommitResult {
	results := make([]CommitResult, 0, len(relPaths))
	for _, relPath := range relPaths {
		err := e.CommitOne(relPath, fromPattern, toTemplate)
		if err != nil {
			e.logger.Warn("commit failed", "path", relPath, "error", err)
		}
		results = append(results, CommitResult{Path: relPath, Err: err})
	}
	return results
}

// Invalidate drops one file's cached content and the filter memo. This is
// the watcher's entry point: a single content change can flip filter
// membership, so the coarser memo goes even though only one entry is
// removed.
func (e *Engine) Invalidate(relPath string) {
	e.cache.Invalidate(relPath)
	e.memo.Drop()
}

// ReplaceIndex installs a fresh scan snapshot and flushes everything derived
// from the old one.
func (e *Engine) ReplaceIndex(paths []string) {
	e.files.Replace(paths)
	e.cache.InvalidateAll()
	e.memo.Drop()
}

// Stats describes the engine's cache occupancy for the status tool.
type Stats struct {
	IndexedFiles     int
	CachedContents   int
	CachedBytes      int64
	CompiledPatterns int
	MemoValid        bool
}

// Stats returns a point-in-time snapshot of cache occupancy.
func (e *Engine) Stats() Stats {
	return Stats{
		IndexedFiles:     e.files.Len(),
		CachedContents:   e.cache.Len(),
		CachedBytes:      e.cache.SizeBytes(),
		CompiledPatterns: e.regexes.Len(),
		MemoValid:        e.memo.Valid(),
	}
}
