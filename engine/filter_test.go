package engine

import (
	"os"
	"path/filepath"
	"testing"
)

func Test_Filter_BlankQueryReturnsFullIndex(t *testing.T) {
	eng, _ := newTestEngine(t, map[string]string{
		"src/lib.rs": "pub fn lib() {}",
		"src/mod.rs": "pub mod x;",
	})

	eng.SetQuery("", "")
	pathsEqual(t, eng.Filter(), "src/lib.rs", "src/mod.rs")

	// Whitespace-only queries take the same fast path.
	eng.SetQuery("  ", " ")
	pathsEqual(t, eng.Filter(), "src/lib.rs", "src/mod.rs")
}

func Test_Filter_ExcludeWinsOverInclude(t *testing.T) {
	eng, _ := newTestEngine(t, map[string]string{
		"src/lib.rs": "pub fn lib() {}",
		"src/mod.rs": "pub mod x;",
	})

	eng.SetQuery("*.rs,!mod.rs", "")
	pathsEqual(t, eng.Filter(), "src/lib.rs")
}

func Test_Filter_NoIncludeClausesPassVacuously(t *testing.T) {
	eng, _ := newTestEngine(t, map[string]string{
		"a.go":  "package a",
		"b.txt": "text",
	})

	eng.SetQuery("!*.txt", "")
	pathsEqual(t, eng.Filter(), "a.go")
}

func Test_Filter_IncludeRequiresAtLeastOneMatch(t *testing.T) {
	eng, _ := newTestEngine(t, map[string]string{
		"a.go":  "package a",
		"b.txt": "text",
		"c.md":  "# doc",
	})

	eng.SetQuery("*.go,*.md", "")
	pathsEqual(t, eng.Filter(), "a.go", "c.md")
}

func Test_Filter_DoublestarPaths(t *testing.T) {
	eng, _ := newTestEngine(t, map[string]string{
		"src/deep/nested.go": "package deep",
		"top.go":             "package top",
		"src/readme.md":      "docs",
	})

	eng.SetQuery("src/**/*.go", "")
	pathsEqual(t, eng.Filter(), "src/deep/nested.go")
}

func Test_Filter_ContentRegex(t *testing.T) {
	eng, _ := newTestEngine(t, map[string]string{
		"a.go": "func Handler() {}",
		"b.go": "var x = 1",
	})

	eng.SetQuery("", `func \w+`)
	pathsEqual(t, eng.Filter(), "a.go")
}

func Test_Filter_MalformedContentRegexMatchesNothing(t *testing.T) {
	eng, _ := newTestEngine(t, map[string]string{
		"a.go": "anything",
	})

	eng.SetQuery("", "(")
	pathsEqual(t, eng.Filter())
}

func Test_Filter_MalformedGlobClauseSkipped(t *testing.T) {
	eng, _ := newTestEngine(t, map[string]string{
		"a.go":  "package a",
		"b.txt": "text",
	})

	// The broken clause is dropped, the valid one still applies.
	eng.SetQuery("[oops,*.go", "")
	pathsEqual(t, eng.Filter(), "a.go")
}

func Test_Filter_UnreadableFileIsNonMatching(t *testing.T) {
	eng, _ := newTestEngine(t, map[string]string{
		"a.txt": "needle here",
	})
	// A path in the snapshot whose file no longer exists on disk.
	eng.files.Replace([]string{"a.txt", "ghost.txt"})

	eng.SetQuery("", "needle")
	pathsEqual(t, eng.Filter(), "a.txt")
}

func Test_Filter_MemoizedResultSkipsRereads(t *testing.T) {
	eng, tmpDir := newTestEngine(t, map[string]string{
		"a.txt": "needle here",
	})

	eng.SetQuery("", "needle")
	first := eng.Filter()
	pathsEqual(t, first, "a.txt")

	// Change the file on disk without any invalidation: the memo must keep
	// serving the previous result untouched.
	os.WriteFile(filepath.Join(tmpDir, "a.txt"), []byte("no match now"), 0644)

	second := eng.Filter()
	pathsEqual(t, second, "a.txt")
	if &first[0] != &second[0] {
		t.Error("expected the memoized result list, not a recomputation")
	}
}

func Test_Filter_InvalidationReflectsNewContent(t *testing.T) {
	eng, tmpDir := newTestEngine(t, map[string]string{
		"a.txt": "needle here",
	})

	eng.SetQuery("", "needle")
	pathsEqual(t, eng.Filter(), "a.txt")

	os.WriteFile(filepath.Join(tmpDir, "a.txt"), []byte("no match now"), 0644)
	eng.Invalidate("a.txt")

	pathsEqual(t, eng.Filter())
}

func Test_Filter_QueryChangeIsAFullMiss(t *testing.T) {
	eng, _ := newTestEngine(t, map[string]string{
		"a.go": "package a",
		"b.md": "# doc",
	})

	eng.SetQuery("*.go", "")
	pathsEqual(t, eng.Filter(), "a.go")

	eng.SetQuery("*.md", "")
	pathsEqual(t, eng.Filter(), "b.md")

	// Restoring the earlier pair recomputes or re-hits, either way the
	// exact-match semantics hold.
	eng.SetQuery("*.go", "")
	pathsEqual(t, eng.Filter(), "a.go")
}

func Test_Filter_OrderFollowsIndex(t *testing.T) {
	eng, _ := newTestEngine(t, map[string]string{
		"b.go": "package b",
		"a.go": "package a",
		"c.go": "package c",
	})
	// Deliberately non-lexical snapshot order.
	eng.files.Replace([]string{"c.go", "a.go", "b.go"})

	eng.SetQuery("*.go", "")
	pathsEqual(t, eng.Filter(), "c.go", "a.go", "b.go")
}

func Test_parseGlobClauses(t *testing.T) {
	clauses := parseGlobClauses(" *.go , !vendor/** ,, [bad, !*.md ")
	if len(clauses.includes) != 1 || clauses.includes[0] != "*.go" {
		t.Errorf("unexpected includes: %v", clauses.includes)
	}
	if len(clauses.excludes) != 2 || clauses.excludes[0] != "vendor/**" || clauses.excludes[1] != "*.md" {
		t.Errorf("unexpected excludes: %v", clauses.excludes)
	}
}
