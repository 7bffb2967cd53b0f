package index

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTestFile(t *testing.T, rootDir, relPath, content string) {
	t.Helper()
	absPath := filepath.Join(rootDir, filepath.FromSlash(relPath))
	if err := os.MkdirAll(filepath.Dir(absPath), 0755); err != nil {
		t.Fatalf("creating dir: %v", err)
	}
	if err := os.WriteFile(absPath, []byte(content), 0644); err != nil {
		t.Fatalf("writing file: %v", err)
	}
}

func Test_ContentCache_ReadThrough(t *testing.T) {
	tmpDir := t.TempDir()
	writeTestFile(t, tmpDir, "a.txt", "hello")
	cc := NewContentCache(tmpDir)

	got, err := cc.Get("a.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "hello" {
		t.Errorf("expected 'hello', got %q", got)
	}
	if cc.Len() != 1 {
		t.Errorf("expected 1 cached entry, got %d", cc.Len())
	}
}

func Test_ContentCache_HitServesStaleWithoutInvalidation(t *testing.T) {
	tmpDir := t.TempDir()
	writeTestFile(t, tmpDir, "a.txt", "old")
	cc := NewContentCache(tmpDir)

	if _, err := cc.Get("a.txt"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	writeTestFile(t, tmpDir, "a.txt", "new")

	got, err := cc.Get("a.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "old" {
		t.Errorf("expected cached 'old' before invalidation, got %q", got)
	}
}

func Test_ContentCache_ReadFreshBypassesCache(t *testing.T) {
	tmpDir := t.TempDir()
	writeTestFile(t, tmpDir, "a.txt", "old")
	cc := NewContentCache(tmpDir)

	if _, err := cc.Get("a.txt"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	writeTestFile(t, tmpDir, "a.txt", "new")

	got, err := cc.ReadFresh("a.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "new" {
		t.Errorf("expected current disk content 'new', got %q", got)
	}
	// The fresh read replaces the stale entry.
	if cached, _ := cc.Peek("a.txt"); cached != "new" {
		t.Errorf("expected cache refreshed to 'new', got %q", cached)
	}
}

func Test_ContentCache_InvalidateForcesReread(t *testing.T) {
	tmpDir := t.TempDir()
	writeTestFile(t, tmpDir, "a.txt", "old")
	cc := NewContentCache(tmpDir)

	if _, err := cc.Get("a.txt"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	writeTestFile(t, tmpDir, "a.txt", "new")
	cc.Invalidate("a.txt")

	got, err := cc.Get("a.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "new" {
		t.Errorf("expected 'new' after invalidation, got %q", got)
	}
}

func Test_ContentCache_InvalidateIsIdempotent(t *testing.T) {
	cc := NewContentCache(t.TempDir())
	cc.Invalidate("missing.txt")
	cc.Invalidate("missing.txt")
	if cc.Len() != 0 {
		t.Errorf("expected empty cache, got %d entries", cc.Len())
	}
}

func Test_ContentCache_ReadFailureCachesNothing(t *testing.T) {
	cc := NewContentCache(t.TempDir())

	if _, err := cc.Get("missing.txt"); err == nil {
		t.Fatal("expected error for missing file")
	}
	if _, ok := cc.Peek("missing.txt"); ok {
		t.Error("expected no entry cached after a failed read")
	}
}

func Test_ContentCache_InvalidateAll(t *testing.T) {
	tmpDir := t.TempDir()
	writeTestFile(t, tmpDir, "a.txt", "aa")
	writeTestFile(t, tmpDir, "b.txt", "bb")
	cc := NewContentCache(tmpDir)

	cc.Get("a.txt")
	cc.Get("b.txt")
	cc.InvalidateAll()

	if cc.Len() != 0 {
		t.Errorf("expected 0 entries after InvalidateAll, got %d", cc.Len())
	}
}

func Test_ContentCache_SizeBytes(t *testing.T) {
	tmpDir := t.TempDir()
	writeTestFile(t, tmpDir, "a.txt", "12345")
	cc := NewContentCache(tmpDir)

	cc.Get("a.txt")
	if cc.SizeBytes() != 5 {
		t.Errorf("expected 5 bytes, got %d", cc.SizeBytes())
	}
}
