package tools

import (
	"fmt"
	"strings"

	"github.com/tkovari/sweep-mcp/engine"
	"github.com/tkovari/sweep-mcp/subst"
)

// FormatFileList formats filtered paths as human-readable text, truncating
// at maxResults.
func FormatFileList(paths []string, maxResults int) string {
	if len(paths) == 0 {
		return "No files matched."
	}

	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("Matched %d files:\n\n", len(paths)))

	shown := paths
	if len(shown) > maxResults {
		shown = shown[:maxResults]
	}
	for _, path := range shown {
		builder.WriteString("  ")
		builder.WriteString(path)
		builder.WriteString("\n")
	}
	if len(paths) > maxResults {
		builder.WriteString(fmt.Sprintf("  ... and %d more\n", len(paths)-maxResults))
	}

	return builder.String()
}

// FormatDiff renders a preview diff with -/+ markers, truncating at maxLines.
func FormatDiff(path string, diff []subst.DiffLine, maxLines int) string {
	changed := 0
	for _, line := range diff {
		if line.Kind != subst.DiffUnchanged {
			changed++
		}
	}
	if changed == 0 {
		return fmt.Sprintf("── %s ──\nNo changes.\n", path)
	}

	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("── %s (%d changed lines) ──\n", path, changed))

	shown := diff
	if len(shown) > maxLines {
		shown = shown[:maxLines]
	}
	for _, line := range shown {
		switch line.Kind {
		case subst.DiffRemoved:
			builder.WriteString("- ")
		case subst.DiffAdded:
			builder.WriteString("+ ")
		default:
			builder.WriteString("  ")
		}
		builder.WriteString(line.Text)
		builder.WriteString("\n")
	}
	if len(diff) > maxLines {
		builder.WriteString(fmt.Sprintf("... %d more lines\n", len(diff)-maxLines))
	}

	return builder.String()
}

// FormatCommitResults formats per-file commit outcomes.
func FormatCommitResults(results []engine.CommitResult) string {
	succeeded := 0
	for _, r := range results {
		if r.Err == nil {
			succeeded++
		}
	}

	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("Applied to %d of %d files:\n\n", succeeded, len(results)))

	for _, r := range results {
		if r.Err == nil {
			builder.WriteString(fmt.Sprintf("  ok    %s\n", r.Path))
		} else {
			builder.WriteString(fmt.Sprintf("  fail  %s: %v\n", r.Path, r.Err))
		}
	}

	return builder.String()
}

// formatFileSize converts bytes to a human-readable string.
func formatFileSize(bytes int64) string {
	switch {
	case bytes >= 1024*1024:
		return fmt.Sprintf("%.1f MB", float64(bytes)/(1024*1024))
	case bytes >= 1024:
		return fmt.Sprintf("%.1f KB", float64(bytes)/1024)
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}
