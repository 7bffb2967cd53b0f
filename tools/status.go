package tools

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/tkovari/sweep-mcp/engine"
)

// StatusArgs defines the input parameters for the sweep_status tool (none required).
type StatusArgs struct{}

// StatusHandler holds the dependencies for the status tool.
type StatusHandler struct {
	Engine    *engine.Engine
	StartTime time.Time
	RootDir   string
	Logger    *slog.Logger
}

// Handle processes a sweep_status request.
func (h *StatusHandler) Handle(ctx context.Context, req *mcp.CallToolRequest, args StatusArgs) (*mcp.CallToolResult, any, error) {
	stats := h.Engine.Stats()
	globQuery, contentQuery := h.Engine.Query()
	uptime := time.Since(h.StartTime)

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	h.Logger.Info("sweep_status",
		"files", stats.IndexedFiles,
		"cached", stats.CachedContents,
		"uptime", uptime,
	)

	var builder strings.Builder
	builder.WriteString("=== sweep-mcp Status ===\n\n")
	builder.WriteString(fmt.Sprintf("Root directory: %s\n", h.RootDir))
	builder.WriteString(fmt.Sprintf("Uptime: %s\n", formatDuration(uptime)))
	builder.WriteString(fmt.Sprintf("Indexed files: %d\n", stats.IndexedFiles))
	builder.WriteString(fmt.Sprintf("Cached contents: %d files (%s)\n",
		stats.CachedContents, formatFileSize(stats.CachedBytes)))
	builder.WriteString(fmt.Sprintf("Compiled patterns: %d\n", stats.CompiledPatterns))
	builder.WriteString(fmt.Sprintf("Filter memo: %s\n", memoState(stats.MemoValid)))
	builder.WriteString(fmt.Sprintf("Current query: glob=%q content=%q\n", globQuery, contentQuery))
	builder.WriteString(fmt.Sprintf("Memory usage: %s (heap: %s)\n",
		formatFileSize(int64(memStats.Alloc)),
		formatFileSize(int64(memStats.HeapAlloc)),
	))

	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: builder.String()}},
	}, nil, nil
}

func memoState(valid bool) string {
	if valid {
		return "valid"
	}
	return "empty"
}

// formatDuration formats a duration in a human-readable way.
func formatDuration(d time.Duration) string {
	totalSeconds := int(d.Seconds())
	if totalSeconds < 60 {
		return fmt.Sprintf("%ds", totalSeconds)
	}
	totalMinutes := totalSeconds / 60
	remainderSeconds := totalSeconds % 60
	if totalMinutes < 60 {
		return fmt.Sprintf("%dm%ds", totalMinutes, remainderSeconds)
	}
	hours := totalMinutes / 60
	remainderMinutes := totalMinutes % 60
	return fmt.Sprintf("%dh%dm", hours, remainderMinutes)
}
