package tools

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/tkovari/sweep-mcp/engine"
)

// PreviewArgs defines the input parameters for the sweep_preview tool.
type PreviewArgs struct {
	Path     string `json:"path" jsonschema:"Relative path of the file to preview (as returned by sweep_files)"`
	From     string `json:"from" jsonschema:"Regex to replace. Capture groups are available as $1..$N in the template; a malformed regex leaves the file unchanged"`
	To       string `json:"to" jsonschema:"Replacement template. $N inserts capture group N"`
	MaxLines int    `json:"maxLines,omitempty" jsonschema:"Maximum diff lines to return (default 400)"`
}

// PreviewHandler holds the dependencies for the preview tool.
type PreviewHandler struct {
	Engine *engine.Engine
	Logger *slog.Logger
}

// Handle processes a sweep_preview request: substitution plus line diff,
// nothing written to disk.
func (h *PreviewHandler) Handle(ctx context.Context, req *mcp.CallToolRequest, args PreviewArgs) (*mcp.CallToolResult, any, error) {
	start := time.Now()

	if args.Path == "" {
		h.Logger.Warn("sweep_preview called with empty path")
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: "Error: path parameter is required"}},
			IsError: true,
		}, nil, nil
	}

	_, diff, err := h.Engine.Preview(args.Path, args.From, args.To)
	if err != nil {
		h.Logger.Error("sweep_preview failed", "path", args.Path, "error", err)
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: fmt.Sprintf("Preview error: %v", err)}},
			IsError: true,
		}, nil, nil
	}

	maxLines := args.MaxLines
	if maxLines <= 0 {
		maxLines = 400
	}

	h.Logger.Info("sweep_preview",
		"path", args.Path,
		"from", args.From,
		"diffLines", len(diff),
		"elapsed", time.Since(start),
	)

	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: FormatDiff(args.Path, diff, maxLines)}},
	}, nil, nil
}
