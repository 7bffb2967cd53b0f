package tools

import (
	"context"
	"log/slog"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/tkovari/sweep-mcp/engine"
)

// ApplyArgs defines the input parameters for the sweep_apply tool.
type ApplyArgs struct {
	Paths []string `json:"paths,omitempty" jsonschema:"Relative paths to rewrite. Ignored when all is true"`
	All   bool     `json:"all,omitempty" jsonschema:"Apply to every file matching the current sweep_files query"`
	From  string   `json:"from" jsonschema:"Regex to replace; a malformed regex makes the apply a no-op"`
	To    string   `json:"to" jsonschema:"Replacement template. $N inserts capture group N"`
}

// ApplyHandler holds the dependencies for the apply tool.
type ApplyHandler struct {
	Engine *engine.Engine
	Logger *slog.Logger
}

// Handle processes a sweep_apply request. Each file commits independently;
// a failure on one file never stops the rest.
func (h *ApplyHandler) Handle(ctx context.Context, req *mcp.CallToolRequest, args ApplyArgs) (*mcp.CallToolResult, any, error) {
	start := time.Now()

	paths := args.Paths
	if args.All {
		paths = h.Engine.Filter()
	}
	if len(paths) == 0 {
		h.Logger.Warn("sweep_apply called with no target files", "all", args.All)
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: "Error: no target files (pass paths or set all=true after sweep_files)"}},
			IsError: true,
		}, nil, nil
	}

	results := h.Engine.CommitAll(paths, args.From, args.To)

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}

	h.Logger.Info("sweep_apply",
		"files", len(results),
		"failed", failed,
		"from", args.From,
		"elapsed", time.Since(start),
	)

	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: FormatCommitResults(results)}},
		IsError: failed == len(results) && failed > 0,
	}, nil, nil
}
