package tools

import (
	"context"
	"log/slog"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/tkovari/sweep-mcp/engine"
)

// FilesArgs defines the input parameters for the sweep_files tool.
type FilesArgs struct {
	Glob       string `json:"glob,omitempty" jsonschema:"Comma-separated glob clauses matched against relative paths; prefix a clause with ! to exclude (e.g. *.go,!*_test.go)"`
	Content    string `json:"content,omitempty" jsonschema:"Regex that file content must match. A malformed regex matches nothing"`
	MaxResults int    `json:"maxResults,omitempty" jsonschema:"Maximum number of paths to return (default 200)"`
}

// FilesHandler holds the dependencies for the files tool.
type FilesHandler struct {
	Engine *engine.Engine
	Logger *slog.Logger
}

// Handle processes a sweep_files request: it installs the query pair and
// returns the filtered file list.
func (h *FilesHandler) Handle(ctx context.Context, req *mcp.CallToolRequest, args FilesArgs) (*mcp.CallToolResult, any, error) {
	start := time.Now()

	h.Engine.SetQuery(args.Glob, args.Content)
	paths := h.Engine.Filter()

	maxResults := args.MaxResults
	if maxResults <= 0 {
		maxResults = 200
	}

	h.Logger.Info("sweep_files",
		"glob", args.Glob,
		"content", args.Content,
		"results", len(paths),
		"elapsed", time.Since(start),
	)

	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: FormatFileList(paths, maxResults)}},
	}, nil, nil
}
