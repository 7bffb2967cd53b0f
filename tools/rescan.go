package tools

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// RescanArgs defines the input parameters for the sweep_rescan tool.
type RescanArgs struct{}

// RescanFunc rebuilds the file snapshot from disk. Provided by main.go to
// avoid circular dependencies.
type RescanFunc func() (files int, elapsed string)

// RescanHandler holds the dependencies for the rescan tool.
type RescanHandler struct {
	DoRescan RescanFunc
	Logger   *slog.Logger
}

// Handle processes a sweep_rescan request.
func (h *RescanHandler) Handle(ctx context.Context, req *mcp.CallToolRequest, args RescanArgs) (*mcp.CallToolResult, any, error) {
	h.Logger.Info("sweep_rescan started")

	files, elapsed := h.DoRescan()

	h.Logger.Info("sweep_rescan complete", "files", files, "elapsed", elapsed)

	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: fmt.Sprintf("rescanned: %d files in %s", files, elapsed)}},
	}, nil, nil
}
