package server

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/tkovari/sweep-mcp/tools"
)

// Setup creates and configures the MCP server with all tool registrations.
func Setup(
	filesHandler *tools.FilesHandler,
	previewHandler *tools.PreviewHandler,
	applyHandler *tools.ApplyHandler,
	statusHandler *tools.StatusHandler,
	rescanHandler *tools.RescanHandler,
) *mcp.Server {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "sweep-mcp",
			Version: "0.3.0",
		},
		&mcp.ServerOptions{
			Instructions: `This server performs tree-wide regex search and replace over a live-indexed working directory.

Workflow:
1. sweep_files narrows the file set by path globs and a content regex. The result list is cached and kept fresh by a filesystem watcher.
2. sweep_preview shows the substitution for one file as a line diff, without writing anything.
3. sweep_apply commits the substitution to explicit paths, or with all=true to every file matching the current query. Each file is written independently.

Replacement templates use $N for capture group N (e.g. from "(\w+)@(\w+)" to "$2-$1"). Malformed patterns are never fatal: a bad content regex matches nothing, a bad from-regex leaves files unchanged.`,
		},
	)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name: "sweep_files",
		Description: `List files matching a path-glob and content-regex query. Sets the query used by sweep_apply all=true.

Glob clauses are comma-separated and matched against relative paths (and basenames):
  - "*.go,!*_test.go" - Go files except tests
  - "src/**/*.ts" - TypeScript under src/
  - "!vendor/**" - everything except vendor/ (no include clause means include all)`,
	}, filesHandler.Handle)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "sweep_preview",
		Description: `Preview a regex substitution against one file as a positional line diff ("- " removed, "+ " added). Nothing is written to disk.`,
	}, previewHandler.Handle)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "sweep_apply",
		Description: `Apply a regex substitution to the given paths (or all currently filtered files with all=true) and write the results in place. Files are processed independently; per-file failures are reported but do not stop the batch.`,
	}, applyHandler.Handle)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "sweep_status",
		Description: "Show engine status: root, uptime, indexed file count, cache and memo occupancy, current query, memory usage.",
	}, statusHandler.Handle)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "sweep_rescan",
		Description: "Rebuild the file index from disk and flush all caches. Needed to pick up created or deleted files; content changes are tracked automatically.",
	}, rescanHandler.Handle)

	return mcpServer
}
