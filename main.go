package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/tkovari/sweep-mcp/config"
	"github.com/tkovari/sweep-mcp/engine"
	"github.com/tkovari/sweep-mcp/ignore"
	"github.com/tkovari/sweep-mcp/index"
	"github.com/tkovari/sweep-mcp/register"
	"github.com/tkovari/sweep-mcp/server"
	"github.com/tkovari/sweep-mcp/tools"
	"github.com/tkovari/sweep-mcp/watcher"
)

// excludePatterns is a repeatable CLI flag for custom ignore patterns.
type excludePatterns []string

func (e *excludePatterns) String() string { return strings.Join(*e, ", ") }
func (e *excludePatterns) Set(value string) error {
	*e = append(*e, value)
	return nil
}

func main() {
	if len(os.Args) > 1 && os.Args[1] == "register" {
		register.Run("sweep", os.Args[2:])
		return
	}

	var rootDir string
	var maxFileSizeBytes int64
	var logLevel string
	var logFile string
	var excludes excludePatterns

	flag.StringVar(&rootDir, "root", "", "Root directory (default: current working directory)")
	flag.Var(&excludes, "exclude", "Extra ignore pattern (repeatable)")
	flag.Int64Var(&maxFileSizeBytes, "max-file-size", 0, "Maximum file size in bytes (default: 1MB)")
	flag.StringVar(&logLevel, "log-level", "info", "Log level: debug|info|warn|error")
	flag.StringVar(&logFile, "log-file", "", "Log file path (default: sweep-mcp.log under the root)")
	flag.Parse()

	if rootDir == "" {
		var err error
		rootDir, err = os.Getwd()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting working directory: %v\n", err)
			os.Exit(1)
		}
	}
	rootDir, _ = filepath.Abs(rootDir)

	// stdout carries the MCP stdio transport, so logs go to a file or stderr.
	if logFile == "" {
		logFile = filepath.Join(rootDir, "sweep-mcp.log")
	}
	logger := setupLogger(logLevel, logFile)

	cfg, cfgPath, err := config.FindAndLoad(rootDir)
	if err != nil {
		logger.Warn("ignoring unusable config file", "error", err)
	}
	var initialGlobQuery string
	if cfg != nil {
		logger.Info("loaded config", "path", cfgPath)
		initialGlobQuery = cfg.GlobQuery()
		excludes = append(excludes, cfg.Files.Exclude...)
		if maxFileSizeBytes == 0 {
			maxFileSizeBytes = cfg.Files.MaxSizeBytes
		}
	}

	logger.Info("starting sweep-mcp",
		"root", rootDir,
		"maxFileSize", maxFileSizeBytes,
		"globFilter", initialGlobQuery,
	)

	startTime := time.Now()

	ignoreMatcher := ignore.NewMatcher(ignore.MatcherOptions{
		RootDir:          rootDir,
		CustomPatterns:   excludes,
		MaxFileSizeBytes: maxFileSizeBytes,
	})

	fileIndex := index.NewFileIndex()
	contentCache := index.NewContentCache(rootDir)
	eng := engine.New(fileIndex, contentCache, logger)
	eng.SetQuery(initialGlobQuery, "")

	fileIndex.Replace(performScan(rootDir, ignoreMatcher, logger))
	logger.Info("initial scan complete",
		"files", fileIndex.Len(),
		"duration", time.Since(startTime),
	)

	// A failed watch is non-fatal: filtering still works, it just risks
	// serving stale content until a rescan.
	fileWatcher, err := watcher.NewWatcher(rootDir, ignoreMatcher, logger)
	if err != nil {
		logger.Warn("failed to start file watcher, continuing without live invalidation", "error", err)
	} else {
		go fileWatcher.Start()
		go handleWatcherEvents(fileWatcher, rootDir, eng, ignoreMatcher, logger)
		defer fileWatcher.Close()
	}

	filesHandler := &tools.FilesHandler{Engine: eng, Logger: logger}
	previewHandler := &tools.PreviewHandler{Engine: eng, Logger: logger}
	applyHandler := &tools.ApplyHandler{Engine: eng, Logger: logger}
	statusHandler := &tools.StatusHandler{
		Engine:    eng,
		StartTime: startTime,
		RootDir:   rootDir,
		Logger:    logger,
	}
	rescanHandler := &tools.RescanHandler{
		Logger: logger,
		DoRescan: func() (int, string) {
			start := time.Now()
			ignoreMatcher.Reload()
			eng.ReplaceIndex(performScan(rootDir, ignoreMatcher, logger))
			return fileIndex.Len(), time.Since(start).Round(time.Millisecond).String()
		},
	}

	mcpServer := server.Setup(filesHandler, previewHandler, applyHandler, statusHandler, rescanHandler)

	logger.Info("MCP server starting on stdio")
	if err := mcpServer.Run(context.Background(), &mcp.StdioTransport{}); err != nil {
		logger.Error("MCP server error", "error", err)
		os.Exit(1)
	}
}

// setupLogger creates an slog.Logger writing to stderr or a file.
func setupLogger(level string, logFile string) *slog.Logger {
	var logLevel slog.Level
	switch strings.ToLower(level) {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	var writer *os.File
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: cannot open log file %s: %v, falling back to stderr\n", logFile, err)
			writer = os.Stderr
		} else {
			writer = f
		}
	} else {
		writer = os.Stderr
	}

	handler := slog.NewTextHandler(writer, &slog.HandlerOptions{Level: logLevel})
	return slog.New(handler)
}
