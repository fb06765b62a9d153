package main

import (
	"log/slog"
	"os"

	"github.com/prokizzle/fastlane-context-mcp/internal/analyzer"
	"github.com/prokizzle/fastlane-context-mcp/internal/config"
	"github.com/prokizzle/fastlane-context-mcp/internal/envcheck"
	"github.com/prokizzle/fastlane-context-mcp/internal/projectfs"
	"github.com/prokizzle/fastlane-context-mcp/internal/signals"
)

// loadConfig resolves configuration relative to the working directory.
func loadConfig() (*config.Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	return config.Load(wd)
}

// newLogger builds the stderr logger every command uses. stdout stays
// clean for command output and, under serve, the MCP protocol.
func newLogger(cfg *config.Config) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
}

// newAnalyzer wires the analysis pipeline for one-shot commands. The MCP
// server wires its own copy plus storage and the analysis cache.
func newAnalyzer(cfg *config.Config, logger *slog.Logger) *analyzer.Analyzer {
	reader := projectfs.OSReader{}
	walker := &projectfs.DirWalker{
		MaxDepth: cfg.MaxWalkDepth,
		SkipDirs: cfg.SkipDirs,
	}
	detector := signals.New(reader).WithScanLimit(cfg.ScanLimit)
	return analyzer.New(walker, reader, detector, envcheck.ProcessChecker{}, logger)
}
