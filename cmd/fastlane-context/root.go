package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prokizzle/fastlane-context-mcp/internal/storage"
)

// Set via -ldflags at build time.
var (
	version   = "dev"
	buildTime = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "fastlane-context",
	Short: "Heuristic fastlane analyzer for mobile projects",
	Long: `fastlane-context inspects a mobile project's fastlane configuration
without executing any Ruby: it parses Fastfiles line by line, classifies
capabilities and code signing, detects dependency and service signals,
and recommends fastlane plugins.

Run it as an MCP server over stdio (serve) or as a one-shot analyzer
printing JSON (analyze).`,
	Version: version,
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"fastlane-context {{.Version}} (built %s, %s build, sqlite driver %s)\n",
		buildTime, storage.BuildMode, storage.DriverName))
}
