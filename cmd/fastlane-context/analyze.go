package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <path>",
	Short: "Analyze a project and print the result as JSON",
	Long: `Run the full fastlane analysis over the project at <path> and print
the result to stdout as indented JSON. This runs the same pipeline the
MCP analyze_project tool uses, without needing an MCP client.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	root, err := filepath.Abs(args[0])
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	analysis, err := newAnalyzer(cfg, logger).Analyze(context.Background(), root)
	if err != nil {
		return fmt.Errorf("analyze %s: %w", root, err)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(analysis)
}
