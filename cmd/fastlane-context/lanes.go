package main

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var lanesCmd = &cobra.Command{
	Use:   "lanes <path>",
	Short: "List the lanes defined in a project's Fastfiles",
	Long: `Parse the project's Fastfiles and print the declared lanes as
indented JSON, without running the rest of the analysis pipeline.`,
	Args: cobra.ExactArgs(1),
	RunE: runLanes,
}

func init() {
	rootCmd.AddCommand(lanesCmd)
}

func runLanes(cmd *cobra.Command, args []string) error {
	root, err := filepath.Abs(args[0])
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	lanes := newAnalyzer(cfg, logger).Lanes(root)

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(lanes)
}
