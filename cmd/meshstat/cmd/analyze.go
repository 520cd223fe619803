package cmd

import (
	"fmt"

	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"github.com/dbsmedya/meshstat/internal/analyzer"
)

var analyzeOutput string

var analyzeCmd = &cobra.Command{
	Use:   "analyze [input.csv]",
	Short: "Compute statistics and write the performance report",
	Long: `Analyze reads the benchmark CSV, summarizes every vertex and face
quantity and writes the text report, replacing any existing file.

Nothing is written when the input is malformed, has no total row, or leaves
a quantity without non-negative values.

Example:
  meshstat analyze performance-heart-mf.csv -o performance-results-heart-mf.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "output", "o", "",
		"Report destination (default performance_results.txt)")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadRuntime(inputArg(args), analyzeOutput, true)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	res, err := analyzer.New(log).Analyze(cfg.Input.Path, cfg.Output.Path)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	cmd.Printf("%s %s\n", color.Green.Sprint("✅ Report written to"), res.OutputPath)
	cmd.Printf("   Vertices: %d, Faces: %d, Ignored rows: %d\n", res.Vertices, res.Faces, res.Ignored)
	return nil
}
