package cmd

import (
	"fmt"

	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"github.com/dbsmedya/meshstat/internal/analyzer"
)

var validateCmd = &cobra.Command{
	Use:   "validate [input.csv]",
	Short: "Check that an input can produce a report",
	Long: `Validate reads the benchmark CSV and runs every check the report needs,
without writing anything.

Checks performed:
  - Header and numeric fields of every vertex, face and total row
  - Duplicate indices within a kind (reported, both rows kept)
  - Presence of the total row
  - At least one non-negative value for each of the eight quantities

Example:
  meshstat validate performance-heart-mf.csv`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadRuntime(inputArg(args), "", false)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting validation checks...")

	set, rep, err := analyzer.New(log).Inspect(cfg.Input.Path)
	if set == nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	cmd.Printf("\n=== Input Validation ===\n")
	cmd.Printf("Input file: %s\n", cfg.Input.Path)
	cmd.Printf("Rows: %d (ignored: %d)\n", set.Stats.Rows, set.Stats.Ignored)
	cmd.Printf("Vertices: %d\n", len(set.Vertices))
	cmd.Printf("Faces: %d\n\n", len(set.Faces))

	hasErrors := false
	if err != nil {
		cmd.Printf("%s %v\n", color.Red.Sprint("❌"), err)
		hasErrors = true
	} else {
		cmd.Printf("Total time: %.6f seconds\n", rep.TotalTime)
		if rep.RawTotalTime < 0 {
			cmd.Printf("%s total time %.6f is negative and will be reported as zero\n",
				color.Yellow.Sprint("⚠"), rep.RawTotalTime)
		}
		for _, q := range rep.Undefined() {
			cmd.Printf("%s %s (%s): no non-negative values\n", color.Red.Sprint("❌"), q.Name(), q.Label)
			hasErrors = true
		}
	}

	if hasErrors {
		return fmt.Errorf("validation failed: input cannot produce a report")
	}

	cmd.Println()
	cmd.Println("=== Validation Complete ===")
	cmd.Println(color.Green.Sprint("✅ Input can produce a report"))
	return nil
}
