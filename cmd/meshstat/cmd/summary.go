package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/dbsmedya/meshstat/internal/analyzer"
	"github.com/dbsmedya/meshstat/internal/report"
)

var summaryCmd = &cobra.Command{
	Use:   "summary [input.csv]",
	Short: "Print the statistics as a table",
	Long: `Summary reads the benchmark CSV and prints one table row per measured
quantity to standard output. Quantities without non-negative values are
shown as "-" instead of failing.

Example:
  meshstat summary performance-heart-mf.csv`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadRuntime(inputArg(args), "", false)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	_, rep, err := analyzer.New(log).Inspect(cfg.Input.Path)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Vertices: %d, Faces: %d\n\n", rep.VertexCount, rep.FaceCount)
	writeTable(out, []string{"Kind", "Quantity", "N", "Mean", "Min", "Max", "Stdev"}, summaryRows(rep.Entries()))
	fmt.Fprintf(out, "\nTotal time: %.6f seconds\n", rep.TotalTime)
	return nil
}

func summaryRows(entries []report.Entry) [][]string {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		q := e.Quantity
		row := []string{q.Kind.String(), q.Label}

		switch {
		case !e.Defined():
			row = append(row, "0", "-", "-", "-", "-")
		case q.Field.IsTime():
			mean, lo, hi, stdev, _ := e.Time.Values()
			row = append(row,
				strconv.Itoa(e.Time.Count()),
				strconv.FormatFloat(mean, 'f', 6, 64),
				strconv.FormatFloat(lo, 'f', 6, 64),
				strconv.FormatFloat(hi, 'f', 6, 64),
				strconv.FormatFloat(stdev, 'f', 6, 64),
			)
		default:
			mean, lo, hi, stdev, _ := e.Count.Values()
			row = append(row,
				strconv.Itoa(e.Count.Count()),
				strconv.FormatFloat(mean, 'f', 2, 64),
				strconv.Itoa(lo),
				strconv.Itoa(hi),
				strconv.FormatFloat(stdev, 'f', 2, 64),
			)
		}
		rows = append(rows, row)
	}
	return rows
}

// writeTable prints an aligned table. Widths are measured in terminal cells
// so accented labels line up. The first two columns are left aligned, the
// rest right aligned.
func writeTable(w io.Writer, header []string, rows [][]string) {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}

	line := func(cells []string) {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			if i < 2 {
				parts[i] = runewidth.FillRight(cell, widths[i])
			} else {
				parts[i] = runewidth.FillLeft(cell, widths[i])
			}
		}
		fmt.Fprintln(w, strings.TrimRight(strings.Join(parts, "  "), " "))
	}

	line(header)
	sep := make([]string, len(widths))
	for i, width := range widths {
		sep[i] = strings.Repeat("-", width)
	}
	line(sep)
	for _, row := range rows {
		line(row)
	}
}
