// Package analyzer runs the read, summarize and write pipeline for one
// benchmark file.
package analyzer

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dbsmedya/meshstat/internal/config"
	"github.com/dbsmedya/meshstat/internal/logger"
	"github.com/dbsmedya/meshstat/internal/reader"
	"github.com/dbsmedya/meshstat/internal/report"
	"github.com/dbsmedya/meshstat/internal/types"
)

// Analyzer produces performance reports from benchmark tables.
type Analyzer struct {
	log    *logger.Logger
	reader *reader.Reader
}

// Result describes one completed analysis.
type Result struct {
	Vertices   int
	Faces      int
	Ignored    int
	TotalTime  float64 // as printed, after clamping
	OutputPath string  // empty for stream analyses
	Bytes      int
	Duration   time.Duration
}

// New creates an Analyzer. A nil logger discards output.
func New(log *logger.Logger) *Analyzer {
	if log == nil {
		log = logger.NewNop()
	}
	return &Analyzer{
		log:    log,
		reader: reader.New(log),
	}
}

// Analyze reads inputPath and writes the report to outputPath, replacing any
// existing file. An empty outputPath selects config.DefaultOutputPath.
//
// The report is fully rendered before the output is opened, so a failure
// leaves no file behind.
func (a *Analyzer) Analyze(inputPath, outputPath string) (*Result, error) {
	start := time.Now()
	if outputPath == "" {
		outputPath = config.DefaultOutputPath
	}
	log := a.log.WithInput(inputPath)

	set, err := a.reader.ReadFile(inputPath)
	if err != nil {
		return nil, err
	}

	text, rep, err := a.render(set)
	if err != nil {
		return nil, err
	}

	if err := writeReport(outputPath, text); err != nil {
		return nil, err
	}

	res := newResult(set, rep, len(text), start)
	res.OutputPath = outputPath
	log.Infow("Report written",
		"output", outputPath,
		"vertices", res.Vertices,
		"faces", res.Faces,
		"ignored", res.Ignored,
		"bytes", res.Bytes,
	)
	return res, nil
}

// AnalyzeStream reads a table from r and writes the report to w.
func (a *Analyzer) AnalyzeStream(r io.Reader, w io.Writer) (*Result, error) {
	start := time.Now()

	set, err := a.reader.Read(r)
	if err != nil {
		return nil, err
	}

	text, rep, err := a.render(set)
	if err != nil {
		return nil, err
	}

	n, err := io.WriteString(w, text)
	if err != nil {
		return nil, fmt.Errorf("failed to write report: %w", err)
	}
	return newResult(set, rep, n, start), nil
}

// Inspect reads inputPath and builds the report without rendering or
// writing it. Undefined summaries are left for the caller to examine.
func (a *Analyzer) Inspect(inputPath string) (*types.RecordSet, *report.Report, error) {
	set, err := a.reader.ReadFile(inputPath)
	if err != nil {
		return nil, nil, err
	}
	rep, err := report.Build(set)
	if err != nil {
		return set, nil, fmt.Errorf("failed to build report: %w", err)
	}
	return set, rep, nil
}

func (a *Analyzer) render(set *types.RecordSet) (string, *report.Report, error) {
	rep, err := report.Build(set)
	if err != nil {
		return "", nil, fmt.Errorf("failed to build report: %w", err)
	}
	if raw := rep.RawTotalTime; raw < 0 {
		a.log.Warnw("Negative total time reported as zero", "total_time", raw)
	}

	text, err := rep.Render()
	if err != nil {
		return "", nil, fmt.Errorf("failed to render report: %w", err)
	}
	return text, rep, nil
}

func writeReport(path, text string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open output: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(text); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close output: %w", err)
	}
	return nil
}

func newResult(set *types.RecordSet, rep *report.Report, n int, start time.Time) *Result {
	return &Result{
		Vertices:  len(set.Vertices),
		Faces:     len(set.Faces),
		Ignored:   set.Stats.Ignored,
		TotalTime: rep.TotalTime,
		Bytes:     n,
		Duration:  time.Since(start),
	}
}
