// Package report builds the fixed-layout text report for one benchmark run.
package report

import (
	"errors"
	"fmt"
	"strings"

	"github.com/elliotchance/orderedmap/v2"

	"github.com/dbsmedya/meshstat/internal/types"
)

// ErrMissingTotalTime is returned by Build when the input had no total row.
var ErrMissingTotalTime = errors.New("no total row: total execution time is missing")

// Section titles, in report order.
const (
	SectionVertices = "vértices"
	SectionFaces    = "faces"
)

// Report holds every number that goes into the text report.
type Report struct {
	VertexCount int
	FaceCount   int

	// TotalTime is the value printed, clamped to zero when negative.
	// RawTotalTime is the value read from the input.
	TotalTime    float64
	RawTotalTime float64

	sections *orderedmap.OrderedMap[string, []Entry]
}

// Build summarizes set. It fails only when the total time is absent;
// undefined summaries are reported by Render.
func Build(set *types.RecordSet) (*Report, error) {
	if set == nil {
		return nil, errors.New("record set is nil")
	}

	raw, ok := set.Total.Get()
	if !ok {
		return nil, ErrMissingTotalTime
	}

	r := &Report{
		VertexCount:  len(set.Vertices),
		FaceCount:    len(set.Faces),
		TotalTime:    ClampTotal(raw),
		RawTotalTime: raw,
		sections:     orderedmap.NewOrderedMap[string, []Entry](),
	}
	r.sections.Set(SectionVertices, entries(VertexQuantities, set.Vertices))
	r.sections.Set(SectionFaces, entries(FaceQuantities, set.Faces))
	return r, nil
}

func entries(qs []Quantity, records []types.MeasurementRecord) []Entry {
	out := make([]Entry, len(qs))
	for i, q := range qs {
		out[i] = newEntry(q, records)
	}
	return out
}

// ClampTotal maps a negative total to zero and leaves others unchanged.
func ClampTotal(seconds float64) float64 {
	if seconds < 0 {
		return 0
	}
	return seconds
}

// Entries returns the summaries of all quantities in report order.
func (r *Report) Entries() []Entry {
	var out []Entry
	for el := r.sections.Front(); el != nil; el = el.Next() {
		out = append(out, el.Value...)
	}
	return out
}

// Undefined lists the quantities whose summaries are undefined.
func (r *Report) Undefined() []Quantity {
	var out []Quantity
	for _, e := range r.Entries() {
		if !e.Defined() {
			out = append(out, e.Quantity)
		}
	}
	return out
}

// Lines renders the report line by line. It stops at the first undefined
// summary and returns its *stats.UndefinedSummaryError.
func (r *Report) Lines() ([]string, error) {
	lines := []string{
		fmt.Sprintf("Quantidade de vértices: %d", r.VertexCount),
		fmt.Sprintf("Quantidade de faces: %d", r.FaceCount),
	}

	for el := r.sections.Front(); el != nil; el = el.Next() {
		lines = append(lines, fmt.Sprintf("=== Estatísticas para %s ===", el.Key))
		for _, e := range el.Value {
			line, err := e.Line()
			if err != nil {
				return nil, err
			}
			lines = append(lines, line)
		}
	}

	lines = append(lines, fmt.Sprintf("Tempo total de execução (do C++): %.6f segundos", r.TotalTime))
	return lines, nil
}

// Render returns the report as newline-joined lines without a trailing
// newline.
func (r *Report) Render() (string, error) {
	lines, err := r.Lines()
	if err != nil {
		return "", err
	}
	return strings.Join(lines, "\n"), nil
}
