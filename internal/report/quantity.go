package report

import (
	"fmt"

	"github.com/dbsmedya/meshstat/internal/stats"
	"github.com/dbsmedya/meshstat/internal/types"
)

// Field selects one measured column of a MeasurementRecord.
type Field int

const (
	PrimaryTime Field = iota
	PrimaryCount
	AdjacentTime
	AdjacentCount
)

// IsTime reports whether the field holds seconds rather than a count.
func (f Field) IsTime() bool {
	return f == PrimaryTime || f == AdjacentTime
}

func (f Field) String() string {
	switch f {
	case PrimaryTime:
		return "primaryTime"
	case PrimaryCount:
		return "primaryCount"
	case AdjacentTime:
		return "adjacentTime"
	case AdjacentCount:
		return "adjacentCount"
	default:
		return fmt.Sprintf("field(%d)", int(f))
	}
}

// Quantity is one summarized column of one record kind.
type Quantity struct {
	Kind  types.Kind
	Field Field
	Label string // report label
}

// Name identifies the quantity in errors, e.g. "vertex-primaryTime".
func (q Quantity) Name() string {
	return q.Kind.String() + "-" + q.Field.String()
}

// Quantities in report order.
var (
	VertexQuantities = []Quantity{
		{Kind: types.KindVertex, Field: PrimaryTime, Label: "Tempo para acessar faces"},
		{Kind: types.KindVertex, Field: PrimaryCount, Label: "Número de faces"},
		{Kind: types.KindVertex, Field: AdjacentTime, Label: "Tempo para acessar vizinhos"},
		{Kind: types.KindVertex, Field: AdjacentCount, Label: "Número de vizinhos"},
	}
	FaceQuantities = []Quantity{
		{Kind: types.KindFace, Field: PrimaryTime, Label: "Tempo para acessar vértices"},
		{Kind: types.KindFace, Field: PrimaryCount, Label: "Número de vértices"},
		{Kind: types.KindFace, Field: AdjacentTime, Label: "Tempo para acessar vizinhos"},
		{Kind: types.KindFace, Field: AdjacentCount, Label: "Número de vizinhos"},
	}
)

// Entry pairs a quantity with its summary. Time quantities fill Time,
// count quantities fill Count.
type Entry struct {
	Quantity Quantity
	Time     stats.Summary[float64]
	Count    stats.Summary[int]
}

func newEntry(q Quantity, records []types.MeasurementRecord) Entry {
	e := Entry{Quantity: q}
	if q.Field.IsTime() {
		e.Time = stats.Compute(timeColumn(records, q.Field))
	} else {
		e.Count = stats.Compute(countColumn(records, q.Field))
	}
	return e
}

// Defined reports whether the entry's summary has values.
func (e Entry) Defined() bool {
	if e.Quantity.Field.IsTime() {
		return e.Time.Defined()
	}
	return e.Count.Defined()
}

// Line formats the entry as one report line. Times use six decimals, counts
// use two decimals for mean and stdev and plain integers for min and max.
func (e Entry) Line() (string, error) {
	q := e.Quantity
	if q.Field.IsTime() {
		if err := e.Time.Require(q.Name()); err != nil {
			return "", err
		}
		mean, lo, hi, stdev, _ := e.Time.Values()
		return fmt.Sprintf("%s: média=%.6f, min=%.6f, max=%.6f, stdev=%.6f",
			q.Label, mean, lo, hi, stdev), nil
	}

	if err := e.Count.Require(q.Name()); err != nil {
		return "", err
	}
	mean, lo, hi, stdev, _ := e.Count.Values()
	return fmt.Sprintf("%s: média=%.2f, min=%d, max=%d, stdev=%.2f",
		q.Label, mean, lo, hi, stdev), nil
}

func timeColumn(records []types.MeasurementRecord, f Field) []float64 {
	out := make([]float64, len(records))
	for i, r := range records {
		if f == PrimaryTime {
			out[i] = r.PrimaryTime
		} else {
			out[i] = r.AdjacentTime
		}
	}
	return out
}

func countColumn(records []types.MeasurementRecord, f Field) []int {
	out := make([]int, len(records))
	for i, r := range records {
		if f == PrimaryCount {
			out[i] = r.PrimaryCount
		} else {
			out[i] = r.AdjacentCount
		}
	}
	return out
}
