// Package reader parses the benchmark CSV into vertex records, face records
// and the optional total execution time.
package reader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dbsmedya/meshstat/internal/logger"
	"github.com/dbsmedya/meshstat/internal/types"
)

// Column names of the benchmark table. They are matched exactly.
const (
	ColKind          = "Tipo"
	ColIndex         = "Index"
	ColPrimaryTime   = "TempoFaces"
	ColPrimaryCount  = "NumFaces"
	ColAdjacentTime  = "TempoAdjacentes"
	ColAdjacentCount = "NumAdjacentes"
)

// Reader turns benchmark tables into record sets.
type Reader struct {
	log *logger.Logger
}

// New creates a Reader. A nil logger discards output.
func New(log *logger.Logger) *Reader {
	if log == nil {
		log = logger.NewNop()
	}
	return &Reader{log: log}
}

// ReadFile opens path, reads it to the end and closes it on every exit path.
func (r *Reader) ReadFile(path string) (*types.RecordSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()

	set, err := r.withLogger(r.log.WithInput(path)).Read(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return set, nil
}

func (r *Reader) withLogger(log *logger.Logger) *Reader {
	return &Reader{log: log}
}

// Read parses one table from src in a single pass.
//
// Rows tagged "v" and "f" become records, the last "total" row provides the
// total time, and anything else is skipped. Rows may be shorter than the
// header as long as every column consumed for their kind is present.
func (r *Reader) Read(src io.Reader) (*types.RecordSet, error) {
	start := time.Now()

	cr := csv.NewReader(src)
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyInput
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	cols := indexColumns(header)

	set := &types.RecordSet{}
	seen := map[types.Kind]map[int]int{
		types.KindVertex: {},
		types.KindFace:   {},
	}

	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}
		line, _ := cr.FieldPos(0)
		set.Stats.Rows++

		cur := row{cols: cols, fields: rec, line: line}
		raw, err := cur.str(ColKind)
		if err != nil {
			return nil, err
		}

		kind, ok := types.ParseKind(raw)
		if !ok {
			set.Stats.Ignored++
			continue
		}

		if kind == types.KindTotal {
			seconds, err := cur.floatField(ColPrimaryTime)
			if err != nil {
				return nil, err
			}
			if _, dup := set.Total.Get(); dup {
				r.log.Warnw("Multiple total rows, keeping the last", "line", line)
			}
			set.Total = types.SomeTotal(seconds)
			continue
		}

		m, err := cur.measurement(kind)
		if err != nil {
			return nil, err
		}
		if first, dup := seen[kind][m.Index]; dup {
			r.log.WithKind(kind.String()).Warnw("Duplicate index, keeping both rows",
				"index", m.Index, "line", line, "first_line", first)
		} else {
			seen[kind][m.Index] = line
		}

		if kind == types.KindVertex {
			set.Vertices = append(set.Vertices, m)
		} else {
			set.Faces = append(set.Faces, m)
		}
	}

	set.Stats.Duration = time.Since(start)
	r.log.Debugw("Read benchmark table",
		"rows", set.Stats.Rows,
		"vertices", len(set.Vertices),
		"faces", len(set.Faces),
		"ignored", set.Stats.Ignored,
		"duration", set.Stats.Duration,
	)
	return set, nil
}

// indexColumns maps header names to their position. A repeated name keeps
// its first position.
func indexColumns(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		if _, exists := cols[name]; !exists {
			cols[name] = i
		}
	}
	return cols
}

type row struct {
	cols   map[string]int
	fields []string
	line   int
}

func (r row) str(col string) (string, error) {
	i, ok := r.cols[col]
	if !ok || i >= len(r.fields) {
		return "", &MalformedRowError{Line: r.line, Column: col}
	}
	return r.fields[i], nil
}

func (r row) intField(col string) (int, error) {
	s, err := r.str(col)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, &MalformedRowError{Line: r.line, Column: col, Value: s, Err: err}
	}
	return v, nil
}

func (r row) floatField(col string) (float64, error) {
	s, err := r.str(col)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, &MalformedRowError{Line: r.line, Column: col, Value: s, Err: err}
	}
	return v, nil
}

func (r row) measurement(kind types.Kind) (types.MeasurementRecord, error) {
	m := types.MeasurementRecord{Kind: kind}
	var err error

	if m.Index, err = r.intField(ColIndex); err != nil {
		return m, err
	}
	if m.PrimaryTime, err = r.floatField(ColPrimaryTime); err != nil {
		return m, err
	}
	if m.PrimaryCount, err = r.intField(ColPrimaryCount); err != nil {
		return m, err
	}
	if m.AdjacentTime, err = r.floatField(ColAdjacentTime); err != nil {
		return m, err
	}
	if m.AdjacentCount, err = r.intField(ColAdjacentCount); err != nil {
		return m, err
	}
	return m, nil
}
