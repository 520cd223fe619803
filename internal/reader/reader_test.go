package reader

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/dbsmedya/meshstat/internal/logger"
	"github.com/dbsmedya/meshstat/internal/types"
)

const header = "Tipo,Index,TempoFaces,NumFaces,TempoAdjacentes,NumAdjacentes\n"

func read(t *testing.T, body string) (*types.RecordSet, error) {
	t.Helper()
	return New(nil).Read(strings.NewReader(header + body))
}

func TestRead_GroupsRowsByKind(t *testing.T) {
	set, err := read(t, ""+
		"v,0,0.000012,6,0.000020,6\n"+
		"v,1,0.000011,5,0.000018,5\n"+
		"f,0,0.000003,3,0.000007,3\n"+
		"total,,1.234567,\n")
	require.NoError(t, err)

	require.Len(t, set.Vertices, 2)
	require.Len(t, set.Faces, 1)

	assert.Equal(t, types.MeasurementRecord{
		Kind: types.KindVertex, Index: 0,
		PrimaryTime: 0.000012, PrimaryCount: 6,
		AdjacentTime: 0.000020, AdjacentCount: 6,
	}, set.Vertices[0])
	assert.Equal(t, 1, set.Vertices[1].Index)
	assert.Equal(t, types.KindFace, set.Faces[0].Kind)
	assert.Equal(t, 3, set.Faces[0].PrimaryCount)

	total, ok := set.Total.Get()
	require.True(t, ok)
	assert.Equal(t, 1.234567, total)

	assert.Equal(t, 4, set.Stats.Rows)
	assert.Equal(t, 0, set.Stats.Ignored)
}

func TestRead_IgnoresUnknownKinds(t *testing.T) {
	set, err := read(t, ""+
		"v,0,1,1,1,1\n"+
		"e,0,not-a-number,x,y,z\n"+
		",,,,,\n"+
		"V,9,1,1,1,1\n"+
		"f,0,1,1,1,1\n"+
		"totals,,5,\n")
	require.NoError(t, err)

	assert.Len(t, set.Vertices, 1)
	assert.Len(t, set.Faces, 1)
	assert.Equal(t, 4, set.Stats.Ignored)
	assert.Equal(t, 6, set.Stats.Rows)

	_, ok := set.Total.Get()
	assert.False(t, ok, "totals is not a total row")
}

func TestRead_CountsMatchRecognisedRows(t *testing.T) {
	kinds := []string{"v", "f", "x", "v", "", "f", "f", "total", "v"}
	var b strings.Builder
	want := 0
	for i, k := range kinds {
		if k == "v" || k == "f" {
			want++
		}
		b.WriteString(k + "," + strconv.Itoa(i) + ",0.5,1,0.5,1\n")
	}

	set, err := read(t, b.String())
	require.NoError(t, err)
	assert.Equal(t, want, len(set.Vertices)+len(set.Faces))
}

func TestRead_KeepsNegativeSentinels(t *testing.T) {
	set, err := read(t, "v,1,-1.0,-1,0.3,1\ntotal,,-5.0,\n")
	require.NoError(t, err)

	require.Len(t, set.Vertices, 1)
	assert.Equal(t, -1.0, set.Vertices[0].PrimaryTime)
	assert.Equal(t, -1, set.Vertices[0].PrimaryCount)

	total, ok := set.Total.Get()
	require.True(t, ok)
	assert.Equal(t, -5.0, total)
}

func TestRead_LastTotalWins(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	r := New(logger.FromZap(zap.New(core)))

	set, err := r.Read(strings.NewReader(header + "total,,1.0,\ntotal,,2.5,\n"))
	require.NoError(t, err)

	total, ok := set.Total.Get()
	require.True(t, ok)
	assert.Equal(t, 2.5, total)
	assert.Equal(t, 1, logs.FilterMessageSnippet("Multiple total rows").Len())
}

func TestRead_TotalRowOnlyNeedsTime(t *testing.T) {
	set, err := read(t, "total,garbage,3.5\n")
	require.NoError(t, err)

	total, ok := set.Total.Get()
	require.True(t, ok)
	assert.Equal(t, 3.5, total)
}

func TestRead_AcceptsSurroundingSpaces(t *testing.T) {
	set, err := read(t, "v, 4 , 0.25 ,2,0.5, 3\n")
	require.NoError(t, err)
	require.Len(t, set.Vertices, 1)
	assert.Equal(t, 4, set.Vertices[0].Index)
	assert.Equal(t, 0.25, set.Vertices[0].PrimaryTime)
	assert.Equal(t, 3, set.Vertices[0].AdjacentCount)
}

func TestRead_MalformedRows(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantColumn string
		wantLine   int
		wantParse  bool
	}{
		{
			name:       "bad index",
			body:       "v,one,0.1,1,0.1,1\n",
			wantColumn: ColIndex,
			wantLine:   2,
			wantParse:  true,
		},
		{
			name:       "float in integer column",
			body:       "f,0,0.1,2.5,0.1,1\n",
			wantColumn: ColPrimaryCount,
			wantLine:   2,
			wantParse:  true,
		},
		{
			name:       "bad adjacent time",
			body:       "v,0,0.1,1,0.1,1\nv,1,0.1,1,abc,1\n",
			wantColumn: ColAdjacentTime,
			wantLine:   3,
			wantParse:  true,
		},
		{
			name:       "empty count",
			body:       "v,0,0.1,1,0.1,\n",
			wantColumn: ColAdjacentCount,
			wantLine:   2,
			wantParse:  true,
		},
		{
			name:       "short vertex row",
			body:       "v,0,0.1,1\n",
			wantColumn: ColAdjacentTime,
			wantLine:   2,
		},
		{
			name:       "bad total",
			body:       "total,,soon,\n",
			wantColumn: ColPrimaryTime,
			wantLine:   2,
			wantParse:  true,
		},
		{
			name:       "total without time",
			body:       "total\n",
			wantColumn: ColPrimaryTime,
			wantLine:   2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, err := read(t, tt.body)
			require.Error(t, err)
			assert.Nil(t, set)
			assert.ErrorIs(t, err, ErrMalformedRow)

			var mre *MalformedRowError
			require.ErrorAs(t, err, &mre)
			assert.Equal(t, tt.wantColumn, mre.Column)
			assert.Equal(t, tt.wantLine, mre.Line)

			var numErr *strconv.NumError
			assert.Equal(t, tt.wantParse, errors.As(err, &numErr))
		})
	}
}

func TestRead_MissingKindColumn(t *testing.T) {
	_, err := New(nil).Read(strings.NewReader("Kind,Index\nv,1\n"))
	require.Error(t, err)

	var mre *MalformedRowError
	require.ErrorAs(t, err, &mre)
	assert.Equal(t, ColKind, mre.Column)
	assert.Contains(t, err.Error(), `missing column "Tipo"`)
}

func TestRead_HeaderIsCaseSensitive(t *testing.T) {
	_, err := New(nil).Read(strings.NewReader(
		"Tipo,index,TempoFaces,NumFaces,TempoAdjacentes,NumAdjacentes\nv,1,1,1,1,1\n"))
	require.Error(t, err)

	var mre *MalformedRowError
	require.ErrorAs(t, err, &mre)
	assert.Equal(t, ColIndex, mre.Column)
}

func TestRead_HeaderOnly(t *testing.T) {
	set, err := read(t, "")
	require.NoError(t, err)
	assert.Empty(t, set.Vertices)
	assert.Empty(t, set.Faces)
	assert.Equal(t, 0, set.Stats.Rows)
}

func TestRead_EmptyInput(t *testing.T) {
	_, err := New(nil).Read(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestRead_CSVSyntaxError(t *testing.T) {
	_, err := read(t, "v,\"unterminated,1,1,1,1\n")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrMalformedRow)
}

func TestRead_DuplicateIndex(t *testing.T) {
	t.Run("same kind keeps every row", func(t *testing.T) {
		core, logs := observer.New(zapcore.WarnLevel)
		r := New(logger.FromZap(zap.New(core)))

		set, err := r.Read(strings.NewReader(header +
			"v,1,0.5,3,0.2,2\n" +
			"v,1,0.7,4,0.3,1\n" +
			"f,0,0.1,3,0.1,3\n" +
			"total,,1.0,\n"))
		require.NoError(t, err)

		require.Len(t, set.Vertices, 2)
		assert.Len(t, set.Faces, 1)
		assert.Equal(t, 0.5, set.Vertices[0].PrimaryTime)
		assert.Equal(t, 0.7, set.Vertices[1].PrimaryTime)

		warned := logs.FilterMessageSnippet("Duplicate index").All()
		require.Len(t, warned, 1)
		fields := warned[0].ContextMap()
		assert.Equal(t, "vertex", fields["kind"])
		assert.Equal(t, int64(1), fields["index"])
		assert.Equal(t, int64(3), fields["line"])
		assert.Equal(t, int64(2), fields["first_line"])
	})

	t.Run("different kinds share indices", func(t *testing.T) {
		core, logs := observer.New(zapcore.WarnLevel)
		r := New(logger.FromZap(zap.New(core)))

		set, err := r.Read(strings.NewReader(header + "v,0,1,1,1,1\nf,0,1,1,1,1\n"))
		require.NoError(t, err)
		assert.Len(t, set.Vertices, 1)
		assert.Len(t, set.Faces, 1)
		assert.Zero(t, logs.Len())
	})
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "performance.csv")
	require.NoError(t, os.WriteFile(path, []byte(header+"v,0,1,1,1,1\ntotal,,2,\n"), 0644))

	set, err := New(logger.NewNop()).ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, set.Vertices, 1)
}

func TestReadFile_Errors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, err := New(nil).ReadFile(filepath.Join(dir, "absent.csv"))
		assert.ErrorIs(t, err, fs.ErrNotExist)
	})

	t.Run("malformed content keeps path", func(t *testing.T) {
		path := filepath.Join(dir, "bad.csv")
		require.NoError(t, os.WriteFile(path, []byte(header+"f,x,1,1,1,1\n"), 0644))

		_, err := New(nil).ReadFile(path)
		assert.ErrorIs(t, err, ErrMalformedRow)
		assert.Contains(t, err.Error(), "bad.csv")
	})
}
