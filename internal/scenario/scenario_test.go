package scenario

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/collide/internal/geom"
)

func TestReferencePasses(t *testing.T) {
	s := Reference()
	require.Equal(t, "reference", s.Name)
	require.NotEmpty(t, s.Queries)

	report := Evaluate(s)
	for _, res := range report.Results {
		assert.True(t, res.Pass, "query %q: collides=%v expected=%v err=%v", res.Query, res.Collides, res.Expected, res.Err)
	}
	assert.True(t, report.OK())
	assert.Equal(t, len(s.Queries), report.Passed)
	assert.Zero(t, report.Failed)
}

func TestParseShapes(t *testing.T) {
	data := []byte(`
name: shapes
queries:
  - name: all kinds
    a: {oriented: {center: [1, 2], half_extent: [3, 4], rotation: 30}}
    b: {rectangle: {origin: [0, 0], size: [2, 2]}}
    expect: true
  - a: {line: {base: [0, 0], direction: [1, 1]}}
    b: {line: {base: [0, 1], direction: [1, 0]}}
    expect: true
  - a: {segment: {point1: [0, 0], point2: [1, 0]}}
    b: {segment: {point1: [0, 1], point2: [1, 1]}}
    expect: false
  - a: {point: [1, 1]}
    b: {circle: {center: [0, 0], radius: 2}}
    expect: true
`)

	s, err := Parse(data)
	require.NoError(t, err)
	require.Len(t, s.Queries, 4)

	assert.Equal(t, geom.OrientedRectangle{Center: geom.Vec(1, 2), HalfExtent: geom.Vec(3, 4), Rotation: 30}, s.Queries[0].A)
	assert.Equal(t, geom.Rect(0, 0, 2, 2), s.Queries[0].B)
	assert.Equal(t, geom.Line{Base: geom.Zero, Direction: geom.Vec(1, 1)}, s.Queries[1].A)
	assert.Equal(t, geom.Segment{Point1: geom.Vec(0, 1), Point2: geom.Vec(1, 1)}, s.Queries[2].B)
	assert.Equal(t, geom.Vec(1, 1), s.Queries[3].A)
	assert.Equal(t, geom.Circle{Center: geom.Zero, Radius: 2}, s.Queries[3].B)

	assert.Equal(t, "all kinds", s.Queries[0].Name)
	assert.Equal(t, "#2", s.Queries[1].Name, "unnamed queries are numbered")
	assert.False(t, s.Queries[2].Expect)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		msg  string
	}{
		{
			name: "no shape key",
			yaml: "queries:\n  - name: q\n    a: {}\n    b: {point: [0, 0]}\n    expect: true\n",
			msg:  `query "q": shape a`,
		},
		{
			name: "two shape keys",
			yaml: "queries:\n  - name: q\n    a: {point: [0, 0]}\n    b: {point: [0, 0], circle: {center: [0, 0], radius: 1}}\n    expect: true\n",
			msg:  "several shape keys",
		},
		{
			name: "short point",
			yaml: "queries:\n  - name: q\n    a: {point: [0]}\n    b: {point: [0, 0]}\n    expect: true\n",
			msg:  "point needs 2 coordinates",
		},
		{
			name: "degenerate line",
			yaml: "queries:\n  - name: q\n    a: {line: {base: [0, 0], direction: [0, 0]}}\n    b: {point: [0, 0]}\n    expect: true\n",
			msg:  "non-zero",
		},
		{
			name: "negative radius",
			yaml: "queries:\n  - name: q\n    a: {circle: {center: [0, 0], radius: -1}}\n    b: {point: [0, 0]}\n    expect: true\n",
			msg:  "negative radius",
		},
		{
			name: "negative rectangle size",
			yaml: "queries:\n  - name: q\n    a: {rectangle: {origin: [0, 0], size: [2, -1]}}\n    b: {point: [0, 0]}\n    expect: true\n",
			msg:  "negative size",
		},
		{
			name: "negative half extent",
			yaml: "queries:\n  - name: q\n    a: {point: [0, 0]}\n    b: {oriented: {center: [0, 0], half_extent: [-1, 1]}}\n    expect: true\n",
			msg:  "negative half_extent",
		},
		{
			name: "missing expect",
			yaml: "queries:\n  - name: q\n    a: {point: [0, 0]}\n    b: {point: [0, 0]}\n",
			msg:  "missing expect",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalid)
			assert.Contains(t, err.Error(), tc.msg)
		})
	}

	_, err := Parse([]byte("queries: ["))
	require.Error(t, err, "malformed YAML")
	assert.NotErrorIs(t, err, ErrInvalid)
}

func TestEvaluate(t *testing.T) {
	s := Scenario{
		Name: "mixed",
		Queries: []Query{
			{Name: "hit", A: geom.Rect(0, 0, 2, 2), B: geom.Rect(1, 1, 2, 2), Expect: true},
			{Name: "wrong", A: geom.Rect(0, 0, 1, 1), B: geom.Rect(5, 5, 1, 1), Expect: true},
			{Name: "unsupported", A: geom.Circle{Radius: 1}, B: geom.Rect(0, 0, 1, 1), Expect: true},
		},
	}

	report := Evaluate(s)
	require.Len(t, report.Results, 3)
	assert.Equal(t, "mixed", report.Scenario)
	assert.Equal(t, 1, report.Passed)
	assert.Equal(t, 2, report.Failed)
	assert.False(t, report.OK())

	assert.True(t, report.Results[0].Pass)
	assert.False(t, report.Results[1].Collides)
	assert.False(t, report.Results[1].Pass)
	assert.ErrorIs(t, report.Results[2].Err, geom.ErrUnsupportedPair)
	assert.False(t, report.Results[2].Pass)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: file\nqueries: []\n"), 0o600))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "file", s.Name)
	assert.Empty(t, s.Queries)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("queries:\n  - a: {}\n    b: {}\n    expect: true\n"), 0o600))
	_, err = Load(bad)
	assert.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), bad)
}
