package loader_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/acopath/builder"
	"github.com/katalvlaran/acopath/core"
	"github.com/katalvlaran/acopath/loader"
)

const triangleJSON = `{
  "start_node_id": 0,
  "end_node_id": 2,
  "nodes": [
    {"id": 0, "x": 0, "y": 0},
    {"id": 1, "x": 30, "y": 0},
    {"id": 2, "x": 30, "y": 40}
  ],
  "edges": [
    {"from_node_id": 0, "to_node_id": 1},
    {"from_node_id": 1, "to_node_id": 2},
    {"from_node_id": 2, "to_node_id": 0}
  ]
}`

func TestRead_Valid(t *testing.T) {
	g, err := loader.Read(strings.NewReader(triangleJSON))
	require.NoError(t, err)
	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, 3, g.EdgeCount())
	assert.Equal(t, core.NodeID(0), g.Start())
	assert.Equal(t, core.NodeID(2), g.End())
	assert.Equal(t, 50.0, g.MaxEdgeLength())
}

func TestRead_GraphOptions(t *testing.T) {
	g, err := loader.Read(strings.NewReader(triangleJSON), core.WithMinPheromone(0.5))
	require.NoError(t, err)
	assert.Equal(t, 0.5, g.Pheromone(0))
}

func TestParse_Malformed(t *testing.T) {
	cases := map[string]string{
		"syntax":        `{"start_node_id": 0,`,
		"missing end":   `{"start_node_id": 0, "nodes": [], "edges": []}`,
		"string id":     `{"start_node_id": "a", "end_node_id": 1, "nodes": [], "edges": []}`,
		"fractional id": `{"start_node_id": 0.5, "end_node_id": 1, "nodes": [], "edges": []}`,
		"not an object": `[1, 2, 3]`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := loader.Parse(strings.NewReader(doc))
			assert.ErrorIs(t, err, loader.ErrMalformedDocument)
		})
	}
}

func TestRead_SemanticErrors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want error
	}{
		{
			name: "unknown start",
			doc:  `{"start_node_id": 9, "end_node_id": 1, "nodes": [{"id":0,"x":0,"y":0},{"id":1,"x":1,"y":0}], "edges": [{"from_node_id":0,"to_node_id":1}]}`,
			want: core.ErrUnknownStartNode,
		},
		{
			name: "unknown end",
			doc:  `{"start_node_id": 0, "end_node_id": 9, "nodes": [{"id":0,"x":0,"y":0},{"id":1,"x":1,"y":0}], "edges": [{"from_node_id":0,"to_node_id":1}]}`,
			want: core.ErrUnknownEndNode,
		},
		{
			name: "self loop",
			doc:  `{"start_node_id": 0, "end_node_id": 1, "nodes": [{"id":0,"x":0,"y":0},{"id":1,"x":1,"y":0}], "edges": [{"from_node_id":0,"to_node_id":1},{"from_node_id":1,"to_node_id":1}]}`,
			want: core.ErrSelfLoopEdge,
		},
		{
			name: "dangling",
			doc:  `{"start_node_id": 0, "end_node_id": 1, "nodes": [{"id":0,"x":0,"y":0},{"id":1,"x":1,"y":0}], "edges": [{"from_node_id":0,"to_node_id":1},{"from_node_id":1,"to_node_id":7}]}`,
			want: core.ErrDanglingEdgeReference,
		},
		{
			name: "unreachable",
			doc: `{"start_node_id": 0, "end_node_id": 3,
			       "nodes": [{"id":0,"x":0,"y":0},{"id":1,"x":1,"y":0},{"id":2,"x":5,"y":5},{"id":3,"x":6,"y":5}],
			       "edges": [{"from_node_id":0,"to_node_id":1},{"from_node_id":2,"to_node_id":3}]}`,
			want: loader.ErrEndUnreachable,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := loader.Read(strings.NewReader(tc.doc))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestValidate_NilDocument(t *testing.T) {
	_, err := loader.Validate(nil)
	assert.ErrorIs(t, err, loader.ErrMalformedDocument)
}

func TestEncode_RoundTrip(t *testing.T) {
	start, end := builder.GridCorners(3, 3)
	g, err := builder.Build(start, end, nil, []builder.BuilderOption{builder.WithSeed(2), builder.WithJitter(10)}, builder.Grid(3, 3))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, loader.Encode(&buf, g))

	back, err := loader.Read(&buf)
	require.NoError(t, err)
	assert.Equal(t, g.Nodes(), back.Nodes())
	assert.Equal(t, g.Edges(), back.Edges())
	assert.Equal(t, g.Start(), back.Start())
	assert.Equal(t, g.End(), back.End())
}

func TestSaveLoad(t *testing.T) {
	l, err := builder.Compose(nil, builder.Cycle(6))
	require.NoError(t, err)
	start, end := builder.Opposite(6)

	path := filepath.Join(t.TempDir(), "ring.json")
	require.NoError(t, loader.Save(path, loader.FromLayout(l, start, end)))

	g, err := loader.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 6, g.NodeCount())
	assert.Equal(t, core.NodeID(3), g.End())

	_, err = loader.Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSchema(t *testing.T) {
	s, err := loader.Schema()
	require.NoError(t, err)
	for _, key := range []string{"start_node_id", "end_node_id", "nodes", "edges"} {
		assert.Contains(t, s.Properties, key)
		assert.Contains(t, s.Required, key)
	}
}
