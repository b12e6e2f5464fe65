package loader

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	json "github.com/goccy/go-json"
	"github.com/google/jsonschema-go/jsonschema"

	"github.com/katalvlaran/acopath/bfs"
	"github.com/katalvlaran/acopath/builder"
	"github.com/katalvlaran/acopath/core"
)

var (
	// ErrMalformedDocument is returned when the input is not a well-formed graph
	// document (syntax error, missing key, wrong type).
	ErrMalformedDocument = errors.New("loader: malformed graph document")

	// ErrEndUnreachable is returned when no path joins the start and end nodes.
	ErrEndUnreachable = errors.New("loader: end node unreachable from start node")
)

// NodeRecord is one entry of "nodes".
type NodeRecord struct {
	ID core.NodeID `json:"id"`
	X  float64     `json:"x"`
	Y  float64     `json:"y"`
}

// EdgeRecord is one entry of "edges".
type EdgeRecord struct {
	From core.NodeID `json:"from_node_id"`
	To   core.NodeID `json:"to_node_id"`
}

// Document is the on-disk graph format.
type Document struct {
	StartNodeID core.NodeID  `json:"start_node_id"`
	EndNodeID   core.NodeID  `json:"end_node_id"`
	Nodes       []NodeRecord `json:"nodes"`
	Edges       []EdgeRecord `json:"edges"`
}

var (
	schemaOnce     sync.Once
	schema         *jsonschema.Schema
	resolvedSchema *jsonschema.Resolved
	schemaErr      error
)

func documentSchema() (*jsonschema.Schema, *jsonschema.Resolved, error) {
	schemaOnce.Do(func() {
		schema, schemaErr = jsonschema.For[Document](nil)
		if schemaErr != nil {
			return
		}
		schema.Title = "ACO graph"
		resolvedSchema, schemaErr = schema.Resolve(nil)
	})
	return schema, resolvedSchema, schemaErr
}

// Schema returns the JSON Schema every graph document must satisfy.
func Schema() (*jsonschema.Schema, error) {
	s, _, err := documentSchema()
	if err != nil {
		return nil, fmt.Errorf("loader: build schema: %w", err)
	}
	return s, nil
}

// Parse decodes and shape-checks a graph document.
func Parse(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("loader: read: %w", err)
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	_, resolved, err := documentSchema()
	if err != nil {
		return nil, fmt.Errorf("loader: build schema: %w", err)
	}
	if err := resolved.Validate(raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	return &doc, nil
}

// Validate builds the graph described by doc and checks that its end node is
// reachable from its start node.
func Validate(doc *Document, opts ...core.GraphOption) (*core.Graph, error) {
	if doc == nil {
		return nil, fmt.Errorf("%w: nil document", ErrMalformedDocument)
	}

	nodes := make([]core.RawNode, len(doc.Nodes))
	for i, n := range doc.Nodes {
		nodes[i] = core.RawNode{ID: n.ID, X: n.X, Y: n.Y}
	}
	edges := make([]core.RawEdge, len(doc.Edges))
	for i, e := range doc.Edges {
		edges[i] = core.RawEdge{From: e.From, To: e.To}
	}

	g, err := core.Build(nodes, edges, doc.StartNodeID, doc.EndNodeID, opts...)
	if err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}

	ok, err := bfs.Reachable(g, g.Start(), g.End())
	if err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %d→%d", ErrEndUnreachable, g.Start(), g.End())
	}
	return g, nil
}

// Read parses and validates a document from r.
func Read(r io.Reader, opts ...core.GraphOption) (*core.Graph, error) {
	doc, err := Parse(r)
	if err != nil {
		return nil, err
	}
	return Validate(doc, opts...)
}

// Load reads, parses and validates the graph file at path.
func Load(path string, opts ...core.GraphOption) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: open %s: %w", path, err)
	}
	defer f.Close()

	g, err := Read(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// FromGraph converts a built graph back into a document, nodes in load order and
// edges in insertion order.
func FromGraph(g *core.Graph) *Document {
	doc := &Document{
		StartNodeID: g.Start(),
		EndNodeID:   g.End(),
		Nodes:       make([]NodeRecord, 0, g.NodeCount()),
		Edges:       make([]EdgeRecord, 0, g.EdgeCount()),
	}
	for _, n := range g.Nodes() {
		doc.Nodes = append(doc.Nodes, NodeRecord{ID: n.ID, X: n.X, Y: n.Y})
	}
	for _, e := range g.Edges() {
		doc.Edges = append(doc.Edges, EdgeRecord{From: e.From, To: e.To})
	}
	return doc
}

// FromLayout wraps a generated layout with the chosen endpoints.
func FromLayout(l *builder.Layout, start, end core.NodeID) *Document {
	doc := &Document{
		StartNodeID: start,
		EndNodeID:   end,
		Nodes:       make([]NodeRecord, len(l.Nodes)),
		Edges:       make([]EdgeRecord, len(l.Edges)),
	}
	for i, n := range l.Nodes {
		doc.Nodes[i] = NodeRecord{ID: n.ID, X: n.X, Y: n.Y}
	}
	for i, e := range l.Edges {
		doc.Edges[i] = EdgeRecord{From: e.From, To: e.To}
	}
	return doc
}

// Write encodes doc as indented JSON.
func Write(w io.Writer, doc *Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("loader: encode: %w", err)
	}
	data = append(data, '\n')
	if _, err := io.Copy(w, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("loader: write: %w", err)
	}
	return nil
}

// Encode writes g in the graph file format.
func Encode(w io.Writer, g *core.Graph) error {
	return Write(w, FromGraph(g))
}

// Save writes doc to path.
func Save(path string, doc *Document) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("loader: create %s: %w", path, err)
	}
	if err := Write(f, doc); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
