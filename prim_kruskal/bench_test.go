package prim_kruskal_test

import (
	"testing"

	"github.com/katalvlaran/acopath/builder"
	"github.com/katalvlaran/acopath/core"
	"github.com/katalvlaran/acopath/prim_kruskal"
)

// benchGrid returns a jittered 30×30 grid.
func benchGrid(b *testing.B) *core.Graph {
	b.Helper()
	g, err := builder.Build(0, 899, nil,
		[]builder.BuilderOption{builder.WithSeed(42), builder.WithJitter(10)},
		builder.Grid(30, 30))
	if err != nil {
		b.Fatal(err)
	}
	return g
}

func BenchmarkKruskal(b *testing.B) {
	g := benchGrid(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = prim_kruskal.Kruskal(g)
	}
}

func BenchmarkPrim(b *testing.B) {
	g := benchGrid(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = prim_kruskal.Prim(g, 0)
	}
}
