package pathtrace_test

import (
	"testing"

	"github.com/katalvlaran/algoviz/grid"
	"github.com/katalvlaran/algoviz/pathtrace"
)

func BenchmarkEmit_Maze(b *testing.B) {
	g := grid.BuildMaze(51, 73, 1, 0.15)
	w := grid.BuildWeights(g, 1, true)
	for _, e := range pathtrace.Registry() {
		b.Run(e.Key, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = e.Fn(g, g.Start(), g.Goal(), pathtrace.WithWeights(w))
			}
		})
	}
}
