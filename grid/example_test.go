package grid_test

import (
	"fmt"

	"github.com/katalvlaran/algoviz/grid"
)

// ExampleBuildOpenGrid prints a small obstacle-free field.
func ExampleBuildOpenGrid() {
	g := grid.BuildOpenGrid(4, 6, 42, 0) // coerced to 5×7
	fmt.Print(g)
	fmt.Println(g.Start(), g.Goal())
	// Output:
	// .......
	// .......
	// .......
	// .......
	// .......
	// {1 1} {3 5}
}

// ExampleBuildMaze shows the perfect-maze invariant on a 3×3 lattice.
func ExampleBuildMaze() {
	g := grid.BuildMaze(7, 7, 1, 0)
	fmt.Println(g.Rows, g.Cols, g.Count(grid.Empty))
	// Output:
	// 7 7 17
}
