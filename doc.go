// Package algoviz is a deterministic step-trace engine for sorting and
// grid pathfinding, built for visual explorers and complexity labs.
//
// What is inside?
//
//	prng/        FNV-1a seed hashing and the mulberry32 stream
//	arraygen/    random, reversed, nearly-sorted and few-unique arrays
//	grid/        occupancy grids, mazes, weight maps, heuristics, regions
//	sorttrace/   11 sort emitters, headless Measure variants, replay
//	pathtrace/   BFS, Dijkstra, A*, DFS, Greedy and Dial's emitters, replay
//	player/      step cursors over sort and path traces
//	bench/       size sweeps, summaries, growth fits and renderers
//	config/      YAML configuration and ALGOVIZ_* environment overlay
//	logger/      slog construction per run mode
//	server/      HTTP API (chi)
//	cmd/algoviz  serve, sweep, sort, path and config commands
//
// Every generator is a pure function of its parameters and seed: the same
// inputs yield the same array, maze, weight map and trace on every run.
// Engine packages do no I/O and never log; the outer layers do.
//
// Quick start:
//
//	a := arraygen.MakeArray(16, arraygen.Random, 7)
//	res := sorttrace.Quick(a)
//	fmt.Println(res.Metrics.Comparisons, len(res.Steps))
//
//	g := grid.BuildMaze(21, 31, 1, 0)
//	out, _ := pathtrace.AStar(g, g.Start(), g.Goal())
//	fmt.Println(out.Found, out.Metrics.PathLen)
package algoviz
