// Package gridpath is a weighted-grid pathfinding toolkit: a square board of
// cells with per-cell step costs and barriers, searched with Dijkstra's
// algorithm or A* while an observer watches every step.
//
// What is in the box?
//
//	grid/         board model: cells, roles, weights, adjacency, scatter, reachability
//	frontier/     generic min-queue with FIFO tie-breaking and lazy decrease-key
//	search/       Dijkstra and A* (Manhattan), path reconstruction, run statistics
//	observe/      per-step hook, frame capture, pacing and logging helpers
//	scenario/     HCL scenario files describing a board and its endpoints
//	stream/       socket.io transport forwarding frames to a remote renderer
//	cmd/gridpath  command-line front end with a text renderer
//
// Quick start:
//
//	g, _ := grid.New(20, grid.WithSeed(42))
//	_ = g.SetRole(grid.Coord{Row: 0, Col: 0}, grid.Start)
//	_ = g.SetRole(grid.Coord{Row: 19, Col: 19}, grid.End)
//	g.Scatter(rand.New(rand.NewSource(42)), grid.DefaultScatter)
//	start, end := g.Endpoints()
//	res, err := search.Run(g, start, end, search.WithAlgorithm(search.AStar))
//
// Moving onto a cell costs that cell's weight, so the start cell's weight is
// never paid. The same board always yields the same route: neighbors are
// discovered up, down, left, right and frontier ties go to the earliest push.
package gridpath
