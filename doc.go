// Package mazegraph solves two-opening grid mazes by reducing them to a
// graph of junctions and dead ends.
//
// 🚀 What is mazegraph?
//
//	A small, dependency-light toolkit that brings together:
//		• grid/    – immutable wall/path grids, directions, validation, regions
//		• vindex/  – coordinate-sum search tree for vertex lookup
//		• maze/    – corridor walker, graph builder, path reconstruction
//		• imageio/ – maze images in, solution overlays out
//		• store/   – Pebble-backed solution cache keyed by grid fingerprint
//		• tui/     – terminal viewer (tcell)
//		• config/  – YAML + .env configuration for the CLI
//
// ✨ How it works
//
//   - Corridors (cells with exactly two open neighbors) are collapsed;
//     only dead ends, junctions and the two border openings become vertices.
//   - Build explores the maze depth-first with an explicit stack, so maze
//     size is bounded by memory, not by goroutine stack depth.
//   - FindSolution walks origin links back from the goal and re-expands
//     every corridor into cells, returning the path from start to goal.
//
// Quick ASCII example (# wall, . path):
//
//	#.#####
//	#.....#
//	#.###.#
//	#...#.#
//	#####.#
//
// has four vertices: the start (0,1), a junction at (1,1), a dead end at
// (3,3) and the goal (4,5).
//
//	go install github.com/katalvlaran/mazegraph/cmd/mazesolve@latest
package mazegraph
