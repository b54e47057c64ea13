// Package maze extracts a vertex graph from a validated grid.Grid and
// reconstructs the unique path between the maze's two openings.
//
// What:
//
//   - Walker moves along corridors: Step (one cell), Walk (straight run up to
//     a wall or a vertex), Creep (walk plus corner turns until a vertex).
//   - Build discovers every vertex reachable from the start opening with an
//     explicit depth-first stack and indexes each completed vertex in a
//     vindex.Tree keyed by coordinate sum.
//   - FindSolution retraces origins from the goal back to the start and
//     returns every cell of the path, start first.
//   - Solve runs Validate → grid.New → Build → FindSolution.
//
// A vertex is any path cell whose traversable-neighbor count is not 2:
// junctions (3 or 4), dead ends (1) and the two openings.
//
// Origin convention: Vertex.Origin is the side of the vertex through which
// it was first entered, so creeping from the vertex toward Origin leads back
// to the vertex that discovered it.
//
// Complexity:
//
//   - Build:        O(W×H) time (each corridor cell is crossed at most twice),
//     O(V) stack and arena memory.
//   - FindSolution: O(P·(h+b)) for a path of P cells, h and b the index
//     height and bucket size.
//
// Options:
//
//   - WithContext(ctx)  cancellation, checked once per stack iteration.
//   - WithOnVisit(fn)   called when a vertex is first discovered.
//   - WithOnExit(fn)    called when a vertex is fully explored and indexed.
//
// Errors:
//
//   - ErrNilGrid          Build received a nil grid.
//   - ErrNoStep           Creep was asked to move into a wall.
//   - ErrGoalUnreachable  the goal opening is not connected to the start.
//   - ErrBrokenTrail      the origin chain does not lead back to the start.
//   - grid validation errors, context errors, and hook errors are returned
//     wrapped.
//
// Everything here is single-threaded and owned by one solve; independent
// grids may be solved concurrently.
package maze
