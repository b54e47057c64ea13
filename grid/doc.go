// Package grid models a rectangular maze as an immutable boolean matrix
// (true = path, false = wall) and provides the primitives the solver walks on.
//
// What:
//
//   - Grid wraps a row-major Matrix; row and column accessors accept negative
//     indices (-1 = last) and fail with ErrIndexOutOfRange after normalization.
//   - Direction is the closed set {North, East, South, West} with deltas and
//     opposites; DirectionSet is a 4-bit set of directions.
//   - Validate checks the maze preconditions in a fixed order:
//     size → shape → corners → opening count → opening spacing.
//   - Openings lists the border path cells; the first is the start, the
//     second the goal.
//   - Regions groups path cells into 4-connected regions; Connected asks
//     whether two cells share one.
//
// Why:
//
//   - The graph builder only needs O(1) cell lookups and neighbor degrees.
//   - Validation up front keeps the solver free of malformed-input checks.
//
// Complexity:
//
//   - New, Validate, Openings, Regions: O(W×H) time; New and Regions use O(W×H) memory.
//   - At, InBounds, Degree:    O(1).
//   - Row, Col:                O(W) and O(H) (copies).
//
// Options:
//
//   - Options.PathValue: which integer marks a path cell in MatrixFromInts.
//
// Errors:
//
//   - ErrEmptyGrid, ErrNonRectangular: constructor shape errors.
//   - ErrMatrixTooSmall, ErrCornerIsPath, ErrWrongExitCount, ErrExitsTooClose:
//     validation failures.
//   - ErrIndexOutOfRange: Row/Col index outside the grid after normalization.
package grid
