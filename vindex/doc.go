// Package vindex implements the coordinate-sum search tree used to
// deduplicate maze vertices during graph discovery.
//
// What:
//
//   - Tree[V] is a binary search tree keyed by Key(c) = c.Row + c.Col.
//   - Each node is a bucket holding every entry whose cell shares that key,
//     in insertion order. Cells on the same anti-diagonal collide by design.
//   - Insert is idempotent per cell; Find descends by key and then scans the
//     bucket for the exact cell.
//
// Why:
//
//   - The key is cheap and deterministic and spreads grid coordinates over
//     W+H-1 buckets without a second comparison dimension.
//
// Complexity:
//
//   - Insert, Find: O(h + b), h = tree height, b = bucket size (≤ min(W,H)).
//   - The tree is never rebalanced; h is O(W+H) in the worst case.
//
// Errors:
//
//   - ErrCellNotFound: Get on a cell that was never inserted.
//
// The tree is not safe for concurrent mutation; it belongs to one solve.
package vindex
