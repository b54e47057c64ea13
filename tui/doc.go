// Package tui renders a maze and its solution on a tcell screen.
//
// What:
//
//   - Draw paints one terminal cell per maze cell: walls as WallRune, path
//     cells blank, the solution as SolutionRune with StartRune and GoalRune
//     at its ends. Anything beyond the screen is clipped.
//   - Run draws, redraws on resize, and returns on q, Esc or Ctrl-C.
//
// Complexity:
//
//   - Draw: O(W×H + len(path)).
package tui
