package maze

import "errors"

var (
	// ErrNilGrid is returned when a nil *grid.Grid is passed to Build.
	ErrNilGrid = errors.New("maze: grid is nil")
	// ErrNoStep indicates a creep was requested into a wall or off the grid.
	ErrNoStep = errors.New("maze: no step in that direction")
	// ErrGoalUnreachable indicates the goal opening was not discovered from the start.
	ErrGoalUnreachable = errors.New("maze: goal opening is unreachable")
	// ErrBrokenTrail indicates the origin chain from the goal does not reach the start.
	ErrBrokenTrail = errors.New("maze: origin trail does not reach the start")
)
