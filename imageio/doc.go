// Package imageio converts maze images to grid matrices and renders solved
// mazes back to PNG.
//
// One pixel is one cell: x is the column, y the row. Light pixels are path
// cells unless DecodeOptions.Invert is set. Transparent pixels are read as
// white background. The rendered overlay paints walls black, path cells
// white, and the solution as a green-to-red gradient from start to goal.
package imageio
