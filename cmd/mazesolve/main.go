// Command mazesolve solves black-and-white maze images.
//
//	mazesolve solve maze.png -o solved.png
//	mazesolve validate maze.png
//	mazesolve graph maze.png --json
//	mazesolve view maze.png
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
