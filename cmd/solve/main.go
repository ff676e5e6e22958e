// Command solve reads a single puzzle from a file or string argument and
// prints the solved grid (or why it couldn't be solved).
package main

import (
	"fmt"
	"os"

	"sudoku-solver/internal/parse"
	"sudoku-solver/internal/puzzle"
	"sudoku-solver/internal/render"
	"sudoku-solver/internal/solver"
	"sudoku-solver/pkg/config"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: solve <puzzle-string-or-file>")
		os.Exit(1)
	}

	cfg := config.Load()
	arg := os.Args[1]

	size, grid, err := load(arg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	p, err := puzzle.New(size, grid)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	p.Verbose = cfg.SolveOutputEnabled

	s := solver.New()
	if !s.Solve(p) {
		fmt.Println("could not solve puzzle")
		fmt.Println(render.Grid(p))
		os.Exit(1)
	}

	fmt.Println(render.Grid(p))
}

// load tries arg as a filename first, then falls back to treating it as a
// dense puzzle string.
func load(arg string) (size int, grid []int, err error) {
	if contents, readErr := os.ReadFile(arg); readErr == nil {
		return parse.File(string(contents))
	}
	return parse.String(arg)
}
