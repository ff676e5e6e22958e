// Command batch solves every puzzle in a newline-delimited puzzle-string
// file and prints the aggregate report (spec.md §4.12), grounded on the
// original batch_solve driver's report format.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"sudoku-solver/internal/batch"
	"sudoku-solver/internal/solver"
	"sudoku-solver/pkg/config"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: batch <puzzles-file> [more-files...]")
		os.Exit(1)
	}

	cfg := config.Load()
	s := solver.New()

	for _, name := range os.Args[1:] {
		path := name
		if !filepath.IsAbs(path) {
			path = filepath.Join(cfg.BatchDir, name)
		}

		contents, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
			continue
		}

		result, err := batch.Run(s, name, string(contents))
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
			continue
		}

		fmt.Println(batch.Report(result))
	}
}
