// Package parse reads puzzles from the two external text formats named in
// spec.md §6: a whitespace-separated grid (one row per line) and a dense
// digit string. Both return a size and a row-major grid ready for
// puzzle.New.
package parse

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// stringSizes maps an allowed dense-string length to its puzzle size. 16x16
// strings are ambiguous (multi-digit cells can't be split unambiguously)
// and are rejected, matching the original format's own restriction.
var stringSizes = map[int]int{16: 4, 81: 9}

// File parses the whitespace-separated grid format: each line is a row,
// cells within a row are separated by one or more whitespace characters.
// A cell token equal to a digit 1..size is that given; anything else
// (conventionally "x" or "0") is an empty cell. The puzzle size is taken
// from the number of rows, and every row must tokenize to exactly that
// many cells.
func File(contents string) (size int, grid []int, err error) {
	lines := splitNonEmptyLines(contents)
	size = len(lines)
	if size == 0 {
		return 0, nil, errors.New("invalid puzzle file: empty input")
	}

	firstTokens := strings.Fields(lines[0])
	if len(firstTokens) == 1 && len(lines[0]) > 1 {
		return 0, nil, errors.New("invalid puzzle file: whitespace between numbers is required")
	}

	grid = make([]int, 0, size*size)
	for _, line := range lines {
		tokens := strings.Fields(line)
		if len(tokens) != size {
			return 0, nil, errors.Errorf("invalid puzzle file: dimensions do not match, want %d cells per row, got %d", size, len(tokens))
		}
		for _, tok := range tokens {
			grid = append(grid, parseCellToken(tok, size))
		}
	}

	return size, grid, nil
}

func parseCellToken(tok string, size int) int {
	v, err := strconv.Atoi(tok)
	if err != nil || v < 1 || v > size {
		return 0
	}
	return v
}

func splitNonEmptyLines(contents string) []string {
	var out []string
	for _, line := range strings.Split(strings.ReplaceAll(contents, "\r\n", "\n"), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

// String parses the dense digit-string format: every character is one
// cell's digit, 0 marks an empty cell, and the string's length must be
// exactly 16 (a 4x4 puzzle) or 81 (a 9x9 puzzle).
func String(puzzleString string) (size int, grid []int, err error) {
	puzzleString = strings.TrimSpace(puzzleString)
	size, ok := stringSizes[len(puzzleString)]
	if !ok {
		return 0, nil, errors.Errorf("invalid puzzle string: length should be 16 or 81, got %d", len(puzzleString))
	}

	grid = make([]int, 0, size*size)
	for _, r := range puzzleString {
		if r < '0' || r > '9' {
			return 0, nil, errors.New("invalid puzzle string: all characters should be digits")
		}
		grid = append(grid, int(r-'0'))
	}
	return size, grid, nil
}
