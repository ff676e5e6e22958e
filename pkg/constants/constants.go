// Package constants holds grid-size limits and solver tuning knobs shared
// across the solver packages.
package constants

// SupportedSizes maps a puzzle size to its box size. box_size^2 == size.
var SupportedSizes = map[int]int{
	4:  2,
	9:  3,
	16: 4,
}

// MinGivens is the minimum number of clues a puzzle is expected to carry
// for a unique solution to be plausible. The parsers and the solver do not
// check it.
const MinGivens = 17

// MaxBacktrackBranches caps the number of states pushed onto the search
// stack before the solver gives up, guarding against runaway search on a
// pathological or malformed puzzle.
const MaxBacktrackBranches = 200000

// Technique priority tiers, fixed ordering, cheap-first.
const (
	TierHighPriority = "high"
	TierNormal       = "normal"
	TierLow          = "low"
)

// Solve status strings used in API responses.
const (
	StatusSolved          = "solved"
	StatusUnsolved        = "unsolved"
	StatusInvalidInput    = "invalid_input"
	StatusInvalidSolution = "invalid_solution"
)

// DefaultPort is the HTTP server's fallback listen port.
const DefaultPort = "8080"

// APIVersion is reported by the health endpoint.
const APIVersion = "0.1.0"
