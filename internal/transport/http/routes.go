// Package http exposes the solver over HTTP: solve a puzzle, validate a
// completed grid, and a health check. This is the ambient transport
// surface; puzzle generation, sessions, and scoring are out of scope.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sudoku-solver/internal/parse"
	"sudoku-solver/internal/puzzle"
	"sudoku-solver/internal/render"
	"sudoku-solver/internal/solver"
	"sudoku-solver/pkg/config"
	"sudoku-solver/pkg/constants"
)

// RegisterRoutes wires the solver's HTTP surface onto r.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, s *solver.Solver) {
	r.GET("/health", healthHandler)

	api := r.Group("/api")
	{
		api.POST("/solve", solveHandler(cfg, s))
		api.POST("/validate", validateHandler)
	}
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"version": constants.APIVersion,
	})
}

type solveRequest struct {
	Puzzle string `json:"puzzle" binding:"required"`
}

type solveResponse struct {
	Status   string `json:"status"`
	Solution string `json:"solution,omitempty"`
	Error    string `json:"error,omitempty"`
}

// solveHandler parses the puzzle string, runs it through s, and reports
// the outcome. Each request gets its own Puzzle; the *solver.Solver (and
// its technique statistics) is shared across requests.
func solveHandler(cfg *config.Config, s *solver.Solver) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req solveRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, solveResponse{
				Status: constants.StatusInvalidInput,
				Error:  err.Error(),
			})
			return
		}

		size, grid, err := parse.String(req.Puzzle)
		if err != nil {
			c.JSON(http.StatusBadRequest, solveResponse{
				Status: constants.StatusInvalidInput,
				Error:  err.Error(),
			})
			return
		}

		p, err := puzzle.New(size, grid)
		if err != nil {
			c.JSON(http.StatusBadRequest, solveResponse{
				Status: constants.StatusInvalidInput,
				Error:  err.Error(),
			})
			return
		}
		p.Verbose = cfg.SolveOutputEnabled

		if !s.Solve(p) {
			status := constants.StatusUnsolved
			if p.CheckIfSolved() {
				status = constants.StatusInvalidSolution
			}
			c.JSON(http.StatusOK, solveResponse{Status: status})
			return
		}

		c.JSON(http.StatusOK, solveResponse{
			Status:   constants.StatusSolved,
			Solution: render.DigitString(p),
		})
	}
}

type validateRequest struct {
	Puzzle string `json:"puzzle" binding:"required"`
}

type validateResponse struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}

func validateHandler(c *gin.Context) {
	var req validateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, validateResponse{Error: err.Error()})
		return
	}

	size, grid, err := parse.String(req.Puzzle)
	if err != nil {
		c.JSON(http.StatusBadRequest, validateResponse{Error: err.Error()})
		return
	}

	p, err := puzzle.New(size, grid)
	if err != nil {
		c.JSON(http.StatusBadRequest, validateResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, validateResponse{Valid: p.ValidateSolution()})
}
