package solver

import (
	"github.com/kpitt/exactcover/internal/dlx"
	"github.com/kpitt/exactcover/internal/puzzle"
	"github.com/kpitt/exactcover/internal/rows"
)

// SolveDancingLinks solves p in place via Knuth's Algorithm X, pulling the
// first exact cover off the mesh and applying it directly to the grid.  It
// reports whether a solution was found.
func SolveDancingLinks(p *puzzle.Puzzle) bool {
	matrix, forced, decode := rows.Sudoku(p)
	mesh := dlx.New(matrix, forced)

	solution, ok := mesh.Next()
	if !ok {
		return false
	}

	for _, rowIndex := range solution {
		placement := decode(rowIndex)
		cell := p.Grid[placement.Row][placement.Col]
		if !cell.IsSolved() {
			p.PlaceValue(placement.Row, placement.Col, placement.Val)
		}
	}
	return true
}
