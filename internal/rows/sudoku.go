// Package rows builds exact-cover row/column matrices for concrete puzzles,
// so that internal/dlx never has to know about Sudoku cells or polyomino
// shapes -- only column indices.
package rows

import "github.com/kpitt/exactcover/internal/puzzle"

// Placement identifies the (row, col, value) a candidate row represents.
type Placement struct {
	Row, Col int
	Val      int8
}

// Sudoku builds the classic 324-column exact cover matrix for a 9x9 Sudoku
// puzzle: 81 cell, 81 row-digit, 81 col-digit, and 81 box-digit constraints.
// Only rows consistent with p's current candidates are emitted, so a
// partially solved puzzle yields a far smaller matrix than an empty one.
// Forced contains the cell-constraint column for every already-solved cell,
// letting the caller pin those placements before search begins. decode maps
// a solution's row index back to the placement it represents.
func Sudoku(p *puzzle.Puzzle) (matrix [][]int, forced []int, decode func(rowIndex int) Placement) {
	var placements []Placement

	for r := range 9 {
		for c := range 9 {
			cell := p.Grid[r][c]
			if cell.IsSolved() {
				placements = append(placements, Placement{r, c, cell.Value()})
				forced = append(forced, cellColumn(r, c))
				continue
			}
			for _, v := range cell.CandidateValues() {
				placements = append(placements, Placement{r, c, v})
			}
		}
	}

	matrix = make([][]int, len(placements))
	for i, pl := range placements {
		matrix[i] = sudokuColumns(pl.Row, pl.Col, pl.Val)
	}

	decode = func(rowIndex int) Placement {
		return placements[rowIndex]
	}
	return matrix, forced, decode
}

func sudokuColumns(r, c int, val int8) []int {
	v := int(val) - 1
	box := (r/3)*3 + c/3
	return []int{
		cellColumn(r, c),
		81 + r*9 + v,
		162 + c*9 + v,
		243 + box*9 + v,
	}
}

func cellColumn(r, c int) int {
	return r*9 + c
}
