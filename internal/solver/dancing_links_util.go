package solver

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/kpitt/exactcover/internal/dlx"
	"github.com/kpitt/exactcover/internal/puzzle"
	"github.com/kpitt/exactcover/internal/rows"
)

// DancingLinksOptions configures the Dancing Links solver behavior.
type DancingLinksOptions struct {
	EnableDebugging bool
	TimeLimit       time.Duration
	MaxSolutions    int
}

// DefaultDancingLinksOptions returns sensible default options.
func DefaultDancingLinksOptions() *DancingLinksOptions {
	return &DancingLinksOptions{
		EnableDebugging: false,
		TimeLimit:       10 * time.Second,
		MaxSolutions:    1,
	}
}

// DancingLinksStats tracks solving statistics.
type DancingLinksStats struct {
	NodesVisited   int
	BacktrackCount int
	SolutionsFound int
	TimeElapsed    time.Duration
	MatrixSize     MatrixInfo
}

// MatrixInfo describes the constraint matrix handed to the mesh.
type MatrixInfo struct {
	Columns    int
	Rows       int
	TotalNodes int
	Density    float64 // percentage of non-zero entries
}

func matrixInfo(matrix [][]int, columnCount int) MatrixInfo {
	info := MatrixInfo{Columns: columnCount, Rows: len(matrix)}
	for _, row := range matrix {
		info.TotalNodes += len(row)
	}
	if info.Columns > 0 && info.Rows > 0 {
		info.Density = float64(info.TotalNodes) / float64(info.Columns*info.Rows) * 100.0
	}
	return info
}

// countingTracer tallies forward and backward steps so SolveWithDancingLinks can
// report search effort without printing anything.
type countingTracer struct {
	steps      int
	backtracks int
}

func (t *countingTracer) Cover(int)   {}
func (t *countingTracer) Uncover(int) {}
func (t *countingTracer) Step(forward bool, _ int) {
	if forward {
		t.steps++
	} else {
		t.backtracks++
	}
}

// SolveWithDancingLinks solves p in place via Dancing Links, honoring
// options.TimeLimit, and reports whether a solution was applied along with
// search statistics and a validation error if the result is inconsistent.
func SolveWithDancingLinks(p *puzzle.Puzzle, options *DancingLinksOptions) (bool, *DancingLinksStats, error) {
	if options == nil {
		options = DefaultDancingLinksOptions()
	}

	matrix, forced, decode := rows.Sudoku(p)
	mesh := dlx.New(matrix, forced)

	tracer := &countingTracer{}
	mesh.Tracer = tracer

	stats := &DancingLinksStats{MatrixSize: matrixInfo(matrix, 324)}
	start := time.Now()

	deadline := time.Now().Add(options.TimeLimit)
	var solution []int
	solved := false
	for !mesh.IsCompleted() {
		if options.TimeLimit > 0 && time.Now().After(deadline) {
			break
		}
		if s, ok := mesh.Step(); ok {
			solution = s
			solved = true
			break
		}
	}

	stats.TimeElapsed = time.Since(start)
	stats.NodesVisited = tracer.steps
	stats.BacktrackCount = tracer.backtracks
	if options.EnableDebugging {
		color.Yellow("visited %d steps, %d backtracks", tracer.steps, tracer.backtracks)
	}

	if !solved {
		return false, stats, nil
	}
	stats.SolutionsFound = 1

	for _, rowIndex := range solution {
		placement := decode(rowIndex)
		cell := p.Grid[placement.Row][placement.Col]
		if !cell.IsSolved() {
			p.PlaceValue(placement.Row, placement.Col, placement.Val)
		}
	}

	return true, stats, validateSolution(p)
}

// CountSolutions counts the number of distinct exact covers for p, up to
// maxSolutions, without mutating p.
func CountSolutions(p *puzzle.Puzzle, maxSolutions int) int {
	matrix, forced, _ := rows.Sudoku(p)
	mesh := dlx.New(matrix, forced)

	count := 0
	for count < maxSolutions {
		if _, ok := mesh.Next(); !ok {
			break
		}
		count++
	}
	return count
}

// validateSolution checks that a fully solved puzzle has no row, column, or
// box duplicates.
func validateSolution(p *puzzle.Puzzle) error {
	for r := range 9 {
		for c := range 9 {
			if !p.Grid[r][c].IsSolved() {
				return fmt.Errorf("cell (%d,%d) is not filled", r, c)
			}
		}
	}

	for r := range 9 {
		seen := make(map[int8]bool)
		for c := range 9 {
			val := p.Grid[r][c].Value()
			if seen[val] {
				return fmt.Errorf("duplicate value %d in row %d", val, r)
			}
			seen[val] = true
		}
	}

	for c := range 9 {
		seen := make(map[int8]bool)
		for r := range 9 {
			val := p.Grid[r][c].Value()
			if seen[val] {
				return fmt.Errorf("duplicate value %d in column %d", val, c)
			}
			seen[val] = true
		}
	}

	for box := range 9 {
		seen := make(map[int8]bool)
		boxRow, boxCol := box/3, box%3
		for i := range 9 {
			r, c := boxRow*3+i/3, boxCol*3+i%3
			val := p.Grid[r][c].Value()
			if seen[val] {
				return fmt.Errorf("duplicate value %d in box %d", val, box)
			}
			seen[val] = true
		}
	}

	return nil
}

// PrintStats displays solving statistics in a formatted way.
func (stats *DancingLinksStats) PrintStats() {
	fmt.Printf("\n%s\n", color.HiCyanString("Dancing Links Statistics"))
	fmt.Printf("%s\n", color.HiCyanString("========================"))

	fmt.Printf("Matrix Info:\n")
	fmt.Printf("  Columns:     %s\n", color.HiYellowString("%d", stats.MatrixSize.Columns))
	fmt.Printf("  Rows:        %s\n", color.HiYellowString("%d", stats.MatrixSize.Rows))
	fmt.Printf("  Total Nodes: %s\n", color.HiYellowString("%d", stats.MatrixSize.TotalNodes))
	fmt.Printf("  Density:     %s\n", color.HiYellowString("%.2f%%", stats.MatrixSize.Density))

	fmt.Printf("\nSearch Statistics:\n")
	fmt.Printf("  Steps Taken:     %s\n", color.HiGreenString("%d", stats.NodesVisited))
	fmt.Printf("  Backtracks:      %s\n", color.HiRedString("%d", stats.BacktrackCount))
	fmt.Printf("  Solutions Found: %s\n", color.HiGreenString("%d", stats.SolutionsFound))
	fmt.Printf("  Time Elapsed:    %s\n", color.HiBlueString("%v", stats.TimeElapsed))

	if stats.TimeElapsed.Nanoseconds() > 0 {
		nodesPerSec := float64(stats.NodesVisited) / stats.TimeElapsed.Seconds()
		fmt.Printf("  Steps/Second:    %s\n", color.HiMagentaString("%.0f", nodesPerSec))
	}
}
