package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/kpitt/exactcover/internal/puzzle"
	"github.com/kpitt/exactcover/internal/solver"
	"github.com/mattn/go-isatty"
)

func main() {
	showStats := flag.Bool("stats", false, "print Dancing Links search statistics after solving")
	flag.Parse()

	if isStdinTTY() {
		fmt.Println("Enter initial board as 9 lines of 9 characters.")
		fmt.Println("Use any character other than the digits 1-9 for empty cells.")
		fmt.Println("(Ctrl+D to finish on Unix/Linux, Ctrl+Z then Enter on Windows):")
	}

	b := puzzle.ReadBoard(os.Stdin)

	solved, stats, err := solver.SolveWithDancingLinks(b, nil)
	if err != nil {
		color.Red("\nSolution failed validation: %v", err)
	}

	if solved {
		color.HiWhite("\nSolution:")
	} else {
		color.HiWhite("\nNo solution found; initial board:")
	}
	b.Print()

	if !solved {
		fmt.Println()
		b.PrintUnsolvedCounts()
	}

	if *showStats {
		stats.PrintStats()
	}
}

func isStdinTTY() bool {
	return isTerminal(os.Stdin)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
