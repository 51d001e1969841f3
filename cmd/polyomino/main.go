package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/kpitt/exactcover/internal/dlx"
	"github.com/kpitt/exactcover/internal/rows"
)

func main() {
	width := flag.Int("width", 4, "board width in squares")
	height := flag.Int("height", 4, "board height in squares")
	squares := flag.Int("squares", 4, "number of squares per piece")
	rotations := flag.Bool("rotations", true, "allow each piece to be rotated and reflected")
	flag.Parse()

	shapes := rows.EnumerateShapes(*squares)
	fmt.Printf("Generated %s distinct %d-square shapes for a %dx%d board\n",
		color.HiYellowString("%d", len(shapes)), *squares, *width, *height)

	matrix, colCount := rows.Polyomino(*width, *height, shapes, *rotations)
	fmt.Printf("Built %s candidate placements across %s columns\n",
		color.HiYellowString("%d", len(matrix)), color.HiYellowString("%d", colCount))

	mesh := dlx.New(matrix, nil)
	solution, ok := mesh.Next()
	if !ok {
		fmt.Println(color.HiRedString("✗ No exact tiling exists for this board and piece set"))
		os.Exit(1)
	}

	fmt.Println(color.HiGreenString("✓ Found an exact tiling!"))
	printTiling(*width, *height, matrix, solution)
}

func printTiling(width, height int, matrix [][]int, solution []int) {
	board := make([]rune, width*height)
	for i := range board {
		board[i] = '.'
	}

	labels := "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	for pieceIdx, rowIdx := range solution {
		row := matrix[rowIdx]
		label := rune(labels[pieceIdx%len(labels)])
		for _, col := range row {
			if col < width*height {
				board[col] = label
			}
		}
	}

	fmt.Println("┌" + repeat("───", width) + "┐")
	for y := range height {
		fmt.Print("│")
		for x := range width {
			fmt.Printf(" %c ", board[y*width+x])
		}
		fmt.Println("│")
	}
	fmt.Println("└" + repeat("───", width) + "┘")
}

func repeat(s string, n int) string {
	out := ""
	for range n {
		out += s
	}
	return out
}
