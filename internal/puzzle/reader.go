package puzzle

import (
	"bufio"
	"io"
)

// ReadBoard parses 9 lines of 9 characters from r into a new Puzzle, treating
// the digits 1-9 as givens and any other character as an empty cell. It's the
// inverse of Puzzle.String for the plain (uncolored) grid representation.
func ReadBoard(r io.Reader) *Puzzle {
	p := NewPuzzle()
	scanner := bufio.NewScanner(r)

	row := 0
	for scanner.Scan() {
		if row >= 9 {
			puzzleStateError("too many input lines")
		}
		line := scanner.Text()
		if len(line) < 9 {
			puzzleStateError("input line too short")
		}
		p.processRow(row, line[:9])
		row = row + 1
	}
	if row < 9 {
		puzzleStateError("not enough input lines")
	}

	if err := scanner.Err(); err != nil {
		fatalError("error reading standard input", err.Error())
	}

	return p
}

func (p *Puzzle) processRow(row int, line string) {
	for col := range 9 {
		val := int8(line[col]) - 48
		if val >= 1 && val <= 9 {
			p.GivenValue(row, col, val)
		}
	}
}
