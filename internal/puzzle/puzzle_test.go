package puzzle

import (
	"strings"
	"testing"
)

func TestNewPuzzleStartsUnsolved(t *testing.T) {
	p := NewPuzzle()
	if p.IsSolved() {
		t.Fatal("expected a fresh puzzle to be unsolved")
	}
	if got := p.UnsolvedCount(); got != 81 {
		t.Errorf("UnsolvedCount() = %d, want 81", got)
	}
}

func TestGivenValueUpdatesUnsolvedCount(t *testing.T) {
	p := NewPuzzle()
	p.GivenValue(0, 0, 5)

	if got := p.UnsolvedCount(); got != 80 {
		t.Errorf("UnsolvedCount() = %d, want 80", got)
	}
	if !p.Grid[0][0].IsGiven {
		t.Error("expected cell (0,0) to be marked as given")
	}
}

func TestReadBoardRoundTripsThroughString(t *testing.T) {
	input := strings.Join([]string{
		"53..7....",
		"6..195...",
		".98....6.",
		"8...6...3",
		"4..8.3..1",
		"7...2...6",
		".6....28.",
		"...419..5",
		"....8..79",
	}, "\n") + "\n"

	p := ReadBoard(strings.NewReader(input))
	if got := p.String(); got != strings.TrimRight(input, "\n") {
		t.Errorf("String() round trip mismatch:\ngot:\n%s\nwant:\n%s", got, input)
	}
	if p.Grid[0][0].Value() != 5 {
		t.Errorf("cell (0,0) = %d, want 5", p.Grid[0][0].Value())
	}
	if p.Grid[0][2].IsSolved() {
		t.Error("expected cell (0,2) to remain unsolved")
	}
}
