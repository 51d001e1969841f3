package rows

import "testing"

func TestEnumerateShapesMonomino(t *testing.T) {
	shapes := EnumerateShapes(1)
	if len(shapes) != 1 {
		t.Fatalf("expected exactly 1 monomino shape, got %d", len(shapes))
	}
	if shapes[0][0] != (Cell{0, 0}) {
		t.Errorf("expected the single cell at origin, got %+v", shapes[0])
	}
}

func TestEnumerateShapesDomino(t *testing.T) {
	// normalize only translates to the origin, it never rotates, so the
	// horizontal and vertical dominoes survive as two distinct shapes.
	shapes := EnumerateShapes(2)
	if len(shapes) != 2 {
		t.Fatalf("expected 2 domino shapes up to translation, got %d", len(shapes))
	}
	for _, shape := range shapes {
		if len(shape) != 2 {
			t.Fatalf("expected 2 cells in each domino, got %d", len(shape))
		}
	}
}

func TestEnumerateShapesTromino(t *testing.T) {
	// Straight and L triominoes, before accounting for rotation/reflection.
	shapes := EnumerateShapes(3)
	if len(shapes) == 0 {
		t.Fatal("expected at least one tromino shape")
	}
	for _, shape := range shapes {
		if len(shape) != 3 {
			t.Fatalf("expected 3 cells per tromino, got %d", len(shape))
		}
	}
}

func TestPolyominoDominoPlacementsOn2x1Board(t *testing.T) {
	domino := EnumerateShapes(2)
	matrix, colCount := Polyomino(2, 1, domino, true)

	wantCols := 2*1 + len(domino)
	if colCount != wantCols {
		t.Fatalf("expected %d columns (2 board cells + %d shape markers), got %d", wantCols, len(domino), colCount)
	}
	if len(matrix) == 0 {
		t.Fatal("expected at least one placement of the domino on a 2x1 board")
	}
	for _, row := range matrix {
		if len(row) != 3 {
			t.Fatalf("expected each row to cover 2 board cells plus its shape column, got %d entries", len(row))
		}
	}
}

func TestPolyominoNoRotationsRestrictsToGivenOrientation(t *testing.T) {
	lShape := []Cell{{0, 0}, {0, 1}, {1, 1}}
	matrix, _ := Polyomino(3, 3, [][]Cell{lShape}, false)
	rotatedMatrix, _ := Polyomino(3, 3, [][]Cell{lShape}, true)

	if len(rotatedMatrix) <= len(matrix) {
		t.Errorf("expected more placements with rotations enabled: got %d without, %d with", len(matrix), len(rotatedMatrix))
	}
}
