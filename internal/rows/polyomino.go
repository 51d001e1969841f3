package rows

import "sort"

// Cell is one unit square of a polyomino shape, in shape-local coordinates.
type Cell struct {
	X, Y int
}

// EnumerateShapes grows polyominoes of squareCount cells by repeatedly
// extending a self-avoiding path from its last cell one step at a time and
// keeping the distinct, origin-normalized results. Shapes are distinct only
// up to translation: rotations and reflections of a shape are returned as
// separate shapes, and shapes that no single path can trace (such as the T
// tetromino) are not produced. This is the same growth-and-dedupe walk
// the original solver used to seed its polyomino puzzles, ported from a
// VecDeque-driven BFS over (x, y) steps into an explicit Go slice queue.
func EnumerateShapes(squareCount int) [][]Cell {
	if squareCount <= 0 {
		return nil
	}

	seen := make(map[string][]Cell)
	queue := [][]Cell{{{0, 0}}}

	steps := []Cell{{1, 0}, {0, 1}, {0, -1}, {-1, 0}}

	for len(queue) > 0 {
		shape := queue[0]
		queue = queue[1:]

		if len(shape) == squareCount {
			normalized := normalize(shape)
			seen[shapeKey(normalized)] = normalized
			continue
		}

		last := shape[len(shape)-1]
		for _, step := range steps {
			next := Cell{last.X + step.X, last.Y + step.Y}
			if containsCell(shape, next) {
				continue
			}
			grown := make([]Cell, len(shape), len(shape)+1)
			copy(grown, shape)
			grown = append(grown, next)
			queue = append(queue, grown)
		}
	}

	shapes := make([][]Cell, 0, len(seen))
	for _, shape := range seen {
		shapes = append(shapes, shape)
	}
	sort.Slice(shapes, func(i, j int) bool {
		return shapeKey(shapes[i]) < shapeKey(shapes[j])
	})
	return shapes
}

func containsCell(shape []Cell, c Cell) bool {
	for _, existing := range shape {
		if existing == c {
			return true
		}
	}
	return false
}

func normalize(shape []Cell) []Cell {
	minX, minY := shape[0].X, shape[0].Y
	for _, c := range shape {
		if c.X < minX {
			minX = c.X
		}
		if c.Y < minY {
			minY = c.Y
		}
	}
	out := make([]Cell, len(shape))
	for i, c := range shape {
		out[i] = Cell{c.X - minX, c.Y - minY}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].X != out[j].X {
			return out[i].X < out[j].X
		}
		return out[i].Y < out[j].Y
	})
	return out
}

func shapeKey(shape []Cell) string {
	key := make([]byte, 0, len(shape)*8)
	for _, c := range shape {
		key = append(key, byte(c.X), byte(c.X>>8), byte(c.Y), byte(c.Y>>8))
	}
	return string(key)
}

// orientations returns shape rotated by 0, 90, 180, and 270 degrees and
// reflected, each normalized and deduplicated -- the orientations a rigid
// physical piece can be placed in.
func orientations(shape []Cell) [][]Cell {
	seen := make(map[string][]Cell)
	current := shape
	for range 4 {
		current = normalize(current)
		seen[shapeKey(current)] = current
		reflected := normalize(reflect(current))
		seen[shapeKey(reflected)] = reflected
		current = rotate(current)
	}

	out := make([][]Cell, 0, len(seen))
	for _, s := range seen {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return shapeKey(out[i]) < shapeKey(out[j]) })
	return out
}

func rotate(shape []Cell) []Cell {
	out := make([]Cell, len(shape))
	for i, c := range shape {
		out[i] = Cell{-c.Y, c.X}
	}
	return out
}

func reflect(shape []Cell) []Cell {
	out := make([]Cell, len(shape))
	for i, c := range shape {
		out[i] = Cell{-c.X, c.Y}
	}
	return out
}

// Polyomino builds an exact cover matrix for tiling a boardW x boardH board
// with the given shapes, one placement of each shape used exactly once.
// Columns 0..boardW*boardH-1 are board cells; column boardW*boardH+i marks
// that shape i has been placed. allowRotations enumerates every rotation and
// reflection of a shape as independent candidate placements; when false only
// the shape's given orientation is tried, matching the original source's
// translation-only placement search.
func Polyomino(boardW, boardH int, shapes [][]Cell, allowRotations bool) (matrix [][]int, colCount int) {
	colCount = boardW*boardH + len(shapes)

	for i, shape := range shapes {
		variants := [][]Cell{normalize(shape)}
		if allowRotations {
			variants = orientations(shape)
		}

		seenPlacements := make(map[string]bool)
		for _, variant := range variants {
			maxX, maxY := 0, 0
			for _, c := range variant {
				if c.X > maxX {
					maxX = c.X
				}
				if c.Y > maxY {
					maxY = c.Y
				}
			}

			for originX := 0; originX+maxX < boardW; originX++ {
				for originY := 0; originY+maxY < boardH; originY++ {
					row := make([]int, 0, len(variant)+1)
					for _, c := range variant {
						x, y := originX+c.X, originY+c.Y
						row = append(row, y*boardW+x)
					}
					sort.Ints(row)
					key := shapeKeyInts(row)
					if seenPlacements[key] {
						continue
					}
					seenPlacements[key] = true

					row = append(row, boardW*boardH+i)
					matrix = append(matrix, row)
				}
			}
		}
	}

	return matrix, colCount
}

func shapeKeyInts(row []int) string {
	key := make([]byte, 0, len(row)*4)
	for _, v := range row {
		key = append(key, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
	}
	return string(key)
}
