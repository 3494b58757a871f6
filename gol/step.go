package gol

import "fmt"

func nextCellState(aliveNeighbors int, alive bool) bool {
	// Rules for cell state in the Game of Life
	switch {
	case alive && aliveNeighbors < 2:
		return false // Underpopulation
	case alive && (aliveNeighbors == 2 || aliveNeighbors == 3):
		return true // Lives on
	case alive && aliveNeighbors > 3:
		return false // Overpopulation
	case !alive && aliveNeighbors == 3:
		return true // Reproduction
	default:
		return alive
	}
}

// Step writes the next generation of src into dst. Every cell of dst is
// overwritten, so dst may hold arbitrary stale state beforehand. All
// reads go against src, which must stay unmodified for the whole pass:
// the rule transitions every cell simultaneously from the previous
// generation, which is why callers swap two buffers rather than update
// in place. src and dst must be distinct boards of identical dimensions
// and indexes must cover exactly that board; violations are programming
// errors and panic.
func Step(src, dst *Board, indexes []Point) {
	if src == dst {
		panic("gol: Step source and destination must be distinct boards")
	}
	if src.width != dst.width || src.height != dst.height {
		panic(fmt.Sprintf("gol: Step dimension mismatch: %dx%d vs %dx%d",
			src.width, src.height, dst.width, dst.height))
	}
	if len(indexes) != len(src.cells) {
		panic(fmt.Sprintf("gol: Step index list covers %d cells, board has %d",
			len(indexes), len(src.cells)))
	}
	for i, p := range indexes {
		dst.cells[i] = nextCellState(src.CountNeighbors(p), src.At(p))
	}
}
