package gol

import (
	"fmt"

	"github.com/tbaederr/ce-benchmarks/util"
)

// A Point is a board coordinate. Raw values may be negative or lie past
// the board edges; Index wraps them onto the torus, so a Point is usable
// anywhere without range checks.
type Point struct {
	X int
	Y int
}

// Add returns the point offset by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// The 8 relative positions of the Moore neighbourhood around a cell.
var neighborOffsets = [8]Point{
	{-1, 0}, {1, 0},
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 1}, {0, 1}, {1, 1},
}

// floorMod is the modulo that wraps around: the result takes the sign of
// the divisor, so it is never negative for positive board dimensions.
func floorMod(dividend, divisor int) int {
	return ((dividend % divisor) + divisor) % divisor
}

// A Board holds the live/dead state of a fixed-size toroidal grid as a
// flat row-major array of length width*height.
type Board struct {
	width  int
	height int
	cells  []bool
}

// NewBoard returns an all-dead board. Dimensions must be positive.
func NewBoard(width, height int) *Board {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("gol: invalid board dimensions %dx%d", width, height))
	}
	return &Board{
		width:  width,
		height: height,
		cells:  make([]bool, width*height),
	}
}

func (b *Board) Width() int  { return b.width }
func (b *Board) Height() int { return b.height }

// Index wraps p vertically and horizontally and maps the wrapped
// location to its position in the flat cell array. This is the single
// normalization point; every access routes through it.
func (b *Board) Index(p Point) int {
	return floorMod(p.Y, b.height)*b.width + floorMod(p.X, b.width)
}

// At reports whether the cell at p is alive.
func (b *Board) At(p Point) bool {
	return b.cells[b.Index(p)]
}

// Set marks the cell at p as alive.
func (b *Board) Set(p Point) {
	b.cells[b.Index(p)] = true
}

// SetCell writes the state of the cell at p.
func (b *Board) SetCell(p Point, alive bool) {
	b.cells[b.Index(p)] = alive
}

// CountNeighbors returns how many of the 8 Moore neighbours of p are
// alive. Wrap-around means every cell has exactly 8 neighbours, so there
// is no edge or corner case.
func (b *Board) CountNeighbors(p Point) int {
	alive := 0
	for _, offset := range neighborOffsets {
		if b.At(p.Add(offset)) {
			alive++
		}
	}
	return alive
}

// AddGlider seeds the five cells of a glider anchored at p.
// https://en.wikipedia.org/wiki/Conway's_Game_of_Life#Examples_of_patterns
func (b *Board) AddGlider(p Point) {
	b.Set(p)
	b.Set(p.Add(Point{X: 1, Y: 1}))
	b.Set(p.Add(Point{X: 2, Y: 1}))
	b.Set(p.Add(Point{X: 0, Y: 2}))
	b.Set(p.Add(Point{X: 1, Y: 2}))
}

// AliveCells returns the coordinates of every live cell in row-major order.
func (b *Board) AliveCells() []util.Cell {
	cells := []util.Cell{}
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			if b.cells[y*b.width+x] {
				cells = append(cells, util.Cell{X: x, Y: y})
			}
		}
	}
	return cells
}

// AliveCount returns the number of live cells.
func (b *Board) AliveCount() int {
	counter := 0
	for _, alive := range b.cells {
		if alive {
			counter++
		}
	}
	return counter
}
