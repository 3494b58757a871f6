// Package gol implements a fixed-size toroidal Game of Life simulator
// built for repeated, performance-critical iteration: a dense
// double-buffered board, a precomputed coordinate list, and a driver
// that runs a fixed number of generations as one unit of work.
package gol

import "fmt"

// Params holds one simulation configuration.
type Params struct {
	Turns       int
	ImageWidth  int
	ImageHeight int
	// Gliders anchors the seeded glider patterns. When empty, the two
	// default anchors are used.
	Gliders []Point
}

var defaultGliders = []Point{{X: 1, Y: 3}, {X: 10, Y: 1}}

// Run seeds a board and executes exactly p.Turns generations, returning
// the final board. Two boards alternate between the current and next
// roles: each turn is computed from the unmodified current board into
// the other one, then the roles swap. Both boards live for the whole
// run; only the references swap.
func Run(p Params) *Board {
	if p.Turns < 0 {
		panic(fmt.Sprintf("gol: negative turn count %d", p.Turns))
	}

	current := NewBoard(p.ImageWidth, p.ImageHeight)
	next := NewBoard(p.ImageWidth, p.ImageHeight)

	gliders := p.Gliders
	if len(gliders) == 0 {
		gliders = defaultGliders
	}
	for _, anchor := range gliders {
		current.AddGlider(anchor)
	}

	indexes := MakeIndexes(p.ImageWidth, p.ImageHeight)
	for turn := 0; turn < p.Turns; turn++ {
		Step(current, next, indexes)
		current, next = next, current
	}
	return current
}
