package util

import "fmt"

// Cell is the coordinate of a single live cell.
type Cell struct {
	X, Y int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}
