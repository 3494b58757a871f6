package gol

// MakeIndexes returns every coordinate of a width x height board in
// row-major order, so indexes[i] is the point whose flat array position
// is i. The list is built once per run and shared read-only by every
// turn; regenerating coordinates inside the turn loop would be correct
// but wasted work.
func MakeIndexes(width, height int) []Point {
	indexes := make([]Point, 0, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			indexes = append(indexes, Point{X: x, Y: y})
		}
	}
	return indexes
}
