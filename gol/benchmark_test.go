package gol

import (
	"fmt"
	"testing"
)

func BenchmarkStep(b *testing.B) {
	for _, size := range []int{16, 64, 256} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			current := NewBoard(size, size)
			current.AddGlider(Point{X: 1, Y: 3})
			current.AddGlider(Point{X: 10, Y: 1})
			next := NewBoard(size, size)
			indexes := MakeIndexes(size, size)

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				Step(current, next, indexes)
				current, next = next, current
			}
		})
	}
}

func BenchmarkCountNeighbors(b *testing.B) {
	board := NewBoard(64, 64)
	board.AddGlider(Point{X: 1, Y: 3})
	p := Point{X: 2, Y: 2}

	b.ResetTimer()
	total := 0
	for i := 0; i < b.N; i++ {
		total += board.CountNeighbors(p)
	}
	_ = total
}

func BenchmarkRunSmall(b *testing.B) {
	p := Params{Turns: 100, ImageWidth: 32, ImageHeight: 32}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		board := Run(p)
		_ = board.At(Point{})
	}
}
