package gol

import "testing"

func TestRunZeroTurnsReturnsSeed(t *testing.T) {
	p := Params{Turns: 0, ImageWidth: 16, ImageHeight: 16}
	board := Run(p)

	seed := NewBoard(16, 16)
	seed.AddGlider(Point{X: 1, Y: 3})
	seed.AddGlider(Point{X: 10, Y: 1})

	if !rowsEqual(rowsFromBoard(board), rowsFromBoard(seed)) {
		t.Fatalf("zero-turn run: got %v, want seed %v",
			board.AliveCells(), seed.AliveCells())
	}
}

func TestRunIsDeterministic(t *testing.T) {
	p := Params{Turns: 100, ImageWidth: 12, ImageHeight: 12}
	first := Run(p)
	second := Run(p)

	if !rowsEqual(rowsFromBoard(first), rowsFromBoard(second)) {
		t.Fatalf("two identical runs diverged: %v vs %v",
			first.AliveCells(), second.AliveCells())
	}
}

func TestRunMatchesManualStepLoop(t *testing.T) {
	const turns = 25
	p := Params{Turns: turns, ImageWidth: 16, ImageHeight: 16}
	board := Run(p)

	current := NewBoard(16, 16)
	current.AddGlider(Point{X: 1, Y: 3})
	current.AddGlider(Point{X: 10, Y: 1})
	next := NewBoard(16, 16)
	indexes := MakeIndexes(16, 16)
	for turn := 0; turn < turns; turn++ {
		Step(current, next, indexes)
		current, next = next, current
	}

	if !rowsEqual(rowsFromBoard(board), rowsFromBoard(current)) {
		t.Fatalf("Run diverged from the manual step loop: %v vs %v",
			board.AliveCells(), current.AliveCells())
	}
}

func TestRunCustomGliderTranslates(t *testing.T) {
	anchor := Point{X: 5, Y: 5}
	board := Run(Params{
		Turns:       4,
		ImageWidth:  20,
		ImageHeight: 20,
		Gliders:     []Point{anchor},
	})

	want := NewBoard(20, 20)
	want.AddGlider(anchor.Add(Point{X: 1, Y: 1}))

	if !rowsEqual(rowsFromBoard(board), rowsFromBoard(want)) {
		t.Fatalf("custom glider after 4 turns: got %v, want %v",
			board.AliveCells(), want.AliveCells())
	}
}

func TestRunRejectsNegativeTurns(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Run with negative turns did not panic")
		}
	}()
	Run(Params{Turns: -1, ImageWidth: 8, ImageHeight: 8})
}
