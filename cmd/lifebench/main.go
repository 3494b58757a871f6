package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/tbaederr/ce-benchmarks/gol"
)

// Each workload keeps width*height*turns constant, so every line
// measures the same number of cell updates on a different board shape.
var workloads = []struct {
	Width, Height, Turns int
}{
	{10, 10, 50000},
	{100, 10, 5000},
	{100, 100, 500},
	{1000, 100, 50},
	{1000, 1000, 5},
}

var (
	iterations = flag.Int("iter", 5, "Repetitions of each workload")
	compare    = flag.Bool("compare", false, "Compare two benchmark result files instead of running")
)

func main() {
	flag.Parse()

	if *compare {
		if flag.NArg() != 2 {
			fmt.Fprintln(os.Stderr, "usage: lifebench -compare old.txt new.txt")
			os.Exit(1)
		}
		if err := compareFiles(flag.Arg(0), flag.Arg(1)); err != nil {
			log.Fatal(err)
		}
		return
	}

	runWorkloads()
}

// runWorkloads emits one line per repetition in Go benchmark format, so
// the output can be saved to a file and fed back into -compare (or into
// benchstat).
func runWorkloads() {
	fmt.Printf("goos: %s\n", runtime.GOOS)
	fmt.Printf("goarch: %s\n", runtime.GOARCH)
	fmt.Printf("pkg: github.com/tbaederr/ce-benchmarks/gol\n")

	for _, w := range workloads {
		p := gol.Params{Turns: w.Turns, ImageWidth: w.Width, ImageHeight: w.Height}
		name := fmt.Sprintf("BenchmarkRun/%dx%dx%d", w.Width, w.Height, w.Turns)
		for i := 0; i < *iterations; i++ {
			start := time.Now()
			board := gol.Run(p)
			elapsed := time.Since(start)
			// Read one cell so the run stays observable work.
			_ = board.At(gol.Point{})
			fmt.Printf("%s \t%8d\t%12d ns/op\n", name, 1, elapsed.Nanoseconds())
		}
	}
}
