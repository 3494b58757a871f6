package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"runtime/pprof"
	"sort"
	"time"

	"github.com/google/pprof/profile"

	"github.com/tbaederr/ce-benchmarks/gol"
)

var (
	width      = flag.Int("width", 64, "Board width in cells")
	height     = flag.Int("height", 64, "Board height in cells")
	turns      = flag.Int("turns", 10000, "Number of generations to run")
	render     = flag.Bool("render", false, "Print the final board")
	cpuprofile = flag.String("cpuprofile", "", "Write a CPU profile to this file")
	top        = flag.Int("top", 0, "With -cpuprofile, report the N hottest functions afterwards")
)

func main() {
	flag.Parse()

	fmt.Printf("Game of Life benchmark core\n")
	fmt.Printf("Go Version: %s\n", runtime.Version())
	fmt.Printf("OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Printf("Board: %dx%d, %d turns\n\n", *width, *height, *turns)

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
	}

	p := gol.Params{Turns: *turns, ImageWidth: *width, ImageHeight: *height}
	start := time.Now()
	board := gol.Run(p)
	elapsed := time.Since(start)

	if *cpuprofile != "" {
		pprof.StopCPUProfile()
	}

	updates := float64(*width) * float64(*height) * float64(*turns)
	fmt.Printf("Elapsed:     %v (%.2f Mcells/s)\n", elapsed, updates/elapsed.Seconds()/1e6)
	fmt.Printf("Alive cells: %d\n", board.AliveCount())
	// The single-cell readout the benchmark uses to keep the work observable.
	fmt.Printf("Cell (0, 0): %t\n", board.At(gol.Point{}))

	if *render {
		fmt.Println()
		renderBoard(board)
	}

	if *cpuprofile != "" && *top > 0 {
		if err := reportTop(*cpuprofile, *top); err != nil {
			log.Fatal("could not summarise CPU profile: ", err)
		}
	}
}

func renderBoard(b *gol.Board) {
	for y := 0; y < b.Height(); y++ {
		row := make([]byte, b.Width())
		for x := 0; x < b.Width(); x++ {
			if b.At(gol.Point{X: x, Y: y}) {
				row[x] = '#'
			} else {
				row[x] = '.'
			}
		}
		fmt.Println(string(row))
	}
}

// reportTop reads back the profile written by this run and prints the
// functions with the most flat samples.
func reportTop(path string, n int) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	prof, err := profile.Parse(f)
	if err != nil {
		return err
	}

	// Pick the cpu sample column, falling back to the last one (the
	// default column by pprof convention).
	valueIndex := len(prof.SampleType) - 1
	for i, st := range prof.SampleType {
		if st.Type == "cpu" {
			valueIndex = i
		}
	}

	flat := make(map[string]int64)
	var total int64
	for _, s := range prof.Sample {
		v := s.Value[valueIndex]
		total += v
		if len(s.Location) == 0 {
			continue
		}
		name := "<unknown>"
		if leaf := s.Location[0]; len(leaf.Line) > 0 && leaf.Line[0].Function != nil {
			name = leaf.Line[0].Function.Name
		}
		flat[name] += v
	}
	if total == 0 {
		fmt.Println("\nProfile contains no samples.")
		return nil
	}

	names := make([]string, 0, len(flat))
	for name := range flat {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return flat[names[i]] > flat[names[j]] })
	if len(names) > n {
		names = names[:n]
	}

	fmt.Printf("\nTop %d functions by flat %s:\n", len(names), prof.SampleType[valueIndex].Unit)
	for _, name := range names {
		v := flat[name]
		fmt.Printf("%12d (%5.1f%%)  %s\n", v, float64(v)/float64(total)*100, name)
	}
	return nil
}
