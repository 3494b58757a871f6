package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/perf/benchfmt"
)

// compareFiles prints a mean-time comparison table between two benchmark
// result files, with the speedup of new over old as a percentage.
func compareFiles(oldPath, newPath string) error {
	oldValues, order, err := readResults(oldPath)
	if err != nil {
		return err
	}
	newValues, _, err := readResults(newPath)
	if err != nil {
		return err
	}

	fmt.Printf("%-32s %14s %14s %10s\n", "benchmark", "old", "new", "delta")
	for _, name := range order {
		newVals, ok := newValues[name]
		if !ok {
			continue
		}
		oldMean := mean(oldValues[name])
		newMean := mean(newVals)
		// Positive delta means the new run is faster.
		delta := (oldMean - newMean) / oldMean * 100
		fmt.Printf("%-32s %14s %14s %+9.1f%%\n",
			name, formatNs(oldMean), formatNs(newMean), delta)
	}
	return nil
}

func readResults(path string) (map[string][]float64, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()
	return parseResults(f, path)
}

// parseResults collects every time-per-op value per benchmark name in
// nanoseconds, keeping the order in which names first appear. The reader
// normalizes ns/op lines to the canonical sec/op unit, so the lookup is
// in seconds and scaled back.
func parseResults(f io.Reader, path string) (map[string][]float64, []string, error) {
	values := make(map[string][]float64)
	var order []string

	r := benchfmt.NewReader(f, path)
	for r.Scan() {
		switch rec := r.Result().(type) {
		case *benchfmt.Result:
			sec, ok := rec.Value("sec/op")
			if !ok {
				continue
			}
			name := string(rec.Name)
			if _, seen := values[name]; !seen {
				order = append(order, name)
			}
			values[name] = append(values[name], sec*1e9)
		case *benchfmt.SyntaxError:
			return nil, nil, rec
		}
	}
	if err := r.Err(); err != nil {
		return nil, nil, err
	}
	return values, order, nil
}

func mean(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func formatNs(ns float64) string {
	return time.Duration(int64(ns)).String()
}
