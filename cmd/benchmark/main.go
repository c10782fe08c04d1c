// Benchmark of the N-Queens enumeration loop across the in-process solver
// backends. Results land in a CSV file with one row per (solver, N) cell.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"satlab/internal/queens"
	"satlab/internal/sat"
)

var (
	minSize = flag.Uint64("min", 4, "smallest board size to benchmark")
	maxSize = flag.Uint64("max", 9, "largest board size to benchmark")
	output  = flag.String("output", "benchmark.csv", "CSV file the results are written to")
)

var backends = map[string]sat.IncrementalFactory{
	"gophersat": sat.NewGophersatIncremental,
	"gini":      sat.NewGiniIncremental,
}

func main() {
	flag.Parse()
	if *minSize <= 3 || *maxSize < *minSize {
		log.Fatalf("invalid size range [%v, %v]: sizes must be greater than 3", *minSize, *maxSize)
	}

	file, err := os.Create(*output)
	if err != nil {
		log.Fatalf("cannot create output file: %v", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"solver", "n", "solutions", "duration_ms"}); err != nil {
		log.Fatalf("cannot write CSV header: %v", err)
	}

	for name, factory := range backends {
		counter := queens.NewCounter(factory, nil)

		for size := *minSize; size <= *maxSize; size++ {
			start := time.Now()
			count, err := counter.Count(size)
			if err != nil {
				log.Fatalf("enumeration failed for solver %v, N=%v: %v", name, size, err)
			}
			elapsed := time.Since(start)

			log.Printf("solver %v, N=%v: %v solutions in %v", name, size, count, elapsed)

			row := []string{
				name,
				fmt.Sprint(size),
				fmt.Sprint(count),
				fmt.Sprint(elapsed.Milliseconds()),
			}
			if err := writer.Write(row); err != nil {
				log.Fatalf("cannot write CSV row: %v", err)
			}
		}
	}

	log.Printf("results written to %v", *output)
}
