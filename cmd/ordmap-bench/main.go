// Command ordmap-bench runs a small in-process throughput benchmark over
// ordmap.Map, at a few sizes and workload shapes, and prints a result table.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/nburk/ordmap/pkg/ordmap"
)

// Config holds the benchmark run's shape.
type Config struct {
	Sizes    []int
	Workload string
	Seed     int64
}

// Result is a single (workload, size) measurement.
type Result struct {
	Workload string
	Size     int
	Elapsed  time.Duration
	OpsPerS  float64
}

func main() {
	cfg := parseFlags(os.Args[1:])

	workloads := []string{"insert-heavy", "erase-heavy", "mixed"}
	if cfg.Workload != "all" {
		workloads = []string{cfg.Workload}
	}

	var results []Result

	for _, w := range workloads {
		for _, size := range cfg.Sizes {
			results = append(results, run(w, size, cfg.Seed))
		}
	}

	printTable(os.Stdout, results)
}

func parseFlags(args []string) Config {
	flags := flag.NewFlagSet("ordmap-bench", flag.ContinueOnError)

	sizesFlag := flags.IntSlice("sizes", []int{1_000, 10_000, 100_000}, "workload sizes to benchmark")
	workload := flags.String("workload", "all", "insert-heavy, erase-heavy, mixed, or all")
	seed := flags.Int64("seed", 1, "PRNG seed")

	if err := flags.Parse(args); err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}

		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	return Config{Sizes: *sizesFlag, Workload: *workload, Seed: *seed}
}

func run(workload string, size int, seed int64) Result {
	m := ordmap.New[int, int]()
	rng := rand.New(rand.NewSource(seed))

	keys := make([]int, size)
	for i := range keys {
		keys[i] = i
	}

	rng.Shuffle(size, func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })

	start := time.Now()

	switch workload {
	case "insert-heavy":
		for _, k := range keys {
			m.Insert(k, k)
		}
	case "erase-heavy":
		for _, k := range keys {
			m.Insert(k, k)
		}

		for _, k := range keys {
			m.Delete(k)
		}
	case "mixed":
		for i, k := range keys {
			m.Insert(k, k)

			if i%3 == 0 {
				m.Delete(keys[rng.Intn(i+1)])
			}

			if i%5 == 0 {
				m.Find(keys[rng.Intn(i+1)])
			}
		}
	}

	elapsed := time.Since(start)

	return Result{
		Workload: workload,
		Size:     size,
		Elapsed:  elapsed,
		OpsPerS:  float64(size) / elapsed.Seconds(),
	}
}

func printTable(w *os.File, results []Result) {
	fmt.Fprintf(w, "%-14s %10s %14s %16s\n", "workload", "size", "elapsed", "ops/sec")

	for _, r := range results {
		fmt.Fprintf(w, "%-14s %10d %14s %16.0f\n", r.Workload, r.Size, r.Elapsed, r.OpsPerS)
	}
}
