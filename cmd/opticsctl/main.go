// Command opticsctl runs the OPTICS engine over a CSV file of points and
// prints the resulting ordering and clusters as text. It exists to exercise
// the library end-to-end; it has no visualization, no REPL, and reads its
// input in one shot.
package main

import (
	"bufio"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/trevors/optics"
)

func main() {
	var (
		eps              = flag.Float64("eps", -1, "neighborhood radius; negative means no radius limit")
		minPts           = flag.Int("min-pts", 5, "density threshold")
		k                = flag.Int("k", 2, "top-k peak count (ignored if -persistence is set)")
		persistence      = flag.Float64("persistence", -1, "persistence threshold; negative selects top-k mode instead")
		outlierThreshold = flag.Float64("outlier-threshold", -1, "squared-distance outlier threshold; <= 0 disables outlier separation")
		input            = flag.String("input", "", "path to a CSV file of points, one per line (required)")
		sweep            = flag.String("sweep", "", "comma-separated list of extra eps values to run against -input, sharing one precomputed distance matrix (e.g. -sweep=0.5,1,2)")
		workers          = flag.Int("workers", 1, "goroutines used to build the distance matrix for -sweep; ignored without -sweep")
	)
	flag.Parse()

	if *input == "" {
		fmt.Fprintln(os.Stderr, "opticsctl: -input is required")
		os.Exit(2)
	}

	points, err := readCSV(*input)
	if err != nil {
		log.Fatalf("opticsctl: %v", err)
	}

	cfg := optics.DefaultConfig()
	if *eps < 0 {
		log.Printf("opticsctl: eps=%v substituted with no radius limit", *eps)
	}
	cfg.Eps = optics.NormalizeEps(*eps)
	cfg.MinPts = *minPts
	cfg.OutlierThreshold = *outlierThreshold
	if *persistence >= 0 {
		cfg.PeakMode = optics.PeakModeThreshold
		cfg.Persistence = *persistence
	} else {
		cfg.PeakMode = optics.PeakModeTopK
		cfg.K = *k
	}

	ordering, err := optics.Run(points, cfg)
	if err != nil {
		log.Fatalf("opticsctl: %v", err)
	}

	borders, err := cfg.FindBorders(ordering)
	if err != nil {
		log.Fatalf("opticsctl: %v", err)
	}

	buckets, err := optics.ExtractClusters(ordering, borders, cfg.OutlierThreshold)
	if err != nil {
		log.Fatalf("opticsctl: %v", err)
	}

	fmt.Printf("eps=%v min-pts=%d\n", cfg.Eps, cfg.MinPts)
	printReport(ordering, buckets)

	if *sweep != "" {
		if err := runSweep(points, cfg, *sweep, *workers); err != nil {
			log.Fatalf("opticsctl: %v", err)
		}
	}
}

// runSweep re-runs the ordering for every eps value in sweepList against the
// same dataset, reusing one PointStore and one precomputed DistanceCache
// instead of repeating the O(n·d) linear scan per run. base supplies every
// other Config field (MinPts, PeakMode, ...); only Eps changes per point in
// the sweep.
func runSweep(points [][]float64, base optics.Config, sweepList string, workers int) error {
	ps, err := optics.NewPointStore(points)
	if err != nil {
		return fmt.Errorf("building point store for sweep: %w", err)
	}

	dc := optics.NewDistanceCache(ps, workers)

	for _, field := range strings.Split(sweepList, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		eps, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return fmt.Errorf("parsing sweep value %q: %w", field, err)
		}

		cfg := base
		cfg.Eps = optics.NormalizeEps(eps)

		ordering, err := optics.RunWithCache(ps, dc, cfg)
		if err != nil {
			return fmt.Errorf("sweep eps=%v: %w", eps, err)
		}
		borders, err := cfg.FindBorders(ordering)
		if err != nil {
			return fmt.Errorf("sweep eps=%v: %w", eps, err)
		}
		buckets, err := optics.ExtractClusters(ordering, borders, cfg.OutlierThreshold)
		if err != nil {
			return fmt.Errorf("sweep eps=%v: %w", eps, err)
		}

		fmt.Printf("\nsweep eps=%v min-pts=%d\n", cfg.Eps, cfg.MinPts)
		printReport(ordering, buckets)
	}
	return nil
}

func readCSV(path string) ([][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(bufio.NewReader(f))
	r.FieldsPerRecord = -1

	var points [][]float64
	for {
		record, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		point := make([]float64, len(record))
		for i, field := range record {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("parsing %s: %w", path, err)
			}
			point[i] = v
		}
		points = append(points, point)
	}
	return points, nil
}

func printReport(ordering *optics.Ordering, buckets [][]int) {
	fmt.Println("ordering:")
	for i, p := range ordering.Points {
		r := ordering.Reachability[i]
		if r == optics.Undefined {
			fmt.Printf("  %d: point=%d reachability=UNDEFINED\n", i, p)
			continue
		}
		fmt.Printf("  %d: point=%d reachability=%v\n", i, p, r)
	}

	stats := ordering.Stats()
	fmt.Printf("stats: count=%d mean=%v variance=%v min=%v max=%v\n",
		stats.Count, stats.Mean, stats.Variance, stats.Min, stats.Max)

	fmt.Printf("outliers: %v\n", buckets[0])
	for i, cluster := range buckets[1:] {
		fmt.Printf("cluster %d: %v\n", i+1, cluster)
	}
}
