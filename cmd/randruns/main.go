package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/dustin/go-humanize"

	"pkg.jsn.cam/randranges/internal/history"
)

var DBPath = flag.String("db", "", "bbolt file written by randranges --db")

func usage() {
	fmt.Fprintf(os.Stderr, "usage: randruns --db <file> list | show <run-id>\n")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if *DBPath == "" {
		log.Fatal("db is required")
	}
	if _, err := os.Stat(*DBPath); err != nil {
		log.Fatalf("Cannot read history: %v", err)
	}

	store, err := history.Open(*DBPath)
	if err != nil {
		log.Fatalf("Failed to open history: %v", err)
	}
	defer store.Close()

	switch flag.Arg(0) {
	case "list", "":
		listRuns(store)
	case "show":
		if flag.NArg() < 2 {
			usage()
			os.Exit(2)
		}
		showRun(store, flag.Arg(1))
	default:
		usage()
		os.Exit(2)
	}
}

func listRuns(store *history.Store) {
	runs, err := store.List()
	if err != nil {
		log.Fatalf("Failed to list runs: %v", err)
	}

	if len(runs) == 0 {
		fmt.Println("No runs found")
		return
	}

	fmt.Printf("%-36s %-20s %-8s %-10s %s\n", "RUN ID", "SEED", "RANGES", "ADDRESSES", "CREATED")
	fmt.Println("─────────────────────────────────────────────────────────────────────────────────────────")
	for _, run := range runs {
		fmt.Printf("%-36s %-20d %-8d %-10s %s\n",
			run.ID,
			run.Seed,
			len(run.Ranges),
			humanize.Comma(run.TotalAddresses),
			humanize.Time(run.CreatedAt))
	}
}

func showRun(store *history.Store, id string) {
	run, err := store.Get(id)
	if errors.Is(err, history.ErrRunNotFound) {
		log.Fatalf("Run not found: %s", id)
	}
	if err != nil {
		log.Fatalf("Failed to load run: %v", err)
	}

	fmt.Printf("Run Details:\n")
	fmt.Printf("  ID:              %s\n", run.ID)
	fmt.Printf("  Format:          %s\n", run.FormatVersion)
	fmt.Printf("  Seed:            %d\n", run.Seed)
	fmt.Printf("  Num ranges:      %d\n", run.Config.NumRanges)
	fmt.Printf("  RNG:             %s\n", humanize.Comma(run.Config.RNG))
	fmt.Printf("  Target total:    %s\n", humanize.Comma(run.Config.TotalAddresses))
	fmt.Printf("  Written total:   %s\n", humanize.Comma(run.TotalAddresses))
	fmt.Printf("  Overlap check:   %s\n", run.CheckMode)
	fmt.Printf("  CSV file:        %s\n", run.CSVFile)
	fmt.Printf("  IPs file:        %s\n", run.IPsFile)
	fmt.Printf("  Created:         %s\n", run.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("  Duration:        %v\n", run.Duration)

	fmt.Printf("\nRanges:\n")
	for _, r := range run.Ranges {
		fmt.Printf("  %v\n", r)
	}
	fmt.Printf("\nRegenerate with: randranges --seed %d --num-ranges %d --rng %d --total-addresses %d\n",
		run.Seed, run.Config.NumRanges, run.Config.RNG, run.Config.TotalAddresses)
}
