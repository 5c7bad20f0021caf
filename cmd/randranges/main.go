package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/dustin/go-humanize"

	"pkg.jsn.cam/randranges/internal/generate"
	"pkg.jsn.cam/randranges/internal/history"
	"pkg.jsn.cam/randranges/pkg/ranges"
)

/*generates integers belonging to random ranges: <range_begin>, <range_cardinality> per
line in --csv-file, and every integer of every range in --ips-file*/

var (
	CSVFile        = flag.String("csv-file", "ips.csv", "filename for <range_begin>, <range_cardinality>")
	IPsFile        = flag.String("ips-file", "ips.data", "filename for ips")
	NumRanges      = flag.Int("num-ranges", ranges.DefaultNumRanges, "number of ranges")
	RNG            = flag.Int64("rng", ranges.DefaultRNG, "maximum number")
	TotalAddresses = flag.Int64("total-addresses", ranges.DefaultTotalAddresses, "number of IP addresses")

	Seed          = flag.Uint64("seed", 0, "random seed (0 picks one and logs it)")
	StrictOverlap = flag.Bool("strict-overlap", false, "compare each start with the previous range's end instead of its cardinality")
	DBPath        = flag.String("db", "", "bbolt file to record the run in (empty disables history)")
	Progress      = flag.Bool("progress", false, "show a progress bar while writing --ips-file")
)

func main() {
	flag.Parse()

	opts := generate.Options{
		Config: ranges.Config{
			NumRanges:      *NumRanges,
			RNG:            *RNG,
			TotalAddresses: *TotalAddresses,
		},
		Seed:    *Seed,
		CSVFile: *CSVFile,
		IPsFile: *IPsFile,
	}
	if *StrictOverlap {
		opts.CheckMode = ranges.CheckStrict
	}
	if *Progress {
		opts.Progress = os.Stderr
	}

	if *DBPath != "" {
		store, err := history.Open(*DBPath)
		if err != nil {
			log.Fatalf("Failed to open history: %v", err)
		}
		defer store.Close()
		opts.History = store
	}

	run, err := generate.Run(opts)
	if err != nil {
		if errors.Is(err, ranges.ErrOverlap) {
			log.Fatalf("Aborting: %v", err)
		}
		log.Fatalf("Failed to generate ranges: %v", err)
	}

	log.Printf("Seed %d: wrote %s ranges to %s", run.Seed, humanize.Comma(int64(len(run.Ranges))), run.CSVFile)

	size := ""
	if info, err := os.Stat(run.IPsFile); err == nil {
		size = " (" + humanize.Bytes(uint64(info.Size())) + ")"
	}
	log.Printf("Wrote %s addresses to %s%s", humanize.Comma(run.TotalAddresses), run.IPsFile, size)

	if opts.History != nil {
		log.Printf("Recorded run %s in %s", run.ID, *DBPath)
	}
}
