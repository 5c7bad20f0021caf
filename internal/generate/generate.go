// Package generate runs one randranges invocation: sample ranges, check them,
// write ips.csv and ips.data, and record the run.
package generate

import (
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"

	"pkg.jsn.cam/randranges/internal/history"
	"pkg.jsn.cam/randranges/pkg/ranges"
)

type Options struct {
	Config ranges.Config
	// Seed selects the random stream; zero picks a random seed.
	Seed      uint64
	CheckMode ranges.CheckMode

	CSVFile string
	IPsFile string

	// History, if set, receives a record of the run.
	History *history.Store
	// Progress, if set, gets a progress bar while addresses are expanded.
	Progress io.Writer
}

// Run generates the data set described by opts. On an overlap it returns the
// *ranges.OverlapError before any file is written.
func Run(opts Options) (*history.Run, error) {
	started := time.Now()

	seed := opts.Seed
	for seed == 0 {
		seed = rand.Uint64()
	}

	rs, err := ranges.Generate(opts.Config, ranges.NewRand(seed))
	if err != nil {
		return nil, err
	}
	if err := ranges.Check(rs, opts.CheckMode); err != nil {
		return nil, fmt.Errorf("seed %d: %w", seed, err)
	}

	if err := ranges.WriteCSVFile(opts.CSVFile, rs); err != nil {
		return nil, err
	}

	total := ranges.Total(rs)
	var onRange func(int, ranges.Range)
	var bar *progressbar.ProgressBar
	if opts.Progress != nil && total > 0 {
		bar = progressbar.NewOptions64(total,
			progressbar.OptionSetWriter(opts.Progress),
			progressbar.OptionSetDescription("expanding ranges"),
			progressbar.OptionShowCount(),
		)
		onRange = func(_ int, r ranges.Range) {
			bar.Add64(r.Cardinality)
		}
	}
	if err := ranges.WriteAddressesFile(opts.IPsFile, rs, onRange); err != nil {
		return nil, err
	}
	if bar != nil {
		bar.Finish()
		fmt.Fprintln(opts.Progress)
	}

	run := &history.Run{
		ID:             uuid.New().String(),
		Seed:           seed,
		Config:         opts.Config,
		CheckMode:      opts.CheckMode.String(),
		Ranges:         rs,
		CSVFile:        opts.CSVFile,
		IPsFile:        opts.IPsFile,
		TotalAddresses: total,
		CreatedAt:      started,
		Duration:       time.Since(started),
	}

	if opts.History != nil {
		if err := opts.History.Save(run); err != nil {
			// the data set is already on disk, so don't fail the run
			log.Printf("[HISTORY] Failed to record run %s: %v", run.ID, err)
		}
	}

	return run, nil
}
