package generate

import (
	"bufio"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"pkg.jsn.cam/randranges/internal/history"
	"pkg.jsn.cam/randranges/pkg/ranges"
)

func options(t *testing.T, seed uint64) Options {
	t.Helper()
	dir := t.TempDir()
	return Options{
		Config:  ranges.DefaultConfig(),
		Seed:    seed,
		CSVFile: filepath.Join(dir, "ips.csv"),
		IPsFile: filepath.Join(dir, "ips.data"),
	}
}

func countLines(t *testing.T, path string) int64 {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()

	var n int64
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		n++
	}
	return n
}

func TestRunWritesConsistentFiles(t *testing.T) {
	opts := options(t, 2024)
	opts.Progress = io.Discard

	run, err := Run(opts)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	rs, err := ranges.ReadCSVFile(opts.CSVFile)
	if err != nil {
		t.Fatalf("ReadCSVFile failed: %v", err)
	}
	if len(rs) != opts.Config.NumRanges {
		t.Errorf("csv has %d ranges, want %d", len(rs), opts.Config.NumRanges)
	}
	for i := 1; i < len(rs); i++ {
		if rs[i].Start < rs[i-1].Start {
			t.Errorf("start %d at line %d is below the previous start %d", rs[i].Start, i+1, rs[i-1].Start)
		}
	}

	if got := countLines(t, opts.IPsFile); got != ranges.Total(rs) {
		t.Errorf("ips file has %d lines, csv sums to %d", got, ranges.Total(rs))
	}
	if run.TotalAddresses != ranges.Total(rs) {
		t.Errorf("run reports %d addresses, csv sums to %d", run.TotalAddresses, ranges.Total(rs))
	}
	if run.Seed != 2024 {
		t.Errorf("run seed %d, want 2024", run.Seed)
	}
}

func TestRunDeterministic(t *testing.T) {
	a := options(t, 77)
	b := options(t, 77)

	if _, err := Run(a); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if _, err := Run(b); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	for _, pair := range [][2]string{{a.CSVFile, b.CSVFile}, {a.IPsFile, b.IPsFile}} {
		x, _ := os.ReadFile(pair[0])
		y, _ := os.ReadFile(pair[1])
		if string(x) != string(y) {
			t.Errorf("%s and %s differ for the same seed", pair[0], pair[1])
		}
	}
}

func TestRunRandomSeedRecorded(t *testing.T) {
	opts := options(t, 0)

	run, err := Run(opts)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if run.Seed == 0 {
		t.Error("a random seed should be chosen and recorded")
	}
}

func TestRunOverlapWritesNothing(t *testing.T) {
	opts := options(t, 5)
	// a tiny space forces starts to collide with the huge cardinalities
	opts.Config = ranges.Config{NumRanges: 50, RNG: 10, TotalAddresses: 100000}
	opts.CheckMode = ranges.CheckStrict

	_, err := Run(opts)
	if !errors.Is(err, ranges.ErrOverlap) {
		t.Fatalf("expected ErrOverlap, got %v", err)
	}
	if _, statErr := os.Stat(opts.CSVFile); !os.IsNotExist(statErr) {
		t.Errorf("csv file should not exist after an overlap, stat error: %v", statErr)
	}
}

func TestRunRecordsHistory(t *testing.T) {
	store, err := history.Open("")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer store.Close()

	opts := options(t, 9)
	opts.History = store

	run, err := Run(opts)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	got, err := store.Get(run.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Seed != 9 || got.CSVFile != opts.CSVFile || len(got.Ranges) != opts.Config.NumRanges {
		t.Errorf("unexpected history record %+v", got)
	}
}
