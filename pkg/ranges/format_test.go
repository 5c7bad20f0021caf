package ranges

import (
	"bufio"
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	rs := []Range{{3, 2}, {4294967000, 17}}
	if err := WriteCSV(&buf, rs); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	want := "3, 2\n4294967000, 17\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}

	got, err := ReadCSV(&buf)
	if err != nil {
		t.Fatalf("ReadCSV failed: %v", err)
	}
	if !slices.Equal(got, rs) {
		t.Errorf("ReadCSV returned %v, want %v", got, rs)
	}
}

func TestReadCSVMalformed(t *testing.T) {
	inputs := []string{
		"12 34\n",
		"abc, 3\n",
		"1, x\n",
	}
	for _, in := range inputs {
		_, err := ReadCSV(strings.NewReader(in))
		if !errors.Is(err, ErrMalformedLine) {
			t.Errorf("ReadCSV(%q): expected ErrMalformedLine, got %v", in, err)
		}
	}
}

func TestWriteAddresses(t *testing.T) {
	var buf bytes.Buffer
	rs := []Range{{5, 3}, {10, 0}, {20, 2}}

	var seen []int
	err := WriteAddresses(&buf, rs, func(i int, _ Range) {
		seen = append(seen, i)
	})
	if err != nil {
		t.Fatalf("WriteAddresses failed: %v", err)
	}

	want := "5\n6\n7\n20\n21\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
	if !slices.Equal(seen, []int{0, 1, 2}) {
		t.Errorf("callback saw ranges %v", seen)
	}
}

func TestFilesLineCountMatchesTotal(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "out", "ips.csv")
	ipsPath := filepath.Join(dir, "out", "ips.data")

	rs, err := Generate(Config{NumRanges: 25, RNG: 1 << 32, TotalAddresses: 3000}, NewRand(99))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if err := WriteCSVFile(csvPath, rs); err != nil {
		t.Fatalf("WriteCSVFile failed: %v", err)
	}
	if err := WriteAddressesFile(ipsPath, rs, nil); err != nil {
		t.Fatalf("WriteAddressesFile failed: %v", err)
	}

	back, err := ReadCSVFile(csvPath)
	if err != nil {
		t.Fatalf("ReadCSVFile failed: %v", err)
	}

	f, err := os.Open(ipsPath)
	if err != nil {
		t.Fatalf("open %s: %v", ipsPath, err)
	}
	defer f.Close()

	var lines int64
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines++
	}
	if lines != Total(back) {
		t.Errorf("address file has %d lines, csv cardinalities sum to %d", lines, Total(back))
	}
}
