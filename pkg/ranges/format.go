package ranges

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// WriteCSV writes one "<start>, <cardinality>" line per range.
func WriteCSV(w io.Writer, rs []Range) error {
	bw := bufio.NewWriter(w)
	for _, r := range rs {
		if _, err := fmt.Fprintf(bw, "%d, %d\n", r.Start, r.Cardinality); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadCSV parses the output of WriteCSV. Blank lines are ignored.
func ReadCSV(r io.Reader) ([]Range, error) {
	var out []Range
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}

		startStr, cardStr, ok := strings.Cut(line, ",")
		if !ok {
			return nil, fmt.Errorf("%w at line %d: %q", ErrMalformedLine, lineNo, line)
		}
		start, err := strconv.ParseInt(strings.TrimSpace(startStr), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w at line %d: %v", ErrMalformedLine, lineNo, err)
		}
		card, err := strconv.ParseInt(strings.TrimSpace(cardStr), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w at line %d: %v", ErrMalformedLine, lineNo, err)
		}
		out = append(out, Range{Start: start, Cardinality: card})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// WriteAddresses writes every integer of every range, one per line, in range
// order. If onRange is not nil it is called after each range is written.
func WriteAddresses(w io.Writer, rs []Range, onRange func(i int, r Range)) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 24)
	for i, r := range rs {
		for v := r.Start; v < r.End(); v++ {
			buf = strconv.AppendInt(buf[:0], v, 10)
			buf = append(buf, '\n')
			if _, err := bw.Write(buf); err != nil {
				return err
			}
		}
		if onRange != nil {
			onRange(i, r)
		}
	}
	return bw.Flush()
}

// WriteCSVFile creates path (and its parent directory) and writes rs to it.
func WriteCSVFile(path string, rs []Range) error {
	return writeFile(path, func(w io.Writer) error {
		return WriteCSV(w, rs)
	})
}

// WriteAddressesFile creates path (and its parent directory) and writes the
// expanded addresses of rs to it.
func WriteAddressesFile(path string, rs []Range, onRange func(i int, r Range)) error {
	return writeFile(path, func(w io.Writer) error {
		return WriteAddresses(w, rs, onRange)
	})
}

// ReadCSVFile reads a file written by WriteCSVFile.
func ReadCSVFile(path string) ([]Range, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadCSV(f)
}

func writeFile(path string, write func(w io.Writer) error) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
