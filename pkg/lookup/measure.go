package lookup

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

// Result is the outcome of running one actor over the requested addresses.
type Result struct {
	Signature string
	Elapsed   time.Duration
	Found     int
}

// Measure runs a over requested iterations times. a must already be prepared.
func Measure(a Actor, requested []uint32, iterations int) Result {
	start := time.Now()
	found := 0
	for range iterations {
		found += a.Run(requested)
	}
	return Result{
		Signature: a.Signature(),
		Elapsed:   time.Since(start),
		Found:     found,
	}
}

// Explain writes "found <v>" or "not found <v>" for every requested address.
func Explain(w io.Writer, a Actor, requested []uint32) error {
	one := make([]uint32, 1)
	for _, v := range requested {
		one[0] = v
		status := "not found"
		if a.Run(one) > 0 {
			status = "found"
		}
		if _, err := fmt.Fprintf(w, "%s %d\n", status, v); err != nil {
			return err
		}
	}
	return nil
}

// ReadAddresses parses whitespace separated decimal addresses.
func ReadAddresses(r io.Reader) ([]uint32, error) {
	var out []uint32
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		v, err := strconv.ParseUint(sc.Text(), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("address %d: %w", len(out)+1, err)
		}
		out = append(out, uint32(v))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ReadAddressesFile reads addresses from path.
func ReadAddressesFile(path string) ([]uint32, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	addrs, err := ReadAddresses(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return addrs, nil
}
