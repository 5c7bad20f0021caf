// Package probe draws the requested-address set used by rangebench: a mix of
// addresses known to be in ips.data and uniformly random addresses.
package probe

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"strconv"
)

var ErrInvalidConfig = errors.New("invalid probe config")

type Config struct {
	Count int
	// HitRatio is the probability of drawing a known address.
	HitRatio float64
	// Begin and End bound random addresses to [Begin, End).
	Begin uint32
	End   uint32
}

func (c Config) Validate() error {
	switch {
	case c.Count < 0:
		return fmt.Errorf("%w: count must not be negative, got %d", ErrInvalidConfig, c.Count)
	case c.HitRatio < 0 || c.HitRatio > 1:
		return fmt.Errorf("%w: hit ratio must be within [0, 1], got %g", ErrInvalidConfig, c.HitRatio)
	case c.End <= c.Begin:
		return fmt.Errorf("%w: end must be above begin", ErrInvalidConfig)
	}
	return nil
}

// Sample returns cfg.Count addresses. With no known addresses every draw is
// random.
func Sample(known []uint32, cfg Config, r *rand.Rand) ([]uint32, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	span := cfg.End - cfg.Begin
	out := make([]uint32, cfg.Count)
	for i := range out {
		if len(known) > 0 && r.Float64() < cfg.HitRatio {
			out[i] = known[r.IntN(len(known))]
			continue
		}
		out[i] = r.Uint32()%span + cfg.Begin
	}
	return out, nil
}

// Write writes one address per line.
func Write(w io.Writer, addrs []uint32) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 12)
	for _, v := range addrs {
		buf = strconv.AppendUint(buf[:0], uint64(v), 10)
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
	return bw.Flush()
}
