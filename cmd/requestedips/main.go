package main

import (
	"flag"
	"log"
	"math/rand/v2"
	"os"

	"github.com/dustin/go-humanize"

	"pkg.jsn.cam/randranges/internal/probe"
	"pkg.jsn.cam/randranges/pkg/ipaddr"
	"pkg.jsn.cam/randranges/pkg/lookup"
)

/*draws the addresses rangebench asks about: some known (taken from --known-ips-file),
the rest uniform in [--begin, --end)*/

var (
	KnownIPsFile = flag.String("known-ips-file", "ips.data", "file with known IP per line")
	OutputPath   = flag.String("output", "requested_ips.data", "output file, one IP per line")
	Count        = flag.Int("count", 1000, "number of IPs to generate")
	HitRatio     = flag.Float64("hit-ratio", 0.5, "fraction of IPs taken from the known set")
	Begin        = flag.String("begin", "0.0.0.0", "lowest random IP")
	End          = flag.String("end", "255.255.255.255", "random IPs stay below this one")
	Seed         = flag.Uint64("seed", 0, "random seed (0 picks one and logs it)")
)

func main() {
	flag.Parse()

	begin, err := ipaddr.Parse(*Begin)
	if err != nil {
		log.Fatalf("Invalid --begin: %v", err)
	}
	end, err := ipaddr.Parse(*End)
	if err != nil {
		log.Fatalf("Invalid --end: %v", err)
	}

	var known []uint32
	if *HitRatio > 0 {
		known, err = lookup.ReadAddressesFile(*KnownIPsFile)
		if err != nil {
			log.Fatalf("Failed to read known IPs: %v", err)
		}
	}

	seed := *Seed
	for seed == 0 {
		seed = rand.Uint64()
	}

	cfg := probe.Config{Count: *Count, HitRatio: *HitRatio, Begin: begin, End: end}
	addrs, err := probe.Sample(known, cfg, rand.New(rand.NewPCG(seed, seed)))
	if err != nil {
		log.Fatalf("Failed to sample IPs: %v", err)
	}

	file, err := os.Create(*OutputPath)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", *OutputPath, err)
	}
	if err := probe.Write(file, addrs); err != nil {
		file.Close()
		log.Fatalf("Failed to write %s: %v", *OutputPath, err)
	}
	if err := file.Close(); err != nil {
		log.Fatalf("Failed to close %s: %v", *OutputPath, err)
	}

	log.Printf("Seed %d: wrote %s IPs in [%s, %s) to %s (%s known IPs to draw from)",
		seed, humanize.Comma(int64(len(addrs))), ipaddr.FromUint32(begin), ipaddr.FromUint32(end),
		*OutputPath, humanize.Comma(int64(len(known))))
}
