package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/dustin/go-humanize"

	"pkg.jsn.cam/randranges/pkg/lookup"
)

var (
	KnownIPsFile     = flag.String("known-ips-file", "ips.data", "file with known IP per line")
	RequestedIPsFile = flag.String("requested-ips-file", "requested_ips.data", "file with IPs of the question, both known and not known")
	Iterations       = flag.Int("iterations", 1000, "number of times we go through requested-ips-file")
	Actors           = flag.String("actors", "", "comma separated actors to run (default all)")
	Debug            = flag.Bool("debug", false, "print found/not found for every requested IP")
)

func main() {
	flag.Parse()

	actors, err := lookup.Parse(*Actors)
	if err != nil {
		log.Fatalf("%v (available: %v)", err, lookup.List())
	}

	known, err := lookup.ReadAddressesFile(*KnownIPsFile)
	if err != nil {
		log.Fatalf("Failed to read known IPs: %v", err)
	}
	requested, err := lookup.ReadAddressesFile(*RequestedIPsFile)
	if err != nil {
		log.Fatalf("Failed to read requested IPs: %v", err)
	}

	fmt.Printf("%s known IPs in %s ranges, %s requested IPs\n",
		humanize.Comma(int64(len(known))),
		humanize.Comma(int64(len(lookup.Intervals(known)))),
		humanize.Comma(int64(len(requested))))

	fmt.Println("## preparing actors")
	for _, actor := range actors {
		fmt.Println(actor.Signature())
		actor.Prepare(known)
	}

	if *Debug {
		for _, actor := range actors {
			fmt.Printf("## %s\n", actor.Signature())
			if err := lookup.Explain(os.Stdout, actor, requested); err != nil {
				log.Fatalf("Failed to write: %v", err)
			}
		}
	}

	fmt.Println("## running actors")
	for _, actor := range actors {
		fmt.Println(actor.Signature())
		res := lookup.Measure(actor, requested, *Iterations)
		fmt.Printf("took %d microseconds, found %s\n", res.Elapsed.Microseconds(), humanize.Comma(int64(res.Found)))
	}
}
