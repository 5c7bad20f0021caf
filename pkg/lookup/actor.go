// Package lookup implements the membership strategies compared by rangebench.
// Every actor is prepared from the same list of known addresses and answers
// how many of a batch of requested addresses are known.
package lookup

// Actor is a single lookup strategy.
type Actor interface {
	// Prepare builds the actor's index from the known addresses.
	Prepare(known []uint32)

	// Run returns how many of requested are known.
	Run(requested []uint32) int

	// Signature is the name printed in benchmark output.
	Signature() string
}
