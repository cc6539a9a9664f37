// Package fifo provides an unbounded, generic first-in-first-out
// queue built on a singly-linked chain of nodes.
//
// A [Queue] is not safe for concurrent use. For a queue that can be
// shared between goroutines, see package [deedles.dev/fifo/cq].
package fifo

// noCopy may be embedded in structs which must not be copied after
// first use. See go vet's copylocks check.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
