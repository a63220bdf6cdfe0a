package pregel

import "sync/atomic"

// sentMessageFlag is the single atomic boolean the spec calls
// sent_message: set by any vertex that sends a message during the current
// superstep, reset at the start of each superstep, and checked at the
// convergence test alongside VoteBits.AllHalted.
type sentMessageFlag struct {
	flag atomic.Bool
}

func (f *sentMessageFlag) set() { f.flag.Store(true) }

func (f *sentMessageFlag) reset() { f.flag.Store(false) }

func (f *sentMessageFlag) load() bool { return f.flag.Load() }
