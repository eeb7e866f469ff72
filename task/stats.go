package task

import (
	"fmt"
	"sync/atomic"
)

// Stats counts what the tasks did. Counters may be read at any time.
type Stats struct {
	Samples      atomic.Int64
	SampleErrors atomic.Int64 // reads that returned an error
	SampleDrops  atomic.Int64 // samples posted into a full mailbox
	Frames       atomic.Int64
	FlushErrors  atomic.Int64
	Turns        atomic.Int64
	Spawns       atomic.Int64
	Rounds       atomic.Int64 // resets caused by self-collision
}

// String formats every counter on one line.
func (s *Stats) String() string {
	return fmt.Sprintf("frames=%d turns=%d rounds=%d spawns=%d samples=%d sample_errors=%d sample_drops=%d flush_errors=%d",
		s.Frames.Load(), s.Turns.Load(), s.Rounds.Load(), s.Spawns.Load(),
		s.Samples.Load(), s.SampleErrors.Load(), s.SampleDrops.Load(), s.FlushErrors.Load())
}
