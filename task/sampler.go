package task

import (
	"context"

	"joysnake/sensor"
)

// Sampler reads both stick channels and posts the raw values to the
// controller. Failed reads and full mailboxes are counted and otherwise
// ignored.
type Sampler struct {
	sensor sensor.Sensor
	out    [2]*Mailbox[uint16] // indexed by sensor.Channel
	stats  *Stats
}

// NewSampler creates a sampler posting ChannelY to y and ChannelX to x.
func NewSampler(s sensor.Sensor, y, x *Mailbox[uint16], stats *Stats) *Sampler {
	return &Sampler{
		sensor: s,
		out:    [2]*Mailbox[uint16]{sensor.ChannelY: y, sensor.ChannelX: x},
		stats:  stats,
	}
}

// Step takes one sample per channel.
func (s *Sampler) Step() {
	for ch, box := range s.out {
		v, err := s.sensor.Read(sensor.Channel(ch))
		if err != nil {
			s.stats.SampleErrors.Add(1)
			continue
		}
		s.stats.Samples.Add(1)
		if !box.Post(v) {
			s.stats.SampleDrops.Add(1)
		}
	}
}

// Run samples every SamplePeriod until ctx is done.
func (s *Sampler) Run(ctx context.Context) {
	every(ctx, SamplePeriod, s.Step)
}
