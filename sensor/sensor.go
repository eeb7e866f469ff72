// Package sensor provides the joystick inputs the sampler reads.
package sensor

import (
	"errors"

	"joysnake/game"
)

// Channel selects one analog input.
type Channel uint8

const (
	ChannelY Channel = iota // vertical stick, steering axis A
	ChannelX                // horizontal stick, steering axis B
)

// String returns the channel name.
func (c Channel) String() string {
	switch c {
	case ChannelY:
		return "y"
	case ChannelX:
		return "x"
	default:
		return "unknown"
	}
}

// ErrUnavailable is returned when a channel has no sample to give.
var ErrUnavailable = errors.New("sensor: sample unavailable")

// Sensor reads raw game.SampleBits-wide samples.
type Sensor interface {
	Read(ch Channel) (uint16, error)
}

// Func adapts a plain function to Sensor.
type Func func(ch Channel) (uint16, error)

// Read calls f(ch).
func (f Func) Read(ch Channel) (uint16, error) { return f(ch) }

// Sample range. High values mean up on ChannelY and right on ChannelX.
const (
	FullScale = 1<<game.SampleBits - 1
	Center    = 1 << (game.SampleBits - 1)
)

// Raw converts a stick deflection in [-1, 1] to a raw sample.
// Values outside the range are clamped.
func Raw(deflection float64) uint16 {
	v := Center + deflection*Center
	switch {
	case v < 0:
		return 0
	case v > FullScale:
		return FullScale
	default:
		return uint16(v)
	}
}
