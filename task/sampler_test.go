package task

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"joysnake/sensor"
)

func TestSamplerPostsBothChannels(t *testing.T) {
	y, x := NewMailbox[uint16](), NewMailbox[uint16]()
	stats := &Stats{}
	s := NewSampler(sensor.Func(func(ch sensor.Channel) (uint16, error) {
		return uint16(100 + ch), nil
	}), y, x, stats)

	s.Step()

	vy, ok := y.Poll()
	assert.True(t, ok)
	assert.EqualValues(t, 100, vy)
	vx, ok := x.Poll()
	assert.True(t, ok)
	assert.EqualValues(t, 101, vx)
	assert.EqualValues(t, 2, stats.Samples.Load())
}

func TestSamplerSkipsUnavailable(t *testing.T) {
	y, x := NewMailbox[uint16](), NewMailbox[uint16]()
	stats := &Stats{}
	s := NewSampler(sensor.Func(func(ch sensor.Channel) (uint16, error) {
		if ch == sensor.ChannelX {
			return 0, sensor.ErrUnavailable
		}
		return sensor.Center, nil
	}), y, x, stats)

	s.Step()

	_, ok := x.Poll()
	assert.False(t, ok)
	_, ok = y.Poll()
	assert.True(t, ok)
	assert.EqualValues(t, 1, stats.SampleErrors.Load())
}

func TestSamplerDropsWhenFull(t *testing.T) {
	y, x := NewMailbox[uint16](), NewMailbox[uint16]()
	stats := &Stats{}
	n := uint16(0)
	s := NewSampler(sensor.Func(func(sensor.Channel) (uint16, error) {
		n++
		return n, nil
	}), y, x, stats)

	s.Step()
	s.Step()

	v, _ := y.Poll()
	assert.EqualValues(t, 1, v, "unread sample is not overwritten")
	assert.EqualValues(t, 2, stats.SampleDrops.Load())
	assert.EqualValues(t, 4, stats.Samples.Load())
}
