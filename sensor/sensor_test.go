package sensor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"joysnake/game"
)

func TestRawThresholds(t *testing.T) {
	assert.EqualValues(t, 0, Raw(-1))
	assert.EqualValues(t, 0, Raw(-5))
	assert.EqualValues(t, FullScale, Raw(1))
	assert.EqualValues(t, FullScale, Raw(5))
	assert.EqualValues(t, Center, Raw(0))

	assert.Less(t, game.Normalize(Raw(-1)), game.AxisLow)
	assert.Greater(t, game.Normalize(Raw(1)), game.AxisHigh)
	n := game.Normalize(Raw(0))
	assert.True(t, n >= game.AxisLow && n <= game.AxisHigh, "center normalises to %d", n)
}

func TestFuncAdapter(t *testing.T) {
	var s Sensor = Func(func(ch Channel) (uint16, error) {
		if ch == ChannelX {
			return 0, ErrUnavailable
		}
		return 42, nil
	})

	v, err := s.Read(ChannelY)
	require.NoError(t, err)
	assert.EqualValues(t, 42, v)

	_, err = s.Read(ChannelX)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestStickLatch(t *testing.T) {
	s := NewStick(0)

	y, err := s.Read(ChannelY)
	require.NoError(t, err)
	assert.EqualValues(t, Center, y)

	s.Set(1, -1)
	x, _ := s.Read(ChannelX)
	y, _ = s.Read(ChannelY)
	assert.EqualValues(t, FullScale, x)
	assert.EqualValues(t, 0, y)

	s.Center()
	x, _ = s.Read(ChannelX)
	assert.EqualValues(t, Center, x)

	_, err = s.Read(Channel(7))
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestStickSpringReturn(t *testing.T) {
	now := time.Unix(0, 0)
	s := NewStick(150 * time.Millisecond)
	s.clock = func() time.Time { return now }

	s.Set(0, 1)
	x, y := s.Position()
	assert.Equal(t, 0.0, x)
	assert.Equal(t, 1.0, y)

	now = now.Add(100 * time.Millisecond)
	_, y = s.Position()
	assert.Equal(t, 1.0, y)

	now = now.Add(50 * time.Millisecond)
	_, y = s.Position()
	assert.Equal(t, 0.0, y)
}

// Pushing the stick toward a side of the screen turns the snake that way.
func TestStickSteersFieldRelative(t *testing.T) {
	tests := []struct {
		heading game.Heading
		x, y    float64
		want    game.Heading
	}{
		{game.Right, 0, 1, game.Up},
		{game.Right, 0, -1, game.Down},
		{game.Left, 0, 1, game.Up},
		{game.Left, 0, -1, game.Down},
		{game.Up, 1, 0, game.Right},
		{game.Up, -1, 0, game.Left},
		{game.Down, 1, 0, game.Right},
		{game.Down, -1, 0, game.Left},
	}
	for _, tt := range tests {
		t.Run(tt.heading.String()+"->"+tt.want.String(), func(t *testing.T) {
			s := NewStick(0)
			s.Set(tt.x, tt.y)
			ry, _ := s.Read(ChannelY)
			rx, _ := s.Read(ChannelX)

			var st game.Steering
			a := st.Intent(game.AxisA, ry, tt.heading)
			b := st.Intent(game.AxisB, rx, tt.heading)
			assert.Equal(t, tt.want, tt.heading.Turn(game.Resolve(a, b)))
		})
	}
}
