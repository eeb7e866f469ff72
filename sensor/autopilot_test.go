package sensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"joysnake/game"
)

func snapshot(head game.Point, h game.Heading, body ...game.Point) game.Snapshot {
	return game.Snapshot{
		Head:    head,
		Heading: h,
		Length:  len(body) + 1,
		Body:    append([]game.Point{head}, body...),
	}
}

func TestAutopilotWaitsForFeed(t *testing.T) {
	a := NewAutopilot(&game.Feed{})

	_, err := a.Read(ChannelY)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestAutopilotSeeksFruit(t *testing.T) {
	head := game.Point{X: 60, Y: 60}

	t.Run("turns down when fruit column is reached", func(t *testing.T) {
		s := snapshot(head, game.Right)
		s.Fruit = game.Fruit{Pos: game.Point{X: 64, Y: 90}, Active: true}

		x, y := NewAutopilot(nil).Decide(s)
		assert.Equal(t, 0.0, x)
		assert.Equal(t, -1.0, y)
	})

	t.Run("turns up the short way round", func(t *testing.T) {
		s := snapshot(head, game.Left)
		s.Fruit = game.Fruit{Pos: game.Point{X: 58, Y: 20}, Active: true}

		_, y := NewAutopilot(nil).Decide(s)
		assert.Equal(t, 1.0, y)
	})

	t.Run("turns left while moving vertically", func(t *testing.T) {
		s := snapshot(head, game.Down)
		s.Fruit = game.Fruit{Pos: game.Point{X: 20, Y: 66}, Active: true}

		x, y := NewAutopilot(nil).Decide(s)
		assert.Equal(t, -1.0, x)
		assert.Equal(t, 0.0, y)
	})

	t.Run("keeps going while fruit is far ahead", func(t *testing.T) {
		s := snapshot(head, game.Right)
		s.Fruit = game.Fruit{Pos: game.Point{X: 110, Y: 90}, Active: true}

		x, y := NewAutopilot(nil).Decide(s)
		assert.Zero(t, x)
		assert.Zero(t, y)
	})

	t.Run("keeps going when already in line", func(t *testing.T) {
		s := snapshot(head, game.Right)
		s.Fruit = game.Fruit{Pos: game.Point{X: 66, Y: 62}, Active: true}

		x, y := NewAutopilot(nil).Decide(s)
		assert.Zero(t, x)
		assert.Zero(t, y)
	})

	t.Run("centered without fruit", func(t *testing.T) {
		x, y := NewAutopilot(nil).Decide(snapshot(head, game.Up))
		assert.Zero(t, x)
		assert.Zero(t, y)
	})
}

func TestAutopilotAvoidsBody(t *testing.T) {
	head := game.Point{X: 60, Y: 60}
	behind := []game.Point{{X: 58, Y: 60}, {X: 56, Y: 60}, {X: 54, Y: 60}}

	t.Run("turns up first", func(t *testing.T) {
		body := append(append([]game.Point{}, behind...), game.Point{X: 66, Y: 60})
		s := snapshot(head, game.Right, body...)
		s.Fruit = game.Fruit{Pos: game.Point{X: 100, Y: 60}, Active: true}

		x, y := NewAutopilot(nil).Decide(s)
		assert.Equal(t, 0.0, x)
		assert.Equal(t, 1.0, y)
	})

	t.Run("turns down when up is blocked too", func(t *testing.T) {
		body := append(append([]game.Point{}, behind...), game.Point{X: 66, Y: 60}, game.Point{X: 60, Y: 54})
		s := snapshot(head, game.Right, body...)

		_, y := NewAutopilot(nil).Decide(s)
		assert.Equal(t, -1.0, y)
	})

	t.Run("ignores the segments behind the head", func(t *testing.T) {
		s := snapshot(head, game.Right, game.Point{X: 62, Y: 60}, game.Point{X: 64, Y: 60})

		x, y := NewAutopilot(nil).Decide(s)
		assert.Zero(t, x)
		assert.Zero(t, y)
	})
}

func TestAutopilotReadsFeed(t *testing.T) {
	feed := &game.Feed{}
	e := game.NewEngine(nil)
	e.SetFruit(game.Point{X: 64, Y: 20})
	feed.Publish(e.Snapshot())

	a := NewAutopilot(feed)
	y, err := a.Read(ChannelY)
	require.NoError(t, err)
	x, err := a.Read(ChannelX)
	require.NoError(t, err)

	assert.EqualValues(t, FullScale, y)
	assert.EqualValues(t, Center, x)
}
