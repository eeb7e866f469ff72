package task

import (
	"context"

	"joysnake/game"
	"joysnake/lcd"
)

// Controller owns the engine. Each step turns the latest samples into at most
// one heading change, advances the snake and renders a frame.
type Controller struct {
	engine   *game.Engine
	gate     *lcd.Gate
	samples  [2]*Mailbox[uint16] // indexed by game.Axis
	fruit    *Mailbox[game.Point]
	eaten    *Mailbox[struct{}]
	feed     *game.Feed
	stats    *Stats
	steering game.Steering
	phase    int
}

// ControllerConfig wires a Controller. Feed may be nil.
type ControllerConfig struct {
	Engine *game.Engine
	Gate   *lcd.Gate
	Y, X   *Mailbox[uint16]
	Fruit  *Mailbox[game.Point]
	Eaten  *Mailbox[struct{}]
	Feed   *game.Feed
	Stats  *Stats
}

// NewController wires a controller from cfg.
func NewController(cfg ControllerConfig) *Controller {
	c := &Controller{
		engine: cfg.Engine,
		gate:   cfg.Gate,
		fruit:  cfg.Fruit,
		eaten:  cfg.Eaten,
		feed:   cfg.Feed,
		stats:  cfg.Stats,
	}
	// The vertical stick steers axis A, the horizontal one axis B.
	c.samples[game.AxisA] = cfg.Y
	c.samples[game.AxisB] = cfg.X
	return c
}

// Step runs one control cycle. It never waits for input: an axis with no
// fresh sample contributes no turn.
func (c *Controller) Step() {
	var intents [2]game.TurnIntent
	h := c.engine.Heading()
	for axis, box := range c.samples {
		if raw, ok := box.Poll(); ok {
			intents[axis] = c.steering.Intent(game.Axis(axis), raw, h)
		}
	}
	if t := game.Resolve(intents[game.AxisA], intents[game.AxisB]); t != game.Neutral {
		c.engine.SetTurn(t)
		c.stats.Turns.Add(1)
	}

	if p, ok := c.fruit.Poll(); ok {
		c.engine.SetFruit(p)
	}
	hadFruit := c.engine.Fruit().Active

	c.phase = (c.phase + 1) % game.PhaseCount

	var collided bool
	err := c.gate.Frame(func(s lcd.Surface) {
		s.Clear()
		collided = c.engine.Advance(c.phase, s)
		c.engine.DrawFruit(s)
	})
	c.stats.Frames.Add(1)
	if err != nil {
		c.stats.FlushErrors.Add(1)
	}
	if collided {
		c.stats.Rounds.Add(1)
	}

	if hadFruit && !c.engine.Fruit().Active {
		c.eaten.Post(struct{}{})
	}
	if c.feed != nil {
		c.feed.Publish(c.engine.Snapshot())
	}
}

// Phase returns the animation phase used by the last step.
func (c *Controller) Phase() int {
	return c.phase
}

// Run steps every ControlPeriod until ctx is done.
func (c *Controller) Run(ctx context.Context) {
	every(ctx, ControlPeriod, c.Step)
}
