package sensor

import "joysnake/game"

// Autopilot defaults.
const (
	DefaultReach     = 12 // along-axis distance at which the autopilot turns toward fruit
	DefaultLookahead = 4  // strides checked ahead for body segments
)

// Autopilot is a Sensor that plays the game itself. It reads the snapshots
// the controller publishes and holds the stick toward the fruit, turning
// away when its own body lies ahead.
type Autopilot struct {
	feed      *game.Feed
	Reach     int
	Lookahead int
}

// NewAutopilot creates an autopilot reading feed with the default tuning.
func NewAutopilot(feed *game.Feed) *Autopilot {
	return &Autopilot{
		feed:      feed,
		Reach:     DefaultReach,
		Lookahead: DefaultLookahead,
	}
}

// Read implements Sensor. It has nothing to say before the first snapshot.
func (a *Autopilot) Read(ch Channel) (uint16, error) {
	s, ok := a.feed.Latest()
	if !ok {
		return 0, ErrUnavailable
	}
	x, y := a.Decide(s)
	switch ch {
	case ChannelY:
		return Raw(y), nil
	case ChannelX:
		return Raw(x), nil
	default:
		return 0, ErrUnavailable
	}
}

// Decide returns the stick deflection for one snapshot.
// Priority: avoid the body, then line up with the fruit, else stay centered.
func (a *Autopilot) Decide(s game.Snapshot) (x, y float64) {
	h := s.Heading

	if a.blocked(s, h) {
		for _, t := range []game.TurnIntent{game.TurnPositive, game.TurnNegative} {
			if next := h.Turn(t); !a.blocked(s, next) {
				return deflect(next)
			}
		}
		return 0, 0
	}

	if !s.Fruit.Active {
		return 0, 0
	}
	dx := game.Delta(s.Head.X, s.Fruit.Pos.X)
	dy := game.Delta(s.Head.Y, s.Fruit.Pos.Y)
	if h.Horizontal() {
		if abs(dx) <= a.Reach && abs(dy) > game.ConsumeRadius {
			if dy < 0 {
				return deflect(game.Up)
			}
			return deflect(game.Down)
		}
		return 0, 0
	}
	if abs(dy) <= a.Reach && abs(dx) > game.ConsumeRadius {
		if dx < 0 {
			return deflect(game.Left)
		}
		return deflect(game.Right)
	}
	return 0, 0
}

// blocked reports whether a body segment lies within Lookahead strides
// along h. The segments the head can never hit are ignored.
func (a *Autopilot) blocked(s game.Snapshot, h game.Heading) bool {
	for k := 1; k <= a.Lookahead; k++ {
		p := s.Head.Add(k*game.StrideCells*h.DirX(), k*game.StrideCells*h.DirY())
		for i := game.ImmunityWindow + 1; i < len(s.Body); i++ {
			if p.Chebyshev(s.Body[i]) <= game.CollisionDistance {
				return true
			}
		}
	}
	return false
}

// deflect returns the stick position that steers onto h.
func deflect(h game.Heading) (x, y float64) {
	switch h {
	case game.Up:
		return 0, 1
	case game.Down:
		return 0, -1
	case game.Left:
		return -1, 0
	default:
		return 1, 0
	}
}

// abs returns the absolute value of v.
func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
