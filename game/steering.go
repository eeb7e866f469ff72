package game

// TurnIntent is a per-axis steering decision for one control cycle.
type TurnIntent int8

const (
	TurnNegative TurnIntent = -1
	Neutral      TurnIntent = 0
	TurnPositive TurnIntent = 1
)

// String returns the intent name.
func (t TurnIntent) String() string {
	switch t {
	case TurnPositive:
		return "positive"
	case TurnNegative:
		return "negative"
	default:
		return "neutral"
	}
}

// Axis identifies one stick axis.
type Axis uint8

const (
	// AxisA is the vertical stick. It steers while the snake moves
	// horizontally and wins when both axes fire in the same cycle.
	AxisA Axis = iota
	// AxisB is the horizontal stick. It steers while the snake moves
	// vertically.
	AxisB
)

// Resolve picks the single turn applied in a cycle: axis A first.
func Resolve(a, b TurnIntent) TurnIntent {
	if a != Neutral {
		return a
	}
	return b
}

// Normalize reduces a raw SampleBits-wide reading to AxisBits.
func Normalize(raw uint16) int {
	return int(raw>>(SampleBits-AxisBits)) & (1<<AxisBits - 1)
}

// Steering turns raw stick samples into field-relative turn intents.
// Pushing the stick toward a side of the screen turns the snake toward that
// side whichever way it is travelling. The sample after a fire on an axis is
// suppressed, so a held stick turns at most every other sample.
//
// The zero value is ready to use.
type Steering struct {
	last [2]TurnIntent
}

// Intent discretises one raw sample for an axis given the current heading.
func (s *Steering) Intent(axis Axis, raw uint16, h Heading) TurnIntent {
	sign := h.DirX()
	if axis == AxisB {
		sign = h.DirY()
	}

	v := Normalize(raw)
	next := Neutral
	if s.last[axis] == Neutral {
		switch {
		case v > AxisHigh:
			next = TurnIntent(sign)
		case v < AxisLow:
			next = TurnIntent(-sign)
		}
	}
	s.last[axis] = next
	return next
}
