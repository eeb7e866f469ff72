package game

// Heading is one of the four axis-aligned directions of travel.
// Screen coordinates: x grows to the right, y grows downward.
type Heading uint8

const (
	Right Heading = iota
	Up
	Left
	Down
)

// headingVectors holds the unit step of each heading.
var headingVectors = [4][2]int{
	Right: {1, 0},
	Up:    {0, -1},
	Left:  {-1, 0},
	Down:  {0, 1},
}

// A positive turn is a left turn from the snake's point of view, a negative
// turn a right turn.
var (
	turnPositive = [4]Heading{Right: Up, Up: Left, Left: Down, Down: Right}
	turnNegative = [4]Heading{Right: Down, Down: Left, Left: Up, Up: Right}
)

// DirX returns the signed x component: -1, 0 or 1.
func (h Heading) DirX() int { return headingVectors[h&3][0] }

// DirY returns the signed y component: -1, 0 or 1.
func (h Heading) DirY() int { return headingVectors[h&3][1] }

// Horizontal reports whether the heading moves along x.
func (h Heading) Horizontal() bool { return h.DirX() != 0 }

// Turn rotates the heading by 90 degrees. Neutral leaves it unchanged.
func (h Heading) Turn(t TurnIntent) Heading {
	switch t {
	case TurnPositive:
		return turnPositive[h&3]
	case TurnNegative:
		return turnNegative[h&3]
	default:
		return h
	}
}

// String returns the heading name.
func (h Heading) String() string {
	switch h {
	case Right:
		return "right"
	case Up:
		return "up"
	case Left:
		return "left"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}
