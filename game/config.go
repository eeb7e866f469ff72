package game

// Rule constants. Values were tuned on the 128x128 LCD and are kept as-is.

// Field
const (
	FieldSize = 128 // side of the wrap-around play field, in pixels
	StartX    = 60  // head position after reset
	StartY    = 60
)

// Snake
const (
	InitialLength   = 20  // segments after reset
	MaxLength       = 150 // cap on logical length
	GrowthIncrement = 5   // segments gained per fruit
	Capacity        = MaxLength + GrowthIncrement

	StrideCells = 2 // pixels moved along the heading per tick
	SeedStride  = 2 // y spacing between seed segments

	HeadRadius = 2
	BodyRadius = 1
)

// Collision. The immunity window skips the segments directly behind the
// head, which always sit within CollisionDistance after a turn.
const (
	ImmunityWindow    = 2 // trailing segments never tested against the head
	CollisionDistance = 2 // per-axis distance below which a segment hits
	ConsumeRadius     = 3 // per-axis distance at or below which fruit is eaten
)

// Fruit
const (
	FruitInset  = 3   // spawn keeps this far from the low edges
	FruitSpan   = 123 // spawn range width, so positions land in [3, 126)
	FruitRadius = 3
)

// Stick input
const (
	SampleBits = 14 // raw ADC resolution
	AxisBits   = 7  // resolution the thresholds are expressed in
	AxisHigh   = 80 // normalised value above which the stick is deflected high
	AxisLow    = 30 // normalised value below which the stick is deflected low
)

// PhaseCount is the length of the animation table.
const PhaseCount = 8

// phaseOffsets wiggles the head across its heading, one entry per frame.
var phaseOffsets = [PhaseCount]int{-1, -1, -1, -1, 1, 1, 1, 1}

// PhaseOffset returns the signed sub-cell offset for an animation phase.
// Any integer is accepted and wrapped into the table.
func PhaseOffset(phase int) int {
	phase %= PhaseCount
	if phase < 0 {
		phase += PhaseCount
	}
	return phaseOffsets[phase]
}
