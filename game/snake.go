package game

import (
	"sync/atomic"

	"github.com/google/uuid"
)

// Canvas is the drawing primitive the engine needs while advancing.
type Canvas interface {
	FillCircle(x, y, r int)
}

// Engine holds the snake, its heading and the fruit it is chasing.
// It is owned by a single goroutine; nothing here is synchronised.
type Engine struct {
	body    [Capacity]Point // index 0 = head, slots past length are growth scratch
	length  int
	heading Heading
	fruit   Fruit

	round  uuid.UUID
	rounds int

	events *EventBus
}

// NewEngine creates an engine in its reset state. events may be nil.
func NewEngine(events *EventBus) *Engine {
	e := &Engine{events: events}
	e.Reset()
	return e
}

// Reset lays the snake out along the zig-zag seed heading right and opens a
// new round. The fruit is left alone.
func (e *Engine) Reset() {
	e.heading = Right
	e.length = InitialLength
	e.body[0] = Point{X: StartX, Y: StartY}

	s := 0
	for i := 1; i < InitialLength; i++ {
		e.body[i] = e.body[i-1].Add(phaseOffsets[s], SeedStride)
		s = (s + 1) % PhaseCount
	}
	// Scratch slots start on the tail so growth never exposes a stale point.
	tail := e.body[InitialLength-1]
	for i := InitialLength; i < Capacity; i++ {
		e.body[i] = tail
	}

	e.round = uuid.New()
	e.rounds++
	e.emit(EventRoundStart)
}

// Advance moves the snake one tick and draws it on c.
//
// Segments are shifted from the back so each slot is read before it is
// overwritten; every live segment is drawn at its old position first. The
// head then moves StrideCells along the heading and wiggles across it by the
// phase offset. On self-collision the engine resets and Advance returns true.
func (e *Engine) Advance(phase int, c Canvas) bool {
	head := e.body[0]
	collided := false

	for i := e.length + GrowthIncrement - 1; i > 0; i-- {
		if i < e.length {
			seg := e.body[i]
			c.FillCircle(seg.X, seg.Y, BodyRadius)
			if i > ImmunityWindow && head.Chebyshev(seg) < CollisionDistance {
				collided = true
			}
		}
		e.body[i] = e.body[i-1]
	}

	e.ConsumeFruitIfAdjacent()

	c.FillCircle(head.X, head.Y, HeadRadius)
	e.body[0] = e.step(head, phase)

	if collided {
		e.emit(EventCollision)
		e.Reset()
	}
	return collided
}

// step returns where the head at p moves this tick.
func (e *Engine) step(p Point, phase int) Point {
	off := PhaseOffset(phase)
	if dx := e.heading.DirX(); dx != 0 {
		return p.Add(StrideCells*dx, off)
	}
	return p.Add(off, StrideCells*e.heading.DirY())
}

// ConsumeFruitIfAdjacent eats an active fruit within ConsumeRadius of the
// head. The snake grows by GrowthIncrement unless that would pass MaxLength.
func (e *Engine) ConsumeFruitIfAdjacent() bool {
	if !e.fruit.Active || e.body[0].Chebyshev(e.fruit.Pos) > ConsumeRadius {
		return false
	}
	e.fruit.Active = false
	if e.length+GrowthIncrement <= MaxLength {
		e.length += GrowthIncrement
	}
	e.emit(EventFruitEaten)
	return true
}

// SetTurn applies one resolved turn intent.
func (e *Engine) SetTurn(t TurnIntent) {
	e.heading = e.heading.Turn(t)
}

// SetFruit places an active fruit, replacing any previous one.
func (e *Engine) SetFruit(p Point) {
	e.fruit = Fruit{Pos: Point{X: Wrap(p.X), Y: Wrap(p.Y)}, Active: true}
}

// DrawFruit draws the fruit if one is active.
func (e *Engine) DrawFruit(c Canvas) {
	if e.fruit.Active {
		c.FillCircle(e.fruit.Pos.X, e.fruit.Pos.Y, FruitRadius)
	}
}

// Head returns the head position.
func (e *Engine) Head() Point {
	return e.body[0]
}

// Length returns the logical length.
func (e *Engine) Length() int {
	return e.length
}

// Heading returns the current direction of travel.
func (e *Engine) Heading() Heading {
	return e.heading
}

// Fruit returns the fruit the engine currently holds.
func (e *Engine) Fruit() Fruit {
	return e.fruit
}

// Round returns the id of the current round.
func (e *Engine) Round() uuid.UUID {
	return e.round
}

// Rounds returns how many rounds have started, the first included.
func (e *Engine) Rounds() int {
	return e.rounds
}

// Body returns a copy of the live segments, head first.
func (e *Engine) Body() []Point {
	return append([]Point(nil), e.body[:e.length]...)
}

// emit reports t with the current round and head.
func (e *Engine) emit(t EventType) {
	e.events.Emit(Event{Type: t, Round: e.round, Head: e.body[0], Length: e.length})
}

// Snapshot is a copy of the engine state for readers on other goroutines.
type Snapshot struct {
	Round   uuid.UUID
	Head    Point
	Heading Heading
	Length  int
	Fruit   Fruit
	Body    []Point
}

// Snapshot copies the state observers need.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Round:   e.round,
		Head:    e.body[0],
		Heading: e.heading,
		Length:  e.length,
		Fruit:   e.fruit,
		Body:    e.Body(),
	}
}

// Feed publishes the latest snapshot from the owning goroutine.
type Feed struct {
	p atomic.Pointer[Snapshot]
}

// Publish replaces the latest snapshot.
func (f *Feed) Publish(s Snapshot) {
	f.p.Store(&s)
}

// Latest returns the most recent snapshot, false before the first publish.
func (f *Feed) Latest() (Snapshot, bool) {
	s := f.p.Load()
	if s == nil {
		return Snapshot{}, false
	}
	return *s, true
}
