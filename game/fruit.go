package game

import "math/rand"

// Fruit is the single collectible on the field.
type Fruit struct {
	Pos    Point
	Active bool
}

// Random is the spawner's source of positions. Next returns a non-negative int.
type Random interface {
	Next() int
}

// Rand is the default Random, seeded once.
type Rand struct {
	r *rand.Rand
}

// NewRand creates a Rand seeded with seed.
func NewRand(seed int64) *Rand {
	return &Rand{r: rand.New(rand.NewSource(seed))}
}

// Next returns a non-negative pseudo-random int.
func (r *Rand) Next() int {
	return r.r.Int()
}

// SpawnPoint draws a fruit position inset from the field edges.
// It does not look at the snake; fruit may land under the body.
func SpawnPoint(r Random) Point {
	return Point{X: spawnCoord(r.Next()), Y: spawnCoord(r.Next())}
}

// spawnCoord maps any int into the inset spawn range.
func spawnCoord(n int) int {
	n %= FruitSpan
	if n < 0 {
		n += FruitSpan
	}
	return n + FruitInset
}
