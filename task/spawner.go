package task

import (
	"context"
	"time"

	"joysnake/game"
)

// Spawner keeps one fruit in play. It owns the active flag: a fruit it posts
// stays active until the controller reports it eaten.
type Spawner struct {
	rnd    game.Random
	out    *Mailbox[game.Point]
	eaten  *Mailbox[struct{}]
	active bool
	stats  *Stats
}

// NewSpawner creates a spawner. A nil rnd is seeded from the clock when the
// spawner first runs.
func NewSpawner(rnd game.Random, out *Mailbox[game.Point], eaten *Mailbox[struct{}], stats *Stats) *Spawner {
	return &Spawner{rnd: rnd, out: out, eaten: eaten, stats: stats}
}

// Step spawns a fruit if none is active. It is a no-op while one is.
func (s *Spawner) Step() {
	if _, ok := s.eaten.Poll(); ok {
		s.active = false
	}
	if s.active {
		return
	}
	if s.rnd == nil {
		s.rnd = game.NewRand(time.Now().UnixNano())
	}
	if !s.out.Post(game.SpawnPoint(s.rnd)) {
		return
	}
	s.active = true
	s.stats.Spawns.Add(1)
}

// Active reports whether a spawned fruit is still in play.
func (s *Spawner) Active() bool {
	return s.active
}

// Run checks every SpawnPeriod until ctx is done.
func (s *Spawner) Run(ctx context.Context) {
	every(ctx, SpawnPeriod, s.Step)
}
