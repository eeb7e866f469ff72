package task

import (
	"context"
	"log"
	"sync"

	"joysnake/game"
	"joysnake/lcd"
	"joysnake/sensor"
)

// Config wires the three tasks. Engine, Gate and Sensor are required.
type Config struct {
	Engine *game.Engine
	Gate   *lcd.Gate
	Sensor sensor.Sensor
	Feed   *game.Feed  // receives a snapshot after every frame
	Random game.Random // seeded from the clock when nil
	Stats  *Stats

	// OnFault is called once with the first task fault, before Run returns.
	OnFault func(error)
}

// Runner starts the controller, sampler and spawner and stops them together.
type Runner struct {
	controller *Controller
	sampler    *Sampler
	spawner    *Spawner
	stats      *Stats
	onFault    func(error)
}

// NewRunner wires the three tasks and the mailboxes between them.
func NewRunner(cfg Config) *Runner {
	stats := cfg.Stats
	if stats == nil {
		stats = &Stats{}
	}

	y, x := NewMailbox[uint16](), NewMailbox[uint16]()
	fruit := NewMailbox[game.Point]()
	eaten := NewMailbox[struct{}]()

	return &Runner{
		controller: NewController(ControllerConfig{
			Engine: cfg.Engine,
			Gate:   cfg.Gate,
			Y:      y,
			X:      x,
			Fruit:  fruit,
			Eaten:  eaten,
			Feed:   cfg.Feed,
			Stats:  stats,
		}),
		sampler: NewSampler(cfg.Sensor, y, x, stats),
		spawner: NewSpawner(cfg.Random, fruit, eaten, stats),
		stats:   stats,
		onFault: cfg.OnFault,
	}
}

// Stats returns the counters the tasks update.
func (r *Runner) Stats() *Stats {
	return r.stats
}

// Run blocks until ctx is done or a task faults. A fault stops every task
// and is returned as an error matching ErrFault, even if OnFault or the
// caller cancels ctx meanwhile; a plain cancel returns nil.
func (r *Runner) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	var (
		once  sync.Once
		fault error // set once, read after wg.Wait
	)
	stop := func(err error) {
		once.Do(func() {
			fault = err
			cancel(err)
			if r.onFault != nil {
				r.onFault(err)
			}
		})
	}

	tasks := []struct {
		spec Spec
		run  func(context.Context)
	}{
		{ControllerSpec, r.controller.Run},
		{SamplerSpec, r.sampler.Run},
		{SpawnerSpec, r.spawner.Run},
	}

	var wg sync.WaitGroup
	for _, t := range tasks {
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer recoverFault(t.spec.Name, stop)
			log.Printf("task %s started (period %s, priority %d)", t.spec.Name, t.spec.Period, t.spec.Priority)
			t.run(ctx)
		}()
	}
	wg.Wait()

	if fault != nil {
		return fault
	}
	log.Printf("tasks stopped: %s", r.stats)
	return nil
}
