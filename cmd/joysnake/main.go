// Command joysnake runs the snake game on a desktop stand-in for the board:
// a terminal or a window for the LCD and keys, a gamepad or the autopilot
// for the joystick.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"joysnake/buzzer"
	"joysnake/driver/term"
	"joysnake/driver/window"
	"joysnake/game"
	"joysnake/lcd"
	"joysnake/sensor"
	"joysnake/task"
)

func main() {
	opts, err := parseOptions(os.Args[1:], os.Getenv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "joysnake: %v\n", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts); err != nil {
		log.Printf("exiting: %v", err)
		fmt.Fprintf(os.Stderr, "joysnake: %v\n", err)
		os.Exit(1)
	}
}

// host is everything the tasks need that does not depend on the backend.
type host struct {
	session uuid.UUID
	events  *game.EventBus
	engine  *game.Engine
	feed    *game.Feed
	random  game.Random
}

// run sets up logging and the engine, then runs the chosen backend.
func run(ctx context.Context, opts options) error {
	if opts.backend != "window" {
		f, err := os.OpenFile(opts.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	h := &host{
		session: uuid.New(),
		events:  game.NewEventBus(),
		feed:    &game.Feed{},
	}
	log.Printf("session %s starting (backend %s)", h.session, opts.backend)

	subscribeLogging(h.events)
	if opts.sound {
		bz, err := buzzer.New()
		if err != nil {
			log.Printf("sound disabled: %v", err)
		} else {
			defer bz.Close()
			h.events.Subscribe(game.EventFruitEaten, bz.Handle)
			h.events.Subscribe(game.EventCollision, bz.Handle)
		}
	}

	if opts.seed != 0 {
		h.random = game.NewRand(opts.seed)
		log.Printf("fruit seed %d", opts.seed)
	}
	h.engine = game.NewEngine(h.events)

	var err error
	switch opts.backend {
	case "window":
		err = runWindow(ctx, h, opts.scale)
	default:
		err = runTerminal(ctx, h, opts.backend == "demo")
	}
	log.Printf("session %s finished after %d rounds", h.session, h.engine.Rounds())
	return err
}

// subscribeLogging logs round starts, fruit and collisions.
func subscribeLogging(events *game.EventBus) {
	events.Subscribe(game.EventRoundStart, func(e game.Event) {
		log.Printf("round %s started", e.Round)
	})
	events.Subscribe(game.EventFruitEaten, func(e game.Event) {
		log.Printf("round %s fruit eaten at %s, length %d", e.Round, e.Head, e.Length)
	})
	events.Subscribe(game.EventCollision, func(e game.Event) {
		log.Printf("round %s ended: collision at %s, length %d", e.Round, e.Head, e.Length)
	})
}

// runTerminal runs the game on the terminal until quit, ctx or a fault.
func runTerminal(ctx context.Context, h *host, demo bool) error {
	screen, err := term.Open()
	if err != nil {
		return err
	}
	defer screen.Fini()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	stick := sensor.NewStick(StickHold)
	var s sensor.Sensor = stick
	if demo {
		s = sensor.NewAutopilot(h.feed)
	}
	go func() {
		if term.Keys(screen, stick) {
			log.Printf("quit requested")
			cancel()
		}
	}()

	gate := lcd.NewGate(term.NewDisplay(screen))
	err = runTasks(ctx, h, gate, s)
	holdFault(ctx, err)
	return err
}

// holdFault keeps a fault on the panel for FaultHold so it can be read
// before the screen goes away. Quitting cuts the wait short.
func holdFault(ctx context.Context, err error) {
	if !errors.Is(err, task.ErrFault) {
		return
	}
	select {
	case <-ctx.Done():
	case <-time.After(FaultHold):
	}
}

// runWindow runs the tasks in the background and the window on the calling goroutine.
func runWindow(ctx context.Context, h *host, scale int) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	display := window.NewDisplay()
	stick := sensor.NewStick(0)
	gate := lcd.NewGate(display)

	errc := make(chan error, 1)
	go func() {
		err := runTasks(ctx, h, gate, stick)
		cancel() // closes the window after a fault
		errc <- err
	}()

	// ebiten must own the main goroutine.
	werr := window.Run(ctx, display, stick, scale)
	cancel()
	if err := <-errc; err != nil {
		return err
	}
	return werr
}

// runTasks shows the banner and runs the game until ctx is done or a task
// faults. A fault is written to the panel and returned.
func runTasks(ctx context.Context, h *host, gate *lcd.Gate, s sensor.Sensor) error {
	if err := banner(ctx, gate, h.session); err != nil {
		log.Printf("banner: %v", err)
	}

	runner := task.NewRunner(task.Config{
		Engine: h.engine,
		Gate:   gate,
		Sensor: s,
		Feed:   h.feed,
		Random: h.random,
		OnFault: func(err error) {
			gate.Clear()
			_ = gate.Display(0, "FAULT")
			_ = gate.Display(1, err.Error())
		},
	})
	return runner.Run(ctx)
}

// banner shows the name and session for BannerTime.
func banner(ctx context.Context, gate *lcd.Gate, session uuid.UUID) error {
	gate.Clear()
	if err := gate.Display(0, "joysnake"); err != nil {
		return err
	}
	if err := gate.Display(1, session.String()[:8]); err != nil {
		return err
	}
	select {
	case <-ctx.Done():
	case <-time.After(BannerTime):
	}
	return nil
}
