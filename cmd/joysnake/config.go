package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"time"
)

// Host defaults
const (
	DefaultBackend = "term"
	DefaultScale   = 4              // window pixels per panel pixel
	DefaultLogFile = "joysnake.log" // terminal backends own stdout, so logs go here
	StickHold      = 150 * time.Millisecond
	BannerTime     = time.Second
	FaultHold      = 3 * time.Second // fault text stays on a terminal panel this long
)

var backends = []string{"term", "window", "demo"}

// options are the host settings after flags and environment.
type options struct {
	backend string
	scale   int
	sound   bool
	logFile string
	seed    int64 // 0 seeds from the clock
}

// parseOptions reads flags, then fills unset values from the environment:
// SNAKE_SEED for the fruit seed and JOYSNAKE_LOG for the log file.
func parseOptions(args []string, getenv func(string) string) (options, error) {
	var opts options
	fs := flag.NewFlagSet("joysnake", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&opts.backend, "backend", DefaultBackend, "display backend: term, window or demo")
	fs.IntVar(&opts.scale, "scale", DefaultScale, "window scale factor")
	fs.BoolVar(&opts.sound, "sound", true, "play tones on the speaker")
	fs.StringVar(&opts.logFile, "log", "", "log file for terminal backends")
	fs.Int64Var(&opts.seed, "seed", 0, "fruit spawner seed")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	if !validBackend(opts.backend) {
		return options{}, fmt.Errorf("unknown backend %q", opts.backend)
	}
	if opts.scale < 1 {
		return options{}, errors.New("scale must be at least 1")
	}

	if opts.logFile == "" {
		opts.logFile = DefaultLogFile
		if env := getenv("JOYSNAKE_LOG"); env != "" {
			opts.logFile = env
		}
	}
	if opts.seed == 0 {
		if s := getenv("SNAKE_SEED"); s != "" {
			v, err := strconv.ParseInt(s, 10, 64)
			if err != nil {
				return options{}, fmt.Errorf("SNAKE_SEED: %w", err)
			}
			opts.seed = v
		}
	}
	return opts, nil
}

// validBackend reports whether name is a known backend.
func validBackend(name string) bool {
	for _, b := range backends {
		if b == name {
			return true
		}
	}
	return false
}
