package sensor

import (
	"sync"
	"time"
)

// Stick is a latched two-axis input fed by keyboard or gamepad handlers and
// read by the sampler. With a non-zero hold it springs back to center that
// long after the last Set, which stands in for key-release events terminals
// do not report.
type Stick struct {
	mu    sync.Mutex // protects x, y and set
	x, y  float64
	set   time.Time
	hold  time.Duration
	clock func() time.Time
}

// NewStick creates a centered stick. hold of zero keeps the last deflection.
func NewStick(hold time.Duration) *Stick {
	return &Stick{hold: hold, clock: time.Now}
}

// Set latches a deflection. x is positive to the right, y positive upward.
func (s *Stick) Set(x, y float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.x, s.y = x, y
	s.set = s.clock()
}

// Center releases the stick.
func (s *Stick) Center() {
	s.Set(0, 0)
}

// Position returns the current deflection after spring return.
func (s *Stick) Position() (x, y float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.hold > 0 && s.clock().Sub(s.set) >= s.hold {
		return 0, 0
	}
	return s.x, s.y
}

// Read implements Sensor.
func (s *Stick) Read(ch Channel) (uint16, error) {
	x, y := s.Position()
	switch ch {
	case ChannelY:
		return Raw(y), nil
	case ChannelX:
		return Raw(x), nil
	default:
		return 0, ErrUnavailable
	}
}
