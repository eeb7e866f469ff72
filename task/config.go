package task

import "time"

// Task periods.
const (
	ControlPeriod = 20 * time.Millisecond  // motion controller tick
	SamplePeriod  = 100 * time.Millisecond // joystick sampling
	SpawnPeriod   = 30 * time.Millisecond  // fruit spawner check
)

// Spec describes one periodic task. Priority and StackSize are the values the
// target scheduler is configured with; goroutines on a desktop host ignore them.
type Spec struct {
	Name      string
	Period    time.Duration
	Priority  int // higher runs first
	StackSize int // bytes
}

// Task table.
var (
	ControllerSpec = Spec{Name: "controller", Period: ControlPeriod, Priority: 4, StackSize: 2048}
	SamplerSpec    = Spec{Name: "sampler", Period: SamplePeriod, Priority: 3, StackSize: 512}
	SpawnerSpec    = Spec{Name: "spawner", Period: SpawnPeriod, Priority: 3, StackSize: 512}
)
