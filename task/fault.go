package task

import (
	"errors"
	"fmt"
	"log"
	"runtime/debug"
)

// ErrFault is matched by every error a task panic is turned into.
var ErrFault = errors.New("task fault")

// Fault records a panic in one task.
type Fault struct {
	Task  string
	Value any
	Stack []byte
}

// Error names the task and the panic value.
func (f *Fault) Error() string {
	return fmt.Sprintf("%v: %s: %v", ErrFault, f.Task, f.Value)
}

// Unwrap makes every Fault match ErrFault.
func (f *Fault) Unwrap() error { return ErrFault }

// recoverFault converts a panic in the calling goroutine into a Fault and
// hands it to stop. It must be deferred directly.
func recoverFault(task string, stop func(error)) {
	r := recover()
	if r == nil {
		return
	}
	f := &Fault{Task: task, Value: r, Stack: debug.Stack()}
	log.Printf("task %s crashed: %v\n%s", task, r, f.Stack)
	stop(f)
}
