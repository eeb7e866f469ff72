package task

// Mailbox is a single-slot channel. Neither side ever blocks: a post into an
// occupied slot is dropped and a poll of an empty slot returns false.
type Mailbox[T any] struct {
	ch chan T
}

// NewMailbox creates an empty mailbox.
func NewMailbox[T any]() *Mailbox[T] {
	return &Mailbox[T]{ch: make(chan T, 1)}
}

// Post stores v if the slot is free and reports whether it did.
func (m *Mailbox[T]) Post(v T) bool {
	select {
	case m.ch <- v:
		return true
	default:
		return false
	}
}

// Poll takes the pending value, if any.
func (m *Mailbox[T]) Poll() (T, bool) {
	select {
	case v := <-m.ch:
		return v, true
	default:
		var zero T
		return zero, false
	}
}
