package drive

// Signal is a single-slot coalescing flag. Raising an already raised
// signal has no effect; consuming clears it. It is safe for concurrent use.
type Signal struct {
	c chan struct{}
}

// NewSignal returns a lowered signal.
func NewSignal() *Signal {
	return &Signal{c: make(chan struct{}, 1)}
}

// Raise sets the signal. It reports false if it was already set.
func (s *Signal) Raise() bool {
	select {
	case s.c <- struct{}{}:
		return true
	default:
		return false
	}
}

// TryConsume clears the signal and reports whether it was set.
func (s *Signal) TryConsume() bool {
	select {
	case <-s.c:
		return true
	default:
		return false
	}
}

// Pending reports whether the signal is set without consuming it.
func (s *Signal) Pending() bool {
	return len(s.c) > 0
}

// C returns a channel that yields once per raise. Receiving from it
// consumes the signal.
func (s *Signal) C() <-chan struct{} {
	return s.c
}
