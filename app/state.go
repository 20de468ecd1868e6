package app

// State is the lifecycle stage of an Application.
// Transitions only move forward:
//
//	Created -> Initialized -> Running -> Terminated
type State int32

const (
	// StateCreated is the state of a freshly constructed backend.
	StateCreated State = iota
	// StateInitialized follows a successful Setup.
	StateInitialized
	// StateRunning is held for the duration of Loop.
	StateRunning
	// StateTerminated is entered when Loop returns.
	StateTerminated
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateCreated:
		return "Created"
	case StateInitialized:
		return "Initialized"
	case StateRunning:
		return "Running"
	case StateTerminated:
		return "Terminated"
	default:
		return "Unknown"
	}
}
