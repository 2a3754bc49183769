package swe

// LifecycleState is the phase of the process-wide library state. Phases only
// move forward: Unconfigured, then Ready, then Closed.
type LifecycleState int32

const (
	Unconfigured LifecycleState = iota
	Ready
	Closed
)

func (s LifecycleState) String() string {
	switch s {
	case Unconfigured:
		return "unconfigured"
	case Ready:
		return "ready"
	case Closed:
		return "closed"
	default:
		return "unknown"
	}
}
