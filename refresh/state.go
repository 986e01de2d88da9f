package refresh

// State is the refresh controller's lifecycle state
type State int

const (
	StateIdle State = iota
	StateLoading
	// StateSuccess: the last tick applied a fresh snapshot
	StateSuccess
	// StateDegraded: the last tick failed but an earlier snapshot is still
	// on screen
	StateDegraded
	// StateFailed: a tick failed and no snapshot was ever loaded; blocking,
	// cleared only by a successful retry
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateSuccess:
		return "success"
	case StateDegraded:
		return "degraded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Status is the controller state exposed to the presentation boundary
type Status struct {
	State State `json:"state"`
	// Notice is a transient, auto-dismissing message shown while degraded
	Notice string `json:"notice,omitempty"`
	// Error is the blocking error detail, set only in the failed state
	Error string `json:"error,omitempty"`
}
