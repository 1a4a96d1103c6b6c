package document

// State is the render lifecycle of an Assembler.
type State int

const (
	StateIdle State = iota
	StateRendering
	StateDone
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRendering:
		return "rendering"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// Observer is notified of every state transition, in order, after the
// transition has happened. It must not call Assemble on the Assembler it
// observes.
type Observer func(from, to State)
