package history

// Command is one user-visible, reversible edit. A command is immutable
// after construction apart from the state it records during Execute; it
// holds weak references to its targets and re-resolves them at call time,
// since undo and redo can outlive entity destruction.
//
// The manager drives the state machine: Execute exactly once at submission,
// then alternating Undo and Redo.
type Command interface {
	// Name is the human-readable label shown in the edit menu.
	Name() string

	Execute() error
	Undo() error
	Redo() error
}
