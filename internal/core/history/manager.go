package history

import (
	"github.com/sceneforge/sceneforge/internal/core/observability/log"
	"github.com/sceneforge/sceneforge/pkg/sequence"
)

// Manager is the dual-stack undo/redo controller. It owns the commands in
// its stacks outright: a command lives on exactly one stack at a time and
// is dropped when the redo branch is cleared or the manager is.
//
// History stays linear: submitting a new command empties the redo stack, so
// no redo survives a divergent branch.
type Manager struct {
	undo   *sequence.Stack[Command]
	redo   *sequence.Stack[Command]
	logger log.Log
}

func NewManager(logger log.Log) *Manager {
	if logger == nil {
		logger = log.NewNop()
	}
	return &Manager{
		undo:   sequence.NewStack[Command](),
		redo:   sequence.NewStack[Command](),
		logger: logger.With(log.String("component", "history")),
	}
}

// Submit executes the command synchronously, records it on the undo stack
// and clears the redo stack. The command's error is returned for reporting;
// the command is recorded either way so history stays consistent with what
// was attempted.
func (m *Manager) Submit(cmd Command) error {
	err := cmd.Execute()
	m.undo.Push(cmd)
	m.redo.Clear()
	if err != nil {
		m.logger.Error("Command execute failed",
			log.String("command", cmd.Name()),
			log.Error(err))
	} else {
		m.logger.Debug("Command executed", log.String("command", cmd.Name()))
	}
	return err
}

// Undo reverts the most recent command. A no-op when there is nothing to
// undo. A failing revert is logged and reported but the command still moves
// to the redo stack.
func (m *Manager) Undo() error {
	cmd, ok := m.undo.Pop()
	if !ok {
		return nil
	}
	err := cmd.Undo()
	m.redo.Push(cmd)
	if err != nil {
		m.logger.Error("Undo failed",
			log.String("command", cmd.Name()),
			log.Error(err))
	} else {
		m.logger.Debug("Command undone", log.String("command", cmd.Name()))
	}
	return err
}

// Redo re-applies the most recently undone command. A no-op when the redo
// stack is empty.
func (m *Manager) Redo() error {
	cmd, ok := m.redo.Pop()
	if !ok {
		return nil
	}
	err := cmd.Redo()
	m.undo.Push(cmd)
	if err != nil {
		m.logger.Error("Redo failed",
			log.String("command", cmd.Name()),
			log.Error(err))
	} else {
		m.logger.Debug("Command redone", log.String("command", cmd.Name()))
	}
	return err
}

func (m *Manager) CanUndo() bool {
	return !m.undo.IsEmpty()
}

func (m *Manager) CanRedo() bool {
	return !m.redo.IsEmpty()
}

func (m *Manager) UndoLen() int {
	return m.undo.Len()
}

func (m *Manager) RedoLen() int {
	return m.redo.Len()
}

// PeekUndoName returns the label of the command Undo would revert, for the
// edit menu.
func (m *Manager) PeekUndoName() (string, bool) {
	cmd, ok := m.undo.Peek()
	if !ok {
		return "", false
	}
	return cmd.Name(), true
}

// PeekRedoName returns the label of the command Redo would re-apply.
func (m *Manager) PeekRedoName() (string, bool) {
	cmd, ok := m.redo.Peek()
	if !ok {
		return "", false
	}
	return cmd.Name(), true
}

// Clear drops both stacks. Called on scene switch.
func (m *Manager) Clear() {
	m.undo.Clear()
	m.redo.Clear()
}
