// Package history provides a bounded undo/redo stack over reversible store
// operations. A History is a plain value owned by its caller, not process
// state; the store itself stays stateless between calls.
package history

import "context"

// Command is a reversible action. Undo after Execute must restore the
// observable state, but identifiers are not stable across the round-trip:
// re-inserting an undone row assigns a fresh id.
type Command interface {
	Execute(ctx context.Context) error
	Undo(ctx context.Context) error
	Description() string
}

const defaultLimit = 50

type History struct {
	undo  []Command
	redo  []Command
	limit int
}

func New(limit int) *History {
	if limit <= 0 {
		limit = defaultLimit
	}
	return &History{limit: limit}
}

// Do executes the command and records it. A new action invalidates any redo
// chain. The oldest entry falls off once the limit is reached.
func (h *History) Do(ctx context.Context, cmd Command) error {
	if err := cmd.Execute(ctx); err != nil {
		return err
	}
	h.undo = append(h.undo, cmd)
	h.redo = h.redo[:0]
	if len(h.undo) > h.limit {
		h.undo = h.undo[1:]
	}
	return nil
}

// Undo reverses the most recent command. It returns false when there is
// nothing to undo.
func (h *History) Undo(ctx context.Context) (bool, error) {
	if len(h.undo) == 0 {
		return false, nil
	}
	cmd := h.undo[len(h.undo)-1]
	if err := cmd.Undo(ctx); err != nil {
		return false, err
	}
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append(h.redo, cmd)
	return true, nil
}

// Redo re-applies the most recently undone command.
func (h *History) Redo(ctx context.Context) (bool, error) {
	if len(h.redo) == 0 {
		return false, nil
	}
	cmd := h.redo[len(h.redo)-1]
	if err := cmd.Execute(ctx); err != nil {
		return false, err
	}
	h.redo = h.redo[:len(h.redo)-1]
	h.undo = append(h.undo, cmd)
	return true, nil
}

func (h *History) CanUndo() bool { return len(h.undo) > 0 }
func (h *History) CanRedo() bool { return len(h.redo) > 0 }
