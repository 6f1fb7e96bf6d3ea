// Package history provides undo/redo over a document's delta log.
//
// A History subscribes to the document's change notifications and records
// every applied delta. Each recorded unit, either a single delta or a
// group opened with BeginGroup, can be undone by reverting its deltas in
// reverse order and redone by reapplying them forward.
//
// Like the document itself, a History is not internally synchronized;
// callers serialize access externally.
package history

import (
	"errors"

	"github.com/dshills/textdoc/internal/document"
	"github.com/dshills/textdoc/internal/event"
)

// Errors returned by history operations.
var (
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
)

// defaultMaxEntries bounds the undo stack depth.
const defaultMaxEntries = 1000

// History records deltas applied to a document and replays them for
// undo/redo.
type History struct {
	doc *document.Document
	sub event.Subscription

	undoStack [][]document.Delta
	redoStack [][]document.Delta

	grouping bool
	group    []document.Delta

	// replaying suppresses recording while the history itself is
	// mutating the document.
	replaying bool

	maxEntries int
}

// New creates a history attached to doc's change notifications.
func New(doc *document.Document) *History {
	h := &History{
		doc:        doc,
		maxEntries: defaultMaxEntries,
	}
	h.sub = doc.OnChange(h.record)
	return h
}

// Detach stops recording. Existing undo/redo state remains usable.
func (h *History) Detach() {
	h.sub.Cancel()
}

func (h *History) record(delta document.Delta) {
	if h.replaying {
		return
	}
	delta = delta.Clone()
	if h.grouping {
		h.group = append(h.group, delta)
		return
	}
	h.push([]document.Delta{delta})
}

func (h *History) push(deltas []document.Delta) {
	h.undoStack = append(h.undoStack, deltas)
	h.redoStack = nil
	if len(h.undoStack) > h.maxEntries {
		excess := len(h.undoStack) - h.maxEntries
		h.undoStack = h.undoStack[excess:]
	}
}

// BeginGroup starts combining subsequent deltas into one undo unit.
// Nested calls are ignored.
func (h *History) BeginGroup() {
	if h.grouping {
		return
	}
	h.grouping = true
	h.group = nil
}

// EndGroup closes the current group and pushes it as a single undo unit.
// An empty group pushes nothing.
func (h *History) EndGroup() {
	if !h.grouping {
		return
	}
	h.grouping = false
	if len(h.group) == 0 {
		return
	}
	h.push(h.group)
	h.group = nil
}

// Undo reverts the most recent undo unit, restoring the document state
// that preceded it.
func (h *History) Undo() error {
	if len(h.undoStack) == 0 {
		return ErrNothingToUndo
	}
	deltas := h.undoStack[len(h.undoStack)-1]
	h.undoStack = h.undoStack[:len(h.undoStack)-1]

	h.replaying = true
	err := h.doc.RevertDeltas(deltas)
	h.replaying = false
	if err != nil {
		h.undoStack = append(h.undoStack, deltas)
		return err
	}

	h.redoStack = append(h.redoStack, deltas)
	return nil
}

// Redo reapplies the most recently undone unit.
func (h *History) Redo() error {
	if len(h.redoStack) == 0 {
		return ErrNothingToRedo
	}
	deltas := h.redoStack[len(h.redoStack)-1]
	h.redoStack = h.redoStack[:len(h.redoStack)-1]

	h.replaying = true
	err := h.doc.ApplyDeltas(deltas)
	h.replaying = false
	if err != nil {
		h.redoStack = append(h.redoStack, deltas)
		return err
	}

	h.undoStack = append(h.undoStack, deltas)
	return nil
}

// CanUndo returns true if undo is available.
func (h *History) CanUndo() bool {
	return len(h.undoStack) > 0
}

// CanRedo returns true if redo is available.
func (h *History) CanRedo() bool {
	return len(h.redoStack) > 0
}

// UndoCount returns the number of undo units available.
func (h *History) UndoCount() int {
	return len(h.undoStack)
}

// RedoCount returns the number of redo units available.
func (h *History) RedoCount() int {
	return len(h.redoStack)
}

// Clear removes all undo/redo state.
func (h *History) Clear() {
	h.undoStack = nil
	h.redoStack = nil
	h.grouping = false
	h.group = nil
}

// SetMaxEntries changes the undo depth bound, trimming the oldest
// entries if the stack is already deeper.
func (h *History) SetMaxEntries(max int) {
	if max <= 0 {
		max = defaultMaxEntries
	}
	h.maxEntries = max
	if len(h.undoStack) > max {
		excess := len(h.undoStack) - max
		h.undoStack = h.undoStack[excess:]
	}
}
