package ui

import "github.com/piwi3910/PanelCut/internal/model"

const defaultMaxDepth = 50

// Snapshot captures the form inputs at a point in time.
type Snapshot struct {
	Name  string
	Spec  model.PanelSpec
	Label string // Human-readable description (e.g. "Change Top Condition")
}

// History manages undo/redo stacks of input snapshots.
type History struct {
	undoStack []Snapshot
	redoStack []Snapshot
	maxDepth  int
}

// NewHistory creates a History with the default max depth of 50.
func NewHistory() *History {
	return &History{
		maxDepth: defaultMaxDepth,
	}
}

// Push saves a snapshot onto the undo stack and clears the redo stack.
// Call it before the change is applied. A snapshot equal to the top of the
// stack is ignored so repeated recalculations do not fill the history.
func (h *History) Push(s Snapshot) {
	if n := len(h.undoStack); n > 0 && h.undoStack[n-1].Spec == s.Spec && h.undoStack[n-1].Name == s.Name {
		return
	}
	h.undoStack = append(h.undoStack, s)
	if len(h.undoStack) > h.maxDepth {
		h.undoStack = h.undoStack[len(h.undoStack)-h.maxDepth:]
	}
	h.redoStack = nil
}

// Undo pops the most recent snapshot and pushes current onto the redo stack.
// It returns false if there is nothing to undo.
func (h *History) Undo(current Snapshot) (Snapshot, bool) {
	if len(h.undoStack) == 0 {
		return Snapshot{}, false
	}
	last := h.undoStack[len(h.undoStack)-1]
	h.undoStack = h.undoStack[:len(h.undoStack)-1]
	h.redoStack = append(h.redoStack, current)
	return last, true
}

// Redo pops the most recent snapshot from the redo stack and pushes current
// onto the undo stack. It returns false if there is nothing to redo.
func (h *History) Redo(current Snapshot) (Snapshot, bool) {
	if len(h.redoStack) == 0 {
		return Snapshot{}, false
	}
	last := h.redoStack[len(h.redoStack)-1]
	h.redoStack = h.redoStack[:len(h.redoStack)-1]
	h.undoStack = append(h.undoStack, current)
	return last, true
}

func (h *History) CanUndo() bool {
	return len(h.undoStack) > 0
}

func (h *History) CanRedo() bool {
	return len(h.redoStack) > 0
}

// Clear removes all undo and redo history.
func (h *History) Clear() {
	h.undoStack = nil
	h.redoStack = nil
}

// MakeSnapshot captures a job's name and inputs with a label.
func MakeSnapshot(job model.Job, label string) Snapshot {
	return Snapshot{Name: job.Name, Spec: job.Spec, Label: label}
}
