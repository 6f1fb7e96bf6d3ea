package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/textdoc/internal/document"
)

func TestUndoRestoresPriorValue(t *testing.T) {
	doc := document.New("hello")
	h := New(doc)

	_, err := doc.Insert(document.Position{Row: 0, Column: 5}, " world")
	require.NoError(t, err)
	require.Equal(t, "hello world", doc.Value())

	require.NoError(t, h.Undo())
	assert.Equal(t, "hello", doc.Value())
}

func TestRedoReappliesUndoneEdit(t *testing.T) {
	doc := document.New("hello")
	h := New(doc)

	_, err := doc.Insert(document.Position{Row: 0, Column: 5}, " world")
	require.NoError(t, err)

	require.NoError(t, h.Undo())
	require.NoError(t, h.Redo())
	assert.Equal(t, "hello world", doc.Value())
}

func TestUndoEmptyStack(t *testing.T) {
	h := New(document.New(""))
	assert.ErrorIs(t, h.Undo(), ErrNothingToUndo)
	assert.ErrorIs(t, h.Redo(), ErrNothingToRedo)
}

func TestUndoSequence(t *testing.T) {
	doc := document.New("")
	h := New(doc)

	require.NoError(t, doc.SetValue("one"))
	_, err := doc.Insert(document.Position{Row: 0, Column: 3}, "\ntwo")
	require.NoError(t, err)
	require.Equal(t, "one\ntwo", doc.Value())

	// Each mutation is its own unit; unwind them all.
	for h.CanUndo() {
		require.NoError(t, h.Undo())
	}
	assert.Equal(t, "", doc.Value())

	for h.CanRedo() {
		require.NoError(t, h.Redo())
	}
	assert.Equal(t, "one\ntwo", doc.Value())
}

func TestGroupUndoneAsOneUnit(t *testing.T) {
	doc := document.New("base")
	h := New(doc)

	h.BeginGroup()
	_, err := doc.Insert(document.Position{Row: 0, Column: 4}, "-a")
	require.NoError(t, err)
	_, err = doc.Insert(document.Position{Row: 0, Column: 6}, "-b")
	require.NoError(t, err)
	h.EndGroup()

	require.Equal(t, "base-a-b", doc.Value())
	require.Equal(t, 1, h.UndoCount())

	require.NoError(t, h.Undo())
	assert.Equal(t, "base", doc.Value())
}

func TestEmptyGroupPushesNothing(t *testing.T) {
	doc := document.New("x")
	h := New(doc)

	h.BeginGroup()
	h.EndGroup()
	assert.False(t, h.CanUndo())
}

func TestNewEditClearsRedo(t *testing.T) {
	doc := document.New("a")
	h := New(doc)

	_, err := doc.Insert(document.Position{Row: 0, Column: 1}, "b")
	require.NoError(t, err)
	require.NoError(t, h.Undo())
	require.True(t, h.CanRedo())

	_, err = doc.Insert(document.Position{Row: 0, Column: 1}, "c")
	require.NoError(t, err)
	assert.False(t, h.CanRedo())
}

func TestUndoDoesNotRecordItself(t *testing.T) {
	doc := document.New("a")
	h := New(doc)

	_, err := doc.Insert(document.Position{Row: 0, Column: 1}, "b")
	require.NoError(t, err)
	require.Equal(t, 1, h.UndoCount())

	require.NoError(t, h.Undo())
	// The revert's own change notification must not land on the stack.
	assert.Equal(t, 0, h.UndoCount())
	assert.Equal(t, 1, h.RedoCount())
}

func TestDetachStopsRecording(t *testing.T) {
	doc := document.New("a")
	h := New(doc)
	h.Detach()

	_, err := doc.Insert(document.Position{Row: 0, Column: 1}, "b")
	require.NoError(t, err)
	assert.False(t, h.CanUndo())
}

func TestChunkedInsertUndoneAsRecorded(t *testing.T) {
	doc := document.New("headtail")
	h := New(doc)

	h.BeginGroup()
	lines := make([]string, 25000)
	for i := range lines {
		lines[i] = "x"
	}
	_, err := doc.InsertMergedLines(document.Position{Row: 0, Column: 4}, lines)
	require.NoError(t, err)
	h.EndGroup()

	require.Equal(t, 25000, doc.LineCount())
	require.Equal(t, 1, h.UndoCount())

	require.NoError(t, h.Undo())
	assert.Equal(t, "headtail", doc.Value())

	require.NoError(t, h.Redo())
	assert.Equal(t, 25000, doc.LineCount())
}

func TestMaxEntriesTrimsOldest(t *testing.T) {
	doc := document.New("")
	h := New(doc)
	h.SetMaxEntries(2)

	for i := 0; i < 5; i++ {
		_, err := doc.Insert(document.Position{Row: 0, Column: 0}, "x")
		require.NoError(t, err)
	}
	assert.Equal(t, 2, h.UndoCount())
}

func TestClear(t *testing.T) {
	doc := document.New("")
	h := New(doc)

	_, err := doc.Insert(document.Position{Row: 0, Column: 0}, "x")
	require.NoError(t, err)
	require.True(t, h.CanUndo())

	h.Clear()
	assert.False(t, h.CanUndo())
	assert.False(t, h.CanRedo())
}
