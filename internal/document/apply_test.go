package document

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func insertDelta(start, end Position, lines ...string) Delta {
	return Delta{Start: start, End: end, Action: ActionInsert, Lines: lines}
}

func removeDelta(start, end Position, lines ...string) Delta {
	return Delta{Start: start, End: end, Action: ActionRemove, Lines: lines}
}

func TestApplyDeltaInsert(t *testing.T) {
	d := New("ab")

	err := d.ApplyDelta(insertDelta(Position{0, 1}, Position{1, 1}, "X", "Y"))
	require.NoError(t, err)
	assert.Equal(t, []string{"aX", "Yb"}, d.AllLines())
}

func TestApplyDeltaRemove(t *testing.T) {
	d := NewFromLines([]string{"aX", "Yb"})

	err := d.ApplyDelta(removeDelta(Position{0, 1}, Position{1, 1}, "X", "Y"))
	require.NoError(t, err)
	assert.Equal(t, []string{"ab"}, d.AllLines())
}

func TestApplyDeltaNoOpInsert(t *testing.T) {
	d := New("ab")

	notified := 0
	d.OnChange(func(Delta) { notified++ })

	err := d.ApplyDelta(insertDelta(Position{0, 0}, Position{0, 0}, ""))
	require.NoError(t, err)
	assert.Equal(t, 0, notified)
	assert.Equal(t, "ab", d.Value())
}

func TestApplyDeltaNoOpRemove(t *testing.T) {
	d := New("ab")

	notified := 0
	d.OnChange(func(Delta) { notified++ })

	err := d.ApplyDelta(removeDelta(Position{0, 1}, Position{0, 1}, ""))
	require.NoError(t, err)
	assert.Equal(t, 0, notified)
}

func TestApplyDeltaValidation(t *testing.T) {
	tests := []struct {
		name  string
		delta Delta
	}{
		{"start out of document", insertDelta(Position{5, 0}, Position{5, 1}, "x")},
		{"start column past line end", insertDelta(Position{0, 9}, Position{0, 10}, "x")},
		{"remove end out of document", removeDelta(Position{0, 0}, Position{7, 0}, "ab", "")},
		{"row span mismatch", insertDelta(Position{0, 0}, Position{2, 0}, "x")},
		{"last line length mismatch", insertDelta(Position{0, 0}, Position{0, 5}, "x")},
		{"missing lines", Delta{Start: Position{0, 0}, End: Position{0, 1}, Action: ActionRemove}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := New("ab")
			err := d.ApplyDelta(tt.delta)
			assert.ErrorIs(t, err, ErrInvalidDelta)
			assert.Equal(t, "ab", d.Value())
		})
	}
}

func TestRevertDeltaRestoresValue(t *testing.T) {
	d := New("hello\nworld")
	before := d.Value()

	var applied []Delta
	d.OnChange(func(delta Delta) { applied = append(applied, delta.Clone()) })

	_, err := d.Insert(Position{Row: 0, Column: 5}, " there\nbig")
	require.NoError(t, err)
	require.Len(t, applied, 1)
	require.NotEqual(t, before, d.Value())

	require.NoError(t, d.RevertDelta(applied[0]))
	assert.Equal(t, before, d.Value())
}

func TestRevertDeltaRemoveRestoresValue(t *testing.T) {
	d := NewFromLines([]string{"abc", "def", "ghi"})
	before := d.Value()

	var applied []Delta
	d.OnChange(func(delta Delta) { applied = append(applied, delta.Clone()) })

	_, err := d.Remove(NewRange(0, 2, 2, 1))
	require.NoError(t, err)

	require.NoError(t, d.RevertDelta(applied[0]))
	assert.Equal(t, before, d.Value())
}

func TestRevertDeltasReverseOrder(t *testing.T) {
	d := New("base")
	before := d.Value()

	var applied []Delta
	d.OnChange(func(delta Delta) { applied = append(applied, delta.Clone()) })

	_, err := d.Insert(Position{Row: 0, Column: 4}, "\nsecond")
	require.NoError(t, err)
	_, err = d.Insert(Position{Row: 1, Column: 6}, "\nthird")
	require.NoError(t, err)
	_, err = d.Remove(NewRange(0, 0, 0, 2))
	require.NoError(t, err)
	require.Len(t, applied, 3)

	require.NoError(t, d.RevertDeltas(applied))
	assert.Equal(t, before, d.Value())
}

func TestSafeApplyDiscardsStaleRevert(t *testing.T) {
	d := NewFromLines([]string{"a", "b", "c", "d", "e"})

	var applied []Delta
	sub := d.OnChange(func(delta Delta) { applied = append(applied, delta.Clone()) })

	_, err := d.Remove(NewRange(3, 0, 4, 1))
	require.NoError(t, err)
	require.Len(t, applied, 1)
	sub.Cancel()

	// Structural edit shrinks the document below the recorded bounds.
	require.NoError(t, d.SetValue("x"))
	require.Equal(t, 1, d.LineCount())

	// The recorded remove inverts to an insert at row 3, past the
	// current document: silently discarded, no error, no mutation.
	require.NoError(t, d.RevertDelta(applied[0]))
	assert.Equal(t, "x", d.Value())
}

func TestSafeApplyStaleInsertRevert(t *testing.T) {
	d := New("x")

	// Reverting an insert whose rows exceed the current document is a
	// remove over rows that no longer exist: discarded, no error.
	stale := insertDelta(Position{4, 0}, Position{5, 1}, "a", "bc")
	require.NoError(t, d.RevertDelta(stale))
	assert.Equal(t, "x", d.Value())
}

func TestApplyDeltasIndependent(t *testing.T) {
	d := New("ab")

	deltas := []Delta{
		insertDelta(Position{0, 1}, Position{0, 2}, "X"),
		insertDelta(Position{9, 0}, Position{9, 1}, "Y"), // invalid
	}
	err := d.ApplyDeltas(deltas)
	assert.ErrorIs(t, err, ErrInvalidDelta)
	// The first delta stays applied: no cross-delta rollback.
	assert.Equal(t, "aXb", d.Value())
}

func TestChunkedInsertEquivalence(t *testing.T) {
	const n = 45000 // > 2x the chunk limit, exercises multiple windows

	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("line-%d", i)
	}

	d := New("headtail")

	var emitted []Delta
	d.OnChange(func(delta Delta) { emitted = append(emitted, delta.Clone()) })

	err := d.ApplyDelta(insertDelta(
		Position{0, 4},
		Position{n - 1, len(lines[n-1])},
		lines...,
	))
	require.NoError(t, err)

	// Multiple physical splices, none above the limit.
	require.Greater(t, len(emitted), 1)
	for _, delta := range emitted {
		assert.LessOrEqual(t, len(delta.Lines), insertChunkLimit)
	}

	// Final content is identical to a hypothetical single splice.
	require.Equal(t, n, d.LineCount())
	assert.Equal(t, "head"+lines[0], d.Line(0))
	assert.Equal(t, lines[1], d.Line(1))
	assert.Equal(t, lines[n/2], d.Line(n/2))
	assert.Equal(t, lines[n-1]+"tail", d.Line(n-1))

	want := "head" + strings.Join(lines, "\n") + "tail"
	assert.Equal(t, want, d.Value())
}

func TestChunkWindowGeometry(t *testing.T) {
	// Drive the splitter directly with a small window to check the
	// emitted sub-delta geometry.
	d := New("ab")

	var emitted []Delta
	d.OnChange(func(delta Delta) { emitted = append(emitted, delta.Clone()) })

	lines := []string{"l0", "l1", "l2", "l3", "l4", "l5", "l6"}
	err := d.applyLargeDelta(insertDelta(
		Position{0, 1},
		Position{6, 2},
		lines...,
	), 4)
	require.NoError(t, err)

	// Windows advance by max-1 = 3 lines: [0,3), [3,6), tail [6,7).
	require.Len(t, emitted, 3)

	first := emitted[0]
	assert.Equal(t, Position{0, 1}, first.Start)
	assert.Equal(t, Position{3, 0}, first.End)
	assert.Equal(t, []string{"l0", "l1", "l2", ""}, first.Lines)

	second := emitted[1]
	assert.Equal(t, Position{3, 0}, second.Start)
	assert.Equal(t, Position{6, 0}, second.End)
	assert.Equal(t, []string{"l3", "l4", "l5", ""}, second.Lines)

	tail := emitted[2]
	assert.Equal(t, Position{6, 0}, tail.Start)
	assert.Equal(t, []string{"l6"}, tail.Lines)

	assert.Equal(t, []string{"al0", "l1", "l2", "l3", "l4", "l5", "l6b"}, d.AllLines())
}

func TestChunkedInsertRevert(t *testing.T) {
	d := New("ab")
	before := d.Value()

	var emitted []Delta
	d.OnChange(func(delta Delta) { emitted = append(emitted, delta.Clone()) })

	lines := []string{"l0", "l1", "l2", "l3", "l4"}
	require.NoError(t, d.applyLargeDelta(insertDelta(
		Position{0, 1},
		Position{4, 2},
		lines...,
	), 3))

	require.NoError(t, d.RevertDeltas(emitted))
	assert.Equal(t, before, d.Value())
}

func TestOversizedRemoveNotChunked(t *testing.T) {
	n := insertChunkLimit + 100
	lines := make([]string, n)
	for i := range lines {
		lines[i] = "x"
	}
	d := NewFromLines(lines)

	notified := 0
	d.OnChange(func(Delta) { notified++ })

	_, err := d.Remove(NewRange(0, 0, n-1, 1))
	require.NoError(t, err)
	// One physical splice regardless of size.
	assert.Equal(t, 1, notified)
	assert.Equal(t, 1, d.LineCount())
}
