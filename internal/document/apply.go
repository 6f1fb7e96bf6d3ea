package document

// insertChunkLimit is the largest number of lines a single splice will
// accept for an insert. Bigger inserts are split into bounded sequential
// sub-deltas. Removes are never chunked; the asymmetry is a documented
// contract of ApplyDelta.
const insertChunkLimit = 20000

// ApplyDelta validates and applies a delta, then notifies change
// subscribers with the exact applied delta before returning.
//
// An insert whose Lines is a single empty string and a remove whose start
// equals its end are no-ops: nothing is mutated and nothing is emitted.
// Inserts larger than the chunk limit are applied as several sub-deltas,
// each emitted separately; their concatenated content reproduces the
// original insert exactly.
func (d *Document) ApplyDelta(delta Delta) error {
	return d.applyDelta(delta, false)
}

func (d *Document) applyDelta(delta Delta, skipValidation bool) error {
	if delta.Action == ActionInsert {
		if len(delta.Lines) <= 1 && (len(delta.Lines) == 0 || delta.Lines[0] == "") {
			return nil
		}
		if len(delta.Lines) > insertChunkLimit {
			return d.applyLargeDelta(delta, insertChunkLimit)
		}
	} else if delta.Start.Compare(delta.End) == 0 {
		return nil
	}

	if err := applyToLines(&d.lines, delta, skipValidation); err != nil {
		return err
	}
	d.change.Emit(delta)
	return nil
}

// applyLargeDelta splits an oversized insert into windows of max-1 lines.
// Each window gets a synthetic trailing empty line to terminate its
// partial row; after the first window the column drops to 0. The tail is
// re-applied through applyDelta and is always below the limit. Each
// sub-delta was proven valid as part of the parent, so validation is
// skipped.
func (d *Document) applyLargeDelta(delta Delta, max int) error {
	lines := delta.Lines
	bound := len(lines) - max + 1
	row := delta.Start.Row
	column := delta.Start.Column

	var from, to int
	for ; from < bound; from = to {
		to += max - 1
		chunk := make([]string, 0, max)
		chunk = append(chunk, lines[from:to]...)
		chunk = append(chunk, "")
		err := d.applyDelta(Delta{
			Start:  Position{Row: row + from, Column: column},
			End:    Position{Row: row + to, Column: 0},
			Action: delta.Action,
			Lines:  chunk,
		}, true)
		if err != nil {
			return err
		}
		column = 0
	}

	delta.Lines = append([]string(nil), lines[from:]...)
	delta.Start = Position{Row: row + from, Column: column}
	return d.applyDelta(delta, true)
}

// safeApplyDelta re-checks that the delta's rows still fit the current
// document before applying. A stale delta is silently discarded: revert
// history may outlive later structural edits, and dropping the revert is
// the contract for that case.
func (d *Document) safeApplyDelta(delta Delta) error {
	docLength := len(d.lines)
	removeFits := delta.Action == ActionRemove &&
		delta.Start.Row < docLength && delta.End.Row < docLength
	insertFits := delta.Action == ActionInsert && delta.Start.Row <= docLength
	if removeFits || insertFits {
		return d.applyDelta(delta, false)
	}
	return nil
}

// RevertDelta applies the inverse of delta, undoing its effect. The
// inverse is routed through the stale-bounds check; a delta that no
// longer fits the document is discarded without error.
func (d *Document) RevertDelta(delta Delta) error {
	return d.safeApplyDelta(delta.Invert())
}

// ApplyDeltas applies deltas in order. Each delta is applied
// independently; a failure does not roll back earlier deltas.
func (d *Document) ApplyDeltas(deltas []Delta) error {
	for _, delta := range deltas {
		if err := d.ApplyDelta(delta); err != nil {
			return err
		}
	}
	return nil
}

// RevertDeltas reverts deltas in strict reverse order. Deltas are not
// commutative; reverting out of order corrupts positions.
func (d *Document) RevertDeltas(deltas []Delta) error {
	for i := len(deltas) - 1; i >= 0; i-- {
		if err := d.RevertDelta(deltas[i]); err != nil {
			return err
		}
	}
	return nil
}
