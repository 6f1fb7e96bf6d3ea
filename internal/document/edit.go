package document

import (
	"errors"
	"strings"
)

// ErrNewlineInText is returned by InsertInLine when the text contains a
// newline sequence.
var ErrNewlineInText = errors.New("text must not contain a newline")

// Insert inserts text at pos, splitting it on any newline sequence.
// If the document still has a single line, the newline style is first
// auto-detected from text. Returns the position after the inserted text,
// which is the clipped start when text is empty.
func (d *Document) Insert(pos Position, text string) (Position, error) {
	if len(d.lines) <= 1 {
		d.detectNewLine(text)
	}
	return d.InsertMergedLines(pos, splitLines(text))
}

// InsertInLine is the single-line fast path: it inserts text into one
// line without validation. The text must not contain newlines.
func (d *Document) InsertInLine(pos Position, text string) (Position, error) {
	if strings.ContainsAny(text, "\r\n") {
		return Position{}, ErrNewlineInText
	}
	start := d.ClipPosition(pos.Row, pos.Column)
	end := Position{Row: start.Row, Column: start.Column + len(text)}
	err := d.applyDelta(Delta{
		Start:  start,
		End:    end,
		Action: ActionInsert,
		Lines:  []string{text},
	}, true)
	if err != nil {
		return Position{}, err
	}
	return end, nil
}

// InsertMergedLines inserts pre-split lines at pos, merging the first and
// last inserted lines into the existing content at the split point. This
// is the general building block for the insert family.
func (d *Document) InsertMergedLines(pos Position, lines []string) (Position, error) {
	start := d.ClipPosition(pos.Row, pos.Column)
	if len(lines) == 0 {
		return start, nil
	}
	end := Position{
		Row:    start.Row + len(lines) - 1,
		Column: len(lines[len(lines)-1]),
	}
	if len(lines) == 1 {
		end.Column += start.Column
	}
	err := d.applyDelta(Delta{
		Start:  start,
		End:    end,
		Action: ActionInsert,
		Lines:  lines,
	}, false)
	if err != nil {
		return Position{}, err
	}
	return end, nil
}

// InsertFullLines inserts whole new rows at row without merging into
// existing content. Inserting before an existing row appends a trailing
// empty line to force the break; inserting past the end prepends a
// leading empty line and anchors at the end of the current last line.
func (d *Document) InsertFullLines(row int, lines []string) error {
	length := len(d.lines)
	if row < 0 {
		row = 0
	} else if row > length {
		row = length
	}

	column := 0
	if row < length {
		padded := make([]string, 0, len(lines)+1)
		padded = append(padded, lines...)
		lines = append(padded, "")
	} else {
		lines = append([]string{""}, lines...)
		row--
		column = len(d.lines[row])
	}

	_, err := d.InsertMergedLines(Position{Row: row, Column: column}, lines)
	return err
}

// Remove deletes the content covered by r after clipping both endpoints.
// Returns the clipped start. Removing an already-empty clipped range is a
// no-op.
func (d *Document) Remove(r Range) (Position, error) {
	start := d.ClipPosition(r.Start.Row, r.Start.Column)
	end := d.ClipPosition(r.End.Row, r.End.Column)
	err := d.applyDelta(Delta{
		Start:  start,
		End:    end,
		Action: ActionRemove,
		Lines:  d.LinesForRange(Range{Start: start, End: end}),
	}, false)
	if err != nil {
		return Position{}, err
	}
	return start, nil
}

// RemoveInLine is the single-row fast path: it deletes the bytes between
// startColumn and endColumn on row without validation. Returns the
// clipped start.
func (d *Document) RemoveInLine(row, startColumn, endColumn int) (Position, error) {
	start := d.ClipPosition(row, startColumn)
	end := d.ClipPosition(row, endColumn)
	err := d.applyDelta(Delta{
		Start:  start,
		End:    end,
		Action: ActionRemove,
		Lines:  d.LinesForRange(Range{Start: start, End: end}),
	}, true)
	if err != nil {
		return Position{}, err
	}
	return start, nil
}

// RemoveFullLines removes the whole rows firstRow..lastRow inclusive and
// returns the removed lines verbatim, without the boundary newline.
// Exactly one boundary newline is consumed: the preceding one when the
// removal reaches the last row and firstRow > 0, the following one
// otherwise. That keeps the row count consistent with the removal.
func (d *Document) RemoveFullLines(firstRow, lastRow int) ([]string, error) {
	firstRow = clampIndex(firstRow, len(d.lines)-1)
	lastRow = clampIndex(lastRow, len(d.lines)-1)
	if firstRow > lastRow {
		return nil, nil
	}

	deleteFirstNewLine := lastRow == len(d.lines)-1 && firstRow > 0
	deleteLastNewLine := lastRow < len(d.lines)-1

	startRow, startColumn := firstRow, 0
	if deleteFirstNewLine {
		startRow = firstRow - 1
		startColumn = len(d.lines[startRow])
	}
	endRow, endColumn := lastRow, len(d.lines[lastRow])
	if deleteLastNewLine {
		endRow = lastRow + 1
		endColumn = 0
	}

	removed := append([]string(nil), d.lines[firstRow:lastRow+1]...)
	_, err := d.Remove(NewRange(startRow, startColumn, endRow, endColumn))
	if err != nil {
		return nil, err
	}
	return removed, nil
}

// RemoveNewLine merges row and row+1 by deleting exactly their boundary.
// A negative row or the last row is a no-op.
func (d *Document) RemoveNewLine(row int) error {
	if row < 0 || row >= len(d.lines)-1 {
		return nil
	}
	return d.applyDelta(Delta{
		Start:  Position{Row: row, Column: len(d.lines[row])},
		End:    Position{Row: row + 1, Column: 0},
		Action: ActionRemove,
		Lines:  []string{"", ""},
	}, false)
}

// Replace replaces the content of r with text. Identity replacements are
// no-ops that emit nothing: empty text into an already-empty range
// returns r.Start, and text equal to the current range content returns
// r.End. Otherwise the range is removed and text inserted, returning the
// insert's end (or r.Start when text is empty).
func (d *Document) Replace(r Range, text string) (Position, error) {
	if text == "" && r.IsEmpty() {
		return r.Start, nil
	}
	if text == d.TextRange(r) {
		return r.End, nil
	}
	if _, err := d.Remove(r); err != nil {
		return Position{}, err
	}
	if text == "" {
		return r.Start, nil
	}
	return d.Insert(r.Start, text)
}

// SetValue replaces the entire document content with text.
func (d *Document) SetValue(text string) error {
	lastRow := len(d.lines) - 1
	_, err := d.Remove(NewRange(0, 0, lastRow, len(d.lines[lastRow])))
	if err != nil {
		return err
	}
	_, err = d.Insert(Position{}, text)
	return err
}
