package document

// IndexToPosition converts an absolute byte index into a (row, column)
// position, counting each row as its length plus the current newline
// length. startRow skips rows before counting, for callers converting
// indexes relative to a known row. IndexToPosition and PositionToIndex
// are exact inverses only while the newline length stays unchanged
// between the calls.
func (d *Document) IndexToPosition(index, startRow int) Position {
	newlineLength := len(d.NewLineCharacter())
	if startRow < 0 {
		startRow = 0
	}
	for i := startRow; i < len(d.lines); i++ {
		index -= len(d.lines[i]) + newlineLength
		if index < 0 {
			return Position{Row: i, Column: index + len(d.lines[i]) + newlineLength}
		}
	}
	last := len(d.lines) - 1
	return Position{Row: last, Column: index + len(d.lines[last]) + newlineLength}
}

// PositionToIndex converts a (row, column) position into an absolute
// byte index, the inverse of IndexToPosition under a stable newline
// length.
func (d *Document) PositionToIndex(pos Position, startRow int) int {
	newlineLength := len(d.NewLineCharacter())
	if startRow < 0 {
		startRow = 0
	}
	row := pos.Row
	if row > len(d.lines) {
		row = len(d.lines)
	}
	index := 0
	for i := startRow; i < row; i++ {
		index += len(d.lines[i]) + newlineLength
	}
	return index + pos.Column
}
