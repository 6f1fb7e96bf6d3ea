package document

// applyToLines is the splice primitive: the only code that physically
// rewrites the line store. It applies an already-constructed delta to
// docLines in place. When skipValidation is true the delta must have been
// proven structurally valid by the caller.
func applyToLines(docLines *[]string, d Delta, skipValidation bool) error {
	if !skipValidation {
		if err := validateDelta(*docLines, d); err != nil {
			return err
		}
	}

	lines := *docLines
	row := d.Start.Row
	startColumn := d.Start.Column
	var line string
	if row >= 0 && row < len(lines) {
		line = lines[row]
	}

	switch d.Action {
	case ActionInsert:
		if len(d.Lines) == 1 {
			spliced := line[:startColumn] + d.Lines[0] + line[startColumn:]
			if row < len(lines) {
				lines[row] = spliced
			} else {
				lines = append(lines, spliced)
			}
		} else {
			merged := make([]string, 0, len(lines)+len(d.Lines)-1)
			merged = append(merged, lines[:row]...)
			merged = append(merged, d.Lines...)
			if row+1 < len(lines) {
				merged = append(merged, lines[row+1:]...)
			}
			merged[row] = line[:startColumn] + merged[row]
			last := row + len(d.Lines) - 1
			merged[last] += line[startColumn:]
			lines = merged
		}

	case ActionRemove:
		endRow := d.End.Row
		endColumn := d.End.Column
		if row == endRow {
			lines[row] = line[:startColumn] + line[endColumn:]
		} else {
			merged := make([]string, 0, len(lines)-(endRow-row))
			merged = append(merged, lines[:row]...)
			merged = append(merged, line[:startColumn]+lines[endRow][endColumn:])
			merged = append(merged, lines[endRow+1:]...)
			lines = merged
		}
	}

	*docLines = lines
	return nil
}
