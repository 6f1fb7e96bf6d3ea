package document

import (
	"errors"
	"fmt"
)

// ErrInvalidDelta is returned when a delta's shape does not match the
// document it is applied to. Wrapped errors carry detail.
var ErrInvalidDelta = errors.New("invalid delta")

// DeltaAction categorizes a delta as an insertion or a removal.
type DeltaAction uint8

const (
	ActionInsert DeltaAction = iota // Lines holds inserted content
	ActionRemove                    // Lines holds the exact removed content
)

// String returns the wire name of the action.
func (a DeltaAction) String() string {
	switch a {
	case ActionInsert:
		return "insert"
	case ActionRemove:
		return "remove"
	default:
		return "unknown"
	}
}

// Delta records one insertion or removal of line content between two
// positions. For inserts, len(Lines)-1 equals End.Row-Start.Row. For
// removes, Lines holds the exact removed content, which makes the record
// invertible: applying Invert() of an applied delta restores the prior
// document state.
type Delta struct {
	Start  Position
	End    Position
	Action DeltaAction
	Lines  []string
}

// String returns a human-readable representation of the delta.
func (d Delta) String() string {
	return fmt.Sprintf("%s %s..%s (%d lines)", d.Action, d.Start, d.End, len(d.Lines))
}

// Clone returns a copy of the delta with its own Lines slice.
func (d Delta) Clone() Delta {
	d.Lines = append([]string(nil), d.Lines...)
	return d
}

// Invert returns the delta that undoes this one: the action is swapped
// and the endpoints and lines are kept.
func (d Delta) Invert() Delta {
	inv := d.Clone()
	if d.Action == ActionInsert {
		inv.Action = ActionRemove
	} else {
		inv.Action = ActionInsert
	}
	return inv
}

// positionInLines reports whether p addresses a valid location in lines,
// allowing the column one past the end of its line.
func positionInLines(lines []string, p Position) bool {
	return p.Row >= 0 && p.Row < len(lines) &&
		p.Column >= 0 && p.Column <= len(lines[p.Row])
}

// validateDelta checks a delta's structural consistency against the given
// line store. It is the validate step of the apply pipeline; a failure
// here means a caller bug, not bad user input.
func validateDelta(lines []string, d Delta) error {
	if d.Action != ActionInsert && d.Action != ActionRemove {
		return fmt.Errorf("%w: unknown action %d", ErrInvalidDelta, d.Action)
	}
	if len(d.Lines) == 0 {
		return fmt.Errorf("%w: missing lines", ErrInvalidDelta)
	}
	if !positionInLines(lines, d.Start) {
		return fmt.Errorf("%w: start %s out of document", ErrInvalidDelta, d.Start)
	}
	if d.Action == ActionRemove && !positionInLines(lines, d.End) {
		return fmt.Errorf("%w: end %s out of document", ErrInvalidDelta, d.End)
	}
	rangeRows := d.End.Row - d.Start.Row
	if rangeRows != len(d.Lines)-1 {
		return fmt.Errorf("%w: range spans %d rows but delta has %d lines",
			ErrInvalidDelta, rangeRows, len(d.Lines))
	}
	lastLineChars := d.End.Column
	if rangeRows == 0 {
		lastLineChars = d.End.Column - d.Start.Column
	}
	if len(d.Lines[rangeRows]) != lastLineChars {
		return fmt.Errorf("%w: range end does not match delta lines", ErrInvalidDelta)
	}
	return nil
}
