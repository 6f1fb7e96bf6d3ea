package document

import "fmt"

// Range is a span between two positions. Start is inclusive, End is
// exclusive, and a well-formed range satisfies Start <= End in
// row-then-column order.
type Range struct {
	Start Position
	End   Position
}

// NewRange creates a range from explicit row/column coordinates.
func NewRange(startRow, startColumn, endRow, endColumn int) Range {
	return Range{
		Start: Position{Row: startRow, Column: startColumn},
		End:   Position{Row: endRow, Column: endColumn},
	}
}

// String returns a human-readable representation of the range.
func (r Range) String() string {
	return fmt.Sprintf("[%s:%s)", r.Start, r.End)
}

// IsEmpty returns true if start equals end.
func (r Range) IsEmpty() bool {
	return r.Start.Compare(r.End) == 0
}

// IsValid returns true if start <= end.
func (r Range) IsValid() bool {
	return r.Start.Compare(r.End) <= 0
}

// IsMultiLine returns true if the range spans more than one row.
func (r Range) IsMultiLine() bool {
	return r.Start.Row != r.End.Row
}

// Contains returns true if the given position lies within the range.
func (r Range) Contains(p Position) bool {
	return p.Compare(r.Start) >= 0 && p.Compare(r.End) < 0
}
