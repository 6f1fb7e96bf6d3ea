// Package document implements a line-addressed text buffer model for
// editors: a mutable sequence of lines with position-based edits, a
// replayable delta log for undo, floating anchors that survive edits, and
// conversion between absolute byte indexes and (row, column) positions.
//
// The document always holds at least one line and no line ever contains an
// embedded newline. Columns are byte offsets within a line; a column may
// equal the line length, addressing the slot just past the last byte.
//
// All mutation flows through the delta pipeline: public edit methods build
// a Delta, clip its endpoints against current bounds, apply it to the line
// store, and then emit a change notification carrying the exact applied
// delta. Notifications are delivered synchronously, in registration order,
// before the mutating call returns.
//
// Out-of-range positional input to reads and clipped edit methods never
// produces an error; positions are clamped to document bounds. Only a
// structurally inconsistent delta handed directly to ApplyDelta surfaces
// as an error.
//
// A Document is not internally synchronized. Change handlers run on the
// mutating goroutine and may read current state, so access from multiple
// goroutines must be serialized by the caller.
package document
