package document

import "github.com/dshills/textdoc/internal/event"

// AnchorChange describes one anchor reposition.
type AnchorChange struct {
	Old Position
	New Position
}

// Anchor is a floating position that follows document edits. It
// subscribes to the document's change notifications and transforms its
// position through every applied delta. The document never enumerates
// its anchors; the relation only exists through the subscription.
type Anchor struct {
	doc         *Document
	row         int
	column      int
	insertRight bool
	sub         event.Subscription
	changed     *event.Emitter[AnchorChange]
}

// CreateAnchor creates an anchor at (row, column), clipped to current
// bounds, and attaches it to the document's change notifications.
func (d *Document) CreateAnchor(row, column int) *Anchor {
	a := &Anchor{
		doc:     d,
		changed: event.NewEmitter[AnchorChange](),
	}
	pos := d.ClipPosition(row, column)
	a.row = pos.Row
	a.column = pos.Column
	a.sub = d.OnChange(a.onChange)
	return a
}

// Position returns the anchor's current position.
func (a *Anchor) Position() Position {
	return Position{Row: a.row, Column: a.column}
}

// Document returns the document the anchor floats in.
func (a *Anchor) Document() *Document {
	return a.doc
}

// SetInsertRight controls the bias for an insert exactly at the anchor:
// when false (the default) the anchor is pushed past the inserted
// content; when true it stays put, attached to the content on its right.
func (a *Anchor) SetInsertRight(insertRight bool) {
	a.insertRight = insertRight
}

// SetPosition moves the anchor to (row, column), clipped to current
// bounds, notifying on an effective move.
func (a *Anchor) SetPosition(row, column int) {
	a.setPosition(row, column, false)
}

// OnChange registers a handler fired whenever the anchor repositions.
func (a *Anchor) OnChange(fn func(AnchorChange)) event.Subscription {
	return a.changed.Subscribe(fn)
}

// Detach unsubscribes the anchor from document changes. Its position is
// frozen afterwards.
func (a *Anchor) Detach() {
	a.sub.Cancel()
}

func (a *Anchor) onChange(delta Delta) {
	if delta.Start.Row == delta.End.Row && delta.Start.Row != a.row {
		return
	}
	if delta.Start.Row > a.row {
		return
	}
	p := transformPosition(delta, Position{Row: a.row, Column: a.column}, a.insertRight)
	a.setPosition(p.Row, p.Column, true)
}

func (a *Anchor) setPosition(row, column int, noClip bool) {
	pos := Position{Row: row, Column: column}
	if !noClip {
		pos = a.doc.ClipPosition(row, column)
	}
	if a.row == pos.Row && a.column == pos.Column {
		return
	}
	old := Position{Row: a.row, Column: a.column}
	a.row = pos.Row
	a.column = pos.Column
	a.changed.Emit(AnchorChange{Old: old, New: pos})
}

// positionsInOrder reports whether p1 comes before p2, with
// equalInOrder deciding whether equal positions count as ordered.
func positionsInOrder(p1, p2 Position, equalInOrder bool) bool {
	if p1.Row != p2.Row {
		return p1.Row < p2.Row
	}
	if equalInOrder {
		return p1.Column <= p2.Column
	}
	return p1.Column < p2.Column
}

// transformPosition maps a position through a delta. A position before
// the delta is unchanged, a position after it shifts by the delta's row
// and column extent, and a position inside a removed range collapses to
// the delta start. moveIfEqual biases a position exactly at the delta
// start.
func transformPosition(delta Delta, point Position, moveIfEqual bool) Position {
	sign := 1
	if delta.Action == ActionRemove {
		sign = -1
	}
	rowShift := sign * (delta.End.Row - delta.Start.Row)
	columnShift := sign * (delta.End.Column - delta.Start.Column)

	start := delta.Start
	end := delta.End
	if delta.Action == ActionInsert {
		end = start
	}

	if positionsInOrder(point, start, moveIfEqual) {
		return point
	}
	if positionsInOrder(end, point, !moveIfEqual) {
		shifted := Position{Row: point.Row + rowShift, Column: point.Column}
		if point.Row == end.Row {
			shifted.Column += columnShift
		}
		return shifted
	}
	return start
}
