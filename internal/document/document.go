package document

import (
	"strings"

	"github.com/dshills/textdoc/internal/event"
)

// NewLineMode selects the newline separator used when serializing the
// document and when measuring line boundaries for index conversion.
type NewLineMode uint8

const (
	NewLineModeAuto    NewLineMode = iota // use the separator detected from content
	NewLineModeUnix                       // \n
	NewLineModeWindows                    // \r\n
)

// String returns the configuration name of the mode.
func (m NewLineMode) String() string {
	switch m {
	case NewLineModeUnix:
		return "unix"
	case NewLineModeWindows:
		return "windows"
	default:
		return "auto"
	}
}

// Document is a line-addressed text buffer. It owns the ordered sequence
// of lines and is the sole writer of it; every mutation flows through the
// delta pipeline in apply.go.
type Document struct {
	lines       []string
	newLineMode NewLineMode
	autoNewLine string

	change            *event.Emitter[Delta]
	changeNewLineMode *event.Emitter[struct{}]
}

// Option configures a Document at construction time.
type Option func(*Document)

// WithNewLineMode sets the initial newline mode.
func WithNewLineMode(mode NewLineMode) Option {
	return func(d *Document) {
		d.newLineMode = mode
	}
}

func newDocument(opts []Option) *Document {
	d := &Document{
		lines:             []string{""},
		newLineMode:       NewLineModeAuto,
		autoNewLine:       "\n",
		change:            event.NewEmitter[Delta](),
		changeNewLineMode: event.NewEmitter[struct{}](),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// New creates a document from initial text. Empty text yields a document
// with a single empty line.
func New(text string, opts ...Option) *Document {
	d := newDocument(opts)
	if text != "" {
		d.Insert(Position{}, text) //nolint:errcheck // fresh document, delta is constructed valid
	}
	return d
}

// NewFromLines creates a document from an initial line sequence. The
// lines must not contain embedded newlines. An empty sequence yields a
// document with a single empty line.
func NewFromLines(lines []string, opts ...Option) *Document {
	d := newDocument(opts)
	if len(lines) > 0 {
		d.InsertMergedLines(Position{}, lines) //nolint:errcheck // fresh document, delta is constructed valid
	}
	return d
}

// OnChange registers a handler for every applied delta. Delivery is
// synchronous and in registration order, after the mutation and before
// the mutating call returns.
func (d *Document) OnChange(fn func(Delta)) event.Subscription {
	return d.change.Subscribe(fn)
}

// OnChangeNewLineMode registers a handler fired when the newline mode is
// changed or the auto-newline separator is re-detected.
func (d *Document) OnChangeNewLineMode(fn func()) event.Subscription {
	return d.changeNewLineMode.Subscribe(func(struct{}) { fn() })
}

// Line Store Reads

// LineCount returns the number of lines. Always >= 1.
func (d *Document) LineCount() int {
	return len(d.lines)
}

// Line returns the text of a line, or "" for an out-of-range row.
func (d *Document) Line(row int) string {
	if row < 0 || row >= len(d.lines) {
		return ""
	}
	return d.lines[row]
}

// Lines returns a copy of the lines from firstRow to lastRow inclusive,
// truncating out-of-range bounds.
func (d *Document) Lines(firstRow, lastRow int) []string {
	if firstRow < 0 {
		firstRow = 0
	}
	if lastRow >= len(d.lines) {
		lastRow = len(d.lines) - 1
	}
	if firstRow > lastRow {
		return []string{}
	}
	return append([]string(nil), d.lines[firstRow:lastRow+1]...)
}

// AllLines returns a copy of every line.
func (d *Document) AllLines() []string {
	return append([]string(nil), d.lines...)
}

// Value serializes the document using the current newline character.
func (d *Document) Value() string {
	return strings.Join(d.lines, d.NewLineCharacter())
}

// EndPosition returns the position just past the last byte of the last
// line.
func (d *Document) EndPosition() Position {
	row := len(d.lines) - 1
	return Position{Row: row, Column: len(d.lines[row])}
}

// TextRange returns the content covered by r, joined with the current
// newline character.
func (d *Document) TextRange(r Range) string {
	return strings.Join(d.LinesForRange(r), d.NewLineCharacter())
}

// LinesForRange projects a range onto line content: for a same-row range
// a single substring, otherwise the first-line suffix, verbatim middle
// lines, and a last-line prefix. The last line is trimmed only when the
// row span of the range equals the produced line count minus one, which
// distinguishes end-computed ranges from externally supplied ones.
func (d *Document) LinesForRange(r Range) []string {
	if r.Start.Row == r.End.Row {
		return []string{substring(d.Line(r.Start.Row), r.Start.Column, r.End.Column)}
	}
	lines := d.Lines(r.Start.Row, r.End.Row)
	if len(lines) == 0 {
		return lines
	}
	lines[0] = substringFrom(lines[0], r.Start.Column)
	last := len(lines) - 1
	if r.End.Row-r.Start.Row == last {
		lines[last] = substring(lines[last], 0, r.End.Column)
	}
	return lines
}

// Position Normalization

// ClipPosition clamps (row, column) to valid document bounds: row to
// [0, LineCount-1] and column to [0, len(line)]. A row past the end maps
// to the end of the last line regardless of column.
func (d *Document) ClipPosition(row, column int) Position {
	if row < 0 {
		row = 0
	}
	if row >= len(d.lines) {
		row = len(d.lines) - 1
		column = len(d.lines[row])
	} else {
		line := d.lines[row]
		if column < 0 {
			column = 0
		} else if column > len(line) {
			column = len(line)
		}
	}
	return Position{Row: row, Column: column}
}

// ClipRange clips both endpoints of r.
func (d *Document) ClipRange(r Range) Range {
	return Range{
		Start: d.ClipPosition(r.Start.Row, r.Start.Column),
		End:   d.ClipPosition(r.End.Row, r.End.Column),
	}
}

// Newline Handling

// NewLineCharacter returns the separator the current mode serializes
// with: "\r\n" for windows, "\n" for unix, and the detected separator for
// auto.
func (d *Document) NewLineCharacter() string {
	switch d.newLineMode {
	case NewLineModeWindows:
		return "\r\n"
	case NewLineModeUnix:
		return "\n"
	default:
		return d.autoNewLine
	}
}

// NewLineMode returns the current newline mode.
func (d *Document) NewLineMode() NewLineMode {
	return d.newLineMode
}

// SetNewLineMode changes the newline mode, notifying subscribers when
// the mode actually changes.
func (d *Document) SetNewLineMode(mode NewLineMode) {
	if d.newLineMode == mode {
		return
	}
	d.newLineMode = mode
	d.changeNewLineMode.Emit(struct{}{})
}

// detectNewLine fixes the auto-newline separator from the first newline
// sequence in text, defaulting to "\n", and always notifies.
func (d *Document) detectNewLine(text string) {
	d.autoNewLine = "\n"
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\n':
			d.autoNewLine = "\n"
		case '\r':
			if i+1 < len(text) && text[i+1] == '\n' {
				d.autoNewLine = "\r\n"
			} else {
				d.autoNewLine = "\r"
			}
		default:
			continue
		}
		break
	}
	d.changeNewLineMode.Emit(struct{}{})
}

// splitLines splits text on any newline sequence (\r\n, \r, or \n).
// The result always has at least one element.
func splitLines(text string) []string {
	lines := make([]string, 0, strings.Count(text, "\n")+1)
	start := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\n':
			lines = append(lines, text[start:i])
			start = i + 1
		case '\r':
			lines = append(lines, text[start:i])
			if i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			start = i + 1
		}
	}
	return append(lines, text[start:])
}

// substring slices s with clamped, order-normalized byte bounds, so reads
// with out-of-range columns never fail.
func substring(s string, from, to int) string {
	from = clampIndex(from, len(s))
	to = clampIndex(to, len(s))
	if from > to {
		from, to = to, from
	}
	return s[from:to]
}

func substringFrom(s string, from int) string {
	return substring(s, from, len(s))
}

func clampIndex(i, length int) int {
	if i < 0 {
		return 0
	}
	if i > length {
		return length
	}
	return i
}
