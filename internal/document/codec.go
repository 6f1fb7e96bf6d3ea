package document

import (
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Wire form of a delta:
//
//	{"action":"insert","start":{"row":0,"column":0},
//	 "end":{"row":1,"column":2},"lines":["ab","cd"]}
//
// Patches are JSON arrays of deltas in application order.

// ParseDelta decodes a single delta from its JSON wire form.
func ParseDelta(data []byte) (Delta, error) {
	if !gjson.ValidBytes(data) {
		return Delta{}, fmt.Errorf("%w: malformed JSON", ErrInvalidDelta)
	}
	return deltaFromResult(gjson.ParseBytes(data))
}

// ParseDeltas decodes a JSON array of deltas in application order.
func ParseDeltas(data []byte) ([]Delta, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: malformed JSON", ErrInvalidDelta)
	}
	parsed := gjson.ParseBytes(data)
	if !parsed.IsArray() {
		return nil, fmt.Errorf("%w: patch must be a JSON array", ErrInvalidDelta)
	}
	items := parsed.Array()
	deltas := make([]Delta, 0, len(items))
	for i, item := range items {
		delta, err := deltaFromResult(item)
		if err != nil {
			return nil, fmt.Errorf("delta %d: %w", i, err)
		}
		deltas = append(deltas, delta)
	}
	return deltas, nil
}

func deltaFromResult(r gjson.Result) (Delta, error) {
	var d Delta
	switch action := r.Get("action"); action.String() {
	case "insert":
		d.Action = ActionInsert
	case "remove":
		d.Action = ActionRemove
	default:
		return Delta{}, fmt.Errorf("%w: unknown action %q", ErrInvalidDelta, action.String())
	}

	var err error
	if d.Start, err = positionFromResult(r.Get("start")); err != nil {
		return Delta{}, fmt.Errorf("%w: start: %v", ErrInvalidDelta, err)
	}
	if d.End, err = positionFromResult(r.Get("end")); err != nil {
		return Delta{}, fmt.Errorf("%w: end: %v", ErrInvalidDelta, err)
	}

	lines := r.Get("lines")
	if !lines.IsArray() {
		return Delta{}, fmt.Errorf("%w: lines must be an array", ErrInvalidDelta)
	}
	items := lines.Array()
	d.Lines = make([]string, 0, len(items))
	for _, item := range items {
		d.Lines = append(d.Lines, item.String())
	}
	if len(d.Lines) == 0 {
		return Delta{}, fmt.Errorf("%w: missing lines", ErrInvalidDelta)
	}
	return d, nil
}

func positionFromResult(r gjson.Result) (Position, error) {
	if !r.IsObject() {
		return Position{}, fmt.Errorf("expected position object, got %q", r.Raw)
	}
	return Position{
		Row:    int(r.Get("row").Int()),
		Column: int(r.Get("column").Int()),
	}, nil
}

// JSON encodes the delta into its wire form.
func (d Delta) JSON() []byte {
	out := []byte(`{}`)
	out, _ = sjson.SetBytes(out, "action", d.Action.String())
	out, _ = sjson.SetBytes(out, "start.row", d.Start.Row)
	out, _ = sjson.SetBytes(out, "start.column", d.Start.Column)
	out, _ = sjson.SetBytes(out, "end.row", d.End.Row)
	out, _ = sjson.SetBytes(out, "end.column", d.End.Column)
	out, _ = sjson.SetBytes(out, "lines", d.Lines)
	return out
}

// DeltasJSON encodes deltas into a JSON patch array.
func DeltasJSON(deltas []Delta) []byte {
	out := []byte(`[]`)
	for i, d := range deltas {
		out, _ = sjson.SetRawBytes(out, fmt.Sprintf("%d", i), d.JSON())
	}
	return out
}
