// Package patch turns partial-update payloads into SET clauses.
//
// A payload is a struct of Field values. A key missing from the JSON body
// leaves its Field unset and the column untouched; an explicit null clears
// the column; any other value assigns it.
package patch

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Field is a tri-state JSON value: absent, null, or set.
type Field[T any] struct {
	Set  bool
	Null bool
	Val  T
}

// Of returns a Field holding v.
func Of[T any](v T) Field[T] {
	return Field[T]{Set: true, Val: v}
}

// Null returns a Field that clears its column.
func Null[T any]() Field[T] {
	return Field[T]{Set: true, Null: true}
}

// UnmarshalJSON marks the field present. A JSON null marks it null.
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		var zero T
		f.Null = true
		f.Val = zero
		return nil
	}
	f.Null = false
	return json.Unmarshal(data, &f.Val)
}

// MarshalJSON writes null for unset or null fields.
func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.Set || f.Null {
		return []byte("null"), nil
	}
	return json.Marshal(f.Val)
}

// State erases the type parameter for column tables.
func (f Field[T]) State() State {
	if !f.Set {
		return State{}
	}
	if f.Null {
		return State{Set: true, Null: true}
	}
	return State{Set: true, Value: f.Val}
}

// State is the untyped view of a Field.
type State struct {
	Set   bool
	Null  bool
	Value any
}

// Column maps one patch field to a table column.
type Column[P any] struct {
	Name      string
	Get       func(p *P) State
	Transform func(any) any
}

// Projection is the result of Build: ordered "col = $N" fragments and their values.
type Projection struct {
	Fragments []string
	values    []any
	next      int
}

// Empty reports whether no column was selected. Callers skip the UPDATE then.
func (p Projection) Empty() bool {
	return len(p.Fragments) == 0
}

// SetClause joins the fragments for use after SET.
func (p Projection) SetClause() string {
	return strings.Join(p.Fragments, ", ")
}

// Next is the first placeholder index not used by the projection.
func (p Projection) Next() int {
	return p.next
}

// Apply appends the bound values, in fragment order, to args.
func (p Projection) Apply(args []any) []any {
	return append(args, p.values...)
}

// Build selects the columns present in p. Placeholders start at $start.
func Build[P any](p *P, cols []Column[P], start int) Projection {
	proj := Projection{next: start}
	if p == nil {
		return proj
	}
	for _, col := range cols {
		st := col.Get(p)
		if !st.Set {
			continue
		}
		var v any
		if !st.Null {
			v = st.Value
			if col.Transform != nil {
				v = col.Transform(v)
			}
		}
		proj.Fragments = append(proj.Fragments, col.Name+" = $"+strconv.Itoa(proj.next))
		proj.values = append(proj.values, v)
		proj.next++
	}
	return proj
}
