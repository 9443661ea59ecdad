// Package value holds the JSON-shaped value tree: objects, arrays, and
// scalars. Trees are built by the serializer engine, converted from plain Go
// values through FromGo, and rendered to canonical JSON text.
package value

import "encoding/json"

// Value is one node of a JSON value tree. The zero Value is invalid and
// renders as null; use the constructors.
type Value struct {
	kind Kind
	b    bool
	num  json.Number
	str  string
	arr  []Value
	obj  map[string]Value
}

// Null returns the JSON null value.
func Null() Value {
	return Value{kind: KindNull}
}

// Bool returns a JSON boolean value.
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// String returns a JSON string value.
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// Number returns a JSON number value. The literal text is kept as-is, so
// rendering never re-rounds.
func Number(n json.Number) Value {
	return Value{kind: KindNumber, num: n}
}

// Array returns a JSON array value. The Value takes ownership of elems;
// a nil slice still renders as [].
func Array(elems []Value) Value {
	return Value{kind: KindArray, arr: elems}
}

// Object returns a JSON object value. The Value takes ownership of fields.
func Object(fields map[string]Value) Value {
	return Value{kind: KindObject, obj: fields}
}

// Kind reports which shape of JSON value this is.
func (v Value) Kind() Kind {
	return v.kind
}

// Field returns the value stored under key. The second result is false when
// v is not an object or the key is absent.
func (v Value) Field(key string) (Value, bool) {
	f, ok := v.obj[key]
	return f, ok
}

// Items returns the elements of an array value, or nil for any other kind.
func (v Value) Items() []Value {
	return v.arr
}

// Len returns the number of elements of an array or fields of an object,
// and 0 for scalars.
func (v Value) Len() int {
	if v.kind == KindObject {
		return len(v.obj)
	}

	return len(v.arr)
}
