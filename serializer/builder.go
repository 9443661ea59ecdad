package serializer

import (
	"fmt"

	"jsonview/value"
)

// Builder accumulates the key/value contributions for one object during one
// serialization pass. A Builder lives for exactly one SerializeInto call:
// the engine creates it, hands it to the serializer, and converts it to a
// value tree immediately after.
//
// The first failure recorded on a Builder aborts the whole call; later
// operations become no-ops and the caller never sees a partial document.
type Builder struct {
	fields map[string]value.Value
	err    error
}

func newBuilder() *Builder {
	return &Builder{fields: make(map[string]value.Value)}
}

// Attr stores the JSON encoding of v under key. Writing the same key twice
// overwrites the earlier value. A value with no JSON encoding fails the
// whole serialization call.
func (b *Builder) Attr(key string, v any) *Builder {
	if b.err != nil {
		return b
	}

	tree, err := value.FromGo(v)
	if err != nil {
		b.Fail(fmt.Errorf("attr %q: %w", key, err))
		return b
	}

	b.fields[key] = tree

	return b
}

// HasOne stores the s-rendering of v under key as a nested object.
// HasOne is a free function because Go methods cannot introduce type
// parameters.
func HasOne[T any](b *Builder, key string, v T, s Serializer[T]) *Builder {
	if b.err != nil {
		return b
	}

	tree, err := ToValue(s, v)
	if err != nil {
		b.Fail(fmt.Errorf("has_one %q: %w", key, err))
		return b
	}

	b.fields[key] = tree

	return b
}

// HasMany stores under key an array holding the s-rendering of every
// element of vs, in input order. An empty vs stores an empty array, never
// null and never an absent key.
func HasMany[S ~[]T, T any](b *Builder, key string, vs S, s Serializer[T]) *Builder {
	if b.err != nil {
		return b
	}

	elems := make([]value.Value, 0, len(vs))

	for i, v := range vs {
		tree, err := ToValue(s, v)
		if err != nil {
			b.Fail(fmt.Errorf("has_many %q[%d]: %w", key, i, err))
			return b
		}

		elems = append(elems, tree)
	}

	b.fields[key] = value.Array(elems)

	return b
}

// Fail aborts the serialization call with err. Only the first failure is
// kept. Population routines that detect their own errors (a type mismatch,
// a missing invariant) report them here.
func (b *Builder) Fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

func (b *Builder) build() (value.Value, error) {
	if b.err != nil {
		return value.Value{}, b.err
	}

	return value.Object(b.fields), nil
}
