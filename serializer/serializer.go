package serializer

import "jsonview/value"

// Serializer populates a Builder with the representation of a single value.
// Serializers are first-class: the same Serializer may serve a root call,
// a HasOne field, and a HasMany element, and they compose as ordinary
// values.
type Serializer[T any] interface {
	// SerializeInto adds key/value pairs for v to the builder. Callers
	// should not invoke this directly; go through ToValue, Serialize, or
	// SerializeMany instead.
	SerializeInto(v T, b *Builder)
}

// Func adapts a plain function or closure to the Serializer interface.
type Func[T any] func(v T, b *Builder)

// SerializeInto implements Serializer by calling f.
func (f Func[T]) SerializeInto(v T, b *Builder) {
	f(v, b)
}

// ToValue runs s over v with a fresh Builder and returns the accumulated
// object tree. On failure no partial tree is returned.
func ToValue[T any](s Serializer[T], v T) (value.Value, error) {
	b := newBuilder()
	s.SerializeInto(v, b)

	return b.build()
}

// Serialize renders v as a JSON object using s.
func Serialize[T any](s Serializer[T], v T) (string, error) {
	tree, err := ToValue(s, v)
	if err != nil {
		return "", err
	}

	return tree.JSON(), nil
}

// SerializeMany renders vs as a single JSON array whose elements are the
// s-renderings of each value, in input order.
func SerializeMany[S ~[]T, T any](s Serializer[T], vs S) (string, error) {
	elems := make([]value.Value, 0, len(vs))

	for _, v := range vs {
		tree, err := ToValue(s, v)
		if err != nil {
			return "", err
		}

		elems = append(elems, tree)
	}

	return value.Array(elems).JSON(), nil
}
