package value

import (
	"bytes"
	"encoding/json"
)

// FromGo converts a plain Go value into a Value, delegating the actual
// encoding rules (struct tags, Marshaler implementations, map keys, ...) to
// encoding/json. Values encoding/json cannot represent, such as non-finite
// floats or channels, produce an error.
func FromGo(v any) (Value, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return Value{}, err
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return Value{}, err
	}

	return fromDecoded(raw), nil
}

func fromDecoded(raw any) Value {
	switch x := raw.(type) {
	case nil:
		return Null()

	case bool:
		return Bool(x)

	case json.Number:
		return Number(x)

	case string:
		return String(x)

	case []any:
		elems := make([]Value, len(x))
		for i, e := range x {
			elems[i] = fromDecoded(e)
		}

		return Array(elems)

	case map[string]any:
		fields := make(map[string]Value, len(x))
		for k, e := range x {
			fields[k] = fromDecoded(e)
		}

		return Object(fields)
	}

	// A decoder with UseNumber only produces the cases above.
	return Value{}
}
