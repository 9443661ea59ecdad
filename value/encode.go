package value

import (
	"encoding/json"
	"strconv"

	"jsonview/utils"
)

// AppendJSON appends the canonical JSON rendering of v to dst and returns
// the extended slice. Object keys are emitted in lexicographic order, so
// equal trees always render to identical bytes. Rendering a built tree
// cannot fail.
func (v Value) AppendJSON(dst []byte) []byte {
	switch v.kind {
	default:
		return append(dst, "null"...)

	case KindBool:
		return strconv.AppendBool(dst, v.b)

	case KindNumber:
		return append(dst, v.num...)

	case KindString:
		return appendString(dst, v.str)

	case KindArray:
		dst = append(dst, '[')
		for i, e := range v.arr {
			if i > 0 {
				dst = append(dst, ',')
			}

			dst = e.AppendJSON(dst)
		}

		return append(dst, ']')

	case KindObject:
		dst = append(dst, '{')
		for i, key := range utils.SortedKeys(v.obj) {
			if i > 0 {
				dst = append(dst, ',')
			}

			dst = appendString(dst, key)
			dst = append(dst, ':')
			dst = v.obj[key].AppendJSON(dst)
		}

		return append(dst, '}')
	}
}

// JSON returns the canonical JSON rendering of v.
func (v Value) JSON() string {
	return string(v.AppendJSON(nil))
}

func appendString(dst []byte, s string) []byte {
	// json.Marshal never fails for a string; invalid UTF-8 is replaced.
	enc, _ := json.Marshal(s)
	return append(dst, enc...)
}
