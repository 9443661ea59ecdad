package value_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"jsonview/value"
)

func TestCanonicalObjectOrder(t *testing.T) {
	v := value.Object(map[string]value.Value{
		"zulu":  value.Bool(true),
		"alpha": value.Number(json.Number("1")),
		"mike":  value.String("m"),
	})

	assert.Equal(t, `{"alpha":1,"mike":"m","zulu":true}`, v.JSON())
}

func TestNilArrayRendersEmpty(t *testing.T) {
	assert.Equal(t, `[]`, value.Array(nil).JSON())
}

func TestZeroValueRendersNull(t *testing.T) {
	var v value.Value

	assert.Equal(t, value.KindInvalid, v.Kind())
	assert.Equal(t, `null`, v.JSON())
}

func TestAppendJSONReusesBuffer(t *testing.T) {
	buf := make([]byte, 0, 64)
	buf = value.String("a").AppendJSON(buf)
	buf = append(buf, ',')
	buf = value.Number(json.Number("2")).AppendJSON(buf)

	assert.Equal(t, `"a",2`, string(buf))
}

func ExampleKind() {
	fmt.Println(value.KindObject)
	fmt.Println(value.KindNumber)
	fmt.Println(value.Kind(42))

	// Output:
	// Object
	// Number
	// Kind(42)
}
