package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParse(t *testing.T) {
	doc := `
views:
  - name: user
    attrs: [ID, {name: Name}]
    has_one:
      - {key: country, field: Country, view: country}
    has_many:
      - {field: Friends, view: user}
  - name: country
    attrs: [{id: ID}]
`

	f, err := Parse([]byte(doc))
	require.NoError(t, err)
	require.Len(t, f.Views, 2)

	user := f.Views[0]
	assert.Equal(t, "user", user.Name)
	require.Len(t, user.Attrs, 2)
	assert.Equal(t, Attr{Key: "ID", Field: "ID"}, user.Attrs[0])
	assert.Equal(t, Attr{Key: "name", Field: "Name"}, user.Attrs[1])

	require.Len(t, user.HasOne, 1)
	assert.Equal(t, "country", user.HasOne[0].OutKey())
	assert.Equal(t, "Country", user.HasOne[0].Field)

	require.Len(t, user.HasMany, 1)
	// Key defaults to the field name.
	assert.Equal(t, "Friends", user.HasMany[0].OutKey())
	assert.Equal(t, "user", user.HasMany[0].View)
}

func TestParseRejectsMultiKeyRename(t *testing.T) {
	doc := `
views:
  - name: user
    attrs: [{a: A, b: B}]
`

	_, err := Parse([]byte(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one")
}

func TestParseRejectsNonSequenceAttrs(t *testing.T) {
	doc := `
views:
  - name: user
    attrs: ID
`

	_, err := Parse([]byte(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected sequence")
}

func TestAttrArrayMarshalRoundTrip(t *testing.T) {
	in := AttrArray{
		{Key: "ID", Field: "ID"},
		{Key: "name", Field: "Name"},
	}

	data, err := yaml.Marshal(in)
	require.NoError(t, err)

	var out AttrArray
	require.NoError(t, yaml.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}
