package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONAsMap(t *testing.T) {
	t.Parallel()

	m, err := JSON(`{"tracking_number":"UPS123","brand_signed":true}`).AsMap()
	require.NoError(t, err)
	assert.Equal(t, "UPS123", m["tracking_number"])
	assert.Equal(t, true, m["brand_signed"])

	m, err = JSON(nil).AsMap()
	require.NoError(t, err)
	assert.NotNil(t, m)
	assert.Empty(t, m)

	m, err = JSON("null").AsMap()
	require.NoError(t, err)
	assert.Empty(t, m)

	_, err = JSON(`{broken`).AsMap()
	assert.Error(t, err)
}

func TestMapToJSONRoundTrip(t *testing.T) {
	t.Parallel()

	in := map[string]interface{}{
		"tracking_number": "UPS123",
		"carrier":         "UPS",
		"brand_signed":    true,
	}
	doc, err := MapToJSON(in)
	require.NoError(t, err)

	out, err := doc.AsMap()
	require.NoError(t, err)
	assert.Equal(t, in, out)

	doc, err = MapToJSON(nil)
	require.NoError(t, err)
	assert.Equal(t, JSON("{}"), doc)
}

func TestJSONScan(t *testing.T) {
	t.Parallel()

	var doc JSON
	require.NoError(t, doc.Scan([]byte(`{"a":1}`)))
	assert.Equal(t, JSON(`{"a":1}`), doc)

	require.NoError(t, doc.Scan(`{"b":2}`))
	assert.Equal(t, JSON(`{"b":2}`), doc)

	require.NoError(t, doc.Scan(nil))
	assert.Equal(t, JSON("{}"), doc)

	assert.Error(t, doc.Scan(42))
}

func TestJSONValue(t *testing.T) {
	t.Parallel()

	v, err := JSON(`{"a":1}`).Value()
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, v)

	v, err = JSON(nil).Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}
