package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONValueScanRoundTrip(t *testing.T) {
	doc := JSON{
		"template_type": "educational",
		"tags":          []interface{}{"manufacturing", "launch"},
		"rag": map[string]interface{}{
			"collection": "acme-co",
			"top_k":      float64(5),
		},
	}

	value, err := doc.Value()
	require.NoError(t, err)

	var out JSON
	require.NoError(t, out.Scan(value))
	assert.Equal(t, doc, out)
}

func TestJSONScanString(t *testing.T) {
	var out JSON
	require.NoError(t, out.Scan(`{"status":"completed","days":30}`))
	assert.Equal(t, JSON{"status": "completed", "days": float64(30)}, out)
}

func TestJSONNilHandling(t *testing.T) {
	var doc JSON
	value, err := doc.Value()
	require.NoError(t, err)
	assert.Nil(t, value)

	out := JSON{"stale": true}
	require.NoError(t, out.Scan(nil))
	assert.Nil(t, out)
}

func TestJSONScanRejectsUnknownType(t *testing.T) {
	var out JSON
	assert.Error(t, out.Scan(42))
}
