package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuantity_Float(t *testing.T) {
	testCases := []struct {
		raw      string
		expected float64
		ok       bool
	}{
		{`12.5`, 12.5, true},
		{`"40"`, 40, true},
		{`" 7 "`, 7, true},
		{`-3`, -3, true},
		{`"abc"`, 0, false},
		{`""`, 0, false},
		{`null`, 0, false},
		{``, 0, false},
		{`true`, 0, false},
		{`"NaN"`, 0, false},
		{`{"v":1}`, 0, false},
	}

	for _, tc := range testCases {
		t.Run(tc.raw, func(t *testing.T) {
			f, ok := Quantity(tc.raw).Float()
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.expected, f)
		})
	}
}

func TestQuantity_RoundTripsRepresentation(t *testing.T) {
	var item Item
	require.NoError(t, json.Unmarshal([]byte(`{"packing_qty":"10","units":2}`), &item))

	out, err := json.Marshal(item)

	require.NoError(t, err)
	assert.JSONEq(t, `{"packing_qty":"10","units":2}`, string(out))
}

func TestNewQuantity(t *testing.T) {
	assert.Equal(t, "2.5", string(NewQuantity(2.5)))
	assert.Equal(t, "100", string(NewQuantity(100)))
}
