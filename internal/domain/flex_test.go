package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KTRoadRescue/KING-TIRE-INVENTORY/internal/domain"
)

func TestFlexFloat_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
	}{
		{name: "raw number", input: `49.99`, expected: 49.99},
		{name: "numeric string", input: `"49.99"`, expected: 49.99},
		{name: "integer string", input: `"120"`, expected: 120},
		{name: "blank string", input: `""`, expected: 0},
		{name: "null", input: `null`, expected: 0},
		{name: "junk string", input: `"abc"`, expected: 0},
		{name: "string with spaces", input: `" 15.5 "`, expected: 15.5},
		{name: "zero", input: `0`, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f domain.FlexFloat
			err := json.Unmarshal([]byte(tt.input), &f)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, f.Float64())
		})
	}
}

func TestFlexInt_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{name: "raw number", input: `4`, expected: 4},
		{name: "numeric string", input: `"4"`, expected: 4},
		{name: "blank string", input: `""`, expected: 0},
		{name: "null", input: `null`, expected: 0},
		{name: "junk string", input: `"many"`, expected: 0},
		{name: "float truncates", input: `4.9`, expected: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var i domain.FlexInt
			err := json.Unmarshal([]byte(tt.input), &i)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, i.Int())
		})
	}
}

func TestCreateTireRequest_QuantityAbsentVsBlank(t *testing.T) {
	// Absent quantity stays nil so the service can apply the default of 1
	var withoutQty domain.CreateTireRequest
	err := json.Unmarshal([]byte(`{"sku":"T-100","brand":"Acme"}`), &withoutQty)
	require.NoError(t, err)
	assert.Nil(t, withoutQty.Quantity)

	// A blank submitted quantity coerces to 0, not to the default
	var blankQty domain.CreateTireRequest
	err = json.Unmarshal([]byte(`{"sku":"T-100","quantity":""}`), &blankQty)
	require.NoError(t, err)
	require.NotNil(t, blankQty.Quantity)
	assert.Equal(t, 0, blankQty.Quantity.Int())
}

func TestCreateTireRequest_StringNumerics(t *testing.T) {
	payload := `{"sku":"T-100","brand":"Acme","price":"49.99","quantity":"4"}`

	var req domain.CreateTireRequest
	err := json.Unmarshal([]byte(payload), &req)
	require.NoError(t, err)

	assert.Equal(t, 49.99, req.Price.Float64())
	require.NotNil(t, req.Quantity)
	assert.Equal(t, 4, req.Quantity.Int())
}
