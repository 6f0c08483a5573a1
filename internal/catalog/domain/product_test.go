package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductDecodesMissingFields(t *testing.T) {
	var p Product
	require.NoError(t, json.Unmarshal([]byte(`{"id": 7, "title": "Lamp", "price": 12.5}`), &p))

	assert.Equal(t, 7, p.ID)
	assert.Equal(t, Text("Lamp"), p.Title)
	assert.Equal(t, Text(""), p.Brand)
	assert.Equal(t, Text(""), p.Category)
	assert.Equal(t, 12.5, p.Price)
}

func TestTextCoercesLooseValues(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Text
	}{
		{"string", `"Acme"`, "Acme"},
		{"null", `null`, ""},
		{"integer", `42`, "42"},
		{"float", `3.5`, "3.5"},
		{"bool", `true`, "true"},
		{"object", `{"a":1}`, ""},
		{"array", `[1,2]`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Text
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProductDecodesNullBrand(t *testing.T) {
	var p Product
	require.NoError(t, json.Unmarshal([]byte(`{"id": 1, "brand": null, "category": 5}`), &p))
	assert.Equal(t, "", p.Brand.String())
	assert.Equal(t, "5", p.Category.String())
}

func TestDiscountHelpers(t *testing.T) {
	p := Product{Price: 80, DiscountPercentage: 20, Stock: 3}
	assert.InDelta(t, 100.0, p.OriginalPrice(), 1e-9)
	assert.InDelta(t, 20.0, p.Savings(), 1e-9)
	assert.True(t, p.InStock())

	full := Product{Price: 10, DiscountPercentage: 100}
	assert.Equal(t, 10.0, full.OriginalPrice())
	assert.Zero(t, full.Savings())

	none := Product{Price: 10}
	assert.Equal(t, 10.0, none.OriginalPrice())
	assert.False(t, none.InStock())
}

func TestNumberCoercesLooseValues(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Number
	}{
		{"integer", `42`, 42},
		{"float", `3.5`, 3.5},
		{"numeric string", `"12.5"`, 12.5},
		{"padded string", `" 7 "`, 7},
		{"null", `null`, 0},
		{"bool", `true`, 0},
		{"word", `"cheap"`, 0},
		{"empty string", `""`, 0},
		{"not a number", `"NaN"`, 0},
		{"object", `{"amount":1}`, 0},
		{"array", `[1]`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Number(99)
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProductDecodesLooseNumbers(t *testing.T) {
	var p Product
	raw := `{"id": "2", "title": "Desk", "price": "12.5", "rating": null, "discountPercentage": true, "stock": "4"}`
	require.NoError(t, json.Unmarshal([]byte(raw), &p))

	assert.Equal(t, 2, p.ID)
	assert.Equal(t, "Desk", p.Title.String())
	assert.Equal(t, 12.5, p.Price)
	assert.Zero(t, p.Rating)
	assert.Zero(t, p.DiscountPercentage)
	assert.Equal(t, 4, p.Stock)
	assert.True(t, p.InStock())
}

func TestProductRoundTrip(t *testing.T) {
	in := Product{ID: 3, Title: "Lamp", Brand: "Acme", Price: 19.99, DiscountPercentage: 10, Rating: 4.2, Stock: 1}

	data, err := json.Marshal(in)
	require.NoError(t, err)

	var out Product
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}
