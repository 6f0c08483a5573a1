package domain

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Product is one catalog entry as delivered by the catalog source.
// Text fields use Text so that missing, null or non-string values decode to
// their string form instead of failing the whole catalog. Numeric fields go
// through Number when decoding for the same reason.
type Product struct {
	ID                 int     `json:"id"`
	Title              Text    `json:"title"`
	Description        Text    `json:"description"`
	Category           Text    `json:"category"`
	Brand              Text    `json:"brand"`
	Price              float64 `json:"price"`
	DiscountPercentage float64 `json:"discountPercentage"`
	Rating             float64 `json:"rating"`
	Stock              int     `json:"stock"`
	Thumbnail          Text    `json:"thumbnail"`
}

// InStock reports whether the product can be offered for purchase.
// The cart itself does not enforce stock.
func (p Product) InStock() bool {
	return p.Stock > 0
}

// OriginalPrice is the list price before the discount was applied
func (p Product) OriginalPrice() float64 {
	if p.DiscountPercentage <= 0 || p.DiscountPercentage >= 100 {
		return p.Price
	}
	return p.Price / (1 - p.DiscountPercentage/100)
}

// Savings is the difference between the list price and the current price
func (p Product) Savings() float64 {
	return p.OriginalPrice() - p.Price
}

// UnmarshalJSON decodes a product, coercing loosely typed numeric fields
func (p *Product) UnmarshalJSON(data []byte) error {
	type plain Product
	var raw struct {
		plain
		ID                 Number `json:"id"`
		Price              Number `json:"price"`
		DiscountPercentage Number `json:"discountPercentage"`
		Rating             Number `json:"rating"`
		Stock              Number `json:"stock"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*p = Product(raw.plain)
	p.ID = raw.ID.Int()
	p.Price = float64(raw.Price)
	p.DiscountPercentage = float64(raw.DiscountPercentage)
	p.Rating = float64(raw.Rating)
	p.Stock = raw.Stock.Int()
	return nil
}

// Number is a float64 that tolerates loosely typed JSON
type Number float64

// Int truncates the number toward zero
func (n Number) Int() int {
	return int(n)
}

// UnmarshalJSON accepts numbers and numeric strings. Anything else is 0.
func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	*n = 0
	if len(data) == 0 {
		return nil
	}

	raw := string(data)
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		raw = strings.TrimSpace(s)
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	*n = Number(f)
	return nil
}

// Text is a string that tolerates loosely typed JSON
type Text string

// String returns the plain string form
func (t Text) String() string {
	return string(t)
}

// Lower returns the lowercased string form
func (t Text) Lower() string {
	return strings.ToLower(string(t))
}

// UnmarshalJSON accepts strings, numbers, booleans and null
func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*t = ""
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(s)
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return err
		}
		*t = Text(strconv.FormatBool(b))
	case '{', '[':
		// Structured values have no sensible text form.
		*t = ""
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		*t = Text(n.String())
	}
	return nil
}
