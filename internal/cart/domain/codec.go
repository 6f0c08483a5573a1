package domain

import (
	"encoding/json"
	"fmt"
)

// Marshal encodes the cart as a JSON array of {"product", "quantity"} records
func Marshal(c Cart) ([]byte, error) {
	data, err := json.Marshal(c.Lines())
	if err != nil {
		return nil, fmt.Errorf("failed to encode cart: %w", err)
	}
	return data, nil
}

// Unmarshal decodes a stored cart. Records that break the line invariants are
// normalized rather than rejected; only unparsable data is an error.
func Unmarshal(data []byte) (Cart, error) {
	var lines []Line
	if err := json.Unmarshal(data, &lines); err != nil {
		return Cart{}, fmt.Errorf("failed to decode cart: %w", err)
	}
	return NewCart(lines), nil
}
