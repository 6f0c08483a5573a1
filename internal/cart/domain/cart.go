package domain

import (
	"context"
	"errors"
	"slices"

	catalog "github.com/tair/storefront/internal/catalog/domain"
)

// ErrRecordNotFound is returned by a Store when nothing was saved under a key
var ErrRecordNotFound = errors.New("record not found")

// Store is the durable key-value storage behind the cart
type Store interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
}

// Line pairs a product with how many units of it are in the cart
type Line struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// Subtotal is price times quantity
func (l Line) Subtotal() float64 {
	return l.Product.Price * float64(l.Quantity)
}

// Cart is the ordered set of lines, at most one per product id, each with a
// positive quantity. Order is the order in which products were first added.
type Cart struct {
	lines []Line
}

// NewCart builds a cart from lines, enforcing the line invariants: lines with
// a non-positive quantity are dropped and repeated product ids are merged
// into the first occurrence.
func NewCart(lines []Line) Cart {
	c := Cart{lines: make([]Line, 0, len(lines))}
	for _, l := range lines {
		if l.Quantity <= 0 {
			continue
		}
		if i := c.index(l.Product.ID); i >= 0 {
			c.lines[i].Quantity += l.Quantity
			continue
		}
		c.lines = append(c.lines, l)
	}
	return c
}

// Add increments the line for p, or appends a new line with quantity 1
func (c *Cart) Add(p catalog.Product) {
	if i := c.index(p.ID); i >= 0 {
		c.lines[i].Quantity++
		return
	}
	c.lines = append(c.lines, Line{Product: p, Quantity: 1})
}

// Remove deletes the line for productID, if any
func (c *Cart) Remove(productID int) {
	if i := c.index(productID); i >= 0 {
		c.lines = slices.Delete(c.lines, i, i+1)
	}
}

// SetQuantity sets an absolute quantity. Non-positive quantities remove the
// line; unknown ids are ignored.
func (c *Cart) SetQuantity(productID, quantity int) {
	i := c.index(productID)
	if i < 0 {
		return
	}
	if quantity <= 0 {
		c.lines = slices.Delete(c.lines, i, i+1)
		return
	}
	c.lines[i].Quantity = quantity
}

// Clear empties the cart in place
func (c *Cart) Clear() {
	c.lines = c.lines[:0]
}

// Total is the sum of line subtotals
func (c Cart) Total() float64 {
	var total float64
	for _, l := range c.lines {
		total += l.Subtotal()
	}
	return total
}

// Count is the sum of line quantities
func (c Cart) Count() int {
	var count int
	for _, l := range c.lines {
		count += l.Quantity
	}
	return count
}

// Len is the number of distinct products
func (c Cart) Len() int {
	return len(c.lines)
}

// IsEmpty reports whether the cart has no lines
func (c Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Lines returns a copy of the lines in cart order
func (c Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Line returns the line for productID
func (c Cart) Line(productID int) (Line, bool) {
	if i := c.index(productID); i >= 0 {
		return c.lines[i], true
	}
	return Line{}, false
}

// Clone returns an independent copy
func (c Cart) Clone() Cart {
	return Cart{lines: c.Lines()}
}

func (c Cart) index(productID int) int {
	return slices.IndexFunc(c.lines, func(l Line) bool { return l.Product.ID == productID })
}
