package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalog "github.com/tair/storefront/internal/catalog/domain"
)

var (
	mascara = catalog.Product{ID: 1, Title: "Essence Mascara", Category: "beauty", Brand: "Essence", Price: 9.99, Stock: 5}
	palette = catalog.Product{ID: 2, Title: "Eyeshadow Palette", Category: "beauty", Price: 19.99, DiscountPercentage: 18.19}
	apple   = catalog.Product{ID: 3, Title: "Apple", Category: "groceries", Price: 1.99, Rating: 4.2, Thumbnail: "https://cdn/apple.png"}
)

func TestAddMergesSameProduct(t *testing.T) {
	var c Cart
	c.Add(mascara)
	c.Add(mascara)

	require.Equal(t, 1, c.Len())
	line, ok := c.Line(mascara.ID)
	require.True(t, ok)
	assert.Equal(t, 2, line.Quantity)
}

func TestAddKeepsInsertionOrder(t *testing.T) {
	var c Cart
	c.Add(palette)
	c.Add(mascara)
	c.Add(palette)
	c.Add(apple)

	lines := c.Lines()
	require.Len(t, lines, 3)
	assert.Equal(t, []int{2, 1, 3}, []int{lines[0].Product.ID, lines[1].Product.ID, lines[2].Product.ID})
}

func TestAddIgnoresStock(t *testing.T) {
	var c Cart
	soldOut := catalog.Product{ID: 9, Price: 1, Stock: 0}
	c.Add(soldOut)
	c.Add(soldOut)

	assert.Equal(t, 2, c.Count())
}

func TestRemoveAbsentIsNoop(t *testing.T) {
	var c Cart
	c.Add(mascara)

	c.Remove(42)
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, 1, c.Count())
}

func TestRemove(t *testing.T) {
	var c Cart
	c.Add(mascara)
	c.Add(palette)

	c.Remove(mascara.ID)
	_, ok := c.Line(mascara.ID)
	assert.False(t, ok)
	assert.Equal(t, 1, c.Len())
}

func TestSetQuantity(t *testing.T) {
	tests := []struct {
		name      string
		id        int
		quantity  int
		wantLines int
		wantCount int
	}{
		{"absolute set", mascara.ID, 5, 2, 6},
		{"zero removes", mascara.ID, 0, 1, 1},
		{"negative removes", mascara.ID, -5, 1, 1},
		{"absent id ignored", 77, 3, 2, 2},
		{"absent id with zero ignored", 77, 0, 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Cart
			c.Add(mascara)
			c.Add(palette)

			c.SetQuantity(tt.id, tt.quantity)
			assert.Equal(t, tt.wantLines, c.Len())
			assert.Equal(t, tt.wantCount, c.Count())
		})
	}
}

func TestClear(t *testing.T) {
	var c Cart
	c.Add(mascara)
	c.Add(apple)

	c.Clear()
	assert.True(t, c.IsEmpty())
	assert.Zero(t, c.Count())
	assert.Zero(t, c.Total())

	c.Add(apple)
	assert.Equal(t, 1, c.Len())
}

func TestTotalsOnEmptyCart(t *testing.T) {
	var c Cart
	assert.Zero(t, c.Count())
	assert.Zero(t, c.Total())
	assert.True(t, c.IsEmpty())
}

func TestTotalAndCountLaws(t *testing.T) {
	var c Cart
	c.Add(mascara)
	c.Add(mascara)
	c.Add(palette)
	c.Add(apple)
	c.SetQuantity(apple.ID, 4)

	var wantTotal float64
	var wantCount int
	for _, l := range c.Lines() {
		wantTotal += l.Product.Price * float64(l.Quantity)
		wantCount += l.Quantity
	}

	assert.Equal(t, 7, c.Count())
	assert.Equal(t, wantCount, c.Count())
	assert.InDelta(t, wantTotal, c.Total(), 1e-9)
	assert.InDelta(t, 2*9.99+19.99+4*1.99, c.Total(), 1e-9)
}

func TestLinesReturnsCopy(t *testing.T) {
	var c Cart
	c.Add(mascara)

	lines := c.Lines()
	lines[0].Quantity = 99
	line, _ := c.Line(mascara.ID)
	assert.Equal(t, 1, line.Quantity)
}

func TestCloneIsIndependent(t *testing.T) {
	var c Cart
	c.Add(mascara)

	clone := c.Clone()
	c.Add(mascara)
	c.Add(apple)

	assert.Equal(t, 1, clone.Count())
	assert.Equal(t, 3, c.Count())
}

func TestNewCartNormalizes(t *testing.T) {
	c := NewCart([]Line{
		{Product: mascara, Quantity: 2},
		{Product: apple, Quantity: 0},
		{Product: palette, Quantity: -1},
		{Product: mascara, Quantity: 3},
	})

	require.Equal(t, 1, c.Len())
	line, _ := c.Line(mascara.ID)
	assert.Equal(t, 5, line.Quantity)
}

func TestLineSubtotal(t *testing.T) {
	assert.InDelta(t, 3*19.99, Line{Product: palette, Quantity: 3}.Subtotal(), 1e-9)
}
