package storefront

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartAddItem(t *testing.T) {
	n := &recordingNotifier{}
	c := NewCart(n)
	chair := product("p1", "Godrej Ergonomic Office Chair", "12999.00")
	phones := product("p2", "boAt Rockerz 550 Headphones", "1999.00")

	c.AddItem(chair)
	c.AddItem(phones)
	c.AddItem(chair)

	items := c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "p1", items[0].ID)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, "p2", items[1].ID)
	assert.Equal(t, 1, items[1].Quantity)
	assert.Equal(t, 3, c.Count())
	assert.True(t, c.IsOpen())
	assert.Equal(t, "27997", c.Total().String())

	require.Len(t, n.all(), 3)
	assert.Equal(t, pushed{"Added Godrej Ergonomic Office Chair to cart", SeveritySuccess}, n.last())
}

func TestCartUpdateQuantity(t *testing.T) {
	tests := []struct {
		name  string
		id    string
		delta int
		want  int
	}{
		{name: "increment", id: "p7", delta: 1, want: 3},
		{name: "decrement", id: "p7", delta: -1, want: 1},
		{name: "to zero is ignored", id: "p7", delta: -2, want: 2},
		{name: "below zero is ignored", id: "p7", delta: -5, want: 2},
		{name: "unknown id", id: "p404", delta: 1, want: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCart(&recordingNotifier{})
			iphone := product("p7", "iPhone 15 (128GB)", "79900.00")
			c.AddItem(iphone)
			c.AddItem(iphone)

			c.UpdateQuantity(tt.id, tt.delta)

			items := c.Items()
			require.Len(t, items, 1)
			assert.Equal(t, tt.want, items[0].Quantity)
		})
	}
}

func TestCartRemoveAndClear(t *testing.T) {
	c := NewCart(&recordingNotifier{})
	c.AddItem(product("p6", "Jaipur Cotton Bedsheet (King)", "849.00"))
	c.AddItem(product("p9", "Lakme Absolute Lipstick", "750.00"))

	c.RemoveItem("p404")
	assert.Len(t, c.Items(), 2)

	c.RemoveItem("p6")
	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "p9", items[0].ID)
	assert.Equal(t, "750", c.Total().String())

	c.Clear()
	assert.Empty(t, c.Items())
	assert.Zero(t, c.Count())
	assert.True(t, c.Total().IsZero())
	assert.False(t, c.IsOpen())
}

func TestCartSubmission(t *testing.T) {
	c := NewCart(&recordingNotifier{})
	_, ok := c.submission()
	assert.False(t, ok)

	c.AddItem(product("p5", "Logitech MX Master 3S", "8995.00"))
	c.UpdateQuantity("p5", 1)

	sub, ok := c.submission()
	require.True(t, ok)
	require.Len(t, sub.Items, 1)
	assert.Equal(t, "p5", sub.Items[0].ProductID)
	assert.Equal(t, "Logitech MX Master 3S", sub.Items[0].ProductName)
	assert.Equal(t, 2, sub.Items[0].Quantity)
	assert.Equal(t, "17990", sub.Total.String())
}
