// Package storefront holds the shopper-facing state of one browsing
// session: cart, wishlist, notifications, catalog filtering and checkout.
package storefront

import (
	"fmt"
	"sync"

	"github.com/indikart/indikart-backend/internal/modules/catalog"
	"github.com/indikart/indikart-backend/internal/modules/order"
	"github.com/shopspring/decimal"
)

// CartItem is a product snapshot with a quantity of at least one.
type CartItem struct {
	catalog.Product
	Quantity int `json:"quantity"`
}

// Cart is an ordered list of line items, at most one per product id.
type Cart struct {
	mu       sync.Mutex
	items    []CartItem
	open     bool
	notifier Notifier
}

func NewCart(notifier Notifier) *Cart {
	return &Cart{notifier: notifier}
}

// AddItem increments the line for p or appends a new one, opens the cart
// and announces the addition.
func (c *Cart) AddItem(p catalog.Product) {
	c.mu.Lock()
	if i := c.indexOf(p.ID); i >= 0 {
		c.items[i].Quantity++
	} else {
		c.items = append(c.items, CartItem{Product: p, Quantity: 1})
	}
	c.open = true
	c.mu.Unlock()

	c.notifier.Push(fmt.Sprintf("Added %s to cart", p.Name), SeveritySuccess)
}

func (c *Cart) RemoveItem(productID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i := c.indexOf(productID); i >= 0 {
		c.items = append(c.items[:i], c.items[i+1:]...)
	}
}

// UpdateQuantity adds delta to a line's quantity. Results below one are
// ignored; use RemoveItem to drop a line.
func (c *Cart) UpdateQuantity(productID string, delta int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.indexOf(productID)
	if i < 0 {
		return
	}
	if q := c.items[i].Quantity + delta; q > 0 {
		c.items[i].Quantity = q
	}
}

// Clear empties the cart and hides it.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
	c.open = false
}

func (c *Cart) Total() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.total()
}

func (c *Cart) Items() []CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// Count is the number of units, not lines.
func (c *Cart) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, it := range c.items {
		n += it.Quantity
	}
	return n
}

func (c *Cart) IsOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.open
}

func (c *Cart) SetOpen(open bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.open = open
}

// submission freezes the current lines into an order payload. ok is false
// when the cart is empty.
func (c *Cart) submission() (order.Submission, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.items) == 0 {
		return order.Submission{}, false
	}
	items := make([]order.LineItem, 0, len(c.items))
	for _, it := range c.items {
		items = append(items, order.LineItem{
			ProductID:   it.ID,
			ProductName: it.Name,
			Quantity:    it.Quantity,
			Price:       it.Price,
			Image:       it.Image,
		})
	}
	return order.Submission{Items: items, Total: c.total()}, true
}

// ── helpers ───────────────────────────────────────────────────────────────────

func (c *Cart) indexOf(productID string) int {
	for i, it := range c.items {
		if it.ID == productID {
			return i
		}
	}
	return -1
}

func (c *Cart) total() decimal.Decimal {
	sum := decimal.Zero
	for _, it := range c.items {
		sum = sum.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return sum
}
