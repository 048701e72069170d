package domain

import "shop-backoffice/src/services/catalog"

// CartLine is one product selection inside an in-progress order. The unit
// price is copied from the catalog at add time and never re-fetched, so a
// later catalog price change does not silently reprice an open cart.
type CartLine struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  int     `json:"quantity"`
}

// Cart assembles an order from catalog products. A product appears at most
// once; exclusion is expressed by removal, never by a zero quantity.
type Cart struct {
	lines []CartLine
}

func NewCart() *Cart {
	return &Cart{}
}

// AddItem appends the product with quantity 1. Adding a product that is
// already in the cart is a no-op.
func (c *Cart) AddItem(product catalog.Product) {
	for _, line := range c.lines {
		if line.ProductID == product.ID {
			return
		}
	}
	c.lines = append(c.lines, CartLine{
		ProductID: product.ID,
		Name:      product.Name,
		UnitPrice: product.Price,
		Quantity:  1,
	})
}

// RemoveItem drops the matching line. Removing an absent product is a no-op.
func (c *Cart) RemoveItem(productID string) {
	for i, line := range c.lines {
		if line.ProductID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// SetQuantity sets the line quantity, clamped to a minimum of 1.
func (c *Cart) SetQuantity(productID string, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines[i].Quantity = quantity
			return
		}
	}
}

// ChangeQuantity adjusts the line quantity by delta, re-clamped to 1.
func (c *Cart) ChangeQuantity(productID string, delta int) {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			quantity := c.lines[i].Quantity + delta
			if quantity < 1 {
				quantity = 1
			}
			c.lines[i].Quantity = quantity
			return
		}
	}
}

// Lines returns a snapshot copy of the cart content.
func (c *Cart) Lines() []CartLine {
	snapshot := make([]CartLine, len(c.lines))
	copy(snapshot, c.lines)
	return snapshot
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Totals is the computed pricing of a cart for a given discount and tax.
type Totals struct {
	Subtotal    float64 `json:"subtotal"`
	Discount    float64 `json:"discount"`
	Tax         float64 `json:"tax"`
	FinalAmount float64 `json:"finalAmount"`
}

// ComputeTotals derives the order amounts from the cart content. It is a
// pure function of the cart, discount and tax.
func (c *Cart) ComputeTotals(discount, tax float64) Totals {
	var subtotal float64
	for _, line := range c.lines {
		subtotal += line.UnitPrice * float64(line.Quantity)
	}
	return Totals{
		Subtotal:    subtotal,
		Discount:    discount,
		Tax:         tax,
		FinalAmount: subtotal - discount + tax,
	}
}
