package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartItem binds an owned product duplicate to a quantity and a discount
// strategy.
type CartItem struct {
	ID       string
	Product  *Product
	Quantity int
	Discount DiscountStrategy
}

// TotalPrice is the line total. It is recomputed on every call.
func (it *CartItem) TotalPrice() decimal.Decimal {
	return it.Discount.Apply(it.Product.Price, it.Quantity)
}

// UnitPrice is the discounted price of a single unit.
func (it *CartItem) UnitPrice() decimal.Decimal {
	return it.Discount.Apply(it.Product.Price, 1)
}

// ShoppingCart is an ordered collection of cart items. It is not safe for
// concurrent use.
type ShoppingCart struct {
	items []*CartItem
	newID func() string
}

// CartOption configures a ShoppingCart.
type CartOption func(*ShoppingCart)

// WithIDGenerator overrides item ID generation (useful for tests).
func WithIDGenerator(gen func() string) CartOption {
	return func(c *ShoppingCart) {
		if gen != nil {
			c.newID = gen
		}
	}
}

func NewShoppingCart(opts ...CartOption) *ShoppingCart {
	c := &ShoppingCart{newID: uuid.NewString}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// AddItem duplicates product and appends a new entry. Entries with the same
// product name may coexist. A nil discount means NoDiscount.
func (c *ShoppingCart) AddItem(product *Product, quantity int, discount DiscountStrategy) *CartItem {
	if discount == nil {
		discount = NoDiscount{}
	}
	it := &CartItem{
		ID:       c.newID(),
		Product:  product.Duplicate(),
		Quantity: quantity,
		Discount: discount,
	}
	c.items = append(c.items, it)
	return it
}

// UpdateQuantity sets the quantity of the first entry named productName.
// It reports whether such an entry exists; later duplicates are untouched.
func (c *ShoppingCart) UpdateQuantity(productName string, quantity int) bool {
	for _, it := range c.items {
		if it.Product.Name == productName {
			it.Quantity = quantity
			return true
		}
	}
	return false
}

// RemoveItem drops every entry named productName. Removing a name that is
// not in the cart is a no-op.
func (c *ShoppingCart) RemoveItem(productName string) {
	kept := make([]*CartItem, 0, len(c.items))
	for _, it := range c.items {
		if it.Product.Name != productName {
			kept = append(kept, it)
		}
	}
	c.items = kept
}

// TotalBill sums the line totals in cart order. An empty cart totals zero.
func (c *ShoppingCart) TotalBill() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.items {
		total = total.Add(it.TotalPrice())
	}
	return total
}

// Items returns the entries in cart order. The slice is a copy; the items
// are not.
func (c *ShoppingCart) Items() []*CartItem {
	out := make([]*CartItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *ShoppingCart) Len() int { return len(c.items) }
