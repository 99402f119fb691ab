package domain

import (
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustProduct(t *testing.T, id ProductID) *Product {
	t.Helper()
	p, err := NewProduct(id)
	require.NoError(t, err)
	return p
}

func sequentialIDs() CartOption {
	n := 0
	return WithIDGenerator(func() string {
		n++
		return fmt.Sprintf("item-%d", n)
	})
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(want).Equal(got), "want %s, got %s", want, got)
}

func TestShoppingCart_EmptyTotalIsZero(t *testing.T) {
	c := NewShoppingCart()
	assertDecimal(t, "0", c.TotalBill())
	assert.Equal(t, 0, c.Len())
}

func TestShoppingCart_LaptopWithTenPercent(t *testing.T) {
	c := NewShoppingCart()
	it := c.AddItem(mustProduct(t, ProductLaptop), 2, StrategyFor(10))

	assertDecimal(t, "1800", it.TotalPrice())
	assertDecimal(t, "900", it.UnitPrice())
	assertDecimal(t, "1800", c.TotalBill())
}

func TestShoppingCart_MixedBasket(t *testing.T) {
	c := NewShoppingCart()
	hp := c.AddItem(mustProduct(t, ProductHeadphones), 3, StrategyFor(0))
	mob := c.AddItem(mustProduct(t, ProductMobile), 1, StrategyFor(50))

	assertDecimal(t, "150", hp.TotalPrice())
	assertDecimal(t, "175", mob.TotalPrice())
	assertDecimal(t, "325", c.TotalBill())
}

func TestShoppingCart_AddItemDuplicatesProduct(t *testing.T) {
	proto := mustProduct(t, ProductLaptop)
	c := NewShoppingCart()
	it := c.AddItem(proto, 1, nil)

	assert.NotSame(t, proto, it.Product)
	assert.IsType(t, NoDiscount{}, it.Discount)

	it.Product.Available = false
	assert.True(t, proto.Available)
}

func TestShoppingCart_AddItemAssignsIDs(t *testing.T) {
	c := NewShoppingCart(sequentialIDs())
	a := c.AddItem(mustProduct(t, ProductLaptop), 1, nil)
	b := c.AddItem(mustProduct(t, ProductLaptop), 1, nil)

	assert.Equal(t, "item-1", a.ID)
	assert.Equal(t, "item-2", b.ID)
}

func TestShoppingCart_DefaultIDsAreUnique(t *testing.T) {
	c := NewShoppingCart()
	a := c.AddItem(mustProduct(t, ProductMobile), 1, nil)
	b := c.AddItem(mustProduct(t, ProductMobile), 1, nil)

	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestShoppingCart_UpdateQuantity(t *testing.T) {
	c := NewShoppingCart()
	it := c.AddItem(mustProduct(t, ProductLaptop), 2, StrategyFor(10))

	assert.True(t, c.UpdateQuantity("Laptop", 5))
	assert.Equal(t, 5, it.Quantity)
	assertDecimal(t, "4500", it.TotalPrice())

	assert.False(t, c.UpdateQuantity("Tablet", 1))
}

func TestShoppingCart_UpdateQuantityOnlyFirstMatch(t *testing.T) {
	c := NewShoppingCart()
	first := c.AddItem(mustProduct(t, ProductMobile), 1, nil)
	second := c.AddItem(mustProduct(t, ProductMobile), 1, nil)

	require.True(t, c.UpdateQuantity("Mobile", 4))
	assert.Equal(t, 4, first.Quantity)
	assert.Equal(t, 1, second.Quantity)
}

func TestShoppingCart_UpdateQuantityIsCaseSensitive(t *testing.T) {
	c := NewShoppingCart()
	c.AddItem(mustProduct(t, ProductMobile), 1, nil)

	assert.False(t, c.UpdateQuantity("mobile", 4))
}

func TestShoppingCart_RemoveItem(t *testing.T) {
	c := NewShoppingCart()
	c.AddItem(mustProduct(t, ProductMobile), 1, nil)
	c.AddItem(mustProduct(t, ProductLaptop), 1, nil)

	c.RemoveItem("Mobile")

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Laptop", items[0].Product.Name)
	assertDecimal(t, "1000", c.TotalBill())
}

func TestShoppingCart_RemoveItemDropsAllMatches(t *testing.T) {
	c := NewShoppingCart()
	c.AddItem(mustProduct(t, ProductMobile), 1, nil)
	c.AddItem(mustProduct(t, ProductLaptop), 1, nil)
	c.AddItem(mustProduct(t, ProductMobile), 2, StrategyFor(10))

	c.RemoveItem("Mobile")

	require.Equal(t, 1, c.Len())
	assert.Equal(t, "Laptop", c.Items()[0].Product.Name)
}

func TestShoppingCart_RemoveMissingIsNoop(t *testing.T) {
	c := NewShoppingCart()
	c.AddItem(mustProduct(t, ProductHeadphones), 2, nil)

	c.RemoveItem("Tablet")

	assert.Equal(t, 1, c.Len())
	assertDecimal(t, "100", c.TotalBill())
}

func TestShoppingCart_PreservesInsertionOrder(t *testing.T) {
	c := NewShoppingCart()
	c.AddItem(mustProduct(t, ProductMobile), 1, nil)
	c.AddItem(mustProduct(t, ProductLaptop), 1, nil)
	c.AddItem(mustProduct(t, ProductHeadphones), 1, nil)
	c.RemoveItem("Laptop")

	var names []string
	for _, it := range c.Items() {
		names = append(names, it.Product.Name)
	}
	assert.Equal(t, []string{"Mobile", "Headphones"}, names)
}

func TestCartItem_TotalPriceIsIdempotent(t *testing.T) {
	c := NewShoppingCart()
	it := c.AddItem(mustProduct(t, ProductMobile), 3, StrategyFor(12.5))

	first := it.TotalPrice()
	second := it.TotalPrice()
	assert.True(t, first.Equal(second))
}

func TestCartItem_TotalPriceTracksStrategyChange(t *testing.T) {
	c := NewShoppingCart()
	it := c.AddItem(mustProduct(t, ProductHeadphones), 2, nil)
	assertDecimal(t, "100", it.TotalPrice())

	it.Discount = StrategyFor(50)
	assertDecimal(t, "50", it.TotalPrice())
}

func TestShoppingCart_ItemsReturnsCopy(t *testing.T) {
	c := NewShoppingCart()
	c.AddItem(mustProduct(t, ProductLaptop), 1, nil)

	items := c.Items()
	items[0] = nil
	assert.NotNil(t, c.Items()[0])
}
