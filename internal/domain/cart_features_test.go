package domain

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/cucumber/godog"
	"github.com/shopspring/decimal"
)

type cartTestContext struct {
	catalog *Catalog
	cart    *ShoppingCart
	found   *bool
}

func (c *cartTestContext) reset() {
	c.catalog = DefaultCatalog()
	c.cart = NewShoppingCart()
	c.found = nil
}

func (c *cartTestContext) anEmptyCart() error {
	c.cart = NewShoppingCart()
	return nil
}

func (c *cartTestContext) iAddWithADiscount(qty int, name string, pct float64) error {
	p, err := c.catalog.Lookup(name)
	if err != nil {
		return err
	}
	c.cart.AddItem(p, qty, StrategyFor(pct))
	return nil
}

func (c *cartTestContext) iUpdateToQuantity(name string, qty int) error {
	found := c.cart.UpdateQuantity(name, qty)
	c.found = &found
	return nil
}

func (c *cartTestContext) theUpdateReports(outcome string) error {
	if c.found == nil {
		return errors.New("no update was performed")
	}
	want := outcome == "found"
	if *c.found != want {
		return fmt.Errorf("expected update to report %s", outcome)
	}
	return nil
}

func (c *cartTestContext) iRemove(name string) error {
	c.cart.RemoveItem(name)
	return nil
}

func (c *cartTestContext) theLineTotalOfItemIs(n int, want string) error {
	items := c.cart.Items()
	if n < 1 || n > len(items) {
		return fmt.Errorf("cart has %d items, no item %d", len(items), n)
	}
	got := items[n-1].TotalPrice()
	if !got.Equal(decimal.RequireFromString(want)) {
		return fmt.Errorf("expected line total %s, got %s", want, got)
	}
	return nil
}

func (c *cartTestContext) theTotalBillIs(want string) error {
	got := c.cart.TotalBill()
	if !got.Equal(decimal.RequireFromString(want)) {
		return fmt.Errorf("expected total %s, got %s", want, got)
	}
	return nil
}

func (c *cartTestContext) theCartContainsItems(n int) error {
	if c.cart.Len() != n {
		return fmt.Errorf("expected %d items, got %d", n, c.cart.Len())
	}
	return nil
}

func (c *cartTestContext) theCartContainsOnly(name string) error {
	items := c.cart.Items()
	if len(items) != 1 || items[0].Product.Name != name {
		return fmt.Errorf("expected only %q in cart, got %d items", name, len(items))
	}
	return nil
}

func initializeCartScenario(ctx *godog.ScenarioContext) {
	tc := &cartTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	ctx.Step(`^an empty cart$`, tc.anEmptyCart)
	ctx.Step(`^I add (-?\d+) "([^"]*)" with a (-?\d+(?:\.\d+)?)% discount$`, tc.iAddWithADiscount)
	ctx.Step(`^I update "([^"]*)" to quantity (-?\d+)$`, tc.iUpdateToQuantity)
	ctx.Step(`^the update reports (found|not found)$`, tc.theUpdateReports)
	ctx.Step(`^I remove "([^"]*)"$`, tc.iRemove)
	ctx.Step(`^the line total of item (\d+) is "([^"]*)"$`, tc.theLineTotalOfItemIs)
	ctx.Step(`^the total bill is "([^"]*)"$`, tc.theTotalBillIs)
	ctx.Step(`^the cart contains (\d+) items?$`, tc.theCartContainsItems)
	ctx.Step(`^the cart contains only "([^"]*)"$`, tc.theCartContainsOnly)
}

func TestCartFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: initializeCartScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"testdata/cart.feature"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
