package usecase

import (
	"fmt"

	"github.com/aalvaropc/shopcart/internal/domain"
)

// Outcome describes what a command did to the cart.
type Outcome struct {
	Item    *domain.CartItem // set by add
	Found   bool             // set by update
	Removed int              // set by remove
}

// ApplyCommand runs one cart command. Product names are normalized the way
// the prompt normalizes them before they reach the cart. Only add rejects
// unknown products; update and remove on a missing name are silent.
func ApplyCommand(cart *domain.ShoppingCart, catalog *domain.Catalog, cmd domain.Command) (Outcome, error) {
	switch cmd.Action {
	case domain.ActionAdd:
		p, err := catalog.Lookup(cmd.Product)
		if err != nil {
			return Outcome{}, err
		}
		it := cart.AddItem(p, cmd.Quantity, domain.StrategyFor(cmd.Discount))
		return Outcome{Item: it}, nil

	case domain.ActionUpdate:
		found := cart.UpdateQuantity(domain.NormalizeProductName(cmd.Product), cmd.Quantity)
		return Outcome{Found: found}, nil

	case domain.ActionRemove:
		before := cart.Len()
		cart.RemoveItem(domain.NormalizeProductName(cmd.Product))
		return Outcome{Removed: before - cart.Len()}, nil

	default:
		return Outcome{}, &domain.OpError{
			Op:   "usecase.apply",
			Kind: domain.KindInvalidInput,
			Err:  fmt.Errorf("unsupported action %q: %w", cmd.Action, domain.ErrInvalidInput),
		}
	}
}
