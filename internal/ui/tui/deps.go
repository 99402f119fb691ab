package tui

import (
	"log/slog"

	"github.com/aalvaropc/shopcart/internal/domain"
	"github.com/aalvaropc/shopcart/internal/ports"
)

// Deps is everything the cart screen needs. Cart is mutated in place so the
// caller can print the receipt once the program exits.
type Deps struct {
	Cart    *domain.ShoppingCart
	Catalog *domain.Catalog
	Config  domain.Config

	WorkspaceLocator ports.WorkspaceLocator
	Sessions         ports.SessionLoader

	Logger *slog.Logger
}
