package domain

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// ProductID identifies one of the fixed product variants.
type ProductID string

const (
	ProductLaptop     ProductID = "Laptop"
	ProductHeadphones ProductID = "Headphones"
	ProductMobile     ProductID = "Mobile"
)

// Product is a catalog item. Name and Price are fixed per variant.
type Product struct {
	ID        ProductID
	Name      string
	Price     decimal.Decimal
	Available bool
}

// Duplicate returns an independent copy of the same variant with the same
// availability.
func (p *Product) Duplicate() *Product {
	cp := *p
	return &cp
}

// ProductOption configures a product at construction.
type ProductOption func(*Product)

// WithAvailability overrides the default availability (true).
func WithAvailability(available bool) ProductOption {
	return func(p *Product) { p.Available = available }
}

type variant struct {
	id    ProductID
	price int64
}

// variants is ordered; the order is what prompts and listings show.
var variants = []variant{
	{id: ProductLaptop, price: 1000},
	{id: ProductHeadphones, price: 50},
	{id: ProductMobile, price: 350},
}

// NewProduct builds the variant identified by id.
func NewProduct(id ProductID, opts ...ProductOption) (*Product, error) {
	for _, v := range variants {
		if v.id != id {
			continue
		}
		p := &Product{
			ID:        v.id,
			Name:      string(v.id),
			Price:     decimal.NewFromInt(v.price),
			Available: true,
		}
		for _, opt := range opts {
			opt(p)
		}
		return p, nil
	}
	return nil, &UnknownProductError{Name: string(id)}
}

// Catalog is the enumerated lookup table from validated product IDs to
// prototypes. Prototypes are never handed out; callers get duplicates.
type Catalog struct {
	order      []ProductID
	prototypes map[ProductID]*Product
}

// DefaultCatalog returns a catalog holding every product variant.
func DefaultCatalog() *Catalog {
	c := &Catalog{prototypes: make(map[ProductID]*Product, len(variants))}
	for _, v := range variants {
		p, _ := NewProduct(v.id)
		c.order = append(c.order, v.id)
		c.prototypes[v.id] = p
	}
	return c
}

// Lookup normalizes name (see NormalizeProductName) and returns a duplicate
// of the matching prototype.
func (c *Catalog) Lookup(name string) (*Product, error) {
	id, err := c.Parse(name)
	if err != nil {
		return nil, err
	}
	return c.prototypes[id].Duplicate(), nil
}

// Parse validates name against the catalog.
func (c *Catalog) Parse(name string) (ProductID, error) {
	id := ProductID(NormalizeProductName(name))
	if _, ok := c.prototypes[id]; !ok {
		return "", &UnknownProductError{Name: strings.TrimSpace(name)}
	}
	return id, nil
}

// Products returns duplicates of every prototype in listing order.
func (c *Catalog) Products() []*Product {
	out := make([]*Product, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.prototypes[id].Duplicate())
	}
	return out
}

// Names returns product names in listing order.
func (c *Catalog) Names() []string {
	out := make([]string, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.prototypes[id].Name)
	}
	return out
}

// NormalizeProductName trims s and capitalizes it: first rune upper case,
// the rest lower case ("lAPTOP" -> "Laptop").
func NormalizeProductName(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
