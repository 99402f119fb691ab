package domain

import "github.com/shopspring/decimal"

// ReceiptLine is the printed view of one cart entry.
type ReceiptLine struct {
	ItemID        string
	Name          string
	Quantity      int
	Discount      string
	OriginalPrice decimal.Decimal
	UnitPrice     decimal.Decimal
	LineTotal     decimal.Decimal
}

// Receipt is a snapshot of a cart at checkout.
type Receipt struct {
	Lines []ReceiptLine
	Total decimal.Decimal
}

// NewReceipt walks the cart in order.
func NewReceipt(cart *ShoppingCart) Receipt {
	items := cart.Items()
	r := Receipt{
		Lines: make([]ReceiptLine, 0, len(items)),
		Total: cart.TotalBill(),
	}
	for _, it := range items {
		r.Lines = append(r.Lines, ReceiptLine{
			ItemID:        it.ID,
			Name:          it.Product.Name,
			Quantity:      it.Quantity,
			Discount:      it.Discount.String(),
			OriginalPrice: it.Product.Price,
			UnitPrice:     it.UnitPrice(),
			LineTotal:     it.TotalPrice(),
		})
	}
	return r
}
