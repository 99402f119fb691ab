package usecase

import (
	"encoding/json"

	"github.com/aalvaropc/shopcart/internal/domain"
)

// MoneyPlaces is the number of fractional digits money is rendered with.
const MoneyPlaces = 2

type receiptLineJSON struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Quantity      int    `json:"quantity"`
	Discount      string `json:"discount"`
	OriginalPrice string `json:"original_price"`
	UnitPrice     string `json:"unit_price"`
	LineTotal     string `json:"line_total"`
}

type receiptJSON struct {
	Items []receiptLineJSON `json:"items"`
	Total string            `json:"total"`
}

func toReceiptJSON(r domain.Receipt) receiptJSON {
	out := receiptJSON{
		Items: make([]receiptLineJSON, 0, len(r.Lines)),
		Total: r.Total.StringFixed(MoneyPlaces),
	}
	for _, l := range r.Lines {
		out.Items = append(out.Items, receiptLineJSON{
			ID:            l.ItemID,
			Name:          l.Name,
			Quantity:      l.Quantity,
			Discount:      l.Discount,
			OriginalPrice: l.OriginalPrice.StringFixed(MoneyPlaces),
			UnitPrice:     l.UnitPrice.StringFixed(MoneyPlaces),
			LineTotal:     l.LineTotal.StringFixed(MoneyPlaces),
		})
	}
	return out
}

// EncodeReceipt renders r as JSON. Money fields are fixed two-digit strings
// so JSONPath expectations compare them textually.
func EncodeReceipt(r domain.Receipt) ([]byte, error) {
	return json.Marshal(toReceiptJSON(r))
}

// EncodeReceiptIndent is EncodeReceipt for humans.
func EncodeReceiptIndent(r domain.Receipt) ([]byte, error) {
	return json.MarshalIndent(toReceiptJSON(r), "", "  ")
}
