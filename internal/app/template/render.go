package template

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/aalvaropc/shopcart/internal/domain"
)

// LineKeys are the placeholders a receipt line template may use.
var LineKeys = []string{
	"id", "name", "quantity", "discount",
	"currency", "original_price", "unit_price", "line_total",
}

// RenderString replaces {{key}} placeholders with vars values.
// It returns an error if a key is missing or a placeholder is malformed.
func RenderString(input string, vars map[string]string) (string, error) {
	if input == "" {
		return "", nil
	}

	var out strings.Builder
	err := walk(input, func(text, key string) error {
		out.WriteString(text)
		if key == "" {
			return nil
		}
		value, ok := vars[key]
		if !ok {
			return templateError(input, fmt.Errorf("missing variable %q", key))
		}
		out.WriteString(value)
		return nil
	})
	if err != nil {
		return "", err
	}
	return out.String(), nil
}

// CheckLine reports whether tmpl only references LineKeys.
func CheckLine(tmpl string) error {
	known := make(map[string]bool, len(LineKeys))
	for _, k := range LineKeys {
		known[k] = true
	}
	return walk(tmpl, func(_, key string) error {
		if key != "" && !known[key] {
			return templateError(tmpl, fmt.Errorf("unknown placeholder %q", key))
		}
		return nil
	})
}

// RenderLine renders one receipt line. Money is printed with places
// fractional digits.
func RenderLine(tmpl string, l domain.ReceiptLine, currency string, places int32) (string, error) {
	money := func(d decimal.Decimal) string { return d.StringFixed(places) }
	return RenderString(tmpl, map[string]string{
		"id":             l.ItemID,
		"name":           l.Name,
		"quantity":       strconv.Itoa(l.Quantity),
		"discount":       l.Discount,
		"currency":       currency,
		"original_price": money(l.OriginalPrice),
		"unit_price":     money(l.UnitPrice),
		"line_total":     money(l.LineTotal),
	})
}

// walk calls fn for each literal run followed by its placeholder key; the
// trailing run is reported with an empty key.
func walk(input string, fn func(text, key string) error) error {
	rest := input
	for {
		start := strings.Index(rest, "{{")
		if start == -1 {
			return fn(rest, "")
		}

		text := rest[:start]
		rest = rest[start+2:]

		end := strings.Index(rest, "}}")
		if end == -1 {
			return templateError(input, fmt.Errorf("unclosed template expression"))
		}

		key := strings.TrimSpace(rest[:end])
		if key == "" {
			return templateError(input, fmt.Errorf("empty template expression"))
		}
		if err := fn(text, key); err != nil {
			return err
		}
		rest = rest[end+2:]
	}
}

func templateError(input string, err error) error {
	return &domain.OpError{
		Op:   "template.render",
		Kind: domain.KindInvalidConfig,
		Err:  fmt.Errorf("%w in %q: %w", err, input, domain.ErrInvalidConfig),
	}
}
