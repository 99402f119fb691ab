package assert

import (
	"strings"
	"testing"

	"github.com/aalvaropc/shopcart/internal/domain"
)

const receipt = `{
  "items": [
    {"id": "a", "name": "Laptop", "quantity": 2, "discount": "10%", "original_price": "1000.00", "unit_price": "900.00", "line_total": "1800.00"}
  ],
  "total": "1800.00"
}`

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

func evalOne(t *testing.T, expr string, e domain.ReceiptExpectation) domain.AssertionResult {
	t.Helper()
	out := Evaluate(map[string]domain.ReceiptExpectation{expr: e}, []byte(receipt))
	if len(out) != 1 {
		t.Fatalf("expected 1 result, got %d", len(out))
	}
	return out[0]
}

func TestEvaluate_Empty(t *testing.T) {
	if out := Evaluate(nil, []byte(receipt)); out != nil {
		t.Fatalf("expected nil, got %v", out)
	}
}

func TestEvaluate_Exists(t *testing.T) {
	r := evalOne(t, "$.items", domain.ReceiptExpectation{Exists: true})
	if !r.Passed {
		t.Fatalf("expected pass: %s", r.Message)
	}
	if r.Name != "jsonpath.exists" {
		t.Fatalf("expected Name=jsonpath.exists, got %q", r.Name)
	}
}

func TestEvaluate_ExistsMissingKey(t *testing.T) {
	r := evalOne(t, "$.coupon", domain.ReceiptExpectation{Exists: true})
	if r.Passed {
		t.Fatalf("expected fail for missing key")
	}
}

func TestEvaluate_ExistsEmptyArray(t *testing.T) {
	out := Evaluate(map[string]domain.ReceiptExpectation{
		"$.items": {Exists: true},
	}, []byte(`{"items": [], "total": "0.00"}`))
	if len(out) != 1 || out[0].Passed {
		t.Fatalf("expected exists to fail on empty items, got %+v", out)
	}
}

func TestEvaluate_Eq(t *testing.T) {
	r := evalOne(t, "$.total", domain.ReceiptExpectation{Eq: strPtr("1800.00")})
	if !r.Passed {
		t.Fatalf("expected pass: %s", r.Message)
	}

	r = evalOne(t, "$.total", domain.ReceiptExpectation{Eq: strPtr("1800")})
	if r.Passed {
		t.Fatalf("expected fail")
	}
	if !strings.Contains(r.Message, `expected "1800", got "1800.00"`) {
		t.Fatalf("unexpected message: %q", r.Message)
	}
}

func TestEvaluate_EqNumber(t *testing.T) {
	r := evalOne(t, "$.items[0].quantity", domain.ReceiptExpectation{Eq: strPtr("2")})
	if !r.Passed {
		t.Fatalf("expected pass: %s", r.Message)
	}
}

func TestEvaluate_Contains(t *testing.T) {
	r := evalOne(t, "$.items[0].name", domain.ReceiptExpectation{Contains: strPtr("apt")})
	if !r.Passed {
		t.Fatalf("expected pass: %s", r.Message)
	}
	r = evalOne(t, "$.items[0].name", domain.ReceiptExpectation{Contains: strPtr("Mobile")})
	if r.Passed {
		t.Fatalf("expected fail")
	}
}

func TestEvaluate_Matches(t *testing.T) {
	r := evalOne(t, "$.items[0].discount", domain.ReceiptExpectation{Matches: strPtr(`^\d+%$`)})
	if !r.Passed {
		t.Fatalf("expected pass: %s", r.Message)
	}
}

func TestEvaluate_MatchesInvalidRegex(t *testing.T) {
	r := evalOne(t, "$.total", domain.ReceiptExpectation{Matches: strPtr(`[`)})
	if r.Passed {
		t.Fatalf("expected fail for invalid regex")
	}
	if !strings.Contains(r.Message, "invalid regex") {
		t.Fatalf("unexpected message: %q", r.Message)
	}
}

func TestEvaluate_GtLtOnMoneyStrings(t *testing.T) {
	out := Evaluate(map[string]domain.ReceiptExpectation{
		"$.total": {Gt: floatPtr(1000), Lt: floatPtr(2000)},
	}, []byte(receipt))
	if len(out) != 2 {
		t.Fatalf("expected 2 results, got %d", len(out))
	}
	for _, r := range out {
		if !r.Passed {
			t.Fatalf("expected pass: %s", r.Message)
		}
	}

	r := evalOne(t, "$.items[0].name", domain.ReceiptExpectation{Gt: floatPtr(1)})
	if r.Passed {
		t.Fatalf("expected fail on non-numeric value")
	}
}

func TestEvaluate_InvalidJSON(t *testing.T) {
	out := Evaluate(map[string]domain.ReceiptExpectation{
		"$.total": {Exists: true, Eq: strPtr("1")},
	}, []byte("not json"))
	if len(out) != 2 {
		t.Fatalf("expected 2 results, got %d", len(out))
	}
	for _, r := range out {
		if r.Passed {
			t.Fatalf("expected fail on invalid JSON")
		}
	}
}

func TestEvaluate_StableOrder(t *testing.T) {
	out := Evaluate(map[string]domain.ReceiptExpectation{
		"$.total":         {Exists: true},
		"$.items":         {Exists: true},
		"$.items[0].name": {Exists: true},
	}, []byte(receipt))

	var exprs []string
	for _, r := range out {
		exprs = append(exprs, strings.SplitN(r.Message, ":", 2)[0])
	}
	want := []string{`jsonpath "$.items"`, `jsonpath "$.items[0].name"`, `jsonpath "$.total"`}
	if strings.Join(exprs, "|") != strings.Join(want, "|") {
		t.Fatalf("unexpected order: %v", exprs)
	}
}
