package assert

import (
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/aalvaropc/shopcart/internal/domain"
)

// check evaluates one expectation against a resolved JSONPath value.
type check struct {
	name string
	run  func(val any) (bool, string)
}

// Evaluate applies receipt expectations to a JSON receipt document.
// Results are ordered by expression so output is stable.
func Evaluate(expect map[string]domain.ReceiptExpectation, body []byte) []domain.AssertionResult {
	if len(expect) == 0 {
		return nil
	}

	exprs := make([]string, 0, len(expect))
	for expr := range expect {
		exprs = append(exprs, expr)
	}
	sort.Strings(exprs)

	var doc any
	docErr := json.Unmarshal(body, &doc)

	var out []domain.AssertionResult
	for _, expr := range exprs {
		checks := checksFor(expect[expr])
		if docErr != nil {
			out = append(out, failAll(expr, checks, "receipt is not valid JSON")...)
			continue
		}

		val, getErr := jsonpath.Get(expr, doc)
		if getErr != nil {
			out = append(out, failAll(expr, checks, getErr.Error())...)
			continue
		}

		for _, c := range checks {
			passed, msg := c.run(val)
			out = append(out, domain.AssertionResult{
				Name:    "jsonpath." + c.name,
				Passed:  passed,
				Message: fmt.Sprintf("jsonpath %q: %s", expr, msg),
			})
		}
	}
	return out
}

func failAll(expr string, checks []check, reason string) []domain.AssertionResult {
	out := make([]domain.AssertionResult, 0, len(checks))
	for _, c := range checks {
		out = append(out, domain.AssertionResult{
			Name:    "jsonpath." + c.name,
			Passed:  false,
			Message: fmt.Sprintf("jsonpath %q: %s", expr, reason),
		})
	}
	return out
}

func checksFor(e domain.ReceiptExpectation) []check {
	var out []check
	if e.Exists {
		out = append(out, check{"exists", func(val any) (bool, string) {
			if isEmpty(val) {
				return false, "expected value to exist, got empty"
			}
			return true, "exists"
		}})
	}
	if e.Eq != nil {
		want := *e.Eq
		out = append(out, stringCheck("eq", func(s string) (bool, string) {
			if s == want {
				return true, fmt.Sprintf("eq %q", want)
			}
			return false, fmt.Sprintf("expected %q, got %q", want, s)
		}))
	}
	if e.Contains != nil {
		sub := *e.Contains
		out = append(out, stringCheck("contains", func(s string) (bool, string) {
			if strings.Contains(s, sub) {
				return true, fmt.Sprintf("contains %q", sub)
			}
			return false, fmt.Sprintf("%q does not contain %q", s, sub)
		}))
	}
	if e.Matches != nil {
		pattern := *e.Matches
		out = append(out, stringCheck("matches", func(s string) (bool, string) {
			re, err := regexp.Compile(pattern)
			if err != nil {
				return false, fmt.Sprintf("invalid regex %q: %v", pattern, err)
			}
			if re.MatchString(s) {
				return true, fmt.Sprintf("matches %q", pattern)
			}
			return false, fmt.Sprintf("%q does not match %q", s, pattern)
		}))
	}
	if e.Gt != nil {
		threshold := *e.Gt
		out = append(out, numberCheck("gt", func(f float64) (bool, string) {
			if f > threshold {
				return true, fmt.Sprintf("%v > %v", f, threshold)
			}
			return false, fmt.Sprintf("expected > %v, got %v", threshold, f)
		}))
	}
	if e.Lt != nil {
		threshold := *e.Lt
		out = append(out, numberCheck("lt", func(f float64) (bool, string) {
			if f < threshold {
				return true, fmt.Sprintf("%v < %v", f, threshold)
			}
			return false, fmt.Sprintf("expected < %v, got %v", threshold, f)
		}))
	}
	return out
}

func stringCheck(name string, fn func(string) (bool, string)) check {
	return check{name, func(val any) (bool, string) {
		s, err := toString(val)
		if err != nil {
			return false, err.Error()
		}
		return fn(s)
	}}
}

func numberCheck(name string, fn func(float64) (bool, string)) check {
	return check{name, func(val any) (bool, string) {
		f, err := toFloat64(val)
		if err != nil {
			return false, err.Error()
		}
		return fn(f)
	}}
}

func toString(val any) (string, error) {
	switch v := val.(type) {
	case string:
		return v, nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(v), nil
	case nil:
		return "", fmt.Errorf("value is null")
	default:
		return fmt.Sprint(v), nil
	}
}

// toFloat64 accepts numeric strings since receipt money fields are strings.
func toFloat64(val any) (float64, error) {
	switch v := val.(type) {
	case float64:
		return v, nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0, fmt.Errorf("value %q is not numeric", v)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("value of type %T is not numeric", val)
	}
}

func isEmpty(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case []any:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	default:
		return false
	}
}
