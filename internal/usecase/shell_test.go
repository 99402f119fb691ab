package usecase

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aalvaropc/shopcart/internal/domain"
)

const (
	menu        = "\nAvailable Products: Laptop, Headphones, Mobile\nEnter 'add', 'update', 'remove', or 'done': "
	addPrompts  = "Enter product name: Enter quantity: Enter discount percentage (0 for no discount): "
	updPrompts  = "Enter product name to update quantity: Enter new quantity: "
	rmPrompt    = "Enter product name to remove: "
	invalidProd = "Invalid product name.\n"
)

func runShell(t *testing.T, input string) (*domain.ShoppingCart, string, error) {
	t.Helper()
	cart := domain.NewShoppingCart()
	var out bytes.Buffer
	sh := NewShell(cart, domain.DefaultCatalog(), strings.NewReader(input), &out)
	err := sh.Run(context.Background())
	return cart, out.String(), err
}

func TestShell_AddThenDone(t *testing.T) {
	cart, out, err := runShell(t, "add\nlaptop\n2\n10\ndone\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := menu + addPrompts + menu
	if out != want {
		t.Fatalf("unexpected output:\n%q\nwant:\n%q", out, want)
	}
	if got := cart.TotalBill().StringFixed(2); got != "1800.00" {
		t.Fatalf("expected 1800.00, got %s", got)
	}
}

func TestShell_InvalidAction(t *testing.T) {
	_, out, err := runShell(t, "checkout\ndone\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := menu + "Invalid action. Please try again.\n" + menu
	if out != want {
		t.Fatalf("unexpected output:\n%q", out)
	}
}

func TestShell_InvalidProductContinues(t *testing.T) {
	cart, out, err := runShell(t, "add\nTablet\n1\n0\nDONE\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := menu + addPrompts + invalidProd + menu
	if out != want {
		t.Fatalf("unexpected output:\n%q", out)
	}
	if cart.Len() != 0 {
		t.Fatalf("expected empty cart, got %d items", cart.Len())
	}
}

func TestShell_UpdateAndRemove(t *testing.T) {
	input := strings.Join([]string{
		"add", "Mobile", "1", "50",
		"add", "Headphones", "3", "0",
		"update", "mobile", "4",
		"remove", "HEADPHONES",
		"done",
	}, "\n") + "\n"

	cart, out, err := runShell(t, input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := menu + addPrompts + menu + addPrompts + menu + updPrompts + menu + rmPrompt + menu
	if out != want {
		t.Fatalf("unexpected output:\n%q", out)
	}
	items := cart.Items()
	if len(items) != 1 || items[0].Product.Name != "Mobile" || items[0].Quantity != 4 {
		t.Fatalf("unexpected cart: %+v", items)
	}
	if got := cart.TotalBill().StringFixed(2); got != "700.00" {
		t.Fatalf("expected 700.00, got %s", got)
	}
}

func TestShell_EOFAtActionPromptIsDone(t *testing.T) {
	_, out, err := runShell(t, "")
	if err != nil {
		t.Fatalf("expected nil on EOF, got %v", err)
	}
	if out != menu {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestShell_EOFMidCommandFails(t *testing.T) {
	_, _, err := runShell(t, "add\nLaptop\n")
	if !domain.IsKind(err, domain.KindInvalidInput) {
		t.Fatalf("expected invalid_input, got %v", err)
	}
}

func TestShell_BadQuantityFails(t *testing.T) {
	cart, _, err := runShell(t, "add\nLaptop\ntwo\n0\ndone\n")
	if !domain.IsKind(err, domain.KindInvalidInput) {
		t.Fatalf("expected invalid_input, got %v", err)
	}
	var oe *domain.OpError
	if !errors.As(err, &oe) || oe.Op != "shell.quantity" {
		t.Fatalf("expected shell.quantity op, got %v", err)
	}
	if cart.Len() != 0 {
		t.Fatalf("cart should stay empty")
	}
}

func TestShell_BadDiscountFails(t *testing.T) {
	for _, in := range []string{"ten", "NaN", "Inf"} {
		_, _, err := runShell(t, "add\nLaptop\n1\n"+in+"\n")
		var oe *domain.OpError
		if !errors.As(err, &oe) || oe.Op != "shell.discount" {
			t.Fatalf("%s: expected shell.discount op, got %v", in, err)
		}
	}
}

func TestShell_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	sh := NewShell(domain.NewShoppingCart(), domain.DefaultCatalog(), strings.NewReader("done\n"), &out)
	if err := sh.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no output, got %q", out.String())
	}
}
