package usecase

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/aalvaropc/shopcart/internal/domain"
)

// Shell is the interactive prompt loop. It owns no state beyond the cart it
// was handed.
type Shell struct {
	cart    *domain.ShoppingCart
	catalog *domain.Catalog
	in      *bufio.Scanner
	out     io.Writer
	log     *slog.Logger
}

type ShellOption func(*Shell)

func WithShellLogger(l *slog.Logger) ShellOption {
	return func(s *Shell) {
		if l != nil {
			s.log = l
		}
	}
}

func NewShell(cart *domain.ShoppingCart, catalog *domain.Catalog, in io.Reader, out io.Writer, opts ...ShellOption) *Shell {
	s := &Shell{
		cart:    cart,
		catalog: catalog,
		in:      bufio.NewScanner(in),
		out:     out,
		log:     slog.New(slog.NewJSONHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var errEndOfInput = errors.New("unexpected end of input")

// Run loops until "done" or end of input. Unknown actions and product names
// are reported and the loop continues; malformed numbers end the session
// with an invalid_input error.
func (s *Shell) Run(ctx context.Context) error {
	products := strings.Join(s.catalog.Names(), ", ")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprintf(s.out, "\nAvailable Products: %s\n", products)
		line, err := s.prompt("Enter 'add', 'update', 'remove', or 'done': ")
		if errors.Is(err, errEndOfInput) {
			s.log.Info("shell.eof")
			return nil
		}
		if err != nil {
			return err
		}

		action := domain.Action(strings.ToLower(strings.TrimSpace(line)))
		switch action {
		case domain.ActionDone:
			return nil
		case domain.ActionAdd:
			err = s.add()
		case domain.ActionUpdate:
			err = s.update()
		case domain.ActionRemove:
			err = s.remove()
		default:
			s.log.Debug("shell.invalid_action", "input", line)
			fmt.Fprintln(s.out, "Invalid action. Please try again.")
		}
		if err != nil {
			return err
		}
	}
}

func (s *Shell) add() error {
	name, err := s.prompt("Enter product name: ")
	if err != nil {
		return s.fatal(err)
	}
	qty, err := s.promptInt("Enter quantity: ")
	if err != nil {
		return err
	}
	pct, err := s.promptFloat("Enter discount percentage (0 for no discount): ")
	if err != nil {
		return err
	}

	out, err := ApplyCommand(s.cart, s.catalog, domain.Command{
		Action:   domain.ActionAdd,
		Product:  name,
		Quantity: qty,
		Discount: pct,
	})
	if domain.IsKind(err, domain.KindUnknownProduct) {
		s.log.Info("shell.invalid_product", "input", name)
		fmt.Fprintln(s.out, "Invalid product name.")
		return nil
	}
	if err != nil {
		return err
	}

	s.log.Info("cart.item_added",
		"item_id", out.Item.ID,
		"product", out.Item.Product.Name,
		"quantity", out.Item.Quantity,
		"discount", out.Item.Discount.String(),
	)
	return nil
}

func (s *Shell) update() error {
	name, err := s.prompt("Enter product name to update quantity: ")
	if err != nil {
		return s.fatal(err)
	}
	qty, err := s.promptInt("Enter new quantity: ")
	if err != nil {
		return err
	}

	out, err := ApplyCommand(s.cart, s.catalog, domain.Command{
		Action:   domain.ActionUpdate,
		Product:  name,
		Quantity: qty,
	})
	if err != nil {
		return err
	}
	s.log.Info("cart.quantity_updated", "product", domain.NormalizeProductName(name), "quantity", qty, "found", out.Found)
	return nil
}

func (s *Shell) remove() error {
	name, err := s.prompt("Enter product name to remove: ")
	if err != nil {
		return s.fatal(err)
	}

	out, err := ApplyCommand(s.cart, s.catalog, domain.Command{
		Action:  domain.ActionRemove,
		Product: name,
	})
	if err != nil {
		return err
	}
	s.log.Info("cart.item_removed", "product", domain.NormalizeProductName(name), "removed", out.Removed)
	return nil
}

func (s *Shell) prompt(text string) (string, error) {
	fmt.Fprint(s.out, text)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", &domain.OpError{Op: "shell.read", Kind: domain.KindExecution, Err: err}
		}
		return "", errEndOfInput
	}
	return s.in.Text(), nil
}

func (s *Shell) promptInt(text string) (int, error) {
	line, err := s.prompt(text)
	if err != nil {
		return 0, s.fatal(err)
	}
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, invalidNumber("shell.quantity", line)
	}
	return n, nil
}

func (s *Shell) promptFloat(text string) (float64, error) {
	line, err := s.prompt(text)
	if err != nil {
		return 0, s.fatal(err)
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, invalidNumber("shell.discount", line)
	}
	return f, nil
}

// fatal turns an end of input in the middle of a command into an error;
// only the action prompt treats it as "done".
func (s *Shell) fatal(err error) error {
	if errors.Is(err, errEndOfInput) {
		return &domain.OpError{
			Op:   "shell.read",
			Kind: domain.KindInvalidInput,
			Err:  fmt.Errorf("%w: %w", errEndOfInput, domain.ErrInvalidInput),
		}
	}
	return err
}

func invalidNumber(op, input string) error {
	return &domain.OpError{
		Op:   op,
		Kind: domain.KindInvalidInput,
		Err:  fmt.Errorf("%q is not a number: %w", strings.TrimSpace(input), domain.ErrInvalidInput),
	}
}
