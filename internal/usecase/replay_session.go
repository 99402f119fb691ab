package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/aalvaropc/shopcart/internal/domain"
	"github.com/aalvaropc/shopcart/internal/ports"
	ucassert "github.com/aalvaropc/shopcart/internal/usecase/assert"
)

type ReplaySession struct {
	sessions ports.SessionLoader
	catalog  *domain.Catalog
	log      *slog.Logger
	newCart  func() *domain.ShoppingCart
	now      func() time.Time
}

type ReplayOption func(*ReplaySession)

func WithReplayLogger(l *slog.Logger) ReplayOption {
	return func(uc *ReplaySession) {
		if l != nil {
			uc.log = l
		}
	}
}

// WithCartFactory is useful for tests that need deterministic item IDs.
func WithCartFactory(f func() *domain.ShoppingCart) ReplayOption {
	return func(uc *ReplaySession) {
		if f != nil {
			uc.newCart = f
		}
	}
}

func NewReplaySession(sl ports.SessionLoader, catalog *domain.Catalog, opts ...ReplayOption) *ReplaySession {
	uc := &ReplaySession{
		sessions: sl,
		catalog:  catalog,
		log:      slog.New(slog.NewJSONHandler(io.Discard, nil)),
		newCart:  func() *domain.ShoppingCart { return domain.NewShoppingCart() },
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute replays the session at path against a fresh cart and evaluates its
// receipt expectations. Step failures do not stop the replay; a cancelled
// context does, returning the partial result.
func (uc *ReplaySession) Execute(ctx context.Context, path string) (domain.ReplayResult, error) {
	s, err := uc.sessions.LoadSession(path)
	if err != nil {
		return domain.ReplayResult{}, err
	}

	res := domain.ReplayResult{
		ID:          uuid.NewString(),
		SessionName: s.Name,
		SessionPath: path,
		StartedAt:   uc.now(),
		Steps:       make([]domain.StepResult, 0, len(s.Steps)),
	}
	log := uc.log.With("replay_id", res.ID, "session", s.Name)
	log.Info("replay.start", "path", path, "steps", len(s.Steps))

	cart := uc.newCart()
	for i, cmd := range s.Steps {
		if err := ctx.Err(); err != nil {
			res.Receipt = domain.NewReceipt(cart)
			res.EndedAt = uc.now()
			log.Warn("replay.cancelled", "at_step", i)
			return res, err
		}
		res.Steps = append(res.Steps, uc.step(cart, i, cmd))
	}

	res.Receipt = domain.NewReceipt(cart)
	body, err := EncodeReceipt(res.Receipt)
	if err != nil {
		res.EndedAt = uc.now()
		return res, &domain.OpError{Op: "replay.encode_receipt", Kind: domain.KindExecution, Path: path, Err: err}
	}
	res.Assertions = ucassert.Evaluate(s.Expect, body)
	res.EndedAt = uc.now()

	log.Info("replay.done",
		"items", len(res.Receipt.Lines),
		"total", res.Receipt.Total.StringFixed(MoneyPlaces),
		"failures", res.Failures(),
	)
	return res, nil
}

func (uc *ReplaySession) step(cart *domain.ShoppingCart, i int, cmd domain.Command) domain.StepResult {
	r := domain.StepResult{Index: i, Command: cmd}

	out, err := ApplyCommand(cart, uc.catalog, cmd)
	switch {
	case domain.IsKind(err, domain.KindUnknownProduct):
		r.Message = fmt.Sprintf("invalid product name %q", cmd.Product)
	case err != nil:
		r.Message = err.Error()
	case cmd.Action == domain.ActionAdd:
		r.OK = true
		r.Message = fmt.Sprintf("added %d %s (%s discount)", out.Item.Quantity, out.Item.Product.Name, out.Item.Discount)
	case cmd.Action == domain.ActionUpdate && !out.Found:
		r.OK = true
		r.Message = fmt.Sprintf("no %s in cart", domain.NormalizeProductName(cmd.Product))
	case cmd.Action == domain.ActionUpdate:
		r.OK = true
		r.Message = fmt.Sprintf("%s quantity set to %d", domain.NormalizeProductName(cmd.Product), cmd.Quantity)
	default:
		r.OK = true
		r.Message = fmt.Sprintf("removed %d %s item(s)", out.Removed, domain.NormalizeProductName(cmd.Product))
	}
	return r
}
