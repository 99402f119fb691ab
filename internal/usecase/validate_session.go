package usecase

import (
	"context"
	"fmt"
	"regexp"

	"github.com/PaesslerAG/jsonpath"

	"github.com/aalvaropc/shopcart/internal/domain"
	"github.com/aalvaropc/shopcart/internal/ports"
)

type ValidateSession struct {
	sessions ports.SessionLoader
	catalog  *domain.Catalog
}

func NewValidateSession(sl ports.SessionLoader, catalog *domain.Catalog) *ValidateSession {
	return &ValidateSession{sessions: sl, catalog: catalog}
}

// Execute checks a session script without touching a cart: every step names
// a known action, add steps name a catalog product, and every expectation is
// a valid JSONPath with a valid regex (if any).
func (uc *ValidateSession) Execute(ctx context.Context, path string) error {
	s, err := uc.sessions.LoadSession(path)
	if err != nil {
		return err
	}

	for i, cmd := range s.Steps {
		if err := ctx.Err(); err != nil {
			return err
		}

		switch cmd.Action {
		case domain.ActionAdd:
			if _, err := uc.catalog.Parse(cmd.Product); err != nil {
				return invalidSession(path, fmt.Sprintf("steps[%d].product", i), err)
			}
		case domain.ActionUpdate, domain.ActionRemove:
		default:
			return invalidSession(path, fmt.Sprintf("steps[%d].action", i),
				fmt.Errorf("unsupported action %q", cmd.Action))
		}
	}

	for expr, e := range s.Expect {
		if _, err := jsonpath.New(expr); err != nil {
			return invalidSession(path, fmt.Sprintf("expect[%q]", expr), err)
		}
		if e.Matches != nil {
			if _, err := regexp.Compile(*e.Matches); err != nil {
				return invalidSession(path, fmt.Sprintf("expect[%q].matches", expr), err)
			}
		}
	}

	return nil
}

func invalidSession(path, field string, err error) error {
	return &domain.OpError{
		Op:   "usecase.validate_session",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %w", field, err),
	}
}
