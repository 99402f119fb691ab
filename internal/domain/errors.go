package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrNotFound       = errors.New("not found")
	ErrInvalidConfig  = errors.New("invalid config")
	ErrInvalidInput   = errors.New("invalid input")
	ErrUnknownProduct = errors.New("unknown product")
	ErrExecution      = errors.New("execution error")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindNotFound       ErrorKind = "not_found"
	KindInvalidConfig  ErrorKind = "invalid_config"
	KindInvalidInput   ErrorKind = "invalid_input"
	KindUnknownProduct ErrorKind = "unknown_product"
	KindExecution      ErrorKind = "execution"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: relevant file path
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// UnknownProductError is returned by catalog lookups for names that do not
// map to a product variant.
type UnknownProductError struct {
	Name string
}

func (e *UnknownProductError) Error() string {
	return fmt.Sprintf("unknown product %q", e.Name)
}

func (e *UnknownProductError) Unwrap() error { return ErrUnknownProduct }

// IsKind helps callers classify errors without depending on infra packages.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	if kind == KindUnknownProduct {
		var ue *UnknownProductError
		return errors.As(err, &ue)
	}
	return false
}
