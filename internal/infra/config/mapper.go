package config

import (
	"fmt"
	"strings"

	"github.com/aalvaropc/shopcart/internal/app/template"
	"github.com/aalvaropc/shopcart/internal/domain"
)

const (
	FormatPretty = "pretty"
	FormatJSON   = "json"
)

// MapConfig applies parsed values on top of the defaults and validates them.
func MapConfig(path string, y YAMLConfig) (domain.Config, error) {
	cfg := domain.DefaultConfig()
	sc := y.Shopcart

	if sc.Currency != nil {
		cfg.Currency = *sc.Currency
	}
	if f := strings.ToLower(strings.TrimSpace(sc.Receipt.Format)); f != "" {
		if err := ValidateFormat(f); err != nil {
			return domain.DefaultConfig(), invalidField(path, "shopcart.receipt.format", err.Error())
		}
		cfg.Receipt.Format = f
	}
	if sc.Receipt.LineTemplate != "" {
		if err := template.CheckLine(sc.Receipt.LineTemplate); err != nil {
			return domain.DefaultConfig(), invalidField(path, "shopcart.receipt.line_template", err.Error())
		}
		cfg.Receipt.LineTemplate = sc.Receipt.LineTemplate
	}
	if sc.Logging.Debug != nil {
		cfg.Logging.Debug = *sc.Logging.Debug
	}
	if d := strings.TrimSpace(sc.Paths.SessionsDir); d != "" {
		cfg.Paths.SessionsDir = d
	}
	if d := strings.TrimSpace(sc.Paths.LogsDir); d != "" {
		cfg.Paths.LogsDir = d
	}

	return cfg, nil
}

// ValidateFormat accepts the receipt output formats.
func ValidateFormat(f string) error {
	switch f {
	case FormatPretty, FormatJSON:
		return nil
	default:
		return fmt.Errorf("unsupported format %q (want %s or %s)", f, FormatPretty, FormatJSON)
	}
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "config.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
