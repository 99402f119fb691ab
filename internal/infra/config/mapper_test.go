package config

import (
	"strings"
	"testing"

	"github.com/aalvaropc/shopcart/internal/domain"
)

func TestMapConfigAppliesDefaults(t *testing.T) {
	var y YAMLConfig
	y.Shopcart.Paths.SessionsDir = "  carts "

	cfg, err := MapConfig("shopcart.yaml", y)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Currency != "$" {
		t.Fatalf("expected default currency, got %q", cfg.Currency)
	}
	if cfg.Receipt.Format != FormatPretty {
		t.Fatalf("expected default format, got %q", cfg.Receipt.Format)
	}
	if cfg.Receipt.LineTemplate != domain.DefaultLineTemplate {
		t.Fatalf("expected default template")
	}
	if cfg.Paths.SessionsDir != "carts" {
		t.Fatalf("expected trimmed sessions dir, got %q", cfg.Paths.SessionsDir)
	}
	if cfg.Paths.LogsDir != ".shopcart/logs" {
		t.Fatalf("expected default logs dir, got %q", cfg.Paths.LogsDir)
	}
}

func TestMapConfigEmptyCurrencyIsKept(t *testing.T) {
	var y YAMLConfig
	empty := ""
	y.Shopcart.Currency = &empty

	cfg, err := MapConfig("shopcart.yaml", y)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Currency != "" {
		t.Fatalf("expected explicit empty currency, got %q", cfg.Currency)
	}
}

func TestMapConfigRejectsFormat(t *testing.T) {
	var y YAMLConfig
	y.Shopcart.Receipt.Format = "xml"

	_, err := MapConfig("shopcart.yaml", y)
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected invalid_config, got %v", err)
	}
	if !strings.Contains(err.Error(), "shopcart.receipt.format") {
		t.Fatalf("expected format field in error, got %v", err)
	}
}
