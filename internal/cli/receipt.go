package cli

import (
	"fmt"
	"io"

	"github.com/aalvaropc/shopcart/internal/app/template"
	"github.com/aalvaropc/shopcart/internal/domain"
	"github.com/aalvaropc/shopcart/internal/infra/config"
	"github.com/aalvaropc/shopcart/internal/usecase"
)

func printReceipt(w io.Writer, r domain.Receipt, cfg domain.Config, format string) error {
	switch format {
	case config.FormatJSON:
		b, err := usecase.EncodeReceiptIndent(r)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", b)
		return err
	case config.FormatPretty, "":
		return printPrettyReceipt(w, r, cfg)
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func printPrettyReceipt(w io.Writer, r domain.Receipt, cfg domain.Config) error {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Cart Items:")
	for _, l := range r.Lines {
		line, err := template.RenderLine(cfg.Receipt.LineTemplate, l, cfg.Currency, usecase.MoneyPlaces)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, line)
	}
	_, err := fmt.Fprintf(w, "Total Bill: %s%s\n", cfg.Currency, r.Total.StringFixed(usecase.MoneyPlaces))
	return err
}
