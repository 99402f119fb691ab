package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/shopcart/internal/usecase"
)

func catalogCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List the products that can be added to a cart",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := openWorkspace(opts.workspace, false)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, p := range ws.catalog.Products() {
				status := "available"
				if !p.Available {
					status = "unavailable"
				}
				fmt.Fprintf(out, "- %-10s  %s%s  (%s)\n", p.Name, ws.cfg.Currency, p.Price.StringFixed(usecase.MoneyPlaces), status)
			}
			return nil
		},
	}
}
