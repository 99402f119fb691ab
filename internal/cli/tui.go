package cli

import (
	"github.com/spf13/cobra"

	"github.com/aalvaropc/shopcart/internal/domain"
	"github.com/aalvaropc/shopcart/internal/infra/workspacefinder"
	"github.com/aalvaropc/shopcart/internal/ui/tui"
)

func tuiCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Full-screen cart; prints the receipt on exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := openWorkspace(opts.workspace, false)
			if err != nil {
				return err
			}
			defer ws.startLogging(cmd, opts.debug)()

			cart := domain.NewShoppingCart()
			deps := tui.Deps{
				Cart:             cart,
				Catalog:          ws.catalog,
				Config:           ws.cfg,
				WorkspaceLocator: workspacefinder.NewFinder(),
				Sessions:         ws.sessions,
				Logger:           ws.log,
			}
			if err := tui.Run(deps); err != nil {
				return err
			}

			return printReceipt(cmd.OutOrStdout(), domain.NewReceipt(cart), ws.cfg, ws.cfg.Receipt.Format)
		},
	}
}
