package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/shopcart/internal/domain"
	"github.com/aalvaropc/shopcart/internal/usecase"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// rootOptions are the persistent flags shared by every subcommand.
type rootOptions struct {
	debug     bool
	workspace string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	var format string

	cmd := &cobra.Command{
		Use:          "shopcart",
		Short:        "shopcart: an interactive shopping cart with discounts",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := openWorkspace(opts.workspace, false)
			if err != nil {
				return err
			}
			defer ws.startLogging(cmd, opts.debug)()

			f, err := ws.format(format)
			if err != nil {
				return err
			}

			cart := domain.NewShoppingCart()
			sh := usecase.NewShell(cart, ws.catalog, cmd.InOrStdin(), cmd.OutOrStdout(),
				usecase.WithShellLogger(ws.log),
			)
			if err := sh.Run(cmd.Context()); err != nil {
				ws.log.Error("shell.failed", "err", err)
				return err
			}

			return printReceipt(cmd.OutOrStdout(), domain.NewReceipt(cart), ws.cfg, f)
		},
	}

	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable verbose logging and print the log file location")
	cmd.PersistentFlags().StringVarP(&opts.workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	cmd.Flags().StringVar(&format, "format", "", "Receipt format: pretty|json (default from shopcart.yaml)")

	cmd.AddCommand(
		catalogCmd(opts),
		replayCmd(opts),
		validateCmd(opts),
		sessionsCmd(opts),
		initCmd(),
		tuiCmd(opts),
		versionCmd(),
	)
	return cmd
}

func requireFile(path string) error {
	if path == "" {
		return fmt.Errorf("session file is required (use --file or -f)")
	}
	return nil
}
