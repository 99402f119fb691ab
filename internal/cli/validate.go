package cli

import (
	"fmt"

	"github.com/aalvaropc/shopcart/internal/usecase"
	"github.com/spf13/cobra"
)

func validateCmd(opts *rootOptions) *cobra.Command {
	var file string

	c := &cobra.Command{
		Use:   "validate",
		Short: "Validate a session script without running it",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := openWorkspace(opts.workspace, false)
			if err != nil {
				return err
			}

			sessionPath, err := resolveSessionPath(ws, file)
			if err != nil {
				return err
			}

			uc := usecase.NewValidateSession(ws.sessions, ws.catalog)
			if err := uc.Execute(cmd.Context(), sessionPath); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "OK")
			return nil
		},
	}

	c.Flags().StringVarP(&file, "file", "f", "", "Session name or path (required)")

	_ = c.MarkFlagRequired("file")
	return c
}
