package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

func sessionsCmd(opts *rootOptions) *cobra.Command {
	c := &cobra.Command{
		Use:   "sessions",
		Short: "Manage session scripts in a workspace",
	}

	c.AddCommand(sessionsListCmd(opts))
	return c
}

func sessionsListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List session scripts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := openWorkspace(opts.workspace, true)
			if err != nil {
				return err
			}

			refs, err := ws.sessions.ListSessions(ws.root)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(refs) == 0 {
				fmt.Fprintln(out, "(no sessions found)")
				return nil
			}

			fmt.Fprintf(out, "Workspace: %s\n\n", ws.root)
			for _, r := range refs {
				rel, _ := filepath.Rel(ws.root, r.Path)
				fmt.Fprintf(out, "- %s  (%s)\n", r.Name, rel)
			}
			return nil
		},
	}
}
