package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	consoleadapter "github.com/learnhub/learnhub-cli/internal/adapters/render/console"
)

func newDashboardCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show the admin dashboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireSession(cmd, app); err != nil {
				return err
			}

			if err := runFetchSpinner(cmd.Context(), cmd.OutOrStdout(), "Fetching dashboard...", app.overview.Load); err != nil {
				return err
			}

			output, err := consoleadapter.Overview(app.overview.Overview())
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), output)
			return nil
		},
	}
}
