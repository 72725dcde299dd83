package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	consoleadapter "github.com/learnhub/learnhub-cli/internal/adapters/render/console"
)

func newAnalyticsCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "analytics",
		Short: "Show analytics over the dashboard data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireSession(cmd, app); err != nil {
				return err
			}

			if err := runFetchSpinner(cmd.Context(), cmd.OutOrStdout(), "Fetching analytics...", app.overview.Load); err != nil {
				return err
			}

			overview := app.overview.Overview()

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(overview)
			}

			output, err := consoleadapter.Overview(overview)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), output)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}
