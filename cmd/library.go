package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	consoleadapter "github.com/learnhub/learnhub-cli/internal/adapters/render/console"
)

func newLibraryCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "library",
		Short: "Browse the content library",
	}

	cmd.AddCommand(newLibraryListCmd(app))

	return cmd
}

func newLibraryListCmd(app *app) *cobra.Command {
	var kind string
	var search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List library resources",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireSession(cmd, app); err != nil {
				return err
			}

			output, err := consoleadapter.Resources(app.library.Resources(kind, search))
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), output)
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "type", "all", "Resource type: all, document, video, image or code")
	cmd.Flags().StringVar(&search, "search", "", "Case-insensitive name filter")

	return cmd
}
