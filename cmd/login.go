package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	consoleadapter "github.com/learnhub/learnhub-cli/internal/adapters/render/console"
	"github.com/learnhub/learnhub-cli/internal/domain"
)

func newLoginCmd(app *app) *cobra.Command {
	var email string
	var password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Exchange credentials for a session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.session.Restore(cmd.Context()); err != nil {
				return err
			}

			if app.session.Authenticated() {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Already logged in.")
				return nil
			}

			if email == "" || password == "" {
				return errors.New("both --email and --password are required")
			}

			landing, err := app.session.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}

			name := email
			if principal := app.session.Principal(); principal != nil && principal.Name != "" {
				name = principal.Name
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s. Try: lh %s\n", name, landing)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password")

	return cmd
}

func newLogoutCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Discard the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.session.Logout(cmd.Context()); err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
			return nil
		},
	}
}

func newWhoamiCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session identity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.session.Restore(cmd.Context()); err != nil {
				return err
			}

			output, err := consoleadapter.Whoami(app.session.Session())
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), output)
			return nil
		},
	}
}

// requireSession settles the restore and maps the guard rejection to a
// hint the user can act on.
func requireSession(cmd *cobra.Command, app *app) error {
	err := app.session.Require(cmd.Context())
	if errors.Is(err, domain.ErrLoginRequired) {
		return errors.New("not logged in, run: lh login --email <email> --password <password>")
	}
	return err
}
