package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	consoleadapter "github.com/learnhub/learnhub-cli/internal/adapters/render/console"
	"github.com/learnhub/learnhub-cli/internal/domain"
)

func newLearnersCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "learners",
		Short: "Browse and enroll learners",
	}

	cmd.AddCommand(newLearnersListCmd(app), newLearnersAddCmd(app))

	return cmd
}

func newLearnersListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the learner directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireSession(cmd, app); err != nil {
				return err
			}

			if err := runFetchSpinner(cmd.Context(), cmd.OutOrStdout(), "Fetching learners...", app.directory.Load); err != nil {
				return err
			}

			output, err := consoleadapter.Learners(app.directory.Learners())
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), output)
			return nil
		},
	}
}

func newLearnersAddCmd(app *app) *cobra.Command {
	var draft domain.LearnerDraft

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a learner account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireSession(cmd, app); err != nil {
				return err
			}

			created, err := app.directory.Create(cmd.Context(), draft)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created learner %s (%s)\n", created.FullName(), created.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&draft.FirstName, "first-name", "", "First name (required)")
	cmd.Flags().StringVar(&draft.LastName, "last-name", "", "Last name (required)")
	cmd.Flags().StringVar(&draft.Email, "email", "", "Email address (required)")
	cmd.Flags().StringVar(&draft.Password, "password", "", "Initial password (required)")
	cmd.Flags().StringVar(&draft.Role, "role", "", "Account role (default: learner)")
	_ = cmd.MarkFlagRequired("first-name")
	_ = cmd.MarkFlagRequired("last-name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
