package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	consoleadapter "github.com/learnhub/learnhub-cli/internal/adapters/render/console"
	"github.com/learnhub/learnhub-cli/internal/domain"
)

func newSMEsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "smes",
		Short: "Browse and onboard subject matter experts",
	}

	cmd.AddCommand(newSMEsListCmd(app), newSMEsAddCmd(app))

	return cmd
}

func newSMEsListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List expert profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireSession(cmd, app); err != nil {
				return err
			}

			if err := runFetchSpinner(cmd.Context(), cmd.OutOrStdout(), "Fetching experts...", app.experts.Load); err != nil {
				return err
			}

			output, err := consoleadapter.Experts(app.experts.Experts())
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), output)
			return nil
		},
	}
}

func newSMEsAddCmd(app *app) *cobra.Command {
	var draft domain.SMEDraft

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Onboard an expert (account plus profile)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireSession(cmd, app); err != nil {
				return err
			}

			if err := app.experts.Create(cmd.Context(), draft); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Onboarded %s\n", draft.Name)

			output, err := consoleadapter.Experts(app.experts.Experts())
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), output)
			return nil
		},
	}

	cmd.Flags().StringVar(&draft.Name, "name", "", "Full name (required)")
	cmd.Flags().StringVar(&draft.Expertise, "expertise", "", "Area of expertise (required)")
	cmd.Flags().StringVar(&draft.Email, "email", "", "Email address (required)")
	cmd.Flags().StringVar(&draft.Password, "password", "", "Initial account password (required)")
	cmd.Flags().StringVar(&draft.Phone, "phone", "", "Phone number")
	cmd.Flags().StringVar(&draft.Bio, "bio", "", "Short bio")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("expertise")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
