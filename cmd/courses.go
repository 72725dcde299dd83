package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	consoleadapter "github.com/learnhub/learnhub-cli/internal/adapters/render/console"
	"github.com/learnhub/learnhub-cli/internal/domain"
)

func newCoursesCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "courses",
		Short: "Browse and create courses",
	}

	cmd.AddCommand(newCoursesListCmd(app), newCoursesAddCmd(app))

	return cmd
}

func newCoursesListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the course catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireSession(cmd, app); err != nil {
				return err
			}

			if err := runFetchSpinner(cmd.Context(), cmd.OutOrStdout(), "Fetching courses...", app.catalog.Load); err != nil {
				return err
			}

			output, err := consoleadapter.Courses(app.catalog.Courses())
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), output)
			return nil
		},
	}
}

func newCoursesAddCmd(app *app) *cobra.Command {
	var draft domain.CourseDraft

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a course",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireSession(cmd, app); err != nil {
				return err
			}

			confirmation, err := app.catalog.Create(cmd.Context(), draft)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), confirmation)

			output, err := consoleadapter.Courses(app.catalog.Courses())
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), output)
			return nil
		},
	}

	cmd.Flags().StringVar(&draft.Title, "title", "", "Course title (required)")
	cmd.Flags().StringVar(&draft.Category, "category", "", "Course category")
	cmd.Flags().StringVar(&draft.SME, "sme", "", "Subject matter expert name")
	cmd.Flags().StringVar(&draft.Duration, "duration", "", "Course duration, e.g. '6 weeks'")
	cmd.Flags().IntVar(&draft.Modules, "modules", 0, "Module count")
	_ = cmd.MarkFlagRequired("title")

	return cmd
}
