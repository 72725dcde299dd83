package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "lh",
		Short:         "LearnHub CLI (lh): manage courses, learners and experts",
		Long:          "lh (LearnHub CLI) is the admin client for a LearnHub backend: log in, browse the dashboard, and manage courses, learners and subject matter experts from the terminal.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newLoginCmd(app),
		newLogoutCmd(app),
		newWhoamiCmd(app),
		newDashboardCmd(app),
		newCoursesCmd(app),
		newLearnersCmd(app),
		newSMEsCmd(app),
		newAnalyticsCmd(app),
		newLibraryCmd(app),
		newSettingsCmd(app),
	)

	return rootCmd
}
