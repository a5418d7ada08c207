package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd(opts options) *cobra.Command {
	f := &flags{}

	rootCmd := &cobra.Command{
		Use:           "tracker",
		Short:         "D&D 5e combat tracker",
		Long:          `Track initiative, turns and hit points for a tabletop combat, save encounters and share them as links.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&f.store, "store", "", "storage medium: memory, redis, file or sqlite (default from TRACKER_STORE)")
	rootCmd.PersistentFlags().StringVar(&f.baseURL, "base-url", "", "page share links point at (default from TRACKER_BASE_URL)")
	rootCmd.PersistentFlags().BoolVarP(&f.yes, "yes", "y", false, "answer yes to every confirmation")
	rootCmd.PersistentFlags().BoolVarP(&f.verbose, "verbose", "v", false, "enable debug logging")

	// run wires a fresh app for one command invocation
	run := func(fn func(cmd *cobra.Command, args []string, a *app) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			a, err := wireApp(opts, *f, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer a.close()
			return fn(cmd, args, a)
		}
	}

	rootCmd.AddCommand(
		newShowCmd(run),
		newAddCmd(run),
		newRemoveCmd(run),
		newStartCmd(run),
		newNextCmd(run),
		newHPCmd(run),
		newClearCmd(run),
		newSaveCmd(run),
		newSavedCmd(run),
		newLoadCmd(run),
		newDeleteCmd(run),
		newShareCmd(run),
		newOpenCmd(run),
		newMonstersCmd(run),
	)

	return rootCmd
}
