package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/combat-tracker/internal/orchestrators/tracker"
	"github.com/KirkDiggler/combat-tracker/internal/render"
)

func newSaveCmd(run runner) *cobra.Command {
	return &cobra.Command{
		Use:   "save [NAME]",
		Short: "Save the current encounter",
		RunE: run(func(cmd *cobra.Command, args []string, a *app) error {
			ctx := cmd.Context()
			session, err := a.session(ctx)
			if err != nil {
				return err
			}
			if !session.StorageAvailable {
				return session.StorageError
			}

			out, err := a.svc.SaveRecord(ctx, &tracker.SaveRecordInput{
				State: session.State,
				Name:  strings.Join(args, " "),
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Saved %s\n", out.Record.ID)
			fmt.Fprintln(a.out, render.SavedRecords(out.Records))
			return nil
		}),
	}
}

func newSavedCmd(run runner) *cobra.Command {
	return &cobra.Command{
		Use:   "saved",
		Short: "List saved encounters, newest first",
		Args:  cobra.NoArgs,
		RunE: run(func(cmd *cobra.Command, _ []string, a *app) error {
			out, err := a.svc.ListRecords(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, render.SavedRecords(out.Records))
			return nil
		}),
	}
}

func newLoadCmd(run runner) *cobra.Command {
	return &cobra.Command{
		Use:   "load ID",
		Short: "Replace the current encounter with a saved one",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(cmd *cobra.Command, args []string, a *app) error {
			out, err := a.svc.LoadRecord(cmd.Context(), &tracker.LoadRecordInput{ID: args[0]})
			if err != nil {
				return a.declined(err)
			}
			a.show(out)
			return nil
		}),
	}
}

func newDeleteCmd(run runner) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a saved encounter",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(cmd *cobra.Command, args []string, a *app) error {
			out, err := a.svc.DeleteRecord(cmd.Context(), &tracker.DeleteRecordInput{ID: args[0]})
			if err != nil {
				return a.declined(err)
			}
			fmt.Fprintln(a.out, render.SavedRecords(out.Records))
			return nil
		}),
	}
}

func newShareCmd(run runner) *cobra.Command {
	return &cobra.Command{
		Use:   "share [NAME]",
		Short: "Print a share link for the current encounter",
		RunE: run(func(cmd *cobra.Command, args []string, a *app) error {
			ctx := cmd.Context()
			session, err := a.session(ctx)
			if err != nil {
				return err
			}

			out, err := a.svc.Share(ctx, &tracker.ShareInput{
				State:   session.State,
				Name:    strings.Join(args, " "),
				BaseURL: a.baseURL,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, out.URL)
			fmt.Fprintln(a.errOut, render.Notice(fmt.Sprintf("payload %d characters", out.PayloadSize)))
			return nil
		}),
	}
}

func newOpenCmd(run runner) *cobra.Command {
	var previewOnly bool

	cmd := &cobra.Command{
		Use:   "open LINK",
		Short: "Preview a share link, then load it",
		Long: `Decode a share link (or a bare payload), show what it contains and,
once confirmed, replace the current encounter with it.`,
		Args: cobra.ExactArgs(1),
		RunE: run(func(cmd *cobra.Command, args []string, a *app) error {
			ctx := cmd.Context()

			preview, err := a.svc.Preview(ctx, &tracker.PreviewInput{URL: args[0]})
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, render.Snapshot(preview.Snapshot, preview.VersionError))
			if previewOnly || preview.VersionError != nil {
				return preview.VersionError
			}

			out, err := a.svc.LoadShared(ctx, &tracker.LoadSharedInput{URL: args[0]})
			if err != nil {
				return a.declined(err)
			}
			a.show(&out.StateOutput)
			if out.CleanURL != "" {
				fmt.Fprintln(a.errOut, render.Notice(out.CleanURL))
			}
			return nil
		}),
	}

	cmd.Flags().BoolVar(&previewOnly, "preview", false, "only show the snapshot")

	return cmd
}

func newMonstersCmd(run runner) *cobra.Command {
	return &cobra.Command{
		Use:   "monsters [QUERY]",
		Short: "Search the D&D 5e monster index",
		RunE: run(func(cmd *cobra.Command, args []string, a *app) error {
			monsters, err := a.monsters.SearchMonsters(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			if len(monsters) == 0 {
				fmt.Fprintln(a.errOut, render.Notice("No monsters match."))
				return nil
			}
			for _, m := range monsters {
				fmt.Fprintf(a.out, "%s\t%s\n", m.Key, m.Name)
			}
			return nil
		}),
	}
}
