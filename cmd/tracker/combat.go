package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/combat-tracker/internal/engine"
	"github.com/KirkDiggler/combat-tracker/internal/errors"
	"github.com/KirkDiggler/combat-tracker/internal/orchestrators/tracker"
	"github.com/KirkDiggler/combat-tracker/internal/render"
)

type runner func(fn func(cmd *cobra.Command, args []string, a *app) error) func(*cobra.Command, []string) error

func newShowCmd(run runner) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current roster",
		Args:  cobra.NoArgs,
		RunE: run(func(cmd *cobra.Command, _ []string, a *app) error {
			session, err := a.session(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, render.Roster(session.State))
			return nil
		}),
	}
}

func newAddCmd(run runner) *cobra.Command {
	var (
		initiative int
		roll       bool
		modifier   int
		maxHP      int
		armorClass int
		monster    bool
	)

	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Add a combatant to the roster",
		Long: `Add a combatant. With --monster the name is looked up in the D&D 5e
monster index and the official monster name is used.`,
		Args: cobra.MinimumNArgs(1),
		RunE: run(func(cmd *cobra.Command, args []string, a *app) error {
			ctx := cmd.Context()
			name := strings.Join(args, " ")

			if monster {
				found, err := a.monsters.ResolveMonster(ctx, name)
				if err != nil {
					return err
				}
				name = found.Name
			}

			session, err := a.session(ctx)
			if err != nil {
				return err
			}

			out, err := a.svc.Add(ctx, &tracker.AddInput{
				State:              session.State,
				Name:               name,
				Initiative:         initiative,
				RollInitiative:     roll,
				InitiativeModifier: modifier,
				MaxHP:              maxHP,
				ArmorClass:         armorClass,
			})
			if err != nil {
				return err
			}
			a.show(out)
			return nil
		}),
	}

	cmd.Flags().IntVarP(&initiative, "init", "i", 0, "initiative score")
	cmd.Flags().BoolVar(&roll, "roll", false, "roll initiative (d20 + --mod) instead of --init")
	cmd.Flags().IntVar(&modifier, "mod", 0, "initiative modifier used with --roll")
	cmd.Flags().IntVar(&maxHP, "hp", 0, "maximum hit points")
	cmd.Flags().IntVar(&armorClass, "ac", 0, "armor class")
	cmd.Flags().BoolVar(&monster, "monster", false, "resolve NAME in the monster index")
	cmd.MarkFlagsMutuallyExclusive("init", "roll")

	return cmd
}

func newRemoveCmd(run runner) *cobra.Command {
	return &cobra.Command{
		Use:   "remove COMBATANT",
		Short: "Remove a combatant by id or name",
		Args:  cobra.ExactArgs(1),
		RunE: run(func(cmd *cobra.Command, args []string, a *app) error {
			ctx := cmd.Context()
			session, err := a.session(ctx)
			if err != nil {
				return err
			}
			id, err := resolveCombatant(session.State, args[0])
			if err != nil {
				return err
			}
			out, err := a.svc.Remove(ctx, &tracker.RemoveInput{State: session.State, ID: id})
			if err != nil {
				return err
			}
			a.show(out)
			return nil
		}),
	}
}

func newStartCmd(run runner) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start (or restart) combat at round 1",
		Args:  cobra.NoArgs,
		RunE: run(func(cmd *cobra.Command, _ []string, a *app) error {
			return transform(cmd, a, a.svc.Start)
		}),
	}
}

func newNextCmd(run runner) *cobra.Command {
	return &cobra.Command{
		Use:   "next",
		Short: "Pass the turn to the next combatant",
		Args:  cobra.NoArgs,
		RunE: run(func(cmd *cobra.Command, _ []string, a *app) error {
			return transform(cmd, a, a.svc.Next)
		}),
	}
}

func newHPCmd(run runner) *cobra.Command {
	return &cobra.Command{
		Use:   "hp COMBATANT VALUE",
		Short: "Change hit points",
		Long: `Change a combatant's hit points. VALUE is an absolute number, or a
signed delta such as +4 or -7. Put -- before a negative delta:

  tracker hp goblin -- -7`,
		Args: cobra.ExactArgs(2),
		RunE: run(func(cmd *cobra.Command, args []string, a *app) error {
			ctx := cmd.Context()
			session, err := a.session(ctx)
			if err != nil {
				return err
			}
			id, err := resolveCombatant(session.State, args[0])
			if err != nil {
				return err
			}
			out, err := a.svc.ApplyHP(ctx, &tracker.ApplyHPInput{State: session.State, ID: id, Input: args[1]})
			if err != nil {
				return err
			}
			a.show(out)
			return nil
		}),
	}
}

func newClearCmd(run runner) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear the roster and reset combat",
		Args:  cobra.NoArgs,
		RunE: run(func(cmd *cobra.Command, _ []string, a *app) error {
			out, err := a.svc.Clear(cmd.Context())
			if err != nil {
				return err
			}
			a.show(out)
			return nil
		}),
	}
}

func transform(cmd *cobra.Command, a *app, fn func(ctx context.Context, input *tracker.StateInput) (*tracker.StateOutput, error)) error {
	ctx := cmd.Context()
	session, err := a.session(ctx)
	if err != nil {
		return err
	}
	out, err := fn(ctx, &tracker.StateInput{State: session.State})
	if err != nil {
		return err
	}
	a.show(out)
	return nil
}

// resolveCombatant accepts an id or a case-insensitive name that matches
// exactly one combatant
func resolveCombatant(state engine.State, ref string) (string, error) {
	if c, ok := engine.Find(state.Combatants, ref); ok {
		return c.ID, nil
	}

	var matches []string
	for _, c := range state.Combatants {
		if strings.EqualFold(c.Name, strings.TrimSpace(ref)) {
			matches = append(matches, c.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", errors.NotFoundf("no combatant %q", ref)
	case 1:
		return matches[0], nil
	default:
		return "", errors.InvalidArgumentf("%d combatants are named %q, use the id", len(matches), ref)
	}
}
