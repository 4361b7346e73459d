package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/cqnothing/internal/content"
	"github.com/abhisek/cqnothing/internal/render"
)

func newScenarioCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "scenario",
		Aliases: []string{"scenarios"},
		Short:   "Browse the scenario catalog",
	}
	cmd.AddCommand(newScenarioListCmd())
	cmd.AddCommand(newScenarioShowCmd())
	return cmd
}

func newScenarioListCmd() *cobra.Command {
	var (
		difficulty string
		format     string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all scenarios (optionally filtered by difficulty)",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := render.ParseFormat(format)
			if err != nil {
				return err
			}
			d, err := loadDeps(cmd, false)
			if err != nil {
				return err
			}
			defer d.Close()

			var list []content.Scenario
			if difficulty != "" {
				diff := content.Difficulty(difficulty)
				if !diff.Valid() {
					return fmt.Errorf("unknown difficulty %q (want beginner, intermediate or advanced)", difficulty)
				}
				list = d.store.ScenariosByDifficulty(diff)
			} else {
				list = d.store.Scenarios()
			}
			return render.New(cmd.OutOrStdout(), f, d.store, d.lang()).Scenarios(list)
		},
	}
	cmd.Flags().StringVar(&difficulty, "difficulty", "", "Filter by difficulty: beginner, intermediate, advanced")
	addFormatFlag(cmd, &format)
	return cmd
}

func newScenarioShowCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show <scenario-id>",
		Short: "Show one scenario with the causes to choose from",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := render.ParseFormat(format)
			if err != nil {
				return err
			}
			d, err := loadDeps(cmd, false)
			if err != nil {
				return err
			}
			defer d.Close()

			sc, ok := d.store.Scenario(args[0])
			if !ok {
				return fmt.Errorf("scenario %q not found", args[0])
			}
			return render.New(cmd.OutOrStdout(), f, d.store, d.lang()).Scenario(sc)
		},
	}
	addFormatFlag(cmd, &format)
	return cmd
}
