package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/cqnothing/internal/quiz"
	"github.com/abhisek/cqnothing/internal/render"
)

func newCheckCmd() *cobra.Command {
	var (
		scenarioID string
		selected   []string
		format     string
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Evaluate a selection of causes for one scenario",
		Example: "  cqnothing check --scenario dead_ten_meters --select muf_too_low,solar_minimum\n" +
			"  cqnothing check --scenario close_but_unreachable --select skip_zone --lang en --format json",
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

			q := quiz.New(d.store, d.engine, d.session)
			defer q.Close()

			if err := q.GotoID(scenarioID); err != nil {
				return err
			}
			q.Select(selected)

			fb, err := q.Check()
			if errors.Is(err, quiz.ErrNoSelection) {
				return fmt.Errorf("%s", q.Advisory(err))
			}
			if err != nil {
				return err
			}
			return render.New(cmd.OutOrStdout(), f, d.store, d.lang()).Feedback(*fb)
		},
	}

	cmd.Flags().StringVarP(&scenarioID, "scenario", "s", "", "Scenario id (see 'scenario list')")
	cmd.Flags().StringSliceVar(&selected, "select", nil, "Comma-separated cause ids to check")
	addFormatFlag(cmd, &format)
	_ = cmd.MarkFlagRequired("scenario")
	return cmd
}

func addFormatFlag(cmd *cobra.Command, format *string) {
	cmd.Flags().StringVarP(format, "format", "o", "table", "Output format: table, markdown or json")
}
