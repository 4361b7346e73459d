package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/cqnothing/internal/content"
	"github.com/abhisek/cqnothing/internal/render"
)

func newCauseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "cause",
		Aliases: []string{"causes"},
		Short:   "Browse the cause catalog",
	}
	cmd.AddCommand(newCauseListCmd())
	return cmd
}

func newCauseListCmd() *cobra.Command {
	var (
		category string
		format   string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all causes (optionally filtered by category)",
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

			var list []content.Cause
			if category != "" {
				cat := content.Category(category)
				if !cat.Valid() {
					return fmt.Errorf("unknown category %q", category)
				}
				list = d.store.CausesByCategory(cat)
			} else {
				list = d.store.Causes()
			}
			return render.New(cmd.OutOrStdout(), f, d.store, d.lang()).Causes(list)
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "Filter by category: propagation, timing, equipment, interference, operator")
	addFormatFlag(cmd, &format)
	return cmd
}
