package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/cqnothing/internal/render"
)

func newValidateCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check the content catalogs for integrity problems",
		Long: "Loads the catalogs (built-in or --content-dir) and reports dangling cause\n" +
			"references, unknown levels and enum values, and missing translations.\n" +
			"Exits non-zero when any issue is found.",
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

			issues := d.store.Check()
			if err := render.New(cmd.OutOrStdout(), f, d.store, d.lang()).Issues(issues); err != nil {
				return err
			}
			if len(issues) > 0 {
				return fmt.Errorf("%d content issue(s) found", len(issues))
			}
			return nil
		},
	}
	addFormatFlag(cmd, &format)
	return cmd
}
