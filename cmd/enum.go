package cmd

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/abhisek/cqnothing/internal/render"
)

func newEnumCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "enum [type...]",
		Aliases: []string{"enums"},
		Short:   "List the labels of bands, times, seasons, distances, antennas and symptoms",
		Example: `  cqnothing enum
  cqnothing enum bands symptoms --lang en`,
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

			known := d.store.EnumTypes()
			types := args
			if len(types) == 0 {
				types = known
			}
			for _, typ := range types {
				if !slices.Contains(known, typ) {
					return fmt.Errorf("unknown enum type %q", typ)
				}
			}
			return render.New(cmd.OutOrStdout(), f, d.store, d.lang()).Enums(types)
		},
	}
	addFormatFlag(cmd, &format)
	return cmd
}
