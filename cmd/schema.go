package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/cqnothing/internal/content"
)

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "schema <causes|scenarios|strings>",
		Short:     "Print the JSON schema of a content document",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{content.DocCauses, content.DocScenarios, content.DocStrings},
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := content.Schema(args[0])
			if err != nil {
				return fmt.Errorf("unknown document %q: %w", args[0], err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return err
		},
	}
}
