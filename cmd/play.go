package cmd

import (
	"github.com/spf13/cobra"
)

func newPlayCmd() *cobra.Command {
	var noSplash bool

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Start the interactive quiz",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(cmd, noSplash)
		},
	}
	cmd.Flags().BoolVar(&noSplash, "no-splash", false, "Skip the welcome animation")
	return cmd
}
