package cmd

import (
	"github.com/spf13/cobra"
)

// newRootCmd builds the command tree. Running the root command with no
// subcommand starts the interactive quiz.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "cqnothing",
		Short: "CQ… Nothing. A radio propagation troubleshooting quiz",
		Long: "CQ… Nothing. presents amateur radio situations where a call goes unanswered\n" +
			"and asks which causes are plausible. Answers are checked against a graded\n" +
			"answer key with explanations in German and English.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(cmd, false)
		},
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "Path to config file (default $XDG_CONFIG_HOME/cqnothing/config.yaml)")
	pf.String("lang", "", "Display language (de, en)")
	pf.String("content-dir", "", "Directory with causes/scenarios/strings documents overriding the built-in content")
	pf.String("log-level", "", "Log level: debug, info, warn, error")
	pf.String("log-format", "", "Log format: text or json")
	pf.String("log-file", "", "Log file for the interactive quiz (default: discard)")

	root.AddCommand(newPlayCmd())
	root.AddCommand(newCheckCmd())
	root.AddCommand(newScenarioCmd())
	root.AddCommand(newCauseCmd())
	root.AddCommand(newEnumCmd())
	root.AddCommand(newValidateCmd())
	root.AddCommand(newSchemaCmd())
	root.AddCommand(newConfigCmd())
	root.AddCommand(newVersionCmd())
	return root
}

// Execute runs the CLI with os.Args.
func Execute() error {
	return newRootCmd().Execute()
}
