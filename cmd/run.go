package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/cqnothing/internal/app"
	"github.com/abhisek/cqnothing/internal/logging"
	"github.com/abhisek/cqnothing/internal/screens/home"
)

// runApp loads the content, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command, skipSplash bool) error {
	d, err := loadDeps(cmd, true)
	if err != nil {
		return err
	}
	defer d.Close()
	defer d.rememberLanguage()()

	logging.New("tui").Info("starting interactive quiz",
		"lang", d.lang(),
		"scenarios", d.store.ScenarioCount(),
		"branding", d.branding.Label())

	return app.Run(app.Options{
		Deps: home.Deps{
			Store:    d.store,
			Engine:   d.engine,
			Session:  d.session,
			Branding: d.branding,
		},
		SkipSplash: skipSplash,
	})
}
