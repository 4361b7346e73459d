package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/cqnothing/internal/branding"
	"github.com/abhisek/cqnothing/internal/config"
	"github.com/abhisek/cqnothing/internal/content"
	"github.com/abhisek/cqnothing/internal/evaluator"
	"github.com/abhisek/cqnothing/internal/i18n"
	"github.com/abhisek/cqnothing/internal/logging"
)

// deps are the services a command runs against, built from the merged
// configuration.
type deps struct {
	cfg      config.Config
	store    *content.Store
	session  *i18n.Session
	engine   *evaluator.Engine
	branding branding.Branding

	logOut io.Closer
}

// Close releases the log file, if one was opened.
func (d *deps) Close() {
	if d.logOut != nil {
		_ = d.logOut.Close()
	}
}

// lang is the effective display language.
func (d *deps) lang() string {
	return d.session.Language()
}

// loadConfig merges flags, environment and config file.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfgFile, _ := cmd.Flags().GetString("config")
	v := config.New(cfgFile)
	if err := config.BindFlags(v, cmd.Flags()); err != nil {
		return config.Config{}, err
	}
	return config.Load(v)
}

// loadDeps configures logging and loads the content. Interactive runs send
// logs to the configured file so they never land on the alternate screen.
func loadDeps(cmd *cobra.Command, interactive bool) (*deps, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	d := &deps{cfg: cfg}

	level, _ := logging.ParseLevel(cfg.Log.Level)
	var w io.Writer = cmd.ErrOrStderr()
	if interactive {
		f, err := logging.OpenFile(cfg.Log.File)
		if err != nil {
			return nil, err
		}
		d.logOut = f
		w = f
	}
	logging.Init(level, cfg.Log.Format, w)

	store, err := openStore(cfg.ContentDir)
	if err != nil {
		d.Close()
		return nil, err
	}
	d.store = store

	d.session = i18n.NewSession(store.SupportedLanguages(), store.DefaultLanguage())
	if cfg.Language != "" {
		d.session.SetLanguage(cfg.Language)
	}

	d.engine = evaluator.New(store)
	d.branding = branding.FromConfig(cfg.Branding)
	return d, nil
}

// rememberLanguage saves every language switch to the config file so the
// next start opens in the same language.
func (d *deps) rememberLanguage() (unsubscribe func()) {
	log := logging.New("config")
	return d.session.OnChange(func(lang string) {
		if err := config.SaveLanguage(d.cfg.File, lang); err != nil {
			log.Warn("could not save language", "path", d.cfg.File, "error", err)
			return
		}
		log.Debug("saved language", "lang", lang, "path", d.cfg.File)
	})
}

func openStore(dir string) (*content.Store, error) {
	if dir == "" {
		return content.LoadEmbedded()
	}
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("content dir: %w", err)
	}
	return content.LoadDir(dir)
}
