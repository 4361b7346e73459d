// Package config merges defaults, the config file, CQNOTHING_* environment
// variables and command-line flags into one Config.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/cqnothing/internal/logging"
)

// EnvPrefix prefixes every environment variable, e.g. CQNOTHING_LOG_LEVEL.
const EnvPrefix = "CQNOTHING"

// Config is the effective application configuration.
type Config struct {
	// Language is the display language. Empty means the strings catalog
	// default.
	Language string `mapstructure:"language" yaml:"language"`

	// ContentDir overrides the embedded catalogs with files from a directory.
	ContentDir string `mapstructure:"content_dir" yaml:"content_dir"`

	Log      LogConfig      `mapstructure:"log" yaml:"log"`
	Branding BrandingConfig `mapstructure:"branding" yaml:"branding"`

	// File is the config file that was read, or the default location when
	// none exists yet. Settings saved at runtime go there.
	File string `mapstructure:"-" yaml:"-"`
}

// LogConfig controls slog output.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`   // debug, info, warn, error
	Format string `mapstructure:"format" yaml:"format"` // text or json
	File   string `mapstructure:"file" yaml:"file"`     // TUI only; empty discards
}

// BrandingConfig names the parent site shown in the header. File points at
// a separate branding document; fields set here win over the file.
type BrandingConfig struct {
	File           string `mapstructure:"file" yaml:"file"`
	ParentSiteURL  string `mapstructure:"parent_site_url" yaml:"parent_site_url"`
	ParentSiteLogo string `mapstructure:"parent_site_logo" yaml:"parent_site_logo"`
	ParentSiteName string `mapstructure:"parent_site_name" yaml:"parent_site_name"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// flagKeys maps config keys to the persistent flags that override them.
var flagKeys = map[string]string{
	"language":    "lang",
	"content_dir": "content-dir",
	"log.level":   "log-level",
	"log.format":  "log-format",
	"log.file":    "log-file",
}

// DefaultDir is $XDG_CONFIG_HOME/cqnothing or the platform equivalent.
func DefaultDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "cqnothing")
}

// DefaultFile is the config file used when --config is not given.
func DefaultFile() string {
	return filepath.Join(DefaultDir(), "config.yaml")
}

// New returns a viper instance with defaults and env binding. configFile,
// when set, replaces the default search for DefaultDir()/config.yaml.
func New(configFile string) *viper.Viper {
	v := viper.New()

	d := Default()
	v.SetDefault("language", d.Language)
	v.SetDefault("content_dir", d.ContentDir)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("branding.file", d.Branding.File)
	v.SetDefault("branding.parent_site_url", d.Branding.ParentSiteURL)
	v.SetDefault("branding.parent_site_logo", d.Branding.ParentSiteLogo)
	v.SetDefault("branding.parent_site_name", d.Branding.ParentSiteName)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.AddConfigPath(DefaultDir())
		v.SetConfigType("yaml")
		v.SetConfigName("config")
	}
	return v
}

// BindFlags binds the persistent flags that exist in fs. Missing flags are
// skipped so subcommands can share one FlagSet layout.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for key, name := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return nil
}

// Load reads the config file when one exists and decodes the merged
// settings. A missing default file is not an error; a missing explicit
// file is.
func Load(v *viper.Viper) (Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.File = v.ConfigFileUsed()
	if cfg.File == "" {
		cfg.File = DefaultFile()
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// SaveLanguage records lang in the config file at path, creating the file
// and its directory when needed. Other keys already in the file are kept.
func SaveLanguage(path, lang string) error {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("read config: %w", err)
	}
	v.Set("language", lang)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Validate checks the config for invalid values.
func (c Config) Validate() error {
	var errs []string
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err.Error())
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Sprintf("unknown log format %q (want text or json)", c.Log.Format))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

// YAML renders the config as it would appear in config.yaml.
func (c Config) YAML() ([]byte, error) {
	return yaml.Marshal(c)
}
