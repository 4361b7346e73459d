// Package branding holds the optional parent-site identity shown around the
// quiz.
package branding

import (
	"log/slog"

	"github.com/spf13/viper"

	"github.com/abhisek/cqnothing/internal/config"
	"github.com/abhisek/cqnothing/internal/logging"
)

// Branding is the parent-site identity. The zero value means no branding.
type Branding struct {
	ParentSiteURL  string `mapstructure:"parentSiteUrl" json:"parentSiteUrl" yaml:"parentSiteUrl"`
	ParentSiteLogo string `mapstructure:"parentSiteLogo" json:"parentSiteLogo" yaml:"parentSiteLogo"`
	ParentSiteName string `mapstructure:"parentSiteName" json:"parentSiteName" yaml:"parentSiteName"`
}

// LoadFile reads a branding document (JSON or YAML, by extension). Any
// failure is logged and yields the zero Branding so the app still starts.
func LoadFile(path string) Branding {
	log := logger()

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		log.Warn("could not load branding config, using defaults", "path", path, "error", err)
		return Branding{}
	}
	var b Branding
	if err := v.Unmarshal(&b); err != nil {
		log.Warn("could not decode branding config, using defaults", "path", path, "error", err)
		return Branding{}
	}
	return b
}

// FromConfig builds the branding from the app config. The branding file, if
// any, is loaded first and then overridden by non-empty inline fields.
func FromConfig(c config.BrandingConfig) Branding {
	var b Branding
	if c.File != "" {
		b = LoadFile(c.File)
	}
	if c.ParentSiteURL != "" {
		b.ParentSiteURL = c.ParentSiteURL
	}
	if c.ParentSiteLogo != "" {
		b.ParentSiteLogo = c.ParentSiteLogo
	}
	if c.ParentSiteName != "" {
		b.ParentSiteName = c.ParentSiteName
	}
	return b
}

func (b Branding) HasParentSite() bool { return b.ParentSiteURL != "" }

// Label is the header text: the site name, falling back to its URL.
func (b Branding) Label() string {
	if b.ParentSiteName != "" {
		return b.ParentSiteName
	}
	return b.ParentSiteURL
}

func logger() *slog.Logger {
	return logging.New("branding")
}
