package i18n

import (
	"log/slog"
	"maps"
	"slices"
	"strings"

	"github.com/abhisek/cqnothing/internal/logging"
)

// Strings is the UI string catalog. It is read-only after construction.
type Strings struct {
	entries map[string]Text
}

// NewStrings builds a catalog from key → Text entries.
func NewStrings(entries map[string]Text) *Strings {
	return &Strings{entries: maps.Clone(entries)}
}

// Lookup resolves key for lang and substitutes {{name}} placeholders from
// params. An unresolved key is logged and returned as-is.
func (s *Strings) Lookup(key, lang string, params map[string]string) string {
	var v string
	if s != nil {
		v = Resolve(s.entries[key], lang, "")
	}
	if v == "" {
		logger().Warn("missing translation", "key", key, "lang", lang)
		return key
	}
	return Substitute(v, params)
}

// Has reports whether key exists in the catalog.
func (s *Strings) Has(key string) bool {
	if s == nil {
		return false
	}
	_, ok := s.entries[key]
	return ok
}

// Text returns the raw entry for key.
func (s *Strings) Text(key string) (Text, bool) {
	if s == nil {
		return nil, false
	}
	t, ok := s.entries[key]
	return t.Clone(), ok
}

// Keys returns all keys in sorted order.
func (s *Strings) Keys() []string {
	if s == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(s.entries))
}

// Substitute replaces every {{name}} in s with params[name]. Placeholders
// without a matching param are left untouched.
func Substitute(s string, params map[string]string) string {
	if len(params) == 0 || !strings.Contains(s, "{{") {
		return s
	}
	for _, name := range slices.Sorted(maps.Keys(params)) {
		s = strings.ReplaceAll(s, "{{"+name+"}}", params[name])
	}
	return s
}

func logger() *slog.Logger {
	return logging.New("i18n")
}
