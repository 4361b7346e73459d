// Package i18n resolves per-language display text for catalog content and
// UI strings.
package i18n

import "maps"

// DefaultLanguage is the language consulted when the requested one has no
// text.
const DefaultLanguage = "en"

// Text maps a language code to a display string.
type Text map[string]string

// Resolve returns the text for lang if present and non-empty, otherwise the
// DefaultLanguage text, otherwise fallback.
func Resolve(t Text, lang, fallback string) string {
	if v := t[lang]; v != "" {
		return v
	}
	if v := t[DefaultLanguage]; v != "" {
		return v
	}
	return fallback
}

// In is Resolve with an empty fallback.
func (t Text) In(lang string) string {
	return Resolve(t, lang, "")
}

// Has reports whether t carries non-empty text for lang.
func (t Text) Has(lang string) bool {
	return t[lang] != ""
}

// Clone returns a copy of t. A nil Text stays nil.
func (t Text) Clone() Text {
	return maps.Clone(t)
}
