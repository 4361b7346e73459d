package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// NormalizeLanguage reduces a BCP-47 tag to its base language code, so
// "de-AT" becomes "de" and "EN" becomes "en". Unparseable input is returned
// trimmed and lowercased.
func NormalizeLanguage(code string) string {
	code = strings.TrimSpace(code)
	if code == "" {
		return ""
	}
	tag, err := language.Parse(code)
	if err != nil {
		return strings.ToLower(code)
	}
	base, _ := tag.Base()
	return base.String()
}
