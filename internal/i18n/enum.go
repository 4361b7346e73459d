package i18n

import (
	"maps"
	"slices"
)

// EnumCatalog holds labels for enumerated scenario values, keyed by enum type
// ("bands", "times", ...) and then by value.
type EnumCatalog map[string]map[string]Text

// Label resolves the label of value within enumType. The raw value is the
// last fallback; an unknown pair is logged.
func (c EnumCatalog) Label(enumType, value, lang string) string {
	t, ok := c[enumType][value]
	if !ok {
		logger().Warn("unresolved enum value", "type", enumType, "value", value)
		return value
	}
	return Resolve(t, lang, value)
}

// Has reports whether the catalog defines value for enumType.
func (c EnumCatalog) Has(enumType, value string) bool {
	_, ok := c[enumType][value]
	return ok
}

// Types returns the enum types in sorted order.
func (c EnumCatalog) Types() []string {
	return slices.Sorted(maps.Keys(c))
}

// Values returns the values of enumType in sorted order.
func (c EnumCatalog) Values(enumType string) []string {
	return slices.Sorted(maps.Keys(c[enumType]))
}
