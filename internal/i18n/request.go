package i18n

// Request is a lookup handed to Translator.T. It is implemented by
// EnumLookup and StringLookup only.
type Request interface {
	isRequest()
}

// EnumLookup asks for the label of an enumerated value.
type EnumLookup struct {
	Type  string
	Value string
}

// StringLookup asks for a UI string with optional placeholder params.
type StringLookup struct {
	Key    string
	Params map[string]string
}

func (EnumLookup) isRequest()   {}
func (StringLookup) isRequest() {}

// Translator dispatches lookup requests to the enum and string catalogs.
type Translator struct {
	enums   EnumCatalog
	strings *Strings
}

// NewTranslator returns a Translator over the given catalogs. Either may be
// nil.
func NewTranslator(enums EnumCatalog, strings *Strings) *Translator {
	return &Translator{enums: enums, strings: strings}
}

// T resolves req for lang.
func (t *Translator) T(lang string, req Request) string {
	switch r := req.(type) {
	case EnumLookup:
		return t.enums.Label(r.Type, r.Value, lang)
	case StringLookup:
		return t.strings.Lookup(r.Key, lang, r.Params)
	default:
		return ""
	}
}

// Message is shorthand for T(lang, StringLookup{Key: key}).
func (t *Translator) Message(key, lang string) string {
	return t.T(lang, StringLookup{Key: key})
}
