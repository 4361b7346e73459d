package i18n

import (
	"slices"
	"sync"
)

// Session holds the current display language and notifies observers when it
// changes. It is safe for concurrent use.
type Session struct {
	mu        sync.Mutex
	lang      string
	def       string
	supported []string
	observers []observer
	nextID    int
}

type observer struct {
	id int
	fn func(lang string)
}

// NewSession returns a session over the supported languages, starting at
// def. An empty supported list means only def. A def outside the supported
// list is replaced by the first supported language.
func NewSession(supported []string, def string) *Session {
	def = NormalizeLanguage(def)
	var langs []string
	for _, l := range supported {
		l = NormalizeLanguage(l)
		if l != "" && !slices.Contains(langs, l) {
			langs = append(langs, l)
		}
	}
	if len(langs) == 0 {
		if def == "" {
			def = DefaultLanguage
		}
		langs = []string{def}
	}
	if !slices.Contains(langs, def) {
		def = langs[0]
	}
	return &Session{lang: def, def: def, supported: langs}
}

// Language returns the current language.
func (s *Session) Language() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lang
}

// Default returns the language the session started with.
func (s *Session) Default() string {
	return s.def
}

// Supported returns the supported languages in configured order.
func (s *Session) Supported() []string {
	return slices.Clone(s.supported)
}

// IsSupported reports whether code normalizes to a supported language.
func (s *Session) IsSupported(code string) bool {
	return slices.Contains(s.supported, NormalizeLanguage(code))
}

// SetLanguage switches to code and returns the language now in effect.
// Unsupported codes fall back to the session default. Observers run in
// registration order, outside the lock, and only when the language changed.
func (s *Session) SetLanguage(code string) string {
	lang := NormalizeLanguage(code)
	if !slices.Contains(s.supported, lang) {
		logger().Warn("unsupported language, using default", "requested", code, "default", s.def)
		lang = s.def
	}

	s.mu.Lock()
	if lang == s.lang {
		s.mu.Unlock()
		return lang
	}
	s.lang = lang
	obs := slices.Clone(s.observers)
	s.mu.Unlock()

	for _, o := range obs {
		o.fn(lang)
	}
	return lang
}

// Toggle advances to the next supported language, wrapping around. With
// de and en this switches between the two.
func (s *Session) Toggle() string {
	s.mu.Lock()
	i := slices.Index(s.supported, s.lang)
	next := s.supported[(i+1)%len(s.supported)]
	s.mu.Unlock()
	return s.SetLanguage(next)
}

// OnChange registers fn to be called after each language change. The
// returned func removes it.
func (s *Session) OnChange(fn func(lang string)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	id := s.nextID
	s.observers = append(s.observers, observer{id: id, fn: fn})
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.observers = slices.DeleteFunc(s.observers, func(o observer) bool { return o.id == id })
	}
}
