package i18n

import "testing"

func TestResolve_FallbackTiers(t *testing.T) {
	tests := []struct {
		name     string
		text     Text
		lang     string
		fallback string
		want     string
	}{
		{"requested present", Text{"de": "Tote Zone", "en": "Skip zone"}, "de", "skip_zone", "Tote Zone"},
		{"requested missing uses en", Text{"en": "Skip zone"}, "de", "skip_zone", "Skip zone"},
		{"requested empty uses en", Text{"de": "", "en": "Skip zone"}, "de", "skip_zone", "Skip zone"},
		{"neither uses fallback", Text{"fr": "Zone morte"}, "de", "skip_zone", "skip_zone"},
		{"nil text uses fallback", nil, "en", "skip_zone", "skip_zone"},
		{"en requested", Text{"de": "Tote Zone", "en": "Skip zone"}, "en", "x", "Skip zone"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Resolve(tt.text, tt.lang, tt.fallback); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestText_InAndClone(t *testing.T) {
	orig := Text{"en": "Noise"}
	if got := orig.In("de"); got != "Noise" {
		t.Errorf("In(de) = %q, want %q", got, "Noise")
	}
	if got := (Text{}).In("de"); got != "" {
		t.Errorf("In on empty = %q, want empty", got)
	}

	c := orig.Clone()
	c["en"] = "changed"
	if orig["en"] != "Noise" {
		t.Error("Clone shares storage with original")
	}
	if Text(nil).Clone() != nil {
		t.Error("Clone of nil should be nil")
	}
}

func TestNormalizeLanguage(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"de", "de"},
		{"EN", "en"},
		{"de-AT", "de"},
		{"en_US", "en"},
		{"  de ", "de"},
		{"", ""},
		{"not a tag!", "not a tag!"},
	}
	for _, tt := range tests {
		if got := NormalizeLanguage(tt.in); got != tt.want {
			t.Errorf("NormalizeLanguage(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
